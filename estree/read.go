// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package estree

import (
	"slices"

	"github.com/bufbuild/jsast/ast"
	"github.com/bufbuild/jsast/reporter"
)

func readEmpty(object, ast.Node) (ast.Node, error) {
	return nil, nil
}

func readProgram(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.Program](into)
	var err error
	n.Body, err = statementList(o, "body", n.Body)
	return n, err
}

func readIdentifier(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.Identifier](into)
	var err error
	n.Name, err = o.str("name")
	return n, err
}

func readLiteral(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.Literal](into)
	if !o.isNull("regex") {
		re, err := asMap(o.path.Field("regex"), o.fields["regex"])
		if err != nil {
			return nil, err
		}
		pattern, err := re.str("pattern")
		if err != nil {
			return nil, err
		}
		text, err := re.str("flags")
		if err != nil {
			return nil, err
		}
		flags, err := ast.ParseRegexFlags(text)
		if err != nil {
			return nil, reporter.Errorf(re.path.Field("flags"), reporter.ErrUnknownDiscriminator, "%v", err)
		}
		n.Value = ast.Regex{Pattern: pattern, Flags: flags}
		return n, nil
	}

	v, err := o.value("value")
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case nil, string, bool:
		n.Value = v
	default:
		n.Value, err = number(o.path.Field("value"), v)
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func readThis(_ object, into ast.Node) (ast.Node, error) {
	return reuse[ast.ThisExpression](into), nil
}

func readArray(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.ArrayExpression](into)
	values, err := o.list("elements")
	if err != nil {
		return nil, err
	}
	path := o.path.Field("elements")
	n.Elements, err = reconcile(n.Elements, len(values), func(i int, prev ast.Expression) (ast.Expression, error) {
		if values[i] == nil {
			return nil, nil // A hole.
		}
		return decodeAs(path.Index(i), values[i], prev, "expression")
	})
	return n, err
}

func readObject(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.ObjectExpression](into)
	var err error
	n.Properties, err = nodeList(o, "properties", n.Properties, "Property")
	return n, err
}

func readProperty(o object, into ast.Node) (ast.Node, error) {
	if err := o.unsupported("computed", "method", "shorthand"); err != nil {
		return nil, err
	}
	n := reuse[ast.Property](into)

	n.Type = ast.PropertyInit
	if !o.isNull("kind") {
		text, err := o.str("kind")
		if err != nil {
			return nil, err
		}
		kind, ok := propertyKinds[text]
		if !ok {
			return nil, reporter.Errorf(o.path.Field("kind"), reporter.ErrUnknownDiscriminator, "unknown property kind %q", text)
		}
		n.Type = kind
	}

	v, err := o.value("key")
	if err != nil {
		return nil, err
	}
	var prevKey ast.PropertyKeyNode
	if k := n.Key.Value(); k != nil {
		prevKey = k.(ast.PropertyKeyNode)
	}
	key, err := decodeAs(o.path.Field("key"), v, prevKey, "Identifier or Literal")
	if err != nil {
		return nil, err
	}
	n.Key = ast.KeyOf(key)

	n.Value, err = o.expr("value", n.Value)
	if err != nil {
		return nil, err
	}
	if n.Type != ast.PropertyInit && n.Value.Kind() != ast.KindFunctionExpression {
		return nil, shapef(o.path.Field("value"), "expected FunctionExpression for %s accessor, got %v", n.Type, n.Value.Kind())
	}
	return n, nil
}

// readFunction decodes the parts shared by function expressions and
// declarations.
func readFunction(o object, fn ast.HasParameters, id **ast.Identifier, requireID bool) error {
	if err := o.unsupported("generator", "async", "expression"); err != nil {
		return err
	}

	var err error
	if requireID {
		*id, err = o.ident("id", *id)
	} else {
		*id, err = o.optIdent("id", *id)
	}
	if err != nil {
		return err
	}

	params := fn.Parameters()
	*params, err = nodeList(o, "params", *params, "Identifier")
	if err != nil {
		return err
	}

	stmts := fn.Statements()
	*stmts, err = o.blockBody("body", *stmts)
	return err
}

// blockBody decodes a BlockStatement field directly into a statement list.
func (o object) blockBody(name string, list []ast.Statement) ([]ast.Statement, error) {
	v, err := o.value(name)
	if err != nil {
		return list, err
	}
	block, err := asNode(o.path.Field(name), v)
	if err != nil {
		return list, err
	}
	if block.typ != ast.KindBlockStatement.String() {
		return list, shapef(block.path, "expected BlockStatement, got %s", block.typ)
	}
	return statementList(block, "body", list)
}

func readFunctionExpression(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.FunctionExpression](into)
	if err := readFunction(o, n, &n.ID, false); err != nil {
		return nil, err
	}
	return n, nil
}

func readFunctionDeclaration(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.FunctionDeclaration](into)
	if err := readFunction(o, n, &n.ID, true); err != nil {
		return nil, err
	}
	return n, nil
}

func readUnary(o object, into ast.Node) (ast.Node, error) {
	text, err := o.str("operator")
	if err != nil {
		return nil, err
	}
	var (
		op ast.UnaryOperator
		ok bool
	)
	if o.typ == typeUpdateExpression {
		prefix, err := o.boolean("prefix")
		if err != nil {
			return nil, err
		}
		op, ok = updateOperator(text, prefix)
	} else {
		op, ok = unaryOperators[text]
	}
	if !ok {
		return nil, reporter.Errorf(o.path.Field("operator"), reporter.ErrUnknownDiscriminator, "unknown %s operator %q", o.typ, text)
	}

	n := reuse[ast.UnaryExpression](into)
	n.Operator = op
	n.Argument, err = o.expr("argument", n.Argument)
	return n, err
}

// operand is a JSON value to be decoded as one element of a flattened chain.
type operand struct {
	path  reporter.Path
	value any
}

func binaryOperator(o object) (ast.BinaryOperator, error) {
	text, err := o.str("operator")
	if err != nil {
		return ast.OpInvalid, err
	}
	op, ok := binaryOperators[o.typ][text]
	if !ok {
		return ast.OpInvalid, reporter.Errorf(o.path.Field("operator"), reporter.ErrUnknownDiscriminator, "unknown %s operator %q", o.typ, text)
	}
	return op, nil
}

// sameOperator returns v as a node object if it is a binary expression with
// operator op.
func sameOperator(path reporter.Path, v any, op ast.BinaryOperator) (object, bool) {
	o, ok := peekNode(path, v, binaryType(op))
	if !ok {
		return o, false
	}
	text, _ := o.fields["operator"].(string)
	return o, text == op.String()
}

func readBinary(o object, into ast.Node) (ast.Node, error) {
	op, err := binaryOperator(o)
	if err != nil {
		return nil, err
	}

	// Unfold the nesting a chain of op is written with: to the right for
	// right-associative operators, to the left otherwise.
	var operands []operand
	cur := o
	for {
		left, err := cur.value("left")
		if err != nil {
			return nil, err
		}
		right, err := cur.value("right")
		if err != nil {
			return nil, err
		}
		leftOp := operand{cur.path.Field("left"), left}
		rightOp := operand{cur.path.Field("right"), right}

		if rightAssociative(op) {
			operands = append(operands, leftOp)
			next, ok := sameOperator(rightOp.path, right, op)
			if !ok {
				operands = append(operands, rightOp)
				break
			}
			cur = next
		} else {
			operands = append(operands, rightOp)
			next, ok := sameOperator(leftOp.path, left, op)
			if !ok {
				operands = append(operands, leftOp)
				break
			}
			cur = next
		}
	}
	if !rightAssociative(op) {
		slices.Reverse(operands)
	}

	n := reuse[ast.BinaryExpression](into)
	n.Operator = op
	n.Left, err = decodeAs(operands[0].path, operands[0].value, n.Left, "expression")
	if err != nil {
		return nil, err
	}
	rest := operands[1:]
	n.Right, err = reconcile(n.Right, len(rest), func(i int, prev ast.Expression) (ast.Expression, error) {
		return decodeAs(rest[i].path, rest[i].value, prev, "expression")
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func readMember(o object, into ast.Node) (ast.Node, error) {
	computed, err := o.boolean("computed")
	if err != nil {
		return nil, err
	}

	// Unfold objects that are member expressions with the same computed flag.
	var indices []operand
	var head operand
	cur := o
	for {
		obj, err := cur.value("object")
		if err != nil {
			return nil, err
		}
		property, err := cur.value("property")
		if err != nil {
			return nil, err
		}
		indices = append(indices, operand{cur.path.Field("property"), property})

		next, ok := peekNode(cur.path.Field("object"), obj, ast.KindMemberExpression.String())
		if ok {
			c, isBool := next.fields["computed"].(bool)
			ok = isBool && c == computed
		}
		if !ok {
			head = operand{cur.path.Field("object"), obj}
			break
		}
		cur = next
	}
	slices.Reverse(indices)

	n := reuse[ast.MemberExpression](into)
	n.Computed = computed
	n.Object, err = decodeAs(head.path, head.value, n.Object, "expression")
	if err != nil {
		return nil, err
	}
	n.Indices, err = reconcile(n.Indices, len(indices), func(i int, prev ast.Expression) (ast.Expression, error) {
		if computed {
			return decodeAs(indices[i].path, indices[i].value, prev, "expression")
		}
		var id *ast.Identifier
		if p, ok := prev.(*ast.Identifier); ok {
			id = p
		}
		return decodeAs(indices[i].path, indices[i].value, id, "Identifier")
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func readConditional(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.ConditionalExpression](into)
	var err error
	if n.Test, err = o.expr("test", n.Test); err != nil {
		return nil, err
	}
	if n.Consequent, err = o.expr("consequent", n.Consequent); err != nil {
		return nil, err
	}
	if n.Alternate, err = o.expr("alternate", n.Alternate); err != nil {
		return nil, err
	}
	return n, nil
}

func readCall(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.CallExpression](into)
	var err error
	if n.Callee, err = o.expr("callee", n.Callee); err != nil {
		return nil, err
	}
	if n.Arguments, err = nodeList(o, "arguments", n.Arguments, "expression"); err != nil {
		return nil, err
	}
	return n, nil
}

func readNew(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.NewExpression](into)
	var err error
	if n.Callee, err = o.expr("callee", n.Callee); err != nil {
		return nil, err
	}
	if n.Arguments, err = nodeList(o, "arguments", n.Arguments, "expression"); err != nil {
		return nil, err
	}
	return n, nil
}

func readSequence(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.SequenceExpression](into)
	var err error
	n.Expressions, err = nodeList(o, "expressions", n.Expressions, "expression")
	return n, err
}

func readBlock(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.BlockStatement](into)
	var err error
	n.Body, err = statementList(o, "body", n.Body)
	return n, err
}

func readExpressionStatement(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.ExpressionStatement](into)
	var err error
	n.Expression, err = o.expr("expression", n.Expression)
	return n, err
}

func readDebugger(_ object, into ast.Node) (ast.Node, error) {
	return reuse[ast.DebuggerStatement](into), nil
}

func readWith(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.WithStatement](into)
	var err error
	if n.Object, err = o.expr("object", n.Object); err != nil {
		return nil, err
	}
	if n.Body, err = o.stmt("body", n.Body); err != nil {
		return nil, err
	}
	return n, nil
}

func readReturn(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.ReturnStatement](into)
	var err error
	n.Argument, err = o.optExpr("argument", n.Argument)
	return n, err
}

func readLabeled(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.LabeledStatement](into)
	var err error
	if n.Label, err = o.ident("label", n.Label); err != nil {
		return nil, err
	}
	if n.Body, err = o.stmt("body", n.Body); err != nil {
		return nil, err
	}
	return n, nil
}

func readBreak(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.BreakStatement](into)
	var err error
	n.Label, err = o.optIdent("label", n.Label)
	return n, err
}

func readContinue(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.ContinueStatement](into)
	var err error
	n.Label, err = o.optIdent("label", n.Label)
	return n, err
}

func readIf(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.IfStatement](into)
	var err error
	if n.Test, err = o.expr("test", n.Test); err != nil {
		return nil, err
	}
	if n.Consequent, err = o.stmt("consequent", n.Consequent); err != nil {
		return nil, err
	}
	if o.isNull("alternate") {
		n.Alternate = nil
	} else if n.Alternate, err = o.stmt("alternate", n.Alternate); err != nil {
		return nil, err
	}
	return n, nil
}

func readSwitch(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.SwitchStatement](into)
	var err error
	if n.Discriminant, err = o.expr("discriminant", n.Discriminant); err != nil {
		return nil, err
	}
	if n.Cases, err = nodeList(o, "cases", n.Cases, "SwitchCase"); err != nil {
		return nil, err
	}
	return n, nil
}

func readSwitchCase(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.SwitchCase](into)
	var err error
	if n.Test, err = o.optExpr("test", n.Test); err != nil {
		return nil, err
	}
	if n.Body, err = statementList(o, "consequent", n.Body); err != nil {
		return nil, err
	}
	return n, nil
}

func readThrow(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.ThrowStatement](into)
	var err error
	n.Argument, err = o.expr("argument", n.Argument)
	return n, err
}

func readTry(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.TryStatement](into)
	var err error
	if n.Block, err = o.block("block", n.Block); err != nil {
		return nil, err
	}
	if o.isNull("handler") {
		n.Handler = nil
	} else if n.Handler, err = decodeAs(o.path.Field("handler"), o.fields["handler"], n.Handler, "CatchClause"); err != nil {
		return nil, err
	}
	if o.isNull("finalizer") {
		n.Finalizer = nil
	} else if n.Finalizer, err = o.block("finalizer", n.Finalizer); err != nil {
		return nil, err
	}
	if n.Handler == nil && !n.HasFinalizer() {
		return nil, shapef(o.path, "TryStatement needs a handler or a non-empty finalizer")
	}
	return n, nil
}

func readCatch(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.CatchClause](into)
	v, err := o.value("param")
	if err != nil {
		return nil, err
	}
	if n.Param, err = decodeAs(o.path.Field("param"), v, n.Param, "Identifier"); err != nil {
		return nil, err
	}
	if n.Body, err = o.blockBody("body", n.Body); err != nil {
		return nil, err
	}
	return n, nil
}

func readWhile(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.WhileStatement](into)
	var err error
	if n.Test, err = o.expr("test", n.Test); err != nil {
		return nil, err
	}
	if n.Body, err = o.stmt("body", n.Body); err != nil {
		return nil, err
	}
	return n, nil
}

func readDoWhile(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.DoWhileStatement](into)
	var err error
	if n.Body, err = o.stmt("body", n.Body); err != nil {
		return nil, err
	}
	if n.Test, err = o.expr("test", n.Test); err != nil {
		return nil, err
	}
	return n, nil
}

func readFor(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.ForStatement](into)
	var err error
	if n.Init, err = o.forInit("init", n.Init); err != nil {
		return nil, err
	}
	if n.Test, err = o.optExpr("test", n.Test); err != nil {
		return nil, err
	}
	if n.Update, err = o.optExpr("update", n.Update); err != nil {
		return nil, err
	}
	if n.Body, err = o.stmt("body", n.Body); err != nil {
		return nil, err
	}
	return n, nil
}

func readForIn(o object, into ast.Node) (ast.Node, error) {
	if err := o.unsupported("each"); err != nil {
		return nil, err
	}
	n := reuse[ast.ForInStatement](into)
	if _, err := o.value("left"); err != nil {
		return nil, err
	}
	if o.isNull("left") {
		return nil, shapef(o.path.Field("left"), "expected expression or VariableDeclaration, got null")
	}
	var err error
	if n.Left, err = o.forInit("left", n.Left); err != nil {
		return nil, err
	}
	if n.Right, err = o.expr("right", n.Right); err != nil {
		return nil, err
	}
	if n.Body, err = o.stmt("body", n.Body); err != nil {
		return nil, err
	}
	return n, nil
}

func readVariableDeclaration(o object, into ast.Node) (ast.Node, error) {
	text, err := o.str("kind")
	if err != nil {
		return nil, err
	}
	kind, ok := declarationKinds[text]
	if !ok {
		return nil, reporter.Errorf(o.path.Field("kind"), reporter.ErrUnknownDiscriminator, "unknown declaration kind %q", text)
	}

	n := reuse[ast.VariableDeclaration](into)
	n.Type = kind
	if n.Declarations, err = nodeList(o, "declarations", n.Declarations, "VariableDeclarator"); err != nil {
		return nil, err
	}
	return n, nil
}

func readDeclarator(o object, into ast.Node) (ast.Node, error) {
	n := reuse[ast.VariableDeclarator](into)
	v, err := o.value("id")
	if err != nil {
		return nil, err
	}
	if n.ID, err = decodeAs(o.path.Field("id"), v, n.ID, "Identifier"); err != nil {
		return nil, err
	}
	if n.Init, err = o.optExpr("init", n.Init); err != nil {
		return nil, err
	}
	return n, nil
}
