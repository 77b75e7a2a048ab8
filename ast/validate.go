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

package ast

import (
	"strings"

	"github.com/bufbuild/jsast/reporter"
)

// Validate checks that the tree rooted at n satisfies the contracts of the
// node model, and returns the first violation found in source order.
//
// Violations wrap [reporter.ErrContractViolation] and implement
// [reporter.ErrorWithPath]; the path uses the field names reported by
// [Children].
//
// The encoder and printer call Validate before producing any output, so a
// tree that fails validation never yields partial results.
func Validate(n Node) error {
	if IsNil(n) {
		return reporter.Errorf(reporter.Root, reporter.ErrContractViolation, "nil node")
	}
	return validator{}.node(reporter.Root, n, nil)
}

type validator struct{}

func violation(path reporter.Path, format string, args ...any) error {
	return reporter.Errorf(path, reporter.ErrContractViolation, format, args...)
}

// required reports a violation if n is nil.
func required(path reporter.Path, name string, n Node) error {
	if IsNil(n) {
		return violation(path.Field(name), "missing required %s", name)
	}
	return nil
}

// requiredList reports a violation for the first nil element of nodes.
func requiredList[T Node](path reporter.Path, name string, nodes []T) error {
	for i, n := range nodes {
		if IsNil(n) {
			return violation(path.Field(name).Index(i), "nil element in %s", name)
		}
	}
	return nil
}

// unionNil reports whether a union value is empty or holds a nil node.
func unionNil(v any) bool {
	n, _ := v.(Node)
	return IsNil(n)
}

func nonEmpty[T any](path reporter.Path, name string, list []T) error {
	if len(list) == 0 {
		return violation(path.Field(name), "%s must not be empty", name)
	}
	return nil
}

func (v validator) node(path reporter.Path, n, parent Node) error {
	if err := v.check(path, n, parent); err != nil {
		return err
	}
	for edge, child := range Children(n) {
		p := path.Field(edge.Field)
		if edge.Index >= 0 {
			p = p.Index(edge.Index)
		}
		if err := v.node(p, child, n); err != nil {
			return err
		}
	}
	return nil
}

// check validates the fields of n itself; children are handled by node.
func (validator) check(path reporter.Path, n, parent Node) error {
	var errs []error
	switch n := n.(type) {
	case *Program, *ThisExpression, *DebuggerStatement, *BlockStatement,
		*ReturnStatement, *BreakStatement, *ContinueStatement:

	case *Identifier:
		if n.Name == "" {
			return violation(path.Field("name"), "empty identifier")
		}

	case *Literal:
		switch n.ValueKind() {
		case LiteralInvalid:
			return violation(path.Field("value"), "unsupported literal value of type %T", n.Value)
		case LiteralRegex:
			re := n.Value.(Regex)
			if re.Flags&^allRegexFlags != 0 {
				return violation(path.Field("regex").Field("flags"), "invalid regular expression flags %#x", byte(re.Flags))
			}
			trailing := len(re.Pattern) - len(strings.TrimRight(re.Pattern, `\`))
			if trailing%2 == 1 {
				return violation(path.Field("regex").Field("pattern"), "regular expression pattern ends in a lone backslash")
			}
		}

	case *ArrayExpression:

	case *ObjectExpression:
		errs = append(errs, requiredList(path, "properties", n.Properties))

	case *Property:
		if unionNil(n.Key.Value()) {
			return violation(path.Field("key"), "missing required key")
		}
		if lit, ok := n.Key.A(); ok {
			if k := lit.ValueKind(); k != LiteralString && k != LiteralNumber {
				return violation(path.Field("key"), "property key literal must be a string or number")
			}
		}
		if n.Type > PropertySet {
			return violation(path.Field("kind"), "invalid property kind %d", n.Type)
		}
		errs = append(errs, required(path, "value", n.Value))
		if n.Type != PropertyInit && !IsNil(n.Value) {
			if fn, ok := n.Value.(*FunctionExpression); !ok || fn == nil {
				return violation(path.Field("value"), "%s accessor value must be a function", n.Type)
			}
			fn := n.Value.(*FunctionExpression)
			want := 0
			if n.Type == PropertySet {
				want = 1
			}
			if len(fn.Params) != want {
				return violation(path.Field("value").Field("params"),
					"%s accessor takes %d parameters, got %d", n.Type, want, len(fn.Params))
			}
		}

	case *FunctionExpression:
		errs = append(errs, requiredList(path, "params", n.Params))

	case *FunctionDeclaration:
		errs = append(errs,
			required(path, "id", n.ID),
			requiredList(path, "params", n.Params),
		)

	case *UnaryExpression:
		if !n.Operator.IsValid() {
			return violation(path.Field("operator"), "invalid unary operator %v", n.Operator)
		}
		errs = append(errs, required(path, "argument", n.Argument))

	case *BinaryExpression:
		if !n.Operator.IsValid() {
			return violation(path.Field("operator"), "invalid binary operator %v", n.Operator)
		}
		errs = append(errs,
			required(path, "left", n.Left),
			nonEmpty(path, "right", n.Right),
			requiredList(path, "right", n.Right),
		)

	case *MemberExpression:
		errs = append(errs,
			required(path, "object", n.Object),
			nonEmpty(path, "indices", n.Indices),
			requiredList(path, "indices", n.Indices),
		)
		if !n.Computed {
			for i, idx := range n.Indices {
				if _, ok := idx.(*Identifier); !ok && !IsNil(idx) {
					errs = append(errs, violation(path.Field("indices").Index(i),
						"non-computed member access requires an identifier, got %v", idx.Kind()))
				}
			}
		}

	case *ConditionalExpression:
		errs = append(errs,
			required(path, "test", n.Test),
			required(path, "consequent", n.Consequent),
			required(path, "alternate", n.Alternate),
		)

	case *CallExpression:
		errs = append(errs,
			required(path, "callee", n.Callee),
			requiredList(path, "arguments", n.Arguments),
		)

	case *NewExpression:
		errs = append(errs,
			required(path, "callee", n.Callee),
			requiredList(path, "arguments", n.Arguments),
		)

	case *SequenceExpression:
		errs = append(errs,
			nonEmpty(path, "expressions", n.Expressions),
			requiredList(path, "expressions", n.Expressions),
		)

	case *ExpressionStatement:
		errs = append(errs, required(path, "expression", n.Expression))

	case *WithStatement:
		errs = append(errs, required(path, "object", n.Object))

	case *LabeledStatement:
		errs = append(errs, required(path, "label", n.Label))

	case *IfStatement:
		errs = append(errs, required(path, "test", n.Test))

	case *SwitchStatement:
		errs = append(errs,
			required(path, "discriminant", n.Discriminant),
			requiredList(path, "cases", n.Cases),
		)
		seenDefault := false
		for i, c := range n.Cases {
			if c == nil || c.Test != nil {
				continue
			}
			if seenDefault {
				errs = append(errs, violation(path.Field("cases").Index(i), "more than one default clause"))
				break
			}
			seenDefault = true
		}

	case *SwitchCase:

	case *ThrowStatement:
		errs = append(errs, required(path, "argument", n.Argument))

	case *TryStatement:
		errs = append(errs, required(path, "block", n.Block))
		if n.Handler == nil && !n.HasFinalizer() {
			errs = append(errs, violation(path, "try statement needs a catch clause or a non-empty finally block"))
		}

	case *CatchClause:
		errs = append(errs, required(path, "param", n.Param))

	case *WhileStatement:
		errs = append(errs, required(path, "test", n.Test))

	case *DoWhileStatement:
		errs = append(errs, required(path, "test", n.Test))

	case *ForStatement:
		if !n.Init.IsEmpty() && unionNil(n.Init.Value()) {
			return violation(path.Field("init"), "nil for statement init")
		}

	case *ForInStatement:
		if unionNil(n.Left.Value()) {
			return violation(path.Field("left"), "missing required left")
		}
		if decl, ok := n.Left.A(); ok {
			if len(decl.Declarations) != 1 {
				return violation(path.Field("left").Field("declarations"),
					"for-in declaration must declare exactly one variable")
			}
			if d := decl.Declarations[0]; d != nil && d.Init != nil {
				return violation(path.Field("left").Field("declarations").Index(0).Field("init"),
					"for-in declaration must not have an initializer")
			}
		}
		errs = append(errs, required(path, "right", n.Right))

	case *VariableDeclaration:
		if n.Type > DeclareConst {
			return violation(path.Field("kind"), "invalid declaration kind %d", n.Type)
		}
		errs = append(errs,
			nonEmpty(path, "declarations", n.Declarations),
			requiredList(path, "declarations", n.Declarations),
		)
		if _, inForIn := parent.(*ForInStatement); n.Type == DeclareConst && !inForIn {
			for i, d := range n.Declarations {
				if d != nil && d.Init == nil {
					errs = append(errs, violation(path.Field("declarations").Index(i).Field("init"),
						"const declaration requires an initializer"))
				}
			}
		}

	case *VariableDeclarator:
		errs = append(errs, required(path, "id", n.ID))

	default:
		return violation(path, "unsupported node type %T", n)
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
