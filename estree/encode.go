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
	"encoding/json"
	"io"
	"math"

	"github.com/bufbuild/jsast/ast"
	"github.com/bufbuild/jsast/reporter"
)

// Encode converts a tree into its ESTree JSON shape: a tree of [Object],
// []any, string, bool, nil and numbers, ready for [json.Marshal].
//
// The tree is checked with [ast.Validate] first; nothing is produced for an
// invalid tree.
func Encode(n ast.Node) (any, error) {
	if err := ast.Validate(n); err != nil {
		return nil, err
	}
	var e encoder
	v := e.node(reporter.Root, n)
	if e.err != nil {
		return nil, e.err
	}
	return v, nil
}

// Marshal returns the ESTree JSON encoding of a tree.
func Marshal(n ast.Node) ([]byte, error) {
	v, err := Encode(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// MarshalIndent is like [Marshal] but indents the output, as
// [json.MarshalIndent] does.
func MarshalIndent(n ast.Node, prefix, indent string) ([]byte, error) {
	v, err := Encode(n)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(v, prefix, indent)
}

// Writer writes a stream of ESTree JSON documents, one per line unless
// indentation is set.
type Writer struct {
	enc *json.Encoder
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(w)}
}

// SetIndent sets the indentation of subsequent documents, as
// [json.Encoder.SetIndent] does.
func (w *Writer) SetIndent(prefix, indent string) {
	w.enc.SetIndent(prefix, indent)
}

// Write encodes n and writes it, followed by a newline.
func (w *Writer) Write(n ast.Node) error {
	v, err := Encode(n)
	if err != nil {
		return err
	}
	return w.enc.Encode(v)
}

// encoder converts a validated tree. The only failure left at that point is
// a number JSON cannot represent, which is recorded in err.
type encoder struct {
	err error
}

func node(typ string, members ...Member) Object {
	return append(Object{{"type", typ}}, members...)
}

func (e *encoder) node(path reporter.Path, n ast.Node) any {
	if ast.IsNil(n) {
		return nil
	}
	switch n := n.(type) {
	case *ast.Program:
		return node(n.Kind().String(),
			Member{"sourceType", "script"},
			Member{"body", e.statements(path.Field("body"), n.Body)},
		)
	case *ast.Identifier:
		return node(n.Kind().String(), Member{"name", n.Name})
	case *ast.Literal:
		return e.literal(path, n)
	case *ast.ThisExpression:
		return node(n.Kind().String())
	case *ast.ArrayExpression:
		return node(n.Kind().String(), Member{"elements", list(e, path.Field("elements"), n.Elements)})
	case *ast.ObjectExpression:
		return node(n.Kind().String(), Member{"properties", list(e, path.Field("properties"), n.Properties)})
	case *ast.Property:
		return node(n.Kind().String(),
			Member{"key", e.node(path.Field("key"), n.Key.Value().(ast.Node))},
			Member{"value", e.node(path.Field("value"), n.Value)},
			Member{"kind", n.Type.String()},
			Member{"method", false},
			Member{"shorthand", false},
			Member{"computed", false},
		)
	case *ast.FunctionExpression:
		return e.function(path, n.Kind(), n.ID, n.Params, n.Body)
	case *ast.FunctionDeclaration:
		return e.function(path, n.Kind(), n.ID, n.Params, n.Body)
	case *ast.UnaryExpression:
		return node(unaryType(n.Operator),
			Member{"operator", n.Operator.String()},
			Member{"prefix", n.Operator.IsPrefix()},
			Member{"argument", e.node(path.Field("argument"), n.Argument)},
		)
	case *ast.BinaryExpression:
		return e.binary(path, n)
	case *ast.MemberExpression:
		return e.member(path, n)
	case *ast.ConditionalExpression:
		return node(n.Kind().String(),
			Member{"test", e.node(path.Field("test"), n.Test)},
			Member{"consequent", e.node(path.Field("consequent"), n.Consequent)},
			Member{"alternate", e.node(path.Field("alternate"), n.Alternate)},
		)
	case *ast.CallExpression:
		return node(n.Kind().String(),
			Member{"callee", e.node(path.Field("callee"), n.Callee)},
			Member{"arguments", list(e, path.Field("arguments"), n.Arguments)},
		)
	case *ast.NewExpression:
		return node(n.Kind().String(),
			Member{"callee", e.node(path.Field("callee"), n.Callee)},
			Member{"arguments", list(e, path.Field("arguments"), n.Arguments)},
		)
	case *ast.SequenceExpression:
		return node(n.Kind().String(), Member{"expressions", list(e, path.Field("expressions"), n.Expressions)})

	case *ast.BlockStatement:
		return e.block(path, n.Body)
	case *ast.ExpressionStatement:
		return node(n.Kind().String(), Member{"expression", e.node(path.Field("expression"), n.Expression)})
	case *ast.DebuggerStatement:
		return node(n.Kind().String())
	case *ast.WithStatement:
		return node(n.Kind().String(),
			Member{"object", e.node(path.Field("object"), n.Object)},
			Member{"body", e.statement(path.Field("body"), n.Body)},
		)
	case *ast.ReturnStatement:
		return node(n.Kind().String(), Member{"argument", e.node(path.Field("argument"), n.Argument)})
	case *ast.LabeledStatement:
		return node(n.Kind().String(),
			Member{"label", e.node(path.Field("label"), n.Label)},
			Member{"body", e.statement(path.Field("body"), n.Body)},
		)
	case *ast.BreakStatement:
		return node(n.Kind().String(), Member{"label", e.node(path.Field("label"), n.Label)})
	case *ast.ContinueStatement:
		return node(n.Kind().String(), Member{"label", e.node(path.Field("label"), n.Label)})
	case *ast.IfStatement:
		return node(n.Kind().String(),
			Member{"test", e.node(path.Field("test"), n.Test)},
			Member{"consequent", e.statement(path.Field("consequent"), n.Consequent)},
			Member{"alternate", e.statement(path.Field("alternate"), n.Alternate)},
		)
	case *ast.SwitchStatement:
		return node(n.Kind().String(),
			Member{"discriminant", e.node(path.Field("discriminant"), n.Discriminant)},
			Member{"cases", list(e, path.Field("cases"), n.Cases)},
		)
	case *ast.SwitchCase:
		return node(n.Kind().String(),
			Member{"test", e.node(path.Field("test"), n.Test)},
			Member{"consequent", e.statements(path.Field("consequent"), n.Body)},
		)
	case *ast.ThrowStatement:
		return node(n.Kind().String(), Member{"argument", e.node(path.Field("argument"), n.Argument)})
	case *ast.TryStatement:
		return node(n.Kind().String(),
			Member{"block", e.node(path.Field("block"), n.Block)},
			Member{"handler", e.node(path.Field("handler"), n.Handler)},
			Member{"finalizer", e.node(path.Field("finalizer"), n.Finalizer)},
		)
	case *ast.CatchClause:
		return node(n.Kind().String(),
			Member{"param", e.node(path.Field("param"), n.Param)},
			Member{"body", e.block(path.Field("body"), n.Body)},
		)
	case *ast.WhileStatement:
		return node(n.Kind().String(),
			Member{"test", e.node(path.Field("test"), n.Test)},
			Member{"body", e.statement(path.Field("body"), n.Body)},
		)
	case *ast.DoWhileStatement:
		return node(n.Kind().String(),
			Member{"body", e.statement(path.Field("body"), n.Body)},
			Member{"test", e.node(path.Field("test"), n.Test)},
		)
	case *ast.ForStatement:
		return node(n.Kind().String(),
			Member{"init", e.forInit(path.Field("init"), n.Init)},
			Member{"test", e.node(path.Field("test"), n.Test)},
			Member{"update", e.node(path.Field("update"), n.Update)},
			Member{"body", e.statement(path.Field("body"), n.Body)},
		)
	case *ast.ForInStatement:
		return node(n.Kind().String(),
			Member{"left", e.forInit(path.Field("left"), n.Left)},
			Member{"right", e.node(path.Field("right"), n.Right)},
			Member{"body", e.statement(path.Field("body"), n.Body)},
		)
	case *ast.VariableDeclaration:
		return node(n.Kind().String(),
			Member{"declarations", list(e, path.Field("declarations"), n.Declarations)},
			Member{"kind", n.Type.String()},
		)
	case *ast.VariableDeclarator:
		return node(n.Kind().String(),
			Member{"id", e.node(path.Field("id"), n.ID)},
			Member{"init", e.node(path.Field("init"), n.Init)},
		)
	}

	// Unreachable for a validated tree.
	e.fail(reporter.Errorf(path, reporter.ErrUnsupported, "cannot encode %T", n))
	return nil
}

func (e *encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// list encodes a list of nodes; nil elements become null.
func list[T ast.Node](e *encoder, path reporter.Path, nodes []T) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = e.node(path.Index(i), n)
	}
	return out
}

// statement encodes a statement slot; nil becomes EmptyStatement.
func (e *encoder) statement(path reporter.Path, n ast.Statement) any {
	if ast.IsNil(n) {
		return node(typeEmptyStatement)
	}
	return e.node(path, n)
}

func (e *encoder) statements(path reporter.Path, stmts []ast.Statement) []any {
	out := make([]any, len(stmts))
	for i, n := range stmts {
		out[i] = e.statement(path.Index(i), n)
	}
	return out
}

func (e *encoder) block(path reporter.Path, stmts []ast.Statement) Object {
	return node(ast.KindBlockStatement.String(), Member{"body", e.statements(path.Field("body"), stmts)})
}

func (e *encoder) function(path reporter.Path, kind ast.NodeKind, id *ast.Identifier, params []ast.Pattern, body []ast.Statement) Object {
	return node(kind.String(),
		Member{"id", e.node(path.Field("id"), id)},
		Member{"params", list(e, path.Field("params"), params)},
		Member{"body", e.block(path.Field("body"), body)},
		Member{"generator", false},
		Member{"async", false},
		Member{"expression", false},
	)
}

func (e *encoder) forInit(path reporter.Path, init ast.ForInit) any {
	v := init.Value()
	if v == nil {
		return nil
	}
	return e.node(path, v.(ast.Node))
}

func (e *encoder) literal(path reporter.Path, n *ast.Literal) Object {
	typ := n.Kind().String()
	switch v := n.Value.(type) {
	case ast.Regex:
		return node(typ,
			Member{"value", nil},
			Member{"regex", Object{
				{"pattern", v.Pattern},
				{"flags", v.Flags.String()},
			}},
		)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			e.fail(reporter.Errorf(path.Field("value"), reporter.ErrUnsupported, "%v cannot be written as JSON", v))
		}
	case float32:
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			e.fail(reporter.Errorf(path.Field("value"), reporter.ErrUnsupported, "%v cannot be written as JSON", v))
		}
	}
	return node(typ, Member{"value", n.Value})
}

// binary writes a flattened chain as nested binary expressions, nesting in
// the direction the operator associates.
func (e *encoder) binary(path reporter.Path, n *ast.BinaryExpression) Object {
	typ, text := binaryType(n.Operator), n.Operator.String()
	pair := func(left, right any) Object {
		return node(typ, Member{"operator", text}, Member{"left", left}, Member{"right", right})
	}

	left := e.node(path.Field("left"), n.Left)
	right := list(e, path.Field("right"), n.Right)
	if rightAssociative(n.Operator) {
		acc := right[len(right)-1]
		for i := len(right) - 2; i >= 0; i-- {
			acc = pair(right[i], acc)
		}
		return pair(left, acc)
	}

	acc := left
	for _, r := range right {
		acc = pair(acc, r)
	}
	return acc.(Object)
}

// member writes a flattened access chain as nested member expressions, each
// with the chain's computed flag.
func (e *encoder) member(path reporter.Path, n *ast.MemberExpression) Object {
	var acc any = e.node(path.Field("object"), n.Object)
	for _, idx := range list(e, path.Field("indices"), n.Indices) {
		acc = node(n.Kind().String(),
			Member{"object", acc},
			Member{"property", idx},
			Member{"computed", n.Computed},
		)
	}
	return acc.(Object)
}
