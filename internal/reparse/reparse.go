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


// Package reparse reads printed JavaScript back with a standard ECMAScript
// parser, for tests of the printer.
//
// [Check] accepts anything the parser does. [Program] also converts the
// result back into the node model, for the subset of the language that
// minified output of simple trees uses: declarations, functions, jumps,
// if, while and do-while statements, calls, and operator expressions.
package reparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	"github.com/bufbuild/jsast/ast"
)

// Source is parsed as the body of a function so that return statements at
// the top level are accepted.
const (
	prefix = "function reparse(){\n"
	suffix = "\n}"
)

// Check parses src as a script.
func Check(src string) error {
	_, err := body(src)
	return err
}

// Program parses src and converts it into a tree.
func Program(src string) (*ast.Program, error) {
	stmts, err := body(src)
	if err != nil {
		return nil, err
	}
	var c converter
	prog := ast.NewProgram(c.statements(stmts)...)
	if c.err != nil {
		return nil, c.err
	}
	return prog, nil
}

func body(src string) ([]js.IStmt, error) {
	tree, err := js.Parse(parse.NewInputString(prefix+src+suffix), js.Options{})
	if err != nil {
		return nil, err
	}
	if len(tree.List) != 1 {
		return nil, fmt.Errorf("source escapes its wrapper: %d top-level statements", len(tree.List))
	}
	fn, ok := tree.List[0].(*js.FuncDecl)
	if !ok {
		return nil, fmt.Errorf("source escapes its wrapper: got %T", tree.List[0])
	}
	return fn.Body.List, nil
}

// converter holds the first unsupported construct found.
type converter struct {
	err error
}

func (c *converter) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf(format, args...)
	}
}

func (c *converter) statements(list []js.IStmt) []ast.Statement {
	out := make([]ast.Statement, 0, len(list))
	for _, s := range list {
		out = append(out, c.statement(s))
	}
	return out
}

func (c *converter) statement(s js.IStmt) ast.Statement {
	switch s := s.(type) {
	case nil, *js.EmptyStmt:
		return nil
	case *js.BlockStmt:
		return ast.NewBlock(c.statements(s.List)...)
	case *js.ExprStmt:
		return ast.NewExpressionStatement(c.expr(s.Value))
	case *js.DebuggerStmt:
		return &ast.DebuggerStatement{}
	case *js.ReturnStmt:
		return ast.NewReturn(c.optional(s.Value))
	case *js.ThrowStmt:
		return &ast.ThrowStatement{Argument: c.expr(s.Value)}
	case *js.IfStmt:
		return ast.NewIf(c.expr(s.Cond), c.statement(s.Body), c.statement(s.Else))
	case *js.WhileStmt:
		return &ast.WhileStatement{Test: c.expr(s.Cond), Body: c.statement(s.Body)}
	case *js.DoWhileStmt:
		return &ast.DoWhileStatement{Body: c.statement(s.Body), Test: c.expr(s.Cond)}
	case *js.LabelledStmt:
		return &ast.LabeledStatement{Label: ast.NewIdentifier(string(s.Label)), Body: c.statement(s.Value)}
	case *js.BranchStmt:
		var label *ast.Identifier
		if len(s.Label) > 0 {
			label = ast.NewIdentifier(string(s.Label))
		}
		if s.Type.String() == "continue" {
			return &ast.ContinueStatement{Label: label}
		}
		return &ast.BreakStatement{Label: label}
	case *js.VarDecl:
		return c.declaration(s)
	case *js.FuncDecl:
		if s.Name == nil {
			c.fail("anonymous function declaration")
			return nil
		}
		fn := ast.NewFunctionDeclaration(string(s.Name.Data))
		fn.Params = c.params(s.Params.List)
		fn.Body = c.statements(s.Body.List)
		return fn
	default:
		c.fail("unsupported statement %T", s)
		return nil
	}
}

func (c *converter) declaration(d *js.VarDecl) ast.Statement {
	decl := new(ast.VariableDeclaration)
	switch d.TokenType.String() {
	case "let":
		decl.Type = ast.DeclareLet
	case "const":
		decl.Type = ast.DeclareConst
	}
	for _, elem := range d.List {
		name, ok := elem.Binding.(*js.Var)
		if !ok {
			c.fail("unsupported binding %T", elem.Binding)
			return nil
		}
		decl.Declarations = append(decl.Declarations,
			ast.NewDeclarator(string(name.Data), c.optional(elem.Default)))
	}
	return decl
}

func (c *converter) params(list []js.BindingElement) []ast.Pattern {
	out := make([]ast.Pattern, 0, len(list))
	for _, elem := range list {
		name, ok := elem.Binding.(*js.Var)
		if !ok || elem.Default != nil {
			c.fail("unsupported parameter")
			return nil
		}
		out = append(out, ast.NewIdentifier(string(name.Data)))
	}
	return out
}

func (c *converter) optional(e js.IExpr) ast.Expression {
	if e == nil {
		return nil
	}
	return c.expr(e)
}

func (c *converter) expr(e js.IExpr) ast.Expression {
	switch e := e.(type) {
	case *js.GroupExpr:
		return c.expr(e.X)
	case *js.Var:
		return ast.NewIdentifier(string(e.Data))
	case *js.LiteralExpr:
		return c.literal(string(e.Data))
	case *js.UnaryExpr:
		return c.unary(e)
	case *js.BinaryExpr:
		op, ok := binaryOps[e.Op.String()]
		if !ok {
			c.fail("unsupported binary operator %s", e.Op)
			return nil
		}
		return ast.NewBinary(c.expr(e.X), op, c.expr(e.Y))
	case *js.CondExpr:
		return ast.NewConditional(c.expr(e.Cond), c.expr(e.X), c.expr(e.Y))
	case *js.CallExpr:
		call := ast.NewCall(c.expr(e.X))
		for _, arg := range e.Args.List {
			if arg.Rest {
				c.fail("unsupported spread argument")
				return nil
			}
			call.Arguments = append(call.Arguments, c.expr(arg.Value))
		}
		return call
	case *js.CommaExpr:
		seq := ast.NewSequence()
		for _, item := range e.List {
			seq.Expressions = append(seq.Expressions, c.expr(item))
		}
		return seq
	default:
		c.fail("unsupported expression %T", e)
		return nil
	}
}

func (c *converter) unary(e *js.UnaryExpr) ast.Expression {
	text := e.Op.String()
	switch text {
	case "++", "--":
		postfix := e.Op == js.PostIncrToken || e.Op == js.PostDecrToken
		return ast.NewUnary(ast.Update(text == "++", !postfix), c.expr(e.X))
	}
	op, ok := unaryOps[text]
	if !ok {
		c.fail("unsupported unary operator %s", text)
		return nil
	}
	return ast.NewUnary(op, c.expr(e.X))
}

func (c *converter) literal(text string) ast.Expression {
	switch text {
	case "this":
		return &ast.ThisExpression{}
	case "null":
		return ast.Null()
	case "true":
		return ast.Bool(true)
	case "false":
		return ast.Bool(false)
	}
	if text != "" && (text[0] == '\'' || text[0] == '"') {
		s, err := unquote(text)
		if err != nil {
			c.fail("%v", err)
			return nil
		}
		return ast.String(s)
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ast.Number(n)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		c.fail("unsupported literal %s", text)
		return nil
	}
	return ast.Number(f)
}

// unquote decodes a string literal that uses the escapes the printer emits.
func unquote(text string) (string, error) {
	if len(text) < 2 || text[len(text)-1] != text[0] {
		return "", fmt.Errorf("malformed string literal %s", text)
	}
	body := text[1 : len(text)-1]
	var out strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] != '\\' {
			out.WriteByte(body[i])
			continue
		}
		i++
		if i == len(body) {
			return "", fmt.Errorf("malformed string literal %s", text)
		}
		switch esc := body[i]; esc {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'v':
			out.WriteByte('\v')
		case '0':
			out.WriteByte(0)
		case 'x', 'u':
			width := 2
			if esc == 'u' {
				width = 4
			}
			if i+width >= len(body) {
				return "", fmt.Errorf("short escape in %s", text)
			}
			// Both forms name a code point, not a byte.
			n, err := strconv.ParseUint(body[i+1:i+1+width], 16, 32)
			if err != nil {
				return "", fmt.Errorf("bad escape in %s: %w", text, err)
			}
			out.WriteRune(rune(n))
			i += width
		default:
			out.WriteByte(esc)
		}
	}
	return out.String(), nil
}

var (
	binaryOps = map[string]ast.BinaryOperator{}
	unaryOps  = map[string]ast.UnaryOperator{}
)

func init() {
	for op := range ast.BinaryOperators() {
		binaryOps[op.String()] = op
	}
	for op := range ast.UnaryOperators() {
		if !op.IsUpdate() {
			unaryOps[op.String()] = op
		}
	}
}
