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

package printer_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jsast/ast"
	"github.com/bufbuild/jsast/discriminated"
	"github.com/bufbuild/jsast/printer"
	"github.com/bufbuild/jsast/reporter"
)

func id(name string) *ast.Identifier { return ast.NewIdentifier(name) }

func expr(e ast.Expression) ast.Statement { return ast.NewExpressionStatement(e) }

func call(name string, args ...ast.Expression) *ast.CallExpression {
	return ast.NewCall(id(name), args...)
}

func num(n int64) *ast.Literal { return ast.Number(n) }

type printTest struct {
	name           string
	node           ast.Node
	pretty, minify string
}

func runPrintTests(t *testing.T, tests []printTest) {
	t.Helper()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := printer.Print(test.node, printer.Options{})
			require.NoError(t, err)
			assert.Equal(t, test.pretty, got, "pretty")

			got, err = printer.Print(test.node, printer.Options{Minify: true})
			require.NoError(t, err)
			assert.Equal(t, test.minify, got, "minify")
		})
	}
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	runPrintTests(t, []printTest{
		{
			name: "declaration_and_expression",
			node: ast.NewProgram(
				ast.NewVar(ast.NewDeclarator("x", num(1))),
				expr(ast.NewBinary(id("x"), ast.OpAdd, num(2))),
			),
			pretty: "var x = 1;\n(x + 2);\n",
			minify: "var x=1;(x+2);",
		},
		{
			name: "ternary_fold",
			node: ast.NewIf(id("a"),
				ast.NewBlock(expr(call("f"))),
				ast.NewBlock(expr(call("g"))),
			),
			pretty: "if (a) {\n  f();\n} else {\n  g();\n}",
			minify: "a?f():g();",
		},
		{
			name: "no_fold_for_returns",
			node: ast.NewIf(id("a"),
				ast.NewBlock(ast.NewReturn(num(1))),
				ast.NewBlock(ast.NewReturn(num(2))),
			),
			pretty: "if (a) {\n  return 1;\n} else {\n  return 2;\n}",
			minify: "if(a)return 1;else return 2;",
		},
		{
			name:   "string_escaping",
			node:   ast.String("O'Brien\n"),
			pretty: `'O\'Brien\n'`,
			minify: `'O\'Brien\n'`,
		},
		{
			name:   "empty_program",
			node:   ast.NewProgram(),
			pretty: "",
			minify: "",
		},
		{
			name:   "empty_block",
			node:   ast.NewBlock(),
			pretty: "{}",
			minify: "{}",
		},
		{
			name:   "one_operand_binary",
			node:   ast.NewBinary(id("a"), ast.OpMul, id("b")),
			pretty: "(a * b)",
			minify: "(a*b)",
		},
	})
}

func TestStatements(t *testing.T) {
	t.Parallel()

	runPrintTests(t, []printTest{
		{
			name: "function",
			node: ast.NewFunctionDeclaration("f", ast.Params("a", "b")...).Add(
				ast.NewReturn(ast.NewBinary(id("a"), ast.OpAdd, id("b"))),
			),
			pretty: "function f(a, b) {\n  return (a + b);\n}",
			minify: "function f(a,b){return(a+b);}",
		},
		{
			name: "for",
			node: &ast.ForStatement{
				Init:   ast.ForInitOf(ast.NewVar(ast.NewDeclarator("i", num(0)))),
				Test:   ast.NewBinary(id("i"), ast.OpLt, id("n")),
				Update: ast.NewUnary(ast.UnaryPostInc, id("i")),
				Body:   ast.NewBlock(expr(call("f", id("i")))),
			},
			pretty: "for (var i = 0; (i < n); i++) {\n  f(i);\n}",
			minify: "for(var i=0;(i<n);i++)f(i);",
		},
		{
			name:   "for_empty",
			node:   &ast.ForStatement{},
			pretty: "for (;;);",
			minify: "for(;;);",
		},
		{
			name: "for_in",
			node: &ast.ForInStatement{
				Left:  ast.ForInitOf(ast.NewVar(ast.NewDeclarator("k", nil))),
				Right: id("o"),
				Body:  ast.NewBlock(),
			},
			pretty: "for (var k in o) {}",
			minify: "for(var k in o){}",
		},
		{
			name:   "while_without_braces",
			node:   &ast.WhileStatement{Test: id("a"), Body: expr(call("f"))},
			pretty: "while (a)\n  f();",
			minify: "while(a)f();",
		},
		{
			name:   "do_while",
			node:   &ast.DoWhileStatement{Body: ast.NewBlock(expr(call("f"))), Test: id("a")},
			pretty: "do {\n  f();\n} while (a);",
			minify: "do f();while(a);",
		},
		{
			name: "else_if",
			node: ast.NewIf(id("a"),
				ast.NewBlock(expr(call("f"))),
				ast.NewIf(id("b"), ast.NewBlock(expr(call("g"))), ast.NewBlock(expr(call("h")))),
			),
			pretty: "if (a) {\n  f();\n} else if (b) {\n  g();\n} else {\n  h();\n}",
			minify: "if(a)f();else b?g():h();",
		},
		{
			name: "dangling_else",
			node: ast.NewIf(id("a"),
				ast.NewBlock(ast.NewIf(id("b"), ast.NewBlock(expr(call("f"))), nil)),
				ast.NewBlock(expr(call("g"))),
			),
			pretty: "if (a) {\n  if (b) {\n    f();\n  }\n} else {\n  g();\n}",
			minify: "if(a){if(b)f();}else g();",
		},
		{
			name: "dangling_else_in_loop",
			node: ast.NewIf(id("a"),
				&ast.WhileStatement{Test: id("b"), Body: ast.NewIf(id("c"), expr(call("f")), nil)},
				ast.NewReturn(nil),
			),
			pretty: "if (a) {\n  while (b)\n    if (c)\n      f();\n} else\n  return;",
			minify: "if(a){while(b)if(c)f();}else return;",
		},
		{
			name: "lexical_declaration_keeps_block",
			node: ast.NewIf(id("a"), ast.NewBlock(&ast.VariableDeclaration{
				Type:         ast.DeclareLet,
				Declarations: []*ast.VariableDeclarator{ast.NewDeclarator("x", num(1))},
			}), nil),
			pretty: "if (a) {\n  let x = 1;\n}",
			minify: "if(a){let x=1;}",
		},
		{
			name: "switch",
			node: ast.NewSwitch(id("x"),
				ast.NewCase(num(1), expr(call("f")), &ast.BreakStatement{}),
				ast.NewCase(nil, expr(call("g"))),
			),
			pretty: "switch (x) {\n  case 1:\n    f();\n    break;\n  default:\n    g();\n}",
			minify: "switch(x){case 1:f();break;default:g();}",
		},
		{
			name: "try",
			node: &ast.TryStatement{
				Block:     ast.NewBlock(expr(call("f"))),
				Handler:   ast.NewCatch("e", expr(call("g"))),
				Finalizer: ast.NewBlock(expr(call("h"))),
			},
			pretty: "try {\n  f();\n} catch (e) {\n  g();\n} finally {\n  h();\n}",
			minify: "try{f();}catch(e){g();}finally{h();}",
		},
		{
			name: "labeled",
			node: &ast.LabeledStatement{
				Label: id("l"),
				Body: &ast.WhileStatement{
					Test: ast.Bool(true),
					Body: ast.NewBlock(&ast.BreakStatement{Label: id("l")}),
				},
			},
			pretty: "l: while (true) {\n  break l;\n}",
			minify: "l:while(true)break l;",
		},
		{
			name: "blocks_in_list",
			node: ast.NewProgram(
				ast.NewBlock(expr(call("f"))),
				ast.NewBlock(ast.NewBlock(ast.NewReturn(nil))),
				ast.NewBlock(&ast.VariableDeclaration{
					Type:         ast.DeclareLet,
					Declarations: []*ast.VariableDeclarator{ast.NewDeclarator("x", num(1))},
				}),
				ast.NewBlock(ast.NewFunctionDeclaration("g")),
			),
			pretty: "{\n  f();\n}\n{\n  {\n    return;\n  }\n}\n{\n  let x = 1;\n}\n{\n  function g() {}\n}\n",
			minify: "f();return;{let x=1;}{function g(){}}",
		},
		{
			name:   "block_in_case",
			node:   ast.NewSwitch(id("x"), ast.NewCase(nil, ast.NewBlock(expr(call("f"))))),
			pretty: "switch (x) {\n  default:\n    {\n      f();\n    }\n}",
			minify: "switch(x){default:f();}",
		},
		{
			name:   "with",
			node:   &ast.WithStatement{Object: id("o"), Body: ast.NewBlock()},
			pretty: "with (o) {}",
			minify: "with(o){}",
		},
		{
			name: "simple",
			node: ast.NewProgram(
				&ast.DebuggerStatement{},
				ast.NewReturn(nil),
				&ast.ThrowStatement{Argument: id("e")},
				&ast.ContinueStatement{},
				nil,
			),
			pretty: "debugger;\nreturn;\nthrow e;\ncontinue;\n;\n",
			minify: "debugger;return;throw e;continue;;",
		},
		{
			name:   "object_statement",
			node:   expr(ast.NewObject()),
			pretty: "({});",
			minify: "({});",
		},
		{
			name:   "function_statement",
			node:   expr(ast.NewCall(ast.Dot(ast.NewFunction("f"), "call"))),
			pretty: "(function f() {}).call();",
			minify: "(function f(){}).call();",
		},
		{
			name:   "object_on_conditional_spine",
			node:   expr(ast.NewConditional(ast.NewObject(), id("a"), id("b"))),
			pretty: "({} ? a : b);",
			minify: "({}?a:b);",
		},
		{
			name:   "iife",
			node:   expr(ast.NewCall(ast.NewFunction(""))),
			pretty: "(function() {})();",
			minify: "(function(){})();",
		},
		{
			name:   "let_index",
			node:   expr(ast.NewBinary(ast.NewMember(id("let"), true, num(0)), ast.OpAssign, num(1))),
			pretty: "(let[0] = 1);",
			minify: "(let[0]=1);",
		},
		{
			name:   "let_index_statement",
			node:   expr(ast.NewMember(id("let"), true, num(0))),
			pretty: "(let[0]);",
			minify: "(let[0]);",
		},
	})
}

func TestExpressions(t *testing.T) {
	t.Parallel()

	runPrintTests(t, []printTest{
		{
			name:   "member",
			node:   ast.NewMember(ast.Dot(id("a"), "b", "c"), true, num(0), ast.String("x")),
			pretty: "a.b.c[0]['x']",
			minify: "a.b.c[0]['x']",
		},
		{
			name:   "number_object",
			node:   ast.NewCall(ast.Dot(num(1), "toString")),
			pretty: "(1).toString()",
			minify: "(1).toString()",
		},
		{
			name:   "new_with_call_in_callee",
			node:   ast.NewNew(ast.Dot(call("a"), "b")),
			pretty: "new (a()).b()",
			minify: "new(a()).b()",
		},
		{
			name:   "keyword_operators",
			node:   ast.NewBinary(id("a"), ast.OpIn, id("b"), id("c")),
			pretty: "(a in b in c)",
			minify: "(a in b in c)",
		},
		{
			name:   "instanceof",
			node:   ast.NewBinary(ast.NewArray(), ast.OpInstanceof, id("Array")),
			pretty: "([] instanceof Array)",
			minify: "([] instanceof Array)",
		},
		{
			name:   "unary_adjacency",
			node:   ast.NewUnary(ast.UnaryNeg, ast.NewUnary(ast.UnaryNeg, id("x"))),
			pretty: "- -x",
			minify: "- -x",
		},
		{
			name:   "keyword_unary",
			node:   ast.NewUnary(ast.UnaryVoid, num(0)),
			pretty: "void 0",
			minify: "void 0",
		},
		{
			name:   "update_adjacency",
			node:   ast.NewBinary(ast.NewUnary(ast.UnaryPostInc, id("a")), ast.OpAdd, ast.NewUnary(ast.UnaryPreInc, id("b"))),
			pretty: "(a++ + ++b)",
			minify: "(a++ + ++b)",
		},
		{
			name:   "html_comment",
			node:   ast.NewBinary(id("a"), ast.OpLt, ast.NewUnary(ast.UnaryNot, ast.NewUnary(ast.UnaryPreDec, id("b")))),
			pretty: "(a < !--b)",
			minify: "(a<! --b)",
		},
		{
			name:   "negative_operand",
			node:   ast.NewBinary(id("a"), ast.OpSub, num(-1)),
			pretty: "(a - (-1))",
			minify: "(a-(-1))",
		},
		{
			name:   "exponent",
			node:   ast.NewBinary(ast.NewUnary(ast.UnaryNeg, id("a")), ast.OpExp, id("b")),
			pretty: "((-a) ** b)",
			minify: "((-a)**b)",
		},
		{
			name:   "sequence_argument",
			node:   call("f", ast.NewSequence(id("a"), id("b")), id("c")),
			pretty: "f((a, b), c)",
			minify: "f((a,b),c)",
		},
		{
			name:   "conditional_operand",
			node:   ast.NewBinary(ast.NewConditional(id("a"), id("b"), id("c")), ast.OpAdd, id("d")),
			pretty: "((a ? b : c) + d)",
			minify: "((a?b:c)+d)",
		},
		{
			name:   "array_holes",
			node:   ast.NewArray(num(1), nil, num(3)),
			pretty: "[1, , 3]",
			minify: "[1,,3]",
		},
		{
			name:   "array_trailing_hole",
			node:   ast.NewArray(num(1), nil),
			pretty: "[1, ,]",
			minify: "[1,,]",
		},
		{
			name: "object",
			node: ast.NewObject(
				ast.NewProperty(id("a"), num(1)),
				ast.NewProperty(ast.String("b c"), num(2)),
				ast.NewProperty(num(-1), id("x")),
				ast.NewAccessor(ast.PropertyGet, id("v"), ast.NewFunction("").Add(ast.NewReturn(num(1)))),
			),
			pretty: "{a: 1, 'b c': 2, '-1': x, get v() {\n  return 1;\n}}",
			minify: "{a:1,'b c':2,'-1':x,get v(){return 1;}}",
		},
		{
			name: "zero_keys",
			node: ast.NewObject(
				ast.NewProperty(ast.Number(math.Copysign(0, -1)), num(1)),
				ast.NewProperty(ast.Number(0.0), num(2)),
			),
			pretty: "{0: 1, 0: 2}",
			minify: "{0:1,0:2}",
		},
		{
			name:   "regex_division",
			node:   ast.NewBinary(id("a"), ast.OpDiv, ast.NewRegex("x", 0)),
			pretty: "(a / /x/)",
			minify: "(a/ /x/)",
		},
		{
			name:   "assignment_chain",
			node:   ast.NewBinary(id("a"), ast.OpAssign, id("b"), ast.Dot(&ast.ThisExpression{}, "c")),
			pretty: "(a = b = this.c)",
			minify: "(a=b=this.c)",
		},
	})
}

func TestLiterals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lit  *ast.Literal
		want string
	}{
		{"null", ast.Null(), "null"},
		{"true", ast.Bool(true), "true"},
		{"int", num(-42), "-42"},
		{"uint64", ast.Number(uint64(math.MaxUint64)), "18446744073709551615"},
		{"float", ast.Number(1.5), "1.5"},
		{"float_integral", ast.Number(3.0), "3"},
		{"float_large", ast.Number(1e21), "1e+21"},
		{"float32", ast.Number(float32(0.1)), "0.1"},
		{"nan", ast.Number(math.NaN()), "NaN"},
		{"infinity", ast.Number(math.Inf(1)), "Infinity"},
		{"negative_infinity", ast.Number(math.Inf(-1)), "-Infinity"},
		{"nul", ast.String("a\x00b"), `'a\0b'`},
		{"nul_digit", ast.String("\x001"), `'\x001'`},
		{"control", ast.String("\x01\x7f"), `'\x01\x7F'`},
		{"latin1", ast.String("é"), `'\xE9'`},
		{"escapes", ast.String("\\\t\r\b\f\v"), `'\\\t\r\b\f\v'`},
		{"line_separator", ast.String("\u2028\u2029"), `'\u2028\u2029'`},
		{"unicode", ast.String("日本"), "'日本'"},
		{"invalid_utf8", ast.String("\xff"), `'\xFF'`},
		{"regex", ast.NewRegex("a/b", ast.FlagIgnoreCase|ast.FlagGlobal), `/a\/b/gi`},
		{"regex_escaped", ast.NewRegex(`a\/b`, 0), `/a\/b/`},
		{"regex_empty", ast.NewRegex("", ast.FlagSticky), `/(?:)/y`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := printer.Print(test.lit, printer.Options{Minify: true})
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestIndent(t *testing.T) {
	t.Parallel()

	fn := ast.NewFunctionDeclaration("f").Add(ast.NewIf(id("a"), ast.NewReturn(nil), nil))
	got, err := printer.Print(ast.NewProgram(fn), printer.Options{Indent: "\t"})
	require.NoError(t, err)
	assert.Equal(t, "function f() {\n\tif (a)\n\t\treturn;\n}\n", got)
}

func TestPrintErrors(t *testing.T) {
	t.Parallel()

	_, err := printer.Print(nil, printer.Options{})
	require.ErrorIs(t, err, reporter.ErrContractViolation)

	tree := ast.NewProgram(expr(ast.NewCall(nil)))
	out, err := printer.Print(tree, printer.Options{})
	require.ErrorIs(t, err, reporter.ErrContractViolation)
	assert.Empty(t, out)

	var withPath reporter.ErrorWithPath
	require.ErrorAs(t, err, &withPath)
	assert.Equal(t, reporter.Path("$.body[0].expression.callee"), withPath.Path())

	nilInit := discriminated.OfB[*ast.VariableDeclaration, ast.Expression](nil)
	for _, node := range []ast.Node{
		&ast.ForStatement{Init: nilInit},
		&ast.ForInStatement{Left: nilInit, Right: id("o")},
		expr(ast.NewObject(ast.NewAccessor(ast.PropertySet, id("x"), ast.NewFunction("")))),
		expr(ast.NewRegex(`a\`, 0)),
	} {
		for _, minify := range []bool{false, true} {
			out, err := printer.Print(node, printer.Options{Minify: minify})
			require.ErrorIs(t, err, reporter.ErrContractViolation)
			assert.Empty(t, out)
		}
	}
}

// chunkWriter records each write separately.
type chunkWriter struct {
	writes  []string
	flushed bool
	err     error
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func (w *chunkWriter) Flush() error {
	w.flushed = true
	return nil
}

func TestFprint(t *testing.T) {
	t.Parallel()

	tree := ast.NewProgram(
		ast.NewVar(ast.NewDeclarator("x", num(1))),
		expr(ast.NewBinary(id("x"), ast.OpAdd, num(2))),
	)

	t.Run("chunks", func(t *testing.T) {
		t.Parallel()

		w := new(chunkWriter)
		err := printer.Fprint(context.Background(), w, tree, printer.Options{Minify: true, ChunkSize: 4})
		require.NoError(t, err)
		assert.Equal(t, []string{"var ", "x=1;", "(x+2", ");"}, w.writes)
		assert.True(t, w.flushed)
	})

	t.Run("matches_print", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		require.NoError(t, printer.Fprint(context.Background(), &out, tree, printer.Options{}))
		want, err := printer.Print(tree, printer.Options{})
		require.NoError(t, err)
		assert.Equal(t, want, out.String())
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := new(chunkWriter)
		err := printer.Fprint(ctx, w, tree, printer.Options{})
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, w.writes)
		assert.False(t, w.flushed)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		w := new(chunkWriter)
		err := printer.Fprint(context.Background(), w, ast.NewProgram(&ast.ThrowStatement{}), printer.Options{})
		require.ErrorIs(t, err, reporter.ErrContractViolation)
		assert.Empty(t, w.writes)
	})

	t.Run("write_error", func(t *testing.T) {
		t.Parallel()

		failure := errors.New("disk full")
		w := &chunkWriter{err: failure}
		err := printer.Fprint(context.Background(), w, tree, printer.Options{})
		require.ErrorIs(t, err, failure)
		assert.False(t, w.flushed)
	})
}
