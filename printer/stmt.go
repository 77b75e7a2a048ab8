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

package printer

import (
	"bytes"

	"github.com/bufbuild/jsast/ast"
)

// stmt normalizes a typed nil statement to an untyped nil, which is an
// empty statement.
func stmt(s ast.Statement) ast.Statement {
	if ast.IsNil(s) {
		return nil
	}
	return s
}

// printStatements prints a statement list, one statement per line.
func (p *printer) printStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		p.indent()
		p.printStatement(p.collapse(s))
		p.newline()
	}
}

// printBlock prints a braced statement list. The closing brace is not
// followed by a newline.
func (p *printer) printBlock(stmts []ast.Statement) {
	if len(stmts) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.newline()
	p.depth++
	p.printStatements(stmts)
	p.depth--
	p.indent()
	p.print("}")
}

func (p *printer) printStatement(s ast.Statement) {
	switch s := stmt(s).(type) {
	case nil:
		p.print(";")
	case *ast.BlockStatement:
		p.printBlock(s.Body)
	case *ast.ExpressionStatement:
		p.printExprStatement(s.Expression)
	case *ast.DebuggerStatement:
		p.print("debugger")
		p.print(";")
	case *ast.WithStatement:
		p.print("with")
		p.printParenthesized(s.Object)
		p.printBody(s.Body)
	case *ast.ReturnStatement:
		p.print("return")
		if !ast.IsNil(s.Argument) {
			p.space()
			p.printExpr(s.Argument, 0)
		}
		p.print(";")
	case *ast.LabeledStatement:
		p.print(s.Label.Name)
		p.print(":")
		body := p.collapse(s.Body)
		if body != nil {
			p.space()
		}
		p.printStatement(body)
	case *ast.BreakStatement:
		p.printJump("break", s.Label)
	case *ast.ContinueStatement:
		p.printJump("continue", s.Label)
	case *ast.IfStatement:
		p.printIf(s)
	case *ast.SwitchStatement:
		p.printSwitch(s)
	case *ast.ThrowStatement:
		p.print("throw")
		p.space()
		p.printExpr(s.Argument, 0)
		p.print(";")
	case *ast.TryStatement:
		p.printTry(s)
	case *ast.WhileStatement:
		p.print("while")
		p.printParenthesized(s.Test)
		p.printBody(s.Body)
	case *ast.DoWhileStatement:
		p.printDoWhile(s)
	case *ast.ForStatement:
		p.printFor(s)
	case *ast.ForInStatement:
		p.printForIn(s)
	case *ast.FunctionDeclaration:
		p.printFunction(s.ID, s.Params, s.Body)
	case *ast.VariableDeclaration:
		p.printDeclaration(s)
		p.print(";")
	default:
		panic("printer: unexpected statement " + s.Kind().String())
	}
}

// printParenthesized prints " (e)" after a keyword.
func (p *printer) printParenthesized(e ast.Expression) {
	p.space()
	p.print("(")
	p.printExpr(e, 0)
	p.print(")")
}

func (p *printer) printJump(keyword string, label *ast.Identifier) {
	p.print(keyword)
	if label != nil {
		p.space()
		p.print(label.Name)
	}
	p.print(";")
}

// printExprStatement prints e followed by a semicolon, parenthesizing it
// if its text would otherwise be read as a block, a function declaration,
// or a lexical declaration.
func (p *printer) printExprStatement(e ast.Expression) {
	start := len(p.out)
	p.printExpr(e, 0)
	if start < len(p.out) && p.out[start] == ' ' {
		start++
	}
	if ambiguousStatement(p.out[start:]) {
		p.out = append(p.out, 0)
		copy(p.out[start+1:], p.out[start:])
		p.out[start] = '('
		p.print(")")
	}
	p.print(";")
}

func ambiguousStatement(text []byte) bool {
	if bytes.HasPrefix(text, []byte("{")) {
		return true
	}
	if rest, ok := bytes.CutPrefix(text, []byte("function")); ok {
		return len(rest) == 0 || !isIdentByte(rest[0])
	}
	if rest, ok := bytes.CutPrefix(text, []byte("let")); ok {
		rest = bytes.TrimLeft(rest, " ")
		return bytes.HasPrefix(rest, []byte("["))
	}
	return false
}

// collapse replaces single-statement blocks with the statement they hold,
// when minifying. Function declarations and lexical declarations stay in
// their block.
func (p *printer) collapse(s ast.Statement) ast.Statement {
	s = stmt(s)
	if !p.opts.Minify {
		return s
	}
	for {
		block, ok := s.(*ast.BlockStatement)
		if !ok || len(block.Body) != 1 {
			return s
		}
		inner := stmt(block.Body[0])
		switch inner := inner.(type) {
		case *ast.FunctionDeclaration:
			return s
		case *ast.VariableDeclaration:
			if inner.Type != ast.DeclareVar {
				return s
			}
		}
		s = inner
	}
}

// printBody prints the body of a compound statement, after its header.
func (p *printer) printBody(body ast.Statement) {
	p.printClause(p.collapse(body))
}

func (p *printer) printClause(body ast.Statement) {
	switch body := body.(type) {
	case nil:
		p.print(";")
	case *ast.BlockStatement:
		p.space()
		p.printBlock(body.Body)
	default:
		if p.opts.Minify {
			p.printStatement(body)
			return
		}
		p.newline()
		p.depth++
		p.indent()
		p.printStatement(body)
		p.depth--
	}
}

// endClause prepares for a keyword that continues a statement after a
// clause printed by printClause, such as else or while.
func (p *printer) endClause(body ast.Statement) {
	if _, ok := body.(*ast.BlockStatement); ok {
		p.space()
		return
	}
	p.newline()
	p.indent()
}

// danglingIf reports whether s, printed as a clause, would end in an if
// statement without an else, which would capture a following else.
func (p *printer) danglingIf(s ast.Statement) bool {
	switch s := p.collapse(s).(type) {
	case *ast.IfStatement:
		if stmt(s.Alternate) == nil {
			return true
		}
		return p.danglingIf(s.Alternate)
	case *ast.WhileStatement:
		return p.danglingIf(s.Body)
	case *ast.ForStatement:
		return p.danglingIf(s.Body)
	case *ast.ForInStatement:
		return p.danglingIf(s.Body)
	case *ast.WithStatement:
		return p.danglingIf(s.Body)
	case *ast.LabeledStatement:
		return p.danglingIf(s.Body)
	default:
		return false
	}
}

// ternaryBranch returns the expression of a branch that consists of a single
// expression statement, possibly inside a block.
func ternaryBranch(s ast.Statement) (ast.Expression, bool) {
	s = stmt(s)
	if block, ok := s.(*ast.BlockStatement); ok {
		if len(block.Body) != 1 {
			return nil, false
		}
		s = stmt(block.Body[0])
	}
	e, ok := s.(*ast.ExpressionStatement)
	if !ok {
		return nil, false
	}
	return e.Expression, true
}

func (p *printer) printIf(s *ast.IfStatement) {
	alt := stmt(s.Alternate)
	if p.opts.Minify && alt != nil {
		then, ok1 := ternaryBranch(s.Consequent)
		els, ok2 := ternaryBranch(alt)
		if ok1 && ok2 {
			p.printExprStatement(ast.NewConditional(s.Test, then, els))
			return
		}
	}

	p.print("if")
	p.printParenthesized(s.Test)
	cons := p.collapse(s.Consequent)
	if alt == nil {
		p.printClause(cons)
		return
	}
	if p.danglingIf(cons) {
		cons = ast.NewBlock(cons)
	}
	p.printClause(cons)
	p.endClause(cons)
	p.print("else")

	alt = p.collapse(alt)
	if elseIf, ok := alt.(*ast.IfStatement); ok {
		p.space()
		p.printIf(elseIf)
		return
	}
	p.printClause(alt)
}

func (p *printer) printSwitch(s *ast.SwitchStatement) {
	p.print("switch")
	p.printParenthesized(s.Discriminant)
	p.space()
	if len(s.Cases) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.newline()
	p.depth++
	for _, c := range s.Cases {
		p.indent()
		p.printCase(c)
		p.newline()
	}
	p.depth--
	p.indent()
	p.print("}")
}

// printCase prints a case clause. Its statements are printed on their own
// lines, one level deeper; the final newline is left to the caller.
func (p *printer) printCase(c *ast.SwitchCase) {
	if ast.IsNil(c.Test) {
		p.print("default")
	} else {
		p.print("case")
		p.space()
		p.printExpr(c.Test, 0)
	}
	p.print(":")
	p.depth++
	for _, s := range c.Body {
		p.newline()
		p.indent()
		p.printStatement(p.collapse(s))
	}
	p.depth--
}

func (p *printer) printTry(s *ast.TryStatement) {
	p.print("try")
	p.space()
	p.printBlock(s.Block.Body)
	if s.Handler != nil {
		p.space()
		p.printCatch(s.Handler)
	}
	if s.HasFinalizer() {
		p.space()
		p.print("finally")
		p.space()
		p.printBlock(s.Finalizer.Body)
	}
}

func (p *printer) printCatch(c *ast.CatchClause) {
	p.print("catch")
	p.space()
	p.print("(")
	p.printPattern(c.Param)
	p.print(")")
	p.space()
	p.printBlock(c.Body)
}

func (p *printer) printDoWhile(s *ast.DoWhileStatement) {
	p.print("do")
	body := p.collapse(s.Body)
	p.printClause(body)
	p.endClause(body)
	p.print("while")
	p.printParenthesized(s.Test)
	p.print(";")
}

func (p *printer) printFor(s *ast.ForStatement) {
	p.print("for")
	p.space()
	p.print("(")
	p.printForInit(s.Init)
	p.print(";")
	if !ast.IsNil(s.Test) {
		p.space()
		p.printExpr(s.Test, 0)
	}
	p.print(";")
	if !ast.IsNil(s.Update) {
		p.space()
		p.printExpr(s.Update, 0)
	}
	p.print(")")
	p.printBody(s.Body)
}

func (p *printer) printForIn(s *ast.ForInStatement) {
	p.print("for")
	p.space()
	p.print("(")
	p.printForInit(s.Left)
	p.keyword("in")
	p.printExpr(s.Right, 0)
	p.print(")")
	p.printBody(s.Body)
}

func (p *printer) printForInit(init ast.ForInit) {
	init.Match(
		func(decl *ast.VariableDeclaration) { p.printDeclaration(decl) },
		func(e ast.Expression) { p.printExpr(e, 0) },
		func() {},
	)
}

// printDeclaration prints a variable declaration without its semicolon.
func (p *printer) printDeclaration(d *ast.VariableDeclaration) {
	p.print(d.Type.String())
	p.space()
	for i, decl := range d.Declarations {
		if i > 0 {
			p.comma()
		}
		p.printDeclarator(decl)
	}
}

func (p *printer) printDeclarator(d *ast.VariableDeclarator) {
	p.printPattern(d.ID)
	if !ast.IsNil(d.Init) {
		p.space()
		p.print("=")
		p.space()
		p.printExpr(d.Init, ctxList)
	}
}

func (p *printer) printPattern(pat ast.Pattern) {
	switch pat := pat.(type) {
	case *ast.Identifier:
		p.print(pat.Name)
	default:
		panic("printer: unexpected pattern " + pat.Kind().String())
	}
}

// printFunction prints the function keyword, an optional name, and the
// parameters and body.
func (p *printer) printFunction(name *ast.Identifier, params []ast.Pattern, body []ast.Statement) {
	p.print("function")
	if name != nil {
		p.space()
		p.print(name.Name)
	}
	p.printFunctionTail(params, body)
}

func (p *printer) printFunctionTail(params []ast.Pattern, body []ast.Statement) {
	p.print("(")
	for i, param := range params {
		if i > 0 {
			p.comma()
		}
		p.printPattern(param)
	}
	p.print(")")
	p.space()
	p.printBlock(body)
}
