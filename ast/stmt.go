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

// Program is the root of a script.
type Program struct {
	Body []Statement
}

// NewProgram returns a program with the given statements.
func NewProgram(stmts ...Statement) *Program {
	return &Program{Body: stmts}
}

// Add appends statements and returns p.
func (p *Program) Add(stmts ...Statement) *Program {
	return Append(p, stmts...)
}

func (p *Program) Statements() *[]Statement { return &p.Body }
func (*Program) Kind() NodeKind             { return KindProgram }

// BlockStatement is a braced statement list.
type BlockStatement struct {
	Body []Statement
}

// NewBlock returns a block with the given statements.
func NewBlock(stmts ...Statement) *BlockStatement {
	return &BlockStatement{Body: stmts}
}

// Add appends statements and returns b.
func (b *BlockStatement) Add(stmts ...Statement) *BlockStatement {
	return Append(b, stmts...)
}

func (b *BlockStatement) Statements() *[]Statement { return &b.Body }
func (*BlockStatement) Kind() NodeKind             { return KindBlockStatement }
func (*BlockStatement) isStatement()               {}

// ExpressionStatement evaluates an expression for its side effects.
type ExpressionStatement struct {
	Expression Expression
}

// NewExpressionStatement returns an expression statement.
func NewExpressionStatement(e Expression) *ExpressionStatement {
	return &ExpressionStatement{Expression: e}
}

func (*ExpressionStatement) Kind() NodeKind { return KindExpressionStatement }
func (*ExpressionStatement) isStatement()   {}

// DebuggerStatement is the debugger keyword.
type DebuggerStatement struct{}

func (*DebuggerStatement) Kind() NodeKind { return KindDebuggerStatement }
func (*DebuggerStatement) isStatement()   {}

// WithStatement is with (Object) Body.
type WithStatement struct {
	Object Expression
	Body   Statement
}

func (*WithStatement) Kind() NodeKind { return KindWithStatement }
func (*WithStatement) isStatement()   {}

// ReturnStatement returns from a function. Argument may be nil.
type ReturnStatement struct {
	Argument Expression
}

// NewReturn returns a return statement. arg may be nil.
func NewReturn(arg Expression) *ReturnStatement {
	return &ReturnStatement{Argument: arg}
}

func (*ReturnStatement) Kind() NodeKind { return KindReturnStatement }
func (*ReturnStatement) isStatement()   {}

// LabeledStatement is Label: Body.
type LabeledStatement struct {
	Label *Identifier
	Body  Statement
}

func (*LabeledStatement) Kind() NodeKind { return KindLabeledStatement }
func (*LabeledStatement) isStatement()   {}

// BreakStatement is break, optionally with a label.
type BreakStatement struct {
	Label *Identifier
}

func (*BreakStatement) Kind() NodeKind { return KindBreakStatement }
func (*BreakStatement) isStatement()   {}

// ContinueStatement is continue, optionally with a label.
type ContinueStatement struct {
	Label *Identifier
}

func (*ContinueStatement) Kind() NodeKind { return KindContinueStatement }
func (*ContinueStatement) isStatement()   {}

// IfStatement is if (Test) Consequent else Alternate. A nil Alternate means
// there is no else branch.
type IfStatement struct {
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

// NewIf returns an if statement. alternate may be nil.
func NewIf(test Expression, consequent, alternate Statement) *IfStatement {
	return &IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
}

func (*IfStatement) Kind() NodeKind { return KindIfStatement }
func (*IfStatement) isStatement()   {}

// SwitchStatement is switch (Discriminant) { Cases }.
type SwitchStatement struct {
	Discriminant Expression
	Cases        []*SwitchCase
}

// NewSwitch returns a switch statement.
func NewSwitch(discriminant Expression, cases ...*SwitchCase) *SwitchStatement {
	return &SwitchStatement{Discriminant: discriminant, Cases: cases}
}

// AddCases appends cases and returns s.
func (s *SwitchStatement) AddCases(cases ...*SwitchCase) *SwitchStatement {
	s.Cases = append(s.Cases, cases...)
	return s
}

func (*SwitchStatement) Kind() NodeKind { return KindSwitchStatement }
func (*SwitchStatement) isStatement()   {}

// SwitchCase is one clause of a switch. A nil Test is the default clause.
type SwitchCase struct {
	Test Expression
	Body []Statement
}

// NewCase returns a case clause. test is nil for the default clause.
func NewCase(test Expression, stmts ...Statement) *SwitchCase {
	return &SwitchCase{Test: test, Body: stmts}
}

// Add appends statements and returns c.
func (c *SwitchCase) Add(stmts ...Statement) *SwitchCase {
	return Append(c, stmts...)
}

func (c *SwitchCase) Statements() *[]Statement { return &c.Body }
func (*SwitchCase) Kind() NodeKind             { return KindSwitchCase }

// ThrowStatement throws Argument.
type ThrowStatement struct {
	Argument Expression
}

func (*ThrowStatement) Kind() NodeKind { return KindThrowStatement }
func (*ThrowStatement) isStatement()   {}

// TryStatement is try Block catch Handler finally Finalizer.
//
// At least one of Handler and a non-empty Finalizer must be present.
type TryStatement struct {
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

// HasFinalizer returns whether t has a finally clause with at least one
// statement in it.
func (t *TryStatement) HasFinalizer() bool {
	return t.Finalizer != nil && len(t.Finalizer.Body) > 0
}

func (*TryStatement) Kind() NodeKind { return KindTryStatement }
func (*TryStatement) isStatement()   {}

// CatchClause is catch (Param) { Body }.
type CatchClause struct {
	Param Pattern
	Body  []Statement
}

// NewCatch returns a catch clause binding the given name.
func NewCatch(param string, stmts ...Statement) *CatchClause {
	return &CatchClause{Param: NewIdentifier(param), Body: stmts}
}

// Add appends statements and returns c.
func (c *CatchClause) Add(stmts ...Statement) *CatchClause {
	return Append(c, stmts...)
}

func (c *CatchClause) Statements() *[]Statement { return &c.Body }
func (*CatchClause) Kind() NodeKind             { return KindCatchClause }

// WhileStatement is while (Test) Body.
type WhileStatement struct {
	Test Expression
	Body Statement
}

func (*WhileStatement) Kind() NodeKind { return KindWhileStatement }
func (*WhileStatement) isStatement()   {}

// DoWhileStatement is do Body while (Test).
type DoWhileStatement struct {
	Body Statement
	Test Expression
}

func (*DoWhileStatement) Kind() NodeKind { return KindDoWhileStatement }
func (*DoWhileStatement) isStatement()   {}

// ForStatement is for (Init; Test; Update) Body. Test and Update may be nil.
type ForStatement struct {
	Init   ForInit
	Test   Expression
	Update Expression
	Body   Statement
}

func (*ForStatement) Kind() NodeKind { return KindForStatement }
func (*ForStatement) isStatement()   {}

// ForInStatement is for (Left in Right) Body. Left must not be empty.
type ForInStatement struct {
	Left  ForInit
	Right Expression
	Body  Statement
}

func (*ForInStatement) Kind() NodeKind { return KindForInStatement }
func (*ForInStatement) isStatement()   {}

// DeclarationKind is the keyword of a [VariableDeclaration].
type DeclarationKind byte

const (
	DeclareVar DeclarationKind = iota
	DeclareLet
	DeclareConst
)

// String returns the declaration keyword.
func (k DeclarationKind) String() string {
	switch k {
	case DeclareLet:
		return "let"
	case DeclareConst:
		return "const"
	default:
		return "var"
	}
}

// VariableDeclaration declares one or more variables. It must have at least
// one declarator.
type VariableDeclaration struct {
	Declarations []*VariableDeclarator
	Type         DeclarationKind
}

// NewVar returns a var declaration.
func NewVar(decls ...*VariableDeclarator) *VariableDeclaration {
	return &VariableDeclaration{Declarations: decls}
}

// AddDeclarations appends declarators and returns d.
func (d *VariableDeclaration) AddDeclarations(decls ...*VariableDeclarator) *VariableDeclaration {
	d.Declarations = append(d.Declarations, decls...)
	return d
}

func (*VariableDeclaration) Kind() NodeKind    { return KindVariableDeclaration }
func (*VariableDeclaration) isStatement()      {}
func (*VariableDeclaration) isForInitializer() {}

// VariableDeclarator is ID = Init. Init may be nil.
type VariableDeclarator struct {
	ID   Pattern
	Init Expression
}

// NewDeclarator returns a declarator. init may be nil.
func NewDeclarator(name string, init Expression) *VariableDeclarator {
	return &VariableDeclarator{ID: NewIdentifier(name), Init: init}
}

func (*VariableDeclarator) Kind() NodeKind { return KindVariableDeclarator }
