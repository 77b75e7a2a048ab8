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

// FunctionExpression is a function literal. ID may be nil.
type FunctionExpression struct {
	ID     *Identifier
	Params []Pattern
	Body   []Statement
}

// NewFunction returns a function literal. name may be empty for an
// anonymous function.
func NewFunction(name string, params ...Pattern) *FunctionExpression {
	fn := &FunctionExpression{Params: params}
	if name != "" {
		fn.ID = NewIdentifier(name)
	}
	return fn
}

// Add appends statements to the function body and returns f.
func (f *FunctionExpression) Add(stmts ...Statement) *FunctionExpression {
	return Append(f, stmts...)
}

// AddParams appends parameters and returns f.
func (f *FunctionExpression) AddParams(params ...Pattern) *FunctionExpression {
	return AppendParams(f, params...)
}

func (f *FunctionExpression) Statements() *[]Statement { return &f.Body }
func (f *FunctionExpression) Parameters() *[]Pattern  { return &f.Params }
func (f *FunctionExpression) Name() *Identifier        { return f.ID }

func (*FunctionExpression) Kind() NodeKind    { return KindFunctionExpression }
func (*FunctionExpression) isExpression()     {}
func (*FunctionExpression) isForInitializer() {}

// FunctionDeclaration is a named function statement. ID must not be nil.
type FunctionDeclaration struct {
	ID     *Identifier
	Params []Pattern
	Body   []Statement
}

// NewFunctionDeclaration returns a function declaration.
func NewFunctionDeclaration(name string, params ...Pattern) *FunctionDeclaration {
	return &FunctionDeclaration{ID: NewIdentifier(name), Params: params}
}

// Add appends statements to the function body and returns f.
func (f *FunctionDeclaration) Add(stmts ...Statement) *FunctionDeclaration {
	return Append(f, stmts...)
}

// AddParams appends parameters and returns f.
func (f *FunctionDeclaration) AddParams(params ...Pattern) *FunctionDeclaration {
	return AppendParams(f, params...)
}

func (f *FunctionDeclaration) Statements() *[]Statement { return &f.Body }
func (f *FunctionDeclaration) Parameters() *[]Pattern  { return &f.Params }
func (f *FunctionDeclaration) Name() *Identifier        { return f.ID }

func (*FunctionDeclaration) Kind() NodeKind { return KindFunctionDeclaration }
func (*FunctionDeclaration) isStatement()   {}

// Params is a convenience for building a parameter list from names.
func Params(names ...string) []Pattern {
	params := make([]Pattern, len(names))
	for i, name := range names {
		params[i] = NewIdentifier(name)
	}
	return params
}
