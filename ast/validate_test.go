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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/jsast/ast"
	"github.com/bufbuild/jsast/discriminated"
	"github.com/bufbuild/jsast/reporter"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	x := func() *ast.Identifier { return ast.NewIdentifier("x") }
	exprStmt := func(e ast.Expression) ast.Statement { return ast.NewExpressionStatement(e) }

	tests := []struct {
		name string
		node ast.Node
		path reporter.Path // Empty if the tree is valid.
	}{
		{
			name: "ok",
			node: ast.NewProgram(
				ast.NewVar(ast.NewDeclarator("x", ast.Number(1))),
				exprStmt(ast.NewBinary(x(), ast.OpAdd, ast.Number(2))),
				nil,
			),
		},
		{
			name: "nil root",
			node: (*ast.Program)(nil),
			path: "$",
		},
		{
			name: "missing expression",
			node: ast.NewProgram(nil, &ast.ExpressionStatement{}),
			path: "$.body[1].expression",
		},
		{
			name: "empty identifier",
			node: ast.NewProgram(exprStmt(ast.NewIdentifier(""))),
			path: "$.body[0].expression.name",
		},
		{
			name: "typed nil child",
			node: ast.NewProgram(exprStmt(ast.NewCall((*ast.Identifier)(nil)))),
			path: "$.body[0].expression.callee",
		},
		{
			name: "nil argument",
			node: exprStmt(ast.NewCall(x(), nil)),
			path: "$.expression.arguments[0]",
		},
		{
			name: "empty binary",
			node: exprStmt(&ast.BinaryExpression{Left: x(), Operator: ast.OpAdd}),
			path: "$.expression.right",
		},
		{
			name: "bad operator",
			node: exprStmt(ast.NewBinary(x(), ast.OpInvalid, x())),
			path: "$.expression.operator",
		},
		{
			name: "dot with literal",
			node: exprStmt(ast.NewMember(x(), false, ast.String("y"))),
			path: "$.expression.indices[0]",
		},
		{
			name: "computed with literal",
			node: exprStmt(ast.NewMember(x(), true, ast.String("y"))),
		},
		{
			name: "empty sequence",
			node: exprStmt(ast.NewSequence()),
			path: "$.expression.expressions",
		},
		{
			name: "bad literal",
			node: exprStmt(&ast.Literal{Value: []int{1}}),
			path: "$.expression.value",
		},
		{
			name: "getter without function",
			node: exprStmt(ast.NewObject(&ast.Property{
				Key:   ast.KeyOf(x()),
				Value: ast.Number(1),
				Type:  ast.PropertyGet,
			})),
			path: "$.expression.properties[0].value",
		},
		{
			name: "setter without parameter",
			node: exprStmt(ast.NewObject(ast.NewAccessor(ast.PropertySet, x(), ast.NewFunction("")))),
			path: "$.expression.properties[0].value.params",
		},
		{
			name: "getter with parameter",
			node: exprStmt(ast.NewObject(ast.NewAccessor(ast.PropertyGet, x(), ast.NewFunction("", ast.Params("v")...)))),
			path: "$.expression.properties[0].value.params",
		},
		{
			name: "setter",
			node: exprStmt(ast.NewObject(ast.NewAccessor(ast.PropertySet, x(), ast.NewFunction("", ast.Params("v")...)))),
		},
		{
			name: "regex with trailing backslash",
			node: exprStmt(ast.NewRegex(`a\`, 0)),
			path: "$.expression.regex.pattern",
		},
		{
			name: "regex with escaped backslash",
			node: exprStmt(ast.NewRegex(`a\\`, 0)),
		},
		{
			name: "property without key",
			node: exprStmt(ast.NewObject(&ast.Property{Value: x()})),
			path: "$.expression.properties[0].key",
		},
		{
			name: "try without handler",
			node: &ast.TryStatement{Block: ast.NewBlock(), Finalizer: ast.NewBlock()},
			path: "$",
		},
		{
			name: "try with finalizer",
			node: &ast.TryStatement{Block: ast.NewBlock(), Finalizer: ast.NewBlock(nil)},
		},
		{
			name: "try with handler",
			node: &ast.TryStatement{Block: ast.NewBlock(), Handler: ast.NewCatch("e")},
		},
		{
			name: "for-in without left",
			node: &ast.ForInStatement{Right: x()},
			path: "$.left",
		},
		{
			name: "for-in with nil expression",
			node: &ast.ForInStatement{
				Left:  discriminated.OfB[*ast.VariableDeclaration, ast.Expression](nil),
				Right: x(),
			},
			path: "$.left",
		},
		{
			name: "for with nil expression",
			node: &ast.ForStatement{Init: discriminated.OfB[*ast.VariableDeclaration, ast.Expression](nil)},
			path: "$.init",
		},
		{
			name: "for with typed nil declaration",
			node: &ast.ForStatement{Init: discriminated.OfA[*ast.VariableDeclaration, ast.Expression](nil)},
			path: "$.init",
		},
		{
			name: "for without init",
			node: &ast.ForStatement{},
		},
		{
			name: "property with nil identifier key",
			node: exprStmt(ast.NewObject(&ast.Property{
				Key:   discriminated.OfB[*ast.Literal, *ast.Identifier](nil),
				Value: x(),
			})),
			path: "$.expression.properties[0].key",
		},
		{
			name: "for-in with initializer",
			node: &ast.ForInStatement{
				Left:  ast.ForInitOf(ast.NewVar(ast.NewDeclarator("k", x()))),
				Right: x(),
			},
			path: "$.left.declarations[0].init",
		},
		{
			name: "for-in const",
			node: &ast.ForInStatement{
				Left: ast.ForInitOf(&ast.VariableDeclaration{
					Type:         ast.DeclareConst,
					Declarations: []*ast.VariableDeclarator{ast.NewDeclarator("k", nil)},
				}),
				Right: x(),
			},
		},
		{
			name: "const without initializer",
			node: &ast.VariableDeclaration{
				Type:         ast.DeclareConst,
				Declarations: []*ast.VariableDeclarator{ast.NewDeclarator("k", nil)},
			},
			path: "$.declarations[0].init",
		},
		{
			name: "empty declaration",
			node: ast.NewVar(),
			path: "$.declarations",
		},
		{
			name: "two defaults",
			node: ast.NewSwitch(x(), ast.NewCase(nil), ast.NewCase(ast.Number(1)), ast.NewCase(nil)),
			path: "$.cases[2]",
		},
		{
			name: "labeled without label",
			node: &ast.LabeledStatement{Body: ast.NewBlock()},
			path: "$.label",
		},
		{
			name: "nested in function",
			node: ast.NewFunctionDeclaration("f").Add(ast.NewIf(nil, nil, nil)),
			path: "$.body[0].test",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := ast.Validate(test.node)
			if test.path == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, reporter.ErrContractViolation)
			var withPath reporter.ErrorWithPath
			require.ErrorAs(t, err, &withPath)
			assert.Equal(t, test.path, withPath.Path())
		})
	}
}

func TestChildren(t *testing.T) {
	t.Parallel()

	call := ast.NewCall(ast.Dot(ast.NewIdentifier("console"), "log"), ast.String("hi"), ast.Number(1))
	var edges []string
	for edge, child := range ast.Children(call) {
		edges = append(edges, edge.String()+"="+child.Kind().String())
	}
	assert.Equal(t, []string{
		"callee=MemberExpression",
		"arguments[0]=Literal",
		"arguments[1]=Literal",
	}, edges)

	// Holes and absent fields are skipped.
	arr := ast.NewArray(ast.Number(1), nil, ast.Number(3))
	var indices []int
	for edge := range ast.Children(arr) {
		indices = append(indices, edge.Index)
	}
	assert.Equal(t, []int{0, 2}, indices)

	loop := &ast.ForStatement{Init: ast.ForInitOf(ast.NewIdentifier("i"))}
	var fields []string
	for edge := range ast.Children(loop) {
		fields = append(fields, edge.String())
	}
	assert.Equal(t, []string{"init"}, fields)

	// Stopping early is honored.
	count := 0
	for range ast.Children(call) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
