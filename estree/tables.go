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
	"github.com/bufbuild/jsast/ast"
)

// Type strings that do not correspond one-to-one with an [ast.NodeKind].
const (
	typeEmptyStatement       = "EmptyStatement"
	typeUpdateExpression     = "UpdateExpression"
	typeLogicalExpression    = "LogicalExpression"
	typeAssignmentExpression = "AssignmentExpression"
)

// readers is the dispatch table for every type string the reader accepts.
var readers map[string]readFunc

func init() {
	readers = map[string]readFunc{
		typeEmptyStatement:       readEmpty,
		typeUpdateExpression:     readUnary,
		typeLogicalExpression:    readBinary,
		typeAssignmentExpression: readBinary,
	}
	for kind, read := range map[ast.NodeKind]readFunc{
		ast.KindProgram:               readProgram,
		ast.KindIdentifier:            readIdentifier,
		ast.KindLiteral:               readLiteral,
		ast.KindThisExpression:        readThis,
		ast.KindArrayExpression:       readArray,
		ast.KindObjectExpression:      readObject,
		ast.KindProperty:              readProperty,
		ast.KindFunctionExpression:    readFunctionExpression,
		ast.KindUnaryExpression:       readUnary,
		ast.KindBinaryExpression:      readBinary,
		ast.KindMemberExpression:      readMember,
		ast.KindConditionalExpression: readConditional,
		ast.KindCallExpression:        readCall,
		ast.KindNewExpression:         readNew,
		ast.KindSequenceExpression:    readSequence,
		ast.KindBlockStatement:        readBlock,
		ast.KindExpressionStatement:   readExpressionStatement,
		ast.KindDebuggerStatement:     readDebugger,
		ast.KindWithStatement:         readWith,
		ast.KindReturnStatement:       readReturn,
		ast.KindLabeledStatement:      readLabeled,
		ast.KindBreakStatement:        readBreak,
		ast.KindContinueStatement:     readContinue,
		ast.KindIfStatement:           readIf,
		ast.KindSwitchStatement:       readSwitch,
		ast.KindSwitchCase:            readSwitchCase,
		ast.KindThrowStatement:        readThrow,
		ast.KindTryStatement:          readTry,
		ast.KindCatchClause:           readCatch,
		ast.KindWhileStatement:        readWhile,
		ast.KindDoWhileStatement:      readDoWhile,
		ast.KindForStatement:          readFor,
		ast.KindForInStatement:        readForIn,
		ast.KindFunctionDeclaration:   readFunctionDeclaration,
		ast.KindVariableDeclaration:   readVariableDeclaration,
		ast.KindVariableDeclarator:    readDeclarator,
	} {
		readers[kind.String()] = read
	}
}

// binaryOperators maps an ESTree type string and operator string to an
// operator. It is built from [ast.BinaryOperator.Class] and
// [ast.BinaryOperator.String], so it is the exact inverse of the writer's
// mapping.
var binaryOperators = func() map[string]map[string]ast.BinaryOperator {
	m := make(map[string]map[string]ast.BinaryOperator)
	for op := range ast.BinaryOperators() {
		class := op.Class().String()
		if m[class] == nil {
			m[class] = make(map[string]ast.BinaryOperator)
		}
		m[class][op.String()] = op
	}
	return m
}()

// unaryOperators maps a UnaryExpression operator string to an operator.
// Update operators are not included; see [updateOperator].
var unaryOperators = func() map[string]ast.UnaryOperator {
	m := make(map[string]ast.UnaryOperator)
	for op := range ast.UnaryOperators() {
		if !op.IsUpdate() {
			m[op.String()] = op
		}
	}
	return m
}()

// updateOperator maps an UpdateExpression operator string and prefix flag
// to an operator.
func updateOperator(text string, prefix bool) (ast.UnaryOperator, bool) {
	switch text {
	case "++":
		return ast.Update(true, prefix), true
	case "--":
		return ast.Update(false, prefix), true
	default:
		return ast.UnaryInvalid, false
	}
}

// binaryType returns the type string op is written with.
func binaryType(op ast.BinaryOperator) string {
	return op.Class().String()
}

// unaryType returns the type string op is written with.
func unaryType(op ast.UnaryOperator) string {
	if op.IsUpdate() {
		return typeUpdateExpression
	}
	return ast.KindUnaryExpression.String()
}

// rightAssociative returns whether a chain of op nests to the right, as in
// a = b = c and a ** b ** c.
func rightAssociative(op ast.BinaryOperator) bool {
	return op == ast.OpExp || op.Class() == ast.ClassAssignment
}

var declarationKinds = map[string]ast.DeclarationKind{
	ast.DeclareVar.String():   ast.DeclareVar,
	ast.DeclareLet.String():   ast.DeclareLet,
	ast.DeclareConst.String(): ast.DeclareConst,
}

var propertyKinds = map[string]ast.PropertyKind{
	ast.PropertyInit.String(): ast.PropertyInit,
	ast.PropertyGet.String():  ast.PropertyGet,
	ast.PropertySet.String():  ast.PropertySet,
}
