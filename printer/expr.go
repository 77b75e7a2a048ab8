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
	"github.com/bufbuild/jsast/ast"
)

// exprContext describes the position an expression is printed in, which
// decides whether it needs parentheses.
type exprContext uint8

const (
	// ctxOperand is the operand of a unary, binary or conditional expression.
	ctxOperand exprContext = 1 << iota
	// ctxList is an element of a comma-separated list.
	ctxList
	// ctxPostfix is the object of a member access or the callee of a call.
	ctxPostfix
	// ctxNewCallee is the callee of a new expression, or an object on its
	// left spine.
	ctxNewCallee
	// ctxExponent is an operand of **, which may not be a unary expression.
	ctxExponent
)

func needsParens(e ast.Expression, ctx exprContext) bool {
	switch e := e.(type) {
	case *ast.SequenceExpression:
		return ctx&(ctxOperand|ctxList|ctxPostfix) != 0
	case *ast.ConditionalExpression:
		return ctx&(ctxOperand|ctxPostfix) != 0
	case *ast.UnaryExpression:
		return ctx&ctxPostfix != 0 || (ctx&ctxExponent != 0 && !e.Operator.IsUpdate())
	case *ast.FunctionExpression, *ast.ObjectExpression:
		return ctx&ctxPostfix != 0
	case *ast.CallExpression:
		return ctx&ctxNewCallee != 0
	case *ast.Literal:
		if e.ValueKind() != ast.LiteralNumber {
			return false
		}
		return ctx&ctxPostfix != 0 || (ctx&(ctxOperand|ctxExponent) != 0 && negative(e.Value))
	default:
		return false
	}
}

func (p *printer) printExpr(e ast.Expression, ctx exprContext) {
	if needsParens(e, ctx) {
		p.print("(")
		p.printExpr(e, 0)
		p.print(")")
		return
	}

	switch e := e.(type) {
	case *ast.Identifier:
		p.print(e.Name)
	case *ast.ThisExpression:
		p.print("this")
	case *ast.Literal:
		p.printLiteral(e)
	case *ast.ArrayExpression:
		p.printArray(e)
	case *ast.ObjectExpression:
		p.printObject(e)
	case *ast.FunctionExpression:
		p.printFunction(e.ID, e.Params, e.Body)
	case *ast.UnaryExpression:
		p.printUnary(e)
	case *ast.BinaryExpression:
		p.printBinary(e)
	case *ast.MemberExpression:
		p.printExpr(e.Object, ctxPostfix|ctx&ctxNewCallee)
		for _, index := range e.Indices {
			if e.Computed {
				p.print("[")
				p.printExpr(index, 0)
				p.print("]")
				continue
			}
			p.print(".")
			p.printExpr(index, 0)
		}
	case *ast.ConditionalExpression:
		p.printExpr(e.Test, ctxOperand)
		p.space()
		p.print("?")
		p.space()
		p.printExpr(e.Consequent, ctxOperand)
		p.space()
		p.print(":")
		p.space()
		p.printExpr(e.Alternate, ctxOperand)
	case *ast.CallExpression:
		p.printExpr(e.Callee, ctxPostfix)
		p.printArguments(e.Arguments)
	case *ast.NewExpression:
		p.print("new")
		p.space()
		p.printExpr(e.Callee, ctxPostfix|ctxNewCallee)
		p.printArguments(e.Arguments)
	case *ast.SequenceExpression:
		for i, e := range e.Expressions {
			if i > 0 {
				p.comma()
			}
			p.printExpr(e, ctxList)
		}
	default:
		panic("printer: unexpected expression " + e.Kind().String())
	}
}

func (p *printer) printArguments(args []ast.Expression) {
	p.print("(")
	for i, arg := range args {
		if i > 0 {
			p.comma()
		}
		p.printExpr(arg, ctxList)
	}
	p.print(")")
}

func (p *printer) printArray(a *ast.ArrayExpression) {
	p.print("[")
	for i, e := range a.Elements {
		if i > 0 {
			p.comma()
		}
		if !ast.IsNil(e) {
			p.printExpr(e, ctxList)
		}
	}
	if n := len(a.Elements); n > 0 && ast.IsNil(a.Elements[n-1]) {
		// A trailing comma does not count as an element, so a trailing hole
		// needs one more.
		p.print(",")
	}
	p.print("]")
}

func (p *printer) printObject(o *ast.ObjectExpression) {
	p.print("{")
	for i, prop := range o.Properties {
		if i > 0 {
			p.comma()
		}
		p.printProperty(prop)
	}
	p.print("}")
}

func (p *printer) printProperty(prop *ast.Property) {
	if prop.Type != ast.PropertyInit {
		fn := prop.Value.(*ast.FunctionExpression)
		p.print(prop.Type.String())
		p.space()
		p.printKey(prop.Key)
		p.printFunctionTail(fn.Params, fn.Body)
		return
	}
	p.printKey(prop.Key)
	p.print(":")
	p.space()
	p.printExpr(prop.Value, ctxList)
}

func (p *printer) printKey(key ast.PropertyKey) {
	key.Match(
		func(lit *ast.Literal) {
			if isZero(lit.Value) {
				// -0 converts to the name "0".
				p.print("0")
				return
			}
			if lit.ValueKind() == ast.LiteralNumber && !plainNumber(lit.Value) {
				// -1 and NaN are not valid property names, but the strings
				// they convert to are.
				p.print(quote(formatNumber(lit.Value)))
				return
			}
			p.printLiteral(lit)
		},
		func(id *ast.Identifier) { p.print(id.Name) },
		func() {},
	)
}

func (p *printer) printUnary(e *ast.UnaryExpression) {
	op := e.Operator
	if !op.IsPrefix() {
		p.printExpr(e.Argument, ctxOperand)
		p.print(op.String())
		return
	}
	p.print(op.String())
	if op.IsKeyword() {
		p.space()
	}
	p.printExpr(e.Argument, ctxOperand)
}

// printBinary prints a binary chain, always wrapped in parentheses.
func (p *printer) printBinary(e *ast.BinaryExpression) {
	ctx := ctxOperand
	if e.Operator == ast.OpExp || e.Operator == ast.OpExpAssign {
		ctx |= ctxExponent
	}

	p.print("(")
	p.printExpr(e.Left, ctx)
	for _, right := range e.Right {
		if e.Operator.IsKeyword() {
			p.keyword(e.Operator.String())
		} else {
			p.space()
			p.print(e.Operator.String())
			p.space()
		}
		p.printExpr(right, ctx)
	}
	p.print(")")
}
