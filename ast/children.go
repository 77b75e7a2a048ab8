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
	"fmt"
	"iter"
)

// Edge names the position of a child within its parent: a field, and for
// list-valued fields, an index into the list.
type Edge struct {
	Field string
	Index int // -1 for fields that are not lists.
}

// String implements [fmt.Stringer].
func (e Edge) String() string {
	if e.Index < 0 {
		return e.Field
	}
	return fmt.Sprintf("%s[%d]", e.Field, e.Index)
}

func field(name string) Edge            { return Edge{Field: name, Index: -1} }
func elem(name string, index int) Edge { return Edge{Field: name, Index: index} }

// Children returns an iterator over the direct children of n, in source
// order. Nil children (absent optional fields, empty statements, array holes)
// are skipped; the index of a list element is its index in the list, so
// skipped elements leave gaps.
//
// Field names follow the ESTree field names where one exists. The flattened
// chains use "right" for [BinaryExpression.Right] and "indices" for
// [MemberExpression.Indices].
func Children(n Node) iter.Seq2[Edge, Node] {
	return func(yield func(Edge, Node) bool) {
		if IsNil(n) {
			return
		}
		c := children{yield: yield}
		c.visit(n)
	}
}

type children struct {
	yield func(Edge, Node) bool
	done  bool
}

func (c *children) one(e Edge, n Node) {
	if c.done || IsNil(n) {
		return
	}
	if !c.yield(e, n) {
		c.done = true
	}
}

func list[T Node](c *children, name string, nodes []T) {
	for i, n := range nodes {
		c.one(elem(name, i), n)
	}
}

func (c *children) forInit(name string, init ForInit) {
	if n := init.Value(); n != nil {
		c.one(field(name), n.(Node))
	}
}

func (c *children) visit(n Node) {
	switch n := n.(type) {
	case *Program:
		list(c, "body", n.Body)
	case *Identifier, *Literal, *ThisExpression, *DebuggerStatement:
	case *ArrayExpression:
		list(c, "elements", n.Elements)
	case *ObjectExpression:
		list(c, "properties", n.Properties)
	case *Property:
		if k := n.Key.Value(); k != nil {
			c.one(field("key"), k.(Node))
		}
		c.one(field("value"), n.Value)
	case *FunctionExpression:
		c.one(field("id"), n.ID)
		list(c, "params", n.Params)
		list(c, "body", n.Body)
	case *FunctionDeclaration:
		c.one(field("id"), n.ID)
		list(c, "params", n.Params)
		list(c, "body", n.Body)
	case *UnaryExpression:
		c.one(field("argument"), n.Argument)
	case *BinaryExpression:
		c.one(field("left"), n.Left)
		list(c, "right", n.Right)
	case *MemberExpression:
		c.one(field("object"), n.Object)
		list(c, "indices", n.Indices)
	case *ConditionalExpression:
		c.one(field("test"), n.Test)
		c.one(field("consequent"), n.Consequent)
		c.one(field("alternate"), n.Alternate)
	case *CallExpression:
		c.one(field("callee"), n.Callee)
		list(c, "arguments", n.Arguments)
	case *NewExpression:
		c.one(field("callee"), n.Callee)
		list(c, "arguments", n.Arguments)
	case *SequenceExpression:
		list(c, "expressions", n.Expressions)
	case *BlockStatement:
		list(c, "body", n.Body)
	case *ExpressionStatement:
		c.one(field("expression"), n.Expression)
	case *WithStatement:
		c.one(field("object"), n.Object)
		c.one(field("body"), n.Body)
	case *ReturnStatement:
		c.one(field("argument"), n.Argument)
	case *LabeledStatement:
		c.one(field("label"), n.Label)
		c.one(field("body"), n.Body)
	case *BreakStatement:
		c.one(field("label"), n.Label)
	case *ContinueStatement:
		c.one(field("label"), n.Label)
	case *IfStatement:
		c.one(field("test"), n.Test)
		c.one(field("consequent"), n.Consequent)
		c.one(field("alternate"), n.Alternate)
	case *SwitchStatement:
		c.one(field("discriminant"), n.Discriminant)
		list(c, "cases", n.Cases)
	case *SwitchCase:
		c.one(field("test"), n.Test)
		list(c, "consequent", n.Body)
	case *ThrowStatement:
		c.one(field("argument"), n.Argument)
	case *TryStatement:
		c.one(field("block"), n.Block)
		c.one(field("handler"), n.Handler)
		c.one(field("finalizer"), n.Finalizer)
	case *CatchClause:
		c.one(field("param"), n.Param)
		list(c, "body", n.Body)
	case *WhileStatement:
		c.one(field("test"), n.Test)
		c.one(field("body"), n.Body)
	case *DoWhileStatement:
		c.one(field("body"), n.Body)
		c.one(field("test"), n.Test)
	case *ForStatement:
		c.forInit("init", n.Init)
		c.one(field("test"), n.Test)
		c.one(field("update"), n.Update)
		c.one(field("body"), n.Body)
	case *ForInStatement:
		c.forInit("left", n.Left)
		c.one(field("right"), n.Right)
		c.one(field("body"), n.Body)
	case *VariableDeclaration:
		list(c, "declarations", n.Declarations)
	case *VariableDeclarator:
		c.one(field("id"), n.ID)
		c.one(field("init"), n.Init)
	}
}
