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
	"reflect"

	"github.com/bufbuild/jsast/discriminated"
)

// Node is implemented by every node in the tree.
type Node interface {
	// Kind returns the concrete type of this node.
	Kind() NodeKind
}

// Statement is a node that may appear in a statement list.
//
// A nil Statement is an empty statement.
type Statement interface {
	Node
	isStatement()
}

// Expression is a node that evaluates to a value.
type Expression interface {
	Node
	ForInitializer
	isExpression()
}

// Pattern is a node that can be the target of a binding: a function
// parameter, a variable declarator, or a catch parameter.
//
// Only [*Identifier] is a Pattern; destructuring is not supported.
type Pattern interface {
	Node
	isPattern()
}

// PropertyKeyNode is a node that can be the key of a [Property]:
// [*Identifier] or [*Literal].
type PropertyKeyNode interface {
	Node
	isPropertyKey()
}

// ForInitializer is a node that can appear as the initializer of a for
// statement or the left side of a for-in statement: any [Expression], or a
// [*VariableDeclaration].
type ForInitializer interface {
	Node
	isForInitializer()
}

// PropertyKey is the key of a [Property]. The zero value is empty, which is
// never valid for a property.
type PropertyKey = discriminated.Union[*Literal, *Identifier]

// ForInit is the initializer of a [ForStatement] or the left side of a
// [ForInStatement]. The zero value is empty, which means "no initializer".
type ForInit = discriminated.Union[*VariableDeclaration, Expression]

// KeyOf wraps a key node in a [PropertyKey].
func KeyOf(key PropertyKeyNode) PropertyKey {
	switch key := key.(type) {
	case *Literal:
		return discriminated.OfA[*Literal, *Identifier](key)
	case *Identifier:
		return discriminated.OfB[*Literal](key)
	default:
		return PropertyKey{}
	}
}

// ForInitOf wraps a node in a [ForInit]. A nil init produces the empty value.
func ForInitOf(init ForInitializer) ForInit {
	switch init := init.(type) {
	case nil:
		return ForInit{}
	case *VariableDeclaration:
		return discriminated.OfA[*VariableDeclaration, Expression](init)
	case Expression:
		return discriminated.OfB[*VariableDeclaration](init)
	default:
		return ForInit{}
	}
}

// HasBody is implemented by nodes that own an ordered statement list.
type HasBody interface {
	Node

	// Statements returns a pointer to the node's statement list, which may be
	// modified in place.
	Statements() *[]Statement
}

// HasParameters is implemented by function nodes.
type HasParameters interface {
	HasBody

	// Parameters returns a pointer to the node's parameter list, which may be
	// modified in place.
	Parameters() *[]Pattern

	// Name returns the function's name, which may be nil.
	Name() *Identifier
}

// Append appends statements to node's body and returns node.
func Append[T HasBody](node T, stmts ...Statement) T {
	body := node.Statements()
	*body = append(*body, stmts...)
	return node
}

// AppendParams appends parameters to node and returns node.
func AppendParams[T HasParameters](node T, params ...Pattern) T {
	list := node.Parameters()
	*list = append(*list, params...)
	return node
}

// IsNil returns whether n is nil, including when it is a non-nil interface
// holding a nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
