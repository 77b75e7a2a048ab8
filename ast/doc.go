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

// Package ast defines a typed tree for ECMAScript 5 programs.
//
// Every node is a pointer to one of the structs in this package, and
// reports its concrete type via [Node.Kind]. The set of kinds is closed; see
// [NodeKind]. Statements and expressions are distinguished by the sealed
// [Statement] and [Expression] interfaces. A nil [Statement] is a legitimate
// value wherever a statement is expected, and denotes an empty statement
// (a lone ";").
//
// # Ownership
//
// A tree is a strict ownership forest: each node has exactly one parent,
// either through a single field or through one position of a list. Nodes must
// not be shared between parents, and a tree must not contain cycles. Nothing
// in this module guards against either; the printer and the codec will
// recurse forever on a cyclic tree.
//
// # Flattened chains
//
// Two node kinds store a run of operations as a single node with a trailing
// list, rather than as a nested tree:
//
//   - [BinaryExpression] stores a+b+c as Left a, Operator +, Right [b, c].
//     [BinaryExpression.AddRight] merges a same-operator operand into the
//     list, so a chain is always as flat as possible when built with it.
//   - [MemberExpression] stores a.b.c as Object a, Indices [b, c]. A single
//     Computed flag applies to every index, so a.b[c] cannot be represented
//     as one node; it is represented as a member expression whose object is
//     another member expression.
//
// # Capabilities
//
// Rather than a class hierarchy, nodes share behavior through small
// interfaces: [HasBody], [HasParameters], [Pattern], [PropertyKeyNode] and
// [ForInitializer]. Chained mutators such as Add return the concrete
// receiver; [Append] and [AppendParams] are the generic forms.
//
// This package defines numerous interfaces. However, user code should not
// attempt to implement any of them. Most consumers of a tree will not work
// correctly if they encounter concrete implementations other than the ones
// defined in this package.
package ast

//go:generate go run github.com/bufbuild/jsast/internal/enum kind.yaml operator.yaml
