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

import "fmt"

// OperatorClass groups binary operators by the ESTree node type they are
// written as.
type OperatorClass byte

const (
	ClassBinary     OperatorClass = iota + 1 // BinaryExpression.
	ClassLogical                             // LogicalExpression.
	ClassAssignment                          // AssignmentExpression.
)

// String implements [fmt.Stringer].
func (c OperatorClass) String() string {
	switch c {
	case ClassBinary:
		return "BinaryExpression"
	case ClassLogical:
		return "LogicalExpression"
	case ClassAssignment:
		return "AssignmentExpression"
	default:
		return fmt.Sprintf("OperatorClass(%d)", int(c))
	}
}

// Class returns which ESTree node type this operator is written as.
func (op BinaryOperator) Class() OperatorClass {
	switch {
	case !op.IsValid():
		return 0
	case op >= OpAssign:
		return ClassAssignment
	case op >= OpLogicalOr:
		return ClassLogical
	default:
		return ClassBinary
	}
}

// IsKeyword returns whether this operator is spelled as a keyword, and
// therefore always needs whitespace around it.
func (op BinaryOperator) IsKeyword() bool {
	return op == OpIn || op == OpInstanceof
}

// IsUpdate returns whether this is an increment or decrement.
func (op UnaryOperator) IsUpdate() bool {
	return op >= UnaryPreInc && op.IsValid()
}

// IsPrefix returns whether the operator is written before its operand.
func (op UnaryOperator) IsPrefix() bool {
	return op.IsValid() && op != UnaryPostInc && op != UnaryPostDec
}

// IsKeyword returns whether this operator is spelled as a keyword.
func (op UnaryOperator) IsKeyword() bool {
	return op == UnaryTypeof || op == UnaryVoid || op == UnaryDelete
}

// Update returns the update operator for the given direction and position.
func Update(increment, prefix bool) UnaryOperator {
	switch {
	case increment && prefix:
		return UnaryPreInc
	case increment:
		return UnaryPostInc
	case prefix:
		return UnaryPreDec
	default:
		return UnaryPostDec
	}
}
