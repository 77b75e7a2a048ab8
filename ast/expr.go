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

// Identifier is a name: a variable reference, a binding, a label, or a
// non-computed property name.
type Identifier struct {
	Name string
}

// NewIdentifier returns an identifier with the given name.
func NewIdentifier(name string) *Identifier {
	return &Identifier{Name: name}
}

func (*Identifier) Kind() NodeKind    { return KindIdentifier }
func (*Identifier) isExpression()     {}
func (*Identifier) isPattern()        {}
func (*Identifier) isPropertyKey()    {}
func (*Identifier) isForInitializer() {}

// ThisExpression is the this keyword.
type ThisExpression struct{}

func (*ThisExpression) Kind() NodeKind    { return KindThisExpression }
func (*ThisExpression) isExpression()     {}
func (*ThisExpression) isForInitializer() {}

// ArrayExpression is an array literal.
//
// A nil element is a hole, as in [1, , 3].
type ArrayExpression struct {
	Elements []Expression
}

// NewArray returns an array literal with the given elements.
func NewArray(elements ...Expression) *ArrayExpression {
	return &ArrayExpression{Elements: elements}
}

// AddElements appends elements and returns a.
func (a *ArrayExpression) AddElements(elements ...Expression) *ArrayExpression {
	a.Elements = append(a.Elements, elements...)
	return a
}

func (*ArrayExpression) Kind() NodeKind    { return KindArrayExpression }
func (*ArrayExpression) isExpression()     {}
func (*ArrayExpression) isForInitializer() {}

// ObjectExpression is an object literal.
type ObjectExpression struct {
	Properties []*Property
}

// NewObject returns an object literal with the given properties.
func NewObject(props ...*Property) *ObjectExpression {
	return &ObjectExpression{Properties: props}
}

// AddProperties appends properties and returns o.
func (o *ObjectExpression) AddProperties(props ...*Property) *ObjectExpression {
	o.Properties = append(o.Properties, props...)
	return o
}

func (*ObjectExpression) Kind() NodeKind    { return KindObjectExpression }
func (*ObjectExpression) isExpression()     {}
func (*ObjectExpression) isForInitializer() {}

// PropertyKind distinguishes data properties from accessors.
type PropertyKind byte

const (
	PropertyInit PropertyKind = iota // key: value
	PropertyGet                      // get key() {}
	PropertySet                      // set key(v) {}
)

// String returns the ESTree spelling of the kind.
func (k PropertyKind) String() string {
	switch k {
	case PropertyGet:
		return "get"
	case PropertySet:
		return "set"
	default:
		return "init"
	}
}

// Property is one entry of an [ObjectExpression].
//
// For PropertyGet and PropertySet, Value must be a [*FunctionExpression].
type Property struct {
	Key   PropertyKey
	Value Expression
	Type  PropertyKind
}

// NewProperty returns a data property.
func NewProperty(key PropertyKeyNode, value Expression) *Property {
	return &Property{Key: KeyOf(key), Value: value}
}

// NewAccessor returns a getter or setter property.
func NewAccessor(kind PropertyKind, key PropertyKeyNode, fn *FunctionExpression) *Property {
	return &Property{Key: KeyOf(key), Value: fn, Type: kind}
}

func (*Property) Kind() NodeKind { return KindProperty }

// UnaryExpression is a prefix operator application, or a prefix or postfix
// increment or decrement.
type UnaryExpression struct {
	Operator UnaryOperator
	Argument Expression
}

// NewUnary returns a unary expression.
func NewUnary(op UnaryOperator, arg Expression) *UnaryExpression {
	return &UnaryExpression{Operator: op, Argument: arg}
}

func (*UnaryExpression) Kind() NodeKind    { return KindUnaryExpression }
func (*UnaryExpression) isExpression()     {}
func (*UnaryExpression) isForInitializer() {}

// BinaryExpression is a chain of applications of the same binary, logical or
// assignment operator: Left op Right[0] op Right[1] ...
//
// Right must not be empty. When written as ESTree, the chain nests in the
// direction its operator associates, so both a - b - c and a = b = c
// round-trip exactly.
type BinaryExpression struct {
	Left     Expression
	Operator BinaryOperator
	Right    []Expression
}

// NewBinary returns a binary expression. Right operands are added with
// [BinaryExpression.AddRight], so same-operator operands are flattened.
func NewBinary(left Expression, op BinaryOperator, right ...Expression) *BinaryExpression {
	b := &BinaryExpression{Left: left, Operator: op}
	return b.AddRight(right...)
}

// AddRight appends trailing operands and returns b.
//
// An operand that is itself a BinaryExpression with the same operator is not
// nested; its operands are appended to b.Right instead.
func (b *BinaryExpression) AddRight(operands ...Expression) *BinaryExpression {
	for _, e := range operands {
		if bin, ok := e.(*BinaryExpression); ok && bin != nil && bin.Operator == b.Operator {
			b.Right = append(b.Right, bin.Left)
			b.Right = append(b.Right, bin.Right...)
			continue
		}
		b.Right = append(b.Right, e)
	}
	return b
}

func (*BinaryExpression) Kind() NodeKind    { return KindBinaryExpression }
func (*BinaryExpression) isExpression()     {}
func (*BinaryExpression) isForInitializer() {}

// MemberExpression is a chain of property accesses: Object.Indices[0]... when
// not Computed, Object[Indices[0]]... when Computed.
//
// When not Computed, every index must be an [*Identifier].
type MemberExpression struct {
	Object   Expression
	Indices  []Expression
	Computed bool
}

// NewMember returns a member expression.
func NewMember(object Expression, computed bool, indices ...Expression) *MemberExpression {
	return &MemberExpression{Object: object, Indices: indices, Computed: computed}
}

// Dot returns a non-computed member expression: object.name0.name1...
func Dot(object Expression, names ...string) *MemberExpression {
	m := &MemberExpression{Object: object}
	for _, name := range names {
		m.Indices = append(m.Indices, NewIdentifier(name))
	}
	return m
}

// AddIndex appends accesses and returns m.
func (m *MemberExpression) AddIndex(indices ...Expression) *MemberExpression {
	m.Indices = append(m.Indices, indices...)
	return m
}

func (*MemberExpression) Kind() NodeKind    { return KindMemberExpression }
func (*MemberExpression) isExpression()     {}
func (*MemberExpression) isForInitializer() {}

// ConditionalExpression is test ? consequent : alternate.
type ConditionalExpression struct {
	Test, Consequent, Alternate Expression
}

// NewConditional returns a conditional expression.
func NewConditional(test, consequent, alternate Expression) *ConditionalExpression {
	return &ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
}

func (*ConditionalExpression) Kind() NodeKind    { return KindConditionalExpression }
func (*ConditionalExpression) isExpression()     {}
func (*ConditionalExpression) isForInitializer() {}

// CallExpression is a function call.
type CallExpression struct {
	Callee    Expression
	Arguments []Expression
}

// NewCall returns a call expression.
func NewCall(callee Expression, args ...Expression) *CallExpression {
	return &CallExpression{Callee: callee, Arguments: args}
}

// AddArguments appends arguments and returns c.
func (c *CallExpression) AddArguments(args ...Expression) *CallExpression {
	c.Arguments = append(c.Arguments, args...)
	return c
}

func (*CallExpression) Kind() NodeKind    { return KindCallExpression }
func (*CallExpression) isExpression()     {}
func (*CallExpression) isForInitializer() {}

// NewExpression is a constructor call.
type NewExpression struct {
	Callee    Expression
	Arguments []Expression
}

// NewNew returns a new expression.
func NewNew(callee Expression, args ...Expression) *NewExpression {
	return &NewExpression{Callee: callee, Arguments: args}
}

// AddArguments appends arguments and returns n.
func (n *NewExpression) AddArguments(args ...Expression) *NewExpression {
	n.Arguments = append(n.Arguments, args...)
	return n
}

func (*NewExpression) Kind() NodeKind    { return KindNewExpression }
func (*NewExpression) isExpression()     {}
func (*NewExpression) isForInitializer() {}

// SequenceExpression is a comma-separated list of expressions. It must not
// be empty.
type SequenceExpression struct {
	Expressions []Expression
}

// NewSequence returns a sequence expression.
func NewSequence(exprs ...Expression) *SequenceExpression {
	return &SequenceExpression{Expressions: exprs}
}

// AddExpressions appends expressions and returns s.
func (s *SequenceExpression) AddExpressions(exprs ...Expression) *SequenceExpression {
	s.Expressions = append(s.Expressions, exprs...)
	return s
}

func (*SequenceExpression) Kind() NodeKind    { return KindSequenceExpression }
func (*SequenceExpression) isExpression()     {}
func (*SequenceExpression) isForInitializer() {}
