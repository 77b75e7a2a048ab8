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

// Package discriminated provides [Union], a value that holds one of two
// unrelated types, or nothing at all.
//
// The empty state is a first-class value and is never conflated with either
// case: a Union holding a nil A is still a Union in [CaseA].
package discriminated

import "fmt"

const (
	CaseEmpty Case = iota // Holds neither alternative.
	CaseA                 // Holds the first alternative.
	CaseB                 // Holds the second alternative.
)

// Case identifies which alternative a [Union] holds.
type Case byte

// String implements [fmt.Stringer].
func (c Case) String() string {
	switch c {
	case CaseEmpty:
		return "Empty"
	case CaseA:
		return "A"
	case CaseB:
		return "B"
	default:
		return fmt.Sprintf("discriminated.Case(%d)", int(c))
	}
}

// Union is a tagged sum of A and B. The zero value is empty.
type Union[A, B any] struct {
	which Case
	a     A
	b     B
}

// OfA returns a Union holding a.
func OfA[A, B any](a A) Union[A, B] {
	return Union[A, B]{which: CaseA, a: a}
}

// OfB returns a Union holding b.
func OfB[A, B any](b B) Union[A, B] {
	return Union[A, B]{which: CaseB, b: b}
}

// Case returns which alternative u holds.
func (u Union[A, B]) Case() Case {
	return u.which
}

// IsEmpty returns whether u holds neither alternative.
func (u Union[A, B]) IsEmpty() bool {
	return u.which == CaseEmpty
}

// A returns the first alternative, if that is what u holds.
func (u Union[A, B]) A() (value A, ok bool) {
	if u.which != CaseA {
		return value, false
	}
	return u.a, true
}

// B returns the second alternative, if that is what u holds.
func (u Union[A, B]) B() (value B, ok bool) {
	if u.which != CaseB {
		return value, false
	}
	return u.b, true
}

// Value returns whichever alternative u holds as an interface value, or nil
// if u is empty.
func (u Union[A, B]) Value() any {
	switch u.which {
	case CaseA:
		return u.a
	case CaseB:
		return u.b
	default:
		return nil
	}
}

// Match calls exactly one of the given functions, depending on what u holds.
// Any of the functions may be nil, in which case that case is ignored.
func (u Union[A, B]) Match(onA func(A), onB func(B), onEmpty func()) {
	switch u.which {
	case CaseA:
		if onA != nil {
			onA(u.a)
		}
	case CaseB:
		if onB != nil {
			onB(u.b)
		}
	default:
		if onEmpty != nil {
			onEmpty()
		}
	}
}

// String implements [fmt.Stringer].
func (u Union[A, B]) String() string {
	switch u.which {
	case CaseA:
		return fmt.Sprintf("A(%v)", u.a)
	case CaseB:
		return fmt.Sprintf("B(%v)", u.b)
	default:
		return "Empty"
	}
}
