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
	"strings"
)

// Literal is a null, string, boolean, numeric or regular expression literal.
//
// Value must hold one of:
//   - nil, for null.
//   - string.
//   - bool.
//   - int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
//     float32 or float64.
//   - [Regex].
//
// Any other value is a contract violation.
type Literal struct {
	Value any
}

// Numeric is the set of Go types a numeric [Literal] may hold.
type Numeric interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Null returns a null literal.
func Null() *Literal { return &Literal{} }

// String returns a string literal.
func String(s string) *Literal { return &Literal{Value: s} }

// Bool returns a boolean literal.
func Bool(b bool) *Literal { return &Literal{Value: b} }

// Number returns a numeric literal.
func Number[T Numeric](n T) *Literal { return &Literal{Value: n} }

// NewRegex returns a regular expression literal.
func NewRegex(pattern string, flags RegexFlags) *Literal {
	return &Literal{Value: Regex{Pattern: pattern, Flags: flags}}
}

func (*Literal) Kind() NodeKind { return KindLiteral }
func (*Literal) isExpression()  {}
func (*Literal) isPropertyKey() {}

func (*Literal) isForInitializer() {}

// LiteralKind classifies the value of a [Literal].
type LiteralKind byte

const (
	LiteralInvalid LiteralKind = iota // Value holds an unsupported type.
	LiteralNull
	LiteralString
	LiteralBoolean
	LiteralNumber
	LiteralRegex
)

// ValueKind classifies the literal's value.
func (l *Literal) ValueKind() LiteralKind {
	switch l.Value.(type) {
	case nil:
		return LiteralNull
	case string:
		return LiteralString
	case bool:
		return LiteralBoolean
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return LiteralNumber
	case Regex:
		return LiteralRegex
	default:
		return LiteralInvalid
	}
}

// Regex is the value of a regular expression literal.
type Regex struct {
	Pattern string
	Flags   RegexFlags
}

// RegexFlags is a set of regular expression flags.
type RegexFlags byte

const (
	FlagGlobal     RegexFlags = 1 << iota // g
	FlagIgnoreCase                        // i
	FlagMultiline                         // m
	FlagUnicode                           // u
	FlagSticky                            // y

	allRegexFlags = FlagGlobal | FlagIgnoreCase | FlagMultiline | FlagUnicode | FlagSticky
)

var regexFlagChars = [...]struct {
	flag RegexFlags
	char byte
}{
	{FlagGlobal, 'g'},
	{FlagIgnoreCase, 'i'},
	{FlagMultiline, 'm'},
	{FlagUnicode, 'u'},
	{FlagSticky, 'y'},
}

// ParseRegexFlags parses a flag string such as "gi". Flags may appear in any
// order and may repeat. Returns an error naming the first unknown character.
func ParseRegexFlags(s string) (RegexFlags, error) {
	var flags RegexFlags
outer:
	for i := range len(s) {
		for _, fc := range regexFlagChars {
			if s[i] == fc.char {
				flags |= fc.flag
				continue outer
			}
		}
		return 0, fmt.Errorf("unknown regular expression flag %q", s[i])
	}
	return flags, nil
}

// String returns the flags in canonical order: g, i, m, u, y.
func (f RegexFlags) String() string {
	var out strings.Builder
	for _, fc := range regexFlagChars {
		if f&fc.flag != 0 {
			out.WriteByte(fc.char)
		}
	}
	return out.String()
}
