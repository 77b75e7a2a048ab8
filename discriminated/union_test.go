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

package discriminated_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/jsast/discriminated"
)

func TestUnion(t *testing.T) {
	t.Parallel()

	var empty discriminated.Union[int, string]
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, discriminated.CaseEmpty, empty.Case())
	assert.Nil(t, empty.Value())
	_, ok := empty.A()
	assert.False(t, ok)
	_, ok = empty.B()
	assert.False(t, ok)

	a := discriminated.OfA[int, string](42)
	assert.False(t, a.IsEmpty())
	assert.Equal(t, discriminated.CaseA, a.Case())
	v, ok := a.A()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	_, ok = a.B()
	assert.False(t, ok)
	assert.Equal(t, "A(42)", a.String())

	b := discriminated.OfB[int]("x")
	s, ok := b.B()
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	assert.Equal(t, "x", b.Value())
}

func TestUnionNilCase(t *testing.T) {
	t.Parallel()

	// A nil pointer is still a present alternative.
	u := discriminated.OfA[*int, string](nil)
	assert.False(t, u.IsEmpty())
	assert.Equal(t, discriminated.CaseA, u.Case())
}

func TestUnionMatch(t *testing.T) {
	t.Parallel()

	var got []string
	record := func(u discriminated.Union[int, string]) {
		u.Match(
			func(int) { got = append(got, "a") },
			func(string) { got = append(got, "b") },
			func() { got = append(got, "empty") },
		)
	}

	record(discriminated.OfA[int, string](1))
	record(discriminated.OfB[int]("s"))
	record(discriminated.Union[int, string]{})
	assert.Equal(t, []string{"a", "b", "empty"}, got)

	assert.NotPanics(t, func() {
		discriminated.OfA[int, string](1).Match(nil, nil, nil)
	})
}
