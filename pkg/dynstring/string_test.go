// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dynstring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireInvariants checks the buffer invariants every mutation must keep
func requireInvariants(t *testing.T, s *String) {
	t.Helper()
	require.Less(t, s.Len(), s.Cap(), "size must stay below capacity")
	require.Positive(t, s.Cap(), "capacity must be positive")
	require.Zero(t, s.Cap()%GrowthUnit, "capacity must be a multiple of the growth unit")
	require.Equal(t, capacityFor(s.Len()), s.Cap(), "capacity must follow the rounding rule")
	require.Equal(t, byte(0), s.buf[s.Len()], "content must be NUL terminated")
}

func TestCapacityFor(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "empty", n: 0, want: 32},
		{name: "one", n: 1, want: 32},
		{name: "fills_first_unit", n: 31, want: 32},
		{name: "spills_into_second_unit", n: 32, want: 64},
		{name: "fills_second_unit", n: 63, want: 64},
		{name: "large", n: 1000, want: 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capacityFor(tt.n))
		})
	}
}

func TestConstruction(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *String
		want    string
		wantCap int
	}{
		{name: "new", build: New, want: "", wantCap: 32},
		{name: "from_empty", build: func() *String { return From("") }, want: "", wantCap: 32},
		{name: "from_string", build: func() *String { return From("Hello") }, want: "Hello", wantCap: 32},
		{name: "from_bytes", build: func() *String { return FromBytes([]byte("abc")) }, want: "abc", wantCap: 32},
		{name: "from_long", build: func() *String { return From(strings.Repeat("x", 40)) }, want: strings.Repeat("x", 40), wantCap: 64},
		{name: "from_embedded_nul", build: func() *String { return From("a\x00b") }, want: "a\x00b", wantCap: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.build()
			assert.Equal(t, tt.want, s.String())
			assert.Equal(t, len(tt.want), s.Len())
			assert.Equal(t, tt.wantCap, s.Cap())
			requireInvariants(t, s)
		})
	}
}

func TestZeroValue(t *testing.T) {
	var s String
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, DefaultCapacity, s.Cap())
	assert.Equal(t, "", s.String())

	s.AppendString("hi")
	assert.Equal(t, "hi", s.String())
	requireInvariants(t, &s)
}

func TestFromCopiesInput(t *testing.T) {
	b := []byte("abc")
	s := FromBytes(b)
	b[0] = 'z'
	assert.Equal(t, "abc", s.String(), "later writes to the source must not leak in")
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{"", "a", "Hello World", "\x00\x01\xff", strings.Repeat("ab", 100), "  spaced  "}
	for _, in := range inputs {
		assert.Equal(t, in, From(in).String())
		assert.Equal(t, []byte(in), FromBytes([]byte(in)).Bytes())
	}
}

func TestClone(t *testing.T) {
	s := From("original")
	c := s.Clone()
	require.True(t, c.Equal(s))

	c.ToUpper()
	assert.Equal(t, "original", s.String(), "clone must be independent")
	assert.Equal(t, "ORIGINAL", c.String())
}

func TestAssign(t *testing.T) {
	tests := []struct {
		name string
		dst  string
		op   func(s *String)
		want string
	}{
		{name: "assign_string", dst: "old", op: func(s *String) { s.AssignString("new value") }, want: "new value"},
		{name: "assign_bytes", dst: "old", op: func(s *String) { s.AssignBytes([]byte("bytes")) }, want: "bytes"},
		{name: "assign_dynstring", dst: "old", op: func(s *String) { s.Assign(From("other")) }, want: "other"},
		{name: "assign_empty_clears", dst: "old", op: func(s *String) { s.AssignString("") }, want: ""},
		{name: "assign_empty_dynstring_clears", dst: "old", op: func(s *String) { s.Assign(New()) }, want: ""},
		{name: "assign_nil_clears", dst: "old", op: func(s *String) { s.Assign(nil) }, want: ""},
		{name: "assign_self", dst: "same", op: func(s *String) { s.Assign(s) }, want: "same"},
		{name: "assign_grows", dst: "x", op: func(s *String) { s.AssignString(strings.Repeat("y", 70)) }, want: strings.Repeat("y", 70)},
		{name: "assign_shrinks", dst: strings.Repeat("y", 70), op: func(s *String) { s.AssignString("x") }, want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := From(tt.dst)
			tt.op(s)
			assert.Equal(t, tt.want, s.String())
			requireInvariants(t, s)
		})
	}
}

func TestMoveFrom(t *testing.T) {
	src := From(strings.Repeat("m", 50))
	dst := From("x")

	dst.MoveFrom(src)

	assert.Equal(t, strings.Repeat("m", 50), dst.String())
	assert.Equal(t, 64, dst.Cap())
	requireInvariants(t, dst)

	assert.True(t, src.IsEmpty(), "source must be left empty")
	assert.Equal(t, DefaultCapacity, src.Cap())
	requireInvariants(t, src)

	src.AppendString("reuse")
	assert.Equal(t, "reuse", src.String(), "moved-from string must stay usable")
	assert.Equal(t, strings.Repeat("m", 50), dst.String())
}

func TestMoveFromSelfAndNil(t *testing.T) {
	s := From("keep")
	s.MoveFrom(s)
	assert.Equal(t, "keep", s.String())
	s.MoveFrom(nil)
	assert.Equal(t, "keep", s.String())
}
