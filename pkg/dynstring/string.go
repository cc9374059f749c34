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

const (
	// GrowthUnit is the granularity of every capacity.
	GrowthUnit = 32
	// DefaultCapacity is the capacity of an empty String.
	DefaultCapacity = GrowthUnit
)

// String is an owned, growable byte string. The zero value is an empty
// string.
type String struct {
	buf  []byte // len(buf) is the capacity, buf[size] is always 0
	size int
}

// capacityFor returns the capacity needed to hold n bytes plus a terminator.
func capacityFor(n int) int {
	return ((n + GrowthUnit) / GrowthUnit) * GrowthUnit
}

// New returns an empty String with the default capacity.
func New() *String {
	s := &String{}
	s.resetString("")
	return s
}

// From returns a String holding a copy of v.
func From(v string) *String {
	s := &String{}
	s.resetString(v)
	return s
}

// FromBytes returns a String holding a copy of b.
func FromBytes(b []byte) *String {
	s := &String{}
	s.resetBytes(b)
	return s
}

// Clone returns a deep, independent copy of s.
func (s *String) Clone() *String {
	c := &String{}
	c.resetBytes(s.content())
	return c
}

// Assign replaces the content of s with a copy of o. Assigning an empty (or
// nil) String clears s; assigning s to itself does nothing.
func (s *String) Assign(o *String) {
	if o == s {
		return
	}
	if o == nil {
		s.Clear()
		return
	}
	s.resetBytes(o.content())
}

// AssignString replaces the content of s with v.
func (s *String) AssignString(v string) {
	s.resetString(v)
}

// AssignBytes replaces the content of s with a copy of b.
func (s *String) AssignBytes(b []byte) {
	s.resetBytes(b)
}

// MoveFrom transfers src's buffer to s. src is left empty with the default
// capacity.
func (s *String) MoveFrom(src *String) {
	if src == nil || src == s {
		return
	}
	s.buf, s.size = src.buf, src.size
	if s.buf == nil {
		s.resetString("")
	}
	src.buf, src.size = nil, 0
	src.resetString("")
}

// Len returns the number of content bytes.
func (s *String) Len() int {
	return s.size
}

// Cap returns the allocated capacity, terminator included.
func (s *String) Cap() int {
	if s.buf == nil {
		return DefaultCapacity
	}
	return len(s.buf)
}

func (s *String) content() []byte {
	return s.buf[:s.size]
}

func (s *String) resetString(v string) {
	buf := make([]byte, capacityFor(len(v)))
	copy(buf, v)
	s.buf, s.size = buf, len(v)
}

func (s *String) resetBytes(b []byte) {
	buf := make([]byte, capacityFor(len(b)))
	copy(buf, b)
	s.buf, s.size = buf, len(b)
}

// splice swaps in a new buffer where the drop bytes at offset at are
// replaced by insert. insert may alias the current buffer.
func (s *String) splice(at, drop int, insert []byte) {
	n := s.size - drop + len(insert)
	buf := make([]byte, capacityFor(n))
	copy(buf, s.buf[:at])
	copy(buf[at:], insert)
	copy(buf[at+len(insert):], s.buf[at+drop:s.size])
	s.buf, s.size = buf, n
}
