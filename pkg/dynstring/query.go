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
	"bytes"

	"github.com/walteh/corex/pkg/cxerr"
)

// IsEmpty reports whether s has no content.
func (s *String) IsEmpty() bool {
	return s.size == 0
}

// IsBlank reports whether s is empty or holds only ASCII whitespace.
func (s *String) IsBlank() bool {
	for _, c := range s.content() {
		if !isSpace(c) {
			return false
		}
	}
	return true
}

// IsNumber reports whether every byte is an ASCII digit. Signs, decimal
// points and exponents are not digits. An empty string is vacuously a
// number.
func (s *String) IsNumber() bool {
	for _, c := range s.content() {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

// IsText reports whether no byte is an ASCII digit. It does not check that
// the content is alphabetic.
func (s *String) IsText() bool {
	for _, c := range s.content() {
		if isDigit(c) {
			return false
		}
	}
	return true
}

// Index returns the offset of the first occurrence of sub, or -1. An empty
// sub is never found.
func (s *String) Index(sub *String) int {
	if sub == nil {
		return -1
	}
	return index(s.content(), sub.content())
}

// IndexString is Index for a Go string.
func (s *String) IndexString(sub string) int {
	return index(s.content(), []byte(sub))
}

// Contains reports whether sub occurs in s.
func (s *String) Contains(sub *String) bool {
	return s.Index(sub) >= 0
}

// Equal reports whether s and o hold the same bytes. A nil o equals an
// empty s.
func (s *String) Equal(o *String) bool {
	if o == nil {
		return s.size == 0
	}
	return bytes.Equal(s.content(), o.content())
}

// EqualString reports whether s holds exactly v.
func (s *String) EqualString(v string) bool {
	return string(s.content()) == v
}

// EqualBytes reports whether s holds exactly b.
func (s *String) EqualBytes(b []byte) bool {
	return bytes.Equal(s.content(), b)
}

// At returns the byte at i.
func (s *String) At(i int) (byte, error) {
	if i < 0 || i >= s.size {
		return 0, cxerr.OutOfRange(i, s.size)
	}
	return s.buf[i], nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
