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
	"slices"

	"github.com/walteh/corex/pkg/cxerr"
)

// Append concatenates o onto s. An empty o is a no-op.
func (s *String) Append(o *String) {
	if o == nil {
		return
	}
	s.AppendBytes(o.content())
}

// AppendString concatenates v onto s.
func (s *String) AppendString(v string) {
	if v == "" {
		return
	}
	s.splice(s.size, 0, []byte(v))
}

// AppendBytes concatenates b onto s.
func (s *String) AppendBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	s.splice(s.size, 0, b)
}

// Remove deletes the first occurrence of sub. It is a no-op when sub is
// empty, longer than s or absent.
func (s *String) Remove(sub *String) {
	if sub == nil {
		return
	}
	s.RemoveBytes(sub.content())
}

// RemoveString is Remove for a Go string.
func (s *String) RemoveString(sub string) {
	s.RemoveBytes([]byte(sub))
}

// RemoveBytes is Remove for a byte slice.
func (s *String) RemoveBytes(sub []byte) {
	i := index(s.content(), sub)
	if i < 0 {
		return
	}
	s.splice(i, len(sub), nil)
}

// RemoveAll deletes every non-overlapping occurrence of sub, scanning left
// to right.
func (s *String) RemoveAll(sub *String) {
	if sub == nil {
		return
	}
	s.replaceEvery(sub.content(), nil)
}

// RemoveAllString is RemoveAll for a Go string.
func (s *String) RemoveAllString(sub string) {
	s.replaceEvery([]byte(sub), nil)
}

// Replace swaps the first occurrence of old for repl. It is a no-op when
// old is empty or absent.
func (s *String) Replace(old, repl *String) {
	if old == nil {
		return
	}
	var r []byte
	if repl != nil {
		r = repl.content()
	}
	s.replaceFirst(old.content(), r)
}

// ReplaceString is Replace for Go strings.
func (s *String) ReplaceString(old, repl string) {
	s.replaceFirst([]byte(old), []byte(repl))
}

// ReplaceAll swaps every non-overlapping occurrence of old for repl.
func (s *String) ReplaceAll(old, repl *String) {
	if old == nil {
		return
	}
	var r []byte
	if repl != nil {
		r = repl.content()
	}
	s.replaceEvery(old.content(), r)
}

// ReplaceAllString is ReplaceAll for Go strings.
func (s *String) ReplaceAllString(old, repl string) {
	s.replaceEvery([]byte(old), []byte(repl))
}

// ToLower maps ASCII upper case letters to lower case in place.
func (s *String) ToLower() {
	for i, c := range s.content() {
		if 'A' <= c && c <= 'Z' {
			s.buf[i] = c + ('a' - 'A')
		}
	}
}

// ToUpper maps ASCII lower case letters to upper case in place.
func (s *String) ToUpper() {
	for i, c := range s.content() {
		if 'a' <= c && c <= 'z' {
			s.buf[i] = c - ('a' - 'A')
		}
	}
}

// Reverse reverses the content bytes in place.
func (s *String) Reverse() {
	slices.Reverse(s.content())
}

// Clear resets s to the empty string with the default capacity.
func (s *String) Clear() {
	s.resetString("")
}

// Set overwrites the byte at i.
func (s *String) Set(i int, b byte) error {
	if i < 0 || i >= s.size {
		return cxerr.OutOfRange(i, s.size)
	}
	s.buf[i] = b
	return nil
}

func (s *String) replaceFirst(old, repl []byte) {
	i := index(s.content(), old)
	if i < 0 {
		return
	}
	s.splice(i, len(old), repl)
}

func (s *String) replaceEvery(old, repl []byte) {
	src := s.content()
	if index(src, old) < 0 {
		return
	}
	out := make([]byte, 0, len(src))
	for {
		i := index(src, old)
		if i < 0 {
			out = append(out, src...)
			break
		}
		out = append(out, src[:i]...)
		out = append(out, repl...)
		src = src[i+len(old):]
	}
	s.resetBytes(out)
}

// index is bytes.Index except that an empty needle is never found.
func index(hay, needle []byte) int {
	if len(needle) == 0 || len(needle) > len(hay) {
		return -1
	}
	return bytes.Index(hay, needle)
}
