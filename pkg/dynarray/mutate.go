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

package dynarray

import (
	"github.com/walteh/corex/pkg/cxerr"
	"gitlab.com/tozd/go/errors"
)

// Add appends v, reallocating to exactly Len()+1 elements.
func (a *Array[T]) Add(v T) {
	next := make([]T, len(a.items)+1)
	copy(next, a.items)
	next[len(a.items)] = v
	a.items = next
}

// Remove deletes the first element equal to v, shifting later elements
// left.
func (a *Array[T]) Remove(v T) error {
	i := a.Index(v)
	if i < 0 {
		return errors.Errorf("removing %v: %w", v, cxerr.ErrNotFound)
	}
	if len(a.items) == 1 {
		a.items = nil
		return nil
	}
	next := make([]T, len(a.items)-1)
	copy(next, a.items[:i])
	copy(next[i:], a.items[i+1:])
	a.items = next
	return nil
}

// Reverse reverses the element order into freshly allocated storage.
func (a *Array[T]) Reverse() {
	if len(a.items) == 0 {
		return
	}
	next := make([]T, len(a.items))
	for i, item := range a.items {
		next[len(a.items)-1-i] = item
	}
	a.items = next
}

// Clear drops every element and releases the storage.
func (a *Array[T]) Clear() {
	a.items = nil
}

// Concat returns a new array holding a's elements followed by o's.
func (a *Array[T]) Concat(o *Array[T]) *Array[T] {
	out := a.Clone()
	out.Extend(o)
	return out
}

// Extend appends o's elements to a. a.Extend(a) doubles a.
func (a *Array[T]) Extend(o *Array[T]) {
	if o == nil || len(o.items) == 0 {
		return
	}
	if len(a.items) == 0 {
		a.items = clone(o.items)
		return
	}
	next := make([]T, len(a.items)+len(o.items))
	n := copy(next, a.items)
	copy(next[n:], o.items)
	a.items = next
}
