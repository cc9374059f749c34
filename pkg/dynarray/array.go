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
	"fmt"
	"iter"
	"slices"

	"github.com/walteh/corex/pkg/cxerr"
	"gitlab.com/tozd/go/errors"
)

// Array is an owned sequence of T. The zero value is an empty array.
type Array[T comparable] struct {
	items []T
}

// New returns an empty array.
func New[T comparable]() *Array[T] {
	return &Array[T]{}
}

// Of returns an array holding items in order.
func Of[T comparable](items ...T) *Array[T] {
	return FromSlice(items)
}

// FromSlice returns an array holding a copy of items. A fixed size Go
// array converts with FromSlice(arr[:]).
func FromSlice[T comparable](items []T) *Array[T] {
	return &Array[T]{items: clone(items)}
}

// FromAny builds an array from dynamically typed values. Every value must
// hold exactly T.
func FromAny[T comparable](items []any) (*Array[T], error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, ok := item.(T)
		if !ok {
			var zero T
			return nil, errors.Errorf("item %d is %T, want %T: %w", i, item, zero, cxerr.ErrTypeMismatch)
		}
		out = append(out, v)
	}
	return FromSlice(out), nil
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// IsEmpty reports whether the array has no elements.
func (a *Array[T]) IsEmpty() bool {
	return len(a.items) == 0
}

// At returns the element at i.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.items) {
		var zero T
		return zero, cxerr.OutOfRange(i, len(a.items))
	}
	return a.items[i], nil
}

// Set overwrites the element at i.
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.items) {
		return cxerr.OutOfRange(i, len(a.items))
	}
	a.items[i] = v
	return nil
}

// Clone returns an independent copy of a.
func (a *Array[T]) Clone() *Array[T] {
	return FromSlice(a.items)
}

// Assign clears a and copies every element of src into it. Assigning an
// array to itself does nothing.
func (a *Array[T]) Assign(src *Array[T]) {
	if src == a {
		return
	}
	a.Clear()
	if src == nil {
		return
	}
	a.items = clone(src.items)
}

// MoveFrom takes src's storage, leaving src empty.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if src == nil || src == a {
		return
	}
	a.items = src.items
	src.items = nil
}

// Equal reports whether a and o hold equal elements in the same order.
func (a *Array[T]) Equal(o *Array[T]) bool {
	if o == nil {
		return len(a.items) == 0
	}
	return slices.Equal(a.items, o.items)
}

// Index returns the position of the first element equal to v, or -1.
func (a *Array[T]) Index(v T) int {
	return slices.Index(a.items, v)
}

// Contains reports whether any element equals v.
func (a *Array[T]) Contains(v T) bool {
	return a.Index(v) >= 0
}

// Count returns how many elements equal v.
func (a *Array[T]) Count(v T) int {
	n := 0
	for _, item := range a.items {
		if item == v {
			n++
		}
	}
	return n
}

// ToSlice returns a copy of the elements.
func (a *Array[T]) ToSlice() []T {
	return clone(a.items)
}

// CopyTo copies the first n elements into dst. It fails when n is negative
// or larger than either the array or dst.
func (a *Array[T]) CopyTo(dst []T, n int) error {
	if n < 0 || n > len(a.items) {
		return errors.Errorf("copying %d of %d elements: %w", n, len(a.items), cxerr.ErrSizeMismatch)
	}
	if n > len(dst) {
		return errors.Errorf("copying %d elements into room for %d: %w", n, len(dst), cxerr.ErrSizeMismatch)
	}
	copy(dst, a.items[:n])
	return nil
}

// All yields index/element pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range a.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// String formats the elements like a slice, e.g. [1 2 3].
func (a *Array[T]) String() string {
	if len(a.items) == 0 {
		return "[]"
	}
	return fmt.Sprint(a.items)
}

// clone copies s into storage of exactly len(s), or nil when s is empty.
func clone[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
