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

package operation

import (
	"fmt"
	"strconv"

	"github.com/walteh/corex/pkg/dynarray"
	"gitlab.com/tozd/go/errors"
)

type arrayMachine[T comparable] struct {
	a      *dynarray.Array[T]
	coerce func(any) (T, error)
}

func newArrayMachine[T comparable](items []any, coerce func(any) (T, error)) (machine, error) {
	elems, err := coerceAll(items, coerce)
	if err != nil {
		return nil, errors.Errorf("initial items: %w", err)
	}
	return &arrayMachine[T]{a: dynarray.FromSlice(elems), coerce: coerce}, nil
}

func coerceAll[T any](vals []any, coerce func(any) (T, error)) ([]T, error) {
	out := make([]T, 0, len(vals))
	for i, v := range vals {
		e, err := coerce(v)
		if err != nil {
			return nil, errors.Errorf("item %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *arrayMachine[T]) value() string { return m.a.String() }

func (m *arrayMachine[T]) size() int { return m.a.Len() }

func (m *arrayMachine[T]) apply(op string, args []any) (string, error) {
	switch op {
	case "add", "remove", "contains", "count", "index":
		if err := wantArgs(args, 1); err != nil {
			return "", err
		}
		v, err := m.coerce(args[0])
		if err != nil {
			return "", err
		}
		return m.applyValue(op, v)

	case "extend", "concat", "equal":
		vals, err := coerceAll(args, m.coerce)
		if err != nil {
			return "", err
		}
		other := dynarray.FromSlice(vals)
		switch op {
		case "extend":
			m.a.Extend(other)
			return "", nil
		case "concat":
			return m.a.Concat(other).String(), nil
		default:
			return strconv.FormatBool(m.a.Equal(other)), nil
		}

	case "set":
		if err := wantArgs(args, 2); err != nil {
			return "", err
		}
		i, err := intArg(args, 0)
		if err != nil {
			return "", err
		}
		v, err := m.coerce(args[1])
		if err != nil {
			return "", err
		}
		return "", m.a.Set(i, v)

	case "at":
		if err := wantArgs(args, 1); err != nil {
			return "", err
		}
		i, err := intArg(args, 0)
		if err != nil {
			return "", err
		}
		v, err := m.a.At(i)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil

	case "copy_to":
		return m.copyTo(args)

	case "reverse", "clear", "is_empty", "len":
		if err := wantArgs(args, 0); err != nil {
			return "", err
		}
		switch op {
		case "reverse":
			m.a.Reverse()
		case "clear":
			m.a.Clear()
		case "is_empty":
			return strconv.FormatBool(m.a.IsEmpty()), nil
		default:
			return strconv.Itoa(m.a.Len()), nil
		}
		return "", nil
	}

	return "", unknownOp(op)
}

func (m *arrayMachine[T]) applyValue(op string, v T) (string, error) {
	switch op {
	case "add":
		m.a.Add(v)
	case "remove":
		return "", m.a.Remove(v)
	case "contains":
		return strconv.FormatBool(m.a.Contains(v)), nil
	case "count":
		return strconv.Itoa(m.a.Count(v)), nil
	case "index":
		return strconv.Itoa(m.a.Index(v)), nil
	}
	return "", nil
}

// copy_to takes a count and an optional destination length (default: count)
func (m *arrayMachine[T]) copyTo(args []any) (string, error) {
	if err := wantArgRange(args, 1, 2); err != nil {
		return "", err
	}
	n, err := intArg(args, 0)
	if err != nil {
		return "", err
	}
	dstLen := max(n, 0)
	if len(args) == 2 {
		if dstLen, err = intArg(args, 1); err != nil {
			return "", err
		}
	}
	if dstLen < 0 {
		return "", errors.Errorf("destination length %d is negative: %w", dstLen, ErrInvalidStep)
	}

	// check the count before allocating; only the first n slots are written
	if n < 0 || n > m.a.Len() {
		return "", m.a.CopyTo(nil, n)
	}
	dst := make([]T, min(dstLen, n))
	if err := m.a.CopyTo(dst, n); err != nil {
		return "", err
	}
	return fmt.Sprint(dst[:n]), nil
}
