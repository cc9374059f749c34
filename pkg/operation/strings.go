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
	"strconv"

	"github.com/walteh/corex/pkg/dynstring"
)

type stringMachine struct {
	s *dynstring.String
}

func newStringMachine(initial string) *stringMachine {
	return &stringMachine{s: dynstring.From(initial)}
}

func (m *stringMachine) value() string { return m.s.String() }

func (m *stringMachine) size() int { return m.s.Len() }

func (m *stringMachine) apply(op string, args []any) (string, error) {
	switch op {
	case "assign", "append", "remove", "remove_all", "index", "contains", "equal":
		if err := wantArgs(args, 1); err != nil {
			return "", err
		}
		v, err := textArg(args, 0)
		if err != nil {
			return "", err
		}
		return m.applyText(op, v), nil

	case "replace", "replace_all":
		if err := wantArgs(args, 2); err != nil {
			return "", err
		}
		old, err := textArg(args, 0)
		if err != nil {
			return "", err
		}
		repl, err := textArg(args, 1)
		if err != nil {
			return "", err
		}
		if op == "replace" {
			m.s.ReplaceString(old, repl)
		} else {
			m.s.ReplaceAllString(old, repl)
		}
		return "", nil

	case "set":
		if err := wantArgs(args, 2); err != nil {
			return "", err
		}
		i, err := intArg(args, 0)
		if err != nil {
			return "", err
		}
		b, err := byteArg(args, 1)
		if err != nil {
			return "", err
		}
		return "", m.s.Set(i, b)

	case "at":
		if err := wantArgs(args, 1); err != nil {
			return "", err
		}
		i, err := intArg(args, 0)
		if err != nil {
			return "", err
		}
		b, err := m.s.At(i)
		if err != nil {
			return "", err
		}
		return string([]byte{b}), nil
	}

	if err := wantArgs(args, 0); err != nil {
		if !isNullaryStringOp(op) {
			return "", unknownOp(op)
		}
		return "", err
	}
	return m.applyNullary(op)
}

func (m *stringMachine) applyText(op, v string) string {
	switch op {
	case "assign":
		m.s.AssignString(v)
	case "append":
		m.s.AppendString(v)
	case "remove":
		m.s.RemoveString(v)
	case "remove_all":
		m.s.RemoveAllString(v)
	case "index":
		return strconv.Itoa(m.s.IndexString(v))
	case "contains":
		return strconv.FormatBool(m.s.Contains(dynstring.From(v)))
	case "equal":
		return strconv.FormatBool(m.s.EqualString(v))
	}
	return ""
}

func isNullaryStringOp(op string) bool {
	switch op {
	case "lower", "upper", "reverse", "clear",
		"is_empty", "is_blank", "is_number", "is_text", "len", "cap",
		"to_short", "to_int", "to_long", "to_float", "to_double":
		return true
	}
	return false
}

func (m *stringMachine) applyNullary(op string) (string, error) {
	switch op {
	case "lower":
		m.s.ToLower()
	case "upper":
		m.s.ToUpper()
	case "reverse":
		m.s.Reverse()
	case "clear":
		m.s.Clear()
	case "is_empty":
		return strconv.FormatBool(m.s.IsEmpty()), nil
	case "is_blank":
		return strconv.FormatBool(m.s.IsBlank()), nil
	case "is_number":
		return strconv.FormatBool(m.s.IsNumber()), nil
	case "is_text":
		return strconv.FormatBool(m.s.IsText()), nil
	case "len":
		return strconv.Itoa(m.s.Len()), nil
	case "cap":
		return strconv.Itoa(m.s.Cap()), nil
	case "to_short":
		v, err := m.s.ToShort()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(v), 10), nil
	case "to_int":
		v, err := m.s.ToInt()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(v), 10), nil
	case "to_long":
		v, err := m.s.ToLong()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case "to_float":
		v, err := m.s.ToFloat()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case "to_double":
		v, err := m.s.ToDouble()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", unknownOp(op)
	}
	return "", nil
}
