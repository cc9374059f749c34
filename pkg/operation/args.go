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
	"encoding/json"
	"fmt"
	"math"

	"github.com/walteh/corex/pkg/cxerr"
	"gitlab.com/tozd/go/errors"
)

// Element coercions turn loosely typed script values into array elements.
// Every format decodes numbers differently (int from YAML, int64 from TOML
// and HCL, json.Number from JSON) so all of them are accepted here. A value
// of the wrong shape is an ErrTypeMismatch, which scripts can expect.

func mismatch(v any, want string) error {
	return errors.Errorf("%v (%T) is not a %s: %w", v, v, want, cxerr.ErrTypeMismatch)
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, mismatch(v, "int")
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, mismatch(v, "int")
		}
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, mismatch(v, "int")
		}
		return i, nil
	default:
		return 0, mismatch(v, "int")
	}
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch(v, "float")
		}
		return f, nil
	default:
		i, err := toInt64(v)
		if err != nil {
			return 0, mismatch(v, "float")
		}
		return float64(i), nil
	}
}

func toStringElem(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", mismatch(v, "string")
	}
	return s, nil
}

func toBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, mismatch(v, "bool")
	}
	return b, nil
}

// Step argument helpers. Unlike element coercion, a bad argument here means
// the step itself is malformed.

func wantArgs(args []any, n int) error {
	if len(args) != n {
		return errors.Errorf("takes %d args, got %d: %w", n, len(args), ErrInvalidStep)
	}
	return nil
}

func wantArgRange(args []any, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		return errors.Errorf("takes %d to %d args, got %d: %w", lo, hi, len(args), ErrInvalidStep)
	}
	return nil
}

func intArg(args []any, i int) (int, error) {
	n, err := toInt64(args[i])
	if err != nil || n > math.MaxInt || n < math.MinInt {
		return 0, errors.Errorf("arg %d: %v is not an integer: %w", i, args[i], ErrInvalidStep)
	}
	return int(n), nil
}

func textArg(args []any, i int) (string, error) {
	switch v := args[i].(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		// decoders have already normalized the spelling (1.0 -> 1, 1e3 -> 1000)
		return fmt.Sprint(v), nil
	default:
		return "", errors.Errorf("arg %d: %v (%T) is not text: %w", i, args[i], args[i], ErrInvalidStep)
	}
}

func byteArg(args []any, i int) (byte, error) {
	s, err := textArg(args, i)
	if err != nil {
		return 0, err
	}
	if len(s) != 1 {
		return 0, errors.Errorf("arg %d: %q is not a single byte: %w", i, s, ErrInvalidStep)
	}
	return s[0], nil
}

func unknownOp(op string) error {
	return errors.Errorf("unknown op %q: %w", op, ErrInvalidStep)
}
