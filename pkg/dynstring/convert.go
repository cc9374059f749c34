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
	"io"
	"strconv"

	"github.com/walteh/corex/pkg/cxerr"
	"gitlab.com/tozd/go/errors"
)

// ToShort parses the whole content as a base 10 int16.
func (s *String) ToShort() (int16, error) {
	v, err := strconv.ParseInt(s.String(), 10, 16)
	if err != nil {
		return 0, s.conversionError("short", err)
	}
	return int16(v), nil
}

// ToInt parses the whole content as a base 10 int32.
func (s *String) ToInt() (int32, error) {
	v, err := strconv.ParseInt(s.String(), 10, 32)
	if err != nil {
		return 0, s.conversionError("int", err)
	}
	return int32(v), nil
}

// ToLong parses the whole content as a base 10 int64.
func (s *String) ToLong() (int64, error) {
	v, err := strconv.ParseInt(s.String(), 10, 64)
	if err != nil {
		return 0, s.conversionError("long", err)
	}
	return v, nil
}

// ToFloat parses the whole content as a float32.
func (s *String) ToFloat() (float32, error) {
	v, err := strconv.ParseFloat(s.String(), 32)
	if err != nil {
		return 0, s.conversionError("float", err)
	}
	return float32(v), nil
}

// ToDouble parses the whole content as a float64.
func (s *String) ToDouble() (float64, error) {
	v, err := strconv.ParseFloat(s.String(), 64)
	if err != nil {
		return 0, s.conversionError("double", err)
	}
	return v, nil
}

// String returns a copy of the content.
func (s *String) String() string {
	return string(s.content())
}

// Bytes returns an independent copy of the content.
func (s *String) Bytes() []byte {
	return bytes.Clone(s.content())
}

// CharArray returns an independent copy of the content followed by a NUL
// byte. The slice belongs to the caller.
func (s *String) CharArray() []byte {
	out := make([]byte, s.size+1)
	copy(out, s.content())
	return out
}

// WriteTo writes the content bytes to w.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	if s.size == 0 {
		return 0, nil
	}
	n, err := w.Write(s.content())
	if err != nil {
		return int64(n), errors.Errorf("writing string: %w", err)
	}
	return int64(n), nil
}

func (s *String) conversionError(kind string, err error) error {
	reason := err.Error()
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		reason = numErr.Err.Error()
	}
	return errors.Errorf("parsing %q as %s (%s): %w", s.String(), kind, reason, cxerr.ErrConversion)
}
