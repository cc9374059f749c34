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

// Package cxerr holds the error kinds shared by the corex containers.
package cxerr

import (
	"gitlab.com/tozd/go/errors"
)

// 🚨 Error kinds. Failure sites wrap these with errors.Errorf("...: %w", ...)
var (
	ErrOutOfRange   = errors.Base("index out of range")
	ErrNotFound     = errors.Base("value not found")
	ErrTypeMismatch = errors.Base("element type mismatch")
	ErrConversion   = errors.Base("number conversion failed")
	ErrSizeMismatch = errors.Base("size mismatch")
)

// Kind names, as used in script expectations
const (
	KindNone         = ""
	KindOutOfRange   = "out_of_range"
	KindNotFound     = "not_found"
	KindTypeMismatch = "type_mismatch"
	KindConversion   = "conversion"
	KindSizeMismatch = "size_mismatch"
	KindUnknown      = "unknown"
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrOutOfRange, KindOutOfRange},
	{ErrNotFound, KindNotFound},
	{ErrTypeMismatch, KindTypeMismatch},
	{ErrConversion, KindConversion},
	{ErrSizeMismatch, KindSizeMismatch},
}

// 🏷️ Kind returns the kind name of the first known error in err's chain
func Kind(err error) string {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return KindUnknown
}

// 🔍 IsKind reports whether name is one of the known kind names (or empty)
func IsKind(name string) bool {
	if name == KindNone || name == KindUnknown {
		return true
	}
	for _, k := range kinds {
		if k.name == name {
			return true
		}
	}
	return false
}

// 📏 OutOfRange builds an ErrOutOfRange for index against size
func OutOfRange(index, size int) error {
	return errors.Errorf("index %d with size %d: %w", index, size, ErrOutOfRange)
}
