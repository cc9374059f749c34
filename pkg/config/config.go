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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/corex/pkg/cxerr"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for script parsers
type Parser interface {
	// 📝 Parse parses a script from bytes
	Parse(ctx context.Context, data []byte) (*Script, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📦 Kind is the container a script drives
type Kind string

const (
	KindString Kind = "string"
	KindArray  Kind = "array"
)

// 🧩 Element types an array script may hold
const (
	ElementInt    = "int"
	ElementFloat  = "float"
	ElementString = "string"
	ElementBool   = "bool"
)

// 🔧 Step is one container operation
type Step struct {
	Op     string  `json:"op" yaml:"op" toml:"op"`
	Args   []any   `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	Expect *string `json:"expect,omitempty" yaml:"expect,omitempty" toml:"expect,omitempty"` // expected textual output
	Error  string  `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`    // expected error kind
}

// 🎯 Expectation describes the container after the last step
type Expectation struct {
	Value *string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Size  *int    `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
}

// 📚 Script is a named sequence of operations against one container
type Script struct {
	Name    string      `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Kind    Kind        `json:"kind" yaml:"kind" toml:"kind"`
	Initial string      `json:"initial,omitempty" yaml:"initial,omitempty" toml:"initial,omitempty"`
	Element string      `json:"element,omitempty" yaml:"element,omitempty" toml:"element,omitempty"`
	Items   []any       `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
	Steps   []Step      `json:"steps,omitempty" yaml:"steps,omitempty" toml:"steps,omitempty"`
	Expect  Expectation `json:"expect,omitempty" yaml:"expect,omitempty" toml:"expect,omitempty"`

	location string
}

// 📍 Location returns the file the script was loaded from, if any
func (s *Script) Location() string {
	return s.location
}

// 🎯 Load loads a script from a file
func Load(ctx context.Context, path string) (*Script, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading script")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading script file: %w", err)
	}

	return Parse(ctx, path, data)
}

// 📝 Parse parses script bytes, picking the parser from filename
func Parse(ctx context.Context, filename string, data []byte) (*Script, error) {
	p := GetParser(filename)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", filename)
	}

	script, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing script: %w", err)
	}
	script.location = filename

	if err := script.Validate(); err != nil {
		return nil, errors.Errorf("validating script %s: %w", filename, err)
	}

	return script, nil
}

// 📚 LoadAll loads every path, stopping at the first failure
func LoadAll(ctx context.Context, paths []string) ([]*Script, error) {
	scripts := make([]*Script, 0, len(paths))
	for _, path := range paths {
		script, err := Load(ctx, path)
		if err != nil {
			return nil, errors.Errorf("loading %s: %w", path, err)
		}
		scripts = append(scripts, script)
	}
	return scripts, nil
}

// 🔍 Validate checks if the script is valid and fills in defaults
func (s *Script) Validate() error {
	if s.Name == "" && s.location != "" {
		base := filepath.Base(s.location)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if s.Name == "" {
		return errors.Errorf("name is required")
	}

	switch s.Kind {
	case KindString:
		if s.Element != "" {
			return errors.Errorf("element is only valid for array scripts")
		}
		if len(s.Items) > 0 {
			return errors.Errorf("items are only valid for array scripts")
		}
	case KindArray:
		if s.Initial != "" {
			return errors.Errorf("initial is only valid for string scripts")
		}
		if s.Element == "" {
			s.Element = ElementString
		}
		switch s.Element {
		case ElementInt, ElementFloat, ElementString, ElementBool:
		default:
			return errors.Errorf("unknown element type %q", s.Element)
		}
	case "":
		return errors.Errorf("kind is required")
	default:
		return errors.Errorf("unknown kind %q", s.Kind)
	}

	for i := range s.Steps {
		step := &s.Steps[i]
		step.Op = strings.ToLower(strings.TrimSpace(step.Op))
		if step.Op == "" {
			return errors.Errorf("step %d: op is required", i)
		}
		if !cxerr.IsKind(step.Error) {
			return errors.Errorf("step %d: unknown error kind %q", i, step.Error)
		}
	}

	if s.Expect.Size != nil && *s.Expect.Size < 0 {
		return errors.Errorf("expect.size must not be negative")
	}

	return nil
}

// 🏷️ KindLabel names the container, e.g. "string" or "array<int>"
func (s *Script) KindLabel() string {
	if s.Kind == KindArray {
		return fmt.Sprintf("array<%s>", s.Element)
	}
	return string(s.Kind)
}

// 📝 String returns a short description of the script
func (s *Script) String() string {
	return fmt.Sprintf("%s (%s, %d steps)", s.Name, s.KindLabel(), len(s.Steps))
}
