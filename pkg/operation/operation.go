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
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/corex/pkg/config"
	"github.com/walteh/corex/pkg/cxerr"
	"gitlab.com/tozd/go/errors"
)

// 🚫 ErrInvalidStep marks a step the interpreter cannot run at all
var ErrInvalidStep = errors.Base("invalid step")

// 🎯 StepResult is the outcome of a single script step
type StepResult struct {
	Index   int
	Op      string
	Args    []any
	Output  string // rendered answer of the step, empty for mutations
	Err     error  // container error, if any
	ErrKind string // cxerr kind name of Err
	Want    *string
	WantErr string
	Passed  bool
}

// 📊 Result is the outcome of a whole script
type Result struct {
	RunID    uuid.UUID
	Script   *config.Script
	Steps    []StepResult
	Value    string // final rendering of the container
	Size     int
	Failures []string
	Duration time.Duration
}

// ✅ Passed reports whether every step and the final expectations held
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// 🧮 FailedSteps counts steps that did not match their expectations
func (r *Result) FailedSteps() int {
	n := 0
	for _, s := range r.Steps {
		if !s.Passed {
			n++
		}
	}
	return n
}

// machine is a container the interpreter can drive
type machine interface {
	apply(op string, args []any) (string, error)
	value() string
	size() int
}

// 🏃 Execute runs script against a fresh container
func Execute(ctx context.Context, script *config.Script) (*Result, error) {
	if script == nil {
		return nil, errors.Errorf("script is required")
	}

	res := &Result{
		RunID:  uuid.New(),
		Script: script,
	}

	logger := zerolog.Ctx(ctx).With().
		Str("script", script.Name).
		Str("run_id", res.RunID.String()).
		Logger()
	logger.Debug().Str("kind", string(script.Kind)).Int("steps", len(script.Steps)).Msg("executing script")

	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	m, err := newMachine(script)
	if err != nil {
		return nil, errors.Errorf("building %s container: %w", script.Kind, err)
	}

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("executing %s: %w", script.Name, err)
		}

		out, err := m.apply(step.Op, step.Args)
		if errors.Is(err, ErrInvalidStep) {
			return nil, errors.Errorf("step %d (%s): %w", i, step.Op, err)
		}

		sr := StepResult{
			Index:   i,
			Op:      step.Op,
			Args:    step.Args,
			Output:  out,
			Err:     err,
			ErrKind: cxerr.Kind(err),
			Want:    step.Expect,
			WantErr: step.Error,
		}
		sr.Passed = sr.ErrKind == sr.WantErr && (sr.Want == nil || *sr.Want == sr.Output)

		if !sr.Passed {
			res.Failures = append(res.Failures, describeStep(sr))
		}

		logger.Debug().
			Int("step", i).
			Str("op", step.Op).
			Str("output", out).
			Str("err_kind", sr.ErrKind).
			Bool("passed", sr.Passed).
			Msg("step done")

		res.Steps = append(res.Steps, sr)
	}

	res.Value = m.value()
	res.Size = m.size()

	if want := script.Expect.Value; want != nil && *want != res.Value {
		res.Failures = append(res.Failures, fmt.Sprintf("final value: got %q, want %q", res.Value, *want))
	}
	if want := script.Expect.Size; want != nil && *want != res.Size {
		res.Failures = append(res.Failures, fmt.Sprintf("final size: got %d, want %d", res.Size, *want))
	}

	logger.Debug().Bool("passed", res.Passed()).Str("value", res.Value).Int("size", res.Size).Msg("script done")

	return res, nil
}

func describeStep(sr StepResult) string {
	if sr.ErrKind != sr.WantErr {
		switch {
		case sr.WantErr == "":
			return fmt.Sprintf("step %d (%s): unexpected error: %v", sr.Index, sr.Op, sr.Err)
		case sr.ErrKind == "":
			return fmt.Sprintf("step %d (%s): got no error, want %s", sr.Index, sr.Op, sr.WantErr)
		default:
			return fmt.Sprintf("step %d (%s): got %s error, want %s", sr.Index, sr.Op, sr.ErrKind, sr.WantErr)
		}
	}
	return fmt.Sprintf("step %d (%s): got %q, want %q", sr.Index, sr.Op, sr.Output, *sr.Want)
}

func newMachine(script *config.Script) (machine, error) {
	switch script.Kind {
	case config.KindString:
		return newStringMachine(script.Initial), nil
	case config.KindArray:
		switch script.Element {
		case config.ElementInt:
			return newArrayMachine(script.Items, toInt64)
		case config.ElementFloat:
			return newArrayMachine(script.Items, toFloat64)
		case config.ElementString, "":
			return newArrayMachine(script.Items, toStringElem)
		case config.ElementBool:
			return newArrayMachine(script.Items, toBool)
		default:
			return nil, errors.Errorf("unknown element type %q", script.Element)
		}
	default:
		return nil, errors.Errorf("unknown kind %q", script.Kind)
	}
}
