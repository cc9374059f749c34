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

package status

import (
	"fmt"
	"strings"

	"github.com/walteh/corex/pkg/operation"
)

// Formatter defines how steps, results and progress should be formatted
type Formatter interface {
	// FormatStep formats the outcome of one step
	FormatStep(step operation.StepResult) string

	// FormatResult formats the outcome of a whole script
	FormatResult(res *operation.Result) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFormatter provides a default implementation of Formatter
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatStep formats a step with emojis
func (f *DefaultFormatter) FormatStep(step operation.StepResult) string {
	var b strings.Builder
	if step.Passed {
		b.WriteString("✅ ")
	} else {
		b.WriteString("❌ ")
	}
	fmt.Fprintf(&b, "#%d %s", step.Index, step.Op)
	for _, a := range step.Args {
		fmt.Fprintf(&b, " %q", fmt.Sprint(a))
	}

	switch {
	case step.ErrKind != "":
		fmt.Fprintf(&b, " ⚠️  %s", step.ErrKind)
	case step.Output != "":
		fmt.Fprintf(&b, " → %s", step.Output)
	}

	if !step.Passed {
		switch {
		case step.ErrKind != step.WantErr && step.WantErr != "":
			fmt.Fprintf(&b, " (want %s)", step.WantErr)
		case step.ErrKind != step.WantErr:
			b.WriteString(" (want no error)")
		case step.Want != nil:
			fmt.Fprintf(&b, " (want %s)", *step.Want)
		}
	}
	return b.String()
}

// FormatResult formats a script result with emojis
func (f *DefaultFormatter) FormatResult(res *operation.Result) string {
	name := res.Script.Name
	if res.Passed() {
		return fmt.Sprintf("🎉 %s passed: %d steps, value %q", name, len(res.Steps), res.Value)
	}
	return fmt.Sprintf("💥 %s failed: %d of %d checks", name, len(res.Failures), len(res.Steps)+countFinal(res))
}

func countFinal(res *operation.Result) int {
	n := 0
	if res.Script.Expect.Value != nil {
		n++
	}
	if res.Script.Expect.Size != nil {
		n++
	}
	return n
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
