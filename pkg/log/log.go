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

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	stepIndent  = 4  // spaces to indent step entries
	opWidth     = 14 // width for the op name
	outputWidth = 24 // width for the step output
	kindWidth   = 14 // width for the error kind
)

// 🎯 StepOperation represents a script step for logging
type StepOperation struct {
	Index   int    // Step position in the script
	Op      string // Op name
	Output  string // Rendered step output
	ErrKind string // Error kind raised by the step, if any
	Passed  bool   // Whether the step matched its expectations
}

// 📦 ScriptOperation represents a script run for logging
type ScriptOperation struct {
	Name     string // Script name
	Kind     string // Container kind (string, array<int>, ...)
	Location string // File the script was loaded from
	RunID    string // Run identifier
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	mu        sync.Mutex
	currentOp *ScriptOperation
	steps     []StepOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatStep formats a step for display
func (l *Logger) formatStep(op StepOperation) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case !op.Passed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.ErrKind != "":
		symbol = '!'
		symbolColor = color.FgYellow
	case op.Output != "":
		symbol = '?'
		symbolColor = color.FgCyan
	default:
		symbol = '✓'
		symbolColor = color.FgGreen
	}

	// Build the line
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", stepIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", opWidth, fmt.Sprintf("%d:%s", op.Index, op.Op)),
		fmt.Sprintf("%-*s", outputWidth, op.Output),
		color.New(color.FgYellow).Sprint(fmt.Sprintf("%-*s", kindWidth, op.ErrKind)))
}

// 📝 LogStep logs a script step
func (l *Logger) LogStep(ctx context.Context, op StepOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Add to steps list
	l.steps = append(l.steps, op)

	// Format and print
	fmt.Fprintln(l.console, l.formatStep(op))

	// Log to zerolog
	l.zlog.Debug().
		Int("step", op.Index).
		Str("op", op.Op).
		Str("output", op.Output).
		Str("err_kind", op.ErrKind).
		Bool("passed", op.Passed).
		Msg("script step")
}

// 📝 StartScript starts a new script run
func (l *Logger) StartScript(ctx context.Context, op ScriptOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.steps = nil

	// Print script header
	if op.Location != "" {
		fmt.Fprintf(l.console, "[running %s]\n",
			color.New(color.FgCyan).Sprint(op.Location))
	}

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Name),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Kind))

	// Log to zerolog
	l.zlog.Info().
		Str("script", op.Name).
		Str("kind", op.Kind).
		Str("location", op.Location).
		Str("run_id", op.RunID).
		Msg("starting script")
}

// 📝 EndScript ends the current script run
func (l *Logger) EndScript(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	failed := 0
	for _, s := range l.steps {
		if !s.Passed {
			failed++
		}
	}

	// Log summary
	l.zlog.Info().
		Str("script", l.currentOp.Name).
		Int("steps", len(l.steps)).
		Int("failed", failed).
		Msg("script complete")

	l.currentOp = nil
	l.steps = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Print writes preformatted text, such as a summary table
func (l *Logger) Print(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, strings.TrimRight(text, "\n"))
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	corexText := color.New(color.Bold, color.FgCyan).Sprint("corex")
	fmt.Fprintf(l.console, "\n%s %s\n\n", corexText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...any) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...any) {
	l.Success(fmt.Sprintf(format, args...))
}
