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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/corex/cmd/corex/commands"
	"github.com/walteh/corex/pkg/cxerr"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableStyling()
	})

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeScripts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing script file")
	}
	return dir
}

const helloScript = `
kind: string
initial: Hello
steps:
  - op: append
    args: [" World"]
  - op: upper
expect:
  value: HELLO WORLD
  size: 11
`

const numbersScript = `
kind    = "array"
element = "int"

step "add" {
  args = [10]
}

step "add" {
  args = [20]
}

step "remove" {
  args = [10]
}

step "at" {
  args   = [0]
  expect = "20"
}

expect {
  size = 1
}
`

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		args        []string
		wantErr     error
		errContains string
		wantOut     []string
	}{
		{
			name: "all_pass",
			files: map[string]string{
				"hello.yaml":          helloScript,
				"nested/numbers.hcl":  numbersScript,
				"README.md":           "not a script",
				"nested/convert.json": `{"kind":"string","initial":"abc","steps":[{"op":"to_int","error":"conversion"}]}`,
			},
			args: []string{"--async", "--limit", "2"},
			wantOut: []string{
				"corex • running 3 scripts",
				"◆ hello • string",
				"◆ numbers • array<int>",
				"◆ convert • string",
				"Progress: 3/3",
				"PASS",
				"all 3 scripts passed",
			},
		},
		{
			name: "pattern_filter",
			files: map[string]string{
				"hello.yaml":         helloScript,
				"nested/numbers.hcl": numbersScript,
			},
			args:    []string{"**/*.hcl"},
			wantOut: []string{"running 1 scripts", "◆ numbers • array<int>"},
		},
		{
			name: "failing_script",
			files: map[string]string{
				"bad.toml": `
kind = "string"
initial = "Hello"

[[steps]]
op = "upper"

[expect]
value = "HELLO!"
`,
			},
			wantErr: commands.ErrScriptsFailed,
			wantOut: []string{
				"value diff: HELLO[-!-]",
				"FAIL",
				"1 of 1 scripts failed",
			},
		},
		{
			name: "failing_step",
			files: map[string]string{
				"bad.yaml": "kind: string\ninitial: abc\nsteps:\n  - op: len\n    expect: \"4\"\n",
			},
			wantErr: commands.ErrScriptsFailed,
			wantOut: []string{"❌ #0 len → 3 (want 4)"},
		},
		{
			name: "malformed_script",
			files: map[string]string{
				"bad.yaml": "kind: string\nsteps:\n  - op: explode\n",
			},
			errContains: `unknown op "explode"`,
		},
		{
			name: "invalid_script",
			files: map[string]string{
				"bad.yaml": "kind: map\n",
			},
			errContains: "loading scripts",
		},
		{
			name:    "no_scripts",
			files:   map[string]string{"notes.txt": "hi"},
			wantOut: []string{"no scripts found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeScripts(t, tt.files)

			out, err := runCmd(t, append([]string{"run", "--root", dir}, tt.args...)...)
			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			default:
				require.NoError(t, err, "output:\n%s", out)
			}

			for _, want := range tt.wantOut {
				assert.Contains(t, out, want, "output should contain %q", want)
			}
		})
	}
}

func TestStrCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{name: "mutation", args: []string{"upper", "hello"}, want: "HELLO"},
		{name: "query", args: []string{"index", "Hello World", "World"}, want: "6"},
		{name: "replace_all", args: []string{"replace_all", "a-b-c", "-", "+"}, want: "a+b+c"},
		{name: "set_with_index", args: []string{"set", "abc", "1", "Z"}, want: "aZc"},
		{name: "append_keeps_digits", args: []string{"append", "v", "007"}, want: "v007"},
		{name: "conversion", args: []string{"to_long", "9000000000"}, want: "9000000000"},
		{name: "conversion_error", args: []string{"to_int", "abc"}, wantErr: cxerr.ErrConversion},
		{name: "out_of_range", args: []string{"at", "abc", "5"}, wantErr: cxerr.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, append([]string{"str"}, tt.args...)...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestStrCommandInvalid(t *testing.T) {
	_, err := runCmd(t, "str", "explode", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown op "explode"`)

	_, err = runCmd(t, "str", "upper")
	require.Error(t, err, "value is required")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "corex version info")
	assert.Contains(t, out, "Go:")
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
