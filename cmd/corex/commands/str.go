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

package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/walteh/corex/cmd/corex/opts"
	"github.com/walteh/corex/pkg/config"
	"github.com/walteh/corex/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewStrCmd creates a new str command
func NewStrCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "str <op> <value> [args...]",
		Short: "Apply one string operation",
		Long: `Str applies a single operation to a dynamic string built from <value>.
Queries print their answer, mutations print the resulting string.

Examples:
  corex str upper hello
  corex str index "Hello World" World
  corex str replace_all a-b-c - +`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := &config.Script{
				Name:    "str",
				Kind:    config.KindString,
				Initial: args[1],
				Steps:   []config.Step{{Op: args[0], Args: cliArgs(args[2:])}},
			}
			if err := script.Validate(); err != nil {
				return errors.Errorf("invalid op: %w", err)
			}

			res, err := operation.Execute(cmd.Context(), script)
			if err != nil {
				return errors.Errorf("running %s: %w", args[0], err)
			}

			step := res.Steps[0]
			if step.Err != nil {
				return errors.Errorf("%s: %w", step.Op, step.Err)
			}

			out := res.Value
			if step.Output != "" {
				out = step.Output
			}
			_, err = fmt.Fprintln(o.Out, out)
			return err
		},
	}

	return cmd
}

// cliArgs keeps integers usable as indexes without losing their spelling
func cliArgs(args []string) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		if _, err := strconv.ParseInt(a, 10, 64); err == nil {
			out = append(out, json.Number(a))
			continue
		}
		out = append(out, a)
	}
	return out
}
