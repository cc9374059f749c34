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
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/corex/cmd/corex/opts"
	"github.com/walteh/corex/pkg/config"
	"github.com/walteh/corex/pkg/log"
	"github.com/walteh/corex/pkg/operation"
	"github.com/walteh/corex/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrScriptsFailed is returned when at least one script did not pass
var ErrScriptsFailed = errors.Base("scripts failed")

// NewRunCmd creates a new run command
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	var (
		root  string
		async bool
		limit int
	)

	cmd := &cobra.Command{
		Use:   "run [patterns...]",
		Short: "Run corex scripts",
		Long: `Run finds scripts under --root and replays them.
It will:
1. Match files against the given doublestar patterns (default: every
   yaml, yml, json, hcl and toml file)
2. Load and validate each script
3. Execute the scripts, in parallel with --async
4. Print each step, a diff for mismatched final values and a summary

The command fails when any script fails.

Text arguments should be quoted in scripts. Unquoted numbers are decoded
by the script format first, so 1.0 arrives as "1" and 1e3 as "1000".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "run").Logger().WithContext(ctx)

			paths, err := config.Discover(ctx, root, args...)
			if err != nil {
				return errors.Errorf("discovering scripts: %w", err)
			}
			if len(paths) == 0 {
				o.Logger.Warningf("no scripts found under %s", root)
				return nil
			}

			scripts, err := config.LoadAll(ctx, paths)
			if err != nil {
				return errors.Errorf("loading scripts: %w", err)
			}

			o.Logger.Header(fmt.Sprintf("running %d scripts", len(scripts)))

			results, err := operation.NewRunner(async, limit).Run(ctx, scripts)
			if err != nil {
				return errors.Errorf("running scripts: %w", err)
			}

			for i, res := range results {
				report(ctx, o, res)
				o.Logger.Print(o.Formatter.FormatProgress(i+1, len(results)))
				o.Logger.LogNewline()
			}

			summary, err := status.Summary(results)
			if err != nil {
				return err
			}
			o.Logger.Print(summary)

			passed, failed := status.Totals(results)
			if failed > 0 {
				o.Logger.Errorf("%d of %d scripts failed", failed, len(results))
				return errors.Errorf("%d of %d: %w", failed, len(results), ErrScriptsFailed)
			}

			o.Logger.Successf("all %d scripts passed", passed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", ".", "directory to search for scripts")
	cmd.Flags().BoolVar(&async, "async", false, "run scripts concurrently")
	cmd.Flags().IntVar(&limit, "limit", 0, "max concurrent scripts with --async (0 means no limit)")

	return cmd
}

// report prints one script result
func report(ctx context.Context, o *opts.RootOpts, res *operation.Result) {
	o.Logger.StartScript(ctx, log.ScriptOperation{
		Name:     res.Script.Name,
		Kind:     res.Script.KindLabel(),
		Location: res.Script.Location(),
		RunID:    res.RunID.String(),
	})
	defer o.Logger.EndScript(ctx)

	for _, step := range res.Steps {
		o.Logger.LogStep(ctx, log.StepOperation{
			Index:   step.Index,
			Op:      step.Op,
			Output:  step.Output,
			ErrKind: step.ErrKind,
			Passed:  step.Passed,
		})
		if !step.Passed {
			o.Logger.Print(o.Formatter.FormatStep(step))
		}
	}

	if want := res.Script.Expect.Value; want != nil && *want != res.Value {
		o.Logger.Infof("value diff: %s", status.Diff(*want, res.Value))
	}
	if want := res.Script.Expect.Size; want != nil && *want != res.Size {
		o.Logger.Warningf("size %d, want %d", res.Size, *want)
	}

	o.Logger.Print(o.Formatter.FormatResult(res))
}
