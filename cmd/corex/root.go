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
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/corex/cmd/corex/commands"
	"github.com/walteh/corex/cmd/corex/opts"
	"github.com/walteh/corex/pkg/log"
	"github.com/walteh/corex/pkg/status"
)

// newRootCmd builds the corex command tree
func newRootCmd() *cobra.Command {
	var debug bool
	o := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:           "corex",
		Short:         "Run scripts against dynamic string and array containers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(cmd.ErrOrStderr(), debug)
			ctx := logger.WithContext(cmd.Context())
			level := logger.GetLevel()

			o.Logger = log.New(cmd.OutOrStdout(), level)
			o.Formatter = status.NewDefaultFormatter()
			o.Out = cmd.OutOrStdout()

			cmd.SetContext(log.NewContext(ctx, o.Logger))
			return nil
		},
	}

	addRootFlags(cmd, &debug)

	cmd.AddCommand(
		commands.NewRunCmd(o),
		commands.NewStrCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, debug *bool) {
	cmd.PersistentFlags().BoolVarP(debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	l := zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &l
	return l
}
