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
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/corex/pkg/config"
)

func TestRunner(t *testing.T) {
	var scripts []*config.Script
	for i := range 20 {
		s := stringScript(fmt.Sprintf("s%02d", i), config.Step{Op: "upper"})
		s.Name = fmt.Sprintf("script-%02d", i)
		scripts = append(scripts, s)
	}

	tests := []struct {
		name   string
		runner *Runner
	}{
		{name: "sync", runner: NewRunner(false, 0)},
		{name: "async_unlimited", runner: NewRunner(true, 0)},
		{name: "async_limited", runner: NewRunner(true, 3)},
	}

	ctx := zerolog.New(os.Stderr).Level(zerolog.InfoLevel).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := tt.runner.Run(ctx, scripts)
			require.NoError(t, err, "Run should succeed")
			require.Len(t, results, len(scripts))

			for i, res := range results {
				assert.Same(t, scripts[i], res.Script, "results should keep input order")
				assert.Equal(t, fmt.Sprintf("S%02d", i), res.Value)
				assert.True(t, res.Passed())
			}
		})
	}
}

func TestRunnerInvalidScript(t *testing.T) {
	scripts := []*config.Script{
		stringScript("ok", config.Step{Op: "upper"}),
		stringScript("bad", config.Step{Op: "explode"}),
	}

	for _, async := range []bool{false, true} {
		t.Run(fmt.Sprintf("async_%v", async), func(t *testing.T) {
			results, err := NewRunner(async, 1).Run(context.Background(), scripts)
			require.Error(t, err)
			assert.Nil(t, results)
			assert.Contains(t, err.Error(), "running script 1")
			assert.ErrorIs(t, err, ErrInvalidStep)
		})
	}
}

func TestRunnerEmpty(t *testing.T) {
	results, err := NewRunner(true, 2).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
