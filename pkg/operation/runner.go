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

	"github.com/rs/zerolog"
	"github.com/walteh/corex/pkg/config"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes scripts
type Runner struct {
	Async bool // run scripts concurrently
	Limit int  // max concurrent scripts in async mode, <= 0 means unlimited
}

// 🏗️ NewRunner creates a new runner
func NewRunner(async bool, limit int) *Runner {
	return &Runner{
		Async: async,
		Limit: limit,
	}
}

// 🏃 Run executes every script and returns results in input order.
// The first malformed script aborts the run.
func (r *Runner) Run(ctx context.Context, scripts []*config.Script) ([]*Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("scripts", len(scripts)).Bool("async", r.Async).Int("limit", r.Limit).Msg("running scripts")

	if r.Async {
		return r.runAsync(ctx, scripts)
	}
	return r.runSync(ctx, scripts)
}

// 🔄 runSync runs scripts one after another
func (r *Runner) runSync(ctx context.Context, scripts []*config.Script) ([]*Result, error) {
	results := make([]*Result, len(scripts))
	for i, s := range scripts {
		res, err := Execute(ctx, s)
		if err != nil {
			return nil, errors.Errorf("running script %d: %w", i, err)
		}
		results[i] = res
	}
	return results, nil
}

// ⚡ runAsync runs scripts concurrently
func (r *Runner) runAsync(ctx context.Context, scripts []*config.Script) ([]*Result, error) {
	results := make([]*Result, len(scripts))

	g, gctx := errgroup.WithContext(ctx)
	if r.Limit > 0 {
		g.SetLimit(r.Limit)
	}

	for i, s := range scripts {
		g.Go(func() error {
			res, err := Execute(gctx, s)
			if err != nil {
				return errors.Errorf("running script %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
