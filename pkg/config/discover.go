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
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultPattern matches every script format with a registered parser
const DefaultPattern = "**/*.{yaml,yml,json,hcl,toml}"

// 🔍 Discover finds script files under root matching any of the glob
// patterns (doublestar syntax, slash separated, relative to root). Files
// no parser understands are skipped. Results are sorted and unique.
func Discover(ctx context.Context, root string, patterns ...string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	fsys := os.DirFS(root)
	seen := map[string]bool{}
	var paths []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid pattern %q", pattern)
		}

		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("globbing %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			if GetParser(match) == nil {
				logger.Debug().Str("file", match).Msg("skipping file without parser")
				continue
			}
			paths = append(paths, filepath.Join(root, filepath.FromSlash(match)))
		}
	}

	sort.Strings(paths)
	logger.Debug().Int("count", len(paths)).Str("root", root).Msg("discovered scripts")
	return paths, nil
}
