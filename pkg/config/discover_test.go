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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"a.yaml",
		"nested/b.json",
		"nested/deeper/c.hcl",
		"d.toml",
		"notes.txt",
		"nested/e.yml",
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("kind: string\n"), 0644))
	}
	// directories matching the pattern are skipped
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.yaml"), 0755))

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name: "default_pattern",
			want: []string{"a.yaml", "d.toml", "nested/b.json", "nested/deeper/c.hcl", "nested/e.yml"},
		},
		{
			name:     "single_level",
			patterns: []string{"*.yaml"},
			want:     []string{"a.yaml"},
		},
		{
			name:     "overlapping_patterns",
			patterns: []string{"nested/**/*.json", "**/*.json"},
			want:     []string{"nested/b.json"},
		},
		{
			name:     "no_parser",
			patterns: []string{"**/*.txt"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Discover(context.Background(), root, tt.patterns...)
			require.NoError(t, err)

			var want []string
			for _, w := range tt.want {
				want = append(want, filepath.Join(root, filepath.FromSlash(w)))
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestDiscoverInvalidPattern(t *testing.T) {
	_, err := Discover(context.Background(), t.TempDir(), "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}
