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
	"strconv"

	"github.com/pterm/pterm"
	"github.com/walteh/corex/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// 📋 Summary renders one table row per result
func Summary(results []*operation.Result) (string, error) {
	data := pterm.TableData{
		{"Script", "Kind", "Steps", "Failed", "Size", "Result", "Run"},
	}

	for _, res := range results {
		verdict := "PASS"
		if !res.Passed() {
			verdict = "FAIL"
		}
		data = append(data, []string{
			res.Script.Name,
			res.Script.KindLabel(),
			strconv.Itoa(len(res.Steps)),
			strconv.Itoa(res.FailedSteps()),
			strconv.Itoa(res.Size),
			verdict,
			res.RunID.String()[:8],
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Errorf("rendering summary: %w", err)
	}
	return out, nil
}

// 🧮 Totals counts passing and failing results
func Totals(results []*operation.Result) (passed, failed int) {
	for _, res := range results {
		if res.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
