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
	"math/big"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the script from HCL. Steps are labelled blocks:
//
//	step "append" {
//	  args = [" World"]
//	}
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Script, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "script.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclScript struct {
		Name    string    `hcl:"name,optional"`
		Kind    string    `hcl:"kind"`
		Initial string    `hcl:"initial,optional"`
		Element string    `hcl:"element,optional"`
		Items   cty.Value `hcl:"items,optional"`
		Steps   []struct {
			Op     string    `hcl:"op,label"`
			Args   cty.Value `hcl:"args,optional"`
			Expect *string   `hcl:"expect,optional"`
			Error  string    `hcl:"error,optional"`
		} `hcl:"step,block"`
		Expect *struct {
			Value *string `hcl:"value,optional"`
			Size  *int    `hcl:"size,optional"`
		} `hcl:"expect,block"`
	}

	// Decode HCL
	var hclCfg hclScript
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	items, err := ctyList(hclCfg.Items)
	if err != nil {
		return nil, errors.Errorf("decoding items: %w", err)
	}

	// Convert to model
	script := &Script{
		Name:    hclCfg.Name,
		Kind:    Kind(hclCfg.Kind),
		Initial: hclCfg.Initial,
		Element: hclCfg.Element,
		Items:   items,
	}

	for i, s := range hclCfg.Steps {
		args, err := ctyList(s.Args)
		if err != nil {
			return nil, errors.Errorf("decoding step %d args: %w", i, err)
		}
		script.Steps = append(script.Steps, Step{
			Op:     s.Op,
			Args:   args,
			Expect: s.Expect,
			Error:  s.Error,
		})
	}

	if hclCfg.Expect != nil {
		script.Expect = Expectation{
			Value: hclCfg.Expect.Value,
			Size:  hclCfg.Expect.Size,
		}
	}

	return script, nil
}

// 🔄 ctyList converts an HCL list or tuple of primitives to Go values.
// Whole numbers become int64, other numbers float64.
func ctyList(v cty.Value) ([]any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, errors.Errorf("value is not known")
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, errors.Errorf("want a list, got %s", ty.FriendlyName())
	}

	out := make([]any, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.IsNull() {
			return nil, errors.Errorf("element %d is null", len(out))
		}
		switch ev.Type() {
		case cty.String:
			out = append(out, ev.AsString())
		case cty.Bool:
			out = append(out, ev.True())
		case cty.Number:
			bf := ev.AsBigFloat()
			if bf.IsInt() {
				if i, acc := bf.Int64(); acc == big.Exact {
					out = append(out, i)
					continue
				}
			}
			f, _ := bf.Float64()
			out = append(out, f)
		default:
			return nil, errors.Errorf("element %d has unsupported type %s", len(out), ev.Type().FriendlyName())
		}
	}
	return out, nil
}
