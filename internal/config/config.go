/*
Copyright 2026 The Perkeep Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the exifwalk configuration file, written in HCL.
//
// All settings are optional:
//
//	variables {
//	  mib = 1024 * 1024
//	}
//
//	max_file_size = 256 * var.mib
//	workers       = env.EXIFWALK_WORKERS
//	sub_ifd       = true
//	formats       = ["ascii", "urational"]
//
// The environment is available as env, and the attributes of the
// variables block as var.
package config // import "exifwalk.org/internal/config"

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"exifwalk.org/pkg/exif"
)

// Defaults.
const (
	DefaultMaxFileSize = 64 << 20
	DefaultWorkers     = 4
)

// Config is the exifwalk configuration.
type Config struct {
	// MaxFileSize is the size in bytes above which input files are
	// rejected without being read.
	MaxFileSize int64
	// Workers is the number of files decoded concurrently.
	Workers int
	// SubIFD reports whether the EXIF Sub-IFD is followed.
	SubIFD bool
	// Formats restricts printed tags to these value formats.
	// Nil means all formats.
	Formats []exif.Format
}

// Default returns the configuration used without a configuration file.
func Default() *Config {
	return &Config{
		MaxFileSize: DefaultMaxFileSize,
		Workers:     DefaultWorkers,
		SubIFD:      true,
	}
}

// Load reads the configuration file at path. The error wraps
// fs.ErrNotExist if there is no such file.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(src, path)
}

// Parse parses the HCL configuration src. The filename is used in error
// messages.
func Parse(src []byte, filename string) (*Config, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}
	conf, diags := decodeConfig(f.Body)
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}
	return conf, nil
}

const typeVariables = "variables"

type configRaw struct {
	MaxFileSize *int64   `hcl:"max_file_size,optional"`
	Workers     *int     `hcl:"workers,optional"`
	SubIFD      *bool    `hcl:"sub_ifd,optional"`
	Formats     []string `hcl:"formats,optional"`
	Remain      hcl.Body `hcl:",remain"`
}

func decodeConfig(body hcl.Body) (*Config, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	evalCtx := &hcl.EvalContext{Variables: make(map[string]cty.Value)}
	buildEvalContextAddEnvironment(evalCtx)
	diags = append(diags, buildEvalContextAddVariables(body, evalCtx)...)
	if diags.HasErrors() {
		return nil, diags
	}

	var raw configRaw
	diags = append(diags, gohcl.DecodeBody(body, evalCtx, &raw)...)
	if diags.HasErrors() {
		return nil, diags
	}
	// Only the variables block may remain; anything else is unknown.
	content, moreDiags := raw.Remain.Content(&hcl.BodySchema{Blocks: []hcl.BlockHeaderSchema{
		{Type: typeVariables},
	}})
	diags = append(diags, moreDiags...)
	if diags.HasErrors() {
		return nil, diags
	}
	if blocks := content.Blocks.OfType(typeVariables); len(blocks) > 1 {
		return nil, diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Duplicate '%s' block", typeVariables),
			Detail:   fmt.Sprintf("The '%s' settings were already configured at %s.", typeVariables, blocks[0].DefRange),
			Subject:  &blocks[1].TypeRange,
		})
	}

	// Attribute ranges, for validation errors.
	attrs, _, _ := body.PartialContent(&hcl.BodySchema{Attributes: []hcl.AttributeSchema{
		{Name: "max_file_size"}, {Name: "workers"}, {Name: "formats"},
	}})
	invalid := func(attr, detail string) *hcl.Diagnostic {
		d := &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Invalid '%s' value", attr),
			Detail:   detail,
		}
		if a, ok := attrs.Attributes[attr]; ok {
			d.Subject = a.Expr.Range().Ptr()
		}
		return d
	}

	conf := Default()
	if raw.MaxFileSize != nil {
		if *raw.MaxFileSize <= 0 {
			diags = diags.Append(invalid("max_file_size", "must be positive"))
		}
		conf.MaxFileSize = *raw.MaxFileSize
	}
	if raw.Workers != nil {
		if *raw.Workers < 1 {
			diags = diags.Append(invalid("workers", "must be at least 1"))
		}
		conf.Workers = *raw.Workers
	}
	if raw.SubIFD != nil {
		conf.SubIFD = *raw.SubIFD
	}
	if raw.Formats != nil {
		conf.Formats = make([]exif.Format, 0, len(raw.Formats))
		for _, name := range raw.Formats {
			f, err := exif.ParseFormat(name)
			if err != nil {
				diags = diags.Append(invalid("formats", err.Error()))
				continue
			}
			conf.Formats = append(conf.Formats, f)
		}
	}
	return conf, diags
}

func buildEvalContextAddEnvironment(evalCtx *hcl.EvalContext) {
	const evalCtxKeyEnvironment = "env"

	aux := make(map[string]cty.Value)
	for _, envVal := range os.Environ() {
		k, v, _ := strings.Cut(envVal, "=")
		aux[k] = cty.StringVal(v)
	}
	evalCtx.Variables[evalCtxKeyEnvironment] = cty.ObjectVal(aux)
}

func buildEvalContextAddVariables(body hcl.Body, evalCtx *hcl.EvalContext) hcl.Diagnostics {
	const evalCtxKeyVariable = "var"

	var (
		diags hcl.Diagnostics
		aux   = make(map[string]cty.Value)
	)

	content, _, moreDiags := body.PartialContent(&hcl.BodySchema{Blocks: []hcl.BlockHeaderSchema{
		{Type: typeVariables},
	}})
	diags = append(diags, moreDiags...)

	for _, block := range content.Blocks {
		varAttrs, moreDiags := block.Body.JustAttributes()
		diags = append(diags, moreDiags...)

		for k, v := range varAttrs {
			vv, moreDiags := v.Expr.Value(evalCtx)
			diags = append(diags, moreDiags...)
			aux[k] = vv
		}
	}
	evalCtx.Variables[evalCtxKeyVariable] = cty.ObjectVal(aux)

	return diags
}

// Filter reports whether tags of format f are printed.
func (c *Config) Filter(f exif.Format) bool {
	if c.Formats == nil {
		return true
	}
	for _, want := range c.Formats {
		if f == want {
			return true
		}
	}
	return false
}
