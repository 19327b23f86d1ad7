// Package hcl_adapter provides the HCL implementation of config.Format.
//
// Top-level attributes become document keys. Blocks become nested mappings
// keyed by the block type, and each block label adds one more level:
//
//	trained_model = "models/ridge.msgpack"
//
//	ridge {
//	  alpha = 0.5
//	}
//
//	dataset "raw" {
//	  path = "data/raw.csv"
//	}
//
// decodes to {"trained_model": ..., "ridge": {"alpha": 0.5},
// "dataset": {"raw": {"path": ...}}}. Expressions are evaluated without
// variables or functions.
package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// Format is the HCL-specific implementation of the config.Format interface.
type Format struct{}

// NewFormat creates a new HCL document format.
func NewFormat() *Format {
	return &Format{}
}

func (f *Format) Name() string { return "hcl" }

func (f *Format) Ext() string { return "hcl" }

// Decode parses an HCL document into nested Go values.
func (f *Format) Decode(source string, data []byte) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, source)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected HCL body type %T", file.Body)
	}
	return decodeBody(body)
}

// decodeBody converts one body, recursing into nested blocks.
func decodeBody(body *hclsyntax.Body) (map[string]any, error) {
	out := make(map[string]any, len(body.Attributes)+len(body.Blocks))

	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate attribute %q: %w", name, diags)
		}
		goVal, err := ctyToGo(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = goVal
	}

	for _, block := range body.Blocks {
		nested, err := decodeBody(block.Body)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", block.Type, err)
		}
		if err := insertBlock(out, block, nested); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// insertBlock places a decoded block under its type and labels.
func insertBlock(out map[string]any, block *hclsyntax.Block, value map[string]any) error {
	keys := append([]string{block.Type}, block.Labels...)
	target := out
	for _, k := range keys[:len(keys)-1] {
		existing, present := target[k]
		if !present {
			sub := make(map[string]any)
			target[k] = sub
			target = sub
			continue
		}
		sub, ok := existing.(map[string]any)
		if !ok {
			return duplicateError(block, k)
		}
		target = sub
	}

	last := keys[len(keys)-1]
	if _, present := target[last]; present {
		return duplicateError(block, last)
	}
	target[last] = value
	return nil
}

func duplicateError(block *hclsyntax.Block, key string) error {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Duplicate definition",
		Detail:   fmt.Sprintf("%q is defined more than once.", key),
		Subject:  block.DefRange().Ptr(),
	}
}
