package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/akrivova/ionflow/internal/radial"
)

// unitContext provides the conversion constants expressions may
// multiply by. All internal energies are Hartree, so Ha is one.
func unitContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"Ha":  cty.NumberFloatVal(1),
			"eV":  cty.NumberFloatVal(1 / radial.HartreeEV),
			"keV": cty.NumberFloatVal(1000 / radial.HartreeEV),
		},
	}
}

// floatList evaluates an expression into a slice of numbers. A nil or
// null expression yields nil without diagnostics.
func floatList(expr hcl.Expression, ctx *hcl.EvalContext) ([]float64, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}
	v, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return nil, diags
	}
	if v.IsNull() {
		return nil, nil
	}

	conv, err := convert.Convert(v, cty.List(cty.Number))
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid number list",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}

	var out []float64
	for it := conv.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		f, _ := ev.AsBigFloat().Float64()
		out = append(out, f)
	}
	return out, nil
}
