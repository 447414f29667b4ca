package hclconfig

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/lialsoftlab/ant25/internal/config"
	"github.com/lialsoftlab/ant25/internal/render"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalContext exposes the named colours as the object variable "colors".
func evalContext() *hcl.EvalContext {
	names := config.ColorNames()
	colors := make(map[string]cty.Value, len(names))
	for _, name := range names {
		rgb, _ := config.NamedColor(name)
		colors[name] = colorToCty(rgb)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"colors": cty.ObjectVal(colors),
		},
	}
}

func colorToCty(rgb render.RGB) cty.Value {
	return cty.ListVal([]cty.Value{
		cty.NumberIntVal(int64(rgb[0])),
		cty.NumberIntVal(int64(rgb[1])),
		cty.NumberIntVal(int64(rgb[2])),
	})
}

// decodeColor evaluates expr and converts the result into a colour. Strings
// are parsed as "#RRGGBB"; anything else must convert to list(number).
func decodeColor(expr hcl.Expression, evalCtx *hcl.EvalContext) (render.RGB, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return render.RGB{}, diags
	}
	if val.IsNull() || !val.IsKnown() {
		return render.RGB{}, fmt.Errorf("%w: colour must be a known, non-null value", config.ErrInvalidConfig)
	}

	if val.Type() == cty.String {
		return config.ParseHexColor(val.AsString())
	}

	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return render.RGB{}, fmt.Errorf("%w: colour must be a list of numbers or a hex string: %v", config.ErrInvalidConfig, err)
	}
	var channels []int
	if err := gocty.FromCtyValue(list, &channels); err != nil {
		return render.RGB{}, fmt.Errorf("%w: colour channels: %v", config.ErrInvalidConfig, err)
	}
	return config.ColorFromChannels(channels)
}
