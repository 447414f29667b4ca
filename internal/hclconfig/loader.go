package hclconfig

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lialsoftlab/ant25/internal/config"
	"github.com/lialsoftlab/ant25/internal/ctxlog"
	"github.com/lialsoftlab/ant25/internal/render"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the top-level layout of a configuration file.
type fileRoot struct {
	Seed      *point   `hcl:"seed,block"`
	Window    *window  `hcl:"window,block"`
	Palette   *palette `hcl:"palette,block"`
	Threshold *uint16  `hcl:"threshold,optional"`
}

type point struct {
	X *uint `hcl:"x,optional"`
	Y *uint `hcl:"y,optional"`
}

type window struct {
	X0 *uint `hcl:"x0,optional"`
	Y0 *uint `hcl:"y0,optional"`
	X1 *uint `hcl:"x1,optional"`
	Y1 *uint `hcl:"y1,optional"`
}

type palette struct {
	Clear    hcl.Expression `hcl:"clear,optional"`
	Obstacle hcl.Expression `hcl:"obstacle,optional"`
	Avail    hcl.Expression `hcl:"avail,optional"`
}

// Load reads the HCL file at path and overlays it on base.
func (l *Loader) Load(ctx context.Context, path string, base *config.Model) (*config.Model, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read HCL file %s: %w", path, err)
	}
	return l.Parse(ctx, src, path, base)
}

// Parse decodes src, named filename in diagnostics, and overlays it on base.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string, base *config.Model) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file", filename)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	evalCtx := evalContext()
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	m := *base
	if root.Seed != nil {
		setUint(&m.Seed.X, root.Seed.X)
		setUint(&m.Seed.Y, root.Seed.Y)
	}
	if root.Window != nil {
		setUint(&m.Window.X0, root.Window.X0)
		setUint(&m.Window.Y0, root.Window.Y0)
		setUint(&m.Window.X1, root.Window.X1)
		setUint(&m.Window.Y1, root.Window.Y1)
	}
	if root.Threshold != nil {
		m.Threshold = *root.Threshold
	}
	if root.Palette != nil {
		entries := []struct {
			name string
			expr hcl.Expression
			dst  *render.RGB
		}{
			{"clear", root.Palette.Clear, &m.Palette.Clear},
			{"obstacle", root.Palette.Obstacle, &m.Palette.Obstacle},
			{"avail", root.Palette.Avail, &m.Palette.Avail},
		}
		for _, e := range entries {
			if !isExprDefined(ctx, e.expr, e.name) {
				continue
			}
			rgb, err := decodeColor(e.expr, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("palette %s in %s: %w", e.name, filename, err)
			}
			*e.dst = rgb
		}
	}

	logger.Debug("HCL loading complete.", "seed", m.Seed.String(), "threshold", m.Threshold)
	return &m, nil
}

func setUint(dst *uint, v *uint) {
	if v != nil {
		*dst = *v
	}
}
