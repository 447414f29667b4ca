// Package yamlconfig loads run configuration from YAML files.
//
//	seed: {x: 1000, y: 1000}
//	threshold: 25
//	window: {x0: 500, y0: 500, x1: 2499, y1: 2499}
//	palette:
//	  clear: yellow
//	  obstacle: "#0000FF"
//	  avail: [0, 255, 0]
//
// A colour is a name accepted by config.NamedColor, a "#RRGGBB" string or a list
// of three channels. Unknown keys are rejected.
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lialsoftlab/ant25/internal/config"
	"github.com/lialsoftlab/ant25/internal/ctxlog"
	"github.com/lialsoftlab/ant25/internal/render"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Seed      *point   `yaml:"seed"`
	Threshold *uint16  `yaml:"threshold"`
	Window    *window  `yaml:"window"`
	Palette   *palette `yaml:"palette"`
}

type point struct {
	X *uint `yaml:"x"`
	Y *uint `yaml:"y"`
}

type window struct {
	X0 *uint `yaml:"x0"`
	Y0 *uint `yaml:"y0"`
	X1 *uint `yaml:"x1"`
	Y1 *uint `yaml:"y1"`
}

type palette struct {
	Clear    *color `yaml:"clear"`
	Obstacle *color `yaml:"obstacle"`
	Avail    *color `yaml:"avail"`
}

// color accepts a colour name, a hex string or a channel list.
type color render.RGB

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if rgb, ok := config.NamedColor(node.Value); ok {
			*c = color(rgb)
			return nil
		}
		rgb, err := config.ParseHexColor(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = color(rgb)
		return nil
	case yaml.SequenceNode:
		var channels []int
		if err := node.Decode(&channels); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		rgb, err := config.ColorFromChannels(channels)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = color(rgb)
		return nil
	}
	return fmt.Errorf("line %d: %w: colour must be a name, hex string or channel list", node.Line, config.ErrInvalidConfig)
}

// Load reads the YAML file at path and overlays it on base.
func (l *Loader) Load(ctx context.Context, path string, base *config.Model) (*config.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}
	return l.Parse(ctx, data, path, base)
}

// Parse decodes data, named filename in errors, and overlays it on base.
func (l *Loader) Parse(ctx context.Context, data []byte, filename string, base *config.Model) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file", filename)

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}

	m := *base
	if root.Seed != nil {
		setUint(&m.Seed.X, root.Seed.X)
		setUint(&m.Seed.Y, root.Seed.Y)
	}
	if root.Threshold != nil {
		m.Threshold = *root.Threshold
	}
	if root.Window != nil {
		setUint(&m.Window.X0, root.Window.X0)
		setUint(&m.Window.Y0, root.Window.Y0)
		setUint(&m.Window.X1, root.Window.X1)
		setUint(&m.Window.Y1, root.Window.Y1)
	}
	if p := root.Palette; p != nil {
		setColor(&m.Palette.Clear, p.Clear)
		setColor(&m.Palette.Obstacle, p.Obstacle)
		setColor(&m.Palette.Avail, p.Avail)
	}

	logger.Debug("YAML loading complete.", "seed", m.Seed.String(), "threshold", m.Threshold)
	return &m, nil
}

func setUint(dst *uint, v *uint) {
	if v != nil {
		*dst = *v
	}
}

func setColor(dst *render.RGB, c *color) {
	if c != nil {
		*dst = render.RGB(*c)
	}
}
