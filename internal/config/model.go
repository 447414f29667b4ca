package config

import (
	"errors"
	"fmt"

	"github.com/lialsoftlab/ant25/internal/cell"
	"github.com/lialsoftlab/ant25/internal/render"
	"github.com/lialsoftlab/ant25/internal/rule"
)

// ErrInvalidConfig indicates a configuration that cannot be run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults used when no configuration file is given.
const (
	DefaultSeedX uint = 1000
	DefaultSeedY uint = 1000

	DefaultWindowX0 uint = 500
	DefaultWindowY0 uint = 500
	DefaultWindowX1 uint = 2499
	DefaultWindowY1 uint = 2499
)

// Model is the complete configuration of one run.
type Model struct {
	Seed      cell.Coord     // traversal start
	Window    render.Window  // rectangle written to the image
	Threshold uint16         // digit-sum obstacle threshold
	Palette   render.Palette // image colours per cell state
}

// Default returns the built-in configuration.
func Default() *Model {
	return &Model{
		Seed: cell.Coord{X: DefaultSeedX, Y: DefaultSeedY},
		Window: render.Window{
			X0: DefaultWindowX0, Y0: DefaultWindowY0,
			X1: DefaultWindowX1, Y1: DefaultWindowY1,
		},
		Threshold: rule.DefaultThreshold,
		Palette:   render.DefaultPalette(),
	}
}

// Validate reports whether m can be run.
func Validate(m *Model) error {
	if m == nil {
		return fmt.Errorf("%w: nil model", ErrInvalidConfig)
	}
	if err := m.Window.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
