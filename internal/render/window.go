package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/lialsoftlab/ant25/internal/cell"
)

var (
	// ErrInvalidWindow indicates a window whose corners are out of order.
	ErrInvalidWindow = errors.New("render: window corners out of order")
	// ErrWindowTooLarge indicates a window whose size cannot be represented.
	ErrWindowTooLarge = errors.New("render: window too large")
)

// Window is an inclusive rectangle of field cells.
type Window struct {
	X0, Y0 uint // top-left corner
	X1, Y1 uint // bottom-right corner, inclusive
}

// Validate checks that the corners are ordered and that Width and Height fit
// in a uint.
func (w Window) Validate() error {
	if w.X0 > w.X1 || w.Y0 > w.Y1 {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrInvalidWindow, w.X0, w.Y0, w.X1, w.Y1)
	}
	if w.X1-w.X0 == math.MaxUint || w.Y1-w.Y0 == math.MaxUint {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrWindowTooLarge, w.X0, w.Y0, w.X1, w.Y1)
	}
	return nil
}

// Width returns the number of columns. Only meaningful after Validate.
func (w Window) Width() uint { return w.X1 - w.X0 + 1 }

// Height returns the number of rows. Only meaningful after Validate.
func (w Window) Height() uint { return w.Y1 - w.Y0 + 1 }

// each calls fn for every cell of w row-major, top to bottom, left to right.
// The loops stop on the inclusive corner so X1 or Y1 at math.MaxUint does
// not wrap.
func (w Window) each(fn func(c cell.Coord) error) error {
	for y := w.Y0; ; y++ {
		for x := w.X0; ; x++ {
			if err := fn(cell.Coord{X: x, Y: y}); err != nil {
				return err
			}
			if x == w.X1 {
				break
			}
		}
		if y == w.Y1 {
			return nil
		}
	}
}
