package render

import "github.com/lialsoftlab/ant25/internal/cell"

// RGB is a 24-bit colour.
type RGB [3]byte

// Palette maps each cell state to a colour.
type Palette struct {
	Clear    RGB
	Obstacle RGB
	Avail    RGB
}

// Yellow is FF FF 00, the default colour of clear cells.
func Yellow() RGB { return RGB{0xFF, 0xFF, 0x00} }

// Blue is 00 00 FF, the default colour of obstacles.
func Blue() RGB { return RGB{0x00, 0x00, 0xFF} }

// Green is 00 FF 00, the default colour of reachable cells.
func Green() RGB { return RGB{0x00, 0xFF, 0x00} }

// DefaultPalette paints clear cells yellow, obstacles blue and reachable
// cells green.
func DefaultPalette() Palette {
	return Palette{Clear: Yellow(), Obstacle: Blue(), Avail: Green()}
}

// Color returns the colour for s. Unknown states are black.
func (p Palette) Color(s cell.State) RGB {
	switch s {
	case cell.Clear:
		return p.Clear
	case cell.Obstacle:
		return p.Obstacle
	case cell.Avail:
		return p.Avail
	}
	return RGB{}
}
