package field

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/lialsoftlab/ant25/internal/cell"
)

// ObstacleMark is the pattern character that loads as cell.Obstacle. Every
// other character loads as cell.Clear.
const ObstacleMark = 'X'

// Load overrides a rectangle of cells from an ASCII pattern whose top-left
// character lands on origin. Rows may differ in length. A pattern that does
// not fit the coordinate domain is rejected before any cell is written.
func (f *Field) Load(origin cell.Coord, rows []string) error {
	maxDX := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(row); n-1 > maxDX {
			maxDX = n - 1
		}
	}
	if len(rows) > 0 && (uint(maxDX) > math.MaxUint-origin.X || uint(len(rows)-1) > math.MaxUint-origin.Y) {
		return fmt.Errorf("field: pattern at %s leaves the coordinate domain", origin)
	}

	for dy, row := range rows {
		for dx, ch := range []rune(row) {
			state := cell.Clear
			if ch == ObstacleMark {
				state = cell.Obstacle
			}
			f.SetCellState(cell.Coord{X: origin.X + uint(dx), Y: origin.Y + uint(dy)}, state)
		}
	}
	return nil
}
