package cell

import (
	"fmt"
	"math"
)

// State is the classification of a single field cell.
type State int

const (
	// Clear cells are passable but not yet reached by a traversal.
	Clear State = iota
	// Obstacle cells are impassable and never change.
	Obstacle
	// Avail cells are passable and confirmed reachable from a seed. Only the
	// reachability engine assigns this state.
	Avail
)

var stateNames = map[State]string{
	Clear:    "clear",
	Obstacle: "obstacle",
	Avail:    "avail",
}

// String returns the lower-case name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ParseState converts a name produced by State.String back into a State.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}
	return Clear, fmt.Errorf("unknown cell state %q", name)
}

// Coord is a position on the field. Both axes span the full uint range.
type Coord struct {
	X, Y uint
}

// At is shorthand for Coord{X: x, Y: y}.
func At(x, y uint) Coord {
	return Coord{X: x, Y: y}
}

// String formats the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Neighbors returns the axis-aligned neighbours of c that lie inside the
// domain. Steps below zero or past math.MaxUint are skipped.
func (c Coord) Neighbors() []Coord {
	return c.AppendNeighbors(make([]Coord, 0, 4))
}

// AppendNeighbors appends the in-domain neighbours of c to dst in the order
// (x, y+1), (x, y-1), (x-1, y), (x+1, y) and returns the extended slice.
func (c Coord) AppendNeighbors(dst []Coord) []Coord {
	if c.Y < math.MaxUint {
		dst = append(dst, Coord{c.X, c.Y + 1})
	}
	if c.Y > 0 {
		dst = append(dst, Coord{c.X, c.Y - 1})
	}
	if c.X > 0 {
		dst = append(dst, Coord{c.X - 1, c.Y})
	}
	if c.X < math.MaxUint {
		dst = append(dst, Coord{c.X + 1, c.Y})
	}
	return dst
}
