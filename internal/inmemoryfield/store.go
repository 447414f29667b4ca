package inmemoryfield

import (
	"github.com/lialsoftlab/ant25/internal/cell"
	"github.com/lialsoftlab/ant25/internal/fieldstore"
)

// Store is an in-memory implementation of fieldstore.Store.
type Store struct {
	rows map[uint]map[uint]cell.State // Key: Y, then X
	size int
}

var _ fieldstore.Store = (*Store)(nil)

// New creates a new, empty in-memory field store.
func New() *Store {
	return &Store{rows: make(map[uint]map[uint]cell.State)}
}

// Lookup returns the stored state at c, if any.
func (s *Store) Lookup(c cell.Coord) (cell.State, bool) {
	row, ok := s.rows[c.Y]
	if !ok {
		return cell.Clear, false
	}
	state, ok := row[c.X]
	return state, ok
}

// Set stores state at c, creating the row on first use.
func (s *Store) Set(c cell.Coord, state cell.State) {
	row, ok := s.rows[c.Y]
	if !ok {
		row = make(map[uint]cell.State)
		s.rows[c.Y] = row
	}
	if _, exists := row[c.X]; !exists {
		s.size++
	}
	row[c.X] = state
}

// Len returns the number of stored cells.
func (s *Store) Len() int {
	return s.size
}

// Rows returns the number of rows holding at least one stored cell.
func (s *Store) Rows() int {
	return len(s.rows)
}

// Range iterates over all stored cells.
func (s *Store) Range(fn func(c cell.Coord, state cell.State) bool) {
	for y, row := range s.rows {
		for x, state := range row {
			if !fn(cell.Coord{X: x, Y: y}, state) {
				return
			}
		}
	}
}
