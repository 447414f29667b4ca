// Package field joins a sparse fieldstore.Store with a rule.Classifier into
// the lazily materialised field the reachability engine walks.
//
// Field is the only place where "not stored" is resolved through the
// classification rule. Everywhere else a missing entry stays missing.
package field

import (
	"fmt"

	"github.com/lialsoftlab/ant25/internal/cell"
	"github.com/lialsoftlab/ant25/internal/fieldstore"
	"github.com/lialsoftlab/ant25/internal/inmemoryfield"
	"github.com/lialsoftlab/ant25/internal/rule"
)

// Field is a procedurally classified grid with explicit overrides.
type Field struct {
	store fieldstore.Store
	rule  rule.Classifier
}

// New returns a Field backed by store and classified by r.
func New(store fieldstore.Store, r rule.Classifier) *Field {
	return &Field{store: store, rule: r}
}

// NewDefault returns a Field with an empty in-memory store and the digit-sum
// rule at the given threshold.
func NewDefault(threshold uint16) *Field {
	return New(inmemoryfield.New(), rule.NewDigitSum(threshold))
}

// Store exposes the underlying store, mainly for statistics and tests.
func (f *Field) Store() fieldstore.Store {
	return f.store
}

// CellState returns the stored state at c, or the rule's classification
// when c was never set. The classification is not written back.
func (f *Field) CellState(c cell.Coord) (cell.State, error) {
	if state, ok := f.store.Lookup(c); ok {
		return state, nil
	}
	state, err := f.rule.Classify(c)
	if err != nil {
		return cell.Clear, fmt.Errorf("field: %w", err)
	}
	return state, nil
}

// SetCellState unconditionally records state at c.
func (f *Field) SetCellState(c cell.Coord, state cell.State) {
	f.store.Set(c, state)
}

// CountAvail returns the number of stored cells in the Avail state.
func (f *Field) CountAvail() int {
	n := 0
	f.store.Range(func(_ cell.Coord, state cell.State) bool {
		if state == cell.Avail {
			n++
		}
		return true
	})
	return n
}
