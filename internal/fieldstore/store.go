// Package fieldstore defines the interface for recording explicitly known
// cell states of the field.
//
// # Why a Sparse Store
//
// The field is conceptually infinite: every uint coordinate pair is a cell.
// Almost none of those cells are ever stored. A cell's state is derived from
// its coordinate by a classification rule, and only cells that the traversal
// reaches (or that a caller overrides) are written down. The store therefore
// grows with the reachable region, not with the number of cells inspected.
//
// # Absence Is Not Clear
//
// A coordinate missing from the store means "never set". It is NOT the same
// as a stored cell.Clear. Lookup reports the difference through its boolean
// result, and only field.Field merges a missing entry with the rule. Keeping
// the two apart is what makes stored obstacles and Avail cells immutable.
//
// # Lifecycle
//
//  1. **Created** empty once per run or test case
//  2. **Mutated** by Set calls from the reachability engine or test setup
//  3. **Queried** by the engine, the counters and the renderer
//  4. **Discarded** at the end of the run; nothing is persisted
//
// Entries are never removed.
package fieldstore

import "github.com/lialsoftlab/ant25/internal/cell"

// Store is the interface for the sparse record of explicitly set cells.
//
// Implementations are owned by a single traversal and need not be safe for
// concurrent use.
type Store interface {
	// Lookup returns the stored state at c. The boolean is false when c was
	// never set, in which case the returned state is meaningless.
	Lookup(c cell.Coord) (cell.State, bool)

	// Set inserts or overwrites the state at c.
	//
	// No transition rules are enforced here. Keeping Avail and Obstacle
	// sticky is the caller's job.
	Set(c cell.Coord, state cell.State)

	// Len returns the number of stored entries.
	Len() int

	// Range calls fn for every stored entry in unspecified order. Iteration
	// stops early when fn returns false. fn must not call Set.
	Range(fn func(c cell.Coord, state cell.State) bool)
}
