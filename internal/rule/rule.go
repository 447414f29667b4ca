// Package rule decides whether a field cell that was never stored is passable.
//
// A Classifier only ever produces cell.Clear or cell.Obstacle. Avail is
// assigned by the reachability engine and never comes from a rule.
package rule

import (
	"fmt"

	"github.com/lialsoftlab/ant25/internal/cell"
	"github.com/lialsoftlab/ant25/internal/digitsum"
)

// DefaultThreshold is the digit-sum limit above which a cell is an obstacle.
const DefaultThreshold uint16 = 25

// Classifier computes the state of a cell from its coordinate alone.
type Classifier interface {
	Classify(c cell.Coord) (cell.State, error)
}

// Func adapts a plain function to the Classifier interface.
type Func func(c cell.Coord) (cell.State, error)

// Classify calls f(c).
func (f Func) Classify(c cell.Coord) (cell.State, error) {
	return f(c)
}

// DigitSum marks a cell as an obstacle when the digit sums of its two
// coordinates add up to more than Threshold.
type DigitSum struct {
	Threshold uint16
}

// NewDigitSum returns a DigitSum rule with the given threshold.
func NewDigitSum(threshold uint16) DigitSum {
	return DigitSum{Threshold: threshold}
}

// Classify implements Classifier.
func (r DigitSum) Classify(c cell.Coord) (cell.State, error) {
	sx, err := digitsum.Sum(c.X)
	if err != nil {
		return cell.Clear, fmt.Errorf("classify %s: %w", c, err)
	}
	sy, err := digitsum.Sum(c.Y)
	if err != nil {
		return cell.Clear, fmt.Errorf("classify %s: %w", c, err)
	}
	// Widen before adding so two large sums cannot wrap past the threshold.
	if uint32(sx)+uint32(sy) > uint32(r.Threshold) {
		return cell.Obstacle, nil
	}
	return cell.Clear, nil
}
