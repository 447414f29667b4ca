// Package digitsum computes decimal digit sums for field coordinates.
package digitsum

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow indicates a digit sum that does not fit the result type.
var ErrOverflow = errors.New("digitsum: sum exceeds result width")

// Sum returns the sum of the decimal digits of n. Sum(0) is 0.
//
// The largest uint64 has a digit sum of 171, so the error branch is never
// taken on supported platforms. It is kept so a wider uint cannot silently
// wrap the result.
func Sum(n uint) (uint16, error) {
	s, err := sum(n, math.MaxUint16)
	if err != nil {
		return 0, err
	}
	return uint16(s), nil
}

// sum accumulates the digits of n in a uint and fails once the total passes
// limit.
func sum(n, limit uint) (uint, error) {
	var acc uint
	for n > 0 {
		acc += n % 10
		if acc > limit {
			return 0, fmt.Errorf("%w: digits of %d pass %d", ErrOverflow, n, limit)
		}
		n /= 10
	}
	return acc, nil
}
