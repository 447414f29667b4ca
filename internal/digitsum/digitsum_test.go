package digitsum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	tests := []struct {
		n    uint
		want uint16
	}{
		{0, 0},
		{7, 7},
		{10, 1},
		{123, 6},
		{1000, 1},
		{2499, 24},
		{999_999_999, 81},
	}
	for _, tc := range tests {
		got, err := Sum(tc.n)
		require.NoError(t, err, "Sum(%d)", tc.n)
		assert.Equal(t, tc.want, got, "Sum(%d)", tc.n)
	}
}

func TestSum_MaxUint(t *testing.T) {
	got, err := Sum(math.MaxUint)
	require.NoError(t, err)
	if math.MaxUint == math.MaxUint64 {
		// 18446744073709551615
		assert.Equal(t, uint16(87), got)
	} else {
		// 4294967295
		assert.Equal(t, uint16(57), got)
	}
}

func TestSum_LongestNineRun(t *testing.T) {
	// Largest all-nines value that fits: 19 digits on 64-bit, 9 on 32-bit.
	var n uint
	digits := 0
	for n <= math.MaxUint/10 {
		n = n*10 + 9
		digits++
	}
	got, err := Sum(n)
	require.NoError(t, err)
	assert.Equal(t, uint16(9*digits), got)
}

func TestSum_OverflowGuard(t *testing.T) {
	_, err := sum(999, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)

	got, err := sum(999, 27)
	require.NoError(t, err)
	assert.Equal(t, uint(27), got)
}
