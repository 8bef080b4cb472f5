package hashtables

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{16, 16},
		{17, 32},
		{1000, 1024},
		{1 << 20, 1 << 20},
		{1<<20 + 1, 1 << 21},
	}

	for _, tt := range tests {
		require.Equalf(t, tt.want, NextPowerOf2(tt.input), "NextPowerOf2(%d)", tt.input)
	}
}

func TestTargetCapacity(t *testing.T) {
	tests := []struct {
		name     string
		n, size  int
		expected int
	}{
		{"below minimum", 3, 0, MinCapacity},
		{"minimum", MinCapacity, 0, MinCapacity},
		{"rounded up", 100, 0, 128},
		{"never below size", 16, 40, 64},
		{"power of 2 kept", 256, 10, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, targetCapacity(tt.n, tt.size))
		})
	}

	require.Panics(t, func() { targetCapacity(maxCapacity+1, 0) })
}

func TestReserveCapacity(t *testing.T) {
	for n := 1; n < 5000; n++ {
		c := reserveCapacity(n)

		require.Equal(t, NextPowerOf2(c), c)
		// n-1 entries present, inserting the n-th must not trip the check.
		require.Falsef(t, overLoad(n-1, max(c, MinCapacity)), "Reserve(%d) -> %d is too small", n, c)
	}
}

func TestOverLoad(t *testing.T) {
	// 10 entries in 16 slots: the 11th would make it 11/16 > 2/3.
	require.True(t, overLoad(10, 16))
	require.False(t, overLoad(9, 16))
	require.False(t, overLoad(20, 32))
	require.True(t, overLoad(21, 32))
}
