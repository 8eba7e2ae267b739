package radix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoopingListAt(t *testing.T) {
	l := NewLoopingList([]int{10, 12, 30})
	require.Equal(t, 3, l.Len())
	require.Equal(t, 10, l.At(0))
	require.Equal(t, 12, l.At(1))
	require.Equal(t, 30, l.At(2))
	// wraps forward
	require.Equal(t, 10, l.At(3))
	require.Equal(t, 12, l.At(4))
	// wraps backward
	require.Equal(t, 30, l.At(-1))
	require.Equal(t, 12, l.At(-2))
	require.Equal(t, 10, l.At(-3))
	require.Equal(t, 30, l.At(-4))
}

func TestLoopingListSingleton(t *testing.T) {
	l := NewLoopingList([]int{60})
	for _, i := range []int{-5, -1, 0, 1, 5} {
		require.Equal(t, 60, l.At(i))
	}
}
