package radix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCmpOrdersByRealValue(t *testing.T) {
	small, err := FromInt(Sexagesimal, 1, 0)
	require.NoError(t, err)
	big, err := FromInt(Sexagesimal, 2, 0)
	require.NoError(t, err)
	require.Equal(t, -1, small.Cmp(big))
	require.Equal(t, 1, big.Cmp(small))
	require.Equal(t, 0, small.Cmp(small))
	require.True(t, small.Less(big))
	require.False(t, big.Less(small))
}

func TestCmpAcrossSignificance(t *testing.T) {
	a, err := FromFloat(Sexagesimal, 1.5, 1)
	require.NoError(t, err)
	b, err := FromFloat(Sexagesimal, 1.5, 4)
	require.NoError(t, err)
	require.Equal(t, 0, a.Cmp(b))
}

func TestEqualRequiresSameShapeAndBase(t *testing.T) {
	a, err := FromFloat(Sexagesimal, 1.5, 1)
	require.NoError(t, err)
	b, err := FromFloat(Sexagesimal, 1.5, 4)
	require.NoError(t, err)
	// Same real value, different significance: Cmp-equal but not Equal.
	require.Equal(t, 0, a.Cmp(b))
	require.False(t, a.Equal(b))

	c, err := FromFloat(Sexagesimal, 1.5, 1)
	require.NoError(t, err)
	require.True(t, a.Equal(c))

	d, err := FromFloat(Historical, 1.5, 1)
	require.NoError(t, err)
	require.False(t, a.Equal(d))
}

func TestHistoricalWorkedExampleFloat64(t *testing.T) {
	v, err := FromDigits(Historical, []int{2, 7, 29}, []int{45})
	require.NoError(t, err)
	require.InDelta(t, 339.75, v.Float64(), 1e-9)
}
