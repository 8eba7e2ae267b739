package radix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToBaseSexagesimalToDecimal(t *testing.T) {
	// sexagesimal 0;20,00,00 -> decimal at 7 significant digits -> 0.3333333
	v, err := FromString(Sexagesimal, "0; 20, 00, 00")
	require.NoError(t, err)
	d, err := v.ToBase(Decimal, 7)
	require.NoError(t, err)
	require.Equal(t, "0.3333333", d.String())
}

func TestToBaseRoundTripWithinWeight(t *testing.T) {
	a, err := FromString(Sexagesimal, "12; 34, 56")
	require.NoError(t, err)
	h, err := a.ToBase(Historical, 5)
	require.NoError(t, err)
	back, err := h.ToBase(Sexagesimal, 20)
	require.NoError(t, err)
	require.InDelta(t, a.Float64(), back.Float64(), Sexagesimal.PositionWeight(20)*2)
}

func TestResizeGrowsWithZeros(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{1}, []int{2})
	require.NoError(t, err)
	w, err := v.Resize(3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 0}, w.FractionalDigits())
}

func TestResizeShrinksFoldingRemainder(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{1}, []int{2, 30})
	require.NoError(t, err)
	w, err := v.Resize(1)
	require.NoError(t, err)
	require.Equal(t, []int{2}, w.FractionalDigits())
	require.InDelta(t, 0.5, w.Remainder(), 1e-9)
}

func TestResizeRejectsNegative(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{1}, nil)
	require.NoError(t, err)
	_, err = v.Resize(-1)
	require.ErrorIs(t, err, ErrBadFormat)
}

func TestTruncateDropsWithoutFoldingRemainder(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{1}, []int{2, 59})
	require.NoError(t, err)
	w := v.Truncate(1)
	require.Equal(t, []int{2}, w.FractionalDigits())
	require.Equal(t, 0.0, w.Remainder())
}

func TestRoundHalfUpAcrossPositions(t *testing.T) {
	// round(02,02;07,23,55,11,51,21,36, 4) == 02,02;07,23,55,12
	v, err := FromString(Sexagesimal, "02, 02; 07, 23, 55, 11, 51, 21, 36")
	require.NoError(t, err)
	r, err := v.Round(4)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, r.IntegerDigits())
	require.Equal(t, []int{7, 23, 55, 12}, r.FractionalDigits())
}

func TestRoundCarriesIntoIntegerPart(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{1}, []int{59}, WithRemainder(0.9))
	require.NoError(t, err)
	r, err := v.Round(1)
	require.NoError(t, err)
	require.Equal(t, []int{2}, r.IntegerDigits())
	require.Equal(t, []int{0}, r.FractionalDigits())
}

func TestFloorCeilIntegerValue(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{5}, nil)
	require.NoError(t, err)
	f, err := v.Floor()
	require.NoError(t, err)
	c, err := v.Ceil()
	require.NoError(t, err)
	require.True(t, v.Equal(f))
	require.True(t, v.Equal(c))
}

func TestFloorCeilNegativeNonInteger(t *testing.T) {
	// -5.5: Floor must round away from zero (toward -6), not toward zero
	// (-5), correcting the original source's __floor__ bug.
	v, err := FromDigits(Sexagesimal, []int{5}, []int{30}, WithSign(-1))
	require.NoError(t, err)
	f, err := v.Floor()
	require.NoError(t, err)
	require.Equal(t, -1, f.Sign())
	require.Equal(t, []int{6}, f.IntegerDigits())

	c, err := v.Ceil()
	require.NoError(t, err)
	require.Equal(t, -1, c.Sign())
	require.Equal(t, []int{5}, c.IntegerDigits())
}

func TestSliceDefaultBounds(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{1, 2}, []int{3, 4})
	require.NoError(t, err)
	digits, err := v.Slice(nil, nil)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, digits)
}

func TestSliceExplicitBounds(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{1, 2}, []int{3, 4})
	require.NoError(t, err)
	// positions 0 and 1 straddle the radix point: the last integer digit
	// (2) and the first fractional digit (3).
	a, b := 0, 2
	digits, err := v.Slice(&a, &b)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, digits)
}
