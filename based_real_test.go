package radix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromDigitsTrimsLeadingZeros(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{0, 0, 7}, []int{1})
	require.NoError(t, err)
	require.Equal(t, []int{7}, v.IntegerDigits())
	require.Equal(t, []int{1}, v.FractionalDigits())
}

func TestFromDigitsKeepsOneIntegerDigitForZero(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{0, 0}, nil)
	require.NoError(t, err)
	require.Equal(t, []int{0}, v.IntegerDigits())
	require.True(t, v.IsZero())
}

func TestFromDigitsRejectsOutOfRangeDigit(t *testing.T) {
	_, err := FromDigits(Sexagesimal, []int{60}, nil)
	require.ErrorIs(t, err, ErrInvalidRadix)

	_, err = FromDigits(Sexagesimal, []int{0}, []int{-1})
	require.ErrorIs(t, err, ErrInvalidRadix)
}

func TestFromDigitsRejectsBadSign(t *testing.T) {
	_, err := FromDigits(Sexagesimal, []int{1}, nil, WithSign(0))
	require.ErrorIs(t, err, ErrBadFormat)
}

func TestHistoricalConstructInvalidRadix(t *testing.T) {
	// historical.construct((-6, 3), ()) fails InvalidRadix: a negative
	// digit is never valid at any position.
	_, err := FromDigits(Historical, []int{-6, 3}, []int{})
	require.ErrorIs(t, err, ErrInvalidRadix)
}

func TestFromFloatAndFloat64RoundTrip(t *testing.T) {
	// 1.3333333333333333 is the float64 just below 4/3, so truncating
	// extraction yields 1;19,59 with a remainder close to 1.
	v, err := FromFloat(Sexagesimal, 1.3333333333333333, 2)
	require.NoError(t, err)
	require.Equal(t, 1, v.IntegerDigits()[0])
	require.Equal(t, []int{19, 59}, v.FractionalDigits())
	require.InDelta(t, 1.3333333333333333, v.Float64(), 1e-12)
}

func TestFromFloatNegative(t *testing.T) {
	v, err := FromFloat(Sexagesimal, -72.5, 1)
	require.NoError(t, err)
	require.Equal(t, -1, v.Sign())
	require.InDelta(t, -72.5, v.Float64(), 1e-9)
}

func TestZeroOneFromInt(t *testing.T) {
	z, err := Zero(Sexagesimal, 3)
	require.NoError(t, err)
	require.True(t, z.IsZero())

	o, err := One(Sexagesimal, 3)
	require.NoError(t, err)
	require.InDelta(t, 1.0, o.Float64(), 1e-12)

	n, err := FromInt(Sexagesimal, 125, 0)
	require.NoError(t, err)
	require.InDelta(t, 125.0, n.Float64(), 1e-9)
}

func TestAtAndIndexOutOfRange(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{1, 2}, []int{3, 4})
	require.NoError(t, err)

	d, err := v.At(-1)
	require.NoError(t, err)
	require.Equal(t, 1, d)

	d, err = v.At(0)
	require.NoError(t, err)
	require.Equal(t, 2, d)

	d, err = v.At(1)
	require.NoError(t, err)
	require.Equal(t, 3, d)

	_, err = v.At(-2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = v.At(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDigitsConcatenatesIntegerAndFractional(t *testing.T) {
	v, err := FromDigits(Sexagesimal, []int{1, 2}, []int{3, 4})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, v.Digits())
}

func TestAbsNeg(t *testing.T) {
	v, err := FromFloat(Sexagesimal, -5, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v.Abs().Sign())
	require.Equal(t, 1, v.Neg().Sign())
	require.Equal(t, -1, v.Neg().Neg().Sign())
}

func TestFromFractionTrimsTrailingZeros(t *testing.T) {
	v, err := FromFraction(Sexagesimal, 1, 3)
	require.NoError(t, err)
	require.Greater(t, v.Significant(), 0)
	require.InDelta(t, 1.0/3.0, v.Float64(), 1e-9)
}

func TestConstructDispatch(t *testing.T) {
	v, err := Construct(Sexagesimal, 1, 21)
	require.NoError(t, err)
	require.Equal(t, []int{1, 21}, v.IntegerDigits())

	v2, err := Construct(Sexagesimal, "01, 21; 47, 25")
	require.NoError(t, err)
	require.InDelta(t, v2.Float64(), 81.7902778, 1e-6)

	_, err = Construct(Sexagesimal)
	require.ErrorIs(t, err, ErrBadFormat)

	_, err = Construct(Sexagesimal, 12.5)
	require.ErrorIs(t, err, ErrBadFormat)
}
