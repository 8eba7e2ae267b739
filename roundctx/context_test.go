package roundctx

import (
	"testing"

	"github.com/stretchr/testify/require"

	radix "github.com/kanon-go/radix"
)

func TestContextChainsWithoutPerStepErrors(t *testing.T) {
	ctx := New(radix.Sexagesimal, 2)
	a := ctx.NewString("01, 21; 47, 25")
	b := ctx.NewString("45; 32, 14, 22")
	sum := ctx.Add(a, b)
	require.NoError(t, ctx.Err())
	require.Equal(t, "02,07 ; 19,39", sum.String())
}

func TestContextLatchesFirstError(t *testing.T) {
	ctx := New(radix.Sexagesimal, 2)
	ok := ctx.NewInt64(5)
	bad := ctx.NewString(";;")
	require.Nil(t, bad)

	// Once latched, further operations are no-ops until Err is called.
	result := ctx.Add(ok, ok)
	require.Nil(t, result)
	err := ctx.Err()
	require.Error(t, err)
	require.NoError(t, ctx.Err())
}

func TestContextErrClearsState(t *testing.T) {
	ctx := New(radix.Sexagesimal, 2)
	_ = ctx.NewString(";;")
	require.Error(t, ctx.Err())
	require.NoError(t, ctx.Err())

	v := ctx.NewInt64(3)
	require.NotNil(t, v)
}

func TestContextDivisionByZero(t *testing.T) {
	ctx := New(radix.Sexagesimal, 2)
	a := ctx.NewInt64(1)
	zero := ctx.Zero()
	result := ctx.Division(a, zero)
	require.Nil(t, result)
	require.ErrorIs(t, ctx.Err(), radix.ErrDivisionByZero)
}

func TestContextNegAbs(t *testing.T) {
	ctx := New(radix.Sexagesimal, 0)
	a := ctx.NewInt64(5)
	require.Equal(t, -1, ctx.Neg(a).Sign())
	require.Equal(t, 1, ctx.Abs(ctx.Neg(a)).Sign())
}
