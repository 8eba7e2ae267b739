package radix

import (
	"math/big"

	"github.com/pkg/errors"
)

// ToBase re-expresses x in target with significant fractional positions,
// per spec.md §4.4.12. The digit portion of x is converted losslessly via
// math/big so that cross-base conversion does not accumulate float error
// across positions; only x's own remainder (already a float64 residue) is
// folded in at float precision.
func (x *BasedReal) ToBase(target *RadixBase, significant int) (*BasedReal, error) {
	if significant < 0 {
		return nil, errors.Wrap(ErrBadFormat, "significant must be >= 0")
	}

	return fromExactRat(target, x.sign, magnitudeRat(x), significant)
}

// fromExactRat extracts target's digits from a non-negative exact rational
// magnitude, mirroring FromFloat's successive-division algorithm but with
// math/big.Rat arithmetic in place of float64.
func fromExactRat(base *RadixBase, sign int, value *big.Rat, significant int) (*BasedReal, error) {
	pos := 0
	for value.Cmp(base.ExactWeight(-pos)) >= 0 {
		pos++
	}

	v := new(big.Rat).Set(value)
	left := make([]int, pos)
	for i := 0; i < pos; i++ {
		p := -(pos - 1 - i)
		w := base.ExactWeight(p)
		digit := ratFloorDiv(v, w)
		v.Sub(v, new(big.Rat).Mul(big.NewRat(int64(digit), 1), w))
		left[i] = digit
	}

	right := make([]int, significant)
	for i := 0; i < significant; i++ {
		w := base.ExactWeight(i + 1)
		digit := ratFloorDiv(v, w)
		v.Sub(v, new(big.Rat).Mul(big.NewRat(int64(digit), 1), w))
		right[i] = digit
	}

	remF, _ := new(big.Rat).Quo(v, base.ExactWeight(significant)).Float64()
	if remF < 0 {
		remF = 0
	}
	if remF >= 1 {
		remF = 0.999999999999999
	}
	return FromDigits(base, left, right, WithSign(sign), WithRemainder(remF))
}

// ratFloorDiv returns floor(v/w) as an int, for non-negative v and w.
func ratFloorDiv(v, w *big.Rat) int {
	q := new(big.Rat).Quo(v, w)
	return int(new(big.Int).Div(q.Num(), q.Denom()).Int64())
}

// Resize returns x re-expressed with exactly significant fractional
// positions. Extra positions are filled by converting the remainder into
// digits; positions beyond significant are folded into the remainder rather
// than dropped, per spec.md §4.4.5.
func (x *BasedReal) Resize(significant int) (*BasedReal, error) {
	if significant < 0 {
		return nil, errors.Wrap(ErrBadFormat, "significant must be >= 0")
	}
	n := len(x.fractionalDigits)
	if significant >= n {
		right := make([]int, significant)
		copy(right, x.fractionalDigits)
		r := x.remainder
		for p := n + 1; p <= significant; p++ {
			r *= float64(x.base.RadixAt(p))
			d := int(r)
			right[p-1] = d
			r -= float64(d)
		}
		return FromDigits(x.base, x.integerDigits, right, WithSign(x.sign), WithRemainder(r))
	}

	right := append([]int(nil), x.fractionalDigits[:significant]...)
	r := x.remainder
	for p := n; p > significant; p-- {
		d := x.fractionalDigits[p-1]
		r = (float64(d) + r) / float64(x.base.RadixAt(p))
	}
	if r < 0 {
		r = 0
	}
	if r >= 1 {
		r = 0.999999999999999
	}
	return FromDigits(x.base, x.integerDigits, right, WithSign(x.sign), WithRemainder(r))
}

// Truncate returns x with its fractional part cut to n positions, discarding
// anything beyond without folding it into the remainder (unlike Resize).
// Per spec.md §4.4.6.
func (x *BasedReal) Truncate(n int) *BasedReal {
	if n < 0 {
		n = 0
	}
	if n >= len(x.fractionalDigits) {
		return x
	}
	right := append([]int(nil), x.fractionalDigits[:n]...)
	y, _ := FromDigits(x.base, x.integerDigits, right, WithSign(x.sign))
	return y
}

// Shift returns x with its radix point moved i positions (positive shifts
// right, multiplying the magnitude by PositionWeight(-i)), per spec.md
// §4.4.6. Like ToBase's remainder handling, this goes through the real-valued
// projection rather than re-deriving an exact digit shift, since a mixed
// base's positions do not all share a uniform radix to shift across.
func (x *BasedReal) Shift(i int) (*BasedReal, error) {
	factor := x.base.PositionWeight(-i)
	return FromFloat(x.base, x.Float64()*factor, len(x.fractionalDigits))
}

// Round returns x rounded to n fractional positions (or its current
// Significant() count if n is omitted), using round-half-up on the
// remainder, per spec.md §4.4.6.
func (x *BasedReal) Round(n ...int) (*BasedReal, error) {
	sig := len(x.fractionalDigits)
	if len(n) > 0 {
		sig = n[0]
	}
	y, err := x.Resize(sig)
	if err != nil {
		return nil, err
	}
	if y.remainder < 0.5 {
		y.remainder = 0
		return y, nil
	}
	return y.bumpLastPlace()
}

// bumpLastPlace adds one unit at the least-significant materialized
// position, carrying through more significant positions (each bounded by
// RadixAt) and growing the integer part if the carry reaches the top.
func (y *BasedReal) bumpLastPlace() (*BasedReal, error) {
	right := append([]int(nil), y.fractionalDigits...)
	left := append([]int(nil), y.integerDigits...)
	carry := 1
	for i := len(right) - 1; i >= 0 && carry > 0; i-- {
		p := i + 1
		right[i] += carry
		if right[i] >= y.base.RadixAt(p) {
			right[i] = 0
			carry = 1
		} else {
			carry = 0
		}
	}
	l := len(left)
	for i := l - 1; i >= 0 && carry > 0; i-- {
		p := -(l - 1 - i)
		left[i] += carry
		if left[i] >= y.base.RadixAt(p) {
			left[i] = 0
			carry = 1
		} else {
			carry = 0
		}
	}
	if carry > 0 {
		left = append([]int{carry}, left...)
	}
	return FromDigits(y.base, left, right, WithSign(y.sign), WithRemainder(0))
}

func (x *BasedReal) isIntegerValued() bool {
	if x.remainder != 0 {
		return false
	}
	for _, d := range x.fractionalDigits {
		if d != 0 {
			return false
		}
	}
	return true
}

// Floor returns the greatest integer-valued BasedReal <= x. This corrects
// the original source's __floor__, which trims the fractional part
// unconditionally and so rounds negative non-integers toward zero instead
// of down; see spec.md's resolution of that Open Question.
func (x *BasedReal) Floor() (*BasedReal, error) {
	trunc, err := FromDigits(x.base, x.integerDigits, nil, WithSign(x.sign))
	if err != nil {
		return nil, err
	}
	if x.sign > 0 || x.isIntegerValued() {
		return trunc, nil
	}
	return trunc.bumpLastPlace()
}

// Ceil returns the least integer-valued BasedReal >= x.
func (x *BasedReal) Ceil() (*BasedReal, error) {
	trunc, err := FromDigits(x.base, x.integerDigits, nil, WithSign(x.sign))
	if err != nil {
		return nil, err
	}
	if x.sign < 0 || x.isIntegerValued() {
		return trunc, nil
	}
	return trunc.bumpLastPlace()
}

// Slice returns x's digits from position a (inclusive) to position b
// (exclusive), in order of decreasing significance, per spec.md §4.4.4. A
// nil bound extends to x's first (a) or one-past-last (b) materialized
// digit.
func (x *BasedReal) Slice(a, b *int) ([]int, error) {
	l := len(x.integerDigits)
	n := len(x.fractionalDigits)
	lo := -(l - 1)
	hi := n + 1
	if a != nil {
		lo = *a
	}
	if b != nil {
		hi = *b
	}
	out := make([]int, 0, maxInt(hi-lo, 0))
	for p := lo; p < hi; p++ {
		d, err := x.At(p)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
