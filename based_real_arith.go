package radix

import (
	"math/big"

	"github.com/pkg/errors"
)

// magnitudeRat returns the exact non-negative rational value of |x|,
// folding x's digits through math/big (see ToBase) and its remainder in at
// float64 precision. Add, Sub, Mul, Division and Pow all route through this
// so that mixed-radix arithmetic never accumulates float error across a
// chain of operations the way a naive Float64-mediated implementation
// would.
func magnitudeRat(x *BasedReal) *big.Rat {
	value := new(big.Rat)
	l := len(x.integerDigits)
	for i, d := range x.integerDigits {
		p := -(l - 1 - i)
		value.Add(value, new(big.Rat).Mul(big.NewRat(int64(d), 1), x.base.ExactWeight(p)))
	}
	n := len(x.fractionalDigits)
	for j, d := range x.fractionalDigits {
		value.Add(value, new(big.Rat).Mul(big.NewRat(int64(d), 1), x.base.ExactWeight(j+1)))
	}
	if x.remainder != 0 {
		if rf := new(big.Rat).SetFloat64(x.remainder); rf != nil {
			value.Add(value, new(big.Rat).Mul(rf, x.base.ExactWeight(n)))
		}
	}
	return value
}

func signedRat(x *BasedReal) *big.Rat {
	v := magnitudeRat(x)
	if x.sign < 0 {
		v.Neg(v)
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func fromSignedRat(base *RadixBase, v *big.Rat, significant int) (*BasedReal, error) {
	sign := 1
	if v.Sign() < 0 {
		sign = -1
		v = new(big.Rat).Neg(v)
	}
	return fromExactRat(base, sign, v, significant)
}

// checkSameBase returns ErrTypeMismatch if x and y are not bound to the same
// RadixBase; arithmetic between differing bases is not defined (spec.md
// deliberately leaves implicit cross-base promotion out of scope).
func checkSameBase(x, y *BasedReal) error {
	if x.base != y.base {
		return errors.Wrap(ErrTypeMismatch, "arithmetic between values of differing bases")
	}
	return nil
}

// Add returns x + y, per spec.md §4.4.7. Carries/borrows are implicit in the
// exact rational sum; the result is re-expressed at max(x.Significant(),
// y.Significant()) fractional positions.
func (x *BasedReal) Add(y *BasedReal) (*BasedReal, error) {
	if err := checkSameBase(x, y); err != nil {
		return nil, err
	}
	sum := new(big.Rat).Add(signedRat(x), signedRat(y))
	return fromSignedRat(x.base, sum, maxInt(x.Significant(), y.Significant()))
}

// Sub returns x - y.
func (x *BasedReal) Sub(y *BasedReal) (*BasedReal, error) {
	if err := checkSameBase(x, y); err != nil {
		return nil, err
	}
	diff := new(big.Rat).Sub(signedRat(x), signedRat(y))
	return fromSignedRat(x.base, diff, maxInt(x.Significant(), y.Significant()))
}

// Mul returns x * y, per spec.md §4.4.8. The original source resizes both
// operands to R = max(significant_a, significant_b), takes the Cauchy
// product of their digit strings, and shifts the radix point back by 2R —
// which leaves the product at 2R significant fractional positions, not R.
// Here the same result falls out of exact math/big multiplication instead of
// a digit-by-digit convolution with cross-remainder correction terms.
func (x *BasedReal) Mul(y *BasedReal) (*BasedReal, error) {
	if err := checkSameBase(x, y); err != nil {
		return nil, err
	}
	prod := new(big.Rat).Mul(signedRat(x), signedRat(y))
	r := maxInt(x.Significant(), y.Significant())
	return fromSignedRat(x.base, prod, 2*r)
}

// Division returns x / y at significant fractional positions, per spec.md
// §4.4.9; digits beyond that are truncated and kept as the remainder. It
// returns ErrDivisionByZero if y is zero.
func (x *BasedReal) Division(y *BasedReal, significant int) (*BasedReal, error) {
	if err := checkSameBase(x, y); err != nil {
		return nil, err
	}
	if y.IsZero() {
		return nil, errors.Wrap(ErrDivisionByZero, "Division")
	}
	q := new(big.Rat).Quo(signedRat(x), signedRat(y))
	return fromSignedRat(x.base, q, significant)
}

// QuoRem returns the integer quotient and remainder of x divided by y, such
// that x == quo*y + rem with 0 <= rem's magnitude < |y| (truncating
// division), resolving Open Question 1: the original source declares
// euclidian_div but never implements it, leaving zero-divisor behaviour
// unspecified; here it is ErrDivisionByZero.
func (x *BasedReal) QuoRem(y *BasedReal) (quo, rem *BasedReal, err error) {
	if err = checkSameBase(x, y); err != nil {
		return nil, nil, err
	}
	if y.IsZero() {
		return nil, nil, errors.Wrap(ErrDivisionByZero, "QuoRem")
	}
	xr, yr := signedRat(x), signedRat(y)
	q := new(big.Rat).Quo(xr, yr)
	qi := new(big.Int).Quo(q.Num(), q.Denom())
	quoRat := new(big.Rat).SetInt(qi)
	remRat := new(big.Rat).Sub(xr, new(big.Rat).Mul(quoRat, yr))

	quo, err = fromSignedRat(x.base, quoRat, 0)
	if err != nil {
		return nil, nil, err
	}
	rem, err = fromSignedRat(x.base, remRat, maxInt(x.Significant(), y.Significant()))
	if err != nil {
		return nil, nil, err
	}
	return quo, rem, nil
}

// FloorDiv returns floor(x/y) as an integer-valued BasedReal.
func (x *BasedReal) FloorDiv(y *BasedReal) (*BasedReal, error) {
	quo, rem, err := x.QuoRem(y)
	if err != nil {
		return nil, err
	}
	if !rem.IsZero() && (rem.sign != y.sign) {
		return quo.Sub(oneLike(quo))
	}
	return quo, nil
}

// Mod returns x - FloorDiv(x, y)*y, the floored remainder: zero or of y's
// sign (unlike QuoRem's truncating remainder, which takes x's sign).
func (x *BasedReal) Mod(y *BasedReal) (*BasedReal, error) {
	fd, err := x.FloorDiv(y)
	if err != nil {
		return nil, err
	}
	prod, err := fd.Mul(y)
	if err != nil {
		return nil, err
	}
	return x.Sub(prod)
}

func oneLike(x *BasedReal) *BasedReal {
	o, _ := One(x.base, x.Significant())
	return o
}

// Pow returns x raised to the (possibly negative or zero) integer exponent,
// per spec.md §4.4.10. This resolves Open Question 3: the original source's
// __pow__ special-cases only positive exponents and implicitly returns None
// otherwise; Go's signed int exponent lets zero and negative exponents fall
// out naturally (identity and reciprocal, respectively) instead of needing a
// bug-compatible "unsupported" case.
func (x *BasedReal) Pow(exponent int) (*BasedReal, error) {
	if exponent == 0 {
		return One(x.base, 0)
	}
	if x.IsZero() {
		if exponent < 0 {
			return nil, errors.Wrap(ErrDivisionByZero, "Pow: zero to a negative exponent")
		}
		return Zero(x.base, x.Significant())
	}

	n := exponent
	neg := false
	if n < 0 {
		n = -n
		neg = true
	}

	base := signedRat(x)
	num := new(big.Int).Exp(base.Num(), big.NewInt(int64(n)), nil)
	den := new(big.Int).Exp(base.Denom(), big.NewInt(int64(n)), nil)
	result := new(big.Rat).SetFrac(num, den)
	if neg {
		result.Inv(result)
	}
	return fromSignedRat(x.base, result, x.Significant())
}
