package radix

import (
	"math"

	"github.com/pkg/errors"
)

// BasedReal is an immutable arbitrary-precision positional real number bound
// to a RadixBase. Every operation returns a new value; there is no in-place
// mutation.
type BasedReal struct {
	base *RadixBase

	// sign is always -1 or +1; zero is represented with sign +1.
	sign int

	// integerDigits is most-significant first; fractionalDigits is
	// most-significant (nearest the radix point) first.
	integerDigits    []int
	fractionalDigits []int

	// remainder is the truncated tail, in [0, 1), expressed as a
	// fraction of one unit at the last fractional position.
	remainder float64
}

// Base returns the RadixBase this value is bound to.
func (x *BasedReal) Base() *RadixBase { return x.base }

// Sign returns -1 if x is negative, +1 otherwise (zero is +1 by convention).
func (x *BasedReal) Sign() int { return x.sign }

// Remainder returns the truncated tail recorded by the last operation that
// narrowed x's precision.
func (x *BasedReal) Remainder() float64 { return x.remainder }

// Significant returns the number of materialized fractional positions.
func (x *BasedReal) Significant() int { return len(x.fractionalDigits) }

// IntegerDigits returns a copy of x's integer digit sequence, most
// significant first.
func (x *BasedReal) IntegerDigits() []int {
	d := make([]int, len(x.integerDigits))
	copy(d, x.integerDigits)
	return d
}

// FractionalDigits returns a copy of x's fractional digit sequence, most
// significant (nearest the radix point) first.
func (x *BasedReal) FractionalDigits() []int {
	d := make([]int, len(x.fractionalDigits))
	copy(d, x.fractionalDigits)
	return d
}

// FromDigits constructs a BasedReal from explicit integer and fractional
// digit sequences (spec.md §4.4.1's "(digit tuple, digit tuple)" shape).
// Leading zeros in integerDigits are trimmed, except the value always keeps
// at least one integer digit ([0] for magnitudes below 1).
func FromDigits(base *RadixBase, integerDigits, fractionalDigits []int, opts ...ValueOption) (*BasedReal, error) {
	o := applyOptions(opts)
	x := &BasedReal{
		base:             base,
		sign:             o.sign,
		integerDigits:    append([]int(nil), integerDigits...),
		fractionalDigits: append([]int(nil), fractionalDigits...),
		remainder:        o.remainder,
	}
	if err := x.validate(); err != nil {
		return nil, err
	}
	x.trim()
	return x, nil
}

// ValueOption customizes the sign and remainder of a freshly constructed
// BasedReal; the named inputs described in spec.md §4.4.1.
type ValueOption func(*valueOpts)

type valueOpts struct {
	sign      int
	remainder float64
}

// WithSign sets the sign of a constructed value. sign must be -1 or +1.
func WithSign(sign int) ValueOption {
	return func(o *valueOpts) { o.sign = sign }
}

// WithRemainder sets the remainder (in [0, 1)) of a constructed value.
func WithRemainder(r float64) ValueOption {
	return func(o *valueOpts) { o.remainder = r }
}

func applyOptions(opts []ValueOption) valueOpts {
	o := valueOpts{sign: 1, remainder: 0}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validate checks §3's value invariants: sign in {-1,+1}, every digit a
// non-negative integer bounded by its position's radix.
func (x *BasedReal) validate() error {
	if x.sign != 1 && x.sign != -1 {
		return errors.Wrapf(ErrBadFormat, "sign must be -1 or +1, got %d", x.sign)
	}
	if x.remainder < 0 || x.remainder >= 1 {
		return errors.Wrapf(ErrBadFormat, "remainder %v out of range [0,1)", x.remainder)
	}
	l := len(x.integerDigits)
	for i, d := range x.integerDigits {
		p := -(l - 1 - i)
		radixVal := x.base.RadixAt(p)
		if d < 0 || d >= radixVal {
			return errors.Wrapf(ErrInvalidRadix, "integer digit %d at position %d out of range [0,%d)", d, p, radixVal)
		}
	}
	for j, d := range x.fractionalDigits {
		p := j + 1
		radixVal := x.base.RadixAt(p)
		if d < 0 || d >= radixVal {
			return errors.Wrapf(ErrInvalidRadix, "fractional digit %d at position %d out of range [0,%d)", d, p, radixVal)
		}
	}
	return nil
}

// trim removes leading zeros from the integer part, keeping at least one
// digit.
func (x *BasedReal) trim() {
	i := 0
	for i < len(x.integerDigits)-1 && x.integerDigits[i] == 0 {
		i++
	}
	x.integerDigits = x.integerDigits[i:]
	if len(x.integerDigits) == 0 {
		x.integerDigits = []int{0}
	}
}

// Zero returns the zero value of base with significant fractional positions.
func Zero(base *RadixBase, significant int) (*BasedReal, error) {
	return FromFloat(base, 0, significant)
}

// One returns the value 1 of base with significant fractional positions.
func One(base *RadixBase, significant int) (*BasedReal, error) {
	return FromFloat(base, 1, significant)
}

// FromInt constructs a BasedReal from an integer value with significant
// fractional positions (all zero).
func FromInt(base *RadixBase, value int64, significant int) (*BasedReal, error) {
	return FromFloat(base, float64(value), significant)
}

// FromFloat constructs a BasedReal from a float64, per spec.md §4.4.2:
// extract integer digits by successive division of positional weights, then
// extract `significant` fractional digits by successive multiplication,
// recording the final residue as remainder.
func FromFloat(base *RadixBase, v float64, significant int) (*BasedReal, error) {
	if significant < 0 {
		return nil, errors.Wrap(ErrBadFormat, "significant must be >= 0")
	}
	sign := 1
	if v < 0 {
		sign = -1
	}
	v = math.Abs(v)

	pos := 0
	for v >= base.PositionWeight(-pos) {
		pos++
	}

	left := make([]int, pos)
	for i := 0; i < pos; i++ {
		p := -(pos - 1 - i)
		intFactor := base.PositionWeight(p)
		digit := int(v / intFactor)
		v -= float64(digit) * intFactor
		left[i] = digit
	}

	right := make([]int, significant)
	factor := 1.0
	for i := 0; i < significant; i++ {
		factor = base.PositionWeight(i + 1)
		digit := int(v / factor)
		v -= float64(digit) * factor
		right[i] = digit
	}

	remainder := 0.0
	if significant > 0 {
		remainder = v / factor
	} else {
		remainder = v
	}
	if remainder < 0 {
		remainder = 0
	}
	if remainder >= 1 {
		remainder = 0.999999999999999
	}

	return FromDigits(base, left, right, WithSign(sign), WithRemainder(remainder))
}

// FromFraction constructs a BasedReal from an exact rational value,
// following the original source's from_fraction: build via FromFloat at a
// generous working precision and, when the caller did not request an
// explicit significant count, trim trailing zero fractional digits.
func FromFraction(base *RadixBase, num, den int64, significant ...int) (*BasedReal, error) {
	if den == 0 {
		return nil, errors.Wrap(ErrDivisionByZero, "FromFraction")
	}
	sig := 100
	explicit := false
	if len(significant) > 0 {
		sig = significant[0]
		explicit = true
	}
	v, err := FromFloat(base, float64(num)/float64(den), sig)
	if err != nil {
		return nil, err
	}
	if explicit {
		return v, nil
	}
	right := v.fractionalDigits
	i := len(right)
	for i > 0 && right[i-1] == 0 {
		i--
	}
	return FromDigits(base, v.integerDigits, right[:i], WithSign(v.sign))
}

// ToFraction returns the (approximate) rational value of x: x.Float64()
// rounded to a multiple of 2^-52, as a num/den pair reduced to lowest terms
// (den is a power of two). This projects through float64 because
// BasedReal's remainder is itself a float64 residue; exact rational
// reconstruction of the remainder is not meaningful.
func (x *BasedReal) ToFraction() (num, den int64) {
	f := x.Float64()
	const denom = 1 << 52
	num = int64(math.Round(f * denom))
	den = denom
	g := gcd(num, den)
	if g > 1 {
		num /= g
		den /= g
	}
	return num, den
}

// At returns the digit at position p (per the §3 position convention), or an
// error if p falls outside the digits x actually represents.
func (x *BasedReal) At(p int) (int, error) {
	l := len(x.integerDigits)
	if p <= 0 {
		if -l < p && p <= 0 {
			return x.integerDigits[l-1+p], nil
		}
		return 0, errors.Wrapf(ErrIndexOutOfRange, "position %d", p)
	}
	if p <= len(x.fractionalDigits) {
		return x.fractionalDigits[p-1], nil
	}
	return 0, errors.Wrapf(ErrIndexOutOfRange, "position %d", p)
}

// Digits returns the concatenation of x's integer and fractional digits
// (integer part first), i.e. the raw backing sequence that positional
// indices address.
func (x *BasedReal) Digits() []int {
	all := make([]int, 0, len(x.integerDigits)+len(x.fractionalDigits))
	all = append(all, x.integerDigits...)
	all = append(all, x.fractionalDigits...)
	return all
}

// Float64 returns the real-valued projection of x, per spec.md §4.4.11's
// definition of ordering and equality fallback.
func (x *BasedReal) Float64() float64 {
	value := 0.0
	l := len(x.integerDigits)
	for i := 0; i < l; i++ {
		p := -(l - 1 - i)
		value += x.base.PositionWeight(p) * float64(x.integerDigits[i])
	}
	n := len(x.fractionalDigits)
	for j := 0; j < n; j++ {
		value += x.base.PositionWeight(j+1) * float64(x.fractionalDigits[j])
	}
	value += x.base.PositionWeight(n) * x.remainder
	return value * float64(x.sign)
}

// IsZero reports whether x is (positively or negatively) zero.
func (x *BasedReal) IsZero() bool {
	if x.remainder != 0 {
		return false
	}
	for _, d := range x.integerDigits {
		if d != 0 {
			return false
		}
	}
	for _, d := range x.fractionalDigits {
		if d != 0 {
			return false
		}
	}
	return true
}

// Abs returns |x|.
func (x *BasedReal) Abs() *BasedReal {
	if x.sign >= 0 {
		return x
	}
	y := *x
	y.sign = 1
	return &y
}

// Neg returns -x.
func (x *BasedReal) Neg() *BasedReal {
	y := *x
	y.sign = -x.sign
	return &y
}

// Construct is the dynamic, shape-dispatching constructor described in
// spec.md §4.4.1. It recognizes:
//
//   - Construct(base)                               -> ErrBadFormat (empty)
//   - Construct(base, ints...)                       -> integer digit tuple, empty fraction
//   - Construct(base, []int, []int)                  -> explicit (integer, fractional) digit tuples
//   - Construct(base, *BasedReal, significant)        -> cross-base conversion
//   - Construct(base, float64, significant)           -> FromFloat (two ints are read as digits, as above)
//   - Construct(base, string)                         -> FromString
//
// ValueOptions (WithSign, WithRemainder) may be interleaved anywhere in args.
//
// Prefer the typed constructors (FromDigits, FromFloat, FromString, FromInt,
// ToBase) in new code; Construct exists to mirror the original's single
// polymorphic entry point for callers that only have a base handle and a
// bag of arguments.
func Construct(base *RadixBase, args ...interface{}) (*BasedReal, error) {
	var opts []ValueOption
	var rest []interface{}
	for _, a := range args {
		if opt, ok := a.(ValueOption); ok {
			opts = append(opts, opt)
			continue
		}
		rest = append(rest, a)
	}

	if len(rest) == 0 {
		return nil, errors.Wrap(ErrBadFormat, "Construct: no arguments")
	}

	apply := func(v *BasedReal, err error) (*BasedReal, error) {
		if err != nil || len(opts) == 0 {
			return v, err
		}
		merged := append([]ValueOption{WithSign(v.sign), WithRemainder(v.remainder)}, opts...)
		return FromDigits(base, v.integerDigits, v.fractionalDigits, merged...)
	}

	if allInts(rest) {
		digits := make([]int, len(rest))
		for i, a := range rest {
			digits[i] = toInt(a)
		}
		return FromDigits(base, digits, nil, opts...)
	}

	if len(rest) == 1 {
		switch a := rest[0].(type) {
		case string:
			return FromString(base, a, opts...)
		case float64:
			return nil, errors.Wrap(ErrBadFormat, "Construct: a scalar requires a significant count")
		default:
			return nil, errors.Wrap(ErrBadFormat, "Construct: unrecognized single argument")
		}
	}

	if len(rest) == 2 {
		switch a0 := rest[0].(type) {
		case *BasedReal:
			sig, ok := toIntOK(rest[1])
			if !ok {
				return nil, errors.Wrap(ErrBadFormat, "Construct: significant must be an int")
			}
			return apply(a0.ToBase(base, sig))
		case float64:
			sig, ok := toIntOK(rest[1])
			if !ok {
				return nil, errors.Wrap(ErrBadFormat, "Construct: significant must be an int")
			}
			return apply(FromFloat(base, a0, sig))
		case int:
			sig, ok := toIntOK(rest[1])
			if !ok {
				return nil, errors.Wrap(ErrBadFormat, "Construct: significant must be an int")
			}
			return apply(FromFloat(base, float64(a0), sig))
		case []int:
			right, ok := rest[1].([]int)
			if !ok {
				return nil, errors.Wrap(ErrBadFormat, "Construct: expected two digit tuples")
			}
			return FromDigits(base, a0, right, opts...)
		}
	}

	return nil, errors.Wrap(ErrBadFormat, "Construct: unrecognized argument shape")
}

func allInts(args []interface{}) bool {
	for _, a := range args {
		if _, ok := toIntOK(a); !ok {
			return false
		}
	}
	return true
}

func toInt(a interface{}) int {
	v, _ := toIntOK(a)
	return v
}

func toIntOK(a interface{}) (int, bool) {
	switch v := a.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}
