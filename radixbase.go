package radix

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"
)

// RadixBase declares a mixed-radix numeral system: a periodic list of
// radices for integer positions (left of the radix point) and a periodic
// list of radices for fractional positions (right of the radix point), plus
// the separators used to render the integer part.
//
// Position 0 is the right-most integer position, immediately left of the
// radix point. Negative positions go left (more-significant integer
// positions); positive positions go right (fractional positions). For
// position p > 0 the radix is Right.At(p-1).
//
// The integer side is addressed back-to-front: Left is declared outermost
// digit first (matching how a mixed system like historical's 10,12,30 is
// written and separated), so the radix at position p <= 0 is
// Left.At(Left.Len()-1+p). With a single-element Left (every standard base
// except historical) this collapses to the constant Left.At(0), so the
// distinction is invisible outside mixed multi-radix integer systems.
// IntegerSeparators follows the same back-to-front addressing, since a
// separator is declared alongside the radix it follows.
type RadixBase struct {
	Left               LoopingList[int]
	Right              LoopingList[int]
	Name               string
	IntegerSeparators  LoopingList[string]

	weights sync.Map // map[int]float64, memoized PositionWeight
	factors sync.Map // map[[2]int]crossFactor, memoized CrossFactor
}

type crossFactor struct {
	// num/den is the exact rational cross factor. When den == 1 the
	// factor is the plain integer num.
	num, den int64
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*RadixBase{}
)

// defaultSeparators builds the conventional separator list: "," at every
// position, except "" for radix-10 positions (so decimal-like positions
// render without a separator).
func defaultSeparators(left []int) []string {
	seps := make([]string, len(left))
	for i, r := range left {
		if r == 10 {
			seps[i] = ""
		} else {
			seps[i] = ","
		}
	}
	return seps
}

// Register validates left and right (every radix must be >= 2), builds a new
// RadixBase and stores it in the process-wide registry keyed by name. If
// separators is nil, the conventional default (",' unless the radix is 10)
// is used.
//
// Register is meant to run during process initialization, before any
// arithmetic takes place; see the standard bases in bases.go for the
// expected usage pattern.
func Register(left, right []int, name string, separators []string) (*RadixBase, error) {
	if len(left) == 0 || len(right) == 0 {
		return nil, errors.Wrap(ErrBadFormat, "radix lists must not be empty")
	}
	for _, r := range left {
		if r < 2 {
			return nil, errors.Wrapf(ErrInvalidRadix, "left radix %d < 2", r)
		}
	}
	for _, r := range right {
		if r < 2 {
			return nil, errors.Wrapf(ErrInvalidRadix, "right radix %d < 2", r)
		}
	}
	if separators == nil {
		separators = defaultSeparators(left)
	}

	b := &RadixBase{
		Left:              NewLoopingList(left),
		Right:             NewLoopingList(right),
		Name:              name,
		IntegerSeparators: NewLoopingList(separators),
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = b
	return b, nil
}

// MustRegister is like Register but panics on error. It is only meant for use
// at init() time with constant arguments, e.g. registering the standard
// bases in bases.go.
func MustRegister(left, right []int, name string, separators []string) *RadixBase {
	b, err := Register(left, right, name, separators)
	if err != nil {
		panic(err)
	}
	return b
}

// Lookup returns the registered RadixBase with the given name, or nil if no
// such base was registered.
func Lookup(name string) *RadixBase {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name]
}

// RadixAt returns the radix at position p, per the position convention
// documented on RadixBase.
func (b *RadixBase) RadixAt(p int) int {
	if p > 0 {
		return b.Right.At(p - 1)
	}
	return b.Left.At(b.Left.Len() - 1 + p)
}

// SeparatorAt returns the integer separator associated with position p <= 0:
// the text written between the digit at position p and the next
// (more-significant) digit to its left. It follows the same back-to-front
// addressing as RadixAt.
func (b *RadixBase) SeparatorAt(p int) string {
	return b.IntegerSeparators.At(b.IntegerSeparators.Len() - 1 + p)
}

// PositionWeight returns the real-valued weight of one unit at position p
// relative to position 0, per spec.md §4.2's literal formula: for p > 0 it is
// the product of 1/Right.At(k-1) for k in 1..p; for p < 0 it is the product
// of Left.At(k) for k in 0..|p|-1, addressed forward into the declared
// pattern rather than back-to-front through RadixAt. This intentionally
// does not agree with RadixAt's back-to-front digit-bound convention for a
// mixed integer base like Historical: the original source itself computes
// weights and validates digit ranges via two independent conventions, and
// reproducing the forward-weight half is what recovers spec.md §8's worked
// example (historical.from_string("2r 7s 29; 45") == 339.75). It is 1 at
// p == 0. Results are memoized since the same handful of positions are
// queried repeatedly by resize/round/division.
func (b *RadixBase) PositionWeight(p int) float64 {
	if w, ok := b.weights.Load(p); ok {
		return w.(float64)
	}
	w := 1.0
	switch {
	case p > 0:
		for k := 1; k <= p; k++ {
			w /= float64(b.RadixAt(k))
		}
	case p < 0:
		for k := 0; k < -p; k++ {
			w *= float64(b.Left.At(k))
		}
	}
	b.weights.Store(p, w)
	return w
}

// ExactWeight is PositionWeight computed losslessly with math/big instead of
// float64, for cross-base conversion (ToBase) where accumulated float error
// across many positions would otherwise misplace a digit. See PositionWeight
// for why the p < 0 branch addresses Left forward rather than through
// RadixAt.
func (b *RadixBase) ExactWeight(p int) *big.Rat {
	w := big.NewRat(1, 1)
	switch {
	case p > 0:
		for k := 1; k <= p; k++ {
			w.Quo(w, big.NewRat(int64(b.RadixAt(k)), 1))
		}
	case p < 0:
		for k := 0; k < -p; k++ {
			w.Mul(w, big.NewRat(int64(b.Left.At(k)), 1))
		}
	}
	return w
}

// CrossFactor returns the exact rational factor N/(D_i*D_j) that aligns
// digit positions i and j of two multiplicands, where N is the product of
// Right radices 0..i+j-1 and D_i, D_j are the products of Right radices
// 0..i-1 and 0..j-1 respectively. The result is returned as a num/den pair;
// den == 1 when the factor is an exact integer. Mul does not call it: it
// multiplies exact math/big rationals instead.
func (b *RadixBase) CrossFactor(i, j int) (num, den int64) {
	key := [2]int{i, j}
	if v, ok := b.factors.Load(key); ok {
		f := v.(crossFactor)
		return f.num, f.den
	}
	n := int64(1)
	for k := 1; k <= i+j; k++ {
		n *= int64(b.RadixAt(k))
	}
	di := int64(1)
	for k := 1; k <= i; k++ {
		di *= int64(b.RadixAt(k))
	}
	dj := int64(1)
	for k := 1; k <= j; k++ {
		dj *= int64(b.RadixAt(k))
	}
	d := di * dj
	g := gcd(n, d)
	if g != 0 {
		n /= g
		d /= g
	}
	b.factors.Store(key, crossFactor{num: n, den: d})
	return n, d
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// DigitWidth returns the minimum number of decimal characters needed to
// render one position of the given radix: the decimal digit count of the
// largest digit value that position can hold (radixVal-1). Computed by
// counting digits rather than ceil(log10(radixVal)), since float64 log10
// is not guaranteed exact at powers of ten and this is load-bearing for
// zero-padding every rendered position.
func DigitWidth(radixVal int) int {
	n := radixVal - 1
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}
