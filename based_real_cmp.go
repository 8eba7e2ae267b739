package radix

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y,
// per spec.md §4.4.11: ordering always falls back to the real-valued
// projection (Float64), so values of differing bases or significance remain
// comparable.
func (x *BasedReal) Cmp(y *BasedReal) int {
	xf, yf := x.Float64(), y.Float64()
	switch {
	case xf < yf:
		return -1
	case xf > yf:
		return 1
	default:
		return 0
	}
}

// Less reports whether x < y.
func (x *BasedReal) Less(y *BasedReal) bool { return x.Cmp(y) < 0 }

// Equal reports whether x and y are structurally equal: same base, sign,
// digit sequences and remainder. Two values that merely denote the same
// real number at different significances are Cmp-equal but not Equal; use
// Cmp for numeric comparison and Equal for exact representational identity.
func (x *BasedReal) Equal(y *BasedReal) bool {
	if x.base != y.base || x.sign != y.sign || x.remainder != y.remainder {
		return false
	}
	if len(x.integerDigits) != len(y.integerDigits) || len(x.fractionalDigits) != len(y.fractionalDigits) {
		return false
	}
	for i := range x.integerDigits {
		if x.integerDigits[i] != y.integerDigits[i] {
			return false
		}
	}
	for i := range x.fractionalDigits {
		if x.fractionalDigits[i] != y.fractionalDigits[i] {
			return false
		}
	}
	return true
}
