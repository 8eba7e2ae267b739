package radix

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FromString parses s into a BasedReal bound to base, per spec.md §4.4.3.
//
// The decimal base is a special case: it accepts ordinary floating-point
// notation ("-12.345") and its significance is the number of digits written
// after the decimal point, not the length of the string (this resolves an
// ambiguity the original source leaves implicit).
//
// Every other base expects "[-]left ; right", where left is parsed
// right-to-left one position at a time using the base's integer separators,
// and right is a comma-separated list of decimal integers, one per
// fractional position. The ';' and the fractional part may be omitted.
func FromString(base *RadixBase, s string, opts ...ValueOption) (*BasedReal, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, ErrEmptyString
	}
	if base == Decimal {
		return fromDecimalString(s, opts...)
	}

	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	parts := strings.SplitN(s, ";", 2)
	if strings.Count(s, ";") > 1 {
		return nil, ErrTooManySeparators
	}

	leftStr := strings.TrimSpace(parts[0])
	rightStr := ""
	if len(parts) == 2 {
		rightStr = strings.TrimSpace(parts[1])
	}
	if leftStr == "" && rightStr == "" {
		return nil, ErrEmptyString
	}

	integerDigits, err := parseIntegerPart(base, leftStr)
	if err != nil {
		return nil, err
	}

	var fractionalDigits []int
	if rightStr != "" {
		for _, tok := range strings.Split(rightStr, ",") {
			tok = strings.TrimSpace(tok)
			d, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(ErrBadFormat, "fractional digit %q: %v", tok, err)
			}
			fractionalDigits = append(fractionalDigits, d)
		}
	}

	merged := append([]ValueOption{WithSign(sign)}, opts...)
	return FromDigits(base, integerDigits, fractionalDigits, merged...)
}

// parseIntegerPart walks s from right to left, one position at a time,
// splitting on each position's separator (base.SeparatorAt), and returns the
// digits most-significant first. A position with an empty separator
// consumes exactly one character, matching a plain decimal-style position.
func parseIntegerPart(base *RadixBase, s string) ([]int, error) {
	if s == "" {
		return []int{0}, nil
	}
	var digits []int
	remaining := s
	p := 0
	for remaining != "" {
		sep := base.SeparatorAt(p)
		var token string
		if sep == "" {
			if len(remaining) <= 1 {
				token, remaining = remaining, ""
			} else {
				token, remaining = remaining[len(remaining)-1:], remaining[:len(remaining)-1]
			}
		} else if idx := strings.LastIndex(remaining, sep); idx < 0 {
			token, remaining = remaining, ""
		} else {
			token, remaining = remaining[idx+len(sep):], strings.TrimSpace(remaining[:idx])
		}
		token = strings.TrimSpace(token)
		d, err := strconv.Atoi(token)
		if err != nil {
			return nil, errors.Wrapf(ErrBadFormat, "integer digit %q: %v", token, err)
		}
		digits = append([]int{d}, digits...)
		p--
	}
	return digits, nil
}

func fromDecimalString(s string, opts ...ValueOption) (*BasedReal, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrBadFormat, "decimal %q: %v", s, err)
	}
	sig := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		sig = len(s) - i - 1
	}
	x, err := FromFloat(Decimal, v, sig)
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return x, nil
	}
	merged := append([]ValueOption{WithSign(x.sign), WithRemainder(x.remainder)}, opts...)
	return FromDigits(Decimal, x.integerDigits, x.fractionalDigits, merged...)
}

// String renders x in its base's conventional notation: plain concatenated
// digits with a '.' for decimal, or "left ; right" with zero-padded,
// separator-joined groups for every other base, per spec.md §4.4.13.
func (x *BasedReal) String() string {
	if r, err := x.Round(); err == nil {
		x = r
	}
	if x.base == Decimal {
		return x.decimalString()
	}

	var b strings.Builder
	if x.sign < 0 {
		b.WriteByte('-')
	}
	l := len(x.integerDigits)
	for i, d := range x.integerDigits {
		p := -(l - 1 - i)
		if i > 0 {
			b.WriteString(x.base.SeparatorAt(p))
		}
		b.WriteString(zeroPad(d, DigitWidth(x.base.RadixAt(p))))
	}
	if len(x.fractionalDigits) > 0 {
		b.WriteString(" ; ")
		for j, d := range x.fractionalDigits {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(zeroPad(d, DigitWidth(x.base.RadixAt(j+1))))
		}
	}
	return b.String()
}

// Text is an alias for String, matching the original source's naming.
func (x *BasedReal) Text() string { return x.String() }

func (x *BasedReal) decimalString() string {
	var b strings.Builder
	if x.sign < 0 {
		b.WriteByte('-')
	}
	for _, d := range x.integerDigits {
		b.WriteString(strconv.Itoa(d))
	}
	if len(x.fractionalDigits) > 0 {
		b.WriteByte('.')
		for _, d := range x.fractionalDigits {
			b.WriteString(strconv.Itoa(d))
		}
	}
	return b.String()
}

func zeroPad(d, width int) string {
	s := strconv.Itoa(d)
	if len(s) < width {
		return strings.Repeat("0", width-len(s)) + s
	}
	return s
}
