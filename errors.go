package radix

import "github.com/pkg/errors"

// Sentinel errors returned at construction and operation boundaries. Apart
// from MustRegister, which panics with the error Register returns, none of
// these are ever panicked: every fallible function in this package returns
// one of them (optionally wrapped with errors.Wrap/errors.Wrapf for operand
// context) as its last result, so callers can test with errors.Is.
var (
	// ErrEmptyString is returned by FromString when given an empty (or
	// all-whitespace) string.
	ErrEmptyString = errors.New("radix: empty string")

	// ErrTooManySeparators is returned by FromString when the input
	// contains more than one ';'.
	ErrTooManySeparators = errors.New("radix: too many ';' separators")

	// ErrBadFormat is returned for malformed digits, an unsupported
	// constructor argument shape, or a missing significance specifier.
	ErrBadFormat = errors.New("radix: bad format")

	// ErrInvalidRadix is returned when registering a base with a radix
	// below 2, or when a digit exceeds the radix of its position.
	ErrInvalidRadix = errors.New("radix: invalid radix")

	// ErrInvalidDigit stands for a non-integer value offered as a digit.
	// No function in this package returns it: Construct reads only int and
	// int64 arguments as digits and reports other shapes as ErrBadFormat.
	ErrInvalidDigit = errors.New("radix: non-integer digit")

	// ErrTypeMismatch is returned by arithmetic between values bound to
	// different RadixBase instances.
	ErrTypeMismatch = errors.New("radix: type mismatch between bases")

	// ErrIndexOutOfRange is returned by indexing/slicing past the
	// digits a BasedReal actually represents.
	ErrIndexOutOfRange = errors.New("radix: index out of range")

	// ErrNotSupported stands for an unimplemented or disallowed operation,
	// such as a non-integer exponent. No function in this package returns
	// it: Pow takes an int exponent.
	ErrNotSupported = errors.New("radix: operation not supported")

	// ErrDivisionByZero is returned by Division/QuoRem when the divisor
	// is zero. This resolves Open Question 1 of the division algorithm:
	// euclidian_div's behaviour at a zero divisor is left unspecified by
	// the original source.
	ErrDivisionByZero = errors.New("radix: division by zero")
)
