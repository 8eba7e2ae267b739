package radix

// LoopingList is an immutable periodic sequence: indexing past the end (or
// before the start) wraps around, so a finite pattern implicitly describes an
// infinite repetition in both directions. RadixBase uses it for its integer
// radices, fractional radices, and integer separators, so that a short
// pattern like [10, 12, 30] can be indexed at any position without storage
// amplification.
type LoopingList[T any] struct {
	pattern []T
}

// NewLoopingList returns a LoopingList over a copy of pattern. pattern must
// not be empty.
func NewLoopingList[T any](pattern []T) LoopingList[T] {
	p := make([]T, len(pattern))
	copy(p, pattern)
	return LoopingList[T]{pattern: p}
}

// Len returns the length of the underlying pattern (not the conceptual
// infinite length).
func (l LoopingList[T]) Len() int {
	return len(l.pattern)
}

// At returns the element at index i, wrapping i into [0, Len()) first. i may
// be negative.
func (l LoopingList[T]) At(i int) T {
	n := len(l.pattern)
	i %= n
	if i < 0 {
		i += n
	}
	return l.pattern[i]
}
