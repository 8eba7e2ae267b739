// Copyright 2024 The Radix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package radix implements arbitrary-precision positional real numbers over
mixed radices: numbers whose integer and fractional digit positions may each
carry a different base, such as classical sexagesimal (60;60), the historical
mixed system of degrees/signs (10,12,30;60), or ordinary decimal.

A RadixBase declares the per-position radices and mints a family of values
bound to it. BasedReal is the value type: an immutable sign, a sequence of
integer digits (most significant first), a sequence of fractional digits, and
a bounded remainder that records truncation error so that later rounding can
be faithful to the exact result.

The zero value of BasedReal is not itself meaningful (it has no base); values
are always produced by a constructor:

	v, err := radix.FromString(Sexagesimal, "01, 21; 47, 25")

Setters, numeric operations and predicates are represented as functions or
methods of the form:

	func FromV(base *RadixBase, v V) (*BasedReal, error)      // construct from v
	func (z *BasedReal) Unary() (*BasedReal, error)           // z = unary self
	func (x *BasedReal) Binary(y *BasedReal) (*BasedReal, error) // z = x binary y

Unlike the arithmetic in math/big and this package's own ancestor
(db47h/decimal), BasedReal values are immutable: every operation returns a new
value rather than mutating a receiver in place, because digit positions do not
share a uniform base and therefore cannot be packed into reusable machine
words the way a fixed-radix mantissa can. Operations that can fail — a
mismatched base, division by a zero operand, an out-of-range index — return
an error as their last result, per the taxonomy in errors.go; there are no
panics on malformed caller input.

Two BasedReal values compare equal via Equal when they share a base, sign,
digit sequences, and remainder at the same significance; ordering (Cmp) always
falls back to comparing the real-valued projection (Float64), so values of
differing bases or significance remain totally ordered.
*/
package radix
