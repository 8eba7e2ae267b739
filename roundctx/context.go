// Copyright 2024 The Radix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roundctx provides a context that fixes a RadixBase and a
// significance for a sequence of BasedReal operations, so that a chain of
// arithmetic can be written without testing an error after every step.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *radix.BasedReal
//
// create a new BasedReal from x at c's base and significance.
//
// Operators of the form
//
//	func (c *Context) BinaryOp(x, y *radix.BasedReal) *radix.BasedReal
//
// return the result of x.Op(y), resized to c's significance: digits beyond
// it are truncated and kept as the remainder. Only Round rounds.
//
// A Context latches the first error any operation produces: once set, every
// further operation on the context is a no-op that returns nil, until
// (*Context).Err is called to retrieve and clear it. This adapts the
// panic/recover NaN-latching idiom of this package's ancestor
// (db47h/decimal's context package) to a package whose operations already
// return errors instead of panicking.
package roundctx

import (
	radix "github.com/kanon-go/radix"
)

// A Context wraps BasedReal operations bound to a fixed base and
// significance, latching the first error encountered.
type Context struct {
	base        *radix.RadixBase
	significant int
	err         error
}

// New creates a new context with the given base and significant fractional
// positions.
func New(base *radix.RadixBase, significant int) *Context {
	return &Context{base: base, significant: significant}
}

// Base returns c's base.
func (c *Context) Base() *radix.RadixBase { return c.base }

// Significant returns c's fractional significance.
func (c *Context) Significant() int { return c.significant }

// SetSignificant sets c's fractional significance and returns c.
func (c *Context) SetSignificant(n int) *Context {
	c.significant = n
	return c
}

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Context) latch(v *radix.BasedReal, err error) *radix.BasedReal {
	if c.err != nil {
		return nil
	}
	if err != nil {
		c.err = err
		return nil
	}
	return v
}

// NewFloat64 returns a BasedReal set to the value of x at c's significance,
// the truncated tail kept as the remainder.
func (c *Context) NewFloat64(x float64) *radix.BasedReal {
	return c.latch(radix.FromFloat(c.base, x, c.significant))
}

// NewInt64 returns a BasedReal set to the value of x.
func (c *Context) NewInt64(x int64) *radix.BasedReal {
	return c.latch(radix.FromInt(c.base, x, c.significant))
}

// NewString returns a BasedReal parsed from s, resized to c's significance.
func (c *Context) NewString(s string) *radix.BasedReal {
	return c.latch(c.roundTo(radix.FromString(c.base, s)))
}

// Zero returns the zero value at c's base and significance.
func (c *Context) Zero() *radix.BasedReal { return c.latch(radix.Zero(c.base, c.significant)) }

// One returns the value one at c's base and significance.
func (c *Context) One() *radix.BasedReal { return c.latch(radix.One(c.base, c.significant)) }

// Add returns x + y resized to c's significance.
func (c *Context) Add(x, y *radix.BasedReal) *radix.BasedReal {
	if c.err != nil || x == nil || y == nil {
		return nil
	}
	v, err := x.Add(y)
	return c.latch(c.roundTo(v, err))
}

// Sub returns x - y resized to c's significance.
func (c *Context) Sub(x, y *radix.BasedReal) *radix.BasedReal {
	if c.err != nil || x == nil || y == nil {
		return nil
	}
	v, err := x.Sub(y)
	return c.latch(c.roundTo(v, err))
}

// Mul returns x * y resized to c's significance.
func (c *Context) Mul(x, y *radix.BasedReal) *radix.BasedReal {
	if c.err != nil || x == nil || y == nil {
		return nil
	}
	v, err := x.Mul(y)
	return c.latch(c.roundTo(v, err))
}

// Division returns x / y at c's significance (see radix.BasedReal.Division).
func (c *Context) Division(x, y *radix.BasedReal) *radix.BasedReal {
	if c.err != nil || x == nil || y == nil {
		return nil
	}
	return c.latch(x.Division(y, c.significant))
}

// Neg returns -x.
func (c *Context) Neg(x *radix.BasedReal) *radix.BasedReal {
	if c.err != nil || x == nil {
		return nil
	}
	return x.Neg()
}

// Abs returns |x|.
func (c *Context) Abs(x *radix.BasedReal) *radix.BasedReal {
	if c.err != nil || x == nil {
		return nil
	}
	return x.Abs()
}

// Round returns x rounded to c's significance.
func (c *Context) Round(x *radix.BasedReal) *radix.BasedReal {
	if c.err != nil || x == nil {
		return nil
	}
	return c.latch(x.Round(c.significant))
}

func (c *Context) roundTo(v *radix.BasedReal, err error) (*radix.BasedReal, error) {
	if err != nil {
		return nil, err
	}
	if v.Significant() == c.significant {
		return v, nil
	}
	return v.Resize(c.significant)
}
