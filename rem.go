// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math/big"

	"github.com/avdva/bigfloat/internal/mathutil"
)

// quoBits is the number of low quotient bits Reduce reports, one bit of an
// int64 being kept for the sign.
const quoBits = 63

// Reduce sets z = x - q·y, where q is x/y rounded to an integer under qmode,
// and rounds z to its precision under mode. qmode is ToZero (fmod) or
// ToNearestEven (IEEE remainder); other values panic.
//
// If quo is not nil, it receives q mod 2^63 with the sign of q.
// A zero remainder has the sign of x.
//
// Special values:
//
//	x or y NaN, x = ±Inf, y = ±0    NaN, *quo is unchanged
//	y = ±Inf, x finite              z = x, q = 0
//	x = ±0, y finite nonzero        z = x, q = 0
//
// The remainder is exact before the final rounding, so the returned
// inexact sign only reflects that rounding. Large exponent gaps are handled
// with modular exponentiation, never forming the full quotient.
func (c *Context) Reduce(z *Float, quo *int64, x, y *Float, qmode, mode Mode) int {
	if qmode != ToZero && qmode != ToNearestEven {
		panic("bigfloat: quotient mode must be ToZero or ToNearestEven")
	}
	x.live()
	y.live()
	z.live()
	switch {
	case x.form == nan || y.form == nan || x.form == inf || y.form == zero:
		return c.nan(z)
	case y.form == inf || x.form == zero:
		if quo != nil {
			*quo = 0
		}
		return c.Set(z, x, mode)
	}

	mx, my, r, q := mathutil.Get(), mathutil.Get(), mathutil.Get(), mathutil.Get()
	defer mathutil.Put(mx, my, r, q)
	ex := x.decompose(mx)
	ey := y.decompose(my)
	xneg, qneg := x.neg, x.neg != y.neg
	k := mathutil.ScanLowZeroBits(my)
	my.Rsh(my, k)
	ey += int64(k)

	if ex+int64(mx.BitLen()) <= ey+int64(my.BitLen())-2 {
		// |x| < |y|/2: q is zero in both quotient modes.
		if quo != nil {
			*quo = 0
		}
		return c.Set(z, x, mode)
	}

	var (
		qIsOdd bool
		scale  int64
	)
	if ex <= ey {
		// q = mx / (my·2^(ey-ex)), the remainder is in units of 2^ex.
		my.Lsh(my, uint(ey-ex))
		dm := mathutil.Trunc
		if qmode == ToNearestEven {
			dm = mathutil.Floor
		}
		mathutil.DivRem(q, r, mx, my, dm)
		qIsOdd = q.Bit(0) == 1
		if quo != nil {
			mathutil.LowBits(q, q, quoBits)
		}
		scale = ex
	} else {
		// x = X·2^ey with X = mx·2^(ex-ey) and y = my·2^ey, so only X mod M is
		// needed for a multiple M of my. M = my·2^63 gives the low quotient
		// bits, M = 2·my gives the parity of the quotient.
		if quo != nil {
			my.Lsh(my, quoBits)
		} else {
			my.Lsh(my, 1)
		}
		mathutil.Pow2Mod(r, uint64(ex)-uint64(ey), my)
		r.Mul(r, mx)
		r.Mod(r, my)
		if quo != nil {
			my.Rsh(my, quoBits)
			mathutil.DivRem(q, r, r, my, mathutil.Trunc)
			qIsOdd = q.Bit(0) == 1
		} else {
			my.Rsh(my, 1)
			if r.Cmp(my) >= 0 {
				qIsOdd = true
				r.Sub(r, my)
			}
		}
		scale = ey
	}

	var inex int
	if r.Sign() == 0 {
		z.SetZero(xneg)
	} else {
		if qmode == ToNearestEven {
			r.Lsh(r, 1)
			cmp := mathutil.CmpAbs(r, my)
			r.Rsh(r, 1)
			if cmp > 0 || (cmp == 0 && qIsOdd) {
				r.Sub(r, my)
				if quo != nil {
					q.Add(q, big.NewInt(1))
					mathutil.LowBits(q, q, quoBits)
				}
			}
		}
		neg := xneg != (r.Sign() < 0)
		mathutil.Abs(r, r)
		inex = c.roundTo(z, r, scale, false, neg, mode)
	}
	if quo != nil {
		*quo = q.Int64()
		if qneg {
			*quo = -*quo
		}
	}
	return inex
}

// Fmod sets z = x - trunc(x/y)·y rounded under mode.
func (c *Context) Fmod(z, x, y *Float, mode Mode) int {
	return c.Reduce(z, nil, x, y, ToZero, mode)
}

// Remainder sets z = x - n·y, n being x/y rounded to the nearest integer,
// ties to even, and rounds z under mode.
func (c *Context) Remainder(z, x, y *Float, mode Mode) int {
	return c.Reduce(z, nil, x, y, ToNearestEven, mode)
}

// Remquo is Remainder that also returns the low 63 bits of n with its sign.
func (c *Context) Remquo(z, x, y *Float, mode Mode) (int64, int) {
	var q int64
	inex := c.Reduce(z, &q, x, y, ToNearestEven, mode)
	return q, inex
}
