// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math/big"

	"github.com/avdva/bigfloat/internal/mathutil"
)

// Quo sets z = x/y correctly rounded to z's precision and returns the inexact sign.
//
// Special values:
//
//	x/NaN, NaN/y, ±Inf/±Inf, ±0/±0    NaN
//	±Inf/finite                       ±Inf
//	finite/±Inf, ±0/nonzero           ±0
//	nonzero/±0                        ±Inf
//
// The sign of a non-NaN result is the XOR of the operand signs.
func (c *Context) Quo(z, x, y *Float, mode Mode) int {
	x.live()
	y.live()
	z.live()
	neg := x.neg != y.neg
	switch {
	case x.form == nan || y.form == nan:
		return c.nan(z)
	case x.form == inf:
		if y.form == inf {
			return c.nan(z)
		}
		z.SetInf(neg)
		return 0
	case y.form == inf:
		z.SetZero(neg)
		return 0
	case x.form == zero:
		if y.form == zero {
			return c.nan(z)
		}
		z.SetZero(neg)
		return 0
	case y.form == zero:
		z.SetInf(neg)
		return 0
	}
	mx, my := mathutil.Get(), mathutil.Get()
	defer mathutil.Put(mx, my)
	ex := x.decompose(mx)
	ey := y.decompose(my)
	return c.quoMag(z, mx, ex, my, ey, neg, mode)
}

// quoMag sets z = ±(mx·2^ex)/(my·2^ey). mx and my are positive and are clobbered.
//
// Only the quotient bits needed for rounding are computed: the dividend is
// shifted so that the integer quotient has at least prec+2 bits, and the
// remainder becomes the sticky bit. The exponents are combined arithmetically,
// so the cost does not depend on how far apart they are.
func (c *Context) quoMag(z *Float, mx *big.Int, ex int64, my *big.Int, ey int64, neg bool, mode Mode) int {
	k := mathutil.ScanLowZeroBits(my)
	my.Rsh(my, k)
	ey += int64(k)

	// The quotient lies in [2^(d-1), 2^(d+1)).
	d := (ex + int64(mx.BitLen())) - (ey + int64(my.BitLen()))
	switch {
	case d > c.emax:
		return c.overflow(z, neg, mode)
	case d < c.emin-2:
		return c.underflow(z, neg, mode, d, false, -1)
	}

	if my.BitLen() == 1 {
		return c.roundTo(z, mx, ex-ey, false, neg, mode)
	}

	s := int(z.prec) + 2 + my.BitLen() - mx.BitLen()
	if s < 0 {
		s = 0
	}
	a, q, r := mathutil.Get(), mathutil.Get(), mathutil.Get()
	defer mathutil.Put(a, q, r)
	a.Lsh(mx, uint(s))
	mathutil.DivRem(q, r, a, my, mathutil.Trunc)
	return c.roundTo(z, q, ex-ey-int64(s), r.Sign() != 0, neg, mode)
}
