// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math/big"

	"github.com/avdva/bigfloat/internal/mathutil"
)

// roundMag rounds the magnitude (m + δ)·2^e, where 0 < δ < 1 if sticky is set
// and δ = 0 otherwise, to p bits. It sets q to the p-bit mantissa and returns
// the exponent of the result as 0.q × 2^exp, ignoring the exponent range.
// dir is +1 if the magnitude was rounded up, -1 if it was truncated, 0 if exact.
// m must be positive, and must have more than p bits when sticky is set.
func roundMag(q, m *big.Int, e int64, p uint, sticky, neg bool, mode Mode) (exp int64, dir int) {
	n := uint(m.BitLen())
	if n == 0 || (sticky && n <= p) {
		panic("bigfloat: not enough mantissa bits to round")
	}
	exp = e + int64(n)
	if n <= p {
		q.Lsh(m, p-n)
		return exp, 0
	}
	sh := n - p
	rb := m.Bit(int(sh-1)) == 1
	st := sticky || mathutil.Sticky(m, sh-1)
	q.Rsh(m, sh)
	switch {
	case mode.needsInc(q.Bit(0) == 1, rb, st, neg):
		q.Add(q, big.NewInt(1))
		if uint(q.BitLen()) > p {
			q.Rsh(q, 1)
			exp++
		}
		dir = 1
	case rb || st:
		dir = -1
	}
	return exp, dir
}

// inexOf converts a magnitude direction to the inexact sign of a signed value.
func inexOf(dir int, neg bool) int {
	if neg {
		return -dir
	}
	return dir
}

// roundTo is the single rounding routine arithmetic funnels through.
// It sets z to ±(m + δ)·2^e, see roundMag, rounded to z's precision and
// clamped to the exponent range, and returns the inexact sign.
// A zero m without sticky gives a signed zero.
func (c *Context) roundTo(z *Float, m *big.Int, e int64, sticky, neg bool, mode Mode) int {
	if m.Sign() == 0 && !sticky {
		z.SetZero(neg)
		return 0
	}
	q := mathutil.Get()
	defer mathutil.Put(q)
	exp, dir := roundMag(q, m, e, z.prec, sticky, neg, mode)
	return c.finish(z, q, exp, dir, neg, mode)
}

// finish stores a rounded p-bit mantissa into z after the exponent range check.
func (c *Context) finish(z *Float, q *big.Int, exp int64, dir int, neg bool, mode Mode) int {
	if exp > c.emax {
		return c.overflow(z, neg, mode)
	}
	if exp < c.emin {
		pow2 := q.TrailingZeroBits() == z.prec-1
		return c.underflow(z, neg, mode, exp, pow2, dir)
	}
	z.form = regular
	z.neg = neg
	z.exp = exp
	z.setMant(q)
	if dir != 0 {
		c.flags |= FlagInexact
	}
	return inexOf(dir, neg)
}

// overflow sets z according to the overflow table:
//
//	mode           positive  negative
//	ToNearestEven  +Inf      -Inf
//	ToZero         +max      -max
//	ToPositiveInf  +Inf      -max
//	ToNegativeInf  +max      -Inf
//	AwayFromZero   +Inf      -Inf
func (c *Context) overflow(z *Float, neg bool, mode Mode) int {
	c.flags |= FlagOverflow | FlagInexact
	if mode == ToNearestEven || mode.awayFrom(neg) {
		z.SetInf(neg)
		return inexOf(1, neg)
	}
	z.setMax(neg, c.emax)
	return inexOf(-1, neg)
}

// underflow flushes a value whose rounded exponent exp is below emin.
// pow2 tells whether the rounded magnitude is a power of two and dir is the
// direction it was rounded in. The result is the smallest magnitude
// 0.1 × 2^emin when the mode rounds away from zero, or for ToNearestEven when
// the exact magnitude exceeds half of it; a signed zero otherwise.
func (c *Context) underflow(z *Float, neg bool, mode Mode, exp int64, pow2 bool, dir int) int {
	c.flags |= FlagUnderflow | FlagInexact
	toMin := mode.awayFrom(neg)
	if mode == ToNearestEven {
		toMin = exp == c.emin-1 && (!pow2 || dir < 0)
	}
	if toMin {
		z.setMin(neg, c.emin)
		return inexOf(1, neg)
	}
	z.SetZero(neg)
	return inexOf(-1, neg)
}

// CheckRange re-clamps x to the current exponent range, for values computed
// before the range was narrowed. inex is the inexact sign x was obtained with.
// It returns the new inexact sign and raises the same flags rounding would.
func (c *Context) CheckRange(x *Float, inex int, mode Mode) int {
	x.live()
	if x.form == regular {
		dir := inexOf(inex, x.neg)
		if x.exp > c.emax {
			return c.overflow(x, x.neg, mode)
		}
		if x.exp < c.emin {
			return c.underflow(x, x.neg, mode, x.exp, x.isPow2(), dir)
		}
	}
	if inex != 0 {
		c.flags |= FlagInexact
	}
	return inex
}

func (x *Float) isPow2() bool {
	top := len(x.mant) - 1
	if x.mant[top] != 1<<(_W-1) {
		return false
	}
	for _, w := range x.mant[:top] {
		if w != 0 {
			return false
		}
	}
	return true
}

// PrecRound changes the precision of z keeping its value, rounded under mode.
func (c *Context) PrecRound(z *Float, prec uint, mode Mode) int {
	z.live()
	checkPrec(prec)
	form, neg := z.form, z.neg
	m := mathutil.Get()
	defer mathutil.Put(m)
	var e int64
	if form == regular {
		e = z.decompose(m)
	}
	z.SetPrec(prec)
	if form != regular {
		z.form, z.neg = form, neg
		return 0
	}
	return c.roundTo(z, m, e, false, neg, mode)
}
