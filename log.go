// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math/big"

	"github.com/avdva/bigfloat/internal/mathutil"
)

// logKernel returns a kernel evaluating half^h · ln(a/b) + k·ln2, where h is 1
// when half is set. a and b must stay untouched until the kernel is done.
func logKernel(name string, a, b *big.Int, k int64, half bool) Kernel {
	lost := uint(0)
	if k == 0 {
		lost = cancellation(a, b)
	}
	return Kernel{
		Name:  name,
		Guard: 8,
		Eval: func(c *Context, prec uint) Approx {
			scale := prec + 8 + lost
			v := mathutil.Get()
			defer mathutil.Put(v)
			err := logRatioFixed(v, a, b, k, scale)
			if half {
				scale++
			}
			return c.fixedApprox(v, scale, err)
		},
	}
}

// Log sets z to the natural logarithm of x rounded under mode and returns the
// inexact sign.
//
// Special values: Log(NaN) = Log(x < 0) = NaN, Log(±0) = -Inf,
// Log(+Inf) = +Inf, Log(1) = +0.
func (c *Context) Log(z, x *Float, mode Mode) int {
	x.live()
	z.live()
	switch {
	case x.form == nan:
		return c.nan(z)
	case x.form == zero:
		z.SetInf(true)
		return 0
	case x.neg:
		return c.nan(z)
	case x.form == inf:
		z.SetInf(false)
		return 0
	case x.exp == 1 && x.isPow2():
		z.SetZero(false)
		return 0
	}

	// x = m/2^L · 2^exp with m/2^L in [1/2, 1).
	a, b := mathutil.Get(), mathutil.Get()
	defer mathutil.Put(a, b)
	x.decompose(a)
	l := uint(a.BitLen())
	k := x.exp
	if k == 1 {
		// x in (1, 2): keep it whole so that cancellation near 1 is seen.
		l--
		k = 0
	}
	b.Lsh(bigOne, l)
	return c.Escalate(z, mode, logKernel("log", a, b, k, false))
}

// Atanh sets z to the inverse hyperbolic tangent of x rounded under mode and
// returns the inexact sign.
//
// Special values: Atanh(NaN) = NaN, Atanh(±0) = ±0, Atanh(±1) = ±Inf,
// Atanh(x) = NaN for |x| > 1, infinities included.
func (c *Context) Atanh(z, x *Float, mode Mode) int {
	x.live()
	z.live()
	switch {
	case x.form == nan || x.form == inf:
		return c.nan(z)
	case x.form == zero:
		z.SetZero(x.neg)
		return 0
	case x.exp > 1 || (x.exp == 1 && !x.isPow2()):
		return c.nan(z)
	case x.exp == 1:
		z.SetInf(x.neg)
		return 0
	}

	m := mathutil.Get()
	defer mathutil.Put(m)
	e := x.decompose(m)

	// atanh(x) = x + x³/3 + ..., and for tiny x everything past x is below
	// one unit of m·2^(p+1), so it only acts as a sticky bit.
	if p := int64(z.prec); -2*x.exp > int64(m.BitLen())+p+1 {
		m.Lsh(m, uint(p+1))
		return c.roundTo(z, m, e-(p+1), true, x.neg, mode)
	}

	// atanh(x) = ln((1+x)/(1-x))/2 = ln((2^K+M)/(2^K-M))/2 for x = M/2^K.
	a, b := mathutil.Get(), mathutil.Get()
	defer mathutil.Put(a, b)
	a.Lsh(bigOne, uint(-e))
	b.Set(a)
	if x.neg {
		a.Sub(a, m)
		b.Add(b, m)
	} else {
		a.Add(a, m)
		b.Sub(b, m)
	}
	return c.Escalate(z, mode, logKernel("atanh", a, b, 0, true))
}
