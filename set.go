// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math"
	"math/big"

	"github.com/avdva/bigfloat/internal/mathutil"
)

// SignRequest selects the sign of the result of Set4.
type SignRequest byte

const (
	// Positive makes the result positive.
	Positive SignRequest = iota
	// Negative makes the result negative.
	Negative
	// SameAsSource keeps the sign of the source.
	SameAsSource
	// OppositeOfSource flips the sign of the source.
	OppositeOfSource
)

func (s SignRequest) apply(neg bool) bool {
	switch s {
	case Positive:
		return false
	case Negative:
		return true
	case SameAsSource:
		return neg
	case OppositeOfSource:
		return !neg
	default:
		panic("bigfloat: invalid sign request")
	}
}

// Set4 sets z to the magnitude of x with the sign chosen by s, rounded to
// z's precision. NaN stays NaN whatever s is. The result is exact when
// z.Prec() >= x.Prec() and x fits the exponent range.
func (c *Context) Set4(z, x *Float, mode Mode, s SignRequest) int {
	x.live()
	z.live()
	switch x.form {
	case nan:
		return c.nan(z)
	case inf:
		z.SetInf(s.apply(x.neg))
		return 0
	case zero:
		z.SetZero(s.apply(x.neg))
		return 0
	}
	neg := s.apply(x.neg)
	m := mathutil.Get()
	defer mathutil.Put(m)
	e := x.decompose(m)
	return c.roundTo(z, m, e, false, neg, mode)
}

// Set sets z = x rounded to z's precision.
func (c *Context) Set(z, x *Float, mode Mode) int {
	return c.Set4(z, x, mode, SameAsSource)
}

// Abs sets z = |x|.
func (c *Context) Abs(z, x *Float, mode Mode) int {
	return c.Set4(z, x, mode, Positive)
}

// Neg sets z = -x.
func (c *Context) Neg(z, x *Float, mode Mode) int {
	return c.Set4(z, x, mode, OppositeOfSource)
}

// CopySign sets z to the magnitude of x with the sign of y.
func (c *Context) CopySign(z, x, y *Float, mode Mode) int {
	s := Positive
	if y.Signbit() {
		s = Negative
	}
	return c.Set4(z, x, mode, s)
}

// SetMantExp sets z = mant × 2^exp rounded to z's precision.
// A zero mant gives +0.
func (c *Context) SetMantExp(z *Float, mant *big.Int, exp int64, mode Mode) int {
	return c.SetSignedMantExp(z, mant.Sign() < 0, mant, exp, mode)
}

// SetSignedMantExp sets z = ±|mant| × 2^exp rounded to z's precision, the sign
// given by neg. A zero mant gives a zero of that sign.
func (c *Context) SetSignedMantExp(z *Float, neg bool, mant *big.Int, exp int64, mode Mode) int {
	z.live()
	m := mathutil.Get()
	defer mathutil.Put(m)
	mathutil.Abs(m, mant)
	return c.roundTo(z, m, exp, false, neg, mode)
}

// SetInt64 sets z = v rounded to z's precision.
func (c *Context) SetInt64(z *Float, v int64, mode Mode) int {
	m := mathutil.Get()
	defer mathutil.Put(m)
	m.SetInt64(v)
	return c.SetMantExp(z, m, 0, mode)
}

// SetUint64 sets z = v rounded to z's precision.
func (c *Context) SetUint64(z *Float, v uint64, mode Mode) int {
	m := mathutil.Get()
	defer mathutil.Put(m)
	m.SetUint64(v)
	return c.SetMantExp(z, m, 0, mode)
}

// SetInt sets z = v rounded to z's precision.
func (c *Context) SetInt(z *Float, v *big.Int, mode Mode) int {
	return c.SetMantExp(z, v, 0, mode)
}

// SetFloat64 sets z = v rounded to z's precision. A NaN v raises FlagNaN.
func (c *Context) SetFloat64(z *Float, v float64, mode Mode) int {
	z.live()
	switch {
	case math.IsNaN(v):
		return c.nan(z)
	case math.IsInf(v, 0):
		z.SetInf(v < 0)
		return 0
	case v == 0:
		z.SetZero(math.Signbit(v))
		return 0
	}
	frac, exp := math.Frexp(math.Abs(v))
	m := mathutil.Get()
	defer mathutil.Put(m)
	m.SetUint64(uint64(math.Ldexp(frac, 53)))
	return c.roundTo(z, m, int64(exp)-53, false, v < 0, mode)
}

// SetRat sets z = v correctly rounded to z's precision.
func (c *Context) SetRat(z *Float, v *big.Rat, mode Mode) int {
	z.live()
	if v.Sign() == 0 {
		z.SetZero(false)
		return 0
	}
	n, d := mathutil.Get(), mathutil.Get()
	defer mathutil.Put(n, d)
	mathutil.Abs(n, v.Num())
	d.Set(v.Denom())
	return c.quoMag(z, n, 0, d, 0, v.Sign() < 0, mode)
}

// Cmp compares x and y and returns -1, 0 or +1.
// If either operand is NaN, Cmp raises FlagERange and returns 0.
func (c *Context) Cmp(x, y *Float) int {
	x.live()
	y.live()
	if x.form == nan || y.form == nan {
		c.flags |= FlagERange
		return 0
	}
	sx, sy := x.ord(), y.ord()
	switch {
	case sx < sy:
		return -1
	case sx > sy:
		return 1
	case sx == 0 || sx == -2 || sx == 2:
		return 0
	}
	r := cmpAbs(x, y)
	if sx < 0 {
		r = -r
	}
	return r
}

// ord orders the classes of x: -2 -Inf, -1 negative, 0 zero, 1 positive, 2 +Inf.
func (x *Float) ord() int {
	var o int
	switch x.form {
	case zero:
		return 0
	case regular:
		o = 1
	case inf:
		o = 2
	}
	if x.neg {
		o = -o
	}
	return o
}

// cmpAbs compares the magnitudes of regular x and y.
func cmpAbs(x, y *Float) int {
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return 1
	}
	mx, my := mathutil.Get(), mathutil.Get()
	defer mathutil.Put(mx, my)
	x.decompose(mx)
	y.decompose(my)
	if d := len(x.mant) - len(y.mant); d > 0 {
		my.Lsh(my, uint(d)*_W)
	} else if d < 0 {
		mx.Lsh(mx, uint(-d)*_W)
	}
	return mathutil.CmpAbs(mx, my)
}

// roundInt sets z to x rounded to an integer under mode. x must be regular.
func roundInt(z *big.Int, x *Float, mode Mode) *big.Int {
	m := mathutil.Get()
	defer mathutil.Put(m)
	e := x.decompose(m)
	if e >= 0 {
		z.Lsh(m, uint(e))
	} else {
		sh := uint(-e)
		rb := m.Bit(int(sh-1)) == 1
		st := mathutil.Sticky(m, sh-1)
		z.Rsh(m, sh)
		if mode.needsInc(z.Bit(0) == 1, rb, st, x.neg) {
			z.Add(z, big.NewInt(1))
		}
	}
	if x.neg {
		z.Neg(z)
	}
	return z
}

// FitsInt64 reports whether x rounded to an integer under mode fits an int64.
// Zeros fit, NaN and infinities do not.
func (c *Context) FitsInt64(x *Float, mode Mode) bool {
	x.live()
	switch x.form {
	case zero:
		return true
	case nan, inf:
		return false
	}
	if x.exp < 1 {
		// |x| < 1 rounds to -1, 0 or 1.
		return true
	}
	if x.exp > 64 {
		return false
	}
	v := mathutil.Get()
	defer mathutil.Put(v)
	return roundInt(v, x, mode).IsInt64()
}

// Int64 returns x rounded to an integer under mode.
// NaN gives 0, out of range values saturate; both raise FlagERange.
// An inexact conversion raises FlagInexact.
func (c *Context) Int64(x *Float, mode Mode) int64 {
	x.live()
	switch x.form {
	case zero:
		return 0
	case nan:
		c.flags |= FlagERange
		return 0
	case inf:
		c.flags |= FlagERange
		if x.neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if !c.FitsInt64(x, mode) {
		c.flags |= FlagERange
		if x.neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	v := mathutil.Get()
	defer mathutil.Put(v)
	roundInt(v, x, mode)
	if int64(x.MinPrec()) > x.exp {
		c.flags |= FlagInexact
	}
	return v.Int64()
}
