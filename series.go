// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math/big"

	"github.com/avdva/bigfloat/internal/mathutil"
)

// Fixed-point series. A value v is held as the integer floor(v·2^scale);
// error bounds are counted in units of 2^-scale.

var bigOne = big.NewInt(1)

// arctanSeries sets sum to atanh(num/den)·2^scale, or atan(num/den)·2^scale
// when alternate is set, and returns the error bound in ulps.
// num and den are positive, num/den <= 1/3.
//
// Every power of num/den and every term is truncated: each term is off by
// less than 3 ulps, and so is the tail dropped once the power reaches zero.
func arctanSeries(sum, num, den *big.Int, scale uint, alternate bool) *big.Int {
	p, r2n, r2d, t, k := mathutil.Get(), mathutil.Get(), mathutil.Get(), mathutil.Get(), mathutil.Get()
	defer mathutil.Put(p, r2n, r2d, t, k)

	p.Lsh(num, scale)
	p.Quo(p, den)
	r2n.Mul(num, num)
	r2d.Mul(den, den)
	sum.SetInt64(0)
	var n int64
	for i := 0; p.Sign() != 0; i++ {
		k.SetInt64(int64(2*i + 1))
		t.Quo(p, k)
		if alternate && i%2 == 1 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
		p.Mul(p, r2n)
		p.Quo(p, r2d)
		n++
	}
	return big.NewInt(3*n + 3)
}

// ln2Fixed sets z to ln(2)·2^scale = 2·atanh(1/3)·2^scale and returns its
// error bound in ulps.
func ln2Fixed(z *big.Int, scale uint) *big.Int {
	err := arctanSeries(z, bigOne, big.NewInt(3), scale, false)
	z.Lsh(z, 1)
	return err.Lsh(err, 1)
}

// logRatioFixed sets z to (ln(a/b) + k·ln2)·2^scale, signed, and returns
// its error bound in ulps. a and b are positive.
//
// a/b is brought to y = a/(b·2^s) in [2/3, 4/3), so that
// ln y = 2·atanh(t) with t = (a'-b')/(a'+b') in [-1/5, 1/7].
func logRatioFixed(z, a, b *big.Int, k int64, scale uint) *big.Int {
	an, bn, lhs, rhs := mathutil.Get(), mathutil.Get(), mathutil.Get(), mathutil.Get()
	defer mathutil.Put(an, bn, lhs, rhs)

	s := int64(a.BitLen() - b.BitLen())
	shift := func(s int64) {
		an.Set(a)
		bn.Set(b)
		if s > 0 {
			bn.Lsh(bn, uint(s))
		} else {
			an.Lsh(an, uint(-s))
		}
	}
	shift(s)
	lhs.Mul(an, big.NewInt(3))
	if rhs.Lsh(bn, 1); lhs.Cmp(rhs) < 0 {
		s--
		shift(s)
	} else if rhs.Lsh(bn, 2); lhs.Cmp(rhs) >= 0 {
		s++
		shift(s)
	}
	k += s

	num, den := lhs, rhs
	num.Sub(an, bn)
	den.Add(an, bn)
	neg := num.Sign() < 0
	mathutil.Abs(num, num)

	err := new(big.Int)
	z.SetInt64(0)
	if num.Sign() != 0 {
		err = arctanSeries(z, num, den, scale, false)
		z.Lsh(z, 1)
		err.Lsh(err, 1)
		if neg {
			z.Neg(z)
		}
	}
	if k != 0 {
		l2 := mathutil.Get()
		defer mathutil.Put(l2)
		l2err := ln2Fixed(l2, scale)
		kk := big.NewInt(k)
		l2.Mul(l2, kk)
		z.Add(z, l2)
		kk.Abs(kk)
		err.Add(err, l2err.Mul(l2err, kk))
	}
	return err.Add(err, bigOne)
}

// cancellation returns how many leading bits of ln(a/b) are lost to
// cancellation when a/b is close to 1.
func cancellation(a, b *big.Int) uint {
	d := mathutil.Get()
	defer mathutil.Put(d)
	d.Sub(a, b)
	if d.Sign() == 0 {
		return 0
	}
	if n := b.BitLen() - d.BitLen(); n > 0 {
		return uint(n)
	}
	return 0
}

// fixedApprox turns the signed fixed-point value v·2^-scale with an error of
// errUlps units into an Approx. The Float is exact, holding all bits of v.
func (c *Context) fixedApprox(v *big.Int, scale uint, errUlps *big.Int) Approx {
	prec := uint(max(v.BitLen(), MinPrec))
	f := New(prec)
	c.SetMantExp(f, v, -int64(scale), ToZero)
	return Approx{
		Value: f,
		Err:   int64(v.BitLen()) - int64(mathutil.CeilLog2Int(errUlps)),
		Dir:   ToNearestEven,
	}
}
