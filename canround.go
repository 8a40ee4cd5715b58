// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"github.com/avdva/bigfloat/internal/mathutil"
)

// CanRound reports whether the correct rounding of an unknown value to prec
// bits under final can be derived from approx.
//
// The unknown value lies within 2^(approx.Exp()-err) of approx, on the side
// given by approxDir: ToZero means it is farther from zero than approx,
// AwayFromZero means it is closer to zero, ToPositiveInf means it is below
// approx, ToNegativeInf above, and ToNearestEven means either side.
//
// CanRound is true only if both ends of that interval round to the same
// value and that value lies strictly outside the interval, so that the sign
// of the rounding error is known as well. It neither raises flags nor looks
// at the exponent range.
func (c *Context) CanRound(approx *Float, err int64, approxDir, final Mode, prec uint) bool {
	approx.live()
	checkPrec(prec)
	if approx.form != regular {
		return false
	}
	m := mathutil.Get()
	defer mathutil.Put(m)
	e := approx.decompose(m)

	// Bring approx and the error to the common scale 2^f.
	ef := approx.exp - err
	f := min(e, ef)
	m.Lsh(m, uint(e-f))
	d := mathutil.Get()
	defer mathutil.Put(d)
	d.Lsh(bigOne, uint(ef-f))

	// below and above extend the interval toward smaller and larger magnitudes.
	below, above := true, true
	switch approxDir {
	case ToNearestEven:
	case ToZero:
		below = false
	case AwayFromZero:
		above = false
	case ToPositiveInf:
		below, above = !approx.neg, approx.neg
	case ToNegativeInf:
		below, above = approx.neg, !approx.neg
	default:
		panic("bigfloat: invalid rounding mode")
	}

	lo, hi := mathutil.Get(), mathutil.Get()
	defer mathutil.Put(lo, hi)
	lo.Set(m)
	hi.Set(m)
	if below {
		lo.Sub(lo, d)
	}
	if above {
		hi.Add(hi, d)
	}
	if lo.Sign() <= 0 {
		return false
	}

	qlo, qhi := mathutil.Get(), mathutil.Get()
	defer mathutil.Put(qlo, qhi)
	elo, dlo := roundMag(qlo, lo, f, prec, false, approx.neg, final)
	ehi, dhi := roundMag(qhi, hi, f, prec, false, approx.neg, final)
	return elo == ehi && dlo == dhi && dlo != 0 && qlo.Cmp(qhi) == 0
}
