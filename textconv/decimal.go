// Copyright 2020 Aleksandr Demakin. All rights reserved.

package textconv

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdva/bigfloat"
	"github.com/avdva/bigfloat/internal/mathutil"
)

var (
	// ErrNotFinite is returned when NaN or an infinity has no decimal form.
	ErrNotFinite = errors.New("textconv: value is not finite")

	// MaxExactExp bounds the binary exponent of values Decimal converts and
	// the decimal exponent ParseDecimal expands within the exponent range.
	// The decimal expansion of m·2^e has about |e| digits.
	MaxExactExp int64 = 1 << 20
)

// ParseDecimal sets z to the decimal number s, as accepted by
// decimal.NewFromString, correctly rounded under mode. It returns the inexact
// sign. NaN, Inf, +Inf and -Inf are accepted in any case.
func ParseDecimal(c *bigfloat.Context, z *bigfloat.Float, s string, mode bigfloat.Mode) (int, error) {
	s, offset, neg := prepareString(s)
	switch {
	case s == "":
		return 0, fmt.Errorf("empty input")
	case strings.EqualFold(s, "nan"):
		z.SetNaN()
		return 0, nil
	case strings.EqualFold(s, "inf"):
		z.SetInf(neg)
		return 0, nil
	case s[0] == '-' || s[0] == '+':
		return 0, fmt.Errorf("parsing failed: %w", addPosErrorOffset(newPosError("unexpected sign", 0), offset+1))
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	coef := d.Coefficient()
	if neg {
		coef.Neg(coef)
	}
	if coef.Sign() == 0 {
		z.SetZero(neg)
		return 0, nil
	}
	// 10^|e| > 2^(3·|e|), so past these bounds the result is out of range
	// whatever the coefficient.
	e := int64(d.Exponent())
	switch {
	case e > 0 && 3*e > c.Emax():
		return c.SetMantExp(z, coef, c.Emax()+1, mode), nil
	case e < 0 && -3*e >= int64(coef.BitLen())+2-c.Emin():
		return c.SetMantExp(z, coef, c.Emin()-2-int64(coef.BitLen()), mode), nil
	case mathutil.AbsInt64(e) > MaxExactExp:
		return 0, fmt.Errorf("parsing failed: decimal exponent %d too large", e)
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(mathutil.AbsInt64(e)), nil)
	if e >= 0 {
		return c.SetInt(z, coef.Mul(coef, scale), mode), nil
	}
	return c.SetRat(z, new(big.Rat).SetFrac(coef, scale), mode), nil
}

// Decimal returns the exact decimal value of a finite x.
// Zeros lose their sign.
func Decimal(x *bigfloat.Float) (decimal.Decimal, error) {
	if x.IsNaN() || x.IsInf() {
		return decimal.Zero, ErrNotFinite
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}
	neg, mant, exp := x.Decompose()
	if exp > MaxExactExp || -exp > MaxExactExp {
		return decimal.Zero, fmt.Errorf("textconv: exponent %d too large for an exact decimal", exp)
	}
	if neg {
		mant.Neg(mant)
	}
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0), nil
	}
	// m/2^k = m·5^k/10^k.
	k := -exp
	mant.Mul(mant, new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil))
	return decimal.NewFromBigInt(mant, int32(-k)), nil
}

// FormatDecimal returns the decimal form of x. With places >= 0 the value is
// rounded half away from zero to that many fractional digits, otherwise it is
// exact. Values too large for Decimal are printed in binary.
func FormatDecimal(x *bigfloat.Float, places int32) string {
	switch {
	case x.IsNaN():
		return "NaN"
	case x.IsInf() && x.Signbit():
		return "-Inf"
	case x.IsInf():
		return "+Inf"
	case x.IsZero() && x.Signbit():
		return "-0"
	}
	d, err := Decimal(x)
	if err != nil {
		return x.String()
	}
	if places >= 0 {
		return d.StringFixed(places)
	}
	return d.String()
}
