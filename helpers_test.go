// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math/big"
	"strconv"
	"strings"
)

var allModes = []Mode{ToNearestEven, ToZero, ToPositiveInf, ToNegativeInf, AwayFromZero}

func bigMode(m Mode) big.RoundingMode {
	return [...]big.RoundingMode{
		ToNearestEven: big.ToNearestEven,
		ToZero:        big.ToZero,
		ToPositiveInf: big.ToPositiveInf,
		ToNegativeInf: big.ToNegativeInf,
		AwayFromZero:  big.AwayFromZero,
	}[m]
}

func accInex(acc big.Accuracy) int {
	return int(acc)
}

// toBig converts a non-NaN x to a big.Float exactly.
func toBig(x *Float) *big.Float {
	switch x.form {
	case nan:
		panic("NaN")
	case inf:
		return new(big.Float).SetInf(x.neg)
	case zero:
		f := new(big.Float)
		if x.neg {
			f.Neg(f)
		}
		return f
	}
	neg, mant, exp := x.Decompose()
	f := new(big.Float).SetPrec(uint(max(mant.BitLen(), 1))).SetInt(mant)
	f.SetMantExp(f, int(exp))
	if neg {
		f.Neg(f)
	}
	return f
}

func toRat(x *Float) *big.Rat {
	r, _ := toBig(x).Rat(nil)
	return r
}

// newFloat returns x = v at prec, panicking if v is not exact.
func newFloat(prec uint, v float64) *Float {
	x := New(prec)
	if NewContext().SetFloat64(x, v, ToNearestEven) != 0 {
		panic("inexact test value " + strconv.FormatFloat(v, 'g', -1, 64))
	}
	return x
}

// newMantExp returns x = mant·2^exp at prec, panicking if it is not exact.
func newMantExp(prec uint, mant int64, exp int64) *Float {
	x := New(prec)
	if NewContext().SetMantExp(x, big.NewInt(mant), exp, ToNearestEven) != 0 {
		panic("inexact test value")
	}
	return x
}

// binFloat parses binary scientific notation like -1.0110E-12 exactly.
func binFloat(prec uint, s string) *Float {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(s, "+-")
	var exp int64
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		var err error
		if exp, err = strconv.ParseInt(s[i+1:], 10, 64); err != nil {
			panic(err)
		}
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		exp -= int64(len(s) - i - 1)
		s = s[:i] + s[i+1:]
	}
	m, ok := new(big.Int).SetString(s, 2)
	if !ok {
		panic("bad binary string " + s)
	}
	x := New(prec)
	if NewContext().SetSignedMantExp(x, neg, m, exp, ToNearestEven) != 0 {
		panic("inexact test value")
	}
	return x
}

func float64Of(x *Float) float64 {
	f, _ := toBig(x).Float64()
	return f
}
