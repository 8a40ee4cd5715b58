// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	x := New(MinPrec)
	a.True(x.IsNaN())
	a.Equal(uint(MinPrec), x.Prec())
	a.Panics(func() { New(MinPrec - 1) })
	a.Panics(func() { New(MaxPrec + 1) })

	x.SetPrec(1000)
	a.Equal(uint(1000), x.Prec())
	a.True(x.IsNaN())
	a.Panics(func() { x.SetPrec(1) })

	x.Release()
	a.Panics(func() { x.IsNaN() })
	a.Panics(func() { NewContext().SetInt64(x, 1, ToZero) })
	var zero Float
	a.Panics(func() { zero.Prec() })
}

func TestPredicates(t *testing.T) {
	a := assert.New(t)
	x := New(10)
	tests := []struct {
		set     func()
		nan     bool
		inf     bool
		zero    bool
		regular bool
		sign    int
		signbit bool
		str     string
	}{
		{x.SetNaN, true, false, false, false, 0, false, "@NaN@"},
		{func() { x.SetInf(false) }, false, true, false, false, 1, false, "@Inf@"},
		{func() { x.SetInf(true) }, false, true, false, false, -1, true, "-@Inf@"},
		{func() { x.SetZero(false) }, false, false, true, false, 0, false, "0"},
		{func() { x.SetZero(true) }, false, false, true, false, 0, true, "-0"},
		{func() { NewContext().SetInt64(x, -5, ToZero) }, false, false, false, true, -1, true, "-0.1010000000E3"},
		{func() { NewContext().SetFloat64(x, 0.375, ToZero) }, false, false, false, true, 1, false, "0.1100000000E-1"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			test.set()
			a.Equal(test.nan, x.IsNaN())
			a.Equal(test.inf, x.IsInf())
			a.Equal(test.zero, x.IsZero())
			a.Equal(test.regular, x.IsRegular())
			a.Equal(test.sign, x.Sign())
			a.Equal(test.signbit, x.Signbit())
			a.Equal(test.str, x.String())
		})
	}
}

type decomposed struct {
	Neg  bool
	Mant *big.Int
	Exp  int64
}

func TestDecompose(t *testing.T) {
	a := assert.New(t)
	bigCmp := cmp.Comparer(func(x, y *big.Int) bool {
		if x == nil || y == nil {
			return x == y
		}
		return x.Cmp(y) == 0
	})
	tests := []struct {
		x    *Float
		want decomposed
		exp  int64
		min  uint
	}{
		{newFloat(53, 0.1), decomposed{false, big.NewInt(3602879701896397), -55}, -3, 52},
		{newFloat(100, -6), decomposed{true, big.NewInt(3), 1}, 3, 2},
		{newFloat(2, 0.5), decomposed{false, big.NewInt(1), -1}, 0, 1},
		{binFloat(130, "1.1E-1000"), decomposed{false, big.NewInt(3), -1001}, -999, 2},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var got decomposed
			got.Neg, got.Mant, got.Exp = test.x.Decompose()
			if diff := cmp.Diff(test.want, got, bigCmp); diff != "" {
				t.Errorf("Decompose() mismatch (-want +got):\n%s", diff)
			}
			a.Equal(test.exp, test.x.Exp())
			a.Equal(test.min, test.x.MinPrec())
		})
	}

	inf := New(10)
	inf.SetInf(true)
	neg, mant, exp := inf.Decompose()
	a.True(neg)
	a.Nil(mant)
	a.Zero(exp)
	a.Nil(inf.Words())
	a.Zero(inf.Exp())
}

func TestMantissaLayout(t *testing.T) {
	a := assert.New(t)
	for _, prec := range []uint{2, 31, 32, 33, 63, 64, 65, 127, 128, 129, 1000} {
		x := New(prec)
		a.Equal(0, NewContext().SetInt64(x, -1, ToPositiveInf))
		x.validate()
		ws := x.Words()
		a.Len(ws, int((prec+_W-1)/_W))
		a.Equal(big.Word(1<<(_W-1)), ws[len(ws)-1])

		x.setMax(false, DefaultEmax)
		x.validate()
		a.Equal(prec, x.MinPrec())
	}
}
