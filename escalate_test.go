// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	piDigits  = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"
	ln2Digits = "0.6931471805599453094172321214581765680755001343602552541206800094933936219696947156058633269964186875"
)

func oracle(t *testing.T, digits string) *big.Float {
	f, ok := new(big.Float).SetPrec(340).SetString(digits)
	require.True(t, ok)
	return f
}

// checkOracle compares z, obtained with inex, to want rounded to z's precision.
func checkOracle(t *testing.T, z *Float, inex int, want *big.Float, mode Mode) {
	w := new(big.Float).SetPrec(z.Prec()).SetMode(bigMode(mode)).Set(want)
	require.Equal(t, 0, toBig(z).Cmp(w), "prec %d %v: got %v want %s", z.Prec(), mode, z, w.Text('p', 0))
	require.Equal(t, accInex(w.Acc()), inex)
}

func TestConstants(t *testing.T) {
	pi, ln2 := oracle(t, piDigits), oracle(t, ln2Digits)
	c := NewContext()
	for prec := uint(2); prec <= 200; prec++ {
		for _, mode := range allModes {
			z := New(prec)
			checkOracle(t, z, c.Pi(z, mode), pi, mode)
			checkOracle(t, z, c.Log2(z, mode), ln2, mode)
		}
	}
	assert.Equal(t, FlagInexact, c.Flags())
}

func TestConstantsRange(t *testing.T) {
	a := assert.New(t)
	c := NewContext()
	a.NoError(c.SetEmax(1))
	z := New(10)
	a.Equal(1, c.Pi(z, ToNearestEven))
	a.True(z.IsInf())
	a.Equal(FlagOverflow|FlagInexact, c.Flags())

	c.ClearFlags()
	a.Equal(-1, c.Pi(z, ToZero))
	a.Equal("0.1111111111E1", z.String())

	c.ClearFlags()
	a.Equal(-1, c.Log2(z, ToZero))
	a.Equal(FlagInexact, c.Flags())
	a.Equal(int64(1), c.Emax())
	a.Equal(int64(DefaultEmin), c.Emin())
}

func TestLogSpecial(t *testing.T) {
	a := assert.New(t)
	c := NewContext()
	inf := New(10)
	inf.SetInf(false)
	ninf := New(10)
	ninf.SetInf(true)
	pzero, nzero := New(10), New(10)
	pzero.SetZero(false)
	nzero.SetZero(true)
	tests := []struct {
		x   *Float
		res string
		nan bool
	}{
		{New(10), "@NaN@", true},
		{newFloat(10, -1), "@NaN@", true},
		{ninf, "@NaN@", true},
		{pzero, "-@Inf@", false},
		{nzero, "-@Inf@", false},
		{inf, "@Inf@", false},
		{newFloat(10, 1), "0", false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			c.ClearFlags()
			z := New(20)
			a.Equal(0, c.Log(z, test.x, ToNearestEven))
			a.Equal(test.res, z.String())
			a.Equal(test.nan, c.Test(FlagNaN))
			a.False(c.Test(FlagInexact))
		})
	}
}

func TestLog(t *testing.T) {
	a := assert.New(t)
	c := NewContext()
	ln2 := oracle(t, ln2Digits)
	for _, prec := range []uint{2, 10, 53, 64, 100, 150} {
		for _, mode := range allModes {
			z := New(prec)
			checkOracle(t, z, c.Log(z, newFloat(2, 2), mode), ln2, mode)

			// ln 4 = 2·ln 2 exactly, so the mantissas agree.
			l2, l4 := New(prec), New(prec)
			a.Equal(c.Log2(l2, mode), c.Log(l4, newFloat(2, 4), mode))
			n2, m2, e2 := l2.Decompose()
			n4, m4, e4 := l4.Decompose()
			a.Equal(n2, n4)
			a.Equal(0, m2.Cmp(m4))
			a.Equal(e2+1, e4)

			// ln 0.5 = -ln 2.
			a.Equal(-c.Log2(l2, mode), c.Log(l4, newFloat(2, 0.5), mode.flip()))
			a.Equal(0, c.Cmp(l4, negated(l2)))
		}
	}
}

func negated(x *Float) *Float {
	z := New(x.Prec())
	NewContext().Neg(z, x, ToZero)
	return z
}

// flip returns the mode rounding -x the way m rounds x.
func (m Mode) flip() Mode {
	switch m {
	case ToPositiveInf:
		return ToNegativeInf
	case ToNegativeInf:
		return ToPositiveInf
	}
	return m
}

func TestLogDirected(t *testing.T) {
	a := assert.New(t)
	c := NewContext()
	values := []float64{3, 0.1, 1.5, 1e-300, 1e300, 0.999, 1.0001, 123456.789}
	for _, v := range values {
		for _, mode := range []Mode{ToZero, ToPositiveInf, ToNegativeInf, AwayFromZero} {
			t.Run(fmt.Sprintf("%g/%v", v, mode), func(t *testing.T) {
				x := newFloat(53, v)
				wide, z, direct := New(300), New(53), New(53)
				inexWide := c.Log(wide, x, mode)
				inex := c.Set(z, wide, mode)
				a.Equal(inex, c.Log(direct, x, mode))
				a.Equal(0, c.Cmp(z, direct))
				a.Equal(inexWide, inex)
			})
		}
	}
}

func TestLogNearOne(t *testing.T) {
	a := assert.New(t)
	c := NewContext()
	x := binFloat(200, "1."+zeros(99)+"1")
	z := New(53)

	// ln(1 + 2^-100) = 2^-100 - 2^-201 + ...
	a.Equal(1, c.Log(z, x, ToNearestEven))
	a.Equal("0.1"+zeros(52)+"E-99", z.String())
	a.Equal(-1, c.Log(z, x, ToZero))
	a.Equal("0."+ones(53)+"E-100", z.String())

	// ln(1 - 2^-100) = -2^-100 - 2^-201 - ...
	x = binFloat(200, "0."+ones(100))
	a.Equal(1, c.Log(z, x, ToNearestEven))
	a.Equal("-0.1"+zeros(52)+"E-99", z.String())
	a.Equal(-1, c.Log(z, x, ToNegativeInf))
	a.Equal("-0.1"+zeros(51)+"1E-99", z.String())
}

func TestAtanhSpecial(t *testing.T) {
	a := assert.New(t)
	c := NewContext()
	inf := New(10)
	inf.SetInf(false)
	ninf := New(10)
	ninf.SetInf(true)
	pzero, nzero := New(10), New(10)
	pzero.SetZero(false)
	nzero.SetZero(true)
	tests := []struct {
		x   *Float
		res string
		nan bool
	}{
		{New(10), "@NaN@", true},
		{inf, "@NaN@", true},
		{ninf, "@NaN@", true},
		{newFloat(10, 1.5), "@NaN@", true},
		{newFloat(10, -2), "@NaN@", true},
		{pzero, "0", false},
		{nzero, "-0", false},
		{newFloat(10, 1), "@Inf@", false},
		{newFloat(10, -1), "-@Inf@", false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			c.ClearFlags()
			z := New(20)
			a.Equal(0, c.Atanh(z, test.x, ToNearestEven))
			a.Equal(test.res, z.String())
			a.Equal(test.nan, c.Test(FlagNaN))
		})
	}
}

func TestAtanh(t *testing.T) {
	a := assert.New(t)
	c := NewContext()
	for _, prec := range []uint{2, 24, 53, 113, 200} {
		for _, mode := range allModes {
			// atanh(1/2) = ln(3)/2.
			z, l3 := New(prec), New(prec)
			a.Equal(c.Log(l3, newFloat(2, 3), mode), c.Atanh(z, newFloat(2, 0.5), mode))
			_, m, e := l3.Decompose()
			_, mz, ez := z.Decompose()
			a.Equal(0, m.Cmp(mz))
			a.Equal(e-1, ez)

			// atanh is odd.
			n := New(prec)
			a.Equal(-c.Atanh(z, newFloat(2, 0.75), mode), c.Atanh(n, newFloat(2, -0.75), mode.flip()))
			a.Equal(0, c.Cmp(n, negated(z)))
		}
	}
}

func TestAtanhTiny(t *testing.T) {
	a := assert.New(t)
	c := NewContext()
	x := binFloat(53, "1E-200")
	z := New(53)
	a.Equal(-1, c.Atanh(z, x, ToNearestEven))
	a.Equal(0, c.Cmp(z, x))
	a.Equal(-1, c.Atanh(z, x, ToZero))
	a.Equal(0, c.Cmp(z, x))
	a.Equal(1, c.Atanh(z, x, ToPositiveInf))
	a.Equal("0.1"+zeros(51)+"1E-199", z.String())

	x = binFloat(53, "-1E-200")
	a.Equal(1, c.Atanh(z, x, ToNearestEven))
	a.Equal(0, c.Cmp(z, x))
	a.Equal(-1, c.Atanh(z, x, ToNegativeInf))
	a.Equal("-0.1"+zeros(51)+"1E-199", z.String())
	a.Equal(FlagInexact, c.Flags())

	// Below the cutoff, the series path agrees with rounding x plus a sticky bit.
	x = binFloat(20, "1.0101E-30")
	fast, slow := New(10), New(10)
	for _, mode := range allModes {
		inex := c.Atanh(slow, x, mode)
		m := mantOf(x)
		m.Lsh(m, 11)
		a.Equal(inex, c.roundTo(fast, m, x.Exp()-int64(x.MinPrec())-11, true, false, mode))
		a.Equal(0, c.Cmp(fast, slow))
	}
}

func zeros(n int) string {
	return strings.Repeat("0", n)
}

func ones(n int) string {
	return strings.Repeat("1", n)
}

// midpointKernel approximates 1 + 2^-53 + 2^-400, which sits just above the
// midpoint between two 53-bit values, by truncating it to the working precision.
func midpointKernel(emins *[]int64) Kernel {
	exact := new(big.Int).Lsh(bigOne, 400)
	exact.Add(exact, new(big.Int).Lsh(bigOne, 347))
	exact.Add(exact, bigOne)
	return Kernel{
		Name: "midpoint",
		Eval: func(c *Context, prec uint) Approx {
			*emins = append(*emins, c.Emin())
			c.Raise(FlagOverflow)
			m := new(big.Int)
			if prec-1 < 400 {
				m.Rsh(exact, 400-(prec-1))
			} else {
				m.Lsh(exact, prec-1-400)
			}
			v := New(prec)
			c.SetMantExp(v, m, -int64(prec-1), ToZero)
			return Approx{Value: v, Err: int64(prec) - 1, Dir: ToNearestEven}
		},
	}
}

func TestEscalate(t *testing.T) {
	a := assert.New(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := NewContext()
	c.Logger = logger
	a.NoError(c.SetEmin(-10))

	var emins []int64
	z := New(53)
	a.Equal(1, c.Escalate(z, ToNearestEven, midpointKernel(&emins)))
	a.Equal("0.1"+zeros(51)+"1E1", z.String())
	a.Equal(FlagInexact, c.Flags())
	a.Equal(int64(-10), c.Emin())

	// 59, 123, 184, 276 bits cannot decide, 414 can.
	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	a.Len(emins, 5)
	for i, e := range entries {
		a.Equal(logrus.DebugLevel, e.Level)
		a.Equal("midpoint", e.Data["kernel"])
		a.Equal(uint(53), e.Data["prec"])
		a.Equal(i+1, e.Data["attempt"])
	}
	a.Equal(uint(59), entries[0].Data["working"])
	a.Equal(uint(276), entries[3].Data["working"])
	for _, e := range emins {
		a.Equal(int64(ExpMin), e)
	}

	hook.Reset()
	c.ClearFlags()
	emins = nil
	a.Equal(-1, c.Escalate(z, ToZero, midpointKernel(&emins)))
	a.Equal("0.1"+zeros(52)+"E1", z.String())
	a.Equal(FlagInexact, c.Flags())
	a.Empty(hook.AllEntries())
	a.Len(emins, 1)
}

func TestEscalatePanic(t *testing.T) {
	a := assert.New(t)
	c := NewContext()
	a.NoError(c.SetEmin(-10))
	a.NoError(c.SetEmax(10))
	c.Raise(FlagUnderflow)
	bad := Kernel{
		Name: "bad",
		Eval: func(c *Context, prec uint) Approx {
			c.Raise(FlagNaN)
			panic("kernel failed")
		},
	}
	a.PanicsWithValue("kernel failed", func() { c.Escalate(New(10), ToZero, bad) })
	a.Equal(int64(-10), c.Emin())
	a.Equal(int64(10), c.Emax())
	a.Equal(FlagUnderflow, c.Flags())
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "retry", Retry.String())
}
