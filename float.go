// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/avdva/bigfloat/internal/mathutil"
)

const (
	// MinPrec is the smallest allowed precision in bits.
	MinPrec = 2
	// MaxPrec is the largest allowed precision in bits.
	MaxPrec = 1<<31 - 1

	_W = mathutil.WordBits

	debugFloat = false
)

type form byte

const (
	nan form = iota
	zero
	regular
	inf
)

// Float is a binary floating-point number with its own precision.
//
// A regular Float represents ±0.1b₂b₃…bₚ × 2^exp, p being the precision.
// The mantissa is kept in ceil(p/W) words, most significant bit of the top
// word set, bits below the precision cleared.
// Zeros and infinities carry a sign, NaN does not.
//
// A Float is created with New and owns its mantissa storage exclusively.
// Operations overwrite their destination in place. The zero value is not
// usable, and neither is a Float after Release.
type Float struct {
	prec uint
	form form
	neg  bool
	exp  int64
	mant []big.Word
}

// New returns a NaN of the given precision.
// New panics if prec is outside [MinPrec, MaxPrec].
func New(prec uint) *Float {
	checkPrec(prec)
	return &Float{
		prec: prec,
		form: nan,
		mant: make([]big.Word, mathutil.Words(prec)),
	}
}

func checkPrec(prec uint) {
	if prec < MinPrec || prec > MaxPrec {
		panic(fmt.Sprintf("bigfloat: precision %d out of range [%d, %d]", prec, MinPrec, MaxPrec))
	}
}

func (x *Float) live() {
	if x.prec == 0 {
		panic("bigfloat: use of uninitialized or released Float")
	}
}

// SetPrec changes the precision of z, reallocating its storage if needed.
// The value of z is lost and set to NaN.
func (z *Float) SetPrec(prec uint) {
	z.live()
	checkPrec(prec)
	n := mathutil.Words(prec)
	if cap(z.mant) < n || n < len(z.mant)/2 {
		z.mant = make([]big.Word, n)
	} else {
		z.mant = z.mant[:n]
	}
	z.prec = prec
	z.form = nan
	z.neg = false
}

// Release frees the storage of x. x must not be used afterwards.
func (x *Float) Release() {
	x.live()
	x.prec = 0
	x.mant = nil
	x.form = nan
}

// Prec returns the precision of x in bits.
func (x *Float) Prec() uint {
	x.live()
	return x.prec
}

// SetNaN sets z to NaN.
func (z *Float) SetNaN() {
	z.live()
	z.form = nan
	z.neg = false
}

// SetInf sets z to -Inf if neg is set, +Inf otherwise.
func (z *Float) SetInf(neg bool) {
	z.live()
	z.form = inf
	z.neg = neg
}

// SetZero sets z to -0 if neg is set, +0 otherwise.
func (z *Float) SetZero(neg bool) {
	z.live()
	z.form = zero
	z.neg = neg
}

// IsNaN reports whether x is NaN.
func (x *Float) IsNaN() bool {
	x.live()
	return x.form == nan
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool {
	x.live()
	return x.form == inf
}

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool {
	x.live()
	return x.form == zero
}

// IsRegular reports whether x is finite and nonzero.
func (x *Float) IsRegular() bool {
	x.live()
	return x.form == regular
}

// Sign returns -1, 0 or +1 depending on the sign of x.
// Zeros and NaN return 0.
func (x *Float) Sign() int {
	x.live()
	switch {
	case x.form == nan || x.form == zero:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Signbit reports whether x is negative, including -0 and -Inf.
// It is false for NaN.
func (x *Float) Signbit() bool {
	x.live()
	return x.form != nan && x.neg
}

// Exp returns the exponent of a regular x: x = ±m × 2^Exp with 1/2 <= m < 1.
// The result is 0 for zeros, infinities and NaN.
func (x *Float) Exp() int64 {
	x.live()
	if x.form != regular {
		return 0
	}
	return x.exp
}

// MinPrec returns the minimum precision needed to represent x exactly.
// It is 0 for non-regular values.
func (x *Float) MinPrec() uint {
	x.live()
	if x.form != regular {
		return 0
	}
	m := mathutil.Get()
	defer mathutil.Put(m)
	x.decompose(m)
	return uint(m.BitLen()) - m.TrailingZeroBits()
}

// Words returns a copy of the mantissa words of x, least significant first.
// It returns nil for non-regular values.
func (x *Float) Words() []big.Word {
	x.live()
	if x.form != regular {
		return nil
	}
	return append([]big.Word(nil), x.mant...)
}

// Decompose returns x as ±mant × 2^exp with an integer mant, for external
// formatting. mant is nil for non-regular values.
func (x *Float) Decompose() (neg bool, mant *big.Int, exp int64) {
	x.live()
	if x.form != regular {
		return x.Signbit(), nil, 0
	}
	mant = new(big.Int)
	exp = x.decompose(mant)
	if trim := mant.TrailingZeroBits(); trim > 0 {
		mant.Rsh(mant, trim)
		exp += int64(trim)
	}
	return x.neg, mant, exp
}

// decompose sets m to the integer mantissa of a regular x and returns the
// exponent of its least significant word bit.
func (x *Float) decompose(m *big.Int) int64 {
	m.SetBits(append(m.Bits()[:0], x.mant...))
	return x.exp - int64(len(x.mant))*_W
}

// setMant stores q, which must have exactly z.prec significant bits, as the
// mantissa of z.
func (z *Float) setMant(q *big.Int) {
	if debugFloat && uint(q.BitLen()) != z.prec {
		panic(fmt.Sprintf("bigfloat: mantissa has %d bits, want %d", q.BitLen(), z.prec))
	}
	t := mathutil.Get()
	defer mathutil.Put(t)
	t.Lsh(q, uint(len(z.mant))*_W-z.prec)
	n := copy(z.mant, t.Bits())
	for i := n; i < len(z.mant); i++ {
		z.mant[i] = 0
	}
	if debugFloat {
		z.validate()
	}
}

// setMax sets z to the largest finite magnitude of the range, with the given sign.
func (z *Float) setMax(neg bool, emax int64) {
	for i := range z.mant {
		z.mant[i] = ^big.Word(0)
	}
	if s := uint(len(z.mant))*_W - z.prec; s > 0 {
		z.mant[0] &^= 1<<s - 1
	}
	z.form = regular
	z.neg = neg
	z.exp = emax
}

// setMin sets z to the smallest positive magnitude 0.1 × 2^emin, with the given sign.
func (z *Float) setMin(neg bool, emin int64) {
	for i := range z.mant {
		z.mant[i] = 0
	}
	z.mant[len(z.mant)-1] = 1 << (_W - 1)
	z.form = regular
	z.neg = neg
	z.exp = emin
}

func (x *Float) validate() {
	if x.form != regular {
		return
	}
	if len(x.mant) != mathutil.Words(x.prec) {
		panic(fmt.Sprintf("bigfloat: %d mantissa words for precision %d", len(x.mant), x.prec))
	}
	if x.mant[len(x.mant)-1]&(1<<(_W-1)) == 0 {
		panic("bigfloat: mantissa is not normalized")
	}
	if s := uint(len(x.mant))*_W - x.prec; s > 0 && x.mant[0]&(1<<s-1) != 0 {
		panic("bigfloat: mantissa has bits below precision")
	}
}

// String returns x in binary scientific notation, e.g. -0.1011E-1, with
// all x.Prec() mantissa bits. Special values are @NaN@, ±@Inf@, ±0.
func (x *Float) String() string {
	x.live()
	var b strings.Builder
	if x.form != nan && x.neg {
		b.WriteByte('-')
	}
	switch x.form {
	case nan:
		return "@NaN@"
	case inf:
		b.WriteString("@Inf@")
		return b.String()
	case zero:
		b.WriteByte('0')
		return b.String()
	}
	m := mathutil.Get()
	defer mathutil.Put(m)
	x.decompose(m)
	m.Rsh(m, uint(len(x.mant))*_W-x.prec)
	b.WriteString("0.")
	b.WriteString(m.Text(2))
	b.WriteByte('E')
	b.WriteString(strconv.FormatInt(x.exp, 10))
	return b.String()
}

// GoString returns a debug representation of x.
func (x *Float) GoString() string {
	return fmt.Sprintf("%s {prec: %d}", x.String(), x.prec)
}
