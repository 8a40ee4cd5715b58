// Package mathutil contains big integer helpers.
package mathutil

import (
	"math/big"
	"math/bits"
	"sync"
)

// WordBits is the width of one mantissa limb.
const WordBits = bits.UintSize

// DivMode selects how DivRem rounds the quotient.
type DivMode int

const (
	// Trunc rounds the quotient toward zero, the remainder has the sign of the dividend.
	Trunc DivMode = iota
	// Floor rounds the quotient toward -Inf, the remainder has the sign of the divisor.
	Floor
)

var pool = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

// Get obtains a zeroed integer from the pool.
func Get() *big.Int {
	return pool.Get().(*big.Int).SetInt64(0)
}

// Put returns integers to the pool.
func Put(xs ...*big.Int) {
	for _, x := range xs {
		if x != nil {
			pool.Put(x)
		}
	}
}

// DivRem sets q and r to the quotient and remainder of a/b rounded according to mode.
// q and r must be distinct and must not alias b.
func DivRem(q, r, a, b *big.Int, mode DivMode) {
	switch mode {
	case Floor:
		// big.Int.DivMod is euclidean, the remainder is never negative.
		q.DivMod(a, b, r)
		if r.Sign() != 0 && b.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
			r.Add(r, b)
		}
	default:
		q.QuoRem(a, b, r)
	}
}

// PowMod sets z = base^exp mod m. m must be positive.
func PowMod(z, base, exp, m *big.Int) *big.Int {
	return z.Exp(base, exp, m)
}

// Pow2Mod sets z = 2^n mod m. m must be positive.
func Pow2Mod(z *big.Int, n uint64, m *big.Int) *big.Int {
	base, e := Get(), Get()
	defer Put(base, e)
	base.SetInt64(2)
	e.SetUint64(n)
	return PowMod(z, base, e, m)
}

// ScanLowZeroBits returns the number of consecutive zero bits at the bottom of |x|.
// It returns 0 for x == 0.
func ScanLowZeroBits(x *big.Int) uint {
	return x.TrailingZeroBits()
}

// Abs sets z = |x|.
func Abs(z, x *big.Int) *big.Int {
	return z.Abs(x)
}

// CmpAbs compares |x| and |y|.
func CmpAbs(x, y *big.Int) int {
	return x.CmpAbs(y)
}

// Sticky reports whether any of the n low bits of |x| is set.
func Sticky(x *big.Int, n uint) bool {
	if n == 0 || x.Sign() == 0 {
		return false
	}
	return x.TrailingZeroBits() < n
}

// LowBits sets z to |x| mod 2^n.
func LowBits(z, x *big.Int, n uint) *big.Int {
	mask := Get()
	defer Put(mask)
	mask.Lsh(big.NewInt(1), n)
	mask.Sub(mask, big.NewInt(1))
	z.Abs(x)
	return z.And(z, mask)
}

// Words returns the number of limbs needed for prec bits.
func Words(prec uint) int {
	return int((prec + WordBits - 1) / WordBits)
}

// BinaryDigits returns the number of significant bits in value.
func BinaryDigits(value uint64) int {
	return 64 - bits.LeadingZeros64(value)
}

// CeilLog2 returns the smallest k such that 2^k >= v. CeilLog2(0) == CeilLog2(1) == 0.
func CeilLog2(v uint64) int {
	if v <= 1 {
		return 0
	}
	return BinaryDigits(v - 1)
}

// CeilLog2Int is CeilLog2 for an arbitrary nonnegative integer.
func CeilLog2Int(x *big.Int) int {
	n := x.BitLen()
	if n <= 1 {
		return 0
	}
	if x.TrailingZeroBits() == uint(n-1) { // power of two
		return n - 1
	}
	return n
}

// AbsInt64 returns |val|.
func AbsInt64(val int64) int64 {
	mask := val >> 63
	return (val + mask) ^ mask
}

