// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import "fmt"

// Mode selects how a result is rounded to the destination precision.
type Mode byte

const (
	// ToNearestEven rounds to the nearest representable value, ties to an even mantissa.
	ToNearestEven Mode = iota
	// ToZero truncates.
	ToZero
	// ToPositiveInf rounds toward +Inf.
	ToPositiveInf
	// ToNegativeInf rounds toward -Inf.
	ToNegativeInf
	// AwayFromZero rounds away from zero.
	AwayFromZero
)

var modeNames = [...]string{
	ToNearestEven: "ToNearestEven",
	ToZero:        "ToZero",
	ToPositiveInf: "ToPositiveInf",
	ToNegativeInf: "ToNegativeInf",
	AwayFromZero:  "AwayFromZero",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode returns the mode with the given name. Short names
// N, Z, U, D, A (MPFR letters) are accepted too.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "N", "n":
		return ToNearestEven, nil
	case "Z", "z":
		return ToZero, nil
	case "U", "u":
		return ToPositiveInf, nil
	case "D", "d":
		return ToNegativeInf, nil
	case "A", "a":
		return AwayFromZero, nil
	}
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("bigfloat: unknown rounding mode %q", s)
}

func (m Mode) valid() bool {
	return m <= AwayFromZero
}

// needsInc reports whether a truncated magnitude must be incremented by one
// unit in the last place. odd is the retained LSB, rb the first discarded bit
// and sticky the OR of the bits below it.
func (m Mode) needsInc(odd, rb, sticky, neg bool) bool {
	switch m {
	case ToNearestEven:
		return rb && (sticky || odd)
	case ToZero:
		return false
	case ToPositiveInf:
		return !neg && (rb || sticky)
	case ToNegativeInf:
		return neg && (rb || sticky)
	case AwayFromZero:
		return rb || sticky
	default:
		panic(fmt.Sprintf("bigfloat: invalid rounding mode %d", m))
	}
}

// awayFrom reports whether m rounds a value of the given sign away from zero
// when the result is inexact and not a tie.
func (m Mode) awayFrom(neg bool) bool {
	switch m {
	case ToPositiveInf:
		return !neg
	case ToNegativeInf:
		return neg
	case AwayFromZero:
		return true
	default:
		return false
	}
}
