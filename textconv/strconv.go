// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package textconv converts between bigfloat values and their text forms.
package textconv

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/avdva/bigfloat"
)

const (
	delim = '.'

	nanString = "@NaN@"
	infString = "@Inf@"
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// prepareString cleans the string from ",-,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

// ParseBinary sets z to the value of s rounded under mode and returns the
// inexact sign.
//
// s is a binary number in scientific notation, [+-][0b]b.bbb[E[+-]ddd], where
// the exponent is a decimal power of two, as printed by Float.String.
// @NaN@ and [+-]@Inf@ are accepted as well.
func ParseBinary(c *bigfloat.Context, z *bigfloat.Float, s string, mode bigfloat.Mode) (int, error) {
	s, offset, neg := prepareString(s)
	switch s {
	case "":
		return 0, fmt.Errorf("empty input")
	case nanString:
		z.SetNaN()
		return 0, nil
	case infString:
		z.SetInf(neg)
		return 0, nil
	}
	if strings.HasPrefix(s, "0b") {
		s = s[2:]
		offset += 2
	}
	mant, exp, err := parseBinaryDigits(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return 0, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return c.SetSignedMantExp(z, neg, mant, exp, mode), nil
}

// parseBinaryDigits returns the integer made of the binary digits of s and
// the power of two it is to be scaled by.
func parseBinaryDigits(s string) (mant *big.Int, exp int64, err error) {
	var b strings.Builder
	delimPos := -1
	end := len(s)
outer:
	for i, r := range s {
		switch {
		case r == '0' || r == '1':
			b.WriteRune(r)
		case r == 'e' || r == 'E':
			if exp, err = strconv.ParseInt(s[i+1:], 10, 64); err != nil {
				return nil, 0, newPosError("error parsing exponent: "+err.Error(), i+1)
			}
			if exp < bigfloat.ExpMin || exp > bigfloat.ExpMax {
				return nil, 0, newPosError("exponent out of range", i+1)
			}
			end = i
			break outer
		case r == delim:
			if delimPos != -1 {
				return nil, 0, newPosError("unexpected delimiter", i)
			}
			delimPos = b.Len()
		default:
			return nil, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if b.Len() == 0 {
		return nil, 0, newPosError("no digits", end)
	}
	if delimPos >= 0 {
		exp -= int64(b.Len() - delimPos)
	}
	mant, _ = new(big.Int).SetString(b.String(), 2)
	return mant, exp, nil
}
