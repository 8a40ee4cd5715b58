// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Flags is a set of sticky exception flags.
type Flags uint8

const (
	// FlagNaN is raised when an operation produced NaN.
	FlagNaN Flags = 1 << iota
	// FlagOverflow is raised when a rounded result exceeded the exponent range.
	FlagOverflow
	// FlagUnderflow is raised when a nonzero result fell below the exponent range.
	FlagUnderflow
	// FlagInexact is raised when a result differs from the exact value.
	FlagInexact
	// FlagERange is raised by comparisons and conversions with no meaningful result.
	FlagERange
)

var flagNames = []struct {
	f    Flags
	name string
}{
	{FlagNaN, "nan"},
	{FlagOverflow, "overflow"},
	{FlagUnderflow, "underflow"},
	{FlagInexact, "inexact"},
	{FlagERange, "erange"},
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
			f &^= fn.f
		}
	}
	if f != 0 {
		parts = append(parts, fmt.Sprintf("Flags(%#x)", uint8(f)))
	}
	return strings.Join(parts, "|")
}

const (
	// ExpMin is the smallest exponent a Context can be configured with.
	ExpMin = -(1<<62 - 1)
	// ExpMax is the largest exponent a Context can be configured with.
	ExpMax = 1<<62 - 1

	// DefaultEmin is the default lower bound of the exponent range.
	DefaultEmin = 1 - 1<<30
	// DefaultEmax is the default upper bound of the exponent range.
	DefaultEmax = 1<<30 - 1
)

// Context holds the exponent range and the sticky flags shared by the
// operations performed through it.
// A Context is not safe for concurrent use: goroutines should use their own.
type Context struct {
	emin, emax int64
	flags      Flags
	// Logger receives debug entries about precision escalation.
	Logger logrus.FieldLogger
}

// Default is the context for single-threaded programs.
var Default = NewContext()

// NewContext returns a context with the default exponent range and no flags.
func NewContext() *Context {
	return &Context{
		emin:   DefaultEmin,
		emax:   DefaultEmax,
		Logger: logrus.StandardLogger(),
	}
}

// Flags returns the raised flags.
func (c *Context) Flags() Flags {
	return c.flags
}

// Test reports whether any of f is raised.
func (c *Context) Test(f Flags) bool {
	return c.flags&f != 0
}

// Raise raises f.
func (c *Context) Raise(f Flags) {
	c.flags |= f
}

// Clear clears f.
func (c *Context) Clear(f Flags) {
	c.flags &^= f
}

// ClearFlags clears all flags.
func (c *Context) ClearFlags() {
	c.flags = 0
}

// Emin returns the smallest allowed exponent.
func (c *Context) Emin() int64 {
	return c.emin
}

// Emax returns the largest allowed exponent.
func (c *Context) Emax() int64 {
	return c.emax
}

// SetEmin sets the smallest allowed exponent.
// Values already stored are not affected, see CheckRange.
func (c *Context) SetEmin(e int64) error {
	if e < ExpMin || e > ExpMax {
		return fmt.Errorf("bigfloat: emin %d outside [%d, %d]", e, int64(ExpMin), int64(ExpMax))
	}
	if e > c.emax {
		return fmt.Errorf("bigfloat: emin %d above emax %d", e, c.emax)
	}
	c.emin = e
	return nil
}

// SetEmax sets the largest allowed exponent.
// Values already stored are not affected, see CheckRange.
func (c *Context) SetEmax(e int64) error {
	if e < ExpMin || e > ExpMax {
		return fmt.Errorf("bigfloat: emax %d outside [%d, %d]", e, int64(ExpMin), int64(ExpMax))
	}
	if e < c.emin {
		return fmt.Errorf("bigfloat: emax %d below emin %d", e, c.emin)
	}
	c.emax = e
	return nil
}

func (c *Context) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}

type savedState struct {
	emin, emax int64
	flags      Flags
}

// extend saves the range and the flags, then widens the range to the hard limits.
func (c *Context) extend() savedState {
	s := savedState{emin: c.emin, emax: c.emax, flags: c.flags}
	c.emin, c.emax = ExpMin, ExpMax
	return s
}

func (c *Context) restore(s savedState) {
	c.emin, c.emax, c.flags = s.emin, s.emax, s.flags
}

// nan sets z to NaN and raises FlagNaN.
func (c *Context) nan(z *Float) int {
	z.SetNaN()
	c.flags |= FlagNaN
	return 0
}
