// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"github.com/sirupsen/logrus"

	"github.com/avdva/bigfloat/internal/mathutil"
)

// Approx is an approximation produced by a Kernel: the exact value lies
// within 2^(Value.Exp()-Err) of Value, on the side given by Dir (see CanRound).
type Approx struct {
	Value *Float
	Err   int64
	Dir   Mode
}

// Outcome tells whether an approximation is good enough to be rounded.
type Outcome byte

const (
	// Retry means the working precision must grow.
	Retry Outcome = iota
	// Done means the approximation rounds correctly.
	Done
)

func (o Outcome) String() string {
	if o == Done {
		return "done"
	}
	return "retry"
}

// Kernel evaluates a function at a given working precision.
// Eval returns a fresh Value, which Escalate releases.
type Kernel struct {
	Name  string
	Guard uint
	Eval  func(c *Context, prec uint) Approx
}

func (c *Context) attempt(a Approx, mode Mode, prec uint) Outcome {
	if c.CanRound(a.Value, a.Err, a.Dir, mode, prec) {
		return Done
	}
	return Retry
}

// Escalate sets z to the value computed by k, correctly rounded to z's
// precision under mode, and returns the inexact sign.
//
// The kernel is evaluated at a working precision of prec + Guard + log2(prec)
// bits, raised by one word and then by half after every approximation that
// cannot be rounded. There is no limit on the number of attempts.
// While the kernel runs, the exponent range is widened to its hard limits and
// the flags it raises are discarded; only the final rounding may raise flags.
func (c *Context) Escalate(z *Float, mode Mode, k Kernel) int {
	z.live()
	a := c.converge(k, mode, z.prec)
	inex := c.Set(z, a.Value, mode)
	a.Value.Release()
	return inex
}

// converge runs k under the widened range until its approximation can be
// rounded to prec bits.
func (c *Context) converge(k Kernel, mode Mode, prec uint) Approx {
	saved := c.extend()
	defer c.restore(saved)
	w := prec + k.Guard + uint(mathutil.CeilLog2(uint64(prec)))
	for i := 1; ; i++ {
		a := k.Eval(c, w)
		if c.attempt(a, mode, prec) == Done {
			return a
		}
		c.logger().WithFields(logrus.Fields{
			"kernel":  k.Name,
			"prec":    prec,
			"working": w,
			"attempt": i,
		}).Debug("bigfloat: cannot round, raising working precision")
		a.Value.Release()
		if i == 1 {
			w += _W
		} else {
			w += w / 2
		}
	}
}
