// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigfloat

import (
	"math/big"

	"github.com/avdva/bigfloat/internal/mathutil"
)

var (
	piKernel = Kernel{
		Name:  "pi",
		Guard: 16,
		Eval: func(c *Context, prec uint) Approx {
			// Machin: pi = 16·atan(1/5) - 4·atan(1/239).
			scale := prec + 8
			a, b := mathutil.Get(), mathutil.Get()
			defer mathutil.Put(a, b)
			ea := arctanSeries(a, bigOne, big.NewInt(5), scale, true)
			eb := arctanSeries(b, bigOne, big.NewInt(239), scale, true)
			a.Lsh(a, 4)
			b.Lsh(b, 2)
			a.Sub(a, b)
			ea.Lsh(ea, 4)
			eb.Lsh(eb, 2)
			return c.fixedApprox(a, scale, ea.Add(ea, eb))
		},
	}

	log2Kernel = Kernel{
		Name:  "log2",
		Guard: 8,
		Eval: func(c *Context, prec uint) Approx {
			scale := prec + 4
			v := mathutil.Get()
			defer mathutil.Put(v)
			err := ln2Fixed(v, scale)
			return c.fixedApprox(v, scale, err)
		},
	}
)

// Pi sets z to pi rounded under mode and returns the inexact sign.
func (c *Context) Pi(z *Float, mode Mode) int {
	return c.Escalate(z, mode, piKernel)
}

// Log2 sets z to the natural logarithm of 2 rounded under mode and returns
// the inexact sign.
func (c *Context) Log2(z *Float, mode Mode) int {
	return c.Escalate(z, mode, log2Kernel)
}
