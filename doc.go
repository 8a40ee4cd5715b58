// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bigfloat implements arbitrary-precision binary floating-point
// numbers with correctly rounded results.
//
// Every Float has its own precision in bits. Operations are methods of a
// Context, which holds the exponent range and the sticky exception flags,
// and return the sign of the rounding error: -1 if the stored result is below
// the exact value, +1 if above, 0 if exact.
//
//	c := bigfloat.NewContext()
//	x, y, z := bigfloat.New(53), bigfloat.New(53), bigfloat.New(24)
//	c.SetInt64(x, 1, bigfloat.ToNearestEven)
//	c.SetInt64(y, 3, bigfloat.ToNearestEven)
//	inex := c.Quo(z, x, y, bigfloat.ToNearestEven)
//
// Functions with no closed-form error bound, such as Log or Atanh, are
// computed by Escalate, which raises the working precision until the result
// is known to round correctly.
package bigfloat
