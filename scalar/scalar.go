// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package scalar defines the numeric capability used by all energy functions
//  Every algorithm in mdl/... is written once against Scalar[T] and then
//  instantiated with plain reals or automatic-differentiation numbers.
package scalar

import "math"

// Scalar defines the operations required from a numeric type T
//  Note: Const and Eval ignore (or copy) the receiver; they exist so that generic
//  code can lift constants and collapse intermediate values without knowing T
type Scalar[T any] interface {
	Add(y T) T         // x + y
	Sub(y T) T         // x - y
	Mul(y T) T         // x * y
	Div(y T) T         // x / y
	Neg() T            // -x
	Scale(f float64) T // f * x
	Shift(f float64) T // x + f
	Pow(p float64) T   // x^p with real exponent
	Powi(n int) T      // x^n with integer exponent
	Exp() T            // exp(x)
	Log() T            // ln(x)
	Sqrt() T           // √x
	Cbrt() T           // ∛x
	Value() float64    // real part; used for comparisons
	Const(v float64) T // returns v as a T
	Eval() T           // forces evaluation
}

// Zero returns the zero value of type T
func Zero[T Scalar[T]]() T {
	var x T
	return x.Const(0)
}

// Lift converts float64 values into T values
func Lift[T Scalar[T]](v []float64) []T {
	var x T
	res := make([]T, len(v))
	for i, val := range v {
		res[i] = x.Const(val)
	}
	return res
}

// Sum returns the sum of all values in v
func Sum[T Scalar[T]](v []T) (res T) {
	res = Zero[T]()
	for _, x := range v {
		res = res.Add(x)
	}
	return
}

// Real implements Scalar with a float64
type Real float64

// Reals converts a slice of float64 into a slice of Real
func Reals(v []float64) []Real {
	res := make([]Real, len(v))
	for i, val := range v {
		res[i] = Real(val)
	}
	return res
}

func (x Real) Add(y Real) Real { return x + y }
func (x Real) Sub(y Real) Real { return x - y }
func (x Real) Mul(y Real) Real { return x * y }
func (x Real) Div(y Real) Real { return x / y }
func (x Real) Neg() Real { return -x }
func (x Real) Scale(f float64) Real { return Real(f) * x }
func (x Real) Shift(f float64) Real { return x + Real(f) }
func (x Real) Pow(p float64) Real { return Real(math.Pow(float64(x), p)) }
func (x Real) Exp() Real { return Real(math.Exp(float64(x))) }
func (x Real) Log() Real { return Real(math.Log(float64(x))) }
func (x Real) Sqrt() Real { return Real(math.Sqrt(float64(x))) }
func (x Real) Cbrt() Real { return Real(math.Cbrt(float64(x))) }
func (x Real) Value() float64 { return float64(x) }
func (x Real) Const(v float64) Real { return Real(v) }
func (x Real) Eval() Real { return x }

// Powi computes x^n by repeated squaring
func (x Real) Powi(n int) Real {
	if n < 0 {
		return 1 / x.Powi(-n)
	}
	res := Real(1)
	for n > 0 {
		if n&1 == 1 {
			res *= x
		}
		x *= x
		n >>= 1
	}
	return res
}
