// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
	"gonum.org/v1/gonum/num/hyperdual"
)

// Dual implements Scalar with first order forward-mode derivatives
//  x = Real + Emag・ϵ  with  ϵ² = 0
type Dual struct {
	dual.Number
}

// NewDual returns a dual number with value v and derivative part d
func NewDual(v, d float64) Dual {
	return Dual{dual.Number{Real: v, Emag: d}}
}

// Deriv returns the derivative (ϵ) part
func (x Dual) Deriv() float64 { return x.Emag }

func (x Dual) Add(y Dual) Dual { return Dual{dual.Add(x.Number, y.Number)} }
func (x Dual) Sub(y Dual) Dual { return Dual{dual.Sub(x.Number, y.Number)} }
func (x Dual) Mul(y Dual) Dual { return Dual{dual.Mul(x.Number, y.Number)} }
func (x Dual) Div(y Dual) Dual { return Dual{dual.Mul(x.Number, dual.Inv(y.Number))} }
func (x Dual) Neg() Dual { return Dual{dual.Scale(-1, x.Number)} }
func (x Dual) Scale(f float64) Dual { return Dual{dual.Scale(f, x.Number)} }
func (x Dual) Shift(f float64) Dual { return Dual{dual.Number{Real: x.Real + f, Emag: x.Emag}} }
func (x Dual) Pow(p float64) Dual { return Dual{dual.PowReal(x.Number, p)} }
func (x Dual) Powi(n int) Dual { return Dual{dual.PowReal(x.Number, float64(n))} }
func (x Dual) Exp() Dual { return Dual{dual.Exp(x.Number)} }
func (x Dual) Log() Dual { return Dual{dual.Log(x.Number)} }
func (x Dual) Sqrt() Dual { return Dual{dual.Sqrt(x.Number)} }
func (x Dual) Value() float64 { return x.Real }
func (x Dual) Const(v float64) Dual { return Dual{dual.Number{Real: v}} }
func (x Dual) Eval() Dual { return x }

// Cbrt computes ∛x; d∛x = dx / (3 ∛x²)
func (x Dual) Cbrt() Dual {
	c := math.Cbrt(x.Real)
	return Dual{dual.Number{Real: c, Emag: x.Emag / (3 * c * c)}}
}

// HyperDual implements Scalar with first and second order forward-mode derivatives
//  x = Real + E1mag・ϵ1 + E2mag・ϵ2 + E1E2mag・ϵ1ϵ2  with  ϵ1² = ϵ2² = 0
type HyperDual struct {
	hyperdual.Number
}

// NewHyperDual returns a hyper-dual number
func NewHyperDual(v, e1, e2, e1e2 float64) HyperDual {
	return HyperDual{hyperdual.Number{Real: v, E1mag: e1, E2mag: e2, E1E2mag: e1e2}}
}

// Deriv1 returns the ϵ1 part
func (x HyperDual) Deriv1() float64 { return x.E1mag }

// Deriv2 returns the ϵ1ϵ2 part
func (x HyperDual) Deriv2() float64 { return x.E1E2mag }

func (x HyperDual) Add(y HyperDual) HyperDual { return HyperDual{hyperdual.Add(x.Number, y.Number)} }
func (x HyperDual) Sub(y HyperDual) HyperDual { return HyperDual{hyperdual.Sub(x.Number, y.Number)} }
func (x HyperDual) Mul(y HyperDual) HyperDual { return HyperDual{hyperdual.Mul(x.Number, y.Number)} }
func (x HyperDual) Neg() HyperDual { return HyperDual{hyperdual.Scale(-1, x.Number)} }
func (x HyperDual) Scale(f float64) HyperDual { return HyperDual{hyperdual.Scale(f, x.Number)} }
func (x HyperDual) Pow(p float64) HyperDual { return HyperDual{hyperdual.PowReal(x.Number, p)} }
func (x HyperDual) Powi(n int) HyperDual { return HyperDual{hyperdual.PowReal(x.Number, float64(n))} }
func (x HyperDual) Exp() HyperDual { return HyperDual{hyperdual.Exp(x.Number)} }
func (x HyperDual) Log() HyperDual { return HyperDual{hyperdual.Log(x.Number)} }
func (x HyperDual) Sqrt() HyperDual { return HyperDual{hyperdual.Sqrt(x.Number)} }
func (x HyperDual) Value() float64 { return x.Real }
func (x HyperDual) Const(v float64) HyperDual { return HyperDual{hyperdual.Number{Real: v}} }
func (x HyperDual) Eval() HyperDual { return x }

func (x HyperDual) Div(y HyperDual) HyperDual {
	return HyperDual{hyperdual.Mul(x.Number, hyperdual.Inv(y.Number))}
}

func (x HyperDual) Shift(f float64) HyperDual {
	n := x.Number
	n.Real += f
	return HyperDual{n}
}

// Cbrt computes ∛x using f' = 1/(3 c²) and f" = -2/(9 c⁵) with c = ∛x
func (x HyperDual) Cbrt() HyperDual {
	c := math.Cbrt(x.Real)
	d1 := 1 / (3 * c * c)
	d2 := -2 / (9 * c * c * c * c * c)
	return HyperDual{hyperdual.Number{
		Real:    c,
		E1mag:   d1 * x.E1mag,
		E2mag:   d1 * x.E2mag,
		E1E2mag: d1*x.E1E2mag + d2*x.E1mag*x.E2mag,
	}}
}
