// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/diff/fd"
)

// fcn is a generic test function exercising every operation
func fcn[T Scalar[T]](x T) T {
	a := x.Mul(x).Scale(2).Shift(1)
	b := a.Div(x.Shift(3)).Sub(x.Neg())
	c := x.Pow(1.5).Add(x.Powi(3)).Exp()
	d := x.Sqrt().Mul(x.Cbrt()).Log()
	return b.Add(c.Scale(0.1)).Add(d).Eval()
}

func fcnF(x float64) float64 {
	a := 2*x*x + 1
	b := a/(x+3) + x
	c := math.Exp(math.Pow(x, 1.5) + x*x*x)
	d := math.Log(math.Sqrt(x) * math.Cbrt(x))
	return b + 0.1*c + d
}

func Test_real01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("real01")

	for _, x := range []float64{0.3, 0.7, 1.1} {
		chk.Float64(tst, "fcn", 1e-14, fcn(Real(x)).Value(), fcnF(x))
	}

	chk.Float64(tst, "powi(2,10)", 1e-15, Real(2).Powi(10).Value(), 1024)
	chk.Float64(tst, "powi(2,-2)", 1e-15, Real(2).Powi(-2).Value(), 0.25)
	chk.Float64(tst, "powi(3,0)", 1e-15, Real(3).Powi(0).Value(), 1)

	chk.Float64(tst, "sum", 1e-15, Sum(Reals([]float64{1, 2, 3.5})).Value(), 6.5)
	chk.Float64(tst, "zero", 1e-15, Zero[Real]().Value(), 0)
	v := Lift[Dual]([]float64{1, 2})
	chk.Float64(tst, "lift", 1e-15, v[1].Value(), 2)
	chk.Float64(tst, "lift: no derivative", 1e-15, v[1].Deriv(), 0)
}

func Test_dual01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dual01")

	for _, x := range []float64{0.3, 0.7, 1.1} {
		res := fcn(NewDual(x, 1))
		chk.Float64(tst, "dual: value", 1e-14, res.Value(), fcnF(x))
		chk.DerivScaSca(tst, "dual: dfdx", 1e-8, res.Deriv(), x, 1e-3, chk.Verbose, fcnF)
	}
}

func Test_hyperdual01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyperdual01")

	for _, x := range []float64{0.3, 0.7, 1.1} {
		res := fcn(NewHyperDual(x, 1, 1, 0))
		d2 := fd.Derivative(fcnF, x, &fd.Settings{Formula: fd.Central2nd})
		chk.Float64(tst, "hyperdual: value", 1e-14, res.Value(), fcnF(x))
		chk.DerivScaSca(tst, "hyperdual: dfdx", 1e-8, res.Deriv1(), x, 1e-3, chk.Verbose, fcnF)
		chk.Float64(tst, "hyperdual: d2fdx2", 1e-3, res.Deriv2(), d2)
	}
}
