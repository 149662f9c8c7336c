// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import "github.com/guyer/teqp/scalar"

// NonAnalytic implements the non-analytic critical region terms of Span and Wagner (1996)
//  αr = Σ n・Δ^b・δ・Ψ
//  Δ  = θ² + B・((δ-1)²)^a
//  θ  = (1-τ) + A・((δ-1)²)^(1/(2β))
//  Ψ  = exp(-C・(δ-1)² - D・(τ-1)²)
type NonAnalytic struct {
	N          []float64 // coefficients
	A, B       []float64 // distance function coefficients
	C, D       []float64 // Ψ coefficients
	AExp, BExp []float64 // the lower-case a and b exponents of the distance function
	Beta       []float64 // exponent in θ
}

// NewNonAnalytic returns a new NonAnalytic term
//  Input:
//   capA, capB, capC, capD -- the A, B, C, D coefficients
//   a, b, beta             -- the lower-case exponents
func NewNonAnalytic(n, capA, capB, capC, capD, a, b, beta []float64) (o *NonAnalytic, err error) {
	err = checkFields("NonAnalytic", field{"n", n}, field{"A", capA}, field{"B", capB}, field{"C", capC},
		field{"D", capD}, field{"a", a}, field{"b", b}, field{"beta", beta})
	if err != nil {
		return
	}
	return &NonAnalytic{N: clone(n), A: clone(capA), B: clone(capB), C: clone(capC), D: clone(capD),
		AExp: clone(a), BExp: clone(b), Beta: clone(beta)}, nil
}

func (o *NonAnalytic) Kind() Kind { return KindNonAnalytic }
func (o *NonAnalytic) Len() int { return len(o.N) }
func (o *NonAnalytic) sealed() {}

func alpharNonAnalytic[T scalar.Scalar[T]](o *NonAnalytic, tau, delta T) T {
	res := scalar.Zero[T]()
	dm1 := delta.Shift(-1)
	dm1sq := dm1.Mul(dm1)
	tm1 := tau.Shift(-1)
	if dm1sq.Value() == 0 && tm1.Value() == 0 {
		return res
	}
	for k := range o.N {
		theta := tau.Neg().Shift(1).Add(dm1sq.Pow(1 / (2 * o.Beta[k])).Scale(o.A[k]))
		dist := theta.Mul(theta).Add(dm1sq.Pow(o.AExp[k]).Scale(o.B[k]))
		if dist.Value() == 0 {
			continue
		}
		psi := dm1sq.Scale(-o.C[k]).Sub(tm1.Mul(tm1).Scale(o.D[k])).Exp()
		res = res.Add(dist.Pow(o.BExp[k]).Mul(delta).Mul(psi).Scale(o.N[k]))
	}
	return res
}
