// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import "github.com/guyer/teqp/scalar"

// Gaussian implements bell-shaped (critical region) terms
//  αr = Σ n・τ^t・δ^d・exp(-η・(δ-ε)² - β・(τ-γ)²)
type Gaussian struct {
	N, T, D      []float64 // coefficients and exponents
	Eta, Epsilon []float64 // density shape
	Beta, Gamma  []float64 // temperature shape
}

// NewGaussian returns a new Gaussian term
func NewGaussian(n, t, d, eta, beta, gamma, epsilon []float64) (o *Gaussian, err error) {
	err = checkFields("Gaussian", field{"n", n}, field{"t", t}, field{"d", d}, field{"eta", eta},
		field{"beta", beta}, field{"gamma", gamma}, field{"epsilon", epsilon})
	if err != nil {
		return
	}
	return &Gaussian{N: clone(n), T: clone(t), D: clone(d), Eta: clone(eta), Epsilon: clone(epsilon),
		Beta: clone(beta), Gamma: clone(gamma)}, nil
}

func (o *Gaussian) Kind() Kind { return KindGaussian }
func (o *Gaussian) Len() int { return len(o.N) }
func (o *Gaussian) sealed() {}

func alpharGaussian[T scalar.Scalar[T]](o *Gaussian, tau, delta T) T {
	res := scalar.Zero[T]()
	for k := range o.N {
		dd := delta.Shift(-o.Epsilon[k])
		dt := tau.Shift(-o.Gamma[k])
		arg := dd.Mul(dd).Scale(-o.Eta[k]).Sub(dt.Mul(dt).Scale(o.Beta[k]))
		res = res.Add(monomial(o.N[k], o.T[k], o.D[k], tau, delta).Mul(arg.Exp()))
	}
	return res
}

// GERG2004 implements the exponential terms of the GERG-2004/2008 departure functions
//  αr = Σ n・τ^t・δ^d・exp(-η・(δ-ε)² - β・(δ-γ))
type GERG2004 struct {
	N, T, D      []float64 // coefficients and exponents
	Eta, Epsilon []float64 // quadratic density shape
	Beta, Gamma  []float64 // linear density shape
}

// NewGERG2004 returns a new GERG2004 term
func NewGERG2004(n, t, d, eta, beta, gamma, epsilon []float64) (o *GERG2004, err error) {
	err = checkFields("GERG2004", field{"n", n}, field{"t", t}, field{"d", d}, field{"eta", eta},
		field{"beta", beta}, field{"gamma", gamma}, field{"epsilon", epsilon})
	if err != nil {
		return
	}
	return &GERG2004{N: clone(n), T: clone(t), D: clone(d), Eta: clone(eta), Epsilon: clone(epsilon),
		Beta: clone(beta), Gamma: clone(gamma)}, nil
}

func (o *GERG2004) Kind() Kind { return KindGERG2004 }
func (o *GERG2004) Len() int { return len(o.N) }
func (o *GERG2004) sealed() {}

func alpharGERG2004[T scalar.Scalar[T]](o *GERG2004, tau, delta T) T {
	res := scalar.Zero[T]()
	for k := range o.N {
		dd := delta.Shift(-o.Epsilon[k])
		arg := dd.Mul(dd).Scale(-o.Eta[k]).Sub(delta.Shift(-o.Gamma[k]).Scale(o.Beta[k]))
		res = res.Add(monomial(o.N[k], o.T[k], o.D[k], tau, delta).Mul(arg.Exp()))
	}
	return res
}

// GaoB implements the modified Gaussian terms of Gao et al. (ammonia)
//  αr = Σ n・τ^t・δ^d・exp(η・(δ-ε)² + 1/(β・(τ-γ)² + b))
//  Note: Eta holds the negated input value; i.e. the stored η is -η_input
type GaoB struct {
	N, T, D      []float64 // coefficients and exponents
	Eta, Epsilon []float64 // density shape (Eta is sign-flipped)
	Beta, Gamma  []float64 // temperature shape
	B            []float64 // correction coefficient
}

// NewGaoB returns a new GaoB term
//  Note: eta is given as in the published tables; it is negated here
func NewGaoB(n, t, d, eta, beta, gamma, epsilon, b []float64) (o *GaoB, err error) {
	err = checkFields("GaoB", field{"n", n}, field{"t", t}, field{"d", d}, field{"eta", eta},
		field{"beta", beta}, field{"gamma", gamma}, field{"epsilon", epsilon}, field{"b", b})
	if err != nil {
		return
	}
	o = &GaoB{N: clone(n), T: clone(t), D: clone(d), Eta: make([]float64, len(eta)), Epsilon: clone(epsilon),
		Beta: clone(beta), Gamma: clone(gamma), B: clone(b)}
	for k, v := range eta {
		o.Eta[k] = -v
	}
	return
}

func (o *GaoB) Kind() Kind { return KindGaoB }
func (o *GaoB) Len() int { return len(o.N) }
func (o *GaoB) sealed() {}

func alpharGaoB[T scalar.Scalar[T]](o *GaoB, tau, delta T) T {
	var one T
	res := scalar.Zero[T]()
	for k := range o.N {
		dd := delta.Shift(-o.Epsilon[k])
		dt := tau.Shift(-o.Gamma[k])
		den := dt.Mul(dt).Scale(o.Beta[k]).Shift(o.B[k])
		arg := dd.Mul(dd).Scale(o.Eta[k]).Add(one.Const(1).Div(den))
		res = res.Add(monomial(o.N[k], o.T[k], o.D[k], tau, delta).Mul(arg.Exp()))
	}
	return res
}
