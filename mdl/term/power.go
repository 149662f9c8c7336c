// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import "github.com/guyer/teqp/scalar"

// Power implements polynomial and exponential terms
//  αr = Σ n・τ^t・δ^d・exp(-c・δ^l)   with   c = 1 if l > 0 and c = 0 otherwise
type Power struct {
	N, T, D []float64 // coefficients and exponents
	C, L    []float64 // derived factor and density exponent
	Li      []int     // l as integers
}

// NewPower returns a new Power term
//  Note: l may be empty, in which case all terms are pure power terms
func NewPower(n, t, d, l []float64) (o *Power, err error) {
	l = zeros(l, len(n))
	err = checkFields("Power", field{"n", n}, field{"t", t}, field{"d", d}, field{"l", l})
	if err != nil {
		return
	}
	o = &Power{N: clone(n), T: clone(t), D: clone(d), L: clone(l), C: make([]float64, len(n))}
	o.Li, err = toInts("Power", "l", l)
	if err != nil {
		return nil, err
	}
	for k, lk := range o.Li {
		if lk > 0 {
			o.C[k] = 1
		}
	}
	return
}

func (o *Power) Kind() Kind { return KindPower }
func (o *Power) Len() int { return len(o.N) }
func (o *Power) sealed() {}

func alpharPower[T scalar.Scalar[T]](o *Power, tau, delta T) T {
	res := scalar.Zero[T]()
	for k := range o.N {
		v := monomial(o.N[k], o.T[k], o.D[k], tau, delta)
		if o.C[k] != 0 {
			v = v.Mul(delta.Powi(o.Li[k]).Scale(-o.C[k]).Exp())
		}
		res = res.Add(v)
	}
	return res
}

// Exponential implements exponential terms with an explicit decay coefficient
//  αr = Σ n・τ^t・δ^d・exp(-g・δ^l)
type Exponential struct {
	N, T, D []float64 // coefficients and exponents
	G, L    []float64 // decay coefficient and density exponent
	Li      []int     // l as integers
}

// NewExponential returns a new Exponential term
func NewExponential(n, t, d, g, l []float64) (o *Exponential, err error) {
	err = checkFields("Exponential", field{"n", n}, field{"t", t}, field{"d", d}, field{"g", g}, field{"l", l})
	if err != nil {
		return
	}
	o = &Exponential{N: clone(n), T: clone(t), D: clone(d), G: clone(g), L: clone(l)}
	o.Li, err = toInts("Exponential", "l", l)
	if err != nil {
		return nil, err
	}
	return
}

func (o *Exponential) Kind() Kind { return KindExponential }
func (o *Exponential) Len() int { return len(o.N) }
func (o *Exponential) sealed() {}

func alpharExponential[T scalar.Scalar[T]](o *Exponential, tau, delta T) T {
	res := scalar.Zero[T]()
	for k := range o.N {
		v := monomial(o.N[k], o.T[k], o.D[k], tau, delta)
		v = v.Mul(delta.Powi(o.Li[k]).Scale(-o.G[k]).Exp())
		res = res.Add(v)
	}
	return res
}

// Lemmon2005 implements the terms with two exponential families of Lemmon and Jacobsen (2005)
//  αr = Σ n・τ^t・δ^d・exp(-δ^l)・exp(-τ^m)
//  Note: the δ factor is only included if l > 0 and the τ factor if m > 0
type Lemmon2005 struct {
	N, T, D []float64 // coefficients and exponents
	L, M    []float64 // density and temperature exponents in the exponential
	Li      []int     // l as integers
}

// NewLemmon2005 returns a new Lemmon2005 term
func NewLemmon2005(n, t, d, l, m []float64) (o *Lemmon2005, err error) {
	err = checkFields("Lemmon2005", field{"n", n}, field{"t", t}, field{"d", d}, field{"l", l}, field{"m", m})
	if err != nil {
		return
	}
	o = &Lemmon2005{N: clone(n), T: clone(t), D: clone(d), L: clone(l), M: clone(m)}
	o.Li, err = toInts("Lemmon2005", "l", l)
	if err != nil {
		return nil, err
	}
	return
}

func (o *Lemmon2005) Kind() Kind { return KindLemmon2005 }
func (o *Lemmon2005) Len() int { return len(o.N) }
func (o *Lemmon2005) sealed() {}

func alpharLemmon2005[T scalar.Scalar[T]](o *Lemmon2005, tau, delta T) T {
	res := scalar.Zero[T]()
	for k := range o.N {
		v := monomial(o.N[k], o.T[k], o.D[k], tau, delta)
		if o.Li[k] > 0 {
			v = v.Mul(delta.Powi(o.Li[k]).Neg().Exp())
		}
		if o.M[k] > 0 {
			v = v.Mul(tau.Pow(o.M[k]).Neg().Exp())
		}
		res = res.Add(v)
	}
	return res
}
