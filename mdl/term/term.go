// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package term implements the closed-form contributions to the residual reduced
// Helmholtz energy αr(τ,δ) of pure fluids and of binary departure functions
//  Each evaluator holds N sub-terms of the general form
//    n_k・τ^t_k・δ^d_k・g_k(τ,δ)
//  and the set of evaluators is closed: Power, Exponential, Gaussian, GERG2004,
//  GaoB, Lemmon2005, NonAnalytic and Null.
package term

import "github.com/guyer/teqp/scalar"

// Kind is the tag of a term evaluator
type Kind string

// kinds of terms
const (
	KindPower       Kind = "Power"
	KindExponential Kind = "Exponential"
	KindGaussian    Kind = "Gaussian"
	KindGERG2004    Kind = "GERG2004"
	KindGaoB        Kind = "GaoB"
	KindLemmon2005  Kind = "Lemmon2005"
	KindNonAnalytic Kind = "NonAnalytic"
	KindNull        Kind = "Null"
)

// Term defines a term evaluator. The set of implementations is closed (see Alphar)
type Term interface {
	Kind() Kind // returns the tag of this term
	Len() int   // returns the number of summed sub-terms
	sealed()
}

// Alphar evaluates one term at (τ,δ)
func Alphar[T scalar.Scalar[T]](term Term, tau, delta T) T {
	switch o := term.(type) {
	case *Power:
		return alpharPower(o, tau, delta)
	case *Exponential:
		return alpharExponential(o, tau, delta)
	case *Gaussian:
		return alpharGaussian(o, tau, delta)
	case *GERG2004:
		return alpharGERG2004(o, tau, delta)
	case *GaoB:
		return alpharGaoB(o, tau, delta)
	case *Lemmon2005:
		return alpharLemmon2005(o, tau, delta)
	case *NonAnalytic:
		return alpharNonAnalytic(o, tau, delta)
	}
	return scalar.Zero[T]()
}

// Terms holds an ordered collection of term evaluators
//  Note: Add must only be called while building the collection
type Terms struct {
	list []Term
}

// NewTerms returns a collection with the given terms
func NewTerms(terms ...Term) Terms {
	var o Terms
	for _, t := range terms {
		o.Add(t)
	}
	return o
}

// Add appends a term to the collection
func (o *Terms) Add(t Term) {
	o.list = append(o.list, t)
}

// Len returns the number of terms in the collection
func (o Terms) Len() int { return len(o.list) }

// At returns the i-th term
func (o Terms) At(i int) Term { return o.list[i] }

// Kinds returns the tags of all terms, in order
func (o Terms) Kinds() []Kind {
	res := make([]Kind, len(o.list))
	for i, t := range o.list {
		res[i] = t.Kind()
	}
	return res
}

// IsNull tells whether the collection only contains Null terms (or nothing)
func (o Terms) IsNull() bool {
	for _, t := range o.list {
		if t.Kind() != KindNull {
			return false
		}
	}
	return true
}

// AlpharSum evaluates the sum of all terms in the collection at (τ,δ)
func AlpharSum[T scalar.Scalar[T]](terms Terms, tau, delta T) T {
	res := scalar.Zero[T]()
	for _, t := range terms.list {
		res = res.Add(Alphar(t, tau, delta)).Eval()
	}
	return res
}

// Null implements the term that is identically zero
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) Len() int { return 0 }
func (Null) sealed() {}

// monomial computes n・τ^t・δ^d skipping zero exponents
func monomial[T scalar.Scalar[T]](n, t, d float64, tau, delta T) T {
	var one T
	res := one.Const(n)
	if t != 0 {
		res = res.Mul(tau.Pow(t))
	}
	if d != 0 {
		res = res.Mul(delta.Pow(d))
	}
	return res
}
