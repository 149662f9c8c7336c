// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"github.com/cpmech/gosl/chk"
	"github.com/guyer/teqp/mdl/term"
	"github.com/guyer/teqp/scalar"
	"gonum.org/v1/gonum/mat"
)

// CorrespondingStates implements the mole-fraction weighted sum of pure fluid contributions
//  αr(τ,δ,z) = Σi zi・αr_i(τ,δ)
type CorrespondingStates struct {
	eos []term.Terms // one collection per component
}

// NewCorrespondingStates returns a new corresponding states contribution
func NewCorrespondingStates(eos []term.Terms) (o *CorrespondingStates, err error) {
	if len(eos) == 0 {
		return nil, chk.Err("at least one component is required")
	}
	for i, terms := range eos {
		if terms.Len() == 0 {
			return nil, chk.Err("component %d has no terms", i)
		}
	}
	return &CorrespondingStates{eos: append([]term.Terms{}, eos...)}, nil
}

// NumComp returns the number of components
func (o *CorrespondingStates) NumComp() int { return len(o.eos) }

// EOS returns the terms of component i
func (o *CorrespondingStates) EOS(i int) term.Terms { return o.eos[i] }

// CorrAlphar computes the corresponding states contribution
//  Note: z must hold one mole fraction per component; it panics otherwise
func CorrAlphar[T scalar.Scalar[T]](o *CorrespondingStates, tau, delta T, z []T) T {
	checkComp(len(o.eos), z)
	res := scalar.Zero[T]()
	for i := range z {
		res = res.Add(z[i].Mul(term.AlpharSum(o.eos[i], tau, delta)))
	}
	return res
}

// CorrAlpharI computes the contribution of component i alone (not weighted by zi)
func CorrAlpharI[T scalar.Scalar[T]](o *CorrespondingStates, tau, delta T, i int) T {
	return term.AlpharSum(o.eos[i], tau, delta)
}

// Departure implements the sum of pairwise departure functions
//  αr(τ,δ,z) = Σi<j zi・zj・Fij・αr_ij(τ,δ)
type Departure struct {
	n     int           // number of components
	f     *mat.SymDense // interaction factors
	funcs []term.Terms  // n×n departure functions, row-major
}

// NewDeparture returns a new departure contribution
//  Input:
//   F     -- symmetric n×n matrix of interaction factors; the diagonal is not used
//   funcs -- n×n departure functions, row-major. Entries (i,j) with i<j are required;
//            empty (j,i) entries are copied from (i,j) and an empty diagonal is set to Null
func NewDeparture(F *mat.SymDense, funcs []term.Terms) (o *Departure, err error) {
	if F == nil {
		return nil, chk.Err("matrix of interaction factors is missing")
	}
	n := F.SymmetricDim()
	if n < 1 {
		return nil, chk.Err("at least one component is required")
	}
	if len(funcs) != n*n {
		return nil, chk.Err("there must be %d×%d departure functions; got %d", n, n, len(funcs))
	}
	o = &Departure{n: n, f: mat.NewSymDense(n, nil), funcs: append([]term.Terms{}, funcs...)}
	o.f.CopySym(F)
	for i := 0; i < n; i++ {
		if o.funcs[i*n+i].Len() == 0 {
			o.funcs[i*n+i] = term.NewTerms(term.Null{})
		}
		for j := i + 1; j < n; j++ {
			if o.funcs[i*n+j].Len() == 0 {
				return nil, chk.Err("departure function of pair (%d,%d) is missing; use a Null term for no departure", i, j)
			}
			if o.funcs[j*n+i].Len() == 0 {
				o.funcs[j*n+i] = o.funcs[i*n+j]
			}
		}
	}
	return
}

// NumComp returns the number of components
func (o *Departure) NumComp() int { return o.n }

// F returns the interaction factor of pair (i,j)
func (o *Departure) F(i, j int) float64 { return o.f.At(i, j) }

// Func returns the departure function of pair (i,j)
func (o *Departure) Func(i, j int) term.Terms { return o.funcs[i*o.n+j] }

// DepAlphar computes the departure contribution
//  Note: z must hold one mole fraction per component; it panics otherwise
func DepAlphar[T scalar.Scalar[T]](o *Departure, tau, delta T, z []T) T {
	checkComp(o.n, z)
	res := scalar.Zero[T]()
	n := len(z)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			f := o.f.At(i, j)
			if f == 0 {
				continue
			}
			res = res.Add(z[i].Mul(z[j]).Scale(f).Mul(term.AlpharSum(o.funcs[i*o.n+j], tau, delta)))
		}
	}
	return res
}

// checkComp panics if z does not hold exactly n mole fractions
func checkComp[T any](n int, z []T) {
	if len(z) != n {
		chk.Panic("there must be one mole fraction per component: len(z)=%d, ncomp=%d", len(z), n)
	}
}
