// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mixture implements the multi-fluid model of the residual Helmholtz energy
//  αr(τ,δ,z) = Σi zi・αr_i(τ,δ) + Σi<j zi・zj・Fij・αr_ij(τ,δ)
//  with τ = Tr(z)/T and δ = ρ/ρr(z) given by a reducing function
//  A Model is immutable after construction and may be evaluated concurrently
package mixture

import (
	"github.com/cpmech/gosl/chk"
	"github.com/guyer/teqp/mdl/reducing"
	"github.com/guyer/teqp/scalar"
)

// Model implements the multi-fluid mixture model
type Model struct {
	red     reducing.Reducing    // reducing function
	corr    *CorrespondingStates // pure fluid contributions; may be shared with other models
	dep     *Departure           // departure contributions
	meta    string               // metadata
	metaSet bool                 // SetMeta was called
}

// New returns a new mixture model
func New(red reducing.Reducing, corr *CorrespondingStates, dep *Departure) (o *Model, err error) {
	if red == nil || corr == nil || dep == nil {
		return nil, chk.Err("reducing function, corresponding states and departure contributions are required")
	}
	n := red.NumComp()
	if corr.NumComp() != n || dep.NumComp() != n {
		return nil, chk.Err("number of components must match: reducing=%d, corresponding states=%d, departure=%d", n, corr.NumComp(), dep.NumComp())
	}
	return &Model{red: red, corr: corr, dep: dep}, nil
}

// NumComp returns the number of components
func (o *Model) NumComp() int { return o.red.NumComp() }

// Reducing returns the reducing function
func (o *Model) Reducing() reducing.Reducing { return o.red }

// Corr returns the corresponding states contribution
func (o *Model) Corr() *CorrespondingStates { return o.corr }

// Dep returns the departure contribution
func (o *Model) Dep() *Departure { return o.dep }

// Meta returns the metadata string; empty if never set
func (o *Model) Meta() string { return o.meta }

// SetMeta sets the metadata string. It can only be called once
func (o *Model) SetMeta(meta string) (err error) {
	if o.metaSet {
		return chk.Err("metadata has already been set")
	}
	o.meta, o.metaSet = meta, true
	return
}

// Tau computes the reciprocal reduced temperature τ = Tr(z)/T
func Tau[T scalar.Scalar[T]](o *Model, temp T, z []T) T {
	checkComp(o.NumComp(), z)
	return reducing.Tr(o.red, z).Eval().Div(temp).Eval()
}

// Delta computes the reduced density δ = ρ/ρr(z)
func Delta[T scalar.Scalar[T]](o *Model, rho T, z []T) T {
	checkComp(o.NumComp(), z)
	return rho.Div(reducing.Rhor(o.red, z).Eval()).Eval()
}

// Alphar computes the residual Helmholtz energy αr from temperature, molar density and mole fractions
//  Note: z must hold one mole fraction per component; it panics otherwise
func Alphar[T scalar.Scalar[T]](o *Model, temp, rho T, z []T) T {
	tau := Tau(o, temp, z)
	delta := Delta(o, rho, z)
	corr := CorrAlphar(o.corr, tau, delta, z).Eval()
	dep := DepAlphar(o.dep, tau, delta, z).Eval()
	return corr.Add(dep).Eval()
}

// AlpharRhovec computes αr from temperature and molar concentrations; ρ = Σ ρi
func AlpharRhovec[T scalar.Scalar[T]](o *Model, temp T, rhovec []T) T {
	return AlpharRhovecTotal(o, temp, rhovec, scalar.Sum(rhovec).Eval())
}

// AlpharRhovecTotal computes αr from temperature and molar concentrations with a given total density
//  Note: rhotot must equal Σ ρi; it is not checked
func AlpharRhovecTotal[T scalar.Scalar[T]](o *Model, temp T, rhovec []T, rhotot T) T {
	z := make([]T, len(rhovec))
	for i, r := range rhovec {
		z[i] = r.Div(rhotot).Eval()
	}
	return Alphar(o, temp, rhotot, z)
}
