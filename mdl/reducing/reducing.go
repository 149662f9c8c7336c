// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package reducing implements mixing rules that map mole fractions to the reducing
// temperature Tr(z) and reducing density ρr(z) of a mixture
//  Two rules are available:
//   Asymmetric -- the GERG rule with asymmetric βT, βV and symmetric γT, γV
//   Invariant  -- the invariant rule with symmetric φ and antisymmetric λ (binary mixtures only)
package reducing

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/guyer/teqp/scalar"
	"gonum.org/v1/gonum/mat"
)

// tolerance used to check the symmetry of the pair matrices
const symTol = 1e-12

// Reducing defines a reducing function. The set of implementations is closed (see Tr and Rhor)
type Reducing interface {
	NumComp() int  // number of components
	Tc() []float64 // critical temperatures (copy)
	Vc() []float64 // critical molar volumes (copy)
	sealed()
}

// Tr computes the reducing temperature
func Tr[T scalar.Scalar[T]](r Reducing, z []T) T {
	switch o := r.(type) {
	case *Asymmetric:
		return yAsymmetric(z, o.tc, o.betaT, o.yT)
	case *Invariant:
		return yInvariant(z, o.phiT, o.lambdaT, o.yT)
	}
	return scalar.Zero[T]()
}

// Rhor computes the reducing molar density
func Rhor[T scalar.Scalar[T]](r Reducing, z []T) T {
	var one T
	switch o := r.(type) {
	case *Asymmetric:
		return one.Const(1).Div(yAsymmetric(z, o.vc, o.betaV, o.yV))
	case *Invariant:
		return one.Const(1).Div(yInvariant(z, o.phiV, o.lambdaV, o.yV))
	}
	return scalar.Zero[T]()
}

// checkCritical checks the critical properties
func checkCritical(Tc, vc []float64) error {
	if len(Tc) == 0 {
		return chk.Err("at least one component is required")
	}
	if len(Tc) != len(vc) {
		return chk.Err("Tc and vc must have the same length: %d != %d", len(Tc), len(vc))
	}
	for i := range Tc {
		if Tc[i] <= 0 || vc[i] <= 0 {
			return chk.Err("critical properties of component %d must be positive: Tc=%g, vc=%g", i, Tc[i], vc[i])
		}
	}
	return nil
}

// checkDims checks that all matrices are n×n
func checkDims(n int, names []string, ms ...*mat.Dense) error {
	for k, m := range ms {
		if m == nil {
			return chk.Err("matrix %s is missing", names[k])
		}
		r, c := m.Dims()
		if r != n || c != n {
			return chk.Err("matrix %s must be %d×%d; got %d×%d", names[k], n, n, r, c)
		}
	}
	return nil
}

// combT returns the geometric mean of critical temperatures
func combT(Tc []float64, i, j int) float64 {
	return math.Sqrt(Tc[i] * Tc[j])
}

// combV returns the cube-mean of critical volumes: (∛vi + ∛vj)³ / 8
func combV(vc []float64, i, j int) float64 {
	s := math.Cbrt(vc[i]) + math.Cbrt(vc[j])
	return s * s * s / 8.0
}

// clone returns a copy of v
func clone(v []float64) []float64 {
	return append([]float64{}, v...)
}
