// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reducing

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/guyer/teqp/scalar"
	"gonum.org/v1/gonum/mat"
)

// InvariantPair holds the invariant mixing parameters of one ordered pair of components
type InvariantPair struct {
	PhiT, LambdaT, PhiV, LambdaV float64
}

// Invariant implements the invariant reducing function
//  Y(z) = Σi Σj zi・zj・(φij + zj・λij)・Yij
//  with
//   YTij = √(Tci・Tcj)
//   Yvij = (∛vci + ∛vcj)³/8
//  φ is symmetric and λ antisymmetric. Only binary mixtures are supported
type Invariant struct {
	tc, vc                       []float64  // critical properties
	phiT, lambdaT, phiV, lambdaV *mat.Dense // mixing parameters
	yT, yV                       *mat.Dense // cross-coefficients (symmetric)
}

// NewInvariant returns a new invariant reducing function
func NewInvariant(phiT, lambdaT, phiV, lambdaV *mat.Dense, Tc, vc []float64) (o *Invariant, err error) {
	err = checkCritical(Tc, vc)
	if err != nil {
		return
	}
	n := len(Tc)
	if n != 2 {
		return nil, chk.Err("only binary mixtures are supported with the invariant reducing function; got %d components", n)
	}
	err = checkDims(n, []string{"phiT", "lambdaT", "phiV", "lambdaV"}, phiT, lambdaT, phiV, lambdaV)
	if err != nil {
		return
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if phiT.At(i, j) != phiT.At(j, i) || phiV.At(i, j) != phiV.At(j, i) {
				return nil, chk.Err("phiT and phiV must be symmetric; check pair (%d,%d)", i, j)
			}
			if math.Abs(lambdaT.At(i, j)+lambdaT.At(j, i)) > symTol || math.Abs(lambdaV.At(i, j)+lambdaV.At(j, i)) > symTol {
				return nil, chk.Err("lambdaT and lambdaV must be antisymmetric; check pair (%d,%d)", i, j)
			}
		}
	}
	o = &Invariant{
		tc:      clone(Tc),
		vc:      clone(vc),
		phiT:    mat.DenseCopyOf(phiT),
		lambdaT: mat.DenseCopyOf(lambdaT),
		phiV:    mat.DenseCopyOf(phiV),
		lambdaV: mat.DenseCopyOf(lambdaV),
		yT:      mat.NewDense(n, n, nil),
		yV:      mat.NewDense(n, n, nil),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			o.yT.Set(i, j, combT(Tc, i, j))
			o.yV.Set(i, j, combV(vc, i, j))
		}
	}
	return
}

// NewInvariantFromPairs returns a new invariant reducing function
//  Input:
//   pair -- returns the parameters of pair (i,j) with i < j
//  Note: the diagonal is set with φii = 1 and λii = 0; the lower triangle with
//  φji = φij and λji = -λij
func NewInvariantFromPairs(Tc, vc []float64, pair func(i, j int) (InvariantPair, error)) (o *Invariant, err error) {
	n := len(Tc)
	phiT, lambdaT := mat.NewDense(n, n, nil), mat.NewDense(n, n, nil)
	phiV, lambdaV := mat.NewDense(n, n, nil), mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		phiT.Set(i, i, 1)
		phiV.Set(i, i, 1)
		for j := i + 1; j < n; j++ {
			p, e := pair(i, j)
			if e != nil {
				return nil, e
			}
			phiT.Set(i, j, p.PhiT)
			phiT.Set(j, i, p.PhiT)
			lambdaT.Set(i, j, p.LambdaT)
			lambdaT.Set(j, i, -p.LambdaT)
			phiV.Set(i, j, p.PhiV)
			phiV.Set(j, i, p.PhiV)
			lambdaV.Set(i, j, p.LambdaV)
			lambdaV.Set(j, i, -p.LambdaV)
		}
	}
	return NewInvariant(phiT, lambdaT, phiV, lambdaV, Tc, vc)
}

// NumComp returns the number of components
func (o *Invariant) NumComp() int { return len(o.tc) }

// Tc returns a copy of the critical temperatures
func (o *Invariant) Tc() []float64 { return clone(o.tc) }

// Vc returns a copy of the critical molar volumes
func (o *Invariant) Vc() []float64 { return clone(o.vc) }

// Pair returns the parameters of the ordered pair (i,j)
func (o *Invariant) Pair(i, j int) InvariantPair {
	return InvariantPair{
		PhiT:    o.phiT.At(i, j),
		LambdaT: o.lambdaT.At(i, j),
		PhiV:    o.phiV.At(i, j),
		LambdaV: o.lambdaV.At(i, j),
	}
}

func (o *Invariant) sealed() {}

func yInvariant[T scalar.Scalar[T]](z []T, phi, lambda, yij *mat.Dense) T {
	n := len(z)
	sum := scalar.Zero[T]()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			f := z[j].Scale(lambda.At(i, j)).Shift(phi.At(i, j))
			sum = sum.Add(z[i].Mul(z[j]).Mul(f).Scale(yij.At(i, j)))
		}
	}
	return sum
}
