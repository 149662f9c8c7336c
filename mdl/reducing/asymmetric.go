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

// Pair holds the GERG mixing parameters of one ordered pair of components
type Pair struct {
	BetaT, GammaT, BetaV, GammaV float64
}

// Identity returns the parameters of an ideal mixing rule
func Identity() Pair {
	return Pair{BetaT: 1, GammaT: 1, BetaV: 1, GammaV: 1}
}

// Asymmetric implements the GERG reducing function
//  Y(z) = Σi zi²・Yci + 2 Σi<j zi・zj・(zi+zj)/(βij²・zi + zj)・Yij
//  with
//   YTij = βTij・γTij・√(Tci・Tcj)
//   Yvij = βvij・γvij・(∛vci + ∛vcj)³/8
//  Tr = Y(z; Tc, βT, YT) and ρr = 1/Y(z; vc, βv, Yv)
type Asymmetric struct {
	tc, vc                       []float64  // critical properties
	betaT, gammaT, betaV, gammaV *mat.Dense // mixing parameters; βji = 1/βij and γji = γij
	yT, yV                       *mat.Dense // cross-coefficients
}

// NewAsymmetric returns a new GERG reducing function
//  Note: only off-diagonal entries are used; βT and βV must satisfy βji = 1/βij,
//  γT and γV must be symmetric
func NewAsymmetric(betaT, gammaT, betaV, gammaV *mat.Dense, Tc, vc []float64) (o *Asymmetric, err error) {
	err = checkCritical(Tc, vc)
	if err != nil {
		return
	}
	n := len(Tc)
	err = checkDims(n, []string{"betaT", "gammaT", "betaV", "gammaV"}, betaT, gammaT, betaV, gammaV)
	if err != nil {
		return
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(betaT.At(i, j)*betaT.At(j, i)-1) > symTol {
				return nil, chk.Err("betaT(%d,%d) = %g must be the reciprocal of betaT(%d,%d) = %g", j, i, betaT.At(j, i), i, j, betaT.At(i, j))
			}
			if math.Abs(betaV.At(i, j)*betaV.At(j, i)-1) > symTol {
				return nil, chk.Err("betaV(%d,%d) = %g must be the reciprocal of betaV(%d,%d) = %g", j, i, betaV.At(j, i), i, j, betaV.At(i, j))
			}
			if gammaT.At(i, j) != gammaT.At(j, i) {
				return nil, chk.Err("gammaT must be symmetric: gammaT(%d,%d) = %g != gammaT(%d,%d) = %g", i, j, gammaT.At(i, j), j, i, gammaT.At(j, i))
			}
			if gammaV.At(i, j) != gammaV.At(j, i) {
				return nil, chk.Err("gammaV must be symmetric: gammaV(%d,%d) = %g != gammaV(%d,%d) = %g", i, j, gammaV.At(i, j), j, i, gammaV.At(j, i))
			}
		}
	}
	o = &Asymmetric{
		tc:     clone(Tc),
		vc:     clone(vc),
		betaT:  mat.DenseCopyOf(betaT),
		gammaT: mat.DenseCopyOf(gammaT),
		betaV:  mat.DenseCopyOf(betaV),
		gammaV: mat.DenseCopyOf(gammaV),
		yT:     mat.NewDense(n, n, nil),
		yV:     mat.NewDense(n, n, nil),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			o.yT.Set(i, j, betaT.At(i, j)*gammaT.At(i, j)*combT(Tc, i, j))
			o.yV.Set(i, j, betaV.At(i, j)*gammaV.At(i, j)*combV(vc, i, j))
		}
	}
	return
}

// NewAsymmetricFromPairs returns a new GERG reducing function
//  Input:
//   pair -- returns the parameters of pair (i,j) with i < j
//  Note: the lower triangle is filled with βji = 1/βij and γji = γij
func NewAsymmetricFromPairs(Tc, vc []float64, pair func(i, j int) (Pair, error)) (o *Asymmetric, err error) {
	betaT, gammaT, betaV, gammaV, err := AsymmetricMatrices(len(Tc), pair)
	if err != nil {
		return
	}
	return NewAsymmetric(betaT, gammaT, betaV, gammaV, Tc, vc)
}

// AsymmetricMatrices allocates and fills the n×n matrices of GERG mixing parameters
//  Note: diagonal entries are zero
func AsymmetricMatrices(n int, pair func(i, j int) (Pair, error)) (betaT, gammaT, betaV, gammaV *mat.Dense, err error) {
	if n < 1 {
		return nil, nil, nil, nil, chk.Err("at least one component is required")
	}
	betaT, gammaT = mat.NewDense(n, n, nil), mat.NewDense(n, n, nil)
	betaV, gammaV = mat.NewDense(n, n, nil), mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p, e := pair(i, j)
			if e != nil {
				return nil, nil, nil, nil, e
			}
			if p.BetaT == 0 || p.BetaV == 0 {
				return nil, nil, nil, nil, chk.Err("pair (%d,%d): betaT and betaV must be non-zero", i, j)
			}
			betaT.Set(i, j, p.BetaT)
			betaT.Set(j, i, 1/p.BetaT)
			gammaT.Set(i, j, p.GammaT)
			gammaT.Set(j, i, p.GammaT)
			betaV.Set(i, j, p.BetaV)
			betaV.Set(j, i, 1/p.BetaV)
			gammaV.Set(i, j, p.GammaV)
			gammaV.Set(j, i, p.GammaV)
		}
	}
	return
}

// NumComp returns the number of components
func (o *Asymmetric) NumComp() int { return len(o.tc) }

// Tc returns a copy of the critical temperatures
func (o *Asymmetric) Tc() []float64 { return clone(o.tc) }

// Vc returns a copy of the critical molar volumes
func (o *Asymmetric) Vc() []float64 { return clone(o.vc) }

// Pair returns the parameters of the ordered pair (i,j)
func (o *Asymmetric) Pair(i, j int) Pair {
	return Pair{
		BetaT:  o.betaT.At(i, j),
		GammaT: o.gammaT.At(i, j),
		BetaV:  o.betaV.At(i, j),
		GammaV: o.gammaV.At(i, j),
	}
}

// YT returns the temperature cross-coefficient of the ordered pair (i,j)
func (o *Asymmetric) YT(i, j int) float64 { return o.yT.At(i, j) }

// Yv returns the volume cross-coefficient of the ordered pair (i,j)
func (o *Asymmetric) Yv(i, j int) float64 { return o.yV.At(i, j) }

func (o *Asymmetric) sealed() {}

func yAsymmetric[T scalar.Scalar[T]](z []T, yc []float64, beta, yij *mat.Dense) T {
	n := len(z)
	sum1 := scalar.Zero[T]()
	for i := 0; i < n; i++ {
		sum1 = sum1.Add(z[i].Mul(z[i]).Scale(yc[i]))
	}
	sum2 := scalar.Zero[T]()
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if z[i].Value() == 0 && z[j].Value() == 0 {
				continue
			}
			b := beta.At(i, j)
			num := z[i].Mul(z[j]).Mul(z[i].Add(z[j]))
			den := z[i].Scale(b * b).Add(z[j])
			sum2 = sum2.Add(num.Div(den).Scale(2 * yij.At(i, j)))
		}
	}
	return sum1.Add(sum2)
}
