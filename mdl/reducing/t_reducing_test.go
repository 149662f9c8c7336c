// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reducing

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guyer/teqp/scalar"
	"gonum.org/v1/gonum/mat"
)

// methane, ethane, propane
var (
	tcTest = []float64{190.564, 305.322, 369.89}
	vcTest = []float64{1 / 10139.128, 1 / 6870.854, 1 / 5000.0}
)

func identity(i, j int) (Pair, error) { return Identity(), nil }

func Test_asym01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asym01. ideal mixing")

	red, err := NewAsymmetricFromPairs(tcTest, vcTest, identity)
	if err != nil {
		tst.Errorf("NewAsymmetricFromPairs failed: %v\n", err)
		return
	}
	chk.Int(tst, "ncomp", red.NumComp(), 3)

	z := []float64{0.2, 0.3, 0.5}
	sT, sV := 0.0, 0.0
	for i := range z {
		sT += z[i] * math.Sqrt(tcTest[i])
	}
	for i := range z {
		for j := range z {
			sV += z[i] * z[j] * combV(vcTest, i, j)
		}
	}
	zr := scalar.Reals(z)
	chk.Float64(tst, "Tr", 1e-12, Tr(red, zr).Value(), sT*sT)
	chk.Float64(tst, "ρr", 1e-9, Rhor(red, zr).Value(), 1/sV)

	// pure components
	for i := range tcTest {
		zi := make([]float64, 3)
		zi[i] = 1
		chk.Float64(tst, io.Sf("Tr(pure %d)", i), 1e-12, Tr(red, scalar.Reals(zi)).Value(), tcTest[i])
		chk.Float64(tst, io.Sf("ρr(pure %d)", i), 1e-9, Rhor(red, scalar.Reals(zi)).Value(), 1/vcTest[i])
	}
}

func Test_asym02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asym02. asymmetric parameters")

	pairs := map[[2]int]Pair{
		{0, 1}: {BetaT: 0.996336508, GammaT: 1.049707697, BetaV: 0.997547866, GammaV: 1.006617867},
		{0, 2}: {BetaT: 0.989680305, GammaT: 1.098655531, BetaV: 1.004827070, GammaV: 1.038470657},
		{1, 2}: {BetaT: 1.0, GammaT: 1.014196059, BetaV: 1.0, GammaV: 1.009102184},
	}
	red, err := NewAsymmetricFromPairs(tcTest, vcTest, func(i, j int) (Pair, error) { return pairs[[2]int{i, j}], nil })
	if err != nil {
		tst.Errorf("NewAsymmetricFromPairs failed: %v\n", err)
		return
	}

	// symmetry of stored parameters
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			pij, pji := red.Pair(i, j), red.Pair(j, i)
			chk.Float64(tst, "βT(i,j)βT(j,i)", 1e-15, pij.BetaT*pji.BetaT, 1)
			chk.Float64(tst, "βV(i,j)βV(j,i)", 1e-15, pij.BetaV*pji.BetaV, 1)
			chk.Float64(tst, "γT(i,j)-γT(j,i)", 1e-17, pij.GammaT-pji.GammaT, 0)
			chk.Float64(tst, "γV(i,j)-γV(j,i)", 1e-17, pij.GammaV-pji.GammaV, 0)
			chk.Float64(tst, "YT(i,j)", 1e-12, red.YT(i, j), pij.BetaT*pij.GammaT*math.Sqrt(tcTest[i]*tcTest[j]))
			chk.Float64(tst, "Yv(j,i)", 1e-17, red.Yv(j, i), pji.BetaV*pji.GammaV*combV(vcTest, i, j))
		}
	}

	// direct evaluation
	z := []float64{0.6, 0.3, 0.1}
	Y := func(yc []float64, beta func(i, j int) float64, yij func(i, j int) float64) float64 {
		res := 0.0
		for i := range z {
			res += z[i] * z[i] * yc[i]
			for j := i + 1; j < 3; j++ {
				b := beta(i, j)
				res += 2 * z[i] * z[j] * (z[i] + z[j]) / (b*b*z[i] + z[j]) * yij(i, j)
			}
		}
		return res
	}
	trCorrect := Y(tcTest, func(i, j int) float64 { return pairs[[2]int{i, j}].BetaT }, red.YT)
	vrCorrect := Y(vcTest, func(i, j int) float64 { return pairs[[2]int{i, j}].BetaV }, red.Yv)
	chk.Float64(tst, "Tr", 1e-12, Tr(red, scalar.Reals(z)).Value(), trCorrect)
	chk.Float64(tst, "ρr", 1e-9, Rhor(red, scalar.Reals(z)).Value(), 1/vrCorrect)

	// swapping the components gives the same result
	rev, err := NewAsymmetricFromPairs([]float64{tcTest[1], tcTest[0]}, []float64{vcTest[1], vcTest[0]}, func(i, j int) (Pair, error) {
		return red.Pair(1, 0), nil
	})
	if err != nil {
		tst.Errorf("NewAsymmetricFromPairs failed: %v\n", err)
		return
	}
	fwd, _ := NewAsymmetricFromPairs(tcTest[:2], vcTest[:2], func(i, j int) (Pair, error) { return red.Pair(0, 1), nil })
	chk.Float64(tst, "Tr swapped", 1e-12, Tr(rev, scalar.Reals([]float64{0.25, 0.75})).Value(), Tr(fwd, scalar.Reals([]float64{0.75, 0.25})).Value())
	chk.Float64(tst, "ρr swapped", 1e-9, Rhor(rev, scalar.Reals([]float64{0.25, 0.75})).Value(), Rhor(fwd, scalar.Reals([]float64{0.75, 0.25})).Value())

	// derivative with respect to z0
	dz := []scalar.Dual{scalar.NewDual(z[0], 1), scalar.NewDual(z[1], 0), scalar.NewDual(z[2], 0)}
	chk.DerivScaSca(tst, "dTr/dz0", 1e-6, Tr(red, dz).Deriv(), z[0], 1e-3, chk.Verbose, func(x float64) float64 {
		return Tr(red, scalar.Reals([]float64{x, z[1], z[2]})).Value()
	})

	// derivative of the reducing density with respect to z2
	dz = []scalar.Dual{scalar.NewDual(z[0], 0), scalar.NewDual(z[1], 0), scalar.NewDual(z[2], 1)}
	chk.DerivScaSca(tst, "dρr/dz2", 1e-5, Rhor(red, dz).Deriv(), z[2], 1e-3, chk.Verbose, func(x float64) float64 {
		return Rhor(red, scalar.Reals([]float64{z[0], z[1], x})).Value()
	})
}

func Test_asym03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("asym03. errors")

	one := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	bad := mat.NewDense(2, 2, []float64{0, 2, 2, 0})
	asym := mat.NewDense(2, 2, []float64{0, 1.1, 1.2, 0})
	Tc, vc := tcTest[:2], vcTest[:2]

	_, err := NewAsymmetric(one, one, one, one, Tc, vc)
	if err != nil {
		tst.Errorf("NewAsymmetric failed: %v\n", err)
	}
	if _, err = NewAsymmetric(bad, one, one, one, Tc, vc); err == nil {
		tst.Errorf("non-reciprocal betaT should have failed\n")
	}
	if _, err = NewAsymmetric(one, one, bad, one, Tc, vc); err == nil {
		tst.Errorf("non-reciprocal betaV should have failed\n")
	}
	if _, err = NewAsymmetric(one, asym, one, one, Tc, vc); err == nil {
		tst.Errorf("non-symmetric gammaT should have failed\n")
	}
	if _, err = NewAsymmetric(one, one, one, nil, Tc, vc); err == nil {
		tst.Errorf("missing matrix should have failed\n")
	}
	if _, err = NewAsymmetric(one, one, one, one, tcTest, vcTest); err == nil {
		tst.Errorf("wrong dimensions should have failed\n")
	}
	if _, err = NewAsymmetric(one, one, one, one, []float64{100, -1}, vc); err == nil {
		tst.Errorf("negative Tc should have failed\n")
	}
	if _, err = NewAsymmetric(one, one, one, one, Tc, vcTest); err == nil {
		tst.Errorf("mismatched Tc and vc should have failed\n")
	}
	if _, err = NewAsymmetricFromPairs(Tc, vc, func(i, j int) (Pair, error) { return Pair{}, nil }); err == nil {
		tst.Errorf("zero beta should have failed\n")
	}
}

func Test_inv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inv01. invariant reducing function")

	Tc, vc := tcTest[:2], vcTest[:2]

	// ideal parameters: same as the asymmetric rule
	ideal, err := NewInvariantFromPairs(Tc, vc, func(i, j int) (InvariantPair, error) {
		return InvariantPair{PhiT: 1, PhiV: 1}, nil
	})
	if err != nil {
		tst.Errorf("NewInvariantFromPairs failed: %v\n", err)
		return
	}
	asym, _ := NewAsymmetricFromPairs(Tc, vc, identity)
	z := scalar.Reals([]float64{0.35, 0.65})
	chk.Float64(tst, "Tr", 1e-12, Tr(ideal, z).Value(), Tr(asym, z).Value())
	chk.Float64(tst, "ρr", 1e-9, Rhor(ideal, z).Value(), Rhor(asym, z).Value())

	// general parameters
	p := InvariantPair{PhiT: 1.05, LambdaT: 0.02, PhiV: 0.98, LambdaV: -0.01}
	red, err := NewInvariantFromPairs(Tc, vc, func(i, j int) (InvariantPair, error) { return p, nil })
	if err != nil {
		tst.Errorf("NewInvariantFromPairs failed: %v\n", err)
		return
	}
	chk.Float64(tst, "λT(1,0)", 1e-17, red.Pair(1, 0).LambdaT, -p.LambdaT)
	chk.Float64(tst, "λV(1,0)", 1e-17, red.Pair(1, 0).LambdaV, -p.LambdaV)
	chk.Float64(tst, "φT(1,0)", 1e-17, red.Pair(1, 0).PhiT, p.PhiT)

	z0, z1 := 0.35, 0.65
	yT := math.Sqrt(Tc[0] * Tc[1])
	trCorrect := z0*z0*Tc[0] + z1*z1*Tc[1] + z0*z1*(p.PhiT+z1*p.LambdaT)*yT + z1*z0*(p.PhiT-z0*p.LambdaT)*yT
	chk.Float64(tst, "Tr", 1e-12, Tr(red, z).Value(), trCorrect)

	// only binary mixtures
	_, err = NewInvariantFromPairs(tcTest, vcTest, func(i, j int) (InvariantPair, error) { return p, nil })
	if err == nil {
		tst.Errorf("ternary mixture should have failed\n")
	}

	// antisymmetry is required
	phi := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	lam := mat.NewDense(2, 2, []float64{0, 0.1, 0.1, 0})
	if _, err = NewInvariant(phi, lam, phi, lam, Tc, vc); err == nil {
		tst.Errorf("symmetric lambda should have failed\n")
	}
}
