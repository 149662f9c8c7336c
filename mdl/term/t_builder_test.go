// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guyer/teqp/scalar"
)

// a shortened GERG-2008 departure function (methane-ethane)
const gergRecord = `{
  "Name": "Methane-Ethane",
  "type": "GERG-2008",
  "Npower": 2,
  "n": [-0.00080926050298746, -0.00075381925080059, -0.041618768891219, -0.23452173681569],
  "t": [0.65, 1.55, 3.1, 5.9],
  "d": [1, 4, 1, 2],
  "eta": [0, 0, 1, 1],
  "epsilon": [0, 0, 0.5, 0.5],
  "beta": [0, 0, 1, 1],
  "gamma": [0, 0, 0.5, 0.5]
}`

func Test_build01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build01. GERG-2008 departure function")

	rec, err := ParseRecord([]byte(gergRecord))
	if err != nil {
		tst.Errorf("ParseRecord failed: %v\n", err)
		return
	}
	chk.String(tst, rec.Name, "Methane-Ethane")
	chk.Int(tst, "Npower", *rec.Npower, 2)

	terms, err := BuildDeparture(rec)
	if err != nil {
		tst.Errorf("BuildDeparture failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of terms", terms.Len(), 2)
	chk.String(tst, string(terms.At(0).Kind()), string(KindPower))
	chk.String(tst, string(terms.At(1).Kind()), string(KindGERG2004))
	chk.Int(tst, "head length", terms.At(0).Len(), 2)
	chk.Int(tst, "tail length", terms.At(1).Len(), 2)

	// the declared lengths match the constructed arrays
	lens := rec.FieldLens()
	chk.Int(tst, "n: head+tail", terms.At(0).Len()+terms.At(1).Len(), lens["n"])
	gerg := terms.At(1).(*GERG2004)
	chk.Int(tst, "eta", len(terms.At(0).(*Power).N)+len(gerg.Eta), lens["eta"])

	// value
	tau, delta := 1.1, 0.8
	correct := 0.0
	for k := 0; k < 2; k++ {
		correct += rec.N[k] * math.Pow(tau, rec.T[k]) * math.Pow(delta, rec.D[k])
	}
	for k := 2; k < 4; k++ {
		correct += rec.N[k] * math.Pow(tau, rec.T[k]) * math.Pow(delta, rec.D[k]) *
			math.Exp(-rec.Eta[k]*math.Pow(delta-rec.Epsilon[k], 2)-rec.Beta[k]*(delta-rec.Gamma[k]))
	}
	chk.Float64(tst, "αr", 1e-15, AlpharSum(terms, scalar.Real(tau), scalar.Real(delta)).Value(), correct)
}

func Test_build02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build02. Gaussian+Exponential, Exponential and none")

	np := 1
	rec := &Record{
		Type:    "Gaussian+Exponential",
		Npower:  &np,
		N:       []float64{0.1, 0.2, 0.3},
		T:       []float64{1, 2, 3},
		D:       []float64{1, 2, 3},
		L:       []float64{1, 0, 0},
		Eta:     []float64{0, 1, 1},
		Beta:    []float64{0, 1, 1},
		Gamma:   []float64{0, 1, 1},
		Epsilon: []float64{0, 1, 1},
	}
	terms, err := BuildDeparture(rec)
	if err != nil {
		tst.Errorf("BuildDeparture failed: %v\n", err)
		return
	}
	kinds := terms.Kinds()
	chk.Int(tst, "number of terms", len(kinds), 2)
	chk.String(tst, string(kinds[0]), string(KindPower))
	chk.String(tst, string(kinds[1]), string(KindGaussian))
	chk.Array(tst, "c", 1e-17, terms.At(0).(*Power).C, []float64{1})

	// Npower out of range
	np = 4
	_, err = BuildDeparture(rec)
	if err == nil {
		tst.Errorf("Npower out of range should have failed\n")
	}

	// missing Npower
	rec.Npower = nil
	_, err = BuildDeparture(rec)
	if err == nil {
		tst.Errorf("missing Npower should have failed\n")
	}

	// Exponential
	terms, err = BuildDeparture(&Record{Type: "Exponential", N: []float64{1, 2}, T: []float64{1, 1}, D: []float64{1, 2}, L: []float64{0, 1}})
	if err != nil {
		tst.Errorf("BuildDeparture failed: %v\n", err)
		return
	}
	chk.Array(tst, "c", 1e-17, terms.At(0).(*Power).C, []float64{0, 1})
	_, err = BuildDeparture(&Record{Type: "Exponential", N: []float64{1, 2}, T: []float64{1, 1}, D: []float64{1}})
	if err == nil {
		tst.Errorf("mismatched lengths should have failed\n")
	}

	// none
	terms, err = BuildDeparture(&Record{Type: "none"})
	if err != nil {
		tst.Errorf("BuildDeparture failed: %v\n", err)
		return
	}
	if !terms.IsNull() || terms.Len() != 1 {
		tst.Errorf("\"none\" must give one Null term\n")
	}

	// bad type
	_, err = BuildDeparture(&Record{Type: "GERG-2020"})
	if err == nil {
		tst.Errorf("bad type should have failed\n")
		return
	}
	if !strings.Contains(err.Error(), "Gaussian+Exponential") {
		tst.Errorf("error message should list the allowed types: %v\n", err)
	}
}

func Test_build03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build03. pure fluid terms")

	recs := []Record{
		{Type: "ResidualHelmholtzPower", N: []float64{0.5, 0.2}, T: []float64{0.25, 1}, D: []float64{1, 4}, L: []float64{0, 1}},
		{Type: "ResidualHelmholtzExponential", N: []float64{0.1}, T: []float64{1}, D: []float64{2}, G: []float64{0.5}, L: []float64{2}},
		{Type: "ResidualHelmholtzGaussian", N: []float64{0.1}, T: []float64{1}, D: []float64{2}, Eta: []float64{20}, Beta: []float64{150}, Gamma: []float64{1.2}, Epsilon: []float64{1}},
		{Type: "ResidualHelmholtzGaoB", N: []float64{0.1}, T: []float64{1}, D: []float64{2}, Eta: []float64{0.6}, Beta: []float64{0.3}, Gamma: []float64{1.2}, Epsilon: []float64{0.9}, Bsmall: []float64{1.1}},
		{Type: "ResidualHelmholtzLemmon2005", N: []float64{0.1}, T: []float64{1}, D: []float64{2}, L: []float64{1}, M: []float64{1.5}},
		{Type: "ResidualHelmholtzNonAnalytic", N: []float64{-0.1}, A: []float64{0.32}, B: []float64{0.2}, C: []float64{28}, Dcap: []float64{700}, Asmall: []float64{3.5}, Bsmall: []float64{0.85}, Beta: []float64{0.3}},
	}
	terms, err := BuildPure(recs)
	if err != nil {
		tst.Errorf("BuildPure failed: %v\n", err)
		return
	}
	kinds := []Kind{KindPower, KindExponential, KindGaussian, KindGaoB, KindLemmon2005, KindNonAnalytic}
	chk.Int(tst, "number of terms", terms.Len(), len(kinds))
	for i, k := range terms.Kinds() {
		chk.String(tst, string(k), string(kinds[i]))
	}

	// round trip of declared lengths
	for i, rec := range recs {
		for key, n := range rec.FieldLens() {
			if key == "eta" && terms.At(i).Kind() == KindGaoB {
				chk.Int(tst, "GaoB eta", len(terms.At(i).(*GaoB).Eta), n)
				continue
			}
			chk.Int(tst, io.Sf("%s: %s", rec.Type, key), terms.At(i).Len(), n)
		}
	}

	// bad type
	bad := append(recs, Record{Type: "ResidualHelmholtzXiangDeiters"})
	_, err = BuildPure(bad)
	if err == nil {
		tst.Errorf("bad type should have failed\n")
		return
	}
	for _, allowed := range AllowedPure() {
		if !strings.Contains(err.Error(), allowed) {
			tst.Errorf("error message should contain %q: %v\n", allowed, err)
		}
	}

	// non-integer exponent
	recs[0].L = []float64{0, 1.5}
	_, err = BuildPure(recs)
	if err == nil {
		tst.Errorf("non-integer l should have failed\n")
	}
}

func Test_build04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build04. fluid document")

	doc := `
INFO:
  NAME: Dummy
EOS:
  - STATES:
      reducing: {T: 190.564, rhomolar: 10139.128}
    alphar:
      - type: ResidualHelmholtzPower
        n: [1.0]
        t: [1.0]
        d: [1.0]
`
	fluid, err := ParseFluid([]byte(doc))
	if err != nil {
		tst.Errorf("ParseFluid failed: %v\n", err)
		return
	}
	Tc, vc, err := fluid.Critical()
	if err != nil {
		tst.Errorf("Critical failed: %v\n", err)
		return
	}
	chk.String(tst, fluid.Info.Name, "Dummy")
	chk.Float64(tst, "Tc", 1e-15, Tc, 190.564)
	chk.Float64(tst, "vc", 1e-15, vc, 1/10139.128)

	terms, err := BuildPure(fluid.EOS[0].Alphar)
	if err != nil {
		tst.Errorf("BuildPure failed: %v\n", err)
		return
	}
	chk.Float64(tst, "αr = τδ", 1e-15, AlpharSum(terms, scalar.Real(0.5), scalar.Real(3)).Value(), 1.5)

	_, _, err = new(Fluid).Critical()
	if err == nil {
		tst.Errorf("fluid without EOS should have failed\n")
	}
}
