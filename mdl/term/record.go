// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// Record holds the parameters of one term (pure fluid) or of one departure function
//  The keys follow the CoolProp fluid and departure files. Keys are case sensitive:
//  "b" and "B", "d" and "D" are different fields.
type Record struct {
	Name    string    `json:"Name,omitempty" yaml:"Name,omitempty"`       // name of departure function
	Aliases []string  `json:"aliases,omitempty" yaml:"aliases,omitempty"` // other names of departure function
	Type    string    `json:"type" yaml:"type"`                           // type tag
	Npower  *int      `json:"Npower,omitempty" yaml:"Npower,omitempty"`   // number of leading power terms (composite types)
	N       []float64 `json:"n,omitempty" yaml:"n,omitempty"`             // coefficients
	T       []float64 `json:"t,omitempty" yaml:"t,omitempty"`             // temperature exponents
	D       []float64 `json:"d,omitempty" yaml:"d,omitempty"`             // density exponents
	L       []float64 `json:"l,omitempty" yaml:"l,omitempty"`             // density exponents in exponentials
	G       []float64 `json:"g,omitempty" yaml:"g,omitempty"`             // decay coefficients
	M       []float64 `json:"m,omitempty" yaml:"m,omitempty"`             // temperature exponents in exponentials
	Eta     []float64 `json:"eta,omitempty" yaml:"eta,omitempty"`         // Gaussian η
	Beta    []float64 `json:"beta,omitempty" yaml:"beta,omitempty"`       // Gaussian β; non-analytic β
	Gamma   []float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"`     // Gaussian γ
	Epsilon []float64 `json:"epsilon,omitempty" yaml:"epsilon,omitempty"` // Gaussian ε
	Bsmall  []float64 `json:"b,omitempty" yaml:"b,omitempty"`             // GaoB b; non-analytic b
	Asmall  []float64 `json:"a,omitempty" yaml:"a,omitempty"`             // non-analytic a
	A       []float64 `json:"A,omitempty" yaml:"A,omitempty"`             // non-analytic A
	B       []float64 `json:"B,omitempty" yaml:"B,omitempty"`             // non-analytic B
	C       []float64 `json:"C,omitempty" yaml:"C,omitempty"`             // non-analytic C
	Dcap    []float64 `json:"D,omitempty" yaml:"D,omitempty"`             // non-analytic D
}

// FieldLens returns the lengths of all arrays present in the record
func (o *Record) FieldLens() map[string]int {
	res := make(map[string]int)
	for _, f := range o.fields() {
		if f.v != nil {
			res[f.key] = len(f.v)
		}
	}
	return res
}

// fields returns all arrays in the record with their keys
func (o *Record) fields() []field {
	return []field{
		{"n", o.N}, {"t", o.T}, {"d", o.D}, {"l", o.L}, {"g", o.G}, {"m", o.M},
		{"eta", o.Eta}, {"beta", o.Beta}, {"gamma", o.Gamma}, {"epsilon", o.Epsilon},
		{"b", o.Bsmall}, {"a", o.Asmall}, {"A", o.A}, {"B", o.B}, {"C", o.C}, {"D", o.Dcap},
	}
}

// Fluid holds the data of one pure fluid as in the CoolProp fluid files
type Fluid struct {
	Info struct {
		Name string `json:"NAME" yaml:"NAME"`
	} `json:"INFO" yaml:"INFO"`
	EOS []FluidEOS `json:"EOS" yaml:"EOS"`
}

// FluidEOS holds one equation of state of a pure fluid
type FluidEOS struct {
	Alphar []Record `json:"alphar" yaml:"alphar"`
	States struct {
		Reducing struct {
			T        float64 `json:"T" yaml:"T"`
			Rhomolar float64 `json:"rhomolar" yaml:"rhomolar"`
		} `json:"reducing" yaml:"reducing"`
	} `json:"STATES" yaml:"STATES"`
}

// Critical returns the reducing temperature and molar volume of the first EOS
func (o *Fluid) Critical() (Tc, vc float64, err error) {
	if len(o.EOS) == 0 {
		return 0, 0, chk.Err("fluid %q has no EOS", o.Info.Name)
	}
	red := o.EOS[0].States.Reducing
	if red.T <= 0 || red.Rhomolar <= 0 {
		return 0, 0, chk.Err("fluid %q: reducing state must be positive: T=%g, rhomolar=%g", o.Info.Name, red.T, red.Rhomolar)
	}
	return red.T, 1.0 / red.Rhomolar, nil
}

// ParseRecord decodes one record from JSON or YAML
func ParseRecord(b []byte) (rec *Record, err error) {
	rec = new(Record)
	err = yaml.Unmarshal(b, rec)
	if err != nil {
		return nil, chk.Err("cannot decode term record: %v", err)
	}
	return
}

// ParseRecords decodes a list of records from JSON or YAML
func ParseRecords(b []byte) (recs []Record, err error) {
	err = yaml.Unmarshal(b, &recs)
	if err != nil {
		return nil, chk.Err("cannot decode term records: %v", err)
	}
	return
}

// ParseFluid decodes a pure fluid document from JSON or YAML
func ParseFluid(b []byte) (fluid *Fluid, err error) {
	fluid = new(Fluid)
	err = yaml.Unmarshal(b, fluid)
	if err != nil {
		return nil, chk.Err("cannot decode fluid: %v", err)
	}
	return
}
