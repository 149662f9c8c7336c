// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bip implements the lookup of binary interaction parameters and departure
// functions for pairs of components
package bip

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/guyer/teqp/mdl/reducing"
	"gopkg.in/yaml.v3"
)

// Record holds the binary interaction parameters of one pair of components
//  Note: βT and βV refer to the order (Name1, Name2)
type Record struct {
	Name1    string  `json:"Name1" yaml:"Name1"`                           // first component
	Name2    string  `json:"Name2" yaml:"Name2"`                           // second component
	BetaT    float64 `json:"betaT" yaml:"betaT"`                           // asymmetric temperature parameter
	GammaT   float64 `json:"gammaT" yaml:"gammaT"`                         // symmetric temperature parameter
	BetaV    float64 `json:"betaV" yaml:"betaV"`                           // asymmetric volume parameter
	GammaV   float64 `json:"gammaV" yaml:"gammaV"`                         // symmetric volume parameter
	F        float64 `json:"F,omitempty" yaml:"F,omitempty"`               // interaction factor of the departure function
	Function string  `json:"function,omitempty" yaml:"function,omitempty"` // name of departure function; empty means none
}

// Catalog holds a collection of binary interaction records
type Catalog []Record

// Flags holds options for the lookup of binary interaction parameters
type Flags struct {
	Estimate bool // return ideal parameters (β = γ = 1, F = 0) for pairs not in the catalog
}

// estimated returns the record used when parameters are estimated
func estimated(a, b string) Record {
	return Record{Name1: a, Name2: b, BetaT: 1, GammaT: 1, BetaV: 1, GammaV: 1, F: 0}
}

// Lookup finds the record of a pair of components; names are case insensitive
//  Output:
//   rec      -- the record as stored in the catalog
//   reversed -- the record was stored as (b, a)
func (o Catalog) Lookup(a, b string, flags Flags) (rec Record, reversed bool, err error) {
	A, B := strings.ToUpper(a), strings.ToUpper(b)
	for _, r := range o {
		n1, n2 := strings.ToUpper(r.Name1), strings.ToUpper(r.Name2)
		if A == n1 && B == n2 {
			return r, false, nil
		}
		if A == n2 && B == n1 {
			return r, true, nil
		}
	}
	if flags.Estimate {
		return estimated(a, b), false, nil
	}
	return rec, false, chk.Err("cannot match the binary pair (%q, %q)", a, b)
}

// Resolve returns the mixing parameters of the ordered pair (a, b)
//  Note: βT and βV are inverted when the pair is stored as (b, a)
func (o Catalog) Resolve(a, b string, flags Flags) (p reducing.Pair, err error) {
	rec, reversed, err := o.Lookup(a, b, flags)
	if err != nil {
		return
	}
	p = reducing.Pair{BetaT: rec.BetaT, GammaT: rec.GammaT, BetaV: rec.BetaV, GammaV: rec.GammaV}
	if reversed {
		if p.BetaT == 0 || p.BetaV == 0 {
			return p, chk.Err("pair (%q, %q): cannot invert zero betaT or betaV", a, b)
		}
		p.BetaT = 1 / p.BetaT
		p.BetaV = 1 / p.BetaV
	}
	return
}

// ParseCatalog decodes a catalog from JSON or YAML
func ParseCatalog(b []byte) (cat Catalog, err error) {
	err = yaml.Unmarshal(b, &cat)
	if err != nil {
		return nil, chk.Err("cannot decode catalog of binary interaction parameters: %v", err)
	}
	return
}
