// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"encoding/json"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/guyer/teqp/mdl/reducing"
	"github.com/guyer/teqp/mdl/term"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// OverrideEntry holds the replacement parameters of one pair of components
//  BIP keys: betaT, gammaT, betaV, gammaV (GERG rule) or phiT, lambdaT, phiV, lambdaV
//  (invariant rule), plus Fij
type OverrideEntry struct {
	BIP       map[string]float64 `json:"BIP" yaml:"BIP"`
	Departure term.Record        `json:"departure" yaml:"departure"`
}

// Override holds replacement parameters indexed by component indices as strings: doc["0"]["1"]
//  Only pairs (i,j) with i < j are read
type Override map[string]map[string]OverrideEntry

// ParseOverride decodes an override document from JSON or YAML
func ParseOverride(b []byte) (doc Override, err error) {
	err = yaml.Unmarshal(b, &doc)
	if err != nil {
		return nil, chk.Err("cannot decode override document: %v", err)
	}
	return
}

// check checks that all indices are in [0,n) with i < j and that all pairs are present
func (o Override) check(n int) (err error) {
	index := func(key string) (int, error) {
		k, e := strconv.Atoi(key)
		if e != nil || k < 0 || k >= n {
			return 0, chk.Err("index %q is invalid for a model with %d components", key, n)
		}
		return k, nil
	}
	for a, row := range o {
		i, err := index(a)
		if err != nil {
			return err
		}
		for b := range row {
			j, err := index(b)
			if err != nil {
				return err
			}
			if j <= i {
				return chk.Err("pair (%d,%d) must be given with the first index smaller than the second", i, j)
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, ok := o[strconv.Itoa(i)][strconv.Itoa(j)]; !ok {
				return chk.Err("pair (%d,%d) is missing in override document", i, j)
			}
		}
	}
	return
}

// entry returns the entry of pair (i,j)
func (o Override) entry(i, j int) OverrideEntry {
	return o[strconv.Itoa(i)][strconv.Itoa(j)]
}

// value returns the BIP value of pair (i,j) under key
func (o Override) value(i, j int, key string) (float64, error) {
	v, ok := o.entry(i, j).BIP[key]
	if !ok {
		return 0, chk.Err("pair (%d,%d): BIP %q is missing", i, j, key)
	}
	return v, nil
}

// values returns the BIP values of pair (i,j) under keys
func (o Override) values(i, j int, keys ...string) (res []float64, err error) {
	res = make([]float64, len(keys))
	for k, key := range keys {
		res[k], err = o.value(i, j, key)
		if err != nil {
			return nil, err
		}
	}
	return
}

// departure builds the interaction factors and departure functions of all pairs
func (o Override) departure(n int) (dep *Departure, err error) {
	F := mat.NewSymDense(n, nil)
	funcs := make([]term.Terms, n*n)
	for i := 0; i < n; i++ {
		funcs[i*n+i] = term.NewTerms(term.Null{})
		for j := i + 1; j < n; j++ {
			f, err := o.value(i, j, "Fij")
			if err != nil {
				return nil, err
			}
			F.SetSym(i, j, f)
			e := o.entry(i, j)
			terms, err := term.BuildDeparture(&e.Departure)
			if err != nil {
				return nil, chk.Err("pair (%d,%d): %v", i, j, err)
			}
			funcs[i*n+j], funcs[j*n+i] = terms, terms
		}
	}
	return NewDeparture(F, funcs)
}

// mutate builds a model sharing the corresponding states contribution of base
func (o Override) mutate(base *Model, red reducing.Reducing) (m *Model, err error) {
	dep, err := o.departure(base.NumComp())
	if err != nil {
		return
	}
	m, err = New(red, base.corr, dep)
	if err != nil {
		return
	}
	meta, err := json.Marshal(o)
	if err != nil {
		return nil, chk.Err("cannot encode override document: %v", err)
	}
	err = m.SetMeta(string(meta))
	return
}

// Mutant returns a new model with the GERG reducing function and departure functions replaced
//  The pure fluid contributions and critical properties are taken from base; base is not modified.
//  Each pair needs BIP keys betaT, gammaT, betaV, gammaV and Fij, and a departure record.
//  The lower triangle is filled with βji = 1/βij and γji = γij
func Mutant(base *Model, doc Override) (m *Model, err error) {
	n := base.NumComp()
	err = doc.check(n)
	if err != nil {
		return
	}
	red, err := reducing.NewAsymmetricFromPairs(base.red.Tc(), base.red.Vc(), func(i, j int) (p reducing.Pair, err error) {
		v, err := doc.values(i, j, "betaT", "gammaT", "betaV", "gammaV")
		if err != nil {
			return
		}
		return reducing.Pair{BetaT: v[0], GammaT: v[1], BetaV: v[2], GammaV: v[3]}, nil
	})
	if err != nil {
		return
	}
	return doc.mutate(base, red)
}

// MutantInvariant returns a new model with the invariant reducing function and departure functions replaced
//  The pure fluid contributions and critical properties are taken from base; base is not modified.
//  Each pair needs BIP keys phiT, lambdaT, phiV, lambdaV and Fij, and a departure record.
//  Only binary mixtures are supported
func MutantInvariant(base *Model, doc Override) (m *Model, err error) {
	n := base.NumComp()
	if n != 2 {
		return nil, chk.Err("invariant reducing function requires 2 components; got %d", n)
	}
	err = doc.check(n)
	if err != nil {
		return
	}
	red, err := reducing.NewInvariantFromPairs(base.red.Tc(), base.red.Vc(), func(i, j int) (p reducing.InvariantPair, err error) {
		v, err := doc.values(i, j, "phiT", "lambdaT", "phiV", "lambdaV")
		if err != nil {
			return
		}
		return reducing.InvariantPair{PhiT: v[0], LambdaT: v[1], PhiV: v[2], LambdaV: v[3]}, nil
	})
	if err != nil {
		return
	}
	return doc.mutate(base, red)
}
