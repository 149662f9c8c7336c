// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bip

import (
	"github.com/cpmech/gosl/chk"
	"github.com/guyer/teqp/mdl/reducing"
	"github.com/guyer/teqp/mdl/term"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// DepartureCatalog holds a collection of departure function records
type DepartureCatalog []term.Record

// Find returns the departure function with the given name or alias
func (o DepartureCatalog) Find(name string) (*term.Record, error) {
	for i := range o {
		if o[i].Name == name {
			return &o[i], nil
		}
		for _, alias := range o[i].Aliases {
			if alias == name {
				return &o[i], nil
			}
		}
	}
	return nil, chk.Err("cannot find departure function named %q", name)
}

// ParseDepartures decodes a catalog of departure functions from JSON or YAML
func ParseDepartures(b []byte) (deps DepartureCatalog, err error) {
	err = yaml.Unmarshal(b, &deps)
	if err != nil {
		return nil, chk.Err("cannot decode catalog of departure functions: %v", err)
	}
	return
}

// Matrices returns the n×n matrices of GERG mixing parameters for the given components
//  Note: βT(j,i) = 1/βT(i,j), βV(j,i) = 1/βV(i,j); γT and γV are symmetric
func Matrices(cat Catalog, names []string, flags Flags) (betaT, gammaT, betaV, gammaV *mat.Dense, err error) {
	return reducing.AsymmetricMatrices(len(names), func(i, j int) (reducing.Pair, error) {
		return cat.Resolve(names[i], names[j], flags)
	})
}

// FMatrix returns the symmetric matrix of interaction factors for the given components
//  Note: the diagonal is zero; pairs without departure function have F = 0
func FMatrix(cat Catalog, names []string, flags Flags) (F *mat.SymDense, err error) {
	n := len(names)
	if n < 1 {
		return nil, chk.Err("at least one component is required")
	}
	F = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			rec, _, err := cat.Lookup(names[i], names[j], flags)
			if err != nil {
				return nil, err
			}
			if rec.Function != "" {
				F.SetSym(i, j, rec.F)
			}
		}
	}
	return
}

// DepartureMatrix returns the n×n departure functions, stored row-major
//  Note: the diagonal and the pairs without departure function hold a Null term;
//  entries (i,j) and (j,i) share the same collection
func DepartureMatrix(cat Catalog, deps DepartureCatalog, names []string, flags Flags) (funcs []term.Terms, err error) {
	n := len(names)
	if n < 1 {
		return nil, chk.Err("at least one component is required")
	}
	funcs = make([]term.Terms, n*n)
	for i := 0; i < n; i++ {
		funcs[i*n+i] = term.NewTerms(term.Null{})
		for j := i + 1; j < n; j++ {
			rec, _, err := cat.Lookup(names[i], names[j], flags)
			if err != nil {
				return nil, err
			}
			var terms term.Terms
			if rec.Function == "" {
				terms = term.NewTerms(term.Null{})
			} else {
				dep, err := deps.Find(rec.Function)
				if err != nil {
					return nil, chk.Err("pair (%q, %q): %v", names[i], names[j], err)
				}
				terms, err = term.BuildDeparture(dep)
				if err != nil {
					return nil, chk.Err("pair (%q, %q): %v", names[i], names[j], err)
				}
			}
			funcs[i*n+j] = terms
			funcs[j*n+i] = terms
		}
	}
	return
}
