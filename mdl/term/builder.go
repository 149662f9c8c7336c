// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// builder appends the terms described by a record to a collection
type builder func(rec *Record, terms *Terms) error

// pureBuilders holds the builders of pure fluid terms; type => builder
var pureBuilders = map[string]builder{}

// departureBuilders holds the builders of departure functions; type => builder
var departureBuilders = map[string]builder{}

// AllowedPure returns the accepted type tags of pure fluid terms
func AllowedPure() []string { return keys(pureBuilders) }

// AllowedDeparture returns the accepted type tags of departure functions
func AllowedDeparture() []string { return keys(departureBuilders) }

// BuildPure builds the collection of terms of a pure fluid
//  Note: all type tags are checked before any term is built
func BuildPure(recs []Record) (terms Terms, err error) {
	for _, rec := range recs {
		if _, ok := pureBuilders[rec.Type]; !ok {
			return terms, chk.Err("bad term type %q; allowed types are: {%s}", rec.Type, strings.Join(AllowedPure(), ","))
		}
	}
	for i := range recs {
		err = pureBuilders[recs[i].Type](&recs[i], &terms)
		if err != nil {
			return Terms{}, chk.Err("term #%d (%s): %v", i, recs[i].Type, err)
		}
	}
	return
}

// BuildDeparture builds the collection of terms of a departure function
func BuildDeparture(rec *Record) (terms Terms, err error) {
	build, ok := departureBuilders[rec.Type]
	if !ok {
		return terms, chk.Err("bad departure term type %q; allowed types are: {%s}", rec.Type, strings.Join(AllowedDeparture(), ","))
	}
	err = build(rec, &terms)
	if err != nil {
		if rec.Name != "" {
			return Terms{}, chk.Err("departure function %q: %v", rec.Name, err)
		}
		return Terms{}, err
	}
	return
}

// add builders to factories
func init() {
	pureBuilders["ResidualHelmholtzPower"] = buildPower
	pureBuilders["ResidualHelmholtzExponential"] = func(rec *Record, terms *Terms) error {
		t, err := NewExponential(rec.N, rec.T, rec.D, rec.G, rec.L)
		if err != nil {
			return err
		}
		terms.Add(t)
		return nil
	}
	pureBuilders["ResidualHelmholtzGaussian"] = func(rec *Record, terms *Terms) error {
		t, err := NewGaussian(rec.N, rec.T, rec.D, rec.Eta, rec.Beta, rec.Gamma, rec.Epsilon)
		if err != nil {
			return err
		}
		terms.Add(t)
		return nil
	}
	pureBuilders["ResidualHelmholtzGaoB"] = func(rec *Record, terms *Terms) error {
		t, err := NewGaoB(rec.N, rec.T, rec.D, rec.Eta, rec.Beta, rec.Gamma, rec.Epsilon, rec.Bsmall)
		if err != nil {
			return err
		}
		terms.Add(t)
		return nil
	}
	pureBuilders["ResidualHelmholtzLemmon2005"] = func(rec *Record, terms *Terms) error {
		t, err := NewLemmon2005(rec.N, rec.T, rec.D, rec.L, rec.M)
		if err != nil {
			return err
		}
		terms.Add(t)
		return nil
	}
	pureBuilders["ResidualHelmholtzNonAnalytic"] = func(rec *Record, terms *Terms) error {
		t, err := NewNonAnalytic(rec.N, rec.A, rec.B, rec.C, rec.Dcap, rec.Asmall, rec.Bsmall, rec.Beta)
		if err != nil {
			return err
		}
		terms.Add(t)
		return nil
	}

	departureBuilders["Exponential"] = buildPower
	departureBuilders["GERG-2004"] = buildComposite(KindGERG2004)
	departureBuilders["GERG-2008"] = buildComposite(KindGERG2004)
	departureBuilders["Gaussian+Exponential"] = buildComposite(KindGaussian)
	departureBuilders["none"] = func(rec *Record, terms *Terms) error {
		terms.Add(Null{})
		return nil
	}
}

// buildPower builds a Power term; missing t, d and l are set to zero
func buildPower(rec *Record, terms *Terms) error {
	n := len(rec.N)
	t, err := NewPower(rec.N, zeros(rec.T, n), zeros(rec.D, n), rec.L)
	if err != nil {
		return err
	}
	terms.Add(t)
	return nil
}

// buildComposite returns a builder that splits a record at Npower into a leading
// Power term and a trailing term of the given kind (Gaussian or GERG2004)
func buildComposite(tail Kind) builder {
	return func(rec *Record, terms *Terms) error {
		err := checkFields(rec.Type, field{"n", rec.N}, field{"t", rec.T}, field{"d", rec.D}, field{"eta", rec.Eta},
			field{"beta", rec.Beta}, field{"gamma", rec.Gamma}, field{"epsilon", rec.Epsilon})
		if err != nil {
			return err
		}
		if rec.Npower == nil {
			return chk.Err("%s term: Npower is required", rec.Type)
		}
		np, ntot := *rec.Npower, len(rec.N)
		if np < 0 || np > ntot {
			return chk.Err("%s term: Npower = %d is out of range [0, %d]", rec.Type, np, ntot)
		}
		var l []float64
		if len(rec.L) > 0 {
			if len(rec.L) < np {
				return chk.Err("%s term: l has %d entries but Npower = %d", rec.Type, len(rec.L), np)
			}
			l = rec.L[:np]
		}
		head, err := NewPower(rec.N[:np], rec.T[:np], rec.D[:np], l)
		if err != nil {
			return err
		}
		terms.Add(head)
		switch tail {
		case KindGERG2004:
			t, err := NewGERG2004(rec.N[np:], rec.T[np:], rec.D[np:], rec.Eta[np:], rec.Beta[np:], rec.Gamma[np:], rec.Epsilon[np:])
			if err != nil {
				return err
			}
			terms.Add(t)
		default:
			t, err := NewGaussian(rec.N[np:], rec.T[np:], rec.D[np:], rec.Eta[np:], rec.Beta[np:], rec.Gamma[np:], rec.Epsilon[np:])
			if err != nil {
				return err
			}
			terms.Add(t)
		}
		return nil
	}
}

// keys returns the sorted keys of a map of builders
func keys(m map[string]builder) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
