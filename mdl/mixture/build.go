// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guyer/teqp/mdl/bip"
	"github.com/guyer/teqp/mdl/reducing"
	"github.com/guyer/teqp/mdl/term"
)

// Component holds the data of one pure fluid in a mixture
type Component struct {
	Name string     // name used to look up binary parameters
	Tc   float64    // critical (reducing) temperature
	Vc   float64    // critical (reducing) molar volume
	EOS  term.Terms // pure fluid residual terms
}

// NewComponent builds a component from a pure fluid document
//  Note: if name is empty, the name in the fluid document is used
func NewComponent(name string, fluid *term.Fluid) (o Component, err error) {
	if fluid == nil {
		return o, chk.Err("fluid document is missing")
	}
	if name == "" {
		name = fluid.Info.Name
	}
	o.Name = name
	o.Tc, o.Vc, err = fluid.Critical()
	if err != nil {
		return
	}
	o.EOS, err = term.BuildPure(fluid.EOS[0].Alphar)
	if err != nil {
		return o, chk.Err("fluid %q: %v", name, err)
	}
	return
}

// Options holds options for Build
type Options struct {
	Flags   bip.Flags // options for the lookup of binary parameters
	Verbose bool      // show the resolved parameters
}

// Build assembles a mixture model with the GERG reducing function
//  Input:
//   comps -- components in the mixture; their order defines the order of mole fractions
//   cat   -- binary interaction parameters
//   deps  -- departure functions referenced by cat
func Build(comps []Component, cat bip.Catalog, deps bip.DepartureCatalog, opts Options) (o *Model, err error) {
	n := len(comps)
	if n < 1 {
		return nil, chk.Err("at least one component is required")
	}
	names := make([]string, n)
	Tc, vc := make([]float64, n), make([]float64, n)
	eos := make([]term.Terms, n)
	for i, c := range comps {
		names[i], Tc[i], vc[i], eos[i] = c.Name, c.Tc, c.Vc, c.EOS
	}

	// reducing function
	betaT, gammaT, betaV, gammaV, err := bip.Matrices(cat, names, opts.Flags)
	if err != nil {
		return
	}
	red, err := reducing.NewAsymmetric(betaT, gammaT, betaV, gammaV, Tc, vc)
	if err != nil {
		return
	}

	// contributions
	corr, err := NewCorrespondingStates(eos)
	if err != nil {
		return
	}
	F, err := bip.FMatrix(cat, names, opts.Flags)
	if err != nil {
		return
	}
	funcs, err := bip.DepartureMatrix(cat, deps, names, opts.Flags)
	if err != nil {
		return
	}
	dep, err := NewDeparture(F, funcs)
	if err != nil {
		return
	}

	// show parameters
	if opts.Verbose {
		io.Pforan("%-12s %-12s %10s %10s %10s %10s %10s  %s\n", "name1", "name2", "betaT", "gammaT", "betaV", "gammaV", "F", "departure")
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p := red.Pair(i, j)
				io.Pf("%-12s %-12s %10.6f %10.6f %10.6f %10.6f %10.6f  %v\n", names[i], names[j],
					p.BetaT, p.GammaT, p.BetaV, p.GammaV, F.At(i, j), dep.Func(i, j).Kinds())
			}
		}
	}
	return New(red, corr, dep)
}
