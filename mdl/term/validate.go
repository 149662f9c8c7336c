// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// field holds a named coefficient array
type field struct {
	key string
	v   []float64
}

// checkFields checks that all arrays have the same length and contain no NaN
func checkFields(name string, fields ...field) error {
	if len(fields) == 0 {
		return nil
	}
	n := len(fields[0].v)
	same := true
	for _, f := range fields {
		if len(f.v) != n {
			same = false
		}
		if floats.HasNaN(f.v) {
			return chk.Err("%s term: array %q contains NaN", name, f.key)
		}
	}
	if !same {
		lens := make([]string, len(fields))
		for i, f := range fields {
			lens[i] = io.Sf("%s=%d", f.key, len(f.v))
		}
		return chk.Err("%s term: lengths are not all identical: %s", name, strings.Join(lens, ", "))
	}
	return nil
}

// toInts converts values that must be integers
func toInts(name, key string, v []float64) ([]int, error) {
	res := make([]int, len(v))
	for i, x := range v {
		if math.IsInf(x, 0) || x != math.Trunc(x) {
			return nil, chk.Err("%s term: non-integer entry in %q found: %s[%d] = %g", name, key, key, i, x)
		}
		res[i] = int(x)
	}
	return res, nil
}

// zeros returns v if not empty; otherwise a slice of n zeros
func zeros(v []float64, n int) []float64 {
	if len(v) == 0 {
		return make([]float64, n)
	}
	return v
}

// clone returns a copy of v
func clone(v []float64) []float64 {
	return append([]float64{}, v...)
}
