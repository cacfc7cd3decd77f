// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package xfer implements space transfer operators between adjacent levels
package xfer

import "github.com/cpmech/gosl/chk"

// Space defines the restriction and prolongation between the grids of two
// adjacent levels. Both operations overwrite their first argument.
type Space interface {
	Restrict(coarse, fine []float64) // coarse = R(fine)
	Prolong(fine, coarse []float64)  // fine = P(coarse)
}

// allocators maps transfer type to a maker function
var allocators = map[string]func(nfine, ncoarse int) (Space, error){}

// New returns a new space transfer operator
func New(kind string, nfine, ncoarse int) (Space, error) {
	alloc, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("cannot find transfer type %q", kind)
	}
	return alloc(nfine, ncoarse)
}
