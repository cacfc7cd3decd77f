// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xfer

import "github.com/cpmech/gosl/chk"

// FdPer transfers between two periodic finite difference grids with a
// coarsening ratio of 1 or 2. Restriction is by injection and prolongation
// by linear interpolation.
type FdPer struct {
	Nf, Nc int // number of points of the fine and coarse grids
	ratio  int
}

// Restrict injects the fine grid values into the coarse grid
func (o *FdPer) Restrict(coarse, fine []float64) {
	for i := 0; i < o.Nc; i++ {
		coarse[i] = fine[i*o.ratio]
	}
}

// Prolong interpolates the coarse grid values onto the fine grid
func (o *FdPer) Prolong(fine, coarse []float64) {
	if o.ratio == 1 {
		copy(fine, coarse)
		return
	}
	for i := 0; i < o.Nc; i++ {
		fine[2*i] = coarse[i]
		fine[2*i+1] = 0.5 * (coarse[i] + coarse[(i+1)%o.Nc])
	}
}

// add to factory
func init() {
	allocators["fdper"] = func(nfine, ncoarse int) (Space, error) {
		if nfine != ncoarse && nfine != 2*ncoarse {
			return nil, chk.Err("fdper needs a coarsening ratio of 1 or 2: got %d to %d", nfine, ncoarse)
		}
		return &FdPer{Nf: nfine, Nc: ncoarse, ratio: nfine / ncoarse}, nil
	}
}
