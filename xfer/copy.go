// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xfer

import "github.com/cpmech/gosl/chk"

// Copy transfers between two grids of the same size by copying values.
// It serves single-level hierarchies and levels coarsened in time only.
type Copy struct{}

// Restrict copies fine values into coarse
func (o *Copy) Restrict(coarse, fine []float64) {
	copy(coarse, fine)
}

// Prolong copies coarse values into fine
func (o *Copy) Prolong(fine, coarse []float64) {
	copy(fine, coarse)
}

// add to factory
func init() {
	allocators["copy"] = func(nfine, ncoarse int) (Space, error) {
		if nfine != ncoarse {
			return nil, chk.Err("copy transfer needs grids of equal size: got %d and %d", nfine, ncoarse)
		}
		return new(Copy), nil
	}
}
