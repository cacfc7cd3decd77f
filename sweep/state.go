// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sweep implements correction sweeps over collocation nodes
package sweep

import "github.com/cpmech/gosl/utl"

// State holds the node values of one level within one time slice.
// U[0] carries the initial condition of the slice and is owned by the
// controller; the sweepers only write nodes 1..M.
type State struct {

	// dimensions
	M     int // number of collocation nodes
	Ndofs int // number of spatial degrees of freedom

	// time slice
	Time float64 // left end of the slice
	Dt   float64 // size of the slice

	// values
	U    [][]float64 // (M+1) node values, including the initial condition
	Uend []float64   // value at the right end of the slice
	UOld [][]float64 // node values saved before the last restriction
	Tau  [][]float64 // correction from the finer level; nil on the finest

	// convergence
	Resid float64 // residual norm after the last sweep
}

// NewState allocates a state for m nodes and ndofs unknowns
func NewState(m, ndofs int) *State {
	return &State{
		M:     m,
		Ndofs: ndofs,
		U:     utl.Alloc(m+1, ndofs),
		Uend:  make([]float64, ndofs),
		UOld:  utl.Alloc(m+1, ndofs),
	}
}

// AddTau allocates the correction storage; called on all but the finest level
func (o *State) AddTau() {
	o.Tau = utl.Alloc(o.M+1, o.Ndofs)
}
