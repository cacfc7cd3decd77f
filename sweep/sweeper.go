// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"github.com/grosilho/gosdc/coll"
	"github.com/grosilho/gosdc/inp"
	"github.com/grosilho/gosdc/prob"

	"github.com/cpmech/gosl/chk"
)

// Sweeper runs correction sweeps on the state of one level
type Sweeper interface {

	// Coll returns the collocation data
	Coll() *coll.Collocation

	// State returns the node values operated on
	State() *State

	// Predict spreads the initial condition to all nodes
	Predict()

	// UpdateNodes performs one sweep over the nodes
	UpdateNodes() error

	// ComputeResidual updates State().Resid
	ComputeResidual()

	// ComputeEndPoint updates State().Uend
	ComputeEndPoint()

	// Integrate returns the quadrature dt*Q*F, one row per node
	Integrate() [][]float64

	// EvalNode re-evaluates the right hand side at node m
	EvalNode(m int)
}

// allocators maps sweeper type to a maker function
var allocators = map[string]func(cl *coll.Collocation, qdat *inp.QuadData, p prob.Problem) (Sweeper, error){}

// New returns a new sweeper operating on problem p
func New(typ string, cl *coll.Collocation, qdat *inp.QuadData, p prob.Problem) (Sweeper, error) {
	alloc, ok := allocators[typ]
	if !ok {
		return nil, chk.Err("cannot find sweeper type %q", typ)
	}
	return alloc(cl, qdat, p)
}
