// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pfasst implements iterative time stepping controllers running
// SDC, MLSDC, MSSDC and PFASST schedules over blocks of time slices
package pfasst

import (
	"github.com/grosilho/gosdc/coll"
	"github.com/grosilho/gosdc/inp"
	"github.com/grosilho/gosdc/prob"
	"github.com/grosilho/gosdc/sweep"
)

// Level bundles the problem and the sweeper of one resolution. Level 0 is
// the finest; coarser levels carry the correction from the level above.
type Level struct {
	Num   int           // position in the hierarchy, 0 = finest
	Prob  prob.Problem  // spatial problem at this resolution
	Sweep sweep.Sweeper // sweeper operating on this level
}

// newLevel allocates the problem and sweeper of one hierarchy level
func newLevel(num int, sim *inp.Simulation) (o *Level, err error) {
	cl, err := coll.New(sim.Quad.Nnodes, sim.Quad.Family)
	if err != nil {
		return
	}
	p, err := prob.New(&sim.Problem, sim.Levels[num].Ndofs)
	if err != nil {
		return
	}
	s, err := sweep.New(sim.Sweeper.Type, cl, &sim.Quad, p)
	if err != nil {
		return
	}
	o = &Level{Num: num, Prob: p, Sweep: s}
	if num > 0 {
		s.State().AddTau()
	}
	return
}

// State is a shortcut to the sweeper state
func (o *Level) State() *sweep.State {
	return o.Sweep.State()
}
