// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

import (
	"sync"

	"github.com/grosilho/gosdc/inp"

	"github.com/cpmech/gosl/chk"
)

// Parallel runs each slot of a block on its own goroutine, exchanging
// values over buffered channels. A failing slot panics, since its
// neighbours would otherwise wait forever for messages that never come.
type Parallel struct {
	common
}

// Run advances u0 from t0 to tend and returns the end value
func (o *Parallel) Run(u0 []float64, t0, tend float64) ([]float64, error) {
	uend := make([]float64, len(u0))
	copy(uend, u0)
	time := t0
	for {
		times, active := o.activeTimes(time, tend)
		if active == 0 {
			o.tend = time
			return uend, nil
		}

		// channel buffers must hold every message of one block: one per
		// iteration plus the extra rounds spent waiting on the left
		grid := NewGrid(o.sim.Solver.MaxIter + o.sim.Solver.Nprocs + 8)
		for p := 0; p < active; p++ {
			o.steps[p].SetComm(grid.View(p), active)
			o.steps[p].Restart(p, active, times[p], uend)
		}

		var wg sync.WaitGroup
		for p := 0; p < active; p++ {
			wg.Add(1)
			go func(s *Step) {
				defer wg.Done()
				s.hook.PreBlock(s)
				if err := s.Solve(); err != nil {
					chk.Panic("slot %d failed at t=%g:\n%v", s.Status.Slot, s.Time(), err)
				}
			}(o.steps[p])
		}
		wg.Wait()

		last := o.steps[active-1]
		copy(uend, last.Fine().State().Uend)
		time = times[active-1] + last.Dt()
	}
}

// add to factory
func init() {
	allocators["par"] = func(sim *inp.Simulation) (Controller, error) {
		c, err := newCommon(sim)
		if err != nil {
			return nil, err
		}
		return &Parallel{common: *c}, nil
	}
}
