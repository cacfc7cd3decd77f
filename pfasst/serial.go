// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

import "github.com/grosilho/gosdc/inp"

// Serial runs the slots of each block one after another on the calling
// goroutine. The mailbox preserves message order per endpoint pair and tag,
// so each step sees exactly the values it would see in a pipelined run.
type Serial struct {
	common
}

// Run advances u0 from t0 to tend and returns the end value
func (o *Serial) Run(u0 []float64, t0, tend float64) ([]float64, error) {
	uend := make([]float64, len(u0))
	copy(uend, u0)
	time := t0
	for {
		times, active := o.activeTimes(time, tend)
		if active == 0 {
			o.tend = time
			return uend, nil
		}

		// wire a fresh mailbox and restart the active slots
		box := NewMailbox()
		for p := 0; p < active; p++ {
			o.steps[p].SetComm(box.View(p), active)
			o.steps[p].Restart(p, active, times[p], uend)
		}

		// earlier slots fill the queues later slots read from
		for p := 0; p < active; p++ {
			s := o.steps[p]
			s.hook.PreBlock(s)
			if err := s.Solve(); err != nil {
				return nil, err
			}
		}

		// the last slot carries the solution into the next block
		last := o.steps[active-1]
		copy(uend, last.Fine().State().Uend)
		time = times[active-1] + last.Dt()
	}
}

// add to factory
func init() {
	allocators["ser"] = func(sim *inp.Simulation) (Controller, error) {
		c, err := newCommon(sim)
		if err != nil {
			return nil, err
		}
		return &Serial{common: *c}, nil
	}
}
