// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

import (
	"sort"

	"github.com/grosilho/gosdc/inp"

	"github.com/cpmech/gosl/chk"
)

// macheps is the double precision machine epsilon
const macheps = 2.220446049250313e-16

// Controller advances the solution from t0 to tend in blocks of time slices
type Controller interface {

	// Run advances u0 from t0 to tend and returns the end value
	Run(u0 []float64, t0, tend float64) ([]float64, error)

	// SetHook attaches an observer to all steps
	SetHook(h Hook)

	// EndTime returns the time reached by the last call to Run
	EndTime() float64

	// Stats returns the recorded measurements, sorted by time and slot
	Stats() []Entry
}

// allocators holds all available controllers
var allocators = make(map[string]func(sim *inp.Simulation) (Controller, error))

// NewController returns the controller selected by the simulation data
func NewController(sim *inp.Simulation) (Controller, error) {
	alloc, ok := allocators[sim.Solver.Type]
	if !ok {
		return nil, chk.Err("cannot find controller type %q", sim.Solver.Type)
	}
	return alloc(sim)
}

// common holds the data shared by all controllers
type common struct {
	sim   *inp.Simulation
	steps []*Step     // one step per slot
	recs  []*Recorder // per-step recorders; nil unless stats are on
	user  Hook
	tend  float64 // time reached by the last run
}

// newCommon allocates the steps of one block
func newCommon(sim *inp.Simulation) (o *common, err error) {
	o = &common{sim: sim}
	n := sim.Solver.Nprocs
	o.steps = make([]*Step, n)
	if sim.Data.Stat {
		o.recs = make([]*Recorder, n)
	}
	for p := 0; p < n; p++ {
		o.steps[p], err = NewStep(sim)
		if err != nil {
			return nil, err
		}
		if o.recs != nil {
			o.recs[p] = new(Recorder)
		}
	}
	o.bindHooks()
	return
}

// SetHook attaches an observer to all steps
func (o *common) SetHook(h Hook) {
	o.user = h
	o.bindHooks()
}

// bindHooks wires recorders and the user hook into every step
func (o *common) bindHooks() {
	for p, s := range o.steps {
		var hs multiHook
		if o.recs != nil {
			hs = append(hs, o.recs[p])
		}
		if o.user != nil {
			hs = append(hs, o.user)
		}
		if len(hs) == 0 {
			s.SetHook(new(NopHook))
			continue
		}
		s.SetHook(hs)
	}
}

// EndTime returns the time reached by the last run
func (o *common) EndTime() float64 {
	return o.tend
}

// Stats merges the entries of all recorders
func (o *common) Stats() []Entry {
	var all []Entry
	for _, r := range o.recs {
		all = append(all, r.Entries...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		if a.Slot != b.Slot {
			return a.Slot < b.Slot
		}
		if a.Iter != b.Iter {
			return a.Iter < b.Iter
		}
		return a.Level < b.Level
	})
	return all
}

// activeTimes computes the start time of each slot and how many slots still
// have work. Slots starting within 10*eps of tend are considered finished.
func (o *common) activeTimes(time, tend float64) ([]float64, int) {
	n := o.sim.Solver.Nprocs
	times := make([]float64, n)
	active := 0
	t := time
	for p := 0; p < n; p++ {
		times[p] = t
		if t < tend-10*macheps {
			active++
		}
		t += o.sim.Control.DtFunc.F(times[p], nil)
	}
	return times, active
}
