// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

// Hook observes the progress of one step. In time-parallel runs each slot
// calls its hooks from its own goroutine, so implementations shared between
// steps must be safe for concurrent use.
type Hook interface {

	// PreBlock is called once before a step starts working on a new block
	PreBlock(s *Step)

	// PreStep is called when the initial condition has arrived
	PreStep(s *Step, lvl int)

	// PreIteration is called before the first iteration starts
	PreIteration(s *Step, lvl int)

	// PostSweep is called after every sweep with a fresh residual
	PostSweep(s *Step, lvl int)

	// PostIteration is called at the beginning of every convergence check
	PostIteration(s *Step, lvl int)

	// PostStep is called once when the step has converged
	PostStep(s *Step, lvl int)
}

// NopHook implements Hook doing nothing; embed it to observe selected
// events only
type NopHook struct{}

func (o *NopHook) PreBlock(s *Step)               {}
func (o *NopHook) PreStep(s *Step, lvl int)       {}
func (o *NopHook) PreIteration(s *Step, lvl int)  {}
func (o *NopHook) PostSweep(s *Step, lvl int)     {}
func (o *NopHook) PostIteration(s *Step, lvl int) {}
func (o *NopHook) PostStep(s *Step, lvl int)      {}

// multiHook broadcasts events to a list of hooks
type multiHook []Hook

func (o multiHook) PreBlock(s *Step) {
	for _, h := range o {
		h.PreBlock(s)
	}
}

func (o multiHook) PreStep(s *Step, lvl int) {
	for _, h := range o {
		h.PreStep(s, lvl)
	}
}

func (o multiHook) PreIteration(s *Step, lvl int) {
	for _, h := range o {
		h.PreIteration(s, lvl)
	}
}

func (o multiHook) PostSweep(s *Step, lvl int) {
	for _, h := range o {
		h.PostSweep(s, lvl)
	}
}

func (o multiHook) PostIteration(s *Step, lvl int) {
	for _, h := range o {
		h.PostIteration(s, lvl)
	}
}

func (o multiHook) PostStep(s *Step, lvl int) {
	for _, h := range o {
		h.PostStep(s, lvl)
	}
}
