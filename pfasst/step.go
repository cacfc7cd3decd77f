// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

import (
	"github.com/grosilho/gosdc/inp"
	"github.com/grosilho/gosdc/xfer"

	"github.com/cpmech/gosl/chk"
)

// Step advances one time slice of a block through the iteration stages.
// All communication goes through the attached Comm; the step never touches
// the state of other steps directly.
type Step struct {

	// configuration
	sim    *inp.Simulation
	Levels []*Level    // hierarchy, finest first
	Trans  []*Transfer // Trans[l] connects level l to level l+1

	// block context
	Status Status
	comm   Comm
	nprocs int  // number of active slots in the block
	hook   Hook // never nil

	// pending non-blocking sends, one slot per level
	reqSend   []*Request
	reqStatus *Request
}

// NewStep allocates the level hierarchy of one time slice
func NewStep(sim *inp.Simulation) (o *Step, err error) {
	o = &Step{sim: sim, hook: new(NopHook)}
	nlev := len(sim.Levels)
	o.Levels = make([]*Level, nlev)
	for l := 0; l < nlev; l++ {
		o.Levels[l], err = newLevel(l, sim)
		if err != nil {
			return nil, err
		}
	}
	o.Trans = make([]*Transfer, nlev-1)
	for l := 0; l < nlev-1; l++ {
		sp, err := xfer.New(sim.Transfer.Type, sim.Levels[l].Ndofs, sim.Levels[l+1].Ndofs)
		if err != nil {
			return nil, err
		}
		o.Trans[l] = NewTransfer(o.Levels[l], o.Levels[l+1], sp)
	}
	return
}

// SetComm attaches the block communicator and the number of active slots
func (o *Step) SetComm(c Comm, nprocs int) {
	o.comm = c
	o.nprocs = nprocs
}

// SetHook attaches the observer; h must not be nil
func (o *Step) SetHook(h Hook) {
	o.hook = h
}

// Fine returns the finest level
func (o *Step) Fine() *Level {
	return o.Levels[0]
}

// Coarsest returns the coarsest level
func (o *Step) Coarsest() *Level {
	return o.Levels[len(o.Levels)-1]
}

// Time returns the left end of this time slice
func (o *Step) Time() float64 {
	return o.Fine().State().Time
}

// Dt returns the size of this time slice
func (o *Step) Dt() float64 {
	return o.Fine().State().Dt
}

// Restart resets the step for slot within a new block of size active slots
func (o *Step) Restart(slot, size int, time float64, u0 []float64) {
	o.Status.Restart(slot, size)
	o.reqSend = make([]*Request, len(o.Levels))
	o.reqStatus = nil
	dt := o.sim.Control.DtFunc.F(time, nil)
	for _, lvl := range o.Levels {
		st := lvl.State()
		st.Time = time
		st.Dt = dt
		st.Resid = 0
	}
	copy(o.Fine().State().U[0], u0)
}

// recvInit receives the initial condition of level l and re-evaluates the
// right hand side at node 0
func (o *Step) recvInit(l, from, tag int) {
	o.comm.Recv(o.Levels[l].State().U[0], from, tag)
	o.Levels[l].Sweep.EvalNode(0)
}

// checkConvergence decides whether this step may stop iterating
func (o *Step) checkConvergence() bool {
	if o.Status.Iter >= o.sim.Solver.MaxIter {
		return true
	}
	return o.Fine().State().Resid <= o.sim.Solver.ResTol
}

// next moves the status to the stage following the current one
func (o *Step) next(proceed bool) (err error) {
	o.Status.Stage, err = transition(o.Status.Stage, cond{
		multiLevel: len(o.Levels) > 1,
		multiStep:  o.nprocs > 1,
		predict:    o.sim.Solver.Predict,
		proceed:    proceed,
	})
	return
}

// Advance executes the current stage and moves to the next one
func (o *Step) Advance() (err error) {
	switch o.Status.Stage {
	case StgSpread:
		return o.doSpread()
	case StgPredict:
		return o.doPredict()
	case StgFine:
		return o.doFine()
	case StgCheck:
		return o.doCheck()
	case StgUp:
		return o.doUp()
	case StgCoarseRecv:
		return o.doCoarseRecv()
	case StgCoarse:
		return o.doCoarse()
	case StgDown:
		return o.doDown()
	}
	return chk.Err("step %d cannot run stage %q", o.Status.Slot, o.Status.Stage)
}

// Solve runs stages until this step is done
func (o *Step) Solve() (err error) {
	for !o.Status.Done {
		err = o.Advance()
		if err != nil {
			return
		}
	}
	return
}

// doSpread copies the initial condition over all nodes of the finest level
func (o *Step) doSpread() (err error) {
	o.hook.PreStep(o, 0)
	o.Fine().Sweep.Predict()
	err = o.next(false)
	if o.Status.Stage != StgPredict {
		o.hook.PreIteration(o, 0)
	}
	return
}

// doPredict performs the coarse burn-in: each slot sweeps once per earlier
// slot, passing results forward, so that slot p starts from a p-fold
// propagated coarse value
func (o *Step) doPredict() (err error) {
	cst := o.Coarsest().State()

	// restrict down to the coarsest level
	for l := 1; l < len(o.Levels); l++ {
		o.Trans[l-1].Restrict()
	}

	// staggered coarse sweeps
	for p := 0; p <= o.Status.Slot; p++ {
		if p != 0 && !o.Status.First {
			o.recvInit(len(o.Levels)-1, o.Status.Prev, o.Status.Iter)
		}
		err = o.Coarsest().Sweep.UpdateNodes()
		if err != nil {
			return
		}
		o.Coarsest().Sweep.ComputeEndPoint()
		if !o.Status.Last {
			o.comm.Send(cst.Uend, o.Status.Next, o.Status.Iter)
		}
	}

	// prolong back up to the finest level
	for l := len(o.Levels) - 1; l >= 1; l-- {
		o.Trans[l-1].Prolong()
	}

	o.hook.PreIteration(o, 0)
	return o.next(false)
}

// doFine sweeps on the finest level and passes the end point forward
func (o *Step) doFine() (err error) {
	fine := o.Fine()
	err = fine.Sweep.UpdateNodes()
	if err != nil {
		return
	}
	fine.Sweep.ComputeResidual()
	o.hook.PostSweep(o, 0)

	if o.reqSend[0] != nil && !o.Status.Last && o.sim.Solver.FineComm {
		o.reqSend[0].Wait()
	}
	fine.Sweep.ComputeEndPoint()
	if !o.Status.Last && o.sim.Solver.FineComm {
		o.reqSend[0] = o.comm.Isend(fine.State().Uend, o.Status.Next, 0)
	}
	return o.next(false)
}

// doCheck exchanges convergence flags and decides whether to keep iterating.
// A converged step keeps sweeping as long as its left neighbour is still
// working, so that the values it passes forward stay current.
func (o *Step) doCheck() (err error) {
	o.hook.PostIteration(o, 0)

	if o.reqStatus != nil {
		o.reqStatus.Wait()
	}
	o.Status.Done = o.checkConvergence()
	if !o.Status.Last {
		o.reqStatus = o.comm.SendFlag(o.Status.Done, o.Status.Next, tagStatus)
	}
	if !o.Status.First && !o.Status.PrevDone {
		o.Status.PrevDone = o.comm.RecvFlag(o.Status.Prev, tagStatus)
	}

	proceed := !o.Status.Done || !o.Status.PrevDone
	if proceed {
		o.Status.Iter++
	} else {
		o.Fine().Sweep.ComputeEndPoint()
		o.hook.PostStep(o, 0)
	}
	return o.next(proceed)
}

// doUp restricts through the middle levels, sweeping and passing end points
// forward on each
func (o *Step) doUp() (err error) {
	o.Trans[0].Restrict()
	for l := 1; l < len(o.Levels)-1; l++ {
		s := o.Levels[l].Sweep
		err = s.UpdateNodes()
		if err != nil {
			return
		}
		s.ComputeResidual()
		o.hook.PostSweep(o, l)

		if o.reqSend[l] != nil && !o.Status.Last && o.sim.Solver.FineComm {
			o.reqSend[l].Wait()
		}
		s.ComputeEndPoint()
		if !o.Status.Last && o.sim.Solver.FineComm {
			o.reqSend[l] = o.comm.Isend(s.State().Uend, o.Status.Next, l)
		}
		o.Trans[l].Restrict()
	}
	return o.next(false)
}

// doCoarseRecv pulls the coarsest initial condition from the left
func (o *Step) doCoarseRecv() (err error) {
	if !o.Status.First && !o.Status.PrevDone {
		o.recvInit(len(o.Levels)-1, o.Status.Prev, len(o.Levels)-1)
	}
	return o.next(false)
}

// doCoarse sweeps on the coarsest level and passes its end point forward
// with a blocking send, serialising the block
func (o *Step) doCoarse() (err error) {
	c := o.Coarsest()
	err = c.Sweep.UpdateNodes()
	if err != nil {
		return
	}
	c.Sweep.ComputeResidual()
	o.hook.PostSweep(o, len(o.Levels)-1)
	c.Sweep.ComputeEndPoint()
	if !o.Status.Last {
		o.comm.Send(c.State().Uend, o.Status.Next, len(o.Levels)-1)
	}
	return o.next(false)
}

// doDown prolongs corrections back to the finest level, refreshing the
// initial conditions from the left on the way
func (o *Step) doDown() (err error) {
	for l := len(o.Levels) - 1; l >= 1; l-- {
		if !o.Status.First && o.sim.Solver.FineComm && !o.Status.PrevDone {
			o.recvInit(l-1, o.Status.Prev, l-1)
		}
		o.Trans[l-1].Prolong()
		if l-1 > 0 {
			s := o.Levels[l-1].Sweep
			err = s.UpdateNodes()
			if err != nil {
				return
			}
			s.ComputeResidual()
			o.hook.PostSweep(o, l-1)
		}
	}
	return o.next(false)
}
