// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

import (
	"time"

	"github.com/grosilho/gosdc/inp"
	"github.com/grosilho/gosdc/prob"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Main holds all data for one simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	Ctrl    Controller      // time stepping controller
	Prob    prob.Problem    // problem at the finest resolution
	U       []float64       // solution at the final time
	T       float64         // final time reached
	ErrInf  float64         // max-norm error against the exact solution
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to the simulation key
//   verbose     -- show messages
func NewMain(simfilepath, alias string, verbose bool) (o *Main) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim = inp.ReadSim(simfilepath, alias)

	// allocate the finest problem for initial and exact values
	var err error
	o.Prob, err = prob.New(&o.Sim.Problem, o.Sim.Levels[0].Ndofs)
	if err != nil {
		chk.Panic("cannot allocate problem:\n%v", err)
	}

	// allocate controller
	o.Ctrl, err = NewController(o.Sim)
	if err != nil {
		chk.Panic("cannot allocate controller:\n%v", err)
	}

	// message
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
		io.Pf("> Running %q controller with %d slot(s) and %d level(s)\n",
			o.Sim.Solver.Type, o.Sim.Solver.Nprocs, len(o.Sim.Levels))
	}
	return
}

// Run advances the exact initial condition from t0 to tf
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// initial condition
	u0 := o.Prob.NewValue()
	o.Prob.SolExact(u0, o.Sim.Control.T0)

	// time loop
	o.U, err = o.Ctrl.Run(u0, o.Sim.Control.T0, o.Sim.Control.Tf)
	if err != nil {
		return
	}
	o.T = o.Ctrl.EndTime()

	// error against the exact solution
	uex := o.Prob.NewValue()
	o.Prob.SolExact(uex, o.T)
	diff := o.Prob.NewValue()
	for k := 0; k < len(diff); k++ {
		diff[k] = o.U[k] - uex[k]
	}
	o.ErrInf = la.Vector(diff).Largest(1)
	return
}

// Stats returns the recorded measurements
func (o *Main) Stats() []Entry {
	return o.Ctrl.Stats()
}

// onexit prints messages on exit
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if prevErr != nil {
		err = prevErr
		if o.ShowMsg {
			io.PfRed("simulation failed:\n%v\n", err)
		}
		return
	}
	if o.ShowMsg {
		io.Pf("\nfinal time   = %v\n", o.T)
		io.Pf("error (max)  = %v\n", o.ErrInf)
		io.Pfblue2("cpu time     = %v\n", time.Now().Sub(cputime))
	}
	return
}
