// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"path/filepath"

	"github.com/grosilho/gosdc/coll"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global simulation data
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gosdc
	Stat   bool   `json:"stat"`   // collect statistics entries during the run
}

// ControlData holds the time stepping window
type ControlData struct {

	// input data
	T0 float64 `json:"t0"` // initial time
	Tf float64 `json:"tf"` // final time
	Dt float64 `json:"dt"` // size of one time slice

	// derived
	DtFunc dbf.T // time step function
}

// SolverData holds the iteration controller data
type SolverData struct {
	Type     string  `json:"type"`     // controller type: {ser, par} => serial, time-parallel
	Nprocs   int     `json:"nprocs"`   // number of time slices iterated concurrently in one block
	MaxIter  int     `json:"maxiter"`  // cap on the number of iterations per step
	ResTol   float64 `json:"restol"`   // residual tolerance on the finest level
	Predict  bool    `json:"predict"`  // burn-in predictor before iterating (multi-level only)
	FineComm bool    `json:"finecomm"` // overlap sends of fine and intermediate level end points
}

// QuadData holds the collocation configuration shared by all levels
type QuadData struct {
	Nnodes     int    `json:"nnodes"`     // number of collocation nodes
	Family     string `json:"family"`     // node family: {radau-right, lobatto, legendre}
	QDelta     string `json:"qdelta"`     // implicit preconditioner: {IE, LU}
	QDeltaE    string `json:"qdeltae"`    // explicit preconditioner (imex sweeps): {EE}
	CollUpdate bool   `json:"collupdate"` // end point by quadrature instead of the last node
}

// SweeperData selects the sweep variant
type SweeperData struct {
	Type string `json:"type"` // sweeper type: {implicit, imex}
}

// ProblemData holds the problem coefficients
type ProblemData struct {
	Type   string  `json:"type"`   // problem type: {advection, heat, advdiff, dahlquist}
	C      float64 `json:"c"`      // advection speed
	Nu     float64 `json:"nu"`     // diffusivity
	Lambda float64 `json:"lambda"` // dahlquist coefficient
	Freq   int     `json:"freq"`   // frequency of the sinusoidal initial condition
	Order  int     `json:"order"`  // spatial order of the advection stencil: {1, 2}
	SolTol float64 `json:"soltol"` // relative tolerance of iterative implicit solves
}

// LevelData holds per-level resolution data; levels are listed finest first
type LevelData struct {
	Ndofs int `json:"ndofs"` // number of spatial degrees of freedom
}

// TransferData selects the space transfer between adjacent levels
type TransferData struct {
	Type string `json:"type"` // transfer type: {fdper, copy}
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data     Data         `json:"data"`     // global data
	Control  ControlData  `json:"control"`  // time window
	Solver   SolverData   `json:"solver"`   // controller data
	Quad     QuadData     `json:"quad"`     // collocation data
	Sweeper  SweeperData  `json:"sweeper"`  // sweep variant
	Problem  ProblemData  `json:"problem"`  // problem coefficients
	Levels   []*LevelData `json:"levels"`   // levels, finest first
	Transfer TransferData `json:"transfer"` // space transfer

	// derived
	Key string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
}

// ReadSim reads all simulation data from a .sim JSON file. It panics on any
// configuration error so that no time stepping can start from bad input.
func ReadSim(simfilepath, alias string) *Simulation {

	// new sim
	var o Simulation

	// read file; panics on missing files
	b := io.ReadFile(simfilepath)

	// set default values
	o.SetDefault()

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)
	if alias != "" {
		o.Key += "-" + alias
	}

	// derived quantities and validation
	o.PostProcess()
	err = o.Validate()
	if err != nil {
		chk.Panic("ReadSim: invalid simulation file %q:\n%v", simfilepath, err)
	}
	return &o
}

// SetDefault sets default values
func (o *Simulation) SetDefault() {
	o.Control.Tf = 1
	o.Control.Dt = 0.1
	o.Solver.Type = "ser"
	o.Solver.Nprocs = 1
	o.Solver.MaxIter = 20
	o.Solver.ResTol = 1e-10
	o.Solver.Predict = true
	o.Solver.FineComm = true
	o.Quad.Nnodes = 3
	o.Quad.Family = "radau-right"
	o.Quad.QDelta = "IE"
	o.Quad.QDeltaE = "EE"
	o.Sweeper.Type = "implicit"
	o.Problem.Type = "advection"
	o.Problem.C = 1
	o.Problem.Nu = 0.02
	o.Problem.Lambda = -1
	o.Problem.Freq = 1
	o.Problem.Order = 1
	o.Problem.SolTol = 1e-12
	o.Transfer.Type = "fdper"
}

// PostProcess computes derived quantities after the input file has been read
func (o *Simulation) PostProcess() {
	if len(o.Levels) == 0 {
		o.Levels = []*LevelData{{Ndofs: 32}}
	}
	o.Control.DtFunc = &dbf.Cte{C: o.Control.Dt}
}

// Validate checks the configuration and returns the first problem found.
// Validation happens eagerly, before any controller is allocated.
func (o *Simulation) Validate() (err error) {

	// time window
	if o.Control.Dt <= 0 {
		return chk.Err("dt must be positive: %g", o.Control.Dt)
	}
	if o.Control.Tf < o.Control.T0 {
		return chk.Err("tf=%g cannot be smaller than t0=%g", o.Control.Tf, o.Control.T0)
	}

	// solver
	if o.Solver.Type != "ser" && o.Solver.Type != "par" {
		return chk.Err("unknown solver type %q. e.g. {ser, par} => serial, time-parallel", o.Solver.Type)
	}
	if o.Solver.Nprocs < 1 {
		return chk.Err("nprocs must be at least 1: %d", o.Solver.Nprocs)
	}
	if o.Solver.MaxIter < 1 {
		return chk.Err("maxiter must be at least 1: %d", o.Solver.MaxIter)
	}
	if o.Solver.ResTol < 0 {
		return chk.Err("restol cannot be negative: %g", o.Solver.ResTol)
	}

	// quadrature
	rightIsNode, err := coll.RightIsNode(o.Quad.Family)
	if err != nil {
		return
	}
	if o.Quad.Nnodes < 1 || o.Quad.Nnodes > 5 {
		return chk.Err("nnodes out of range [1,5]: %d", o.Quad.Nnodes)
	}
	if o.Solver.Nprocs > 1 {
		// the pipelined exchange assumes uend equals the last node value
		if !rightIsNode || o.Quad.CollUpdate {
			return chk.Err("time-parallel runs need a node family including the right endpoint and collupdate=false")
		}
	}

	// the implicit sweeper needs solves of the full right hand side; split
	// problems only invert their stiff part
	if o.Sweeper.Type == "implicit" && o.Problem.Type == "advdiff" {
		return chk.Err("problem %q carries a stiff/nonstiff splitting and needs the imex sweeper", o.Problem.Type)
	}

	// levels
	if len(o.Levels) == 0 {
		return chk.Err("at least one level must be given")
	}
	for i, l := range o.Levels {
		if l.Ndofs < 1 {
			return chk.Err("level %d has invalid ndofs %d", i, l.Ndofs)
		}
		if i > 0 {
			nf, nc := o.Levels[i-1].Ndofs, l.Ndofs
			if nf != nc && nf != 2*nc {
				return chk.Err("level ndofs ratio must be 1 or 2: got %d to %d", nf, nc)
			}
		}
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
