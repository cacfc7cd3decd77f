// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"math"
	"testing"

	"github.com/grosilho/gosdc/coll"
	"github.com/grosilho/gosdc/inp"
	"github.com/grosilho/gosdc/prob"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newSweeper builds a sweeper for the tests, failing the test on error
func newSweeper(tst *testing.T, styp string, qdat *inp.QuadData, pdat *inp.ProblemData, ndofs int) Sweeper {
	cl, err := coll.New(qdat.Nnodes, qdat.Family)
	if err != nil {
		tst.Fatalf("collocation failed: %v\n", err)
	}
	p, err := prob.New(pdat, ndofs)
	if err != nil {
		tst.Fatalf("problem allocation failed: %v\n", err)
	}
	s, err := New(styp, cl, qdat, p)
	if err != nil {
		tst.Fatalf("sweeper allocation failed: %v\n", err)
	}
	return s
}

// converge iterates sweeps until the residual drops below tol
func converge(tst *testing.T, s Sweeper, tol float64, maxit int) int {
	for k := 1; k <= maxit; k++ {
		if err := s.UpdateNodes(); err != nil {
			tst.Fatalf("sweep failed: %v\n", err)
		}
		s.ComputeResidual()
		if s.State().Resid < tol {
			return k
		}
	}
	tst.Fatalf("no convergence after %d sweeps: res=%g\n", maxit, s.State().Resid)
	return maxit
}

func Test_sweep01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep01. implicit sweeps on the scalar test equation")

	qdat := &inp.QuadData{Nnodes: 3, Family: "radau-right", QDelta: "IE"}
	pdat := &inp.ProblemData{Type: "dahlquist", Lambda: -1}
	s := newSweeper(tst, "implicit", qdat, pdat, 1)

	st := s.State()
	st.Time = 0
	st.Dt = 0.1
	st.U[0][0] = 1
	s.Predict()
	nit := converge(tst, s, 1e-13, 20)
	if io.Verbose {
		io.Pf("converged after %d sweeps\n", nit)
	}

	// the collocation solution is fifth order accurate
	s.ComputeEndPoint()
	chk.Float64(tst, "uend", 1e-9, st.Uend[0], math.Exp(-0.1))

	// residual stays small under further sweeps
	if err := s.UpdateNodes(); err != nil {
		tst.Errorf("sweep failed: %v\n", err)
		return
	}
	s.ComputeResidual()
	if st.Resid > 1e-13 {
		tst.Errorf("residual grew after convergence: %g\n", st.Resid)
	}
}

func Test_sweep02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep02. end point variants agree at convergence")

	pdat := &inp.ProblemData{Type: "advection", C: 1, Freq: 1, Order: 1}

	run := func(qdat *inp.QuadData) []float64 {
		s := newSweeper(tst, "implicit", qdat, pdat, 16)
		st := s.State()
		st.Dt = 0.01
		p, _ := prob.New(pdat, 16)
		p.SolExact(st.U[0], 0)
		s.Predict()
		converge(tst, s, 1e-12, 50)
		s.ComputeEndPoint()
		return st.Uend
	}

	// last node value versus full quadrature
	ua := run(&inp.QuadData{Nnodes: 3, Family: "radau-right", QDelta: "LU"})
	ub := run(&inp.QuadData{Nnodes: 3, Family: "radau-right", QDelta: "LU", CollUpdate: true})
	chk.Array(tst, "uend", 1e-10, ua, ub)
}

func Test_sweep03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep03. correction shifts the fixed point")

	qdat := &inp.QuadData{Nnodes: 3, Family: "radau-right", QDelta: "IE"}
	pdat := &inp.ProblemData{Type: "dahlquist", Lambda: -1}
	s := newSweeper(tst, "implicit", qdat, pdat, 1)

	st := s.State()
	st.Dt = 0.1
	st.U[0][0] = 1
	st.AddTau()
	st.Tau[1][0] = 1e-3
	st.Tau[2][0] = 2e-3
	st.Tau[3][0] = 3e-3
	s.Predict()
	converge(tst, s, 1e-13, 30)

	// fixed point satisfies u[m] = u[0] + (dt*Q*f)[m] + tau[m]
	q := s.Integrate()
	for m := 1; m <= st.M; m++ {
		chk.Float64(tst, io.Sf("u[%d]", m), 1e-12, st.U[m][0], st.U[0][0]+q[m][0]+st.Tau[m][0])
	}
}

func Test_imex01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("imex01. semi-implicit sweeps on advection-diffusion")

	qdat := &inp.QuadData{Nnodes: 3, Family: "radau-right", QDelta: "LU", QDeltaE: "EE"}
	pdat := &inp.ProblemData{Type: "advdiff", C: 1, Nu: 0.02, Freq: 1, Order: 2, SolTol: 1e-13}
	s := newSweeper(tst, "imex", qdat, pdat, 32)

	st := s.State()
	st.Dt = 0.005
	p, _ := prob.New(pdat, 32)
	p.SolExact(st.U[0], 0)
	s.Predict()
	nit := converge(tst, s, 1e-12, 50)
	if io.Verbose {
		io.Pf("converged after %d sweeps\n", nit)
	}

	// the converged iterate is the collocation solution
	q := s.Integrate()
	for m := 1; m <= st.M; m++ {
		for k := 0; k < st.Ndofs; k++ {
			diff := math.Abs(st.U[0][k] + q[m][k] - st.U[m][k])
			if diff > 1e-11 {
				tst.Errorf("collocation identity violated at node %d: %g\n", m, diff)
				return
			}
		}
	}

	// one small step tracks the exact solution closely
	s.ComputeEndPoint()
	uex := p.NewValue()
	p.SolExact(uex, st.Dt)
	for k := 0; k < st.Ndofs; k++ {
		if math.Abs(st.Uend[k]-uex[k]) > 1e-4 {
			tst.Errorf("end point too far from the exact solution at dof %d\n", k)
			return
		}
	}
}

func Test_sweepalloc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweepalloc01. allocation errors")

	cl, err := coll.New(3, "radau-right")
	if err != nil {
		tst.Errorf("collocation failed: %v\n", err)
		return
	}
	qdat := &inp.QuadData{Nnodes: 3, Family: "radau-right", QDelta: "IE", QDeltaE: "EE"}
	p, _ := prob.New(&inp.ProblemData{Type: "dahlquist", Lambda: -1}, 1)

	if _, err := New("verlet", cl, qdat, p); err == nil {
		tst.Errorf("unknown sweeper type must fail\n")
	}

	// dahlquist has no splitting
	if _, err := New("imex", cl, qdat, p); err == nil {
		tst.Errorf("imex sweeper on an unsplit problem must fail\n")
	}

	bad := &inp.QuadData{Nnodes: 3, Family: "radau-right", QDelta: "XX"}
	if _, err := New("implicit", cl, bad, p); err == nil {
		tst.Errorf("unknown preconditioner must fail\n")
	}
}

func Test_sweep04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sweep04. repeated residual evaluation gives the same value")

	check := func(styp string, pdat *inp.ProblemData, ndofs int) {
		qdat := &inp.QuadData{Nnodes: 3, Family: "radau-right", QDelta: "IE", QDeltaE: "EE"}
		s := newSweeper(tst, styp, qdat, pdat, ndofs)
		st := s.State()
		st.Dt = 0.01
		p, _ := prob.New(pdat, ndofs)
		p.SolExact(st.U[0], 0)
		s.Predict()

		// one sweep only, the state is far from converged
		if err := s.UpdateNodes(); err != nil {
			tst.Fatalf("sweep failed: %v\n", err)
		}
		s.ComputeResidual()
		first := st.Resid
		s.ComputeResidual()
		chk.Float64(tst, styp+": residual unchanged", 1e-17, st.Resid, first)
		if first == 0 {
			tst.Errorf("%s: residual cannot vanish after one sweep\n", styp)
		}
	}

	check("implicit", &inp.ProblemData{Type: "advection", C: 1, Freq: 2, Order: 1}, 16)
	check("imex", &inp.ProblemData{Type: "advdiff", C: 1, Nu: 0.02, Freq: 2, Order: 2, SolTol: 1e-12}, 16)
}
