// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"math"
	"testing"

	"github.com/grosilho/gosdc/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_adv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("adv01. advection operator and implicit solve")

	dat := &inp.ProblemData{Type: "advection", C: 1, Freq: 1, Order: 1}
	p, err := New(dat, 16)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	chk.IntAssert(p.Ndofs(), 16)

	// derivative of a travelling wave: du/dt = -c du/dx
	u := p.NewValue()
	f := p.NewValue()
	p.SolExact(u, 0)
	p.EvalF(f, u, 0)
	dx := 1.0 / 16.0
	for i := 0; i < 16; i++ {
		x := float64(i) * dx
		// first order upwind of sin(2 pi x)
		want := -(math.Sin(2*math.Pi*x) - math.Sin(2*math.Pi*(x-dx))) / dx
		chk.Float64(tst, io.Sf("f[%d]", i), 1e-14, f[i], want)
	}

	// backward Euler step: u - dt*F(u) = uold
	dt := 0.01
	unew := p.NewValue()
	err = p.SolveSystem(unew, u, dt, u, dt)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}
	res := p.NewValue()
	p.EvalF(res, unew, dt)
	for i := 0; i < 16; i++ {
		chk.Float64(tst, io.Sf("res[%d]", i), 1e-12, unew[i]-dt*res[i], u[i])
	}
}

func Test_heat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat01. laplacian and conjugate gradients")

	dat := &inp.ProblemData{Type: "heat", Nu: 0.1, Freq: 1, SolTol: 1e-12}
	p, err := New(dat, 32)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}

	// eigenfunction: Lap(sin(w x)) = -w^2 sin(w x) up to discretisation
	u := p.NewValue()
	f := p.NewValue()
	p.SolExact(u, 0)
	p.EvalF(f, u, 0)
	w := 2 * math.Pi
	dx := 1.0 / 32.0
	// discrete symbol of the 3 point laplacian
	sym := -0.1 * (2 - 2*math.Cos(w*dx)) / (dx * dx)
	for i := 0; i < 32; i++ {
		chk.Float64(tst, io.Sf("f[%d]", i), 1e-12, f[i], sym*u[i])
	}

	// backward Euler step solved by cg
	dt := 0.05
	unew := p.NewValue()
	err = p.SolveSystem(unew, u, dt, u, dt)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}
	for i := 0; i < 32; i++ {
		chk.Float64(tst, io.Sf("u[%d]", i), 1e-10, unew[i], u[i]/(1-dt*sym))
	}
}

func Test_advdiff01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("advdiff01. imex splitting is consistent")

	dat := &inp.ProblemData{Type: "advdiff", C: 1, Nu: 0.02, Freq: 2, Order: 2, SolTol: 1e-12}
	p, err := New(dat, 32)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	im, ok := p.(Imex)
	if !ok {
		tst.Errorf("advdiff must implement the imex interface\n")
		return
	}

	u := p.NewValue()
	p.SolExact(u, 0.3)
	f := p.NewValue()
	fi := p.NewValue()
	fe := p.NewValue()
	p.EvalF(f, u, 0.3)
	im.EvalFimp(fi, u, 0.3)
	im.EvalFexp(fe, u, 0.3)
	for i := 0; i < 32; i++ {
		chk.Float64(tst, io.Sf("f[%d]", i), 1e-13, f[i], fi[i]+fe[i])
	}

	// implicit solve only inverts the diffusive part
	dt := 0.01
	unew := p.NewValue()
	err = p.SolveSystem(unew, u, dt, u, dt)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}
	im.EvalFimp(fi, unew, dt)
	for i := 0; i < 32; i++ {
		chk.Float64(tst, io.Sf("res[%d]", i), 1e-10, unew[i]-dt*fi[i], u[i])
	}
}

func Test_dahlq01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dahlq01. scalar test equation")

	dat := &inp.ProblemData{Type: "dahlquist", Lambda: -2}
	p, err := New(dat, 1)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}

	u := []float64{3}
	f := []float64{0}
	p.EvalF(f, u, 0)
	chk.Float64(tst, "f", 1e-17, f[0], -6)

	err = p.SolveSystem(u, []float64{1}, 0.5, u, 0)
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}
	chk.Float64(tst, "u", 1e-15, u[0], 0.5)

	p.SolExact(u, 1)
	chk.Float64(tst, "exact", 1e-15, u[0], math.Exp(-2))

	if _, err := New(dat, 4); err == nil {
		tst.Errorf("dahlquist with ndofs=4 must fail\n")
	}
	if _, err := New(&inp.ProblemData{Type: "burgers"}, 4); err == nil {
		tst.Errorf("unknown problem type must fail\n")
	}
}
