// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"math"

	"github.com/grosilho/gosdc/inp"
)

// AdvDiff implements the 1D periodic advection-diffusion equation
// du/dt = -c du/dx + nu d2u/dx2 split for imex sweeps: diffusion is the
// implicit part and advection the explicit one.
type AdvDiff struct {

	// input
	N      int     // number of grid points
	C      float64 // advection speed
	Nu     float64 // diffusivity
	Freq   int     // frequency of the sinusoidal solution
	Order  int     // order of the advection stencil
	SolTol float64 // relative tolerance of the linear solver

	// derived
	dx float64
}

// Ndofs returns the number of degrees of freedom
func (o *AdvDiff) Ndofs() int {
	return o.N
}

// NewValue allocates a zeroed solution vector
func (o *AdvDiff) NewValue() []float64 {
	return make([]float64, o.N)
}

// EvalFimp computes the diffusive part f = nu d2u/dx2
func (o *AdvDiff) EvalFimp(f, u []float64, t float64) {
	c := o.Nu / (o.dx * o.dx)
	for i := 0; i < o.N; i++ {
		f[i] = c * (u[(i-1+o.N)%o.N] - 2*u[i] + u[(i+1)%o.N])
	}
}

// EvalFexp computes the advective part f = -c du/dx
func (o *AdvDiff) EvalFexp(f, u []float64, t float64) {
	if o.Order == 2 {
		c := o.C / (2 * o.dx)
		for i := 0; i < o.N; i++ {
			f[i] = -c * (u[(i+1)%o.N] - u[(i-1+o.N)%o.N])
		}
		return
	}
	c := o.C / o.dx
	if o.C >= 0 {
		for i := 0; i < o.N; i++ {
			f[i] = -c * (u[i] - u[(i-1+o.N)%o.N])
		}
		return
	}
	for i := 0; i < o.N; i++ {
		f[i] = -c * (u[(i+1)%o.N] - u[i])
	}
}

// EvalF computes the full right hand side
func (o *AdvDiff) EvalF(f, u []float64, t float64) {
	o.EvalFimp(f, u, t)
	g := make([]float64, o.N)
	o.EvalFexp(g, u, t)
	for i := 0; i < o.N; i++ {
		f[i] += g[i]
	}
}

// SolveSystem solves u - factor*Fimp(u) = rhs by conjugate gradients
func (o *AdvDiff) SolveSystem(u, rhs []float64, factor float64, u0 []float64, t float64) error {
	copy(u, u0)
	apply := func(v, w []float64) {
		o.EvalFimp(v, w, t)
		for i := 0; i < o.N; i++ {
			v[i] = w[i] - factor*v[i]
		}
	}
	return solveCG(apply, u, rhs, o.SolTol, 2*o.N)
}

// SolExact computes the travelling decaying sine wave
func (o *AdvDiff) SolExact(u []float64, t float64) {
	w := 2 * math.Pi * float64(o.Freq)
	decay := math.Exp(-o.Nu * w * w * t)
	for i := 0; i < o.N; i++ {
		x := float64(i) * o.dx
		u[i] = decay * math.Sin(w*(x-o.C*t))
	}
}

// add to factory
func init() {
	allocators["advdiff"] = func(dat *inp.ProblemData, ndofs int) (Problem, error) {
		return &AdvDiff{
			N:      ndofs,
			C:      dat.C,
			Nu:     dat.Nu,
			Freq:   dat.Freq,
			Order:  dat.Order,
			SolTol: dat.SolTol,
			dx:     1.0 / float64(ndofs),
		}, nil
	}
}
