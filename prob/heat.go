// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"math"

	"github.com/grosilho/gosdc/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Heat implements the 1D periodic heat equation du/dt = nu d2u/dx2 on the
// unit interval. Implicit solves use conjugate gradients on the symmetric
// positive definite system I - factor*nu*Lap.
type Heat struct {

	// input
	N      int     // number of grid points
	Nu     float64 // diffusivity
	Freq   int     // frequency of the sinusoidal solution
	SolTol float64 // relative tolerance of the linear solver

	// derived
	dx float64
}

// Ndofs returns the number of degrees of freedom
func (o *Heat) Ndofs() int {
	return o.N
}

// NewValue allocates a zeroed solution vector
func (o *Heat) NewValue() []float64 {
	return make([]float64, o.N)
}

// lap computes f = nu d2u/dx2 with periodic boundaries
func (o *Heat) lap(f, u []float64) {
	c := o.Nu / (o.dx * o.dx)
	for i := 0; i < o.N; i++ {
		f[i] = c * (u[(i-1+o.N)%o.N] - 2*u[i] + u[(i+1)%o.N])
	}
}

// EvalF computes f = nu d2u/dx2
func (o *Heat) EvalF(f, u []float64, t float64) {
	o.lap(f, u)
}

// SolveSystem solves u - factor*nu*Lap(u) = rhs by conjugate gradients
func (o *Heat) SolveSystem(u, rhs []float64, factor float64, u0 []float64, t float64) error {
	copy(u, u0)
	apply := func(v, w []float64) {
		o.lap(v, w)
		for i := 0; i < o.N; i++ {
			v[i] = w[i] - factor*v[i]
		}
	}
	return solveCG(apply, u, rhs, o.SolTol, 2*o.N)
}

// SolExact computes the decaying sine wave
func (o *Heat) SolExact(u []float64, t float64) {
	w := 2 * math.Pi * float64(o.Freq)
	decay := math.Exp(-o.Nu * w * w * t)
	for i := 0; i < o.N; i++ {
		x := float64(i) * o.dx
		u[i] = decay * math.Sin(w*x)
	}
}

// solveCG runs the conjugate gradient iteration for apply(v,u) => v = A*u,
// overwriting u with the solution of A*u = rhs. The initial content of u is
// the starting guess.
func solveCG(apply func(v, u []float64), u, rhs []float64, tol float64, maxit int) error {
	n := len(u)
	r := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)
	apply(r, u)
	for i := 0; i < n; i++ {
		r[i] = rhs[i] - r[i]
	}
	copy(p, r)
	bnorm := floats.Norm(rhs, 2)
	if bnorm == 0 {
		bnorm = 1
	}
	rho := floats.Dot(r, r)
	for k := 0; k < maxit; k++ {
		if math.Sqrt(rho) <= tol*bnorm {
			return nil
		}
		apply(ap, p)
		den := floats.Dot(p, ap)
		if den == 0 {
			return chk.Err("conjugate gradients broke down after %d iterations", k)
		}
		alpha := rho / den
		floats.AddScaled(u, alpha, p)
		floats.AddScaled(r, -alpha, ap)
		rho2 := floats.Dot(r, r)
		beta := rho2 / rho
		for i := 0; i < n; i++ {
			p[i] = r[i] + beta*p[i]
		}
		rho = rho2
	}
	if math.Sqrt(rho) <= tol*bnorm {
		return nil
	}
	return chk.Err("conjugate gradients did not converge after %d iterations: res=%g", maxit, math.Sqrt(rho))
}

// add to factory
func init() {
	allocators["heat"] = func(dat *inp.ProblemData, ndofs int) (Problem, error) {
		return &Heat{
			N:      ndofs,
			Nu:     dat.Nu,
			Freq:   dat.Freq,
			SolTol: dat.SolTol,
			dx:     1.0 / float64(ndofs),
		}, nil
	}
}
