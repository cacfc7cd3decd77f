// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prob implements the spatial problems advanced in time
package prob

import (
	"github.com/grosilho/gosdc/inp"

	"github.com/cpmech/gosl/chk"
)

// Problem defines a semi-discrete initial value problem du/dt = F(u,t)
type Problem interface {

	// Ndofs returns the number of spatial degrees of freedom
	Ndofs() int

	// NewValue allocates a zeroed solution vector
	NewValue() []float64

	// EvalF computes f = F(u,t)
	EvalF(f, u []float64, t float64)

	// SolveSystem solves u - factor*F(u,t) = rhs for u, starting from u0
	SolveSystem(u, rhs []float64, factor float64, u0 []float64, t float64) error

	// SolExact computes the exact solution at time t
	SolExact(u []float64, t float64)
}

// Imex extends Problem with a stiff/nonstiff splitting F = Fimp + Fexp
type Imex interface {
	Problem

	// EvalFimp computes the implicit (stiff) part f = Fimp(u,t)
	EvalFimp(f, u []float64, t float64)

	// EvalFexp computes the explicit (nonstiff) part f = Fexp(u,t)
	EvalFexp(f, u []float64, t float64)
}

// allocators maps problem type to a maker function
var allocators = map[string]func(dat *inp.ProblemData, ndofs int) (Problem, error){}

// New returns a new problem discretised with ndofs degrees of freedom
func New(dat *inp.ProblemData, ndofs int) (Problem, error) {
	alloc, ok := allocators[dat.Type]
	if !ok {
		return nil, chk.Err("cannot find problem type %q", dat.Type)
	}
	return alloc(dat, ndofs)
}
