// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"math"

	"github.com/grosilho/gosdc/inp"

	"github.com/cpmech/gosl/chk"
)

// Dahlquist implements the scalar test equation du/dt = lambda*u with
// u(0) = 1. It serves order and convergence studies.
type Dahlquist struct {
	Lambda float64
}

// Ndofs returns 1
func (o *Dahlquist) Ndofs() int {
	return 1
}

// NewValue allocates a zeroed solution vector
func (o *Dahlquist) NewValue() []float64 {
	return make([]float64, 1)
}

// EvalF computes f = lambda*u
func (o *Dahlquist) EvalF(f, u []float64, t float64) {
	f[0] = o.Lambda * u[0]
}

// SolveSystem solves u - factor*lambda*u = rhs
func (o *Dahlquist) SolveSystem(u, rhs []float64, factor float64, u0 []float64, t float64) error {
	den := 1 - factor*o.Lambda
	if den == 0 {
		return chk.Err("singular scalar system: factor*lambda = 1")
	}
	u[0] = rhs[0] / den
	return nil
}

// SolExact computes exp(lambda*t)
func (o *Dahlquist) SolExact(u []float64, t float64) {
	u[0] = math.Exp(o.Lambda * t)
}

// add to factory
func init() {
	allocators["dahlquist"] = func(dat *inp.ProblemData, ndofs int) (Problem, error) {
		if ndofs != 1 {
			return nil, chk.Err("dahlquist problem needs ndofs=1: got %d", ndofs)
		}
		return &Dahlquist{Lambda: dat.Lambda}, nil
	}
}
