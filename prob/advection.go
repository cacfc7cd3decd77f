// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prob

import (
	"math"

	"github.com/grosilho/gosdc/inp"

	"github.com/cpmech/gosl/la"
)

// Advection implements the 1D periodic advection equation du/dt = -c du/dx
// on the unit interval, discretised by finite differences. Implicit solves
// factor the dense system matrix once per distinct factor and reuse the
// inverse afterwards.
type Advection struct {

	// input
	N    int     // number of grid points
	C    float64 // advection speed
	Freq int     // frequency of the sinusoidal solution

	// derived
	dx   float64
	aa   *la.Matrix             // system matrix: F(u) = aa*u
	invs map[float64]*la.Matrix // cached inverses of I - factor*aa
}

// Ndofs returns the number of degrees of freedom
func (o *Advection) Ndofs() int {
	return o.N
}

// NewValue allocates a zeroed solution vector
func (o *Advection) NewValue() []float64 {
	return make([]float64, o.N)
}

// EvalF computes f = -c du/dx
func (o *Advection) EvalF(f, u []float64, t float64) {
	la.MatVecMul(f, 1, o.aa, u)
}

// SolveSystem solves u - factor*F(u) = rhs
func (o *Advection) SolveSystem(u, rhs []float64, factor float64, u0 []float64, t float64) (err error) {
	mi, ok := o.invs[factor]
	if !ok {
		m := la.NewMatrix(o.N, o.N)
		for i := 0; i < o.N; i++ {
			for j := 0; j < o.N; j++ {
				m.Set(i, j, -factor*o.aa.Get(i, j))
			}
			m.Add(i, i, 1)
		}
		mi = la.NewMatrix(o.N, o.N)
		la.MatInv(mi, m, false)
		o.invs[factor] = mi
	}
	la.MatVecMul(u, 1, mi, rhs)
	return
}

// SolExact computes the travelling sine wave
func (o *Advection) SolExact(u []float64, t float64) {
	w := 2 * math.Pi * float64(o.Freq)
	for i := 0; i < o.N; i++ {
		x := float64(i) * o.dx
		u[i] = math.Sin(w * (x - o.C*t))
	}
}

// add to factory
func init() {
	allocators["advection"] = func(dat *inp.ProblemData, ndofs int) (Problem, error) {
		o := &Advection{
			N:    ndofs,
			C:    dat.C,
			Freq: dat.Freq,
			dx:   1.0 / float64(ndofs),
			invs: make(map[float64]*la.Matrix),
		}
		o.aa = la.NewMatrix(ndofs, ndofs)
		switch dat.Order {
		case 2:
			c := o.C / (2 * o.dx)
			for i := 0; i < ndofs; i++ {
				o.aa.Add(i, (i+1)%ndofs, -c)
				o.aa.Add(i, (i-1+ndofs)%ndofs, c)
			}
		default:
			// first order upwind
			c := o.C / o.dx
			if o.C >= 0 {
				for i := 0; i < ndofs; i++ {
					o.aa.Add(i, i, -c)
					o.aa.Add(i, (i-1+ndofs)%ndofs, c)
				}
			} else {
				for i := 0; i < ndofs; i++ {
					o.aa.Add(i, (i+1)%ndofs, -c)
					o.aa.Add(i, i, c)
				}
			}
		}
		return o, nil
	}
}
