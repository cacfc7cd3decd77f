// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"github.com/grosilho/gosdc/coll"
	"github.com/grosilho/gosdc/inp"
	"github.com/grosilho/gosdc/prob"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Implicit implements fully implicit sweeps preconditioned by a lower
// triangular approximation of the quadrature matrix.
type Implicit struct {

	// essential
	cl *coll.Collocation
	st *State
	p  prob.Problem

	// configuration
	qd     [][]float64 // lower triangular preconditioner
	collup bool        // end point by full quadrature

	// workspace
	ff  [][]float64 // right hand side values at the nodes
	rhs []float64
}

// Coll returns the collocation data
func (o *Implicit) Coll() *coll.Collocation {
	return o.cl
}

// State returns the node values operated on
func (o *Implicit) State() *State {
	return o.st
}

// EvalNode re-evaluates the right hand side at node m
func (o *Implicit) EvalNode(m int) {
	o.p.EvalF(o.ff[m], o.st.U[m], o.cl.TimeAt(m, o.st.Time, o.st.Dt))
}

// Predict spreads the initial condition to all nodes
func (o *Implicit) Predict() {
	for m := 1; m <= o.st.M; m++ {
		copy(o.st.U[m], o.st.U[0])
	}
	for m := 0; m <= o.st.M; m++ {
		o.EvalNode(m)
	}
}

// Integrate returns the quadrature dt*Q*F, one row per node
func (o *Implicit) Integrate() [][]float64 {
	q := utl.Alloc(o.st.M+1, o.st.Ndofs)
	for m := 1; m <= o.st.M; m++ {
		for j := 1; j <= o.st.M; j++ {
			la.VecAdd(q[m], o.st.Dt*o.cl.Qmat[m][j], o.ff[j], 1, q[m])
		}
	}
	return q
}

// UpdateNodes performs one sweep over the nodes
func (o *Implicit) UpdateNodes() (err error) {
	st := o.st

	// integral of the previous iterate minus the preconditioner part
	integ := o.Integrate()
	for m := 1; m <= st.M; m++ {
		for j := 1; j <= m; j++ {
			la.VecAdd(integ[m], -st.Dt*o.qd[m][j], o.ff[j], 1, integ[m])
		}
		la.VecAdd(integ[m], 1, st.U[0], 1, integ[m])
		if st.Tau != nil {
			la.VecAdd(integ[m], 1, st.Tau[m], 1, integ[m])
		}
	}

	// solve node by node, feeding updated values forward
	for m := 1; m <= st.M; m++ {
		copy(o.rhs, integ[m])
		for j := 1; j < m; j++ {
			la.VecAdd(o.rhs, st.Dt*o.qd[m][j], o.ff[j], 1, o.rhs)
		}
		err = o.p.SolveSystem(st.U[m], o.rhs, st.Dt*o.qd[m][m], st.U[m], o.cl.TimeAt(m, st.Time, st.Dt))
		if err != nil {
			return
		}
		o.EvalNode(m)
	}
	return
}

// ComputeResidual updates State().Resid
func (o *Implicit) ComputeResidual() {
	st := o.st
	q := o.Integrate()
	res := make([]float64, st.Ndofs)
	worst := 0.0
	for m := 1; m <= st.M; m++ {
		for k := 0; k < st.Ndofs; k++ {
			res[k] = st.U[0][k] + q[m][k] - st.U[m][k]
			if st.Tau != nil {
				res[k] += st.Tau[m][k]
			}
		}
		worst = utl.Max(worst, la.Vector(res).Largest(1))
	}
	st.Resid = worst
}

// ComputeEndPoint updates State().Uend
func (o *Implicit) ComputeEndPoint() {
	st := o.st
	if o.cl.RightIsNode && !o.collup {
		copy(st.Uend, st.U[st.M])
		return
	}
	copy(st.Uend, st.U[0])
	for j := 1; j <= st.M; j++ {
		la.VecAdd(st.Uend, st.Dt*o.cl.Wts[j], o.ff[j], 1, st.Uend)
	}
}

// add to factory
func init() {
	allocators["implicit"] = func(cl *coll.Collocation, qdat *inp.QuadData, p prob.Problem) (Sweeper, error) {
		qd, err := coll.QDelta(cl, qdat.QDelta)
		if err != nil {
			return nil, err
		}
		n := p.Ndofs()
		return &Implicit{
			cl:     cl,
			st:     NewState(cl.M, n),
			p:      p,
			qd:     qd,
			collup: qdat.CollUpdate,
			ff:     utl.Alloc(cl.M+1, n),
			rhs:    make([]float64, n),
		}, nil
	}
}
