// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"github.com/grosilho/gosdc/coll"
	"github.com/grosilho/gosdc/inp"
	"github.com/grosilho/gosdc/prob"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// ImexSweeper implements semi-implicit sweeps for problems split into a
// stiff implicit part and a nonstiff explicit part.
type ImexSweeper struct {

	// essential
	cl *coll.Collocation
	st *State
	p  prob.Imex

	// configuration
	qdi    [][]float64 // implicit preconditioner, lower triangular
	qde    [][]float64 // explicit preconditioner, strictly lower triangular
	collup bool        // end point by full quadrature

	// workspace
	fi  [][]float64 // implicit right hand side values
	fe  [][]float64 // explicit right hand side values
	rhs []float64
}

// Coll returns the collocation data
func (o *ImexSweeper) Coll() *coll.Collocation {
	return o.cl
}

// State returns the node values operated on
func (o *ImexSweeper) State() *State {
	return o.st
}

// EvalNode re-evaluates both parts of the right hand side at node m
func (o *ImexSweeper) EvalNode(m int) {
	t := o.cl.TimeAt(m, o.st.Time, o.st.Dt)
	o.p.EvalFimp(o.fi[m], o.st.U[m], t)
	o.p.EvalFexp(o.fe[m], o.st.U[m], t)
}

// Predict spreads the initial condition to all nodes
func (o *ImexSweeper) Predict() {
	for m := 1; m <= o.st.M; m++ {
		copy(o.st.U[m], o.st.U[0])
	}
	for m := 0; m <= o.st.M; m++ {
		o.EvalNode(m)
	}
}

// Integrate returns the quadrature dt*Q*(Fimp+Fexp), one row per node
func (o *ImexSweeper) Integrate() [][]float64 {
	q := utl.Alloc(o.st.M+1, o.st.Ndofs)
	for m := 1; m <= o.st.M; m++ {
		for j := 1; j <= o.st.M; j++ {
			c := o.st.Dt * o.cl.Qmat[m][j]
			la.VecAdd(q[m], c, o.fi[j], 1, q[m])
			la.VecAdd(q[m], c, o.fe[j], 1, q[m])
		}
	}
	return q
}

// UpdateNodes performs one sweep over the nodes
func (o *ImexSweeper) UpdateNodes() (err error) {
	st := o.st

	// integral of the previous iterate minus the preconditioner parts
	integ := o.Integrate()
	for m := 1; m <= st.M; m++ {
		for j := 1; j <= m; j++ {
			la.VecAdd(integ[m], -st.Dt*o.qdi[m][j], o.fi[j], 1, integ[m])
		}
		for j := 0; j < m; j++ {
			la.VecAdd(integ[m], -st.Dt*o.qde[m][j], o.fe[j], 1, integ[m])
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
			la.VecAdd(o.rhs, st.Dt*o.qdi[m][j], o.fi[j], 1, o.rhs)
		}
		for j := 0; j < m; j++ {
			la.VecAdd(o.rhs, st.Dt*o.qde[m][j], o.fe[j], 1, o.rhs)
		}
		err = o.p.SolveSystem(st.U[m], o.rhs, st.Dt*o.qdi[m][m], st.U[m], o.cl.TimeAt(m, st.Time, st.Dt))
		if err != nil {
			return
		}
		o.EvalNode(m)
	}
	return
}

// ComputeResidual updates State().Resid
func (o *ImexSweeper) ComputeResidual() {
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
func (o *ImexSweeper) ComputeEndPoint() {
	st := o.st
	if o.cl.RightIsNode && !o.collup {
		copy(st.Uend, st.U[st.M])
		return
	}
	copy(st.Uend, st.U[0])
	for j := 1; j <= st.M; j++ {
		c := st.Dt * o.cl.Wts[j]
		la.VecAdd(st.Uend, c, o.fi[j], 1, st.Uend)
		la.VecAdd(st.Uend, c, o.fe[j], 1, st.Uend)
	}
}

// add to factory
func init() {
	allocators["imex"] = func(cl *coll.Collocation, qdat *inp.QuadData, p prob.Problem) (Sweeper, error) {
		pim, ok := p.(prob.Imex)
		if !ok {
			return nil, chk.Err("imex sweeper needs a problem with a stiff/nonstiff splitting")
		}
		qdi, err := coll.QDelta(cl, qdat.QDelta)
		if err != nil {
			return nil, err
		}
		qde, err := coll.QDelta(cl, qdat.QDeltaE)
		if err != nil {
			return nil, err
		}
		n := p.Ndofs()
		return &ImexSweeper{
			cl:     cl,
			st:     NewState(cl.M, n),
			p:      pim,
			qdi:    qdi,
			qde:    qde,
			collup: qdat.CollUpdate,
			fi:     utl.Alloc(cl.M+1, n),
			fe:     utl.Alloc(cl.M+1, n),
			rhs:    make([]float64, n),
		}, nil
	}
}
