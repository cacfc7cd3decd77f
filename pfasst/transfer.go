// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

import (
	"github.com/grosilho/gosdc/xfer"

	"github.com/cpmech/gosl/la"
)

// Transfer moves node values between two adjacent levels. Restriction
// computes the correction that makes the coarse collocation problem
// consistent with the fine one; prolongation adds the coarse update back
// onto the fine nodes. Both levels share the same collocation nodes.
type Transfer struct {
	fine   *Level
	coarse *Level
	space  xfer.Space
}

// NewTransfer connects a fine level to the next coarser one
func NewTransfer(fine, coarse *Level, space xfer.Space) *Transfer {
	return &Transfer{fine: fine, coarse: coarse, space: space}
}

// Restrict moves values down to the coarse level and computes its correction
func (o *Transfer) Restrict() {
	ff, fc := o.fine.State(), o.coarse.State()

	// inject node values and re-evaluate the right hand side
	for m := 0; m <= ff.M; m++ {
		o.space.Restrict(fc.U[m], ff.U[m])
		o.coarse.Sweep.EvalNode(m)
	}

	// tau correction: restricted fine integral minus coarse integral
	qf := o.fine.Sweep.Integrate()
	qc := o.coarse.Sweep.Integrate()
	rq := make([]float64, fc.Ndofs)
	for m := 1; m <= ff.M; m++ {
		o.space.Restrict(fc.Tau[m], qf[m])
		la.VecAdd(fc.Tau[m], -1, qc[m], 1, fc.Tau[m])
		if ff.Tau != nil {
			o.space.Restrict(rq, ff.Tau[m])
			la.VecAdd(fc.Tau[m], 1, rq, 1, fc.Tau[m])
		}
	}

	// remember the restricted values to prolong the difference later
	for m := 0; m <= fc.M; m++ {
		copy(fc.UOld[m], fc.U[m])
	}
}

// Prolong adds the interpolated coarse update onto the fine nodes. The
// initial condition at node 0 is owned by the controller and left alone.
func (o *Transfer) Prolong() {
	ff, fc := o.fine.State(), o.coarse.State()
	diff := make([]float64, fc.Ndofs)
	corr := make([]float64, ff.Ndofs)
	for m := 1; m <= ff.M; m++ {
		for k := 0; k < fc.Ndofs; k++ {
			diff[k] = fc.U[m][k] - fc.UOld[m][k]
		}
		o.space.Prolong(corr, diff)
		la.VecAdd(ff.U[m], 1, corr, 1, ff.U[m])
		o.fine.Sweep.EvalNode(m)
	}
}
