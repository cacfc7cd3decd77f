// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package coll implements collocation nodes, quadrature matrices and the
// Q-delta preconditioners used by SDC sweeps
package coll

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Collocation holds the abscissae and integration matrices of one collocation
// discretisation of the unit interval. All quantities are computed once, at
// allocation time, and never change afterwards.
type Collocation struct {

	// input data
	M      int    // number of collocation nodes
	Family string // node family; e.g. "radau-right"

	// derived
	Tau         []float64   // [M+1] abscissae; Tau[0] = 0 is the left endpoint
	Qmat        [][]float64 // [M+1][M+1] integration matrix; row m integrates from 0 to Tau[m]; row and column 0 are zero
	Wts         []float64   // [M+1] quadrature weights over the whole interval; Wts[0] = 0
	RightIsNode bool        // last node coincides with the right edge of the interval
}

// node tables on the unit interval, up to five nodes per family
var (
	radauRightNodes = map[int][]float64{
		1: {1.0},
		2: {1.0 / 3.0, 1.0},
		3: {0.15505102572168220, 0.64494897427831780, 1.0},
		4: {0.08858795951270395, 0.40946686444073471, 0.78765946176084706, 1.0},
		5: {0.05710419611451768, 0.27684301363812383, 0.58359043236891682, 0.86024013565621934, 1.0},
	}
	lobattoNodes = map[int][]float64{
		2: {0.0, 1.0},
		3: {0.0, 0.5, 1.0},
		4: {0.0, 0.27639320225002103, 0.72360679774997897, 1.0},
		5: {0.0, 0.17267316464601143, 0.5, 0.82732683535398857, 1.0},
	}
	legendreNodes = map[int][]float64{
		1: {0.5},
		2: {0.21132486540518713, 0.78867513459481287},
		3: {0.11270166537925831, 0.5, 0.88729833462074169},
		4: {0.06943184420297371, 0.33000947820757187, 0.66999052179242813, 0.93056815579702629},
		5: {0.04691007703066800, 0.23076534494715845, 0.5, 0.76923465505284155, 0.95308992296933200},
	}
)

// RightIsNode tells whether a node family includes the right edge of the
// interval as a collocation node
func RightIsNode(family string) (bool, error) {
	switch family {
	case "radau-right", "lobatto":
		return true, nil
	case "legendre":
		return false, nil
	}
	return false, chk.Err("unknown node family %q", family)
}

// New computes the collocation data for m nodes of the given family
func New(m int, family string) (o *Collocation, err error) {

	// nodes
	var tab map[int][]float64
	switch family {
	case "radau-right":
		tab = radauRightNodes
	case "lobatto":
		tab = lobattoNodes
	case "legendre":
		tab = legendreNodes
	default:
		err = chk.Err("unknown node family %q", family)
		return
	}
	nodes, ok := tab[m]
	if !ok {
		err = chk.Err("family %q has no table for nnodes=%d", family, m)
		return
	}

	// allocate
	o = new(Collocation)
	o.M = m
	o.Family = family
	o.Tau = make([]float64, m+1)
	copy(o.Tau[1:], nodes)
	o.RightIsNode, _ = RightIsNode(family)

	// Vandermonde matrix over the nodes and its inverse. The integrals of the
	// Lagrange basis follow from the monomial moments:
	//   ∫0^x ℓj = Σk inv(V)[k][j] x^(k+1)/(k+1)
	v := la.NewMatrix(m, m)
	vi := la.NewMatrix(m, m)
	for i := 0; i < m; i++ {
		p := 1.0
		for k := 0; k < m; k++ {
			v.Set(i, k, p)
			p *= o.Tau[i+1]
		}
	}
	la.MatInv(vi, v, false)

	// integration matrix and weights
	o.Qmat = utl.Alloc(m+1, m+1)
	o.Wts = make([]float64, m+1)
	for i := 1; i <= m; i++ {
		for j := 1; j <= m; j++ {
			s := 0.0
			p := o.Tau[i] // Tau^1
			for k := 0; k < m; k++ {
				s += vi.Get(k, j-1) * p / float64(k+1)
				p *= o.Tau[i]
			}
			o.Qmat[i][j] = s
		}
	}
	for j := 1; j <= m; j++ {
		s := 0.0
		for k := 0; k < m; k++ {
			s += vi.Get(k, j-1) / float64(k+1)
		}
		o.Wts[j] = s
	}
	return
}

// TimeAt returns the absolute time of node m for a step starting at time t
// with size dt
func (o *Collocation) TimeAt(m int, t, dt float64) float64 {
	return t + dt*o.Tau[m]
}
