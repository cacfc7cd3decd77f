// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xfer

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_fdper01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fdper01. injection and linear interpolation")

	tr, err := New("fdper", 8, 4)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}

	// restriction picks the even points
	fine := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	coarse := make([]float64, 4)
	tr.Restrict(coarse, fine)
	chk.Array(tst, "coarse", 1e-17, coarse, []float64{0, 2, 4, 6})

	// prolongation of a linear periodic hat
	coarse = []float64{0, 1, 0, -1}
	tr.Prolong(fine, coarse)
	chk.Array(tst, "fine", 1e-17, fine, []float64{0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5})
}

func Test_fdper02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fdper02. round trip and smooth data")

	tr, err := New("fdper", 16, 8)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}

	// restrict then prolong reproduces coarse data at coarse points
	xc := utl.LinSpace(0, 1, 9)[:8]
	coarse := make([]float64, 8)
	for i, x := range xc {
		coarse[i] = math.Sin(2 * math.Pi * x)
	}
	fine := make([]float64, 16)
	tr.Prolong(fine, coarse)
	back := make([]float64, 8)
	tr.Restrict(back, fine)
	chk.Array(tst, "R(P(uc))", 1e-17, back, coarse)

	// interpolation error of a smooth periodic function is second order
	emax := 0.0
	for i := 0; i < 16; i++ {
		x := float64(i) / 16.0
		e := math.Abs(fine[i] - math.Sin(2*math.Pi*x))
		emax = utl.Max(emax, e)
	}
	if emax > 0.08 {
		tst.Errorf("interpolation error too large: %g\n", emax)
	}
}

func Test_copy01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("copy01. identity transfer")

	tr, err := New("copy", 5, 5)
	if err != nil {
		tst.Errorf("allocation failed: %v\n", err)
		return
	}
	u := []float64{1, 2, 3, 4, 5}
	v := make([]float64, 5)
	tr.Restrict(v, u)
	chk.Array(tst, "restrict", 1e-17, v, u)
	tr.Prolong(v, u)
	chk.Array(tst, "prolong", 1e-17, v, u)
}

func Test_xfer01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("xfer01. allocation errors")

	if _, err := New("spectral", 8, 4); err == nil {
		tst.Errorf("unknown transfer type must fail\n")
	}
	if _, err := New("fdper", 12, 5); err == nil {
		tst.Errorf("ratio 12:5 must fail\n")
	}
	if _, err := New("copy", 8, 4); err == nil {
		tst.Errorf("copy with different sizes must fail\n")
	}
}
