// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grosilho/gosdc/pfasst"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// load fills Stats with a small handmade history
func load() {
	Stats = []pfasst.Entry{
		{Time: 0, Slot: 0, Level: 0, Iter: 1, Key: "residual", Val: 1e-2},
		{Time: 0, Slot: 0, Level: 1, Iter: 1, Key: "residual", Val: 3e-2},
		{Time: 0, Slot: 0, Level: 0, Iter: 2, Key: "residual", Val: 1e-6},
		{Time: 0, Slot: 0, Level: 0, Iter: 2, Key: "niter", Val: 2},
		{Time: 0.1, Slot: 1, Level: 0, Iter: 1, Key: "residual", Val: 2e-2},
		{Time: 0.1, Slot: 1, Level: 0, Iter: 3, Key: "residual", Val: 4e-7},
		{Time: 0.1, Slot: 1, Level: 0, Iter: 3, Key: "niter", Val: 3},
	}
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. selectors")

	load()

	// by key
	chk.IntAssert(len(Extract(Any("residual"))), 5)
	chk.IntAssert(len(Extract(Any("niter"))), 2)

	// by position
	fin := Extract(Selector{Key: "residual", Level: 0, Slot: 1, Iter: -1})
	chk.IntAssert(len(fin), 2)
	chk.Float64(tst, "first", 1e-17, fin[0].Val, 2e-2)
	chk.Float64(tst, "last", 1e-17, fin[1].Val, 4e-7)

	// traces keep iteration order
	chk.Array(tst, "trace", 1e-17, ResidualTrace(0, 0), []float64{1e-2, 1e-6})
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. derived quantities")

	load()

	times, niters := Niters()
	chk.Array(tst, "times", 1e-17, times, []float64{0, 0.1})
	chk.Ints(tst, "niters", niters, []int{2, 3})

	chk.Float64(tst, "max resid", 1e-17, MaxVal(Any("residual")), 3e-2)
	chk.Float64(tst, "max fine resid", 1e-17, MaxVal(Selector{Key: "residual", Level: 0, Slot: -1, Iter: 1}), 2e-2)
}

func Test_out03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out03. report table")

	load()

	var buf bytes.Buffer
	if err := Report(&buf); err != nil {
		tst.Errorf("report failed: %v\n", err)
		return
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	chk.IntAssert(len(lines), 8)
	if !strings.Contains(lines[0], "value") {
		tst.Errorf("missing header line\n")
	}
	if !strings.Contains(lines[4], "niter") {
		tst.Errorf("line 4 must hold the first step summary\n")
	}
	if io.Verbose {
		io.Pf("%s\n", buf.String())
	}
}
