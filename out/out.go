// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of the statistics recorded
// during a simulation
package out

import (
	goio "io"

	"github.com/grosilho/gosdc/pfasst"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Global variables
var (
	Stats []pfasst.Entry // all recorded entries, set by Start
)

// Start loads the results of a finished simulation
func Start(m *pfasst.Main) {
	Stats = m.Stats()
}

// Selector picks entries by key and position. Negative numbers match any
// level, slot or iteration; an empty key matches any key.
type Selector struct {
	Key   string
	Level int
	Slot  int
	Iter  int
}

// Any returns a selector matching everything with the given key
func Any(key string) Selector {
	return Selector{Key: key, Level: -1, Slot: -1, Iter: -1}
}

// Match tells whether one entry is picked by this selector
func (o Selector) Match(e pfasst.Entry) bool {
	if o.Key != "" && e.Key != o.Key {
		return false
	}
	if o.Level >= 0 && e.Level != o.Level {
		return false
	}
	if o.Slot >= 0 && e.Slot != o.Slot {
		return false
	}
	if o.Iter >= 0 && e.Iter != o.Iter {
		return false
	}
	return true
}

// Extract returns all loaded entries picked by sel, keeping their order
func Extract(sel Selector) (out []pfasst.Entry) {
	for _, e := range Stats {
		if sel.Match(e) {
			out = append(out, e)
		}
	}
	return
}

// Values returns the values of all entries picked by sel
func Values(sel Selector) (out []float64) {
	for _, e := range Extract(sel) {
		out = append(out, e.Val)
	}
	return
}

// Niters returns the start time and iteration count of every finished step
func Niters() (times []float64, niters []int) {
	for _, e := range Extract(Any("niter")) {
		times = append(times, e.Time)
		niters = append(niters, int(e.Val))
	}
	return
}

// MaxVal returns the largest value among the entries picked by sel
func MaxVal(sel Selector) (max float64) {
	for i, v := range Values(sel) {
		if i == 0 {
			max = v
			continue
		}
		max = utl.Max(max, v)
	}
	return
}

// ResidualTrace returns the residual history of one step on one level
func ResidualTrace(slot, level int) []float64 {
	return Values(Selector{Key: "residual", Level: level, Slot: slot, Iter: -1})
}

// Report writes a table with one line per recorded entry
func Report(w goio.Writer) (err error) {
	l := io.Sf("%12s%6s%6s%6s%12s%14s\n", "time", "slot", "level", "iter", "key", "value")
	for _, e := range Stats {
		l += io.Sf("%12.6f%6d%6d%6d%12s%14.6e\n", e.Time, e.Slot, e.Level, e.Iter, e.Key, e.Val)
	}
	_, err = w.Write([]byte(l))
	return
}
