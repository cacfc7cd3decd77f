// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

// Entry is one recorded measurement
type Entry struct {
	Time  float64 // left end of the time slice
	Slot  int     // slot within the block
	Level int     // hierarchy level, 0 = finest
	Iter  int     // iteration count when recorded
	Key   string  // measurement name; e.g. residual, niter
	Val   float64 // measured value
}

// Recorder collects residuals and iteration counts. Each step gets its own
// recorder, so no locking is needed in time-parallel runs.
type Recorder struct {
	NopHook
	Entries []Entry
}

// PostSweep records the residual of the level just swept
func (o *Recorder) PostSweep(s *Step, lvl int) {
	o.Entries = append(o.Entries, Entry{
		Time:  s.Time(),
		Slot:  s.Status.Slot,
		Level: lvl,
		Iter:  s.Status.Iter,
		Key:   "residual",
		Val:   s.Levels[lvl].State().Resid,
	})
}

// PostStep records the number of iterations the step needed
func (o *Recorder) PostStep(s *Step, lvl int) {
	o.Entries = append(o.Entries, Entry{
		Time:  s.Time(),
		Slot:  s.Status.Slot,
		Level: lvl,
		Iter:  s.Status.Iter,
		Key:   "niter",
		Val:   float64(s.Status.Iter),
	})
}
