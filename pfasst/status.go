// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

// Status holds the position and progress of one step within a block
type Status struct {

	// position within the block
	Slot  int  // index of the time slice within the block
	Prev  int  // slot to the left
	Next  int  // slot to the right
	First bool // no slot to the left
	Last  bool // no slot to the right

	// progress
	Iter     int   // current iteration, starting at 1
	Stage    Stage // current stage
	Done     bool  // this step has converged
	PrevDone bool  // the step to the left has converged
}

// Restart resets the status for a new block of size slots
func (o *Status) Restart(slot, size int) {
	o.Slot = slot
	o.Prev = slot - 1
	o.Next = slot + 1
	o.First = o.Prev == -1
	o.Last = o.Next == size
	o.Iter = 1
	o.Stage = StgSpread
	o.Done = false
	o.PrevDone = o.First
}
