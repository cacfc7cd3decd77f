// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

import "github.com/cpmech/gosl/chk"

// Stage identifies the position of a step within one iteration cycle
type Stage int

const (
	StgSpread     Stage = iota // spread the initial condition to all nodes
	StgPredict                 // coarse burn-in across earlier steps
	StgFine                    // sweep on the finest level
	StgCheck                   // convergence check and status exchange
	StgUp                      // restrict through the middle levels
	StgCoarseRecv              // receive the coarsest initial condition
	StgCoarse                  // sweep on the coarsest level
	StgDown                    // prolong corrections back to the finest level
	StgDone                    // step finished
)

// stage names for messages
var stgNames = map[Stage]string{
	StgSpread:     "spread",
	StgPredict:    "predict",
	StgFine:       "fine",
	StgCheck:      "check",
	StgUp:         "up",
	StgCoarseRecv: "coarse-recv",
	StgCoarse:     "coarse",
	StgDown:       "down",
	StgDone:       "done",
}

// String returns the stage name
func (o Stage) String() string {
	if name, ok := stgNames[o]; ok {
		return name
	}
	return "unknown"
}

// cond holds the data deciding the next stage
type cond struct {
	multiLevel bool // more than one level in the hierarchy
	multiStep  bool // more than one step in the active block
	predict    bool // burn-in predictor enabled
	proceed    bool // another iteration is needed
}

// transition returns the stage following s. The cycle distinguishes four
// operating modes: single-level serial, single-level pipelined, multi-level
// serial and multi-level pipelined.
func transition(s Stage, c cond) (Stage, error) {
	switch s {
	case StgSpread:
		if c.multiLevel && c.predict {
			return StgPredict, nil
		}
		if c.multiLevel {
			return StgFine, nil
		}
		if c.multiStep {
			return StgCoarse, nil
		}
		return StgFine, nil
	case StgPredict:
		return StgFine, nil
	case StgFine:
		return StgCheck, nil
	case StgCheck:
		if !c.proceed {
			return StgDone, nil
		}
		if c.multiLevel {
			return StgUp, nil
		}
		if c.multiStep {
			return StgCoarseRecv, nil
		}
		return StgFine, nil
	case StgUp:
		return StgCoarseRecv, nil
	case StgCoarseRecv:
		return StgCoarse, nil
	case StgCoarse:
		if c.multiLevel {
			return StgDown, nil
		}
		return StgCheck, nil
	case StgDown:
		return StgFine, nil
	}
	return StgDone, chk.Err("cannot leave stage %q", s)
}
