// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

import "sync"

// Grid is the transport for steps running on concurrent goroutines. Each
// (from,to,tag) triple gets its own buffered channel, created on first use.
// The buffers are sized so that no send in the iteration schedule can block
// on a full channel; receives block until the matching message arrives.
type Grid struct {
	mu    sync.Mutex
	cap   int
	vals  map[mailKey]chan []float64
	flags map[mailKey]chan bool
}

// NewGrid returns a grid whose channels hold up to capacity messages
func NewGrid(capacity int) *Grid {
	return &Grid{
		cap:   capacity,
		vals:  make(map[mailKey]chan []float64),
		flags: make(map[mailKey]chan bool),
	}
}

// View returns the communicator seen by one slot
func (o *Grid) View(rank int) Comm {
	return &gridComm{grid: o, rank: rank}
}

func (o *Grid) valChan(k mailKey) chan []float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	ch, ok := o.vals[k]
	if !ok {
		ch = make(chan []float64, o.cap)
		o.vals[k] = ch
	}
	return ch
}

func (o *Grid) flagChan(k mailKey) chan bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	ch, ok := o.flags[k]
	if !ok {
		ch = make(chan bool, o.cap)
		o.flags[k] = ch
	}
	return ch
}

// gridComm implements Comm on top of a shared grid
type gridComm struct {
	grid *Grid
	rank int
}

func (o *gridComm) Send(vals []float64, to, tag int) {
	cp := make([]float64, len(vals))
	copy(cp, vals)
	o.grid.valChan(mailKey{o.rank, to, tag}) <- cp
}

func (o *gridComm) Isend(vals []float64, to, tag int) *Request {
	o.Send(vals, to, tag)
	return new(Request)
}

func (o *gridComm) Recv(vals []float64, from, tag int) {
	cp := <-o.grid.valChan(mailKey{from, o.rank, tag})
	copy(vals, cp)
}

func (o *gridComm) SendFlag(val bool, to, tag int) *Request {
	o.grid.flagChan(mailKey{o.rank, to, tag}) <- val
	return new(Request)
}

func (o *gridComm) RecvFlag(from, tag int) bool {
	return <-o.grid.flagChan(mailKey{from, o.rank, tag})
}
