// Copyright 2017 The Gosdc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pfasst

import "github.com/cpmech/gosl/chk"

// tagStatus is the tag reserved for convergence flags
const tagStatus = 99

// Comm exchanges values and flags between the steps of one block. Messages
// with the same endpoints and tag are delivered in sending order. All
// transports copy the data on send, so a buffer may be reused immediately.
type Comm interface {

	// Send delivers a copy of vals to slot `to`, blocking until accepted
	Send(vals []float64, to, tag int)

	// Isend delivers a copy of vals to slot `to` without blocking
	Isend(vals []float64, to, tag int) *Request

	// Recv blocks until a matching message arrives and copies it into vals
	Recv(vals []float64, from, tag int)

	// SendFlag delivers a flag to slot `to` without blocking
	SendFlag(val bool, to, tag int) *Request

	// RecvFlag blocks until a matching flag arrives
	RecvFlag(from, tag int) bool
}

// Request is a handle for a non-blocking send. Since all transports copy on
// send, the operation is complete as soon as the handle exists.
type Request struct{}

// Wait returns once the send buffer may be reused
func (o *Request) Wait() {}

// mailKey identifies one message queue
type mailKey struct {
	from, to, tag int
}

// Mailbox is the in-order transport for steps executed one after another on
// a single goroutine. Sends append to per-key queues; receives pop from the
// front. Receiving from an empty queue means the schedule is broken and is
// fatal.
type Mailbox struct {
	vals  map[mailKey][][]float64
	flags map[mailKey][]bool
}

// NewMailbox returns an empty mailbox
func NewMailbox() *Mailbox {
	return &Mailbox{
		vals:  make(map[mailKey][][]float64),
		flags: make(map[mailKey][]bool),
	}
}

// View returns the communicator seen by one slot
func (o *Mailbox) View(rank int) Comm {
	return &boxComm{box: o, rank: rank}
}

// boxComm implements Comm on top of a shared mailbox
type boxComm struct {
	box  *Mailbox
	rank int
}

func (o *boxComm) Send(vals []float64, to, tag int) {
	k := mailKey{o.rank, to, tag}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	o.box.vals[k] = append(o.box.vals[k], cp)
}

func (o *boxComm) Isend(vals []float64, to, tag int) *Request {
	o.Send(vals, to, tag)
	return new(Request)
}

func (o *boxComm) Recv(vals []float64, from, tag int) {
	k := mailKey{from, o.rank, tag}
	q := o.box.vals[k]
	if len(q) == 0 {
		chk.Panic("no message from slot %d to slot %d with tag %d", from, o.rank, tag)
	}
	copy(vals, q[0])
	o.box.vals[k] = q[1:]
}

func (o *boxComm) SendFlag(val bool, to, tag int) *Request {
	k := mailKey{o.rank, to, tag}
	o.box.flags[k] = append(o.box.flags[k], val)
	return new(Request)
}

func (o *boxComm) RecvFlag(from, tag int) bool {
	k := mailKey{from, o.rank, tag}
	q := o.box.flags[k]
	if len(q) == 0 {
		chk.Panic("no flag from slot %d to slot %d with tag %d", from, o.rank, tag)
	}
	o.box.flags[k] = q[1:]
	return q[0]
}
