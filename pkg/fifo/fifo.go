// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fifo is the harness's demonstration consumer: a singly
// linked queue whose storage comes from an injected allocator and
// whose fatal-error path is an injected callable.  Both seams exist
// so tests can instrument the queue's allocation behavior or replace
// the collaborators with mocks; the queue itself knows nothing about
// the harness.
package fifo

import "github.com/chucktilbury/unit-tests/pkg/heap"

// Allocator is the allocation surface the queue needs.  A
// *heap.Tracker satisfies it; mocks return nil blocks to simulate
// exhausted memory.
type Allocator interface {
	Alloc(size int) *heap.Block
	Calloc(count, size int) *heap.Block
	Free(b *heap.Block)
}

// FatalFunc stands in for the program's fatal-error handler.  The
// production handler prints and terminates the process; a test double
// records the call and typically raises back into a capture block.
type FatalFunc func(format string, args ...interface{})

// Block sizes of the queue's bookkeeping records.  The queue charges
// its own header and per-element nodes to the allocator, so leak
// accounting covers the container itself, not only the payloads.
const (
	headerSize  = 32
	elementSize = 24
)

// Env carries the queue's two collaborators.  All queue operations
// hang off an Env so even a nil queue handle still reaches the
// fatal-error seam.
type Env struct {
	Mem   Allocator
	Fatal FatalFunc
}

// Fifo is an opaque queue handle.
type Fifo struct {
	header *heap.Block
	first  *element
	last   *element
	crnt   *element
	count  int
}

type element struct {
	node *heap.Block
	data *heap.Block
	next *element
}

// Len is the number of elements added since creation.
func (f *Fifo) Len() int {
	if f == nil {
		return 0
	}
	return f.count
}

// New creates an empty queue.  The header record is charged to the
// allocator; a failed allocation goes to the fatal-error seam and
// yields nil.
func (e Env) New() *Fifo {
	hdr := e.Mem.Calloc(1, headerSize)
	if hdr == nil {
		e.Fatal("cannot allocate memory for FIFO struct")
		return nil
	}
	return &Fifo{header: hdr}
}

// Add appends a copy of data to the queue.  Adding to a nil handle is
// fatal before any allocation happens.  A zero-length payload is
// valid.
func (e Env) Add(f *Fifo, data []byte) {
	if f == nil {
		e.Fatal("attempt to add to an invalid FIFO")
		return
	}
	node := e.Mem.Calloc(1, elementSize)
	if node == nil {
		e.Fatal("cannot allocate memory for FIFO element")
		return
	}
	buf := e.Mem.Alloc(len(data))
	if buf == nil {
		e.Fatal("cannot allocate memory for FIFO element data")
		return
	}
	copy(buf.Bytes(), data)
	el := &element{node: node, data: buf}
	if f.first == nil {
		f.first, f.last, f.crnt = el, el, el
	} else {
		f.last.next = el
		f.last = el
	}
	f.count++
}

// Get copies the current element's payload into dst and advances the
// read cursor.  The cursor advances even when dst is nil and no copy
// is made.  It returns false, leaving dst untouched, at the end of
// the queue or for a nil handle.
func (e Env) Get(f *Fifo, dst []byte) bool {
	if f == nil || f.crnt == nil {
		return false
	}
	if dst != nil {
		copy(dst, f.crnt.data.Bytes())
	}
	f.crnt = f.crnt.next
	return true
}

// Reset rewinds the read cursor to the first element.  It is
// idempotent and reports false only for a nil handle.
func (e Env) Reset(f *Fifo) bool {
	if f == nil {
		return false
	}
	f.crnt = f.first
	return true
}

// Destroy releases every payload, node and the header: 2n+1 Free
// calls for a queue of n elements.  Destroying a nil handle is a
// no-op that never reaches the allocator.
func (e Env) Destroy(f *Fifo) {
	if f == nil {
		return
	}
	var next *element
	for el := f.first; el != nil; el = next {
		next = el.next
		e.Mem.Free(el.data)
		e.Mem.Free(el.node)
	}
	e.Mem.Free(f.header)
	f.first, f.last, f.crnt = nil, nil, nil
	f.count = 0
}
