// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package heap instruments the allocation operations of a module
// under test.  A Tracker hands out Block handles and keeps each live
// block's size in a side table keyed by handle identity, so the size
// is recovered at release time without caller cooperation.  It
// maintains the outstanding byte count ("pool"), the cumulative byte
// count ("total") and one invocation counter per operation.
//
// A Tracker belongs to exactly one suite and is driven by one
// goroutine; it is not synchronized.
package heap

// Op enumerates the instrumented allocation operations.
type Op int

const (
	OpAlloc Op = iota
	OpCalloc
	OpFree
	OpRealloc
	OpStrdup
	numOps
)

// String returns the conventional C-heritage name of the operation.
func (o Op) String() string {
	switch o {
	case OpAlloc:
		return "malloc"
	case OpCalloc:
		return "calloc"
	case OpFree:
		return "free"
	case OpRealloc:
		return "realloc"
	case OpStrdup:
		return "strdup"
	}
	return "unknown"
}

// Block is the opaque handle of one allocation.  A nil *Block stands
// in for a failed allocation; doubles simulating out-of-memory return
// nil and the module under test is responsible for handling it.
type Block struct {
	data []byte
}

// NewBlock returns a stand-alone block outside any Tracker's
// bookkeeping.  Doubles use it to hand out storage without touching
// the instrumented counters.
func NewBlock(size int) *Block { return &Block{data: make([]byte, size)} }

// Bytes exposes the block's payload.  The payload of a zero-size
// block is empty but the block is still a valid, live allocation.
func (b *Block) Bytes() []byte { return b.data }

// Size is the payload size in bytes.
func (b *Block) Size() int { return len(b.data) }

// Tracker is the allocation instrumentation layer.  The zero value is
// not usable; create instances with New.
type Tracker struct {
	sizes   map[*Block]int
	pool    int
	total   int
	counts  [numOps]int
	onError func(msg string)
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{sizes: map[*Block]int{}}
}

// OnError installs the hook receiving bookkeeping violations, e.g. a
// double free.  Violations are usage errors of the module under test,
// not assertion failures; with no hook installed they are dropped.
func (m *Tracker) OnError(fn func(msg string)) { m.onError = fn }

// grab performs the real allocation and records it.
func (m *Tracker) grab(size int) *Block {
	b := &Block{data: make([]byte, size)}
	m.sizes[b] = size
	m.pool += size
	m.total += size
	return b
}

// Alloc allocates size bytes.  A zero size yields a valid zero-size
// block, never nil.
func (m *Tracker) Alloc(size int) *Block {
	m.counts[OpAlloc]++
	return m.grab(size)
}

// Calloc allocates count*size zeroed bytes.
func (m *Tracker) Calloc(count, size int) *Block {
	m.counts[OpCalloc]++
	return m.grab(count * size)
}

// Free releases b.  Freeing nil is a no-op that still counts as an
// invocation, matching the wrapped primitive's contract.  Releasing a
// foreign or already freed block is reported through the error hook.
func (m *Tracker) Free(b *Block) {
	m.counts[OpFree]++
	if b == nil {
		return
	}
	size, ok := m.sizes[b]
	if !ok {
		if m.onError != nil {
			m.onError("free of an unknown or already freed block")
		}
		return
	}
	delete(m.sizes, b)
	m.pool -= size
	b.data = nil
}

// Realloc resizes b to size bytes preserving its prefix.  Realloc of
// nil behaves like Alloc.  The pool moves by the signed size delta,
// the total only by a positive delta.
func (m *Tracker) Realloc(b *Block, size int) *Block {
	m.counts[OpRealloc]++
	if b == nil {
		return m.grab(size)
	}
	old, ok := m.sizes[b]
	if !ok {
		if m.onError != nil {
			m.onError("realloc of an unknown or already freed block")
		}
		return nil
	}
	data := make([]byte, size)
	copy(data, b.data)
	b.data = data
	m.sizes[b] = size
	m.pool += size - old
	if size > old {
		m.total += size - old
	}
	return b
}

// Strdup allocates a copy of s including a trailing zero byte, like
// the C primitive it stands in for.
func (m *Tracker) Strdup(s string) *Block {
	m.counts[OpStrdup]++
	b := m.grab(len(s) + 1)
	copy(b.data, s)
	return b
}

// Pool is the outstanding byte count: risen by allocations, lowered
// by releases, moved by the delta on resize.  It is zero iff every
// allocation was balanced by a release.
func (m *Tracker) Pool() int { return m.pool }

// Total is the cumulative byte count ever allocated; monotonically
// non-decreasing between resets.
func (m *Tracker) Total() int { return m.total }

// Count reports how often the given operation was invoked since the
// last reset.
func (m *Tracker) Count(op Op) int {
	if op < 0 || op >= numOps {
		return 0
	}
	return m.counts[op]
}

// Live is the number of outstanding blocks.
func (m *Tracker) Live() int { return len(m.sizes) }

// Reset zeroes all counters and forgets all live blocks; the runner
// calls it before every test.
func (m *Tracker) Reset() {
	m.sizes = map[*Block]int{}
	m.pool = 0
	m.total = 0
	m.counts = [numOps]int{}
}
