// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// fifo-heap-tests exercises the FIFO demo with the real instrumented
// allocator: every pool- and counter-assertion below pins the queue's
// exact allocation behavior.  The fatal-error collaborator is mocked
// only to observe that it is never reached on these paths.
package main

import (
	"encoding/binary"
	"os"

	unit "github.com/chucktilbury/unit-tests"
	"github.com/chucktilbury/unit-tests/pkg/fifo"
	"github.com/chucktilbury/unit-tests/pkg/heap"
)

var (
	s   *unit.Suite
	env fifo.Env
)

// fatalError stands in for the production handler, which would print
// and kill the process; on these happy paths it must never run.
func fatalError(format string, args ...interface{}) {
	s.EnterMock("fatal_error")
}

// word renders v the way the queue stores a native int.
func word(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func createAndDestroy(t *unit.T) {
	f := env.New()
	t.PoolSize(32)
	t.MemEnteredCount(heap.OpCalloc, 1)

	env.Destroy(f)
	t.PoolSize(0)
	t.MemEnteredCount(heap.OpFree, 1)

	t.MockNotEntered("fatal_error")
}

func itemsReturnedInOrder(t *unit.T) {
	f := env.New()
	t.PoolSize(32)
	t.TotalSize(32)
	t.MemEnteredCount(heap.OpCalloc, 1)

	env.Add(f, word(1))
	t.PoolSize(60)
	t.MemEnteredCount(heap.OpCalloc, 2)
	t.MemEnteredCount(heap.OpAlloc, 1)

	env.Add(f, word(2))
	t.PoolSize(88)
	t.MemEnteredCount(heap.OpCalloc, 3)
	t.MemEnteredCount(heap.OpAlloc, 2)

	env.Add(f, word(3))
	t.PoolSize(116)
	t.MemEnteredCount(heap.OpCalloc, 4)
	t.MemEnteredCount(heap.OpAlloc, 3)

	buf := make([]byte, 4)
	for want := uint32(1); want <= 3; want++ {
		t.True(env.Get(f, buf))
		t.PoolSize(116)
		unit.Eq(t, want, binary.LittleEndian.Uint32(buf))
		t.MemEnteredCount(heap.OpCalloc, 4)
		t.MemEnteredCount(heap.OpAlloc, 3)
	}

	// a fourth get fails and leaves the buffer untouched
	t.False(env.Get(f, buf))
	t.PoolSize(116)
	unit.Eq(t, uint32(3), binary.LittleEndian.Uint32(buf))

	env.Destroy(f)
	t.PoolSize(0)
	t.MemEnteredCount(heap.OpFree, 7)

	t.MockNotEntered("fatal_error")
}

func emptyGetFails(t *unit.T) {
	f := env.New()
	t.PoolSize(32)
	t.MemEnteredCount(heap.OpCalloc, 1)

	buf := word(123)
	t.False(env.Get(f, buf))
	unit.Eq(t, uint32(123), binary.LittleEndian.Uint32(buf))

	env.Destroy(f)
	t.PoolSize(0)
	t.MemEnteredCount(heap.OpFree, 1)

	t.MockNotEntered("fatal_error")
}

func emptyResetNoError(t *unit.T) {
	f := env.New()
	t.PoolSize(32)
	t.MemEnteredCount(heap.OpCalloc, 1)

	buf := word(123)
	t.False(env.Get(f, buf))
	unit.Eq(t, uint32(123), binary.LittleEndian.Uint32(buf))

	t.True(env.Reset(f))
	t.False(env.Get(f, buf))
	unit.Eq(t, uint32(123), binary.LittleEndian.Uint32(buf))

	// resetting again changes nothing observable
	t.True(env.Reset(f))

	env.Destroy(f)
	t.PoolSize(0)
	t.MemEnteredCount(heap.OpFree, 1)

	t.MockNotEntered("fatal_error")
}

func singleItemAfterReset(t *unit.T) {
	f := env.New()
	t.PoolSize(32)
	t.MemEnteredCount(heap.OpCalloc, 1)

	env.Add(f, word(123))
	t.PoolSize(60)

	buf := make([]byte, 4)
	t.True(env.Get(f, buf))
	t.PoolSize(60)
	unit.Eq(t, uint32(123), binary.LittleEndian.Uint32(buf))

	t.False(env.Get(f, buf))
	t.PoolSize(60)
	unit.Eq(t, uint32(123), binary.LittleEndian.Uint32(buf))

	t.True(env.Reset(f))

	t.True(env.Get(f, buf))
	t.PoolSize(60)
	unit.Eq(t, uint32(123), binary.LittleEndian.Uint32(buf))

	t.False(env.Get(f, buf))

	env.Destroy(f)
	t.PoolSize(0)
	t.MemEnteredCount(heap.OpFree, 3)
}

func main() {
	s = unit.New("FIFO heap tests", unit.Config{
		Memory:    true,
		Verbosity: unit.VerbosityFail,
	})
	env = fifo.Env{Mem: s.Mem(), Fatal: fatalError}

	s.TrackMock("fatal_error")

	s.Add("create_fifo_and_destroy_fifo_succeed", createAndDestroy)
	s.Add("fifo_items_are_returned_in_order", itemsReturnedInOrder)
	s.Add("empty_fifo_returns_error_on_get", emptyGetFails)
	s.Add("single_item_returns_after_reset", singleItemAfterReset)
	s.Add("empty_list_reset_no_error", emptyResetNoError)

	os.Exit(s.Main())
}
