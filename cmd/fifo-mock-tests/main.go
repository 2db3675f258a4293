// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// fifo-mock-tests exercises the FIFO demo's out-of-memory and
// invalid-handle paths.  The allocator is mocked to fail on demand
// and the fatal-error collaborator raises back into the enclosing
// capture block, so each abort path can be asserted on without the
// process dying.
package main

import (
	"os"

	unit "github.com/chucktilbury/unit-tests"
	"github.com/chucktilbury/unit-tests/pkg/fifo"
	"github.com/chucktilbury/unit-tests/pkg/heap"
)

var (
	s   *unit.Suite
	env fifo.Env

	// fatalMsg holds the last message given to the fatal-error mock.
	fatalMsg string

	// callocPass is how many calloc calls succeed before the mock
	// starts failing again; reset per test as needed.
	callocPass int
)

func fatalError(format string, args ...interface{}) {
	s.EnterMock("fatal_error")
	fatalMsg = format
	s.Raise()
}

// mockAllocator simulates exhausted memory: alloc always fails,
// calloc fails once callocPass runs out, free only records the call.
type mockAllocator struct{}

func (mockAllocator) Alloc(size int) *heap.Block {
	s.EnterMock("malloc")
	return nil
}

func (mockAllocator) Calloc(count, size int) *heap.Block {
	s.EnterMock("calloc")
	if callocPass > 0 {
		callocPass--
		return heap.NewBlock(count * size)
	}
	return nil
}

func (mockAllocator) Free(b *heap.Block) {
	s.EnterMock("free")
}

func nilHandleReturnsError(t *unit.T) {
	t.False(env.Get(nil, nil))
	t.MockNotEntered("fatal_error")

	t.False(env.Reset(nil))
	t.MockNotEntered("fatal_error")

	// check it twice
	t.False(env.Reset(nil))
	t.MockNotEntered("fatal_error")

	t.Capture(func() {
		env.Add(nil, nil)
	})
	t.MockEntered("fatal_error")
	t.MockEnteredCount(1, "fatal_error")
	t.StrEq("attempt to add to an invalid FIFO", fatalMsg)
	t.MockNotEntered("calloc")
	t.MockNotEntered("malloc")
}

func createFailsWithoutMemory(t *unit.T) {
	var f *fifo.Fifo
	t.Capture(func() {
		f = env.New()
	})
	t.MockEntered("fatal_error")
	t.StrEq("cannot allocate memory for FIFO struct", fatalMsg)
	t.MockEntered("calloc")
	t.Nil(f)
}

func destroyNilSkipsFree(t *unit.T) {
	env.Destroy(nil)
	t.MockNotEntered("free")
}

func addFatalOnFailedAllocate(t *unit.T) {
	callocPass = 1
	var f *fifo.Fifo
	t.Capture(func() {
		f = env.New()
	})
	t.NotNil(f)
	t.MockEnteredCount(1, "calloc")
	t.MockNotEntered("fatal_error")

	// the node allocation fails first
	t.Capture(func() {
		env.Add(f, nil)
	})
	t.MockEnteredCount(2, "calloc")
	t.MockEntered("fatal_error")
	t.StrEq("cannot allocate memory for FIFO element", fatalMsg)

	// with the node allocation passing, the payload allocation fails
	callocPass = 1
	t.Capture(func() {
		env.Add(f, nil)
	})
	t.MockEnteredCount(3, "calloc")
	t.MockEnteredCount(1, "malloc")
	t.MockEntered("fatal_error")
	t.StrEq("cannot allocate memory for FIFO element data", fatalMsg)
}

func main() {
	s = unit.New("FIFO tests mocking the allocator", unit.Config{
		Capture:   true,
		Verbosity: unit.VerbosityFlow,
	})
	env = fifo.Env{Mem: mockAllocator{}, Fatal: fatalError}

	s.TrackMock("fatal_error")
	s.TrackMock("malloc")
	s.TrackMock("calloc")
	s.TrackMock("free")

	s.Add("null_handle_returns_error", nilHandleReturnsError)
	s.Add("fifo_create_fails_data_structure", createFailsWithoutMemory)
	s.Add("fifo_destroy_does_not_call_free_for_null", destroyNilSkipsFree)
	s.Add("fifo_add_fatal_error_on_failed_allocate", addFatalOnFailedAllocate)

	os.Exit(s.Main())
}
