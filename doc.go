// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package unit is a single-process harness for testing individual
// functions in isolation.  A test binary compiles the module under
// test together with its test file; there is no separate runner
// process and no test discovery.  The harness provides
//
//   - a bounded test registry and a runner executing tests in
//     registration order,
//   - invocation tracking for mocked and stubbed collaborators,
//   - heap-allocation instrumentation (see pkg/heap) with
//     outstanding- and cumulative-byte accounting,
//   - a capture mechanism that lets a test survive a simulated
//     fatal-error call and keep asserting afterwards,
//   - an assertion engine recording pass/fail tallies per test, and
//   - an end-of-run report.
//
// All state lives on a Suite instance created by New; nothing is
// package-global.  A test program names its suite, tracks the doubles
// it cares about, registers its tests and exits with the fail count:
//
//	s := unit.New("FIFO tests", unit.Config{Memory: true, Verbosity: 1})
//	s.TrackMock("fatal_error")
//	s.Add("create_and_destroy", createAndDestroy)
//	os.Exit(s.Main())
//
// Mocks and stubs are ordinary functions or method values whose first
// statement reports the invocation:
//
//	func fatalError(format string, args ...interface{}) {
//	    s.EnterMock("fatal_error")
//	    s.Raise() // simulate abrupt termination, see T.Capture
//	}
//
// The harness is strictly single-threaded: tests run synchronously in
// registration order and no suite state is synchronized.  Capture
// blocks must be raised from the goroutine that armed them, and at
// most one capture block may be active at a time; both are caller
// obligations, not runtime-enforced guards.
package unit
