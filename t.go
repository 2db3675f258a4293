// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

// T is handed to a running test and bound to that test's record.
// Its assertion methods (see assert.go) record exactly one pass or
// one fail each; Error reports harness-level problems which are
// counted separately and never fail the test.
type T struct {
	s   *Suite
	rec *Test
}

// Name is the running test's registered name.
func (t *T) Name() string { return t.rec.name }

// Suite is the harness context the test runs under.
func (t *T) Suite() *Suite { return t.s }

// pass records a passed assertion and prints it at VerbosityPass.
// Caller info is taken from the assertion's call site.
func (t *T) pass(format string, args ...interface{}) {
	t.rec.pass++
	if t.s.cfg.Verbosity >= VerbosityPass {
		t.s.printAt(3, "PASS", format, args...)
	}
}

// fail records a failed assertion and prints it at VerbosityFail.
func (t *T) fail(format string, args ...interface{}) {
	t.rec.fail++
	if t.s.cfg.Verbosity >= VerbosityFail {
		t.s.printAt(3, "FAIL", format, args...)
	}
}

// Error reports a harness error against the suite: a configuration or
// usage mistake rather than a failed expectation.  It always prints
// and does not fail the test.
func (t *T) Error(format string, args ...interface{}) {
	t.s.errorAt(3, format, args...)
}

// Log prints a message if the suite's verbosity is at least level.
func (t *T) Log(level int, format string, args ...interface{}) {
	t.s.msg(level, format, args...)
}
