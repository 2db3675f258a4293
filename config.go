// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

import (
	"io"
	"os"
)

// Verbosity levels of a suite's trace output.  Harness errors are
// printed at every level.
const (
	// VerbositySummary prints the end-of-run summary only.
	VerbositySummary = 0
	// VerbosityFail additionally prints failed assertions and the
	// per-test result lines.
	VerbosityFail = 1
	// VerbosityPass additionally prints passing assertions.
	VerbosityPass = 2
	// VerbosityFlow additionally prints test start/end messages.
	VerbosityFlow = 3
	// VerbosityDebug and above print the harness's internal trace.
	VerbosityDebug = 4
)

// Default table capacities of a suite.
const (
	DefaultMaxTests = 20
	DefaultMaxMocks = 10
	DefaultMaxStubs = 10
)

// Config selects the optional harness features and table capacities
// of a suite.  The zero value is usable: memory instrumentation and
// capture off, failures-and-summary output to stdout, default
// capacities.
type Config struct {

	// Memory turns the allocation instrumentation layer on.  The
	// allocation assertions of T report a harness error when it is
	// off.
	Memory bool

	// Capture turns the non-local-exit mechanism on.  T.Capture and
	// Suite.Raise report a harness error when it is off.
	Capture bool

	// Verbosity is one of the Verbosity* levels above; greater
	// values enable the debug trace.
	Verbosity int

	// MaxTests, MaxMocks and MaxStubs bound the suite's tables for
	// the whole run.  Exceeding a bound is reported as a harness
	// error and the registration is dropped.
	MaxTests int
	MaxMocks int
	MaxStubs int

	// Output receives all trace and report lines; defaults to
	// os.Stdout.  The harness's own tests inject a buffer here.
	Output io.Writer
}

// withDefaults fills the zero fields of c which have non-zero
// defaults.
func (c Config) withDefaults() Config {
	if c.MaxTests == 0 {
		c.MaxTests = DefaultMaxTests
	}
	if c.MaxMocks == 0 {
		c.MaxMocks = DefaultMaxMocks
	}
	if c.MaxStubs == 0 {
		c.MaxStubs = DefaultMaxStubs
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
	return c
}
