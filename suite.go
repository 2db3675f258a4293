// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/chucktilbury/unit-tests/pkg/heap"
)

// Func is the signature of a registered test.  The passed T is bound
// to the test's own record; assertions made through it tally against
// that record only.
type Func func(*T)

// Test is one registry entry: a name, the test callable and the
// pass/fail tally of its execution window.  Records are created by
// Suite.Add and live until process exit.
type Test struct {
	name string
	fn   Func
	pass int
	fail int
}

// Name is the registered test name.
func (t *Test) Name() string { return t.name }

// Passed is the number of passed assertions of the test's run.
func (t *Test) Passed() int { return t.pass }

// Failed is the number of failed assertions of the test's run.
func (t *Test) Failed() int { return t.fail }

// Suite is the harness context: it owns the test registry, the mock
// and stub trackers, the allocation instrumentation and the run's
// aggregate counters.  Create instances with New; a Suite must not be
// shared between goroutines.
type Suite struct {
	name  string
	cfg   Config
	out   io.Writer
	tests []*Test
	mocks *tracker
	stubs *tracker
	mem   *heap.Tracker
	armed bool

	totalPass   int
	totalFail   int
	totalErrors int
}

// New returns a suite with given display name and configuration.
func New(name string, cfg Config) *Suite {
	cfg = cfg.withDefaults()
	s := &Suite{
		name:  name,
		cfg:   cfg,
		out:   cfg.Output,
		mocks: newTracker("mock", cfg.MaxMocks),
		stubs: newTracker("stub", cfg.MaxStubs),
	}
	if cfg.Memory {
		s.mem = heap.New()
		// frames: printAt, errorAt, this closure, the tracker
		// operation; 4 reports at the operation's call site.
		s.mem.OnError(func(msg string) { s.errorAt(4, "%s", msg) })
	}
	return s
}

// Name is the suite's display name.
func (s *Suite) Name() string { return s.name }

// Mem is the suite's allocation instrumentation layer, nil when
// Config.Memory is off.  Test programs pass it to the module under
// test as its allocator.
func (s *Suite) Mem() *heap.Tracker { return s.mem }

// Errors is the number of harness errors reported so far.  Harness
// errors flag configuration or usage mistakes; they never count as
// test failures.
func (s *Suite) Errors() int { return s.totalErrors }

// Tests is the number of registered tests.
func (s *Suite) Tests() int { return len(s.tests) }

// Results returns the test records in registration order.  The
// records carry their final tallies once Run returned.
func (s *Suite) Results() []*Test { return s.tests }

// Add registers fn under given name.  Tests run in registration
// order.  Registering beyond Config.MaxTests reports a harness error
// and drops the test.
func (s *Suite) Add(name string, fn Func) {
	if len(s.tests) >= s.cfg.MaxTests {
		s.errorAt(3, "test table full (%d): test %q not added",
			s.cfg.MaxTests, name)
		return
	}
	s.msg(5, "add test name = %q", name)
	s.tests = append(s.tests, &Test{name: name, fn: fn})
}

// Run executes all registered tests in registration order.  Before
// each test the mock and stub counters and the allocation counters
// are reset, so every test observes a clean slate; the suite's
// aggregate counters accumulate across the whole run.  The returned
// total fail count doubles as the process exit status.
func (s *Suite) Run() int {
	for i, tst := range s.tests {
		s.mocks.reset()
		s.stubs.reset()
		if s.mem != nil {
			s.mem.Reset()
		}
		s.msg(VerbosityFlow, "test %q start", tst.name)
		tst.fn(&T{s: s, rec: tst})
		s.msg(VerbosityFlow, "test %q end", tst.name)
		s.totalPass += tst.pass
		s.totalFail += tst.fail
		if s.cfg.Verbosity >= VerbosityFail {
			fmt.Fprintf(s.out, "%d. %s: pass: %d, fail: %d\n",
				i+1, tst.name, tst.pass, tst.fail)
		}
	}
	return s.totalFail
}

// Main runs all tests, prints the report and returns the exit status
// for the process.  Go has no process-exit hook, so the report is
// tied to the end of main instead:
//
//	os.Exit(s.Main())
//
// Programs running tests by other means should defer Report
// themselves.
func (s *Suite) Main() int {
	fails := s.Run()
	s.Report()
	return fails
}

// printAt emits one trace line: tag, line number and function of the
// frame skip levels up, the suite name and the formatted message.
func (s *Suite) printAt(skip int, tag, format string, args ...interface{}) {
	line, fn := 0, "?"
	if pc, _, l, ok := runtime.Caller(skip); ok {
		line = l
		if f := runtime.FuncForPC(pc); f != nil {
			fn = shortFunc(f.Name())
		}
	}
	fmt.Fprintf(s.out, "%s: %d: %s: %s: %s\n",
		tag, line, fn, s.name, fmt.Sprintf(format, args...))
}

// errorAt reports a harness error.  Errors always print and bump the
// suite's error counter; they do not fail the running test.
func (s *Suite) errorAt(skip int, format string, args ...interface{}) {
	s.totalErrors++
	s.printAt(skip, "ERROR", format, args...)
}

// msg prints a flow/debug message if the verbosity admits the level.
func (s *Suite) msg(level int, format string, args ...interface{}) {
	if s.cfg.Verbosity < level {
		return
	}
	s.printAt(3, "MSG", format, args...)
}

// shortFunc strips the package path from a runtime function name.
func shortFunc(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
