// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

import (
	"fmt"
	"text/tabwriter"
)

// Report prints the run's aggregate summary: suite name, registered
// tests, cumulative pass/fail/error counts and, with memory
// instrumentation on, the bytes ever allocated and the bytes still
// outstanding.  Above VerbosityFlow it also dumps every tracked mock
// and stub with its last-recorded invocation count.  Report prints
// regardless of verbosity; Main calls it after running the tests.
func (s *Suite) Report() {
	fmt.Fprintf(s.out, "\n%s: test funcs: %d, pass: %d, fail: %d, errors: %d\n",
		s.name, len(s.tests), s.totalPass, s.totalFail, s.totalErrors)
	fmt.Fprintf(s.out, "     tests: %d, stubs: %d, mocks: %d\n",
		len(s.tests), s.stubs.len(), s.mocks.len())
	if s.mem != nil {
		fmt.Fprintf(s.out, "     memory allocated: %d, memory still in use: %d\n",
			s.mem.Total(), s.mem.Pool())
	}
	if s.cfg.Verbosity > VerbosityFlow {
		s.dumpDoubles()
	}
}

// dumpDoubles prints the mock and stub tables.
func (s *Suite) dumpDoubles() {
	w := tabwriter.NewWriter(s.out, 0, 8, 1, ' ', 0)
	fmt.Fprintf(w, "\nMocks:\n")
	s.mocks.each(func(name string, count int) {
		fmt.Fprintf(w, "   %s:\t%d\n", name, count)
	})
	fmt.Fprintf(w, "Stubs:\n")
	s.stubs.each(func(name string, count int) {
		fmt.Fprintf(w, "   %s:\t%d\n", name, count)
	})
	w.Flush()
}
