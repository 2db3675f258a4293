// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

import "fmt"

// tracker records, per tracked name, how often the associated double
// was entered during the current test.  Mocks and stubs get one
// instance each.  Names match by content; at most one entry exists
// per distinct name.
type tracker struct {
	kind    string
	max     int
	entries []*trackEntry
}

type trackEntry struct {
	name  string
	count int
}

func newTracker(kind string, max int) *tracker {
	return &tracker{kind: kind, max: max}
}

// find returns the entry of given name or nil.
func (tr *tracker) find(name string) *trackEntry {
	for _, e := range tr.entries {
		if e.name == name {
			return e
		}
	}
	return nil
}

// track registers name for counting.  Re-tracking a name resets its
// counter instead of duplicating the entry.  A full table is reported
// to the caller; the name stays untracked but its double remains safe
// to invoke.
func (tr *tracker) track(name string) error {
	if e := tr.find(name); e != nil {
		e.count = 0
		return nil
	}
	if len(tr.entries) >= tr.max {
		return fmt.Errorf("%s table full (%d): %q not tracked",
			tr.kind, tr.max, name)
	}
	tr.entries = append(tr.entries, &trackEntry{name: name})
	return nil
}

// entered counts one invocation of name; untracked names are ignored.
func (tr *tracker) entered(name string) {
	if e := tr.find(name); e != nil {
		e.count++
	}
}

// count reports the invocations of name, 0 if untracked.
func (tr *tracker) count(name string) int {
	if e := tr.find(name); e != nil {
		return e.count
	}
	return 0
}

// reset zeroes all counters; the runner calls it before every test.
func (tr *tracker) reset() {
	for _, e := range tr.entries {
		e.count = 0
	}
}

func (tr *tracker) len() int { return len(tr.entries) }

// each visits the entries in tracking order.
func (tr *tracker) each(fn func(name string, count int)) {
	for _, e := range tr.entries {
		fn(e.name, e.count)
	}
}

// TrackMock registers a mock name for invocation counting.  Tracking
// is idempotent: re-tracking resets the counter.  Exceeding
// Config.MaxMocks reports a harness error and leaves the name
// untracked.
func (s *Suite) TrackMock(name string) {
	if err := s.mocks.track(name); err != nil {
		s.errorAt(3, "%v", err)
		return
	}
	s.msg(5, "tracking mock name = %q", name)
}

// TrackStub registers a stub name for invocation counting; see
// TrackMock.
func (s *Suite) TrackStub(name string) {
	if err := s.stubs.track(name); err != nil {
		s.errorAt(3, "%v", err)
		return
	}
	s.msg(5, "tracking stub name = %q", name)
}

// EnterMock reports that the mock of given name executes.  It belongs
// at the top of every mock body.  Invoking an untracked mock is
// harmless; the call is just not observed.
func (s *Suite) EnterMock(name string) {
	s.msg(5, "mock entered = %q", name)
	s.mocks.entered(name)
}

// EnterStub reports that the stub of given name executes; see
// EnterMock.
func (s *Suite) EnterStub(name string) {
	s.msg(5, "stub entered = %q", name)
	s.stubs.entered(name)
}

// MockCount is the invocation count of given mock during the current
// test, 0 for untracked names.
func (s *Suite) MockCount(name string) int { return s.mocks.count(name) }

// StubCount is the invocation count of given stub during the current
// test, 0 for untracked names.
func (s *Suite) StubCount(name string) int { return s.stubs.count(name) }
