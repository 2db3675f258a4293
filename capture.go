// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

// raised is the sentinel transferring control from Raise back to the
// armed Capture block.  It carries the suite so a Capture never
// swallows a raise belonging to a different suite.
type raised struct{ s *Suite }

// Capture runs body with the suite's resumption point armed: a Raise
// anywhere in the call chain beneath body transfers control directly
// past the Capture call, discarding any state body built after the
// raise point.  A body completing normally leaves all state as if
// Capture were absent.
//
// The resumption point is a single process-wide slot, not a stack.
// Pairing each raising call 1:1 with an enclosing Capture is the
// caller's obligation: nesting Capture blocks or raising from another
// goroutine is undefined.  With Config.Capture off the call reports a
// harness error and body is not run, so misuse surfaces immediately.
func (t *T) Capture(body func()) {
	s := t.s
	if !s.cfg.Capture {
		s.errorAt(3, "capture is disabled: enable Config.Capture to use Capture blocks")
		return
	}
	if s.armed {
		s.msg(5, "capture block nested: overwriting the armed resumption point")
	}
	s.armed = true
	defer func() {
		s.armed = false
		r := recover()
		if r == nil {
			return
		}
		if rs, ok := r.(raised); ok && rs.s == s {
			s.msg(5, "capture resumed after raise")
			return
		}
		panic(r)
	}()
	body()
}

// Raise transfers control back to the armed Capture block.  Mocks
// standing in for abrupt-termination calls (a fatal-error handler,
// an exit wrapper) call it so the test resumes instead of the process
// dying.  Raising with no armed Capture is a caller error and
// propagates as an ordinary panic.  With Config.Capture off the call
// reports a harness error and returns normally.
func (s *Suite) Raise() {
	if !s.cfg.Capture {
		s.errorAt(3, "capture is disabled: enable Config.Capture to use Raise")
		return
	}
	s.msg(5, "raise")
	panic(raised{s: s})
}
