// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	unit "github.com/chucktilbury/unit-tests"
)

func TestRaiseResumesJustPastTheCaptureBlock(t *testing.T) {
	s, _ := newSuite(unit.Config{Capture: true})
	var trace []string
	s.Add("raises", func(ut *unit.T) {
		ut.Capture(func() {
			trace = append(trace, "before")
			s.Raise()
			trace = append(trace, "after") // must never run
		})
		trace = append(trace, "resumed")
	})

	require.Zero(t, s.Run())
	assert.Equal(t, []string{"before", "resumed"}, trace)
}

func TestRaiseUnwindsThroughTheCallChain(t *testing.T) {
	s, _ := newSuite(unit.Config{Capture: true})
	aborting := func() { s.Raise() }
	resumed := false
	s.Add("raises_deep", func(ut *unit.T) {
		ut.Capture(func() {
			aborting()
			t.Error("statement after the raise point was executed")
		})
		resumed = true
	})

	require.Zero(t, s.Run())
	assert.True(t, resumed)
}

func TestCaptureWithoutRaiseIsTransparent(t *testing.T) {
	s, _ := newSuite(unit.Config{Capture: true})
	ran := false
	s.Add("no_raise", func(ut *unit.T) {
		ut.Capture(func() { ran = true })
		ut.IntEq(1, 1)
	})

	require.Zero(t, s.Run())
	assert.True(t, ran)
	assert.Zero(t, s.Errors())
}

func TestCaptureDisabledReportsAHarnessError(t *testing.T) {
	s, out := newSuite(unit.Config{})
	ran := false
	s.Add("misuses_capture", func(ut *unit.T) {
		ut.Capture(func() { ran = true })
	})

	require.Zero(t, s.Run())
	assert.False(t, ran, "a disabled Capture must not run its body")
	assert.Equal(t, 1, s.Errors())
	assert.Contains(t, out.String(), "capture is disabled")
}

func TestRaiseDisabledReportsAHarnessError(t *testing.T) {
	s, out := newSuite(unit.Config{})
	s.Add("misuses_raise", func(ut *unit.T) {
		s.Raise() // must return normally instead of panicking
	})

	require.Zero(t, s.Run())
	assert.Equal(t, 1, s.Errors())
	assert.Contains(t, out.String(), "capture is disabled")
}

func TestUnarmedRaisePropagatesAsPanic(t *testing.T) {
	s, _ := newSuite(unit.Config{Capture: true})
	require.Panics(t, func() { s.Raise() })
}

func TestCaptureIgnoresForeignPanics(t *testing.T) {
	s, _ := newSuite(unit.Config{Capture: true})
	s.Add("panics", func(ut *unit.T) {
		ut.Capture(func() { panic("not a raise") })
	})

	assert.PanicsWithValue(t, "not a raise", func() { s.Run() })
}
