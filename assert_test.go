// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	unit "github.com/chucktilbury/unit-tests"
	"github.com/chucktilbury/unit-tests/pkg/heap"
)

// tally runs fn as the only test of a fresh suite and returns the
// recorded (pass, fail, error) counts plus the trace.
func tally(cfg unit.Config, fn unit.Func) (pass, fail, errs int, out string) {
	s, buf := newSuite(cfg)
	s.Add("probe", fn)
	s.Run()
	rec := s.Results()[0]
	return rec.Passed(), rec.Failed(), s.Errors(), buf.String()
}

func TestEachAssertionRecordsExactlyOnePassOrFail(t *testing.T) {
	pass, fail, errs, _ := tally(unit.Config{}, func(ut *unit.T) {
		ut.IntEq(1, 1)     // pass
		ut.IntEq(1, 2)     // fail
		ut.StrEq("a", "a") // pass
	})
	assert.Equal(t, 2, pass)
	assert.Equal(t, 1, fail)
	assert.Zero(t, errs)
}

func TestNumericAssertions(t *testing.T) {
	pass, fail, _, _ := tally(unit.Config{}, func(ut *unit.T) {
		require.True(t, ut.IntEq(-3, -3))
		require.False(t, ut.IntEq(-3, 3))
		require.True(t, ut.IntNeq(1, 2))
		require.False(t, ut.IntNeq(2, 2))
		require.True(t, ut.UintEq(7, 7))
		require.True(t, ut.UintNeq(7, 8))
		require.True(t, unit.Eq(ut, int64(9), int64(9)))
		require.False(t, unit.Eq(ut, uint32(1), uint32(2)))
		require.True(t, unit.Neq(ut, int8(1), int8(2)))
	})
	assert.Equal(t, 6, pass)
	assert.Equal(t, 3, fail)
}

func TestDoubleAssertionsUseTheToleranceBand(t *testing.T) {
	pass, fail, _, _ := tally(unit.Config{}, func(ut *unit.T) {
		require.True(t, ut.DoubleEq(1.0, 1.05, 0.05)) // on the edge
		require.False(t, ut.DoubleEq(1.0, 1.06, 0.05))
		require.True(t, ut.DoubleNeq(1.0, 1.06, 0.05))
		require.False(t, ut.DoubleNeq(1.0, 1.05, 0.05))
	})
	assert.Equal(t, 2, pass)
	assert.Equal(t, 2, fail)
}

func TestStringAssertionsCompareContent(t *testing.T) {
	pass, fail, _, out := tally(
		unit.Config{Verbosity: unit.VerbosityFail},
		func(ut *unit.T) {
			a := "con" + "tent"
			b := strings.Repeat("content", 1)
			require.True(t, ut.StrEq(a, b))
			require.True(t, ut.StrNeq("content", "different"))
			require.False(t, ut.StrEq("content", "different"))
		})
	assert.Equal(t, 2, pass)
	assert.Equal(t, 1, fail)
	assert.Contains(t, out, "FAIL: ")
	assert.Contains(t, out, "assert string equal")
}

func TestNilAssertionsSeeTypedNilPointers(t *testing.T) {
	pass, fail, _, _ := tally(unit.Config{}, func(ut *unit.T) {
		var p *int
		require.True(t, ut.Nil(nil))
		require.True(t, ut.Nil(p)) // typed nil in an interface
		require.False(t, ut.NotNil(p))
		v := 42
		require.True(t, ut.NotNil(&v))
		require.False(t, ut.Nil(&v))
	})
	assert.Equal(t, 3, pass)
	assert.Equal(t, 2, fail)
}

func TestBufferAssertionsCompareBytewise(t *testing.T) {
	pass, fail, _, _ := tally(unit.Config{}, func(ut *unit.T) {
		require.True(t, ut.BufEq([]byte{1, 2, 3}, []byte{1, 2, 3}))
		require.False(t, ut.BufEq([]byte{1, 2, 3}, []byte{1, 2, 4}))
		require.True(t, ut.BufNeq([]byte{1}, []byte{2}))
		require.False(t, ut.BufNeq(nil, nil))
	})
	assert.Equal(t, 2, pass)
	assert.Equal(t, 2, fail)
}

func TestMockAssertionsDelegateToTheTracker(t *testing.T) {
	s, _ := newSuite(unit.Config{})
	s.TrackMock("collab")
	s.Add("probe", func(ut *unit.T) {
		require.True(t, ut.MockNotEntered("collab"))
		s.EnterMock("collab")
		require.True(t, ut.MockEntered("collab"))
		require.True(t, ut.MockEnteredCount(1, "collab"))
		require.False(t, ut.MockEnteredCount(2, "collab"))
		require.False(t, ut.MockNotEntered("collab"))
	})
	require.Equal(t, 2, s.Run())
}

func TestAllocationAssertionsReadTheCounters(t *testing.T) {
	pass, fail, errs, _ := tally(
		unit.Config{Memory: true},
		func(ut *unit.T) {
			m := ut.Suite().Mem()
			b := m.Alloc(16)
			require.True(t, ut.PoolSize(16))
			require.True(t, ut.PoolNotZero())
			require.True(t, ut.MemEntered(heap.OpAlloc))
			require.True(t, ut.MemEnteredCount(heap.OpAlloc, 1))
			require.True(t, ut.MemNotEntered(heap.OpFree))
			m.Free(b)
			require.True(t, ut.PoolZero())
			require.True(t, ut.TotalSize(16))
			require.False(t, ut.PoolNotZero())
		})
	assert.Equal(t, 7, pass)
	assert.Equal(t, 1, fail)
	assert.Zero(t, errs)
}

// With allocation tracking disabled an allocation assertion is a
// configuration mistake: a harness error, never a test failure.
func TestAllocationAssertionsDisabledReportAnError(t *testing.T) {
	pass, fail, errs, out := tally(unit.Config{}, func(ut *unit.T) {
		require.False(t, ut.PoolSize(0))
		require.False(t, ut.PoolZero())
		require.False(t, ut.TotalSize(0))
		require.False(t, ut.MemEntered(heap.OpAlloc))
	})
	assert.Zero(t, pass)
	assert.Zero(t, fail)
	assert.Equal(t, 4, errs)
	assert.Contains(t, out, "memory tracking is disabled")
}

func TestFailuresPrintCallerAndSuiteName(t *testing.T) {
	_, _, _, out := tally(
		unit.Config{Verbosity: unit.VerbosityFail},
		func(ut *unit.T) { ut.IntEq(1, 2) })
	require.Contains(t, out, "FAIL: ")
	assert.Contains(t, out, ": fixture: ")
	assert.Contains(t, out, "assert int equal expected 1 but got 2")
}

func TestPassesPrintOnlyAtPassVerbosity(t *testing.T) {
	_, _, _, quiet := tally(
		unit.Config{Verbosity: unit.VerbosityFail},
		func(ut *unit.T) { ut.IntEq(1, 1) })
	assert.NotContains(t, quiet, "PASS: ")

	_, _, _, loud := tally(
		unit.Config{Verbosity: unit.VerbosityPass},
		func(ut *unit.T) { ut.IntEq(1, 1) })
	assert.Contains(t, loud, "PASS: ")
}
