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

func TestTrackedMockCountsInvocations(t *testing.T) {
	s, _ := newSuite(unit.Config{})
	s.TrackMock("collab")

	assert.Zero(t, s.MockCount("collab"))
	s.EnterMock("collab")
	s.EnterMock("collab")
	assert.Equal(t, 2, s.MockCount("collab"))
}

func TestUntrackedDoubleIsSafeToEnter(t *testing.T) {
	s, _ := newSuite(unit.Config{})

	s.EnterMock("never_tracked")
	s.EnterStub("never_tracked")
	assert.Zero(t, s.MockCount("never_tracked"))
	assert.Zero(t, s.StubCount("never_tracked"))
	assert.Zero(t, s.Errors())
}

func TestReTrackingResetsTheCounterWithoutDuplicating(t *testing.T) {
	s, _ := newSuite(unit.Config{MaxMocks: 1})
	s.TrackMock("collab")
	s.EnterMock("collab")
	require.Equal(t, 1, s.MockCount("collab"))

	// the single table slot is occupied; re-tracking must reset the
	// counter rather than overflow the table
	s.TrackMock("collab")
	assert.Zero(t, s.MockCount("collab"))
	assert.Zero(t, s.Errors())
}

func TestMockAndStubTablesAreIndependent(t *testing.T) {
	s, _ := newSuite(unit.Config{})
	s.TrackMock("same_name")
	s.TrackStub("same_name")

	s.EnterMock("same_name")
	assert.Equal(t, 1, s.MockCount("same_name"))
	assert.Zero(t, s.StubCount("same_name"))
}

func TestTrackingBeyondCapacityIsAReportedError(t *testing.T) {
	s, out := newSuite(unit.Config{MaxMocks: 1, MaxStubs: 1})
	s.TrackMock("first")
	s.TrackMock("second")
	s.TrackStub("first")
	s.TrackStub("second")

	require.Equal(t, 2, s.Errors())
	assert.Contains(t, out.String(), "mock table full (1)")
	assert.Contains(t, out.String(), "stub table full (1)")

	// the dropped name stays safely untracked
	s.EnterMock("second")
	assert.Zero(t, s.MockCount("second"))
}
