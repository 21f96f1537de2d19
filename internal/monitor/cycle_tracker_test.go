package monitor

import (
	"testing"
	"time"

	"github.com/aleister1102/metrowatch/internal/common/timeutils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleTracker_CycleID(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tracker := NewCycleTracker(timeutils.FixedClock(start), zerolog.Nop())

	id, err := ulid.ParseStrict(tracker.CycleID())
	require.NoError(t, err)
	assert.Equal(t, uint64(start.UnixMilli()), id.Time())

	other := NewCycleTracker(timeutils.FixedClock(start), zerolog.Nop())
	assert.NotEqual(t, tracker.CycleID(), other.CycleID())
}

func TestCycleTracker_Transitions(t *testing.T) {
	tracker := NewCycleTracker(nil, zerolog.Nop())
	assert.Equal(t, StateStart, tracker.State())

	tracker.Enter(StateFetch)
	tracker.Enter(StateAbort)

	assert.Equal(t, StateAbort, tracker.State())
	assert.Equal(t, []CycleState{StateStart, StateFetch, StateAbort}, tracker.Transitions())
}

func TestCycleTracker_Elapsed(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	tracker := NewCycleTracker(clock, zerolog.Nop())

	now = now.Add(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, tracker.Elapsed())
}
