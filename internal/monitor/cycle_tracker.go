package monitor

import (
	"time"

	"github.com/aleister1102/metrowatch/internal/common/timeutils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// CycleState is a stage of one polling cycle.
type CycleState string

const (
	StateStart     CycleState = "START"
	StateFetch     CycleState = "FETCH"
	StateNormalize CycleState = "NORMALIZE"
	StateDiff      CycleState = "DIFF"
	StateNotify    CycleState = "NOTIFY"
	StatePersist   CycleState = "PERSIST"
	StateEnd       CycleState = "END"
	// StateAbort ends a cycle before any store was touched.
	StateAbort CycleState = "ABORT"
	// StateFailed ends a cycle whose snapshot could not be saved.
	StateFailed CycleState = "FAILED"
)

// CycleTracker follows one cycle through its states and carries its id.
type CycleTracker struct {
	cycleID     string
	state       CycleState
	startedAt   time.Time
	transitions []CycleState
	clock       timeutils.Clock
	logger      zerolog.Logger
}

// NewCycleTracker starts a new cycle identified by a fresh ULID.
func NewCycleTracker(clock timeutils.Clock, logger zerolog.Logger) *CycleTracker {
	if clock == nil {
		clock = timeutils.OperatorClock()
	}
	startedAt := clock()
	cycleID := ulid.MustNew(ulid.Timestamp(startedAt), ulid.DefaultEntropy()).String()

	return &CycleTracker{
		cycleID:     cycleID,
		state:       StateStart,
		startedAt:   startedAt,
		transitions: []CycleState{StateStart},
		clock:       clock,
		logger:      logger.With().Str("cycle_id", cycleID).Logger(),
	}
}

// Enter moves the cycle to state.
func (ct *CycleTracker) Enter(state CycleState) {
	ct.state = state
	ct.transitions = append(ct.transitions, state)
	ct.logger.Debug().Str("state", string(state)).Msg("Cycle state changed")
}

// CycleID returns the ULID of the cycle.
func (ct *CycleTracker) CycleID() string {
	return ct.cycleID
}

// State returns the current state.
func (ct *CycleTracker) State() CycleState {
	return ct.state
}

// Transitions returns the states visited so far, in order.
func (ct *CycleTracker) Transitions() []CycleState {
	out := make([]CycleState, len(ct.transitions))
	copy(out, ct.transitions)
	return out
}

// StartedAt returns the instant the cycle began.
func (ct *CycleTracker) StartedAt() time.Time {
	return ct.startedAt
}

// Elapsed returns the time since the cycle began.
func (ct *CycleTracker) Elapsed() time.Duration {
	return ct.clock().Sub(ct.startedAt)
}

// Logger returns a logger tagged with the cycle id.
func (ct *CycleTracker) Logger() zerolog.Logger {
	return ct.logger
}
