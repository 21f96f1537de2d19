package differ

import (
	"github.com/aleister1102/metrowatch/internal/common/timeutils"
	"github.com/aleister1102/metrowatch/internal/models"

	"github.com/rs/zerolog"
)

// DiffResult is the outcome of comparing a fetch against the prior snapshot.
type DiffResult struct {
	// Events holds one entry per status change, in feed order.
	Events []models.TransitionEvent
	// Next is the snapshot to persist: prior carried forward, updated with the fresh statuses.
	Next models.Snapshot
	// PriorWasEmpty is true on the first run or after the snapshot was lost.
	PriorWasEmpty bool
	// NewLines lists codes seen for the first time in this fetch.
	NewLines []string
}

// ShouldPersist reports whether Next has to be written back: on any transition,
// or to seed the baseline when there was no prior snapshot.
func (r DiffResult) ShouldPersist() bool {
	return len(r.Events) > 0 || r.PriorWasEmpty
}

// StatusDiffer detects line status transitions.
type StatusDiffer struct {
	clock  timeutils.Clock
	logger zerolog.Logger
}

// NewStatusDiffer creates a StatusDiffer. A nil clock defaults to the operator clock.
func NewStatusDiffer(clock timeutils.Clock, logger zerolog.Logger) *StatusDiffer {
	if clock == nil {
		clock = timeutils.OperatorClock()
	}
	return &StatusDiffer{
		clock:  clock,
		logger: logger.With().Str("component", "StatusDiffer").Logger(),
	}
}

// Diff compares fresh line statuses against prior. prior is never modified.
func (d *StatusDiffer) Diff(prior models.Snapshot, fresh []models.LineStatus) DiffResult {
	result := DiffResult{
		Next:          prior.Clone(),
		PriorWasEmpty: prior.IsEmpty(),
	}
	if len(fresh) == 0 {
		return result
	}

	detectedAt := d.clock()
	for _, line := range fresh {
		key := line.SnapshotKey()
		previous, known := result.Next[key]
		result.Next[key] = line.Status

		// an empty stored status carries no information to compare against
		if !known || previous == "" {
			result.NewLines = append(result.NewLines, line.Code)
			d.logger.Debug().Str("line", line.Code).Str("status", line.Status).Msg("First observation of line, recording baseline")
			continue
		}
		if previous == line.Status {
			continue
		}

		result.Events = append(result.Events, models.TransitionEvent{
			Line:           line,
			PreviousStatus: previous,
			NewStatus:      line.Status,
			DetectedAt:     detectedAt,
		})
		d.logger.Info().
			Str("line", line.Code).
			Str("previous_status", previous).
			Str("new_status", line.Status).
			Msg("Line status transition detected")
	}

	return result
}
