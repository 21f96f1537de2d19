package monitor

import (
	"context"
	"fmt"

	"github.com/aleister1102/metrowatch/internal/common"
	"github.com/aleister1102/metrowatch/internal/common/timeutils"
	"github.com/aleister1102/metrowatch/internal/datastore"
	"github.com/aleister1102/metrowatch/internal/differ"
	"github.com/aleister1102/metrowatch/internal/models"
	"github.com/aleister1102/metrowatch/internal/normalizer"

	"github.com/rs/zerolog"
)

// ServiceDeps holds the collaborators of a MonitoringService.
type ServiceDeps struct {
	Fetcher    LineFetcher
	Normalizer *normalizer.LineNormalizer
	Differ     *differ.StatusDiffer
	Snapshots  SnapshotStore
	History    HistoryLog
	Renderer   MessageRenderer
	Notifier   Notifier
	// Clock defaults to the operator clock.
	Clock timeutils.Clock
}

// MonitoringService runs polling cycles: fetch, normalize, diff, notify and log, persist.
// It holds no state between cycles; one cycle per process is expected.
type MonitoringService struct {
	deps   ServiceDeps
	logger zerolog.Logger
}

// NewMonitoringService validates deps and creates the service.
func NewMonitoringService(deps ServiceDeps, logger zerolog.Logger) (*MonitoringService, error) {
	var collector common.ErrorCollector
	if deps.Fetcher == nil {
		collector.Add(common.NewValidationError("fetcher", nil, "fetcher is required"))
	}
	if deps.Normalizer == nil {
		collector.Add(common.NewValidationError("normalizer", nil, "normalizer is required"))
	}
	if deps.Snapshots == nil {
		collector.Add(common.NewValidationError("snapshots", nil, "snapshot store is required"))
	}
	if deps.History == nil {
		collector.Add(common.NewValidationError("history", nil, "history log is required"))
	}
	if deps.Renderer == nil {
		collector.Add(common.NewValidationError("renderer", nil, "message renderer is required"))
	}
	if deps.Notifier == nil {
		collector.Add(common.NewValidationError("notifier", nil, "notifier is required"))
	}
	if collector.HasErrors() {
		return nil, collector.Error()
	}

	if deps.Clock == nil {
		deps.Clock = timeutils.OperatorClock()
	}
	if deps.Differ == nil {
		deps.Differ = differ.NewStatusDiffer(deps.Clock, logger)
	}

	return &MonitoringService{
		deps:   deps,
		logger: logger.With().Str("component", "MonitoringService").Logger(),
	}, nil
}

// RunCycle executes one polling cycle. A non-nil error means the cycle failed:
// ABORT (fetch or normalize failure, nothing written) or FAILED (snapshot save).
// Notification and history failures are reported in the summary only.
func (s *MonitoringService) RunCycle(ctx context.Context) (*CycleSummary, error) {
	tracker := NewCycleTracker(s.deps.Clock, s.logger)
	logger := tracker.Logger()
	summary := &CycleSummary{CycleID: tracker.CycleID(), StartedAt: tracker.StartedAt()}

	finish := func(state CycleState, err error) (*CycleSummary, error) {
		tracker.Enter(state)
		summary.State = state
		summary.Duration = tracker.Elapsed()
		summary.Err = err
		return summary, err
	}

	logger.Info().Msg("Starting line status check")

	tracker.Enter(StateFetch)
	raws, err := s.deps.Fetcher.FetchLines(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Fetch failed, aborting cycle")
		return finish(StateAbort, err)
	}
	summary.FetchedRecords = len(raws)

	tracker.Enter(StateNormalize)
	lines, malformed := s.deps.Normalizer.NormalizeAll(raws)
	summary.SkippedRecords = len(malformed)
	summary.Lines = len(lines)
	if len(lines) == 0 {
		err := fmt.Errorf("%w: %d records", models.ErrAllRecordsMalformed, len(raws))
		logger.Error().Err(err).Msg("No usable line records, aborting cycle")
		return finish(StateAbort, err)
	}
	if len(malformed) > 0 {
		logger.Warn().Int("skipped", len(malformed)).Int("usable", len(lines)).Msg("Some line records were skipped")
	}

	tracker.Enter(StateDiff)
	prior, err := s.loadSnapshot(ctx, logger, summary)
	if err != nil {
		logger.Error().Err(err).Msg("Snapshot load interrupted, aborting cycle")
		return finish(StateAbort, err)
	}
	result := s.deps.Differ.Diff(prior, lines)
	summary.Events = len(result.Events)
	summary.NewLines = len(result.NewLines)

	tracker.Enter(StateNotify)
	for _, event := range result.Events {
		summary.Outcomes = append(summary.Outcomes, s.dispatch(ctx, logger, event))
	}

	tracker.Enter(StatePersist)
	if result.ShouldPersist() {
		if err := s.deps.Snapshots.Save(ctx, result.Next); err != nil {
			logger.Error().Err(err).Msg("Failed to persist snapshot")
			return finish(StateFailed, err)
		}
		summary.Persisted = true
	} else {
		logger.Info().Msg("No status changes")
	}

	finish(StateEnd, nil)
	logger.Info().
		Int("lines", summary.Lines).
		Int("events", summary.Events).
		Bool("persisted", summary.Persisted).
		Dur("duration", summary.Duration).
		Msg("Line status check completed")
	return summary, nil
}

// loadSnapshot loads the prior snapshot and migrates legacy keys. A migrated
// snapshot is saved right away; failing to do so is logged and the migrated copy is still used.
func (s *MonitoringService) loadSnapshot(ctx context.Context, logger zerolog.Logger, summary *CycleSummary) (models.Snapshot, error) {
	prior, err := s.deps.Snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := datastore.MigrateSnapshotKeys(prior)
	logMigration(logger, report)
	if !report.Changed() {
		return report.Snapshot, nil
	}

	summary.Migrated = true
	if err := s.deps.Snapshots.Save(ctx, report.Snapshot); err != nil {
		logger.Warn().Err(err).Msg("Failed to save migrated snapshot, will retry next cycle")
	}
	return report.Snapshot, nil
}

// dispatch notifies and logs one transition. Failures are logged and returned in the outcome.
func (s *MonitoringService) dispatch(ctx context.Context, logger zerolog.Logger, event models.TransitionEvent) EventOutcome {
	outcome := EventOutcome{
		LineCode:       event.Line.Code,
		PreviousStatus: event.PreviousStatus,
		NewStatus:      event.NewStatus,
	}

	logger.Info().
		Str("line", event.Line.DisplayName).
		Str("previous_status", event.PreviousStatus).
		Str("new_status", event.NewStatus).
		Msg("Line status changed")

	if err := s.deps.Notifier.Send(ctx, s.deps.Renderer.Render(event)); err != nil {
		logger.Warn().Err(err).Str("line", event.Line.Code).Msg("Failed to deliver notification")
		outcome.NotifyError = err
	}

	if err := s.deps.History.Append(ctx, models.NewHistoryRecord(event)); err != nil {
		logger.Warn().Err(err).Str("line", event.Line.Code).Msg("Failed to append history row")
		outcome.HistoryError = err
	}

	return outcome
}

// MigrateSnapshot runs the legacy key migration on its own and saves the result when anything changed.
func (s *MonitoringService) MigrateSnapshot(ctx context.Context) (datastore.MigrationReport, error) {
	prior, err := s.deps.Snapshots.Load(ctx)
	if err != nil {
		return datastore.MigrationReport{}, err
	}

	report := datastore.MigrateSnapshotKeys(prior)
	logMigration(s.logger, report)
	if !report.Changed() {
		s.logger.Info().Int("keys", len(report.Snapshot)).Msg("Snapshot keys already canonical, nothing to migrate")
		return report, nil
	}

	if err := s.deps.Snapshots.Save(ctx, report.Snapshot); err != nil {
		return report, err
	}
	s.logger.Info().Int("rewritten", len(report.Rewrites)).Msg("Snapshot migrated")
	return report, nil
}

func logMigration(logger zerolog.Logger, report datastore.MigrationReport) {
	for _, rewrite := range report.Rewrites {
		event := logger.Info()
		if rewrite.Dropped {
			event = logger.Warn()
		}
		event.Str("from", rewrite.From).Str("to", rewrite.To).Bool("dropped", rewrite.Dropped).Msg("Migrated legacy snapshot key")
	}
	for _, key := range report.Unmapped {
		logger.Warn().Str("key", key).Msg("Snapshot key matches no known line format, keeping it as is")
	}
}
