package monitor

import "time"

// EventOutcome records what happened to one transition during the NOTIFY stage.
type EventOutcome struct {
	LineCode       string
	PreviousStatus string
	NewStatus      string
	NotifyError    error
	HistoryError   error
}

// Notified reports whether the notification sink accepted the message.
func (o EventOutcome) Notified() bool {
	return o.NotifyError == nil
}

// Logged reports whether the history row was written.
func (o EventOutcome) Logged() bool {
	return o.HistoryError == nil
}

// CycleSummary describes a finished cycle.
type CycleSummary struct {
	CycleID        string
	State          CycleState
	StartedAt      time.Time
	Duration       time.Duration
	FetchedRecords int
	SkippedRecords int
	Lines          int
	NewLines       int
	Events         int
	Migrated       bool
	Persisted      bool
	Outcomes       []EventOutcome
	Err            error
}

// Succeeded reports whether the cycle reached END.
func (s *CycleSummary) Succeeded() bool {
	return s.State == StateEnd
}
