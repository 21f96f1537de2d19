package models

import (
	"time"

	"github.com/aleister1102/metrowatch/internal/common/timeutils"
)

// TransitionEvent is one detected status change of a line.
type TransitionEvent struct {
	Line           LineStatus
	PreviousStatus string
	NewStatus      string
	DetectedAt     time.Time
}

// HistoryColumns is the fixed header of the history log.
var HistoryColumns = []string{"Date", "Time", "Weekday", "Line", "NewStatus", "PreviousStatus", "Description"}

// HistoryRecord is one append-only audit row.
type HistoryRecord struct {
	Code           string
	Date           string
	Time           string
	Weekday        string
	Line           string
	NewStatus      string
	PreviousStatus string
	Description    string
	DetectedAt     time.Time
}

// NewHistoryRecord builds the audit row for an event, in the operator zone.
func NewHistoryRecord(event TransitionEvent) HistoryRecord {
	at := timeutils.InOperatorZone(event.DetectedAt)
	return HistoryRecord{
		Code:           event.Line.Code,
		Date:           at.Format(timeutils.LayoutDateOnly),
		Time:           at.Format(timeutils.LayoutTimeOnly),
		Weekday:        at.Weekday().String(),
		Line:           event.Line.DisplayName,
		NewStatus:      event.NewStatus,
		PreviousStatus: event.PreviousStatus,
		Description:    event.Line.Description,
		DetectedAt:     at,
	}
}

// Row returns the record values in HistoryColumns order.
func (r HistoryRecord) Row() []string {
	return []string{r.Date, r.Time, r.Weekday, r.Line, r.NewStatus, r.PreviousStatus, r.Description}
}
