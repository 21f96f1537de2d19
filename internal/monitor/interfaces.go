package monitor

import (
	"context"

	"github.com/aleister1102/metrowatch/internal/models"
)

// LineFetcher retrieves the raw status feed.
type LineFetcher interface {
	FetchLines(ctx context.Context) ([]models.RawRecord, error)
}

// SnapshotStore loads and saves the last known status of every line.
type SnapshotStore interface {
	Load(ctx context.Context) (models.Snapshot, error)
	Save(ctx context.Context, snapshot models.Snapshot) error
}

// HistoryLog receives one audit row per transition.
type HistoryLog interface {
	Append(ctx context.Context, record models.HistoryRecord) error
}

// MessageRenderer turns a transition into message text.
type MessageRenderer interface {
	Render(event models.TransitionEvent) string
}

// Notifier delivers rendered messages.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
