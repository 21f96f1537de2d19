package datastore

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"

	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/aleister1102/metrowatch/internal/models"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// CSVHistoryLog appends transition rows to a CSV file. Rows are never read back.
type CSVHistoryLog struct {
	fs     afero.Fs
	path   string
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewCSVHistoryLog creates a CSV history log on fs. A nil fs uses the OS filesystem.
func NewCSVHistoryLog(fs afero.Fs, cfg config.StorageConfig, logger zerolog.Logger) *CSVHistoryLog {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &CSVHistoryLog{
		fs:     fs,
		path:   cfg.HistoryPath,
		logger: logger.With().Str("component", "CSVHistoryLog").Str("path", cfg.HistoryPath).Logger(),
	}
}

// Append writes one row, preceded by the header when the file is new or empty.
func (h *CSVHistoryLog) Append(ctx context.Context, record models.HistoryRecord) error {
	if err := ctx.Err(); err != nil {
		return models.NewPersistenceError("history", h.path, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.fs.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return models.NewPersistenceError("history", h.path, err)
	}

	file, err := h.fs.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return models.NewPersistenceError("history", h.path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return models.NewPersistenceError("history", h.path, err)
	}

	writer := csv.NewWriter(file)
	if info.Size() == 0 {
		if err := writer.Write(models.HistoryColumns); err != nil {
			return models.NewPersistenceError("history", h.path, err)
		}
	}
	if err := writer.Write(record.Row()); err != nil {
		return models.NewPersistenceError("history", h.path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return models.NewPersistenceError("history", h.path, err)
	}

	h.logger.Debug().Str("line", record.Line).Str("new_status", record.NewStatus).Msg("History row appended")
	return nil
}
