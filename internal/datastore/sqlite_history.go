package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aleister1102/metrowatch/internal/common/timeutils"
	"github.com/aleister1102/metrowatch/internal/models"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteHistoryLog mirrors transition rows into the line_transitions table.
type SQLiteHistoryLog struct {
	db     *sql.DB
	path   string
	logger zerolog.Logger
}

// NewSQLiteHistoryLog opens (creating if needed) the database at dataSourceName and ensures the schema.
func NewSQLiteHistoryLog(dataSourceName string, logger zerolog.Logger) (*SQLiteHistoryLog, error) {
	logger = logger.With().Str("component", "SQLiteHistoryLog").Str("db_path", dataSourceName).Logger()

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		logger.Error().Err(err).Str("directory", dbDir).Msg("Failed to create history database directory")
		return nil, fmt.Errorf("failed to create history database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open history database")
		return nil, fmt.Errorf("sql.Open failed for %s: %w", dataSourceName, err)
	}

	h := &SQLiteHistoryLog{db: db, path: dataSourceName, logger: logger}
	if err := h.InitSchema(context.Background()); err != nil {
		_ = h.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info().Msg("History database initialized")
	return h, nil
}

// InitSchema creates the line_transitions table if it doesn't already exist.
func (h *SQLiteHistoryLog) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS line_transitions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		weekday TEXT NOT NULL,
		line TEXT NOT NULL,
		new_status TEXT NOT NULL,
		previous_status TEXT NOT NULL,
		description TEXT,
		detected_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_line_transitions_code ON line_transitions(code);
	`
	if _, err := h.db.ExecContext(ctx, query); err != nil {
		h.logger.Error().Err(err).Msg("Failed to initialize history schema")
		return err
	}
	return nil
}

// Append inserts one transition row.
func (h *SQLiteHistoryLog) Append(ctx context.Context, record models.HistoryRecord) error {
	query := `INSERT INTO line_transitions (code, date, time, weekday, line, new_status, previous_status, description, detected_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := h.db.ExecContext(ctx, query,
		record.Code,
		record.Date,
		record.Time,
		record.Weekday,
		record.Line,
		record.NewStatus,
		record.PreviousStatus,
		sql.NullString{String: record.Description, Valid: record.Description != ""},
		record.DetectedAt.Format(timeutils.LayoutISO8601),
	)
	if err != nil {
		h.logger.Error().Err(err).Str("line", record.Line).Msg("Failed to insert history row")
		return models.NewPersistenceError("history database", h.path, err)
	}
	return nil
}

// CountTransitions returns the number of rows recorded for a line code, or for all lines when code is empty.
func (h *SQLiteHistoryLog) CountTransitions(ctx context.Context, code string) (int, error) {
	query := `SELECT COUNT(*) FROM line_transitions`
	var args []any
	if code != "" {
		query += ` WHERE code = ?`
		args = append(args, code)
	}

	var count int
	if err := h.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transitions: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (h *SQLiteHistoryLog) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}
