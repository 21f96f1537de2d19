package datastore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/aleister1102/metrowatch/internal/models"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// JSONSnapshotStore keeps the last known status of every line in a single JSON file.
type JSONSnapshotStore struct {
	fs     afero.Fs
	path   string
	logger zerolog.Logger
}

// NewJSONSnapshotStore creates a snapshot store on fs. A nil fs uses the OS filesystem.
func NewJSONSnapshotStore(fs afero.Fs, cfg config.StorageConfig, logger zerolog.Logger) *JSONSnapshotStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &JSONSnapshotStore{
		fs:     fs,
		path:   cfg.SnapshotPath,
		logger: logger.With().Str("component", "SnapshotStore").Str("path", cfg.SnapshotPath).Logger(),
	}
}

// Path returns the snapshot file location.
func (s *JSONSnapshotStore) Path() string {
	return s.path
}

// Load reads the snapshot. A missing, unreadable or corrupt file yields an empty
// snapshot and no error: the next successful save rebuilds it.
func (s *JSONSnapshotStore) Load(ctx context.Context) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info().Msg("No snapshot file yet, starting from an empty snapshot")
		} else {
			s.logger.Error().Err(err).Msg("Failed to read snapshot file, starting from an empty snapshot")
		}
		return models.Snapshot{}, nil
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.Warn().Msg("Snapshot file is empty, starting from an empty snapshot")
		return models.Snapshot{}, nil
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.logger.Warn().Err(err).Msg("Snapshot file is corrupt, starting from an empty snapshot")
		return models.Snapshot{}, nil
	}
	if snapshot == nil {
		snapshot = models.Snapshot{}
	}

	s.logger.Debug().Int("lines", len(snapshot)).Msg("Snapshot loaded")
	return snapshot, nil
}

// Save replaces the snapshot file with snapshot.
func (s *JSONSnapshotStore) Save(ctx context.Context, snapshot models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return models.NewPersistenceError("snapshot", s.path, err)
	}
	if snapshot == nil {
		snapshot = models.Snapshot{}
	}

	// encoding/json sorts map keys
	data, err := json.MarshalIndent(snapshot, "", "    ")
	if err != nil {
		return models.NewPersistenceError("snapshot", s.path, err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.fs, s.path, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to save snapshot")
		return models.NewPersistenceError("snapshot", s.path, err)
	}

	s.logger.Info().Int("lines", len(snapshot)).Msg("Snapshot saved")
	return nil
}
