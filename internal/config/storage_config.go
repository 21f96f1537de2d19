package config

// StorageConfig defines where the snapshot and the history are kept
type StorageConfig struct {
	SnapshotPath  string `json:"snapshot_path,omitempty" yaml:"snapshot_path,omitempty" validate:"required"`
	HistoryPath   string `json:"history_path,omitempty" yaml:"history_path,omitempty" validate:"required"`
	HistoryDBPath string `json:"history_db_path,omitempty" yaml:"history_db_path,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		SnapshotPath: DefaultStorageSnapshotPath,
		HistoryPath:  DefaultStorageHistoryPath,
	}
}
