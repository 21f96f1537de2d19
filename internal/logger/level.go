package logger

import (
	"strings"

	"github.com/aleister1102/metrowatch/internal/common"
	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/rs/zerolog"
)

// parseLevel maps a log_level value onto zerolog. Empty means info.
func parseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel, common.WrapError(err, "invalid log level")
	}
	return parsed, nil
}

// withLogDefaults fills unset fields of cfg from the config package defaults.
func withLogDefaults(cfg config.LogConfig) config.LogConfig {
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = config.DefaultLogFormat
	}
	if cfg.MaxLogSizeMB <= 0 {
		cfg.MaxLogSizeMB = config.DefaultMaxLogSizeMB
	}
	if cfg.MaxLogBackups <= 0 {
		cfg.MaxLogBackups = config.DefaultMaxLogBackups
	}
	return cfg
}
