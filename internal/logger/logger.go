package logger

import (
	"io"

	"github.com/aleister1102/metrowatch/internal/common"
	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/rs/zerolog"
)

// Logger owns the process zerolog instance and its file writers
type Logger struct {
	zerolog zerolog.Logger
	config  config.LogConfig
	level   zerolog.Level
	closers []io.Closer
}

// GetZerolog returns the underlying zerolog instance
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zerolog
}

// GetConfig returns the effective log configuration, defaults applied
func (l *Logger) GetConfig() config.LogConfig {
	return l.config
}

// Level returns the minimum level written
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// Close releases file writers
func (l *Logger) Close() error {
	var ec common.ErrorCollector
	for _, c := range l.closers {
		ec.Add(c.Close())
	}
	return ec.Error()
}

// New creates a logger from the application log configuration
func New(cfg config.LogConfig) (*Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}
