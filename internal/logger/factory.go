package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/aleister1102/metrowatch/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates writers based on format
type WriterFactory struct {
	strategies map[string]WriterStrategy
}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{
		strategies: map[string]WriterStrategy{
			config.LogFormatJSON:    &JSONWriterStrategy{},
			config.LogFormatConsole: &ConsoleWriterStrategy{NoColor: false},
			config.LogFormatText:    &TextWriterStrategy{},
		},
	}
}

// CreateConsoleWriter creates a console writer on out. Unknown formats fall back to console.
func (wf *WriterFactory) CreateConsoleWriter(format string, out io.Writer) io.Writer {
	strategy, exists := wf.strategies[format]
	if !exists {
		strategy = &ConsoleWriterStrategy{NoColor: false}
	}
	return strategy.CreateWriter(out)
}

// CreateFileWriter creates a rotating file writer. The returned closer releases the file.
func (wf *WriterFactory) CreateFileWriter(cfg config.LogConfig) (io.Writer, io.Closer) {
	// Ensure directory exists; lumberjack reports the failure on first write otherwise
	_ = os.MkdirAll(filepath.Dir(cfg.LogFile), 0755)

	lumberjackLogger := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxLogSizeMB,
		LocalTime:  true,
		MaxBackups: cfg.MaxLogBackups,
	}

	// Colors never go to files
	if cfg.LogFormat == config.LogFormatConsole {
		return (&ConsoleWriterStrategy{NoColor: true}).CreateWriter(lumberjackLogger), lumberjackLogger
	}

	strategy, exists := wf.strategies[cfg.LogFormat]
	if !exists {
		strategy = &JSONWriterStrategy{}
	}
	return strategy.CreateWriter(lumberjackLogger), lumberjackLogger
}
