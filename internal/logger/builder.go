package logger

import (
	"io"
	stdlog "log" // Standard Go log package, aliased to avoid conflict with zerolog field
	"os"

	"github.com/aleister1102/metrowatch/internal/common"
	"github.com/aleister1102/metrowatch/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	cfg           config.LogConfig
	level         zerolog.Level
	console       bool
	consoleOutput io.Writer
	factory       *WriterFactory
	err           error
}

// NewLoggerBuilder creates a builder seeded with the default log configuration
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		cfg:           config.NewDefaultLogConfig(),
		level:         zerolog.InfoLevel,
		console:       true,
		consoleOutput: os.Stderr,
		factory:       NewWriterFactory(),
	}
}

// WithConfig applies the application log configuration. An unknown level is reported by Build.
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	lb.cfg = withLogDefaults(cfg)
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		lb.err = err
		return lb
	}
	lb.level = level
	return lb
}

// WithLevel overrides the level
func (lb *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	lb.level = level
	lb.cfg.LogLevel = level.String()
	return lb
}

// WithFormat overrides the format (console, text or json)
func (lb *LoggerBuilder) WithFormat(format string) *LoggerBuilder {
	lb.cfg.LogFormat = format
	return lb
}

// WithFile enables rotating file output
func (lb *LoggerBuilder) WithFile(path string, maxSizeMB, maxBackups int) *LoggerBuilder {
	if path == "" {
		lb.err = common.NewValidationError("log_file", path, "file path required when file logging enabled")
		return lb
	}
	lb.cfg.LogFile = path
	lb.cfg.MaxLogSizeMB = maxSizeMB
	lb.cfg.MaxLogBackups = maxBackups
	return lb
}

// WithConsole toggles console output
func (lb *LoggerBuilder) WithConsole(enabled bool) *LoggerBuilder {
	lb.console = enabled
	return lb
}

// WithConsoleOutput redirects console output (stderr by default)
func (lb *LoggerBuilder) WithConsoleOutput(out io.Writer) *LoggerBuilder {
	lb.consoleOutput = out
	return lb
}

// Build creates the logger instance, failing with any error recorded by a With* call.
func (lb *LoggerBuilder) Build() (*Logger, error) {
	if lb.err != nil {
		return nil, lb.err
	}
	if err := lb.validateConfig(); err != nil {
		return nil, err
	}

	writers, closers := lb.createWriters()
	if len(writers) == 0 {
		return nil, common.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	zerologInstance := zerolog.New(multiWriter).
		Level(lb.level).
		With().
		Timestamp().
		Logger()

	lb.configureStandardLog(zerologInstance)

	return &Logger{
		zerolog: zerologInstance,
		config:  lb.cfg,
		level:   lb.level,
		closers: closers,
	}, nil
}

// validateConfig validates the file settings
func (lb *LoggerBuilder) validateConfig() error {
	if lb.cfg.LogFile != "" && lb.cfg.MaxLogSizeMB <= 0 {
		return common.NewValidationError("max_log_size_mb", lb.cfg.MaxLogSizeMB, "max size must be positive")
	}
	return nil
}

// createWriters creates the appropriate writers based on configuration
func (lb *LoggerBuilder) createWriters() ([]io.Writer, []io.Closer) {
	var writers []io.Writer
	var closers []io.Closer

	if lb.console {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.cfg.LogFormat, lb.consoleOutput))
	}

	if lb.cfg.LogFile != "" {
		fileWriter, closer := lb.factory.CreateFileWriter(lb.cfg)
		writers = append(writers, fileWriter)
		closers = append(closers, closer)
	}

	return writers, closers
}

// configureStandardLog routes the standard log package through zerolog
func (lb *LoggerBuilder) configureStandardLog(logger zerolog.Logger) {
	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)
}
