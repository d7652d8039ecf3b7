// Package logging provides structured logging for the todo CLI.
// It uses zerolog with context fields and supports log rotation via
// lumberjack.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents a log level.
type Level = zerolog.Level

// Log levels for convenience.
const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level
	Level Level

	// JSON enables JSON output format
	JSON bool

	// FilePath is the path to the log file (empty for console only)
	FilePath string

	// MaxSize is the maximum size in megabytes before rotation
	MaxSize int

	// MaxBackups is the maximum number of old log files to retain
	MaxBackups int

	// MaxAge is the maximum number of days to retain old log files
	MaxAge int

	// Compress enables gzip compression of rotated files
	Compress bool

	// Console enables console output in addition to file output
	Console bool
}

// DefaultConfig returns sensible default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:      InfoLevel,
		JSON:       true,
		FilePath:   "",
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     7,
		Compress:   true,
		Console:    false,
	}
}

// Logger wraps zerolog.Logger with context helpers.
type Logger struct {
	zl zerolog.Logger
}

var (
	globalLogger *Logger
	loggerOnce   sync.Once
	loggerMu     sync.RWMutex
)

// Init initializes the global logger with the given configuration.
// If config is nil, defaults are used.
func Init(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var writers []io.Writer

	// Set up file writer with rotation if FilePath is specified
	if cfg.FilePath != "" {
		// Ensure parent directory exists
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return err
		}

		fileWriter := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		writers = append(writers, fileWriter)
	}

	// Add console output if enabled or if no file path specified
	if cfg.Console || cfg.FilePath == "" {
		if cfg.JSON {
			writers = append(writers, os.Stderr)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			})
		}
	}

	var output io.Writer
	if len(writers) == 1 {
		output = writers[0]
	} else {
		output = zerolog.MultiLevelWriter(writers...)
	}

	zl := zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	loggerMu.Lock()
	globalLogger = &Logger{zl: zl}
	loggerMu.Unlock()

	return nil
}

// Get returns the global logger, initializing with defaults if needed.
func Get() *Logger {
	loggerOnce.Do(func() {
		if globalLogger == nil {
			_ = Init(nil)
		}
	})

	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

// WithCommand returns a new logger with the command field set.
func (l *Logger) WithCommand(command string) *Logger {
	return &Logger{zl: l.zl.With().Str("command", command).Logger()}
}

// WithField returns a new logger with an additional field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithError returns a new logger with the error field set.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{zl: l.zl.With().Err(err).Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.zl.Error().Msg(msg)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

// ParseLevel parses a level string into a Level.
func ParseLevel(level string) (Level, error) {
	return zerolog.ParseLevel(level)
}

// Convenience functions that use the global logger

// Debug logs a debug message using the global logger.
func Debug(msg string) {
	Get().Debug(msg)
}

// Debugf logs a formatted debug message using the global logger.
func Debugf(format string, args ...interface{}) {
	Get().Debugf(format, args...)
}

// Info logs an info message using the global logger.
func Info(msg string) {
	Get().Info(msg)
}

// Infof logs a formatted info message using the global logger.
func Infof(format string, args ...interface{}) {
	Get().Infof(format, args...)
}

// Warn logs a warning message using the global logger.
func Warn(msg string) {
	Get().Warn(msg)
}

// Error logs an error message using the global logger.
func Error(msg string) {
	Get().Error(msg)
}

// WithCommand returns a new logger with command set.
func WithCommand(command string) *Logger {
	return Get().WithCommand(command)
}

// WithField returns a new logger with an additional field.
func WithField(key string, value interface{}) *Logger {
	return Get().WithField(key, value)
}

// WithError returns a new logger with the error set.
func WithError(err error) *Logger {
	return Get().WithError(err)
}

// LoggingConfig mirrors the config package's logging section. It is a
// convenience bridge so callers do not import zerolog for the level.
type LoggingConfig struct {
	Level      string
	FilePath   string
	JSON       bool
	Console    bool
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// InitFromLogConfig initializes the logger from a LoggingConfig struct.
func InitFromLogConfig(lc LoggingConfig) error {
	cfg := DefaultConfig()

	// Parse log level
	if lc.Level != "" {
		level, err := ParseLevel(lc.Level)
		if err != nil {
			return err
		}
		cfg.Level = level
	}

	cfg.FilePath = lc.FilePath
	cfg.JSON = lc.JSON
	cfg.Console = lc.Console

	if lc.MaxSize > 0 {
		cfg.MaxSize = lc.MaxSize
	}
	if lc.MaxBackups > 0 {
		cfg.MaxBackups = lc.MaxBackups
	}
	if lc.MaxAge > 0 {
		cfg.MaxAge = lc.MaxAge
	}
	cfg.Compress = lc.Compress

	return Init(cfg)
}
