// Package logger provides structured logging for cmdheat
package logger

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// globalLogger is the global logger instance
	globalLogger *Logger
	// once ensures the logger is initialized only once
	once sync.Once
)

// Level represents logging level
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// Logger wraps charmbracelet/log with additional functionality
type Logger struct {
	logger *log.Logger
	level  Level
}

// Config holds logger configuration
type Config struct {
	Level string
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{Level: "info"}
}

// Initialize initializes the global logger. Output goes to stderr so the
// report table on stdout stays clean.
func Initialize(cfg Config) error {
	once.Do(func() {
		level := parseLevel(cfg.Level)

		l := log.New(os.Stderr)
		l.SetLevel(charmLevel(level))
		l.SetTimeFormat(time.RFC3339)

		globalLogger = &Logger{logger: l, level: level}
	})
	return nil
}

// Get returns the global logger instance
func Get() *Logger {
	if globalLogger == nil {
		_ = Initialize(DefaultConfig())
	}
	return globalLogger
}

// Debug logs debug message
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.logger.Debug(msg, keyvals...)
}

// Info logs info message
func (l *Logger) Info(msg string, keyvals ...any) {
	l.logger.Info(msg, keyvals...)
}

// Warn logs warning message
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.logger.Warn(msg, keyvals...)
}

// Error logs error message
func (l *Logger) Error(msg string, keyvals ...any) {
	l.logger.Error(msg, keyvals...)
}

// Fatal logs fatal message and exits
func (l *Logger) Fatal(msg string, keyvals ...any) {
	l.logger.Fatal(msg, keyvals...)
}

// With returns logger with prefix
func (l *Logger) With(prefix string) *Logger {
	return &Logger{
		logger: l.logger.WithPrefix(prefix),
		level:  l.level,
	}
}

// SetLevel sets logging level
func (l *Logger) SetLevel(level Level) {
	l.level = level
	l.logger.SetLevel(charmLevel(level))
}

// charmLevel maps Level onto charmbracelet/log's level numbering.
func charmLevel(level Level) log.Level {
	switch level {
	case DebugLevel:
		return log.DebugLevel
	case WarnLevel:
		return log.WarnLevel
	case ErrorLevel:
		return log.ErrorLevel
	case FatalLevel:
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Convenience functions for global logger

// Debug logs debug message using global logger
func Debug(msg string, keyvals ...any) {
	Get().Debug(msg, keyvals...)
}

// Info logs info message using global logger
func Info(msg string, keyvals ...any) {
	Get().Info(msg, keyvals...)
}

// Warn logs warning message using global logger
func Warn(msg string, keyvals ...any) {
	Get().Warn(msg, keyvals...)
}

// Error logs error message using global logger
func Error(msg string, keyvals ...any) {
	Get().Error(msg, keyvals...)
}

// Fatal logs fatal message using global logger
func Fatal(msg string, keyvals ...any) {
	Get().Fatal(msg, keyvals...)
}

// With returns global logger with prefix
func With(prefix string) *Logger {
	return Get().With(prefix)
}

// parseLevel parses level string to Level
func parseLevel(level string) Level {
	switch level {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}
