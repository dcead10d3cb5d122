// Package logger is the process-wide structured logging facade. It writes to
// stdout during development and ships records over OTLP in production.
package logger

import (
	"context"
	"strings"
	"time"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
)

var severity = map[LogLevel]int{
	LogLevelDebug: 0,
	LogLevelInfo:  1,
	LogLevelWarn:  2,
	LogLevelError: 3,
	LogLevelFatal: 4,
}

type attributes = map[string]any

type LogEntry struct {
	Level      LogLevel
	Message    string
	Attributes attributes
	Error      error
	Timestamp  time.Time
}

type Logger interface {
	Log(ctx context.Context, entry LogEntry)
	Shutdown(ctx context.Context) error
}

var (
	globalLogger Logger   = &noopLogger{}
	minLevel     LogLevel = LogLevelDebug
)

func parseLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "INFO":
		return LogLevelInfo
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "FATAL":
		return LogLevelFatal
	}
	return LogLevelDebug
}

func enabled(level LogLevel) bool {
	return severity[level] >= severity[minLevel]
}

func emit(ctx context.Context, level LogLevel, message string, err error, attrs attributes) {
	if !enabled(level) {
		return
	}
	globalLogger.Log(ctx, LogEntry{
		Level:      level,
		Message:    message,
		Attributes: attrs,
		Error:      err,
		Timestamp:  time.Now(),
	})
}

func Debug(ctx context.Context, message string, attrs attributes) {
	emit(ctx, LogLevelDebug, message, nil, attrs)
}

func Info(ctx context.Context, message string, attrs attributes) {
	emit(ctx, LogLevelInfo, message, nil, attrs)
}

func Warn(ctx context.Context, message string, attrs attributes) {
	emit(ctx, LogLevelWarn, message, nil, attrs)
}

func Error(ctx context.Context, message string, err error, attrs attributes) {
	emit(ctx, LogLevelError, message, err, attrs)
}

func Fatal(ctx context.Context, message string, err error, attrs attributes) {
	emit(ctx, LogLevelFatal, message, err, attrs)
}

func Log(ctx context.Context, entry LogEntry) {
	if !enabled(entry.Level) {
		return
	}
	globalLogger.Log(ctx, entry)
}

func Shutdown(ctx context.Context) error {
	return globalLogger.Shutdown(ctx)
}

func Initialize(collectorEndpoint, serviceName, level string, isProduction bool) error {
	var (
		l   Logger
		err error
	)

	if isProduction {
		l, err = initializeOtelLogger(collectorEndpoint, serviceName)
	} else {
		l, err = initStdoutLogger(serviceName)
	}

	if err != nil {
		return err
	}

	minLevel = parseLevel(level)
	globalLogger = l
	return nil
}
