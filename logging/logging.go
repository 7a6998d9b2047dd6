// Package logging provides the process-wide structured logger.
package logging

import (
	"go.uber.org/zap"
)

var logger *zap.Logger

func init() {
	logger, _ = zap.NewDevelopment()
}

// Init replaces the default logger with one configured for the given
// environment: "development" keeps the console encoder, anything else
// switches to production JSON output.
func Init(env string) {
	var (
		l   *zap.Logger
		err error
	)
	if env == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return
	}
	logger = l
}

// Logger returns the global logger.
func Logger() *zap.Logger {
	return logger
}

// SetLogger sets the global logger.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}

// Debugf logs a printf-style debug message.
func Debugf(format string, args ...any) {
	logger.Sugar().Debugf(format, args...)
}

// Infof logs a printf-style info message.
func Infof(format string, args ...any) {
	logger.Sugar().Infof(format, args...)
}

// Warnf logs a printf-style warning message.
func Warnf(format string, args ...any) {
	logger.Sugar().Warnf(format, args...)
}

// Errorf logs a printf-style error message.
func Errorf(format string, args ...any) {
	logger.Sugar().Errorf(format, args...)
}

// With returns a logger with additional fields.
func With(fields ...zap.Field) *zap.Logger {
	return logger.With(fields...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return logger.Sync()
}
