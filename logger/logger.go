// Package logger holds the process-wide logger. Build with -tags dev for
// debug output.
package logger

import "log/slog"

// Default returns the logger selected by the build tags.
func Default() *slog.Logger {
	return defaultLogger
}

// HandleLog logs msg at info level.
func HandleLog(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}
