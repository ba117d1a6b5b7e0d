//go:build dev
// +build dev

package logger

import (
	"log/slog"
	"os"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

func HandleError(err error) {
	defaultLogger.Error("Dev Mode - Error", "err", err)
}
