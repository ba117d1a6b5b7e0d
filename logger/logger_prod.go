//go:build !dev
// +build !dev

package logger

import (
	"log/slog"
	"os"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func HandleError(err error) {
	defaultLogger.Error(err.Error())
}
