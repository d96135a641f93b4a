package bumpbar

import (
	"log/slog"

	"github.com/BrandonKowalski/bumpbar/pkg/bumpbar/internal"
)

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel controls the bar's own logging, Warn by default.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func CloseLogger() {
	internal.CloseLogger()
}
