package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	LogLevelEnvVar = "BUMPBAR_LOG_LEVEL"
	logDir         = "logs"
	defaultLogFile = "bumpbar.log"
)

var (
	logFile     *os.File
	logFilename string

	sinkOnce sync.Once
	sink     io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogFilename must be called before the first logger is requested.
func SetLogFilename(filename string) {
	logFilename = filename
}

func openSink() io.Writer {
	sinkOnce.Do(func() {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			panic("Failed to create logs directory: " + err.Error())
		}

		filename := logFilename
		if filename == "" {
			filename = defaultLogFile
		}

		var err error
		logFile, err = os.OpenFile(filepath.Join(logDir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			panic("Failed to open log file: " + err.Error())
		}

		sink = io.MultiWriter(os.Stdout, logFile)
	})
	return sink
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewJSONHandler(openSink(), &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
}

// GetLogger returns the logger meant for applications embedding the bar.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		if raw := os.Getenv(LogLevelEnvVar); raw != "" {
			levelVar.Set(ParseLogLevel(raw))
		}
		logger = newJSONLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used by the bar itself.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar.Set(slog.LevelWarn)
		if raw := os.Getenv(LogLevelEnvVar); raw != "" {
			internalLevelVar.Set(ParseLogLevel(raw))
		}
		internalLogger = newJSONLogger(internalLevelVar)
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

func SetRawLogLevel(rawLevel string) {
	levelVar.Set(ParseLogLevel(rawLevel))
}

func ParseLogLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
