package utils

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// SetupLogger installs a coloured slog handler on stderr as the default logger.
func SetupLogger(level string) {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(logger)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func Debug(format string, a ...interface{}) {
	slog.Debug(fmt.Sprintf(format, a...))
}

func Info(format string, a ...interface{}) {
	slog.Info(fmt.Sprintf(format, a...))
}

func Success(format string, a ...interface{}) {
	slog.Info(fmt.Sprintf(format, a...), "status", "ok")
}

func Warn(format string, a ...interface{}) {
	slog.Warn(fmt.Sprintf(format, a...))
}

func Error(format string, a ...interface{}) {
	slog.Error(fmt.Sprintf(format, a...))
}
