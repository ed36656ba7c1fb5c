package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// EnvLogFile overrides the log file location.
const EnvLogFile = "MULTIVERSE_LOG_FILE"

func newFileLogger() (*slog.Logger, error) {
	logFile := os.Getenv(EnvLogFile)
	if logFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determine home directory: %w", err)
		}
		logFile = filepath.Join(home, ".config", "multiverse", "multiverse.log")
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	logger.Debug("initialized text file logger",
		"path", logFile,
		"level", level.String(),
	)
	return logger, nil
}
