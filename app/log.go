package app

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 30
)

// logFile is the rotating log writer opened by beforeAction.
var logFile *lumberjack.Logger

// setupLogging sends slog output to a rotating file at path. The terminal is
// reserved for the user interface.
func setupLogging(path string, debug bool) {
	logFile = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: level,
	})))
}

// closeLogging releases the log file.
func closeLogging() error {
	if logFile == nil {
		return nil
	}

	err := logFile.Close()
	logFile = nil

	return err
}
