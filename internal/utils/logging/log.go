// Package logging provides the program's leveled console and file logging.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"ytprompt/internal/domain/consts"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level is the debug level (0-5). D(l, ...) prints when l <= Level.
var Level = 0

var logger = zerolog.New(newConsoleWriter(colorable.NewColorableStderr())).
	With().Timestamp().Logger()

// fileLogger writes to the log file only. Disabled until SetupLogging gets a path.
var fileLogger = zerolog.Nop()

// LoggingConfig holds the log setup for a run.
type LoggingConfig struct {
	LogFilePath string
	MaxSizeMB   int
	MaxBackups  int
	Console     io.Writer
	JSON        bool
	RunID       string
}

// SetupLogging points the program logger at the console and, when a path is
// given, a size-rotated log file.
func SetupLogging(cfg LoggingConfig) error {
	console := cfg.Console
	if console == nil {
		console = colorable.NewColorableStderr()
	}
	if !cfg.JSON {
		console = newConsoleWriter(console)
	}

	writers := []io.Writer{console}
	file := zerolog.Nop()
	if cfg.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), consts.PermsHomeProgDir); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		rotated := &lumberjack.Logger{
			Filename:   cfg.LogFilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		writers = append(writers, rotated)
		file = withRun(zerolog.New(rotated).With().Timestamp(), cfg.RunID).Logger()
	}

	logger = withRun(zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp(), cfg.RunID).Logger()
	fileLogger = file
	return nil
}

func withRun(ctx zerolog.Context, runID string) zerolog.Context {
	if runID != "" {
		return ctx.Str("run", runID)
	}
	return ctx
}

// E logs an error along with the calling location.
func E(format string, args ...any) {
	logger.Error().Caller(1).Msgf(format, args...)
}

// W logs a warning.
func W(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// I logs information.
func I(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// FE logs an error to the log file only, for errors already shown to the user.
func FE(format string, args ...any) {
	fileLogger.Error().Msgf(format, args...)
}

// FW logs a warning to the log file only.
func FW(format string, args ...any) {
	fileLogger.Warn().Msgf(format, args...)
}

// D logs a debug message if the debug level is at least l.
func D(l int, format string, args ...any) {
	if l > Level {
		return
	}
	logger.Debug().Caller(1).Int("debug", l).Msgf(format, args...)
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
	}
}
