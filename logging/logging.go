package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

var (
	logger    = zerolog.Nop()
	debugMode bool
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(0)
		log.SetOutput(io.Discard)
		logger = zerolog.Nop()
		debugMode = false
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", filename, err)
	}

	w := zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
	logger = zerolog.New(w).With().Timestamp().CallerWithSkipFrameCount(3).Logger()
	debugMode = true

	// stdlib log lines from dependencies land in the same file
	log.SetFlags(0)
	log.SetOutput(logger)

	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bubbletea log: %w", err)
	}

	cleanup = func() {
		tf.Close()
		f.Close()
		logger = zerolog.Nop()
		debugMode = false
	}
	return cleanup, nil
}

// IsDebugMode reports whether a log file is open.
func IsDebugMode() bool { return debugMode }

func Debugf(format string, args ...any) { logger.Debug().Msgf(format, args...) }
func Infof(format string, args ...any)  { logger.Info().Msgf(format, args...) }
func Warnf(format string, args ...any)  { logger.Warn().Msgf(format, args...) }
func Errorf(format string, args ...any) { logger.Error().Msgf(format, args...) }
