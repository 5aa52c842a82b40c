// Package logging builds the zerolog loggers used across profilecache and
// carries trace IDs through contexts for request correlation.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output format names accepted in configuration.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes how a logger should be constructed.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string

	// Format is "console" for human-readable output or "json".
	Format string

	// File is an optional log file path. When set, log output goes to the
	// file in addition to stderr.
	File string

	// Caller enables caller annotation on log lines.
	Caller bool
}

// LogPathResult describes the logger that was actually constructed, including
// whether file output is in effect or a fallback to stderr happened.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLoggerWithPath builds a logger per cfg. If a log file is configured but
// cannot be opened, the logger falls back to stderr only and the result
// records the fallback reason.
func NewLoggerWithPath(cfg Config) LogPathResult {
	result := LogPathResult{}

	writers := []io.Writer{formatWriter(cfg.Format, os.Stderr)}

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			result.FallbackUsed = true
			result.FallbackReason = err.Error()
		} else {
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = file
			writers = append(writers, file)
		}
	}

	result.Logger = newLogger(cfg, zerolog.MultiLevelWriter(writers...))
	return result
}

// NewLogger builds a logger per cfg writing to w. Used directly by tests and
// by callers that manage their own output streams.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	return newLogger(cfg, formatWriter(cfg.Format, w))
}

func newLogger(cfg Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// formatWriter wraps w in a console writer unless JSON output is requested.
func formatWriter(format string, w io.Writer) io.Writer {
	if format == FormatJSON {
		return w
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where log output is going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user why file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}
