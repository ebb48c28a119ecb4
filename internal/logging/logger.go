// Package logging wraps zerolog with the small leveled surface the rest of
// the tool uses: console output with optional color, plus an optional JSON
// file sink for post-mortem inspection of batch runs.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/backmassage/m4vify/internal/config"
	"github.com/backmassage/m4vify/internal/term"
)

// Logger provides leveled, optionally colored logging with an optional
// file sink.
type Logger struct {
	z    zerolog.Logger
	file *os.File
}

// New builds a Logger from opts. Colors follow term.Configure's earlier
// resolution. Call Close when done if LogFile was set.
func New(opts *config.Options) (*Logger, error) {
	var file *os.File
	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		file = f
	}

	l := newWithWriter(os.Stdout, file, opts.Verbose)
	l.file = file
	return l, nil
}

// newWithWriter wires the console writer and optional extra sink. Split out
// so tests can capture output.
func newWithWriter(console io.Writer, extra io.Writer, verbose bool) *Logger {
	cw := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: "15:04:05",
		NoColor:    !term.Enabled(),
	}

	var w io.Writer = cw
	if extra != nil {
		w = zerolog.MultiLevelWriter(cw, extra)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	z := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Logger{z: z}
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.z.Info().Msgf(format, args...)
}

// Success logs a completed step at INFO level with a green marker.
func (l *Logger) Success(format string, args ...interface{}) {
	l.z.Info().Str("result", "ok").Msgf(term.Green+format+term.NC, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.z.Warn().Msgf(format, args...)
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.z.Error().Msgf(format, args...)
}

// Debug logs at DEBUG level; suppressed unless verbose was set.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.z.Debug().Msgf(format, args...)
}
