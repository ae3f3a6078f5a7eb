// Package logger adapts zerolog to a key/value Logger interface.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"procwatch/internal/config"
)

// Logger takes a message followed by alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

type zerologLogger struct {
	zl zerolog.Logger
}

// New builds the process logger from cfg. In top mode the terminal belongs
// to the dashboard, so output is dropped unless LOG_FILE is set.
func New(cfg *config.Config) (Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: cannot open %s: %v\n", cfg.LogFile, err)
		} else {
			out = f
			closer = f
		}
	} else if cfg.Mode == config.ModeTop {
		out = io.Discard
	}

	return NewWithWriter(out, cfg.LogLevel, cfg.LogFormat), closer
}

// NewWithWriter builds a logger writing to w.
func NewWithWriter(w io.Writer, level, format string) Logger {
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	zl := zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &zerologLogger{zl: zl}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *zerologLogger) Debug(msg string, args ...any) {
	l.zl.Debug().Fields(normalize(args)).Msg(msg)
}

func (l *zerologLogger) Info(msg string, args ...any) {
	l.zl.Info().Fields(normalize(args)).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, args ...any) {
	l.zl.Warn().Fields(normalize(args)).Msg(msg)
}

func (l *zerologLogger) Error(msg string, args ...any) {
	l.zl.Error().Fields(normalize(args)).Msg(msg)
}

func (l *zerologLogger) With(args ...any) Logger {
	return &zerologLogger{zl: l.zl.With().Fields(normalize(args)).Logger()}
}

// normalize pads a dangling key so zerolog never drops it.
func normalize(args []any) []any {
	if len(args)%2 == 1 {
		args = append(args, "(MISSING)")
	}
	return args
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
