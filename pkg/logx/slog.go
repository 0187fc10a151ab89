package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Options struct {
	Level  string
	Format string
	// File enables a rotating log file next to (or instead of) the console.
	File string
	// Quiet drops console output; used when the terminal belongs to a UI.
	Quiet bool
}

// NewLogger builds the process logger: tint for consoles, JSON otherwise,
// plus lumberjack rotation when a file is configured.
func NewLogger(opts Options) *slog.Logger {
	var writers []io.Writer

	if !opts.Quiet {
		writers = append(writers, os.Stdout)
	}

	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, //nolint:mnd // megabytes
			MaxBackups: 3,  //nolint:mnd
			MaxAge:     28, //nolint:mnd // days
			Compress:   true,
		})
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	w := io.MultiWriter(writers...)
	level := ParseLevel(opts.Level)

	if opts.Format == FormatJSON || opts.Quiet {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
