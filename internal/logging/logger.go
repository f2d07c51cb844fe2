// Package logging builds the application's slog logger. Output goes to a
// size-rotated file so it never interferes with the terminal UI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	Compress   bool
	// Tee, when set, receives a copy of every record.
	Tee io.Writer
}

// Setup returns the logger and a closer for the log file. With no file and
// no tee the logger discards everything.
func Setup(p SetupParams) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(p.Level)
	if err != nil {
		return nil, nil, err
	}

	var writers []io.Writer
	var closer io.Closer = nopCloser{}
	if p.File != "" {
		if err := os.MkdirAll(filepath.Dir(p.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   p.File,
			MaxSize:    p.MaxSizeMB, // megabytes
			MaxBackups: p.MaxBackups,
			Compress:   p.Compress,
		}
		writers = append(writers, lj)
		closer = lj
	}
	if p.Tee != nil {
		writers = append(writers, p.Tee)
	}
	if len(writers) == 0 {
		return slog.New(slog.DiscardHandler), closer, nil
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level})
	return slog.New(handler), closer, nil
}

// ParseLevel maps a config string onto a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
