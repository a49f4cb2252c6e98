package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps a slog.Logger with ownership of its log file, if any.
// Built once at Init and passed by reference to every component; there
// is deliberately no package-level logger so that two engine instances
// (e.g. one per detached window) never share mutable state.
type Logger struct {
	*slog.Logger

	level   *slog.LevelVar
	logFile *os.File
}

// NewLogger creates a JSON logger writing to stdout, and additionally to
// the file at path when path is non-empty. Parent directories are
// created as needed. If the file cannot be opened the logger falls back
// to console-only rather than failing.
func NewLogger(path string, rawLevel string) *Logger {
	var out io.Writer = os.Stdout
	var logFile *os.File

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err == nil {
				logFile = f
				out = io.MultiWriter(os.Stdout, f)
			}
		}
	}

	level := &slog.LevelVar{}
	level.Set(ParseLevel(rawLevel))

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})

	return &Logger{
		Logger:  slog.New(handler),
		level:   level,
		logFile: logFile,
	}
}

// SetLevel adjusts the minimum level at runtime.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Close releases the log file, if one was opened.
func (l *Logger) Close() {
	if l.logFile != nil {
		l.logFile.Close()
	}
}

// ParseLevel maps a config-file level string to a slog.Level,
// defaulting to Info for anything unrecognized.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(rawLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
