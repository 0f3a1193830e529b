// Package log provides a small leveled logging facade over log/slog with
// functional options, shared by the CLI and the REPL.
package log

import (
	"io"
	"log/slog"
	"strings"
)

// Format selects the handler encoding.
type Format int

const (
	// FormatText renders human-readable key=value records.
	FormatText Format = iota
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// config collects the options applied by Make.
type config struct {
	level     slog.Level
	format    Format
	addSource bool
}

// Option configures the logger built by Make.
type Option func(*config)

// WithLevel sets the minimum level that is emitted.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithFormat selects text or JSON output.
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithSource includes the caller's file and line in each record.
func WithSource(enabled bool) Option {
	return func(c *config) {
		c.addSource = enabled
	}
}

// Make creates a logger writing to w. The default configuration is text
// format at info level without caller info.
func Make(w io.Writer, opts ...Option) *slog.Logger {
	cfg := config{level: slog.LevelInfo, format: FormatText}
	for _, opt := range opts {
		opt(&cfg)
	}

	hopts := &slog.HandlerOptions{Level: cfg.level, AddSource: cfg.addSource}
	var handler slog.Handler
	if cfg.format == FormatJSON {
		handler = slog.NewJSONHandler(w, hopts)
	} else {
		handler = slog.NewTextHandler(w, hopts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to its slog level. Unknown names fall back
// to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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
