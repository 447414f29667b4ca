package app

import (
	"io"
	"log/slog"
)

// newLogger builds the run's logger writing to w. Unknown levels fall back to
// info. Every record carries the run id. The global logger is left alone.
func newLogger(cfg *Config, runID string, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("run_id", runID)
}
