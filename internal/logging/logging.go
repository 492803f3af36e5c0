package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"patientdoc/internal/config"
)

// New builds the process logger from config.
// Output always goes to stderr, keeping stdout for command output. When
// LogFile is set it is also written to a size-rotated file.
func New(cfg *config.Config) *slog.Logger {
	return slog.New(newHandler(cfg, os.Stderr))
}

func newHandler(cfg *config.Config, console io.Writer) slog.Handler {
	w := console
	if cfg.LogFile != "" {
		w = io.MultiWriter(console, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
		})
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	if cfg.LogFormat == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
