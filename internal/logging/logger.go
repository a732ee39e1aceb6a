// Package logging configures the process-wide slog logger. Handlers write to
// stderr: stdout carries the MCP stdio transport and must stay clean.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/frauddesk/fraud-mcp/internal/config"
)

// Setup builds a slog.Logger from the logging config and installs it as the
// default logger.
func Setup(cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
