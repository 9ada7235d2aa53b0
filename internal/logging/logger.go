package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"sentimock/internal/correlation"
)

// InitLogger initializes the global logger with the specified level and format.
// level: "debug", "info", "warn", "error" (defaults to "info")
// format: "json", "text", or "pretty" (defaults to "text")
//
// Every handler is wrapped so records automatically pick up the request's
// correlation ID from the context.
func InitLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	case "pretty":
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(correlation.NewHandler(handler)))
}

// WithOperation returns a logger with the GraphQL operation field.
func WithOperation(operation string) *slog.Logger {
	return slog.Default().With("operation", operation)
}

// WithAccount returns a logger with the account_id field.
func WithAccount(accountID string) *slog.Logger {
	return slog.Default().With("account_id", accountID)
}
