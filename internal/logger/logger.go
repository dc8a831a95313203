package logger

import (
	"context"
	"log/slog"
	"os"
	"time"
)

var log *slog.Logger

// Init configures the global logger.
// env: "development" or "production"
func Init(env string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	if env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Production: JSON for log collectors
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger returns the global logger.
func GetLogger() *slog.Logger {
	if log == nil {
		// Fallback when Init was not called
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal logs the message and exits.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// WithError returns a logger carrying an error field.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}

// HTTPLog writes the access-log entry for a served request. The level
// follows the response status; the request ID rides in from ctx.
func HTTPLog(ctx context.Context, method, path, clientIP string, status int, duration time.Duration, size int) {
	fields := []any{
		slog.String("client_ip", clientIP),
		slog.Int("status", status),
		slog.String("method", method),
		slog.String("path", path),
		slog.Duration("duration", duration),
		slog.Int("size_bytes", size),
	}

	entry := FromContext(ctx)
	switch {
	case status >= 500:
		entry.Error("HTTP Server Error", fields...)
	case status >= 400:
		entry.Warn("HTTP Client Error", fields...)
	default:
		entry.Info("HTTP Request", fields...)
	}
}
