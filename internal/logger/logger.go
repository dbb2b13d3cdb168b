package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	battleIDKey  ctxKey = ContextKeyBattleID
	requestIDKey ctxKey = ContextKeyRequestID
)

// InitLogger installs the default slog logger writing to stderr
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stderr)
}

// InitLoggerWithWriter installs the default slog logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// Discard installs a logger that drops everything, for tests and benchmarks
func Discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// GenerateBattleID creates a new UUID for tracing one battle
func GenerateBattleID() string {
	return uuid.NewString()
}

// WithBattleID returns a new context containing the battle ID.
func WithBattleID(ctx context.Context, battleID string) context.Context {
	return context.WithValue(ctx, battleIDKey, battleID)
}

// BattleIDFromContext extracts the battle ID from the context, if present.
func BattleIDFromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(battleIDKey).(string); ok && id != "" {
		return id, true
	}
	return "", false
}

// GetBattleID returns the battle ID or an empty string
func GetBattleID(ctx context.Context) string {
	id, _ := BattleIDFromContext(ctx)
	return id
}

// GenerateRequestID creates a new UUID for one HTTP request
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request ID or an empty string
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// FromContext returns a logger that includes the battle_id and request_id attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := BattleIDFromContext(ctx); ok {
		log = log.With(AttrKeyBattleID, id)
	}
	if id := GetRequestID(ctx); id != "" {
		log = log.With(AttrKeyRequestID, id)
	}
	return log
}

// Debug logs at debug level on the default logger
func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }

// Info logs at info level on the default logger
func Info(msg string, args ...any) { slog.Default().Info(msg, args...) }

// Warn logs at warn level on the default logger
func Warn(msg string, args ...any) { slog.Default().Warn(msg, args...) }

// Error logs at error level on the default logger
func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }
