package logger

import (
	"context"
	"fmt"

	"golang-ai-analyzer/pkg/sanitize"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap with ASCII-safe logging. Every message and string field
// value passes through the sanitizer so that logging itself can never fail
// on encoding.
type Logger struct {
	zap *zap.Logger
}

// New creates a Logger with the given level ("debug", "info", ...) and
// encoding ("json" or "console").
func New(level, encoding string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	if encoding == "" {
		encoding = "json"
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = encoding
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return &Logger{zap: z}, nil
}

// Field creates a field of arbitrary type.
func Field(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

// StringField creates a sanitized string field.
func StringField(key, value string) zap.Field {
	return zap.String(key, sanitize.Text(value))
}

// IntField creates an int field.
func IntField(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// Float64Field creates a float64 field.
func Float64Field(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}

// BoolField creates a bool field.
func BoolField(key string, value bool) zap.Field {
	return zap.Bool(key, value)
}

// ErrorField creates a sanitized error field.
func ErrorField(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.String("error", sanitize.Text(err.Error()))
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(sanitize.Text(msg), fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(sanitize.Text(msg), fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(sanitize.Text(msg), fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(sanitize.Text(msg), fields...)
}

func (l *Logger) Fatal(msg string, fields ...zap.Field) {
	l.zap.Fatal(sanitize.Text(msg), fields...)
}

// Context-aware variants. The context is accepted for call-site symmetry;
// nothing is extracted from it today.
func (l *Logger) DebugContext(_ context.Context, msg string, fields ...zap.Field) {
	l.zap.Debug(sanitize.Text(msg), fields...)
}

func (l *Logger) ErrorContext(_ context.Context, msg string, fields ...zap.Field) {
	l.zap.Error(sanitize.Text(msg), fields...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
