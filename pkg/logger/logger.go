package logger

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

// RequestIDKey is the context key carrying the request id attached to log entries.
const RequestIDKey ctxKey = "request_id"

// Logger wraps zap.Logger with context aware helpers.
type Logger struct {
	*zap.Logger
}

// Option customizes the logger built by New.
type Option func(*options)

type options struct {
	suppress []string
}

// WithSuppressedMessages drops every entry whose message contains one of the given substrings.
func WithSuppressedMessages(patterns ...string) Option {
	return func(o *options) {
		for _, p := range patterns {
			if p = strings.TrimSpace(p); p != "" {
				o.suppress = append(o.suppress, p)
			}
		}
	}
}

// New builds a logger for the given level ("debug", "info", ...) and encoding ("json" or "console").
func New(level, encoding string, opts ...Option) (*Logger, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	if encoding != "console" {
		encoding = "json"
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var zapOpts []zap.Option
	if len(o.suppress) > 0 {
		patterns := o.suppress
		zapOpts = append(zapOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return NewSuppressCore(core, patterns)
		}))
	}

	zl, err := cfg.Build(zapOpts...)
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: zl}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// FromCore wraps an existing zap core, mostly useful in tests with zaptest/observer.
func FromCore(core zapcore.Core) *Logger {
	return &Logger{Logger: zap.New(core)}
}

func (l *Logger) withContext(ctx context.Context, fields []zap.Field) []zap.Field {
	if ctx == nil {
		return fields
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		fields = append(fields, zap.String(string(RequestIDKey), id))
	}
	return fields
}

// DebugContext logs at debug level with request scoped fields.
func (l *Logger) DebugContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.Debug(msg, l.withContext(ctx, fields)...)
}

// InfoContext logs at info level with request scoped fields.
func (l *Logger) InfoContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.Info(msg, l.withContext(ctx, fields)...)
}

// WarnContext logs at warn level with request scoped fields.
func (l *Logger) WarnContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.Warn(msg, l.withContext(ctx, fields)...)
}

// ErrorContext logs at error level with request scoped fields.
func (l *Logger) ErrorContext(ctx context.Context, msg string, fields ...zap.Field) {
	l.Error(msg, l.withContext(ctx, fields)...)
}

// Field builds a field of any type.
func Field(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

// ErrorField builds the conventional "error" field.
func ErrorField(err error) zap.Field {
	return zap.Error(err)
}

// StringField builds a string field.
func StringField(key, value string) zap.Field {
	return zap.String(key, value)
}

// IntField builds an int field.
func IntField(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// Float64Field builds a float field.
func Float64Field(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}
