package infra

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// Logger emits structured JSON log entries. It wraps zap behind the small
// context-aware surface the rest of the application uses, so call sites never
// deal with fields or levels directly.
type Logger struct {
	zl *zap.Logger
}

func NewLogger(out io.Writer, service string) *Logger {
	if out == nil {
		out = io.Discard
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     utcTimeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(out),
		zapcore.InfoLevel,
	)

	zl := zap.New(core)
	if service = strings.TrimSpace(service); service != "" {
		zl = zl.With(zap.String("service", service))
	}
	return &Logger{zl: zl}
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, correlationIDKey, strings.TrimSpace(id))
}

func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(correlationIDKey).(string); ok {
		return v
	}
	return ""
}

func (l *Logger) Printf(ctx context.Context, format string, v ...any) {
	if l == nil || l.zl == nil {
		return
	}
	l.zl.Info(fmt.Sprintf(format, v...), traceField(ctx)...)
}

func (l *Logger) Println(ctx context.Context, v ...any) {
	if l == nil || l.zl == nil {
		return
	}
	msg := strings.TrimSpace(fmt.Sprintln(v...))
	l.zl.Info(msg, traceField(ctx)...)
}

func (l *Logger) Fatalf(ctx context.Context, format string, v ...any) {
	if l == nil || l.zl == nil {
		panic(fmt.Sprintf(format, v...))
	}
	l.zl.Fatal(fmt.Sprintf(format, v...), traceField(ctx)...)
}

func traceField(ctx context.Context) []zap.Field {
	if id := CorrelationIDFromContext(ctx); id != "" {
		return []zap.Field{zap.String("trace_id", id)}
	}
	return nil
}

func utcTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339Nano))
}
