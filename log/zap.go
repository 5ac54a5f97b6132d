package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*zapLogger)(nil)

type zapLogger struct {
	l *zap.Logger
}

// Zap adapts zap logger. Names from context become the logger name.
func Zap(l *zap.Logger) *zapLogger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := zapLevel(LevelFromContext(ctx))
	if lvl == zapcore.InvalidLevel {
		return
	}
	l := z.l
	if names := NamesFromContext(ctx); len(names) > 0 {
		l = l.Named(strings.Join(names, "."))
	}
	if ce := l.Check(lvl, msg); ce != nil {
		ce.Write(zapFields(fields)...)
	}
}

func zapLevel(lvl Level) zapcore.Level {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		// FATAL of the driver must not exit the process
		return zapcore.DPanicLevel
	default:
		return zapcore.InvalidLevel
	}
}

func zapFields(fields []Field) []zap.Field {
	zf := make([]zap.Field, len(fields))
	for i, f := range fields {
		switch f.Type() {
		case IntType:
			zf[i] = zap.Int(f.Key(), f.IntValue())
		case Int64Type:
			zf[i] = zap.Int64(f.Key(), f.Int64Value())
		case StringType:
			zf[i] = zap.String(f.Key(), f.StringValue())
		case BoolType:
			zf[i] = zap.Bool(f.Key(), f.BoolValue())
		case DurationType:
			zf[i] = zap.Duration(f.Key(), f.DurationValue())
		case StringsType:
			zf[i] = zap.Strings(f.Key(), f.StringsValue())
		case ErrorType:
			zf[i] = zap.NamedError(f.Key(), f.ErrorValue())
		case StringerType:
			zf[i] = zap.Stringer(f.Key(), f.Stringer())
		default:
			zf[i] = zap.Any(f.Key(), f.AnyValue())
		}
	}

	return zf
}
