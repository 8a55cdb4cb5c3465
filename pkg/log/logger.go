package log

import (
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// Logger provides structured logging capabilities.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field with key "error".
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Vec creates a field holding a 3D point as [x, y, z].
func Vec(key string, v r3.Vec) Field {
	return Field{Key: key, Value: v}
}

// Any creates a field with any value.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// With returns a Logger that prepends fields to every message.
func With(l Logger, fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	if z, ok := l.(*ZerologAdapter); ok {
		ctx := z.logger.With()
		for _, f := range fields {
			ctx = ctx.Interface(f.Key, f.Value)
		}
		return &ZerologAdapter{logger: ctx.Logger()}
	}
	return &fieldLogger{next: l, fields: fields}
}

type fieldLogger struct {
	next   Logger
	fields []Field
}

func (l *fieldLogger) merge(fields []Field) []Field {
	out := make([]Field, 0, len(l.fields)+len(fields))
	return append(append(out, l.fields...), fields...)
}

func (l *fieldLogger) Debug(msg string, fields ...Field) { l.next.Debug(msg, l.merge(fields)...) }
func (l *fieldLogger) Info(msg string, fields ...Field)  { l.next.Info(msg, l.merge(fields)...) }
func (l *fieldLogger) Warn(msg string, fields ...Field)  { l.next.Warn(msg, l.merge(fields)...) }
func (l *fieldLogger) Error(msg string, fields ...Field) { l.next.Error(msg, l.merge(fields)...) }
