// Package zaplog adapts a zap logger to the script Logger contract, so host
// integrations and contract tests can route script log output through their
// existing logging setup.
package zaplog

import (
	v1 "github.com/Infigo-Official/types-for-megascript/v1"
	"go.uber.org/zap"
)

// Logger implements v1.Logger on top of a zap logger.
type Logger struct {
	base *zap.Logger
}

var _ v1.Logger = (*Logger)(nil)

// New wraps the given zap logger. A nil logger falls back to a no-op.
func New(base *zap.Logger) *Logger {
	if base == nil {
		base = zap.NewNop()
	}
	return &Logger{base: base}
}

// Named returns a logger with the script name attached, matching how run
// logs are tagged on the host.
func (l *Logger) Named(script string) *Logger {
	return &Logger{base: l.base.With(zap.String("script", script))}
}

// Debug implements v1.Logger
func (l *Logger) Debug(msg string, fields ...v1.Field) {
	l.base.Debug(msg, convert(fields)...)
}

// Info implements v1.Logger
func (l *Logger) Info(msg string, fields ...v1.Field) {
	l.base.Info(msg, convert(fields)...)
}

// Warn implements v1.Logger
func (l *Logger) Warn(msg string, fields ...v1.Field) {
	l.base.Warn(msg, convert(fields)...)
}

// Error implements v1.Logger
func (l *Logger) Error(msg string, fields ...v1.Field) {
	l.base.Error(msg, convert(fields)...)
}

func convert(fields []v1.Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}
