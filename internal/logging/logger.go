package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes JSON lines. It defaults to stderr so that stdout carries
// only program output.
type Logger struct {
	z *zap.Logger
}

func NewLogger(levelStr string) *Logger {
	return NewLoggerWithWriter(levelStr, os.Stderr)
}

func NewLoggerWithWriter(levelStr string, w io.Writer) *Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(w),
		parseLevel(levelStr),
	)
	return &Logger{z: zap.New(core)}
}

func parseLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{z: l.z.With(zap.String("component", name))}
}

func (l *Logger) Debug(msg string) { l.z.Debug(msg) }
func (l *Logger) Info(msg string)  { l.z.Info(msg) }
func (l *Logger) Warn(msg string)  { l.z.Warn(msg) }
func (l *Logger) Error(msg string) { l.z.Error(msg) }

func (l *Logger) Debugw(msg string, fields map[string]any) {
	l.z.Debug(msg, toFields(fields)...)
}

func (l *Logger) Infow(msg string, fields map[string]any) {
	l.z.Info(msg, toFields(fields)...)
}

func (l *Logger) Errorw(msg string, fields map[string]any) {
	l.z.Error(msg, toFields(fields)...)
}

func (l *Logger) Sync() error {
	return l.z.Sync()
}

func toFields(m map[string]any) []zap.Field {
	fields := make([]zap.Field, 0, len(m))
	for k, v := range m {
		fields = append(fields, zap.Any(k, v))
	}
	return fields
}
