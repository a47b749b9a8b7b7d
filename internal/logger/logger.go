package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Init builds the process-wide logger. JSON to stdout, one line per event.
func Init() {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	log = l
	log.Info("logger initialized")
}

func Info(msg string, fields map[string]any) {
	log.Info(msg, toZapFields(fields)...)
}

func Warn(msg string, fields map[string]any) {
	log.Warn(msg, toZapFields(fields)...)
}

func Error(msg string, fields map[string]any) {
	log.Error(msg, toZapFields(fields)...)
}

// Fatal logs and exits with a non-zero status.
func Fatal(msg string, fields map[string]any) {
	log.Fatal(msg, toZapFields(fields)...)
}

func toZapFields(fields map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}
