package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventLog is the append-only diagnostic trail. Each invocation writes at
// most one line; the file is opened O_APPEND so overlapping invocations
// never interleave partial records.
type EventLog struct {
	logger *zap.Logger
	file   *os.File
}

func openEventLog(dir string) (*EventLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "events.jsonl"), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:    "ts",
		MessageKey: "message",
		LineEnding: zapcore.DefaultLineEnding,
		EncodeTime: zapcore.ISO8601TimeEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.Lock(f), zapcore.InfoLevel)
	return &EventLog{logger: zap.New(core), file: f}, nil
}

// Record appends one line for a resolved event.
func (l *EventLog) Record(e Event, message string) {
	fields := []zap.Field{zap.String("event", e.Name)}
	if e.Tool != "" {
		fields = append(fields, zap.String("tool", e.Tool))
	}
	l.logger.Info(message, fields...)
}

func (l *EventLog) Close() {
	_ = l.logger.Sync()
	_ = l.file.Close()
}

// newDebugLogger returns a development logger on stderr when debug is on,
// otherwise a no-op logger.
func newDebugLogger(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
