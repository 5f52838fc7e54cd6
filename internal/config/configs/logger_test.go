package configs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	h := Logger{Level: "warn", Format: "json"}.Handler(&buf)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	slog.New(h).Warn("placement rejected", slog.String("code", "DUPLICATE_BOOKING"))
	assert.Contains(t, buf.String(), `"code":"DUPLICATE_BOOKING"`)

	buf.Reset()
	slog.New(Logger{Format: "yaml"}.Handler(&buf)).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
