//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesStructuredAttributes(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	log := &slogLogger{logger: slog.New(handler)}

	log.Debug("hidden")
	log.Info("profile registered", "profile_id", "auth0|abc")
	log.Warn("slot taken", "start", "2026-10-20T16:00:00Z")
	log.Error("calendar unavailable")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "profile registered")
	assert.Contains(t, output, "profile_id=auth0|abc")
	assert.Contains(t, output, "slot taken")
	assert.Contains(t, output, "calendar unavailable")
}

func TestSlogLogger_PanicLogsAndPanics(t *testing.T) {
	var buf bytes.Buffer
	log := &slogLogger{logger: slog.New(slog.NewTextHandler(&buf, nil))}

	assert.PanicsWithValue(t, "boom", func() { log.Panic("boom") })
	assert.Contains(t, buf.String(), "boom")
}

func TestNewConsoleLogger(t *testing.T) {
	log := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, log)

	require.NotPanics(t, func() {
		log.Info("test")
		log.Warn("test", "k", "v")
		log.Error("test")
	})
}
