package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	logger.Debug("debug msg", "k", "v1")
	logger.Info("info msg", "k", "v2")
	logger.Warn("warn msg", "k", "v3")
	logger.Error("error msg", "k", "v4")

	out := buf.String()
	require.Contains(t, out, "debug msg")
	require.Contains(t, out, "k=v1")
	require.Contains(t, out, "info msg")
	require.Contains(t, out, "warn msg")
	require.Contains(t, out, "error msg")
	require.Contains(t, out, "k=v4")
}

func TestNopLogger_Discards(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	// Must not panic regardless of arguments.
	logger.Debug("msg")
	logger.Info("msg", "k", "v")
	logger.Warn("msg", "odd-key")
	logger.Error("msg", "k", 1, "k2", nil)
}
