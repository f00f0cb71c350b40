// Package testutil provides test utilities for structured logging.
package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// NewTestLogger returns a debug logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	logger, _ := NewCaptureLogger(t)
	return logger
}

// LogCapture records every line a capture logger writes.
// It is safe for use by concurrent goroutines.
type LogCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// String returns everything logged so far.
func (c *LogCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Contains reports whether any logged line contains substr.
func (c *LogCapture) Contains(substr string) bool {
	return strings.Contains(c.String(), substr)
}

// NewCaptureLogger returns a debug logger that writes to t.Log() and
// records its output so tests can assert on what was logged.
func NewCaptureLogger(t testing.TB) (*slog.Logger, *LogCapture) {
	t.Helper()
	capture := &LogCapture{}
	handler := slog.NewTextHandler(testWriter{t: t, capture: capture}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler), capture
}

type testWriter struct {
	t       testing.TB
	capture *LogCapture
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.capture.mu.Lock()
	w.capture.buf.Write(p)
	w.capture.mu.Unlock()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
