package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// LogRecord represents a captured log record for testing
type LogRecord struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// CaptureHandler is a slog.Handler that retains every record it receives so
// tests can assert on pipeline log output.
type CaptureHandler struct {
	mu      sync.Mutex
	records []LogRecord
	t       *testing.T
}

// NewCaptureHandler creates a handler that also mirrors records to the test
// log for debugging.
func NewCaptureHandler(t *testing.T) *CaptureHandler {
	return &CaptureHandler{records: make([]LogRecord, 0), t: t}
}

// NewTestLogger creates a logger backed by a capture handler.
func NewTestLogger(t *testing.T) (*slog.Logger, *CaptureHandler) {
	handler := NewCaptureHandler(t)
	return slog.New(handler), handler
}

// Handle implements slog.Handler
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	h.records = append(h.records, LogRecord{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})

	if h.t != nil {
		h.t.Logf("[%s] %s %v", r.Level, r.Message, attrs)
	}
	return nil
}

// Enabled implements slog.Handler; tests capture all levels.
func (h *CaptureHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

// WithAttrs implements slog.Handler
func (h *CaptureHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

// WithGroup implements slog.Handler
func (h *CaptureHandler) WithGroup(_ string) slog.Handler { return h }

// Records returns a copy of all captured records.
func (h *CaptureHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]LogRecord, len(h.records))
	copy(out, h.records)
	return out
}

// RecordsAt returns the captured records at the given level.
func (h *CaptureHandler) RecordsAt(level slog.Level) []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []LogRecord
	for _, r := range h.records {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// HasMessage reports whether any record's message contains the substring.
func (h *CaptureHandler) HasMessage(substr string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if strings.Contains(r.Message, substr) {
			return true
		}
	}
	return false
}

// HasAttr reports whether any record carries the given attribute value.
func (h *CaptureHandler) HasAttr(key string, value any) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if v, ok := r.Attrs[key]; ok && v == value {
			return true
		}
	}
	return false
}

// AssertLogContains fails the test when no record at the given level contains
// the message substring.
func AssertLogContains(t *testing.T, handler *CaptureHandler, level slog.Level, message string) {
	t.Helper()

	for _, r := range handler.RecordsAt(level) {
		if strings.Contains(r.Message, message) {
			return
		}
	}
	t.Errorf("expected log message not found at level %s: %q", level, message)
	for _, r := range handler.RecordsAt(level) {
		t.Logf("  - %s", r.Message)
	}
}
