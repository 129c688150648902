// Package testutil provides shared helpers for tests: a capturing slog
// handler and writers for configuration-table fixtures.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// LogRecord is one captured log record.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// CaptureHandler is a slog.Handler that buffers records for assertions.
type CaptureHandler struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewTestLogger returns a logger backed by a capturing handler.
func NewTestLogger(t *testing.T) (*slog.Logger, *CaptureHandler) {
	t.Helper()
	h := &CaptureHandler{}
	return slog.New(h), h
}

// Handle implements slog.Handler.
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	h.mu.Lock()
	h.records = append(h.records, LogRecord{Level: r.Level, Message: r.Message, Attrs: attrs})
	h.mu.Unlock()
	return nil
}

// Enabled implements slog.Handler; tests capture every level.
func (h *CaptureHandler) Enabled(context.Context, slog.Level) bool { return true }

// WithAttrs implements slog.Handler.
func (h *CaptureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

// WithGroup implements slog.Handler.
func (h *CaptureHandler) WithGroup(string) slog.Handler { return h }

// Records returns a copy of the captured records.
func (h *CaptureHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]LogRecord, len(h.records))
	copy(out, h.records)
	return out
}

// ContainsMessage reports whether any record's message contains the given
// substring.
func (h *CaptureHandler) ContainsMessage(message string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if strings.Contains(r.Message, message) {
			return true
		}
	}
	return false
}
