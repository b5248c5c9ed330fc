package analytics

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewStampsUniqueIDs(t *testing.T) {
	a := New("add_to_cart", nil)
	b := New("add_to_cart", nil)

	if a.ID == "" || b.ID == "" {
		t.Fatalf("expected non-empty event ids")
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct event ids, got %s twice", a.ID)
	}
}

func TestLogEmitterWritesEventFields(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	e := NewLogEmitter(log)
	e.Emit(context.Background(), New("search_used", map[string]any{"search_term": "funnel"}))

	out := buf.String()
	if !strings.Contains(out, "search_used") || !strings.Contains(out, "funnel") {
		t.Fatalf("event fields missing from log line: %s", out)
	}
}

func TestNilEmitterIsSafe(t *testing.T) {
	var e *LogEmitter
	e.Emit(context.Background(), New("noop", nil))
	Nop{}.Emit(context.Background(), New("noop", nil))
}
