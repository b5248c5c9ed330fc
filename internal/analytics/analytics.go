// Package analytics carries the storefront's event stream. Events mirror the
// tags the marketing pipeline consumes (catalog_render, add_to_cart, ...);
// emission is fire-and-forget and never fails the triggering operation.
package analytics

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type Event struct {
	ID     string
	Name   string
	Params map[string]any
}

// New stamps a fresh event with a unique id.
func New(name string, params map[string]any) Event {
	return Event{
		ID:     uuid.NewString(),
		Name:   name,
		Params: params,
	}
}

type Emitter interface {
	Emit(ctx context.Context, ev Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Emit(context.Context, Event) {}

// LogEmitter writes events to the structured log, the dev-mode stand-in for
// a real analytics sink.
type LogEmitter struct {
	log *slog.Logger
}

func NewLogEmitter(log *slog.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

func (e *LogEmitter) Emit(ctx context.Context, ev Event) {
	if e == nil || e.log == nil {
		return
	}
	args := make([]any, 0, 2+2*len(ev.Params))
	args = append(args, "event_id", ev.ID)
	for k, v := range ev.Params {
		args = append(args, k, v)
	}
	e.log.InfoContext(ctx, ev.Name, args...)
}
