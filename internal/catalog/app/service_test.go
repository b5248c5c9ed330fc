package app

import (
	"context"
	"errors"
	"testing"

	"github.com/Aritro-Git/AIzMarketplace/internal/catalog/domain"
)

type fakeSource struct {
	agents []domain.Agent
	err    error
}

func (f fakeSource) Load(ctx context.Context) ([]domain.Agent, error) {
	return f.agents, f.err
}

func TestServiceLoadFailureDegradesToEmpty(t *testing.T) {
	svc := NewService(fakeSource{err: errors.New("boom")}, nil)

	if err := svc.Load(context.Background()); err == nil {
		t.Fatalf("expected load error surfaced to caller")
	}

	res := svc.Query(context.Background(), QueryState{})
	if res.Shown != 0 || res.Total != 0 {
		t.Fatalf("expected 0 of 0 results, got %d of %d", res.Shown, res.Total)
	}
}

func TestServiceGet(t *testing.T) {
	svc := NewService(fakeSource{agents: testCatalog()}, nil)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	t.Run("known id", func(t *testing.T) {
		agent, err := svc.Get(context.Background(), "mkt-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if agent.Name != "AdVision" {
			t.Fatalf("wrong agent: %+v", agent)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "ghost")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
