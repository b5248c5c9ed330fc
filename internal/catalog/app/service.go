package app

import (
	"context"
	"errors"
	"strings"

	"github.com/Aritro-Git/AIzMarketplace/internal/analytics"
	"github.com/Aritro-Git/AIzMarketplace/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Service holds the per-session catalogue. Records are loaded once and never
// mutated afterwards; queries are served from the in-memory slice.
type Service struct {
	src     Source
	emitter analytics.Emitter
	agents  []domain.Agent
}

func NewService(src Source, emitter analytics.Emitter) *Service {
	if emitter == nil {
		emitter = analytics.Nop{}
	}
	return &Service{
		src:     src,
		emitter: emitter,
	}
}

// Load resolves the catalogue source. A failed load degrades to an empty
// catalogue; the error is returned so the caller can log it, but the service
// stays usable ("0 of 0 results").
func (s *Service) Load(ctx context.Context) error {
	agents, err := s.src.Load(ctx)
	if err != nil {
		s.agents = nil
		return err
	}
	s.agents = agents
	return nil
}

// Agents returns the full catalogue in source order.
func (s *Service) Agents() []domain.Agent {
	return s.agents
}

func (s *Service) Get(ctx context.Context, id string) (domain.Agent, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Agent{}, ErrInvalidInput
	}
	for _, a := range s.agents {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Agent{}, ErrNotFound
}

// View is Get plus the detail-page analytics tag.
func (s *Service) View(ctx context.Context, id string) (domain.Agent, error) {
	agent, err := s.Get(ctx, id)
	if err != nil {
		return domain.Agent{}, err
	}
	s.emitter.Emit(ctx, analytics.New("agent_view_click", map[string]any{
		"agent_id": agent.ID,
		"category": agent.Category,
	}))
	return agent, nil
}

// Query runs the listing pipeline over the loaded catalogue.
func (s *Service) Query(ctx context.Context, state QueryState) Result {
	res := Query(s.agents, state)
	s.emitter.Emit(ctx, analytics.New("catalog_render", map[string]any{
		"category": state.Category,
		"query":    state.Search,
		"sort":     string(state.Sort),
		"results":  res.Shown,
	}))
	return res
}
