package app

import (
	"context"

	"github.com/Aritro-Git/AIzMarketplace/internal/catalog/domain"
)

// Source supplies the catalogue records, once per process. It is the only
// asynchronous boundary around the pipeline; Query must only run after the
// load has resolved.
type Source interface {
	Load(ctx context.Context) ([]domain.Agent, error)
}
