// Package memory keeps the cart blob in-process, for tests and ephemeral
// sessions that should not outlive the binary.
package memory

import (
	"context"

	"github.com/Aritro-Git/AIzMarketplace/internal/cart/app"
)

type Storage struct {
	blob []byte
}

func New() *Storage {
	return &Storage{}
}

func (s *Storage) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.blob == nil {
		return nil, app.ErrNotFound
	}
	out := make([]byte, len(s.blob))
	copy(out, s.blob)
	return out, nil
}

func (s *Storage) Write(ctx context.Context, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.blob = make([]byte, len(blob))
	copy(s.blob, blob)
	return nil
}

// Seed overwrites the stored blob directly, bypassing the service. Tests use
// it to inject malformed state.
func (s *Storage) Seed(blob []byte) {
	s.blob = blob
}
