// Package file persists the cart blob in a single file, the desktop analogue
// of origin-local storage.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aritro-Git/AIzMarketplace/internal/cart/app"
)

type Storage struct {
	path string
}

func New(path string) *Storage {
	return &Storage{path: path}
}

func (s *Storage) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, app.ErrNotFound
		}
		return nil, err
	}
	return blob, nil
}

func (s *Storage) Write(ctx context.Context, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cart dir: %w", err)
		}
	}
	return os.WriteFile(s.path, blob, 0o600)
}
