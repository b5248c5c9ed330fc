package app

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Storage when no cart blob has been written yet.
var ErrNotFound = errors.New("cart blob not found")

// Storage persists the cart as one serialized blob under a single
// backend-chosen key. The medium is shared by every surface of the same
// origin: two writers can race read-modify-write and the last one wins.
// That lost-update window is accepted, not synchronized away.
type Storage interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, blob []byte) error
}
