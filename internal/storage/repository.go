package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// SnapshotRepository is the key-value persistence medium: one serialized
// application snapshot stored under a single key.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
	Clear(ctx context.Context) error
}
