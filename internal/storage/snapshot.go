package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/starboardhq/starboard/internal/model"
)

// EncodeSnapshot serializes the snapshot to the persisted JSON shape.
func EncodeSnapshot(data model.AppData) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return payload, nil
}

// DecodeSnapshot parses a persisted blob. A structurally invalid snapshot
// (e.g. a current user id referencing no user) is an error, same as
// unparseable JSON.
func DecodeSnapshot(raw []byte) (model.AppData, error) {
	var data model.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return model.AppData{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := data.Validate(); err != nil {
		return model.AppData{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if data.Users == nil {
		data.Users = []model.User{}
	}
	return data, nil
}

// LoadSnapshot reads the persisted snapshot. A missing row yields the empty
// AppData. A corrupt blob is treated as absence: the stored row is deleted,
// the empty AppData is returned, and no error surfaces. Only a read failure
// of the medium itself is reported.
func LoadSnapshot(ctx context.Context, repo SnapshotRepository) (model.AppData, error) {
	raw, err := repo.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		return model.EmptyAppData(), nil
	}
	if err != nil {
		return model.EmptyAppData(), err
	}
	data, err := DecodeSnapshot(raw)
	if err != nil {
		_ = repo.Clear(ctx)
		return model.EmptyAppData(), nil
	}
	return data, nil
}

// SaveSnapshot serializes and stores the snapshot.
func SaveSnapshot(ctx context.Context, repo SnapshotRepository, data model.AppData) error {
	payload, err := EncodeSnapshot(data)
	if err != nil {
		return err
	}
	return repo.Save(ctx, payload)
}
