package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/starboardhq/starboard/internal/model"
)

func sampleAppData() model.AppData {
	return model.AppData{
		Users: []model.User{{
			ID:   "u-1",
			Name: "Mei",
			TasksHistory: model.TasksHistory{
				"2026-08-20": {{ID: 1, Text: "讀書", Completed: true, Icon: "📚", Encouragement: "你太棒了，像個超級英雄！"}},
			},
			LastSeenSummaryMonth: "2026-7",
		}},
		CurrentUserID: "u-1",
	}
}

func TestSnapshotFieldNames(t *testing.T) {
	payload, err := EncodeSnapshot(sampleAppData())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var blob map[string]json.RawMessage
	if err := json.Unmarshal(payload, &blob); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"users", "currentUserId"} {
		if _, ok := blob[key]; !ok {
			t.Fatalf("missing top-level field %q in %s", key, payload)
		}
	}

	var users []map[string]json.RawMessage
	if err := json.Unmarshal(blob["users"], &users); err != nil {
		t.Fatalf("unmarshal users: %v", err)
	}
	for _, key := range []string{"id", "name", "tasksHistory", "lastSeenSummaryMonth"} {
		if _, ok := users[0][key]; !ok {
			t.Fatalf("missing user field %q in %s", key, payload)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	want := sampleAppData()
	payload, err := EncodeSnapshot(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSnapshot(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.CurrentUserID != want.CurrentUserID || len(got.Users) != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	task := got.Users[0].TasksHistory.Bucket("2026-08-20")[0]
	if task.Text != "讀書" || !task.Completed || task.Icon != "📚" {
		t.Fatalf("task did not survive round trip: %+v", task)
	}
}

func TestDecodeSnapshotRejectsDanglingCurrentUser(t *testing.T) {
	raw := []byte(`{"users":[],"currentUserId":"u-404","tasksHistory":null}`)
	if _, err := DecodeSnapshot(raw); !errors.Is(err, model.ErrUnknownCurrentUser) {
		t.Fatalf("expected ErrUnknownCurrentUser, got: %v", err)
	}
}

func TestLoadSnapshotMissingYieldsEmpty(t *testing.T) {
	repo := newTestRepository(t)
	data, err := LoadSnapshot(context.Background(), repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(data.Users) != 0 || data.CurrentUserID != "" {
		t.Fatalf("expected empty app data, got %+v", data)
	}
}

func TestLoadSnapshotCorruptBlobResets(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Save(ctx, []byte(`{not json at all`)); err != nil {
		t.Fatalf("save corrupt blob: %v", err)
	}

	data, err := LoadSnapshot(ctx, repo)
	if err != nil {
		t.Fatalf("corrupt blob must not surface an error, got: %v", err)
	}
	if len(data.Users) != 0 {
		t.Fatalf("expected empty app data, got %+v", data)
	}

	// The corrupt row is gone: the next raw read misses.
	if _, err := repo.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected corrupt row to be cleared, got: %v", err)
	}
}

func TestSaveThenLoadSnapshot(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	want := sampleAppData()
	if err := SaveSnapshot(ctx, repo, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadSnapshot(ctx, repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CurrentUserID != "u-1" || got.Users[0].LastSeenSummaryMonth != "2026-7" {
		t.Fatalf("snapshot mismatch: %+v", got)
	}
}
