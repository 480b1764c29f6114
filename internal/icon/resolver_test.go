package icon

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubSuggester struct {
	icon string
}

func (s stubSuggester) Suggest(ctx context.Context, text string) string {
	return s.icon
}

func TestResolverDeliversResult(t *testing.T) {
	r := NewResolver(stubSuggester{icon: "📚"}, 4, time.Second)
	r.Start()
	defer r.Stop()

	req := Request{Date: "2026-09-01", TaskID: 1756700000000, Text: "讀書"}
	if err := r.Submit(req); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	select {
	case res := <-r.C():
		if res.Date != req.Date || res.TaskID != req.TaskID || res.Icon != "📚" {
			t.Fatalf("unexpected result: %+v", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a result")
	}
}

func TestResolverProcessesQueueInOrder(t *testing.T) {
	r := NewResolver(stubSuggester{icon: "⭐"}, 8, time.Second)
	r.Start()
	defer r.Stop()

	for i := int64(1); i <= 3; i++ {
		if err := r.Submit(Request{Date: "2026-09-01", TaskID: i, Text: "t"}); err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
	}

	for i := int64(1); i <= 3; i++ {
		select {
		case res := <-r.C():
			if res.TaskID != i {
				t.Fatalf("expected task %d, got %d", i, res.TaskID)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for result %d", i)
		}
	}
}

func TestResolverStopClosesChannel(t *testing.T) {
	r := NewResolver(stubSuggester{icon: "⭐"}, 1, time.Second)
	r.Start()
	r.Stop()

	if _, ok := <-r.C(); ok {
		t.Fatal("expected the result channel to be closed after Stop")
	}
}

func TestResolverSubmitAfterStop(t *testing.T) {
	r := NewResolver(stubSuggester{icon: "⭐"}, 1, time.Second)
	r.Start()
	r.Stop()

	err := r.Submit(Request{Date: "2026-09-01", TaskID: 1, Text: "t"})
	if !errors.Is(err, ErrResolverStopped) {
		t.Fatalf("expected ErrResolverStopped, got %v", err)
	}
}

func TestResolverStopIsIdempotent(t *testing.T) {
	r := NewResolver(stubSuggester{icon: "⭐"}, 1, time.Second)
	r.Start()
	r.Stop()
	r.Stop()
}
