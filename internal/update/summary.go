package update

import (
	"context"
	"fmt"
	"time"

	"github.com/starboardhq/starboard/internal/model"
	"github.com/starboardhq/starboard/internal/storage"
	"github.com/starboardhq/starboard/internal/store"
)

// commit is the single path every accepted transition flows through,
// regardless of whether it came from a key press, the palette, or an async
// icon result: replace the snapshot, mirror it to storage, re-check the
// summary watermark.
func (m *Model) commit(next model.AppData) {
	m.Data = next
	m.persistSnapshot()
	m.evaluateSummary()
}

// persistSnapshot is best-effort: a write failure keeps the in-memory
// snapshot authoritative and only surfaces on the status bar.
func (m *Model) persistSnapshot() {
	if m.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := storage.SaveSnapshot(ctx, m.repo, m.Data); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
	}
}

func (m *Model) evaluateSummary() {
	if m.Summary.Active {
		return
	}
	next, pending, present := m.store.EvaluateSummary(m.Data)

	// An empty previous month advances the watermark without a
	// presentation; that change has to be persisted too.
	before, _ := m.Data.CurrentUser()
	after, _ := next.CurrentUser()
	if before.LastSeenSummaryMonth != after.LastSeenSummaryMonth {
		m.Data = next
		m.persistSnapshot()
	}

	if present {
		m.Summary = SummaryState{
			Active:  true,
			Tasks:   pending.Tasks,
			Year:    pending.Year,
			Month0:  pending.Month0,
			Summary: store.ComputeSummary(pending.Tasks),
		}
	}
}

func (m *Model) closeSummary() {
	m.Summary = SummaryState{}
	m.commit(m.store.AcknowledgeSummary(m.Data))
	m.Status = StatusBar{Text: "summary acknowledged", IsError: false}
}
