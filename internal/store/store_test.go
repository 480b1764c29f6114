package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/starboardhq/starboard/internal/icon"
	"github.com/starboardhq/starboard/internal/model"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func newTestStore() *Store {
	return New(fixedClock{t: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)})
}

func withUser(s *Store, name string) model.AppData {
	return s.AddUser(model.EmptyAppData(), name)
}

func TestAddUserCreatesAndSelects(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	if len(data.Users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(data.Users))
	}
	user, ok := data.CurrentUser()
	if !ok || user.Name != "Mei" {
		t.Fatalf("expected current user Mei, got %+v (ok=%v)", user, ok)
	}
	if user.ID == "" {
		t.Fatal("expected a fresh user id")
	}
	if len(user.TasksHistory) != 0 {
		t.Fatalf("expected empty history, got %v", user.TasksHistory)
	}
}

func TestAddUserRejectsEmptyName(t *testing.T) {
	s := newTestStore()
	data := s.AddUser(model.EmptyAppData(), "   ")
	if len(data.Users) != 0 || data.CurrentUserID != "" {
		t.Fatalf("expected unchanged snapshot, got %+v", data)
	}
}

func TestSwitchUserUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	next := s.SwitchUser(data, "nope")
	if !reflect.DeepEqual(next, data) {
		t.Fatal("expected snapshot unchanged for unknown user id")
	}
}

func TestAddTaskAppendsPendingWithPlaceholder(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, s.Today(), "讀書")

	user, _ := data.CurrentUser()
	bucket := user.TasksHistory.Bucket(s.Today())
	if len(bucket) != 1 {
		t.Fatalf("expected 1 task, got %d", len(bucket))
	}
	task := bucket[0]
	if task.Completed {
		t.Fatal("new task must start pending")
	}
	if task.Icon != icon.PlaceholderIcon {
		t.Fatalf("expected placeholder icon, got %q", task.Icon)
	}
	if task.Text != "讀書" {
		t.Fatalf("unexpected text: %q", task.Text)
	}
}

func TestAddTaskRejectsPastDate(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	next := s.AddTask(data, "2026-08-31", "too late")

	user, _ := next.CurrentUser()
	if len(user.TasksHistory.Bucket("2026-08-31")) != 0 {
		t.Fatal("past-date bucket must not grow")
	}
}

func TestAddTaskAllowsFutureDate(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, "2026-09-15", "預習")

	user, _ := data.CurrentUser()
	if len(user.TasksHistory.Bucket("2026-09-15")) != 1 {
		t.Fatal("expected task on future date")
	}
}

func TestAddTaskWithoutCurrentUserIsNoOp(t *testing.T) {
	s := newTestStore()
	data := model.EmptyAppData()
	next := s.AddTask(data, s.Today(), "讀書")
	if !reflect.DeepEqual(next, data) {
		t.Fatal("expected snapshot unchanged with no current user")
	}
}

func TestAddTaskBumpsCollidingIDs(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, s.Today(), "one")
	data = s.AddTask(data, s.Today(), "two")

	user, _ := data.CurrentUser()
	bucket := user.TasksHistory.Bucket(s.Today())
	if len(bucket) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(bucket))
	}
	if bucket[0].ID == bucket[1].ID {
		t.Fatalf("ids must be unique within a bucket, both %d", bucket[0].ID)
	}
}

func TestCompleteTaskStampsEncouragement(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, s.Today(), "Read")
	user, _ := data.CurrentUser()
	id := user.TasksHistory.Bucket(s.Today())[0].ID

	data = s.CompleteTask(data, id)
	user, _ = data.CurrentUser()
	task := user.TasksHistory.Bucket(s.Today())[0]
	if !task.Completed {
		t.Fatal("expected task completed")
	}
	found := false
	for _, msg := range EncouragementMessages {
		if task.Encouragement == msg {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("encouragement %q not from the fixed message set", task.Encouragement)
	}
}

func TestCompleteTaskOnlyTouchesTodayBucket(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, "2026-09-15", "future")
	user, _ := data.CurrentUser()
	id := user.TasksHistory.Bucket("2026-09-15")[0].ID

	data = s.CompleteTask(data, id)
	user, _ = data.CurrentUser()
	if user.TasksHistory.Bucket("2026-09-15")[0].Completed {
		t.Fatal("completion must be scoped to today's bucket")
	}
}

func TestEditTaskResetsIconKeepsCompletion(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, s.Today(), "Read")
	user, _ := data.CurrentUser()
	id := user.TasksHistory.Bucket(s.Today())[0].ID
	data = s.CompleteTask(data, id)
	data = s.PatchTaskIcon(data, s.Today(), id, "📚")

	data = s.EditTask(data, s.Today(), id, "Read a chapter")
	user, _ = data.CurrentUser()
	task := user.TasksHistory.Bucket(s.Today())[0]
	if task.Text != "Read a chapter" {
		t.Fatalf("unexpected text: %q", task.Text)
	}
	if task.Icon != icon.PlaceholderIcon {
		t.Fatalf("edit must reset icon to placeholder, got %q", task.Icon)
	}
	if !task.Completed || task.Encouragement == "" {
		t.Fatal("edit must not touch completion state")
	}
}

func TestEditTaskRejectsEmptyText(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, s.Today(), "Read")
	user, _ := data.CurrentUser()
	id := user.TasksHistory.Bucket(s.Today())[0].ID

	next := s.EditTask(data, s.Today(), id, "  ")
	if !reflect.DeepEqual(next, data) {
		t.Fatal("expected snapshot unchanged for empty text")
	}
}

func TestDeleteTaskIsIdempotent(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, s.Today(), "Read")

	next := s.DeleteTask(data, s.Today(), 404)
	if !reflect.DeepEqual(next, data) {
		t.Fatal("deleting an absent id must return a structurally equal snapshot")
	}

	user, _ := data.CurrentUser()
	id := user.TasksHistory.Bucket(s.Today())[0].ID
	next = s.DeleteTask(data, s.Today(), id)
	user, _ = next.CurrentUser()
	if len(user.TasksHistory.Bucket(s.Today())) != 0 {
		t.Fatal("expected bucket emptied")
	}
}

func TestCopyTaskResetsCompletionAndEncouragement(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, s.Today(), "Read")
	user, _ := data.CurrentUser()
	id := user.TasksHistory.Bucket(s.Today())[0].ID
	data = s.CompleteTask(data, id)
	data = s.PatchTaskIcon(data, s.Today(), id, "📚")

	data = s.CopyTask(data, s.Today(), id)
	user, _ = data.CurrentUser()
	bucket := user.TasksHistory.Bucket(s.Today())
	if len(bucket) != 2 {
		t.Fatalf("expected 2 tasks after copy, got %d", len(bucket))
	}
	source, copied := bucket[0], bucket[1]
	if copied.ID == source.ID {
		t.Fatal("copy must get a fresh id")
	}
	if copied.Completed || copied.Encouragement != "" {
		t.Fatalf("copy must reset completion, got %+v", copied)
	}
	if copied.Text != source.Text || copied.Icon != source.Icon {
		t.Fatalf("copy must keep text and icon, got %+v", copied)
	}
}

func TestCopyTaskMissingSourceIsNoOp(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, s.Today(), "Read")
	next := s.CopyTask(data, s.Today(), 404)
	if !reflect.DeepEqual(next, data) {
		t.Fatal("expected snapshot unchanged for missing source id")
	}
}

func TestReorderTasksIsAPermutation(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	for _, text := range []string{"a", "b", "c", "d"} {
		data = s.AddTask(data, s.Today(), text)
	}

	data = s.ReorderTasks(data, s.Today(), 0, 2)
	user, _ := data.CurrentUser()
	bucket := user.TasksHistory.Bucket(s.Today())
	if len(bucket) != 4 {
		t.Fatalf("reorder changed length: %d", len(bucket))
	}
	got := []string{bucket[0].Text, bucket[1].Text, bucket[2].Text, bucket[3].Text}
	want := []string{"b", "c", "a", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}

func TestReorderTasksClampsIndices(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	for _, text := range []string{"a", "b"} {
		data = s.AddTask(data, s.Today(), text)
	}

	data = s.ReorderTasks(data, s.Today(), -5, 99)
	user, _ := data.CurrentUser()
	bucket := user.TasksHistory.Bucket(s.Today())
	got := []string{bucket[0].Text, bucket[1].Text}
	if !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("expected clamped move to [b a], got %v", got)
	}
}

func TestPatchTaskIconMissingTargetIsDiscarded(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	next := s.PatchTaskIcon(data, "2026-09-01", 12345, "📚")
	if !reflect.DeepEqual(next, data) {
		t.Fatal("patch for a missing task must be silently discarded")
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	s := newTestStore()
	data := withUser(s, "Mei")
	data = s.AddTask(data, s.Today(), "Read")
	snapshot := s.AddTask(data, s.Today(), "Write")

	user, _ := data.CurrentUser()
	if len(user.TasksHistory.Bucket(s.Today())) != 1 {
		t.Fatal("input snapshot was mutated by AddTask")
	}
	user, _ = snapshot.CurrentUser()
	if len(user.TasksHistory.Bucket(s.Today())) != 2 {
		t.Fatal("output snapshot missing the new task")
	}
}

func TestEndToEndScenario(t *testing.T) {
	s := newTestStore()

	data := s.AddUser(model.EmptyAppData(), "Mei")
	user, ok := data.CurrentUser()
	if !ok || user.Name != "Mei" || len(user.TasksHistory) != 0 {
		t.Fatalf("unexpected user after AddUser: %+v", user)
	}

	data = s.AddTask(data, s.Today(), "Read")
	user, _ = data.CurrentUser()
	bucket := user.TasksHistory.Bucket(s.Today())
	if len(bucket) != 1 || bucket[0].Completed || bucket[0].Icon != icon.PlaceholderIcon {
		t.Fatalf("unexpected bucket after AddTask: %+v", bucket)
	}

	data = s.CompleteTask(data, bucket[0].ID)
	user, _ = data.CurrentUser()
	task := user.TasksHistory.Bucket(s.Today())[0]
	if !task.Completed || task.Encouragement == "" {
		t.Fatalf("unexpected task after CompleteTask: %+v", task)
	}
}
