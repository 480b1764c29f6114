// Package store owns the task-history state machine. Every transition is a
// total function from the current AppData snapshot to a new one: invalid
// arguments return the input unchanged, and no snapshot is ever mutated in
// place. All operations except AddUser and SwitchUser target the current
// user and are no-ops when none is selected.
package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/starboardhq/starboard/internal/dateutil"
	"github.com/starboardhq/starboard/internal/icon"
	"github.com/starboardhq/starboard/internal/model"
)

type Store struct {
	clock Clock
}

func New(clock Clock) *Store {
	if clock == nil {
		clock = SystemClock()
	}
	return &Store{clock: clock}
}

// Today is the current calendar day as a "YYYY-MM-DD" string.
func (s *Store) Today() string {
	return dateutil.DayString(s.clock.Now())
}

func (s *Store) now() time.Time {
	return s.clock.Now()
}

// AddUser appends a user with an empty history and makes it current. An empty
// name is rejected.
func (s *Store) AddUser(data model.AppData, name string) model.AppData {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return data
	}
	user := model.User{
		ID:           uuid.NewString(),
		Name:         trimmed,
		TasksHistory: model.TasksHistory{},
	}
	next := data
	next.Users = append(append([]model.User(nil), data.Users...), user)
	next.CurrentUserID = user.ID
	return next
}

// SwitchUser makes an existing user current. Unknown ids are rejected.
func (s *Store) SwitchUser(data model.AppData, userID string) model.AppData {
	if _, ok := data.UserByID(userID); !ok {
		return data
	}
	next := data
	next.CurrentUserID = userID
	return next
}

// AddTask appends a pending task with the placeholder icon to the given day's
// bucket. Empty text and days strictly before today are rejected. Icon
// resolution happens outside the store and rejoins via PatchTaskIcon.
func (s *Store) AddTask(data model.AppData, date string, text string) model.AppData {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return data
	}
	if date < s.Today() {
		return data
	}
	return s.updateCurrentUser(data, func(u model.User) model.User {
		bucket := u.TasksHistory.Bucket(date)
		task := model.Task{
			ID:   s.freshTaskID(bucket),
			Text: trimmed,
			Icon: icon.PlaceholderIcon,
		}
		next := append(append([]model.Task(nil), bucket...), task)
		return replaceBucket(u, date, next)
	})
}

// CompleteTask marks a task in today's bucket completed and stamps an
// encouragement message. The lookup is hardwired to today: tasks are
// completed same-day only.
func (s *Store) CompleteTask(data model.AppData, taskID int64) model.AppData {
	today := s.Today()
	message := randomEncouragement()
	return s.updateCurrentUser(data, func(u model.User) model.User {
		bucket := u.TasksHistory.Bucket(today)
		changed := false
		next := make([]model.Task, len(bucket))
		for i, t := range bucket {
			if t.ID == taskID {
				t.Completed = true
				t.Encouragement = message
				changed = true
			}
			next[i] = t
		}
		if !changed {
			return u
		}
		return replaceBucket(u, today, next)
	})
}

// EditTask replaces a task's text and resets its icon to the placeholder so a
// fresh suggestion can be requested. Completion state and encouragement are
// untouched.
func (s *Store) EditTask(data model.AppData, date string, taskID int64, newText string) model.AppData {
	trimmed := strings.TrimSpace(newText)
	if trimmed == "" {
		return data
	}
	return s.updateCurrentUser(data, func(u model.User) model.User {
		bucket := u.TasksHistory.Bucket(date)
		changed := false
		next := make([]model.Task, len(bucket))
		for i, t := range bucket {
			if t.ID == taskID {
				t.Text = trimmed
				t.Icon = icon.PlaceholderIcon
				changed = true
			}
			next[i] = t
		}
		if !changed {
			return u
		}
		return replaceBucket(u, date, next)
	})
}

// DeleteTask removes a task from the given day's bucket. Deleting an id that
// is not present is a no-op.
func (s *Store) DeleteTask(data model.AppData, date string, taskID int64) model.AppData {
	return s.updateCurrentUser(data, func(u model.User) model.User {
		bucket := u.TasksHistory.Bucket(date)
		next := make([]model.Task, 0, len(bucket))
		for _, t := range bucket {
			if t.ID != taskID {
				next = append(next, t)
			}
		}
		if len(next) == len(bucket) {
			return u
		}
		return replaceBucket(u, date, next)
	})
}

// CopyTask duplicates a task's text and icon under a fresh id, appended at
// the end of the same day. The copy always starts pending, with no
// encouragement regardless of the source.
func (s *Store) CopyTask(data model.AppData, date string, taskID int64) model.AppData {
	return s.updateCurrentUser(data, func(u model.User) model.User {
		bucket := u.TasksHistory.Bucket(date)
		source, found := model.Task{}, false
		for _, t := range bucket {
			if t.ID == taskID {
				source, found = t, true
				break
			}
		}
		if !found {
			return u
		}
		copied := model.Task{
			ID:   s.freshTaskID(bucket),
			Text: source.Text,
			Icon: source.Icon,
		}
		next := append(append([]model.Task(nil), bucket...), copied)
		return replaceBucket(u, date, next)
	})
}

// ReorderTasks moves the task at fromIndex to toIndex, shifting the others.
// Out-of-range indices are clamped.
func (s *Store) ReorderTasks(data model.AppData, date string, fromIndex int, toIndex int) model.AppData {
	return s.updateCurrentUser(data, func(u model.User) model.User {
		bucket := u.TasksHistory.Bucket(date)
		if len(bucket) == 0 {
			return u
		}
		from := clampIndex(fromIndex, len(bucket))
		to := clampIndex(toIndex, len(bucket))
		if from == to {
			return u
		}
		next := make([]model.Task, 0, len(bucket))
		next = append(next, bucket[:from]...)
		next = append(next, bucket[from+1:]...)
		moved := bucket[from]
		next = append(next[:to], append([]model.Task{moved}, next[to:]...)...)
		return replaceBucket(u, date, next)
	})
}

// PatchTaskIcon is the rejoin path for asynchronous icon resolution. If the
// bucket or the task id no longer exists the patch is silently discarded.
func (s *Store) PatchTaskIcon(data model.AppData, date string, taskID int64, resolved string) model.AppData {
	return s.updateCurrentUser(data, func(u model.User) model.User {
		bucket := u.TasksHistory.Bucket(date)
		changed := false
		next := make([]model.Task, len(bucket))
		for i, t := range bucket {
			if t.ID == taskID {
				t.Icon = resolved
				changed = true
			}
			next[i] = t
		}
		if !changed {
			return u
		}
		return replaceBucket(u, date, next)
	})
}

// updateCurrentUser rebuilds the snapshot with the current user replaced by
// fn's result. With no current user the snapshot passes through unchanged.
func (s *Store) updateCurrentUser(data model.AppData, fn func(model.User) model.User) model.AppData {
	if data.CurrentUserID == "" {
		return data
	}
	next := data
	next.Users = make([]model.User, len(data.Users))
	copy(next.Users, data.Users)
	for i, u := range next.Users {
		if u.ID == data.CurrentUserID {
			next.Users[i] = fn(u)
		}
	}
	return next
}

// freshTaskID derives an id from the creation time, bumped until it is unique
// within the owning bucket.
func (s *Store) freshTaskID(bucket []model.Task) int64 {
	id := s.now().UnixMilli()
	for bucketContains(bucket, id) {
		id++
	}
	return id
}

func bucketContains(bucket []model.Task, id int64) bool {
	for _, t := range bucket {
		if t.ID == id {
			return true
		}
	}
	return false
}

func replaceBucket(u model.User, date string, tasks []model.Task) model.User {
	history := u.TasksHistory.Clone()
	history[date] = tasks
	u.TasksHistory = history
	return u
}

func clampIndex(i int, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
