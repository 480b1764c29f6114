package model

import (
	"errors"
	"strings"
)

var (
	ErrEmptyTaskText = errors.New("model: task text is required")
	ErrEmptyUserName = errors.New("model: user name is required")
)

// Task is a single entry on a user's board for one calendar day. IDs are
// derived from creation time and are unique within their owning date bucket.
type Task struct {
	ID            int64  `json:"id"`
	Text          string `json:"text"`
	Completed     bool   `json:"completed"`
	Icon          string `json:"icon,omitempty"`
	Encouragement string `json:"encouragement,omitempty"`
}

func (t Task) Validate() error {
	if t.ID == 0 {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyTaskText
	}
	if t.Encouragement != "" && !t.Completed {
		return errors.New("model: encouragement requires a completed task")
	}
	return nil
}

// TasksHistory maps a calendar day ("YYYY-MM-DD") to the ordered task list
// for that day. An absent key reads the same as an empty list.
type TasksHistory map[string][]Task

func (h TasksHistory) Bucket(date string) []Task {
	if h == nil {
		return nil
	}
	return h[date]
}

// CompletedCount is the total number of completed tasks across all days.
func (h TasksHistory) CompletedCount() int {
	count := 0
	for _, tasks := range h {
		for _, t := range tasks {
			if t.Completed {
				count++
			}
		}
	}
	return count
}

// Clone copies the map so one bucket can be replaced without aliasing the
// previous snapshot. Bucket slices are shared until they are rewritten.
func (h TasksHistory) Clone() TasksHistory {
	out := make(TasksHistory, len(h)+1)
	for date, tasks := range h {
		out[date] = tasks
	}
	return out
}
