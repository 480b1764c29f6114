package store

import (
	"math"
	"sort"

	"github.com/starboardhq/starboard/internal/dateutil"
	"github.com/starboardhq/starboard/internal/model"
)

// Summary is the monthly statistics report shown to a user once per calendar
// month.
type Summary struct {
	Total       int
	Completed   int
	RatePercent int
}

// ComputeSummary derives the report from a task list. The rate is 0 when the
// list is empty, otherwise completed/total rounded to whole percent.
func ComputeSummary(tasks []model.Task) Summary {
	out := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			out.Completed++
		}
	}
	if out.Total > 0 {
		out.RatePercent = int(math.Round(float64(out.Completed) / float64(out.Total) * 100))
	}
	return out
}

// PendingSummary holds last month's tasks while the presentation is on
// screen. It lives outside the persisted snapshot; the watermark advances
// only when the presentation is closed.
type PendingSummary struct {
	Tasks  []model.Task
	Year   int
	Month0 int
}

// EvaluateSummary decides whether the current user is owed a summary for the
// previous calendar month. Three outcomes:
//   - watermark already at the current month: nothing to do;
//   - previous month had tasks: the pending summary is returned with
//     present=true and the watermark is left alone;
//   - previous month was empty: the watermark advances immediately and the
//     updated snapshot is returned with present=false.
//
// Bucket keys that fail to parse as calendar days are skipped.
func (s *Store) EvaluateSummary(data model.AppData) (model.AppData, PendingSummary, bool) {
	user, ok := data.CurrentUser()
	if !ok {
		return data, PendingSummary{}, false
	}

	now := s.now()
	currentKey := dateutil.MonthKey(now)
	if user.LastSeenSummaryMonth == currentKey {
		return data, PendingSummary{}, false
	}

	year, month0 := dateutil.PrevMonth(now)
	tasks := tasksInMonth(user.TasksHistory, year, month0)
	if len(tasks) == 0 {
		return s.AcknowledgeSummary(data), PendingSummary{}, false
	}
	return data, PendingSummary{Tasks: tasks, Year: year, Month0: month0}, true
}

// AcknowledgeSummary advances the current user's watermark to the current
// month, guaranteeing at most one presentation per real-world month.
func (s *Store) AcknowledgeSummary(data model.AppData) model.AppData {
	currentKey := dateutil.MonthKey(s.now())
	return s.updateCurrentUser(data, func(u model.User) model.User {
		u.LastSeenSummaryMonth = currentKey
		return u
	})
}

func tasksInMonth(history model.TasksHistory, year int, month0 int) []model.Task {
	dates := make([]string, 0, len(history))
	for d := range history {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]model.Task, 0)
	for _, d := range dates {
		day, err := dateutil.ParseDay(d)
		if err != nil {
			continue
		}
		if day.Year() == year && int(day.Month())-1 == month0 {
			out = append(out, history[d]...)
		}
	}
	return out
}
