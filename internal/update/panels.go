package update

import (
	"fmt"

	"github.com/starboardhq/starboard/internal/dateutil"
	"github.com/starboardhq/starboard/internal/views"
)

func (m Model) userBarData() views.UserBarData {
	data := views.UserBarData{CurrentIndex: -1}
	for i, u := range m.Data.Users {
		data.Names = append(data.Names, u.Name)
		if u.ID == m.Data.CurrentUserID {
			data.CurrentIndex = i
			data.Stars = u.TasksHistory.CompletedCount()
		}
	}
	return data
}

func (m Model) taskListPanelData() views.TaskListPanelData {
	isToday := m.SelectedDate == m.store.Today()
	heading := "今日任務"
	if !isToday {
		heading = fmt.Sprintf("%s 的任務記錄", m.SelectedDate)
	}

	data := views.TaskListPanelData{
		Heading:  heading,
		Cursor:   m.Board.Cursor,
		IsToday:  isToday,
		Editable: m.selectedDateEditable(),
	}
	for _, t := range m.currentBucket() {
		data.Items = append(data.Items, views.TaskItemData{
			Icon:          t.Icon,
			Text:          t.Text,
			Completed:     t.Completed,
			Encouragement: t.Encouragement,
		})
	}

	switch m.Board.Mode {
	case InputNewTask:
		data.InputLabel = "新任務:"
		data.InputView = m.taskInput.View()
	case InputEdit:
		data.InputLabel = "編輯任務:"
		data.InputView = m.taskInput.View()
	case InputNewUser:
		data.InputLabel = "新增使用者:"
		data.InputView = m.userInput.View()
	}
	if m.Board.Confirming {
		data.ConfirmText = "確定要刪除這個任務嗎？ [y]確定 [n]取消"
	}
	if m.PendingIcons > 0 {
		data.Resolving = m.iconSpinner.View() + " choosing icons..."
	}
	return data
}

func (m Model) calendarPanelData() views.CalendarPanelData {
	user, _ := m.Data.CurrentUser()
	today := m.store.Today()
	year, month0 := m.Calendar.Year, m.Calendar.Month0

	data := views.CalendarPanelData{
		Year:    year,
		Month0:  month0,
		Leading: dateutil.FirstWeekday(year, month0),
	}
	for day := 1; day <= dateutil.DaysInMonth(year, month0); day++ {
		date := fmt.Sprintf("%d-%02d-%02d", year, month0+1, day)
		bucket := user.TasksHistory.Bucket(date)
		cell := views.CalendarCellData{
			Day:      day,
			Selected: date == m.SelectedDate,
			Today:    date == today,
			HasTasks: len(bucket) > 0,
		}
		if cell.HasTasks {
			cell.AllDone = true
			for _, t := range bucket {
				if !t.Completed {
					cell.AllDone = false
					break
				}
			}
		}
		data.Cells = append(data.Cells, cell)
	}
	return data
}
