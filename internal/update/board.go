package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starboardhq/starboard/internal/model"
)

func (m Model) handleBoardKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.Board.Cursor > 0 {
			m.Board.Cursor--
		}
	case "down", "j":
		if m.Board.Cursor < len(m.currentBucket())-1 {
			m.Board.Cursor++
		}
	case "enter", " ":
		m.completeTaskAtCursor()
	case "e":
		m.beginEditInput()
	case "d":
		m.beginDeleteConfirm()
	case "c":
		m.copyTaskAtCursor()
	case "J":
		m.reorderAtCursor(1)
	case "K":
		m.reorderAtCursor(-1)
	}
	return m, nil
}

// handleInputKey routes keys while a text capture owns the keyboard: the new
// task, edit task, or new user input.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Board.Mode = InputNone
		m.taskInput.Blur()
		m.userInput.Blur()
		m.Status = StatusBar{Text: "input cancelled", IsError: false}
		return m, nil
	case "enter":
		mode := m.Board.Mode
		m.Board.Mode = InputNone
		m.taskInput.Blur()
		m.userInput.Blur()
		switch mode {
		case InputNewTask:
			return m.addTask(m.taskInput.Value())
		case InputEdit:
			return m.editTask(m.Board.EditingTaskID, m.taskInput.Value())
		case InputNewUser:
			m.addUser(m.userInput.Value())
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.Board.Mode == InputNewUser {
		m.userInput, cmd = m.userInput.Update(msg)
	} else {
		m.taskInput, cmd = m.taskInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleConfirmKey(key string) {
	switch key {
	case "y", "enter":
		id := m.Board.ConfirmDeleteID
		m.Board.Confirming = false
		m.Board.ConfirmDeleteID = 0
		m.commit(m.store.DeleteTask(m.Data, m.SelectedDate, id))
		m.clampBoardCursor()
		m.Status = StatusBar{Text: "task deleted", IsError: false}
	case "n", "esc":
		m.Board.Confirming = false
		m.Board.ConfirmDeleteID = 0
		m.Status = StatusBar{Text: "delete cancelled", IsError: false}
	}
}

func (m *Model) beginNewTaskInput() {
	if _, ok := m.Data.CurrentUser(); !ok {
		m.Status = StatusBar{Text: "add a user first", IsError: true}
		return
	}
	if m.SelectedDate < m.store.Today() {
		m.Status = StatusBar{Text: "cannot add tasks to a past day", IsError: true}
		return
	}
	m.CurrentView = ViewBoard
	m.Board.Mode = InputNewTask
	m.taskInput.SetValue("")
	m.taskInput.Focus()
}

func (m *Model) beginEditInput() {
	task, ok := m.taskAtCursor()
	if !ok || !m.selectedDateEditable() {
		return
	}
	m.Board.Mode = InputEdit
	m.Board.EditingTaskID = task.ID
	m.taskInput.SetValue(task.Text)
	m.taskInput.Focus()
}

func (m *Model) beginDeleteConfirm() {
	task, ok := m.taskAtCursor()
	if !ok || !m.selectedDateEditable() {
		return
	}
	m.Board.Confirming = true
	m.Board.ConfirmDeleteID = task.ID
}

func (m Model) addTask(text string) (tea.Model, tea.Cmd) {
	before := len(m.currentBucket())
	m.commit(m.store.AddTask(m.Data, m.SelectedDate, text))
	bucket := m.currentBucket()
	if len(bucket) == before {
		m.Status = StatusBar{Text: "task not added", IsError: true}
		return m, nil
	}
	created := bucket[len(bucket)-1]
	m.Board.Cursor = len(bucket) - 1
	m.Status = StatusBar{Text: "task added", IsError: false}
	return m, m.requestIcon(m.SelectedDate, created)
}

func (m Model) editTask(taskID int64, text string) (tea.Model, tea.Cmd) {
	m.commit(m.store.EditTask(m.Data, m.SelectedDate, taskID, text))
	for _, t := range m.currentBucket() {
		if t.ID == taskID && t.Text == text {
			m.Status = StatusBar{Text: "task updated", IsError: false}
			return m, m.requestIcon(m.SelectedDate, t)
		}
	}
	return m, nil
}

func (m *Model) completeTaskAtCursor() {
	task, ok := m.taskAtCursor()
	if !ok {
		return
	}
	if m.SelectedDate != m.store.Today() {
		m.Status = StatusBar{Text: "tasks can only be completed on their day", IsError: true}
		return
	}
	if task.Completed {
		return
	}
	m.commit(m.store.CompleteTask(m.Data, task.ID))
	m.Status = StatusBar{Text: fmt.Sprintf("task completed: %s", task.Text), IsError: false}
}

func (m *Model) copyTaskAtCursor() {
	task, ok := m.taskAtCursor()
	if !ok || !m.selectedDateEditable() {
		return
	}
	m.commit(m.store.CopyTask(m.Data, m.SelectedDate, task.ID))
	m.Board.Cursor = len(m.currentBucket()) - 1
	m.Status = StatusBar{Text: "task copied", IsError: false}
}

func (m *Model) reorderAtCursor(delta int) {
	if !m.selectedDateEditable() {
		return
	}
	bucket := m.currentBucket()
	from := m.Board.Cursor
	to := from + delta
	if len(bucket) == 0 || to < 0 || to >= len(bucket) {
		return
	}
	m.commit(m.store.ReorderTasks(m.Data, m.SelectedDate, from, to))
	m.Board.Cursor = to
}

func (m Model) currentBucket() []model.Task {
	user, ok := m.Data.CurrentUser()
	if !ok {
		return nil
	}
	return user.TasksHistory.Bucket(m.SelectedDate)
}

func (m Model) taskAtCursor() (model.Task, bool) {
	bucket := m.currentBucket()
	if len(bucket) == 0 || m.Board.Cursor < 0 || m.Board.Cursor >= len(bucket) {
		return model.Task{}, false
	}
	return bucket[m.Board.Cursor], true
}

func (m Model) selectedDateEditable() bool {
	return m.SelectedDate >= m.store.Today()
}

func (m *Model) clampBoardCursor() {
	if last := len(m.currentBucket()) - 1; m.Board.Cursor > last {
		m.Board.Cursor = last
	}
	if m.Board.Cursor < 0 {
		m.Board.Cursor = 0
	}
}
