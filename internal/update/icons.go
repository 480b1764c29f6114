package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starboardhq/starboard/internal/icon"
	"github.com/starboardhq/starboard/internal/model"
)

// requestIcon queues an async suggestion for the task and starts the spinner.
// Submission failures are ignored: the task simply keeps its placeholder.
func (m *Model) requestIcon(date string, task model.Task) tea.Cmd {
	if m.resolver == nil {
		return nil
	}
	if err := m.resolver.Submit(icon.Request{Date: date, TaskID: task.ID, Text: task.Text}); err != nil {
		return nil
	}
	m.PendingIcons++
	return m.iconSpinner.Tick
}

// onIconResolved is the rejoin point of the fire-and-forget icon round trip:
// the result lands as an ordinary transition and is dropped by the store if
// its target is gone.
func (m Model) onIconResolved(msg IconResolvedMsg) (tea.Model, tea.Cmd) {
	if m.PendingIcons > 0 {
		m.PendingIcons--
	}
	m.commit(m.store.PatchTaskIcon(m.Data, msg.Result.Date, msg.Result.TaskID, msg.Result.Icon))
	if m.resolver != nil {
		return m, waitForIconCmd(m.resolver.C())
	}
	return m, nil
}

func waitForIconCmd(ch <-chan icon.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return nil
		}
		return IconResolvedMsg{Result: res}
	}
}
