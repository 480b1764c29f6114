package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starboardhq/starboard/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.resolver != nil {
		return waitForIconCmd(m.resolver.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.PendingIcons > 0 {
			var cmd tea.Cmd
			m.iconSpinner, cmd = m.iconSpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case IconResolvedMsg:
		return m.onIconResolved(typed)
	case SwitchViewMsg:
		if typed.View == ViewBoard || typed.View == ViewCalendar {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case AddTaskMsg:
		return m.addTask(typed.Text)
	case AddUserMsg:
		m.addUser(typed.Name)
		return m, nil
	case SwitchUserMsg:
		m.switchUserByName(typed.Name)
		return m, nil
	case GotoDateMsg:
		m.gotoDate(typed.Date)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	// The summary modal owns the keyboard until it is acknowledged.
	if m.Summary.Active {
		if key == "enter" || key == "esc" {
			m.closeSummary()
		}
		return m, nil
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.Board.Mode != InputNone {
		return m.handleInputKey(msg)
	}
	if m.Board.Confirming {
		m.handleConfirmKey(key)
		return m, nil
	}

	switch key {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Board:
		m.CurrentView = ViewBoard
		return m, nil
	case m.Keys.Calendar:
		m.CurrentView = ViewCalendar
		m.resetCalendarToSelected()
		return m, nil
	case m.Keys.Palette:
		m.Palette = CommandPaletteState{Active: true}
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.NewUser:
		m.Board.Mode = InputNewUser
		m.userInput.SetValue("")
		m.userInput.Focus()
		return m, nil
	case m.Keys.NewTask:
		m.beginNewTaskInput()
		return m, nil
	case m.Keys.NextUser:
		m.cycleUser()
		return m, nil
	}

	if m.CurrentView == ViewCalendar {
		m.handleCalendarKey(key)
		return m, nil
	}
	return m.handleBoardKey(key)
}

func (m Model) View() string {
	user, hasUser := m.Data.CurrentUser()

	headline := "請選擇或新增一位使用者"
	if hasUser {
		headline = fmt.Sprintf("%s的專屬任務板！", user.Name)
	}
	header := fmt.Sprintf("starboard 天天向上小樂園 | %s", headline)

	modal := ""
	if m.Summary.Active {
		modal = views.RenderSummaryModal(views.SummaryModalData{
			Year:         m.Summary.Year,
			Month0:       m.Summary.Month0,
			Total:        m.Summary.Summary.Total,
			Completed:    m.Summary.Summary.Completed,
			RatePercent:  m.Summary.Summary.RatePercent,
			ProgressView: m.summaryProgress.ViewAs(float64(m.Summary.Summary.RatePercent) / 100),
		})
	}

	boardPane := views.RenderUserBar(m.userBarData()) + "\n\n" + views.RenderTaskListPanel(m.taskListPanelData())
	calendarPane := views.RenderCalendarPanel(m.calendarPanelData())

	leftPane, rightPane := boardPane, calendarPane
	if m.CurrentView == ViewCalendar {
		leftPane, rightPane = calendarPane, boardPane
	}
	if m.Palette.Active {
		rightPane += "\n\ncommand:\n" + m.commandInput.View()
	}
	if m.HelpVisible {
		rightPane += "\n\n" + views.RenderHelpPanel(views.HelpPanelData{
			CurrentView: string(m.CurrentView),
			Bindings:    m.helpBindings(),
		})
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:     header,
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Modal:      modal,
		Footer: fmt.Sprintf(
			"keys: %s board | %s calendar | %s add | %s user | %s switch | %s cmd | %s help | %s quit",
			m.Keys.Board, m.Keys.Calendar, m.Keys.NewTask, m.Keys.NewUser, m.Keys.NextUser, m.Keys.Palette, m.Keys.Help, m.Keys.Quit,
		),
	})
}

func (m *Model) helpBindings() []string {
	if m.CurrentView == ViewCalendar {
		return []string{
			"[h/l] previous/next day",
			"[j/k] next/previous week",
			"[[ / ]] previous/next month",
			"[t] jump to today",
			"[enter] open day on the board",
		}
	}
	return []string{
		"[j/k] move cursor",
		"[enter/space] complete (today only)",
		"[e] edit task",
		"[d] delete task (asks first)",
		"[c] copy task",
		"[J/K] reorder",
	}
}
