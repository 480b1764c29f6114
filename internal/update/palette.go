package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starboardhq/starboard/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette = CommandPaletteState{}
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.Palette = CommandPaletteState{}
		m.commandInput.Blur()
		return m.runPaletteCommand(input)
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) runPaletteCommand(input string) (tea.Model, tea.Cmd) {
	parsed, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var out tea.Msg
	result, err := commands.Execute(parsed, commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			out = AddTaskMsg{Text: args.Text}
			return commands.Result{Message: "adding task"}, nil
		},
		User: func(args commands.UserArgs) (commands.Result, error) {
			out = AddUserMsg{Name: args.Name}
			return commands.Result{Message: "adding user"}, nil
		},
		Switch: func(args commands.SwitchArgs) (commands.Result, error) {
			out = SwitchUserMsg{Name: args.Name}
			return commands.Result{Message: "switching user"}, nil
		},
		Goto: func(args commands.GotoArgs) (commands.Result, error) {
			out = GotoDateMsg{Date: args.Date}
			return commands.Result{Message: "jumping to " + args.Date}, nil
		},
		Today: func() (commands.Result, error) {
			out = GotoDateMsg{Date: m.store.Today()}
			return commands.Result{Message: "jumping to today"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	m.Status = StatusBar{Text: result.Message, IsError: false}
	if out == nil {
		return m, nil
	}
	next := out
	return m, func() tea.Msg { return next }
}
