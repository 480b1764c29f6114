package update

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/starboardhq/starboard/internal/icon"
	"github.com/starboardhq/starboard/internal/model"
	"github.com/starboardhq/starboard/internal/storage"
	"github.com/starboardhq/starboard/internal/store"
)

type View string

const (
	ViewBoard    View = "Board"
	ViewCalendar View = "Calendar"
)

// InputMode says which text capture, if any, currently owns the keyboard.
type InputMode string

const (
	InputNone    InputMode = ""
	InputNewTask InputMode = "new-task"
	InputEdit    InputMode = "edit-task"
	InputNewUser InputMode = "new-user"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Board    string
	Calendar string
	NewTask  string
	NewUser  string
	NextUser string
	Palette  string
	Help     string
	Quit     string
}

type BoardState struct {
	Cursor          int
	Mode            InputMode
	EditingTaskID   int64
	ConfirmDeleteID int64
	Confirming      bool
}

type CalendarState struct {
	Year   int
	Month0 int
}

// SummaryState is the transient presentation of last month's report. It is
// never persisted; the watermark in the snapshot advances when it closes.
type SummaryState struct {
	Active  bool
	Tasks   []model.Task
	Year    int
	Month0  int
	Summary store.Summary
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Data         model.AppData
	SelectedDate string
	CurrentView  View
	Board        BoardState
	Calendar     CalendarState
	Summary      SummaryState
	Palette      CommandPaletteState
	HelpVisible  bool
	Status       StatusBar
	Keys         GlobalKeyMap
	Quitting     bool
	LastError    error
	PendingIcons int

	store    *store.Store
	repo     storage.SnapshotRepository
	resolver *icon.Resolver

	taskInput       textinput.Model
	userInput       textinput.Model
	commandInput    textinput.Model
	iconSpinner     spinner.Model
	summaryProgress progress.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AddTaskMsg struct {
	Text string
}

type AddUserMsg struct {
	Name string
}

type SwitchUserMsg struct {
	Name string
}

type GotoDateMsg struct {
	Date string
}

type IconResolvedMsg struct {
	Result icon.Result
}

func NewModel() Model {
	return NewModelWithConfig(model.EmptyAppData(), store.New(nil), nil, nil, DefaultRuntimeConfig())
}

func NewModelWithStore(st *store.Store) Model {
	return NewModelWithConfig(model.EmptyAppData(), st, nil, nil, DefaultRuntimeConfig())
}

func NewModelWithConfig(data model.AppData, st *store.Store, repo storage.SnapshotRepository, resolver *icon.Resolver, cfg RuntimeConfig) Model {
	if st == nil {
		st = store.New(nil)
	}
	if data.Users == nil {
		data.Users = []model.User{}
	}

	taskInput := textinput.New()
	taskInput.Placeholder = "任務內容"
	taskInput.CharLimit = 120

	userInput := textinput.New()
	userInput.Placeholder = "名字"
	userInput.CharLimit = 40

	commandInput := textinput.New()
	commandInput.Placeholder = "add | user | switch | goto | today"
	commandInput.CharLimit = 160

	m := Model{
		Data:            data,
		CurrentView:     ViewBoard,
		store:           st,
		repo:            repo,
		resolver:        resolver,
		taskInput:       taskInput,
		userInput:       userInput,
		commandInput:    commandInput,
		iconSpinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		summaryProgress: progress.New(progress.WithDefaultGradient()),
		Keys: GlobalKeyMap{
			Board:    "1",
			Calendar: "2",
			NewTask:  "a",
			NewUser:  "n",
			NextUser: "tab",
			Palette:  "/",
			Help:     "?",
			Quit:     "q",
		},
	}
	m.SelectedDate = st.Today()
	m.resetCalendarToSelected()
	m.evaluateSummary()
	return m
}
