package views

import (
	"fmt"
	"strings"

	"github.com/starboardhq/starboard/internal/dateutil"
)

type UserBarData struct {
	Names        []string
	CurrentIndex int
	Stars        int
}

type TaskItemData struct {
	Icon          string
	Text          string
	Completed     bool
	Encouragement string
}

type TaskListPanelData struct {
	Heading     string
	Items       []TaskItemData
	Cursor      int
	IsToday     bool
	Editable    bool
	InputView   string
	InputLabel  string
	ConfirmText string
	Resolving   string
}

type CalendarCellData struct {
	Day      int
	Selected bool
	Today    bool
	HasTasks bool
	AllDone  bool
}

type CalendarPanelData struct {
	Year    int
	Month0  int
	Leading int
	Cells   []CalendarCellData
}

type SummaryModalData struct {
	Year         int
	Month0       int
	Total        int
	Completed    int
	RatePercent  int
	ProgressView string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
}

func RenderUserBar(data UserBarData) string {
	if len(data.Names) == 0 {
		return "users: (none yet — press [n] to add one)"
	}
	parts := make([]string, 0, len(data.Names))
	for i, name := range data.Names {
		if i == data.CurrentIndex {
			parts = append(parts, "["+name+"]")
			continue
		}
		parts = append(parts, name)
	}
	return fmt.Sprintf("users: %s | ⭐ 總計: %d", strings.Join(parts, " "), data.Stars)
}

func RenderTaskListPanel(data TaskListPanelData) string {
	var b strings.Builder
	b.WriteString(data.Heading + "\n")
	if data.IsToday {
		b.WriteString("actions: [j/k]move [enter]done [e]edit [d]delete [c]copy [J/K]reorder\n")
	} else if data.Editable {
		b.WriteString("actions: [j/k]move [e]edit [d]delete [c]copy [J/K]reorder\n")
	} else {
		b.WriteString("(history — read only)\n")
	}

	if len(data.Items) == 0 {
		b.WriteString("\n(no tasks)\n")
	}
	for i, item := range data.Items {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		mark := "[ ]"
		if item.Completed {
			mark = "[⭐]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, mark, item.Icon, item.Text))
		if item.Encouragement != "" {
			b.WriteString(fmt.Sprintf("      %s\n", item.Encouragement))
		}
	}

	if data.InputView != "" {
		b.WriteString(fmt.Sprintf("\n%s\n%s\n", data.InputLabel, data.InputView))
	}
	if data.ConfirmText != "" {
		b.WriteString("\n" + data.ConfirmText + "\n")
	}
	if data.Resolving != "" {
		b.WriteString("\n" + data.Resolving + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d年 %s\n", data.Year, dateutil.MonthName(data.Month0)))
	b.WriteString("actions: [h/l]day [j/k]week [[/]]month [t]today [enter]open\n")

	for w := 0; w < 7; w++ {
		b.WriteString(fmt.Sprintf(" %s  ", dateutil.WeekdayName(w)))
	}
	b.WriteString("\n")

	col := 0
	for i := 0; i < data.Leading; i++ {
		b.WriteString("     ")
		col++
	}
	for _, cell := range data.Cells {
		b.WriteString(renderDayCell(cell))
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\nmarks: *selected  +today  .tasks  ✓all done")
	return strings.TrimSpace(b.String())
}

func renderDayCell(cell CalendarCellData) string {
	mark := " "
	switch {
	case cell.Selected:
		mark = "*"
	case cell.Today:
		mark = "+"
	}
	dot := " "
	if cell.HasTasks {
		dot = "."
		if cell.AllDone {
			dot = "✓"
		}
	}
	return fmt.Sprintf("%2d%s%s ", cell.Day, mark, dot)
}

// RenderSummaryModal builds the once-a-month report. The body goes through
// the markdown renderer so headings and emphasis pick up terminal styling.
func RenderSummaryModal(data SummaryModalData) string {
	md := fmt.Sprintf(
		"# 🏆 %d年 %s 任務總結\n\n回顧上個月的努力成果！\n\n- 總任務數: **%d 項**\n- 已完成任務: **%d 項**\n- 完成率: **%d%%**\n",
		data.Year, dateutil.MonthName(data.Month0), data.Total, data.Completed, data.RatePercent,
	)
	body := RenderMarkdown(md)
	return body + "\n\n" + data.ProgressView + "\n\n[enter] 繼續加油！"
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nview: %s\n%s", strings.ToLower(data.CurrentView), strings.Join(data.Bindings, "\n"))
}
