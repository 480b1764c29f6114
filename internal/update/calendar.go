package update

import (
	"fmt"

	"github.com/starboardhq/starboard/internal/dateutil"
)

func (m *Model) handleCalendarKey(key string) {
	switch key {
	case "h", "left":
		m.shiftSelectedDate(-1)
	case "l", "right":
		m.shiftSelectedDate(1)
	case "k", "up":
		m.shiftSelectedDate(-7)
	case "j", "down":
		m.shiftSelectedDate(7)
	case "[":
		m.shiftDisplayMonth(-1)
	case "]":
		m.shiftDisplayMonth(1)
	case "t":
		m.gotoDate(m.store.Today())
	case "enter":
		m.CurrentView = ViewBoard
		m.Board.Cursor = 0
	}
}

func (m *Model) shiftSelectedDate(days int) {
	day, err := dateutil.ParseDay(m.SelectedDate)
	if err != nil {
		m.SelectedDate = m.store.Today()
		m.resetCalendarToSelected()
		return
	}
	m.SelectedDate = dateutil.DayString(day.AddDate(0, 0, days))
	m.Board.Cursor = 0
	m.resetCalendarToSelected()
	m.Status = StatusBar{Text: fmt.Sprintf("selected: %s", m.SelectedDate), IsError: false}
}

// shiftDisplayMonth pages the visible month without moving the selection.
func (m *Model) shiftDisplayMonth(delta int) {
	month0 := m.Calendar.Month0 + delta
	year := m.Calendar.Year
	for month0 < 0 {
		month0 += 12
		year--
	}
	for month0 > 11 {
		month0 -= 12
		year++
	}
	m.Calendar.Year = year
	m.Calendar.Month0 = month0
}

func (m *Model) gotoDate(date string) {
	if _, err := dateutil.ParseDay(date); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("invalid date: %s", date), IsError: true}
		return
	}
	m.SelectedDate = date
	m.Board.Cursor = 0
	m.CurrentView = ViewBoard
	m.resetCalendarToSelected()
	m.Status = StatusBar{Text: fmt.Sprintf("selected: %s", date), IsError: false}
}

func (m *Model) resetCalendarToSelected() {
	day, err := dateutil.ParseDay(m.SelectedDate)
	if err != nil {
		day, _ = dateutil.ParseDay(m.store.Today())
	}
	m.Calendar.Year = day.Year()
	m.Calendar.Month0 = int(day.Month()) - 1
}
