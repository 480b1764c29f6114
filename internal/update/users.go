package update

import (
	"fmt"
	"strings"
)

func (m *Model) addUser(name string) {
	before := len(m.Data.Users)
	m.commit(m.store.AddUser(m.Data, name))
	if len(m.Data.Users) == before {
		m.Status = StatusBar{Text: "user name required", IsError: true}
		return
	}
	m.afterUserSwitch()
	m.Status = StatusBar{Text: fmt.Sprintf("welcome, %s!", strings.TrimSpace(name)), IsError: false}
}

// cycleUser switches to the next user in display order.
func (m *Model) cycleUser() {
	if len(m.Data.Users) < 2 {
		return
	}
	current := 0
	for i, u := range m.Data.Users {
		if u.ID == m.Data.CurrentUserID {
			current = i
			break
		}
	}
	next := m.Data.Users[(current+1)%len(m.Data.Users)]
	m.commit(m.store.SwitchUser(m.Data, next.ID))
	m.afterUserSwitch()
	m.Status = StatusBar{Text: fmt.Sprintf("switched to %s", next.Name), IsError: false}
}

func (m *Model) switchUserByName(name string) {
	target := strings.ToLower(strings.TrimSpace(name))
	for _, u := range m.Data.Users {
		if strings.ToLower(u.Name) == target {
			m.commit(m.store.SwitchUser(m.Data, u.ID))
			m.afterUserSwitch()
			m.Status = StatusBar{Text: fmt.Sprintf("switched to %s", u.Name), IsError: false}
			return
		}
	}
	m.Status = StatusBar{Text: fmt.Sprintf("no user named %q", name), IsError: true}
}

// Switching users always brings the board back to today.
func (m *Model) afterUserSwitch() {
	m.SelectedDate = m.store.Today()
	m.Board.Cursor = 0
	m.resetCalendarToSelected()
}
