package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCurrentUser = errors.New("model: current user id references no user")

type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	TasksHistory TasksHistory `json:"tasksHistory"`
	// LastSeenSummaryMonth is the watermark for the monthly summary:
	// "YYYY-M" with a zero-based month, empty when never acknowledged.
	LastSeenSummaryMonth string `json:"lastSeenSummaryMonth,omitempty"`
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("model: user id is required")
	}
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyUserName
	}
	return nil
}

// AppData is the whole persisted snapshot: every user plus the id of the
// active one. An empty CurrentUserID means no user is selected.
type AppData struct {
	Users         []User `json:"users"`
	CurrentUserID string `json:"currentUserId"`
}

func EmptyAppData() AppData {
	return AppData{Users: []User{}}
}

func (d AppData) UserByID(id string) (User, bool) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (d AppData) CurrentUser() (User, bool) {
	if d.CurrentUserID == "" {
		return User{}, false
	}
	return d.UserByID(d.CurrentUserID)
}

func (d AppData) Validate() error {
	for _, u := range d.Users {
		if err := u.Validate(); err != nil {
			return err
		}
	}
	if d.CurrentUserID != "" {
		if _, ok := d.UserByID(d.CurrentUserID); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCurrentUser, d.CurrentUserID)
		}
	}
	return nil
}
