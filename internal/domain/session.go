package domain

import (
	"strings"
	"time"
)

type UserID int64

type User struct {
	ID       UserID
	Email    string
	Username string
	FullName string
}

// DisplayName prefers the username and falls back to the local part of the
// email, matching what the backend may omit on login.
func (u User) DisplayName() string {
	if strings.TrimSpace(u.Username) != "" {
		return u.Username
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}

// Session is the single source of truth for "is the user authenticated".
type Session struct {
	Token      string
	User       User
	LoggedInAt time.Time
}

func (s Session) Active() bool {
	return s.Token != ""
}

func (s Session) HasUserID() bool {
	return s.User.ID > 0
}
