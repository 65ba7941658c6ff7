package domain

import "strings"

type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

func (m AuthMode) Valid() bool {
	switch m {
	case AuthModeLogin, AuthModeRegister:
		return true
	default:
		return false
	}
}

// Credentials are transient input. They are never persisted.
type Credentials struct {
	Email    string
	Username string
	FullName string
	Password string
}

func (c Credentials) Validate(mode AuthMode) error {
	if !mode.Valid() {
		return ErrUnsupportedAuthMode
	}
	if strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Password) == "" {
		return ErrMissingCredentials
	}
	if mode == AuthModeRegister {
		if strings.TrimSpace(c.Username) == "" || strings.TrimSpace(c.FullName) == "" {
			return ErrMissingCredentials
		}
	}
	return nil
}

// AuthGrant is the identity service's answer to an authenticate call. A login
// grant carries the token and user identity; a register grant carries only the
// confirmation text.
type AuthGrant struct {
	Token        string
	UserID       UserID
	Username     string
	Confirmation string
}
