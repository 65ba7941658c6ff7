package application

import (
	"context"
	"fmt"

	"github.com/creditwise/creditwise-cli/internal/domain"
	"github.com/creditwise/creditwise-cli/internal/ports"
)

type AuthService struct {
	gateway  ports.Gateway
	sessions *SessionService
	clock    ports.Clock
}

func NewAuthService(gateway ports.Gateway, sessions *SessionService, clock ports.Clock) *AuthService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &AuthService{
		gateway:  gateway,
		sessions: sessions,
		clock:    clock,
	}
}

// Login exchanges credentials for a grant and persists the resulting session.
// Credentials are validated before any network call is made.
func (a *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	if err := creds.Validate(domain.AuthModeLogin); err != nil {
		return domain.Session{}, err
	}

	grant, err := a.gateway.Authenticate(ctx, domain.AuthModeLogin, creds)
	if err != nil {
		return domain.Session{}, fmt.Errorf("authenticate: %w", err)
	}

	session := domain.Session{
		Token: grant.Token,
		User: domain.User{
			ID:       grant.UserID,
			Email:    creds.Email,
			Username: grant.Username,
		},
		LoggedInAt: a.clock.Now(),
	}
	if session.User.Username == "" {
		session.User.Username = session.User.DisplayName()
	}

	if err := a.sessions.Login(ctx, session); err != nil {
		return domain.Session{}, err
	}

	return session, nil
}

// Register creates the account but never logs the user in; they are sent back
// to the login form with a confirmation.
func (a *AuthService) Register(ctx context.Context, creds domain.Credentials) (string, error) {
	if err := creds.Validate(domain.AuthModeRegister); err != nil {
		return "", err
	}

	if _, err := a.gateway.Authenticate(ctx, domain.AuthModeRegister, creds); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	return RegisterConfirmation, nil
}
