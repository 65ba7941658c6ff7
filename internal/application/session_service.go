package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/creditwise/creditwise-cli/internal/domain"
	"github.com/creditwise/creditwise-cli/internal/ports"
)

// SessionTokenKey is the secret store key the auth token lives under.
const SessionTokenKey = "session_token"

// SessionService owns the persisted session record: the profile half in the
// session repository, the token half in the secret store.
type SessionService struct {
	repo    ports.SessionRepository
	secrets ports.SecretStore
}

func NewSessionService(repo ports.SessionRepository, secrets ports.SecretStore) *SessionService {
	return &SessionService{repo: repo, secrets: secrets}
}

// Restore rebuilds the session from storage. Absence of either half is not an
// error: the caller gets an inactive session and lands on the auth view.
func (s *SessionService) Restore(ctx context.Context) (domain.Session, error) {
	session, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return domain.Session{}, fmt.Errorf("load session profile: %w", err)
		}
		session = domain.Session{}
	}

	token, err := s.secrets.Get(ctx, SessionTokenKey)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Session{}, fmt.Errorf("read session token: %w", err)
		}
		token = ""
	}
	session.Token = token

	return session, nil
}

// Login persists a fresh session, token first so a half-written profile never
// outlives a missing token.
func (s *SessionService) Login(ctx context.Context, session domain.Session) error {
	if !session.Active() {
		return domain.ErrNoSession
	}

	if err := s.secrets.Put(ctx, SessionTokenKey, session.Token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	if err := s.repo.Save(ctx, session); err != nil {
		if rollbackErr := s.secrets.Delete(ctx, SessionTokenKey); rollbackErr != nil {
			return fmt.Errorf("save session profile and rollback stored token: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("save session profile: %w", err)
	}

	return nil
}

// Logout removes both halves of the session record. It keeps going past the
// first failure so a stale token never survives a cleared profile.
func (s *SessionService) Logout(ctx context.Context) error {
	profileErr := s.repo.Clear(ctx)
	tokenErr := s.secrets.Delete(ctx, SessionTokenKey)

	if profileErr != nil || tokenErr != nil {
		return fmt.Errorf("clear session: %w", errors.Join(profileErr, tokenErr))
	}

	return nil
}
