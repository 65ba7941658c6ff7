package application

import (
	"context"
	"fmt"
	"time"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

type fakeGateway struct {
	authGrant   domain.AuthGrant
	authErr     error
	authModes   []domain.AuthMode
	authCreds   []domain.Credentials
	score       domain.ScoreResult
	scoreErr    error
	fetchedIDs  []domain.UserID
	calcInputs  []domain.CalculationInput
	chatReply   string
	chatErr     error
	chatPrompts []domain.ChatPrompt
}

func (f *fakeGateway) Authenticate(_ context.Context, mode domain.AuthMode, creds domain.Credentials) (domain.AuthGrant, error) {
	f.authModes = append(f.authModes, mode)
	f.authCreds = append(f.authCreds, creds)
	return f.authGrant, f.authErr
}

func (f *fakeGateway) FetchScore(_ context.Context, userID domain.UserID) (domain.ScoreResult, error) {
	f.fetchedIDs = append(f.fetchedIDs, userID)
	return f.score, f.scoreErr
}

func (f *fakeGateway) CalculateScore(_ context.Context, input domain.CalculationInput) (domain.ScoreResult, error) {
	f.calcInputs = append(f.calcInputs, input)
	return f.score, f.scoreErr
}

func (f *fakeGateway) Chat(_ context.Context, prompt domain.ChatPrompt) (string, error) {
	f.chatPrompts = append(f.chatPrompts, prompt)
	return f.chatReply, f.chatErr
}

type fakeSessionRepo struct {
	session  *domain.Session
	loadErr  error
	saveErr  error
	clearErr error
	saves    int
	clears   int
}

func (f *fakeSessionRepo) Load(context.Context) (domain.Session, error) {
	if f.loadErr != nil {
		return domain.Session{}, f.loadErr
	}
	if f.session == nil {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return *f.session, nil
}

func (f *fakeSessionRepo) Save(_ context.Context, session domain.Session) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	stored := session
	stored.Token = ""
	f.session = &stored
	return nil
}

func (f *fakeSessionRepo) Clear(context.Context) error {
	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.session = nil
	return nil
}

type fakeSecretStore struct {
	values    map[string]string
	putErr    error
	deleteErr error
	deletes   []string
}

func newFakeSecretStore() *fakeSecretStore {
	return &fakeSecretStore{values: map[string]string{}}
}

func (f *fakeSecretStore) Get(_ context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}
	return value, nil
}

func (f *fakeSecretStore) Put(_ context.Context, key string, value string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeSecretStore) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.values, key)
	return nil
}

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time {
	return f.now
}
