package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

func newAuthFixture(gateway *fakeGateway) (*AuthService, *fakeSessionRepo, *fakeSecretStore) {
	repo := &fakeSessionRepo{}
	secrets := newFakeSecretStore()
	sessions := NewSessionService(repo, secrets)
	clock := fakeClock{now: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
	return NewAuthService(gateway, sessions, clock), repo, secrets
}

func TestLoginValidatesBeforeCallingGateway(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _, _ := newAuthFixture(gateway)

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "a@b.com"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
	assert.Empty(t, gateway.authModes)
}

func TestLoginBuildsAndPersistsSession(t *testing.T) {
	gateway := &fakeGateway{authGrant: domain.AuthGrant{Token: "t1", UserID: 42, Username: "alice"}}
	svc, repo, secrets := newAuthFixture(gateway)

	session, err := svc.Login(context.Background(), domain.Credentials{Email: "alice@b.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "t1", session.Token)
	assert.Equal(t, domain.UserID(42), session.User.ID)
	assert.Equal(t, "alice", session.User.Username)
	assert.False(t, session.LoggedInAt.IsZero())

	assert.Equal(t, "t1", secrets.values[SessionTokenKey])
	require.NotNil(t, repo.session)
	assert.Equal(t, "alice@b.com", repo.session.User.Email)
}

func TestLoginFallsBackToEmailLocalPartForUsername(t *testing.T) {
	gateway := &fakeGateway{authGrant: domain.AuthGrant{Token: "t1", UserID: 42}}
	svc, _, _ := newAuthFixture(gateway)

	session, err := svc.Login(context.Background(), domain.Credentials{Email: "alice@b.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", session.User.Username)
}

func TestLoginSurfacesGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{authErr: &domain.RemoteError{Status: 401, Message: "Invalid credentials"}}
	svc, repo, _ := newAuthFixture(gateway)

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", domain.FailureMessage(err, ""))
	assert.Nil(t, repo.session)
}

func TestRegisterReturnsConfirmationWithoutSession(t *testing.T) {
	gateway := &fakeGateway{authGrant: domain.AuthGrant{Confirmation: "User registered"}}
	svc, repo, secrets := newAuthFixture(gateway)

	confirmation, err := svc.Register(context.Background(), domain.Credentials{
		Email:    "a@b.com",
		Username: "alice",
		FullName: "Alice Example",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, RegisterConfirmation, confirmation)
	assert.Equal(t, []domain.AuthMode{domain.AuthModeRegister}, gateway.authModes)

	assert.Nil(t, repo.session)
	assert.Empty(t, secrets.values)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	gateway := &fakeGateway{}
	svc, _, _ := newAuthFixture(gateway)

	_, err := svc.Register(context.Background(), domain.Credentials{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
	assert.Empty(t, gateway.authModes)
}
