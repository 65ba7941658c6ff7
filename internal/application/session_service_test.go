package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

func TestRestoreYieldsInactiveSessionWhenNothingStored(t *testing.T) {
	svc := NewSessionService(&fakeSessionRepo{}, newFakeSecretStore())

	session, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, session.Active())
	assert.False(t, session.HasUserID())
}

func TestRestoreCombinesProfileAndToken(t *testing.T) {
	repo := &fakeSessionRepo{session: &domain.Session{
		User: domain.User{ID: 42, Email: "a@b.com", Username: "alice"},
	}}
	secrets := newFakeSecretStore()
	secrets.values[SessionTokenKey] = "t1"

	session, err := NewSessionService(repo, secrets).Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Active())
	assert.Equal(t, "t1", session.Token)
	assert.Equal(t, domain.UserID(42), session.User.ID)
}

func TestRestoreTokenWithoutProfileIsActive(t *testing.T) {
	secrets := newFakeSecretStore()
	secrets.values[SessionTokenKey] = "env-token"

	session, err := NewSessionService(&fakeSessionRepo{}, secrets).Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Active())
	assert.False(t, session.HasUserID())
}

func TestLoginPersistsTokenAndProfile(t *testing.T) {
	repo := &fakeSessionRepo{}
	secrets := newFakeSecretStore()
	svc := NewSessionService(repo, secrets)

	err := svc.Login(context.Background(), domain.Session{
		Token: "t1",
		User:  domain.User{ID: 42, Email: "a@b.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", secrets.values[SessionTokenKey])
	require.NotNil(t, repo.session)
	assert.Equal(t, domain.UserID(42), repo.session.User.ID)
}

func TestLoginRejectsSessionWithoutToken(t *testing.T) {
	svc := NewSessionService(&fakeSessionRepo{}, newFakeSecretStore())

	err := svc.Login(context.Background(), domain.Session{User: domain.User{ID: 42}})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestLoginRollsBackTokenWhenProfileSaveFails(t *testing.T) {
	repo := &fakeSessionRepo{saveErr: errors.New("disk full")}
	secrets := newFakeSecretStore()
	svc := NewSessionService(repo, secrets)

	err := svc.Login(context.Background(), domain.Session{Token: "t1", User: domain.User{ID: 42}})
	require.Error(t, err)
	assert.NotContains(t, secrets.values, SessionTokenKey)
}

func TestLogoutClearsBothHalves(t *testing.T) {
	repo := &fakeSessionRepo{session: &domain.Session{User: domain.User{ID: 42}}}
	secrets := newFakeSecretStore()
	secrets.values[SessionTokenKey] = "t1"

	require.NoError(t, NewSessionService(repo, secrets).Logout(context.Background()))
	assert.Nil(t, repo.session)
	assert.NotContains(t, secrets.values, SessionTokenKey)
}

func TestLogoutDeletesTokenEvenWhenClearFails(t *testing.T) {
	repo := &fakeSessionRepo{clearErr: errors.New("permission denied")}
	secrets := newFakeSecretStore()
	secrets.values[SessionTokenKey] = "t1"

	err := NewSessionService(repo, secrets).Logout(context.Background())
	require.Error(t, err)
	assert.NotContains(t, secrets.values, SessionTokenKey)
}
