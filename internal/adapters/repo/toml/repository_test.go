package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)
	return repo
}

func TestLoadReturnsSessionNotFoundWhenFileAbsent(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSaveThenLoadRoundTripsProfile(t *testing.T) {
	repo := newTestRepository(t)
	loggedInAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	session := domain.Session{
		Token: "t1",
		User: domain.User{
			ID:       42,
			Email:    "a@b.com",
			Username: "alice",
			FullName: "Alice Example",
		},
		LoggedInAt: loggedInAt,
	}
	require.NoError(t, repo.Save(context.Background(), session))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(42), loaded.User.ID)
	assert.Equal(t, "a@b.com", loaded.User.Email)
	assert.Equal(t, "alice", loaded.User.Username)
	assert.Equal(t, "Alice Example", loaded.User.FullName)
	assert.True(t, loaded.LoggedInAt.Equal(loggedInAt))
	// The token is never written to the session file.
	assert.Empty(t, loaded.Token)
}

func TestSaveNeverPersistsToken(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), domain.Session{
		Token: "super-secret-token",
		User:  domain.User{ID: 42, Email: "a@b.com"},
	}))

	data, err := os.ReadFile(repo.sessionPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "super-secret-token")
}

func TestClearRemovesSessionFile(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), domain.Session{
		User: domain.User{ID: 42, Email: "a@b.com"},
	}))
	require.NoError(t, repo.Clear(context.Background()))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestClearIsIdempotentWhenFileAbsent(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Clear(context.Background()))
}

func TestLoadRejectsNewerSchemaVersion(t *testing.T) {
	repo := newTestRepository(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(repo.sessionPath), 0o700))
	require.NoError(t, os.WriteFile(repo.sessionPath, []byte("version = 99\n"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported session schema version")
}

func TestNewRepositoryHonorsConfiguredSessionPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	custom := filepath.Join(home, "elsewhere", "state.toml")
	cfg := viper.New()
	cfg.Set(sessionPathKey, custom)

	repo, err := NewRepository(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(custom), repo.sessionPath)
}
