package env

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/creditwise/creditwise-cli/internal/domain"
	"github.com/creditwise/creditwise-cli/internal/ports"
)

// ErrReadOnly marks writes against the environment store; a chained store
// falls through to its fallback on it.
var ErrReadOnly = errors.New("environment secret store is read-only")

// Store resolves secrets from environment variables. It lets headless use
// (CI, scripts) inject a session token without touching the filesystem.
type Store struct {
	vars map[string]string
}

var _ ports.SecretStore = (*Store)(nil)

// NewStore maps secret keys to the environment variables that may carry them.
func NewStore(vars map[string]string) *Store {
	if vars == nil {
		vars = map[string]string{}
	}
	return &Store{vars: vars}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, ok := s.vars[key]
	if !ok {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("secret %q (env %s): %w", key, name, domain.ErrSecretNotFound)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fmt.Errorf("put secret %q: %w", key, ErrReadOnly)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return fmt.Errorf("delete secret %q: %w", key, ErrReadOnly)
}
