package ports

import (
	"context"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

// SessionRepository stores the durable user profile part of the session
// record. The token itself lives in a SecretStore.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
