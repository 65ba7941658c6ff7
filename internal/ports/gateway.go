package ports

import (
	"context"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

// Gateway is the client's contract with the three backend capabilities
// (identity, scoring, chat). Every call is at-most-once; the caller decides
// whether to resubmit.
type Gateway interface {
	Authenticate(ctx context.Context, mode domain.AuthMode, creds domain.Credentials) (domain.AuthGrant, error)
	FetchScore(ctx context.Context, userID domain.UserID) (domain.ScoreResult, error)
	CalculateScore(ctx context.Context, input domain.CalculationInput) (domain.ScoreResult, error)
	Chat(ctx context.Context, prompt domain.ChatPrompt) (string, error)
}
