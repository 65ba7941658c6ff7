package application

import (
	"context"
	"fmt"

	"github.com/creditwise/creditwise-cli/internal/domain"
	"github.com/creditwise/creditwise-cli/internal/ports"
)

// CalculationForm is the raw text of the calculate form. Values are coerced at
// submission time and never range-checked client-side.
type CalculationForm struct {
	MonthlyIncome     string
	ExistingLoans     string
	CreditUtilization string
	PaymentHistory    domain.PaymentHistory
}

type ScoreService struct {
	gateway ports.Gateway
}

func NewScoreService(gateway ports.Gateway) *ScoreService {
	return &ScoreService{gateway: gateway}
}

// Fetch retrieves the stored score for the session user. A session without a
// user identifier fails before any network call.
func (s *ScoreService) Fetch(ctx context.Context, session domain.Session) (domain.ScoreResult, error) {
	if !session.HasUserID() {
		return domain.ScoreResult{}, domain.ErrMissingUserID
	}

	result, err := s.gateway.FetchScore(ctx, session.User.ID)
	if err != nil {
		return domain.ScoreResult{}, fmt.Errorf("fetch score: %w", err)
	}

	return result, nil
}

// Calculate submits the form for the session user. The payment history
// defaults to GOOD when the form never touched it.
func (s *ScoreService) Calculate(ctx context.Context, session domain.Session, form CalculationForm) (domain.ScoreResult, error) {
	if !session.HasUserID() {
		return domain.ScoreResult{}, domain.ErrMissingUserID
	}

	history := form.PaymentHistory
	if history == "" {
		history = domain.PaymentHistoryGood
	}

	input := domain.CalculationInput{
		UserID:            domain.IntegerFieldOf(int64(session.User.ID)),
		MonthlyIncome:     domain.DecimalField(form.MonthlyIncome),
		ExistingLoans:     domain.DecimalField(form.ExistingLoans),
		CreditUtilization: domain.IntegerField(form.CreditUtilization),
		PaymentHistory:    history,
	}

	result, err := s.gateway.CalculateScore(ctx, input)
	if err != nil {
		return domain.ScoreResult{}, fmt.Errorf("calculate score: %w", err)
	}

	return result, nil
}
