package domain

import "strings"

type RiskCategory string

const (
	RiskLow    RiskCategory = "LOW"
	RiskMedium RiskCategory = "MEDIUM"
	RiskHigh   RiskCategory = "HIGH"
)

func (r RiskCategory) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

func (r RiskCategory) Label() string {
	switch r {
	case RiskLow:
		return "Low risk"
	case RiskMedium:
		return "Medium risk"
	case RiskHigh:
		return "High risk"
	default:
		return string(r)
	}
}

// ScoreResult is produced only by the remote scoring engine. The client never
// computes it and replaces it wholesale on every fetch or calculation.
type ScoreResult struct {
	Score             int
	RiskCategory      RiskCategory
	ScoreRange        string
	Recommendations   []string
	PointsToNextLevel int
}

func (r ScoreResult) Empty() bool {
	return r.Score == 0 && r.ScoreRange == "" && len(r.Recommendations) == 0
}

type PaymentHistory string

const (
	PaymentHistoryExcellent PaymentHistory = "EXCELLENT"
	PaymentHistoryGood      PaymentHistory = "GOOD"
	PaymentHistoryFair      PaymentHistory = "FAIR"
	PaymentHistoryPoor      PaymentHistory = "POOR"
)

// PaymentHistories lists the categories in the order the original form offers
// them. Good is the neutral default.
func PaymentHistories() []PaymentHistory {
	return []PaymentHistory{
		PaymentHistoryExcellent,
		PaymentHistoryGood,
		PaymentHistoryFair,
		PaymentHistoryPoor,
	}
}

func (p PaymentHistory) Valid() bool {
	switch p {
	case PaymentHistoryExcellent, PaymentHistoryGood, PaymentHistoryFair, PaymentHistoryPoor:
		return true
	default:
		return false
	}
}

func ParsePaymentHistory(raw string) (PaymentHistory, error) {
	p := PaymentHistory(strings.ToUpper(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", ErrUnknownPaymentHistory
	}
	return p, nil
}
