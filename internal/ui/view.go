package ui

import "github.com/creditwise/creditwise-cli/internal/domain"

// View names the four screens. Exactly one is visible at a time.
type View string

const (
	ViewAuth      View = "auth"
	ViewDashboard View = "dashboard"
	ViewCalculate View = "calculate"
	ViewChat      View = "chat"
)

// effectiveView derives the visible screen: the auth view is forced whenever
// the session is inactive, no matter what was requested.
func effectiveView(session domain.Session, requested View) View {
	if !session.Active() {
		return ViewAuth
	}
	if requested == ViewAuth || requested == "" {
		return ViewDashboard
	}
	return requested
}

func nextView(current View) View {
	switch current {
	case ViewDashboard:
		return ViewCalculate
	case ViewCalculate:
		return ViewChat
	case ViewChat:
		return ViewDashboard
	default:
		return current
	}
}
