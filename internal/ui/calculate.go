package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/creditwise/creditwise-cli/internal/adapters/render/score"
	"github.com/creditwise/creditwise-cli/internal/application"
	"github.com/creditwise/creditwise-cli/internal/domain"
)

const (
	calcIncome = iota
	calcLoans
	calcUtilization
	calcHistory
	calcRows
)

// calculateModel is the score calculation form. The user identifier comes
// from the session and is shown read-only; values are submitted as typed,
// without client-side range checks. A failed submission keeps the form
// intact for correction.
type calculateModel struct {
	svc        *Services
	inputs     []textinput.Model
	focus      int
	history    int
	submitting bool
	errMsg     string
	result     domain.ScoreResult
	styles     styles
}

func newCalculateModel(svc *Services, s styles) calculateModel {
	inputs := make([]textinput.Model, calcHistory)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 32
	}
	inputs[calcIncome].Placeholder = "monthly income"
	inputs[calcLoans].Placeholder = "existing loans"
	inputs[calcUtilization].Placeholder = "credit utilization %"
	inputs[calcIncome].Focus()

	m := calculateModel{svc: svc, inputs: inputs, styles: s}
	m.history = historyIndex(domain.PaymentHistoryGood)
	return m
}

func historyIndex(history domain.PaymentHistory) int {
	for i, h := range domain.PaymentHistories() {
		if h == history {
			return i
		}
	}
	return 0
}

func (m calculateModel) update(msg tea.Msg, session domain.Session) (calculateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "down":
			return m.moveFocus(1), nil
		case "up":
			return m.moveFocus(-1), nil
		case "left":
			if m.focus == calcHistory {
				m.history = (m.history + len(domain.PaymentHistories()) - 1) % len(domain.PaymentHistories())
				return m, nil
			}
		case "right":
			if m.focus == calcHistory {
				m.history = (m.history + 1) % len(domain.PaymentHistories())
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit(session)
		}
	case scoreCalculatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.result = domain.ScoreResult{}
			if errors.Is(msg.err, domain.ErrMissingUserID) {
				m.errMsg = application.MissingUserMessage
			} else {
				m.errMsg = domain.FailureMessage(msg.err, application.CalculateFallback)
			}
			return m, nil
		}
		m.result = msg.result
		m.errMsg = ""
		return m, nil
	}

	if m.focus < calcHistory {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m calculateModel) moveFocus(delta int) calculateModel {
	if m.focus < calcHistory {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + calcRows) % calcRows
	if m.focus < calcHistory {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m calculateModel) form() application.CalculationForm {
	return application.CalculationForm{
		MonthlyIncome:     m.inputs[calcIncome].Value(),
		ExistingLoans:     m.inputs[calcLoans].Value(),
		CreditUtilization: m.inputs[calcUtilization].Value(),
		PaymentHistory:    domain.PaymentHistories()[m.history],
	}
}

func (m calculateModel) submit(session domain.Session) (calculateModel, tea.Cmd) {
	m.submitting = true
	m.errMsg = ""

	svc := m.svc
	form := m.form()
	return m, func() tea.Msg {
		result, err := svc.Scores.Calculate(context.Background(), session, form)
		return scoreCalculatedMsg{result: result, err: err}
	}
}

func (m calculateModel) view(session domain.Session) string {
	lines := []string{
		m.styles.title.Render("Calculate Score"),
		m.styles.label.Render(fmt.Sprintf("User ID: %d", session.User.ID)),
	}

	for i := 0; i < calcHistory; i++ {
		lines = append(lines, m.inputs[i].View())
	}
	lines = append(lines, m.historyLine())

	switch {
	case m.submitting:
		lines = append(lines, m.styles.help.Render("Calculating..."))
	case m.errMsg != "":
		lines = append(lines, m.styles.errLine.Render(m.errMsg))
	case !m.result.Empty():
		lines = append(lines, score.Text(m.result))
	}

	lines = append(lines, m.styles.help.Render("up/down field - left/right history - enter calculate"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m calculateModel) historyLine() string {
	label := m.styles.label.Render("payment history:")
	value := m.styles.value.Render(string(domain.PaymentHistories()[m.history]))
	if m.focus == calcHistory {
		value = m.styles.tabOn.Render(string(domain.PaymentHistories()[m.history]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", value)
}
