package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/creditwise/creditwise-cli/internal/adapters/render/score"
	"github.com/creditwise/creditwise-cli/internal/application"
	"github.com/creditwise/creditwise-cli/internal/domain"
)

// dashboardModel shows the stored score on demand. A failed fetch clears any
// previously shown result so a stale card never outlives its error.
type dashboardModel struct {
	svc      *Services
	result   domain.ScoreResult
	fetching bool
	errMsg   string
	spinner  spinner.Model
	styles   styles
}

func newDashboardModel(svc *Services, s styles) dashboardModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return dashboardModel{svc: svc, spinner: sp, styles: s}
}

func (m dashboardModel) update(msg tea.Msg, session domain.Session) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "r":
			if m.fetching {
				return m, nil
			}
			return m.fetch(session)
		}
	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case scoreFetchedMsg:
		m.fetching = false
		if msg.err != nil {
			m.result = domain.ScoreResult{}
			if errors.Is(msg.err, domain.ErrMissingUserID) {
				m.errMsg = application.MissingUserMessage
			} else {
				m.errMsg = domain.FailureMessage(msg.err, application.NoScoreFallback)
			}
			return m, nil
		}
		m.result = msg.result
		m.errMsg = ""
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) fetch(session domain.Session) (dashboardModel, tea.Cmd) {
	m.fetching = true
	m.errMsg = ""

	svc := m.svc
	fetch := func() tea.Msg {
		result, err := svc.Scores.Fetch(context.Background(), session)
		return scoreFetchedMsg{result: result, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, fetch)
}

func (m dashboardModel) view(session domain.Session) string {
	lines := []string{
		m.styles.title.Render("Dashboard"),
		m.styles.value.Render(fmt.Sprintf("Welcome, %s!", session.User.DisplayName())),
	}

	switch {
	case m.fetching:
		lines = append(lines, fmt.Sprintf("%s Fetching your score...", m.spinner.View()))
	case m.errMsg != "":
		lines = append(lines, m.styles.errLine.Render(m.errMsg))
	case !m.result.Empty():
		lines = append(lines, score.Text(m.result))
	default:
		lines = append(lines, m.styles.help.Render("Press enter to get your score."))
	}

	lines = append(lines, m.styles.help.Render("enter/r get score - tab next view - ctrl+l logout"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
