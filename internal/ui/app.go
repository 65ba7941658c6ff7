package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/creditwise/creditwise-cli/internal/application"
	"github.com/creditwise/creditwise-cli/internal/domain"
)

// Services bundles the workflows the screens call into.
type Services struct {
	Auth     *application.AuthService
	Sessions *application.SessionService
	Scores   *application.ScoreService
	Chat     *application.ChatService
}

// Model is the root screen router. It owns the session and decides which of
// the four views is visible; everything else is delegated to the view models.
type Model struct {
	svc     *Services
	session domain.Session
	view    View

	auth      authModel
	dashboard dashboardModel
	calculate calculateModel
	chat      chatModel

	styles   styles
	quitting bool
}

func NewModel(svc *Services, session domain.Session) Model {
	s := newStyles()

	return Model{
		svc:       svc,
		session:   session,
		view:      effectiveView(session, ViewDashboard),
		auth:      newAuthModel(svc, s),
		dashboard: newDashboardModel(svc, s),
		calculate: newCalculateModel(svc, s),
		chat:      newChatModel(svc, s),
		styles:    s,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) CurrentView() View {
	return effectiveView(m.session, m.view)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.update(msg, m.session)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.session.Active() {
				m.view = nextView(m.CurrentView())
				return m, nil
			}
		case "ctrl+l":
			if m.session.Active() {
				return m, m.logout()
			}
		}
	case loginDoneMsg:
		if msg.err == nil {
			m.session = msg.session
			m.view = ViewDashboard
		}
	case logoutDoneMsg:
		// Even a partially failed logout drops the in-memory session; the
		// user lands back on the auth view either way.
		m.session = domain.Session{}
		m.view = ViewAuth
		m.auth = newAuthModel(m.svc, m.styles)
		m.dashboard = newDashboardModel(m.svc, m.styles)
		m.calculate = newCalculateModel(m.svc, m.styles)
		return m, nil
	case scoreFetchedMsg:
		// Delivered to its owning view even if the user tabbed away while
		// the call was in flight.
		if msg.err == nil {
			m.svc.Chat.NoteScore(msg.result.Score)
		}
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.update(msg, m.session)
		return m, cmd
	case scoreCalculatedMsg:
		if msg.err == nil {
			m.svc.Chat.NoteScore(msg.result.Score)
		}
		var cmd tea.Cmd
		m.calculate, cmd = m.calculate.update(msg, m.session)
		return m, cmd
	case chatAnsweredMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.update(msg, m.session)
		return m, cmd
	}

	return m.delegate(msg)
}

func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.CurrentView() {
	case ViewAuth:
		m.auth, cmd = m.auth.update(msg)
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.update(msg, m.session)
	case ViewCalculate:
		m.calculate, cmd = m.calculate.update(msg, m.session)
	case ViewChat:
		m.chat, cmd = m.chat.update(msg, m.session)
	}
	return m, cmd
}

func (m Model) logout() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return logoutDoneMsg{err: svc.Sessions.Logout(context.Background())}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.CurrentView() {
	case ViewDashboard:
		return lipgloss.JoinVertical(lipgloss.Left, m.navBar(), m.dashboard.view(m.session))
	case ViewCalculate:
		return lipgloss.JoinVertical(lipgloss.Left, m.navBar(), m.calculate.view(m.session))
	case ViewChat:
		return lipgloss.JoinVertical(lipgloss.Left, m.navBar(), m.chat.view())
	default:
		return m.auth.view()
	}
}

func (m Model) navBar() string {
	current := m.CurrentView()
	tabs := []struct {
		view  View
		label string
	}{
		{ViewDashboard, "Dashboard"},
		{ViewCalculate, "Calculate"},
		{ViewChat, "Advisor"},
	}

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		style := m.styles.tab
		if tab.view == current {
			style = m.styles.tabOn
		}
		parts = append(parts, style.Render(tab.label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts[0], "  ", parts[1], "  ", parts[2])
}

// Run starts the interactive client with the restored session.
func Run(svc *Services, session domain.Session) error {
	p := tea.NewProgram(NewModel(svc, session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
