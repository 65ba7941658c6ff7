package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

const chatViewportHeight = 16

// chatModel renders the advisor conversation. The transcript itself lives in
// the chat service so it survives view switches; this model only displays it.
// Quick questions populate the input and never auto-send.
type chatModel struct {
	svc      *Services
	viewport viewport.Model
	input    textinput.Model
	turns    []domain.Turn
	pending  bool
	width    int
	styles   styles
}

func newChatModel(svc *Services, s styles) chatModel {
	input := textinput.New()
	input.Placeholder = "Ask about your credit score..."
	input.CharLimit = 512
	input.Focus()

	vp := viewport.New(80, chatViewportHeight)

	m := chatModel{
		svc:      svc,
		viewport: vp,
		input:    input,
		turns:    svc.Chat.Transcript(),
		width:    80,
		styles:   s,
	}
	m.refreshViewport()
	return m
}

func (m chatModel) update(msg tea.Msg, session domain.Session) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.refreshViewport()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "alt+1", "alt+2", "alt+3", "alt+4":
			questions := domain.QuickQuestions()
			index := int(msg.String()[4] - '1')
			if index >= 0 && index < len(questions) {
				m.input.SetValue(questions[index])
				m.input.CursorEnd()
			}
			return m, nil
		case "enter":
			if m.pending {
				return m, nil
			}
			return m.send(session)
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case chatAnsweredMsg:
		m.pending = false
		m.turns = msg.turns
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) send(session domain.Session) (chatModel, tea.Cmd) {
	message := m.input.Value()
	if domain.BlankMessage(message) {
		return m, nil
	}

	m.pending = true
	m.input.Reset()

	// Show the user's turn immediately; the advisor turn arrives with the
	// answer message.
	m.turns = append(m.turns, domain.Turn{Speaker: domain.SpeakerUser, Text: message})
	m.refreshViewport()

	svc := m.svc
	return m, func() tea.Msg {
		return chatAnsweredMsg{turns: svc.Chat.Send(context.Background(), session, message)}
	}
}

func (m *chatModel) refreshViewport() {
	var b strings.Builder
	for i, turn := range m.turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		style := m.styles.botTurn
		if turn.Speaker == domain.SpeakerUser {
			style = m.styles.userTurn
		}
		b.WriteString(style.Render(turn.Speaker.DisplayName()+":") + "\n" + turn.Text)
	}

	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(b.String()))
	m.viewport.GotoBottom()
}

func (m chatModel) view() string {
	lines := []string{
		m.styles.title.Render("AI Credit Advisor"),
		m.viewport.View(),
	}

	if m.pending {
		lines = append(lines, m.styles.help.Render("Advisor is typing..."))
	}

	lines = append(lines,
		m.input.View(),
		m.quickQuestionLine(),
		m.styles.help.Render("enter send - pgup/pgdn scroll - tab next view"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m chatModel) quickQuestionLine() string {
	parts := make([]string, 0, len(domain.QuickQuestions()))
	for i, question := range domain.QuickQuestions() {
		parts = append(parts, m.styles.help.Render(fmt.Sprintf("alt+%d %s", i+1, question)))
	}
	return strings.Join(parts, "\n")
}
