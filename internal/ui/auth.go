package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

const (
	fieldEmail = iota
	fieldUsername
	fieldFullName
	fieldPassword
	fieldCount
)

// authModel is the combined login/register form. Toggling the mode wipes the
// form and any error so nothing leaks between the two.
type authModel struct {
	svc        *Services
	mode       domain.AuthMode
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	info       string
	styles     styles
}

func newAuthModel(svc *Services, s styles) authModel {
	m := authModel{
		svc:    svc,
		mode:   domain.AuthModeLogin,
		styles: s,
	}
	m.inputs = newAuthInputs()
	m.inputs[fieldEmail].Focus()
	return m
}

func newAuthInputs() []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 128
	}
	inputs[fieldEmail].Placeholder = "email"
	inputs[fieldUsername].Placeholder = "username"
	inputs[fieldFullName].Placeholder = "full name"
	inputs[fieldPassword].Placeholder = "password"
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	return inputs
}

func (m authModel) fields() []int {
	if m.mode == domain.AuthModeRegister {
		return []int{fieldEmail, fieldUsername, fieldFullName, fieldPassword}
	}
	return []int{fieldEmail, fieldPassword}
}

func (m authModel) update(msg tea.Msg) (authModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			if m.submitting {
				return m, nil
			}
			return m.toggleMode(), nil
		case "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = domain.FailureMessage(msg.err, "")
			return m, nil
		}
		return m, nil
	case registerDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = domain.FailureMessage(msg.err, "")
			return m, nil
		}
		// Back to the login form with the confirmation; the register
		// fields are gone.
		m = m.toggleMode()
		m.info = msg.confirmation
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedField()], cmd = m.inputs[m.focusedField()].Update(msg)
	return m, cmd
}

func (m authModel) toggleMode() authModel {
	if m.mode == domain.AuthModeLogin {
		m.mode = domain.AuthModeRegister
	} else {
		m.mode = domain.AuthModeLogin
	}
	m.inputs = newAuthInputs()
	m.focus = 0
	m.errMsg = ""
	m.info = ""
	m.inputs[fieldEmail].Focus()
	return m
}

func (m authModel) focusedField() int {
	return m.fields()[m.focus]
}

func (m authModel) moveFocus(delta int) authModel {
	fields := m.fields()
	m.inputs[m.focusedField()].Blur()
	m.focus = (m.focus + delta + len(fields)) % len(fields)
	m.inputs[m.focusedField()].Focus()
	return m
}

func (m authModel) credentials() domain.Credentials {
	return domain.Credentials{
		Email:    strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Username: strings.TrimSpace(m.inputs[fieldUsername].Value()),
		FullName: strings.TrimSpace(m.inputs[fieldFullName].Value()),
		Password: m.inputs[fieldPassword].Value(),
	}
}

func (m authModel) submit() (authModel, tea.Cmd) {
	creds := m.credentials()
	if err := creds.Validate(m.mode); err != nil {
		m.errMsg = "Please fill in all required fields"
		return m, nil
	}

	m.submitting = true
	m.errMsg = ""
	m.info = ""

	mode := m.mode
	svc := m.svc
	return m, func() tea.Msg {
		if mode == domain.AuthModeRegister {
			confirmation, err := svc.Auth.Register(context.Background(), creds)
			return registerDoneMsg{confirmation: confirmation, err: err}
		}
		session, err := svc.Auth.Login(context.Background(), creds)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m authModel) view() string {
	title := "Login"
	action := "register"
	if m.mode == domain.AuthModeRegister {
		title = "Register"
		action = "login"
	}

	lines := []string{m.styles.title.Render("CreditWise - " + title)}
	for _, field := range m.fields() {
		lines = append(lines, m.inputs[field].View())
	}

	if m.submitting {
		lines = append(lines, m.styles.help.Render("Submitting..."))
	}
	if m.errMsg != "" {
		lines = append(lines, m.styles.errLine.Render(m.errMsg))
	}
	if m.info != "" {
		lines = append(lines, m.styles.infoLine.Render(m.info))
	}

	lines = append(lines, m.styles.help.Render("enter submit - ctrl+t "+action+" - ctrl+c quit"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
