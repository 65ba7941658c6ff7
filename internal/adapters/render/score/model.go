package score

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/creditwise/creditwise-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	result domain.ScoreResult
	styles styles
	output string
}

func newModel(result domain.ScoreResult) model {
	return model{
		result: result,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.result, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render produces the score card through a one-shot bubbletea program so the
// output matches what the interactive views show.
func Render(result domain.ScoreResult) (string, error) {
	p := tea.NewProgram(
		newModel(result),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// Text renders the score card directly, for embedding inside another view.
func Text(result domain.ScoreResult) string {
	return renderView(result, newStyles())
}
