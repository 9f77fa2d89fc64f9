package list

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type document func(s styles) string

// model renders a document once and quits, so views share the program
// lifecycle of interactive screens without reading input.
type model struct {
	doc    document
	styles styles
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(renderReadyMsg); ok {
		m.output = m.doc(m.styles)
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	return m.output
}

func render(doc document) (string, error) {
	p := tea.NewProgram(
		model{doc: doc, styles: newStyles()},
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
