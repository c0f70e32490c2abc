package report

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Generated text wraps at this width.
const defaultWrapWidth = 100

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type frameReadyMsg struct{}

// frame renders a single report and quits; the text is read back from View.
type frame struct {
	build  func(styles) string
	styles styles
	text   string
}

func newFrame(build func(styles) string, wrapWidth int) frame {
	s := newStyles()
	if wrapWidth > 0 {
		s.body = s.body.Width(wrapWidth)
	}

	return frame{build: build, styles: s}
}

func (f frame) Init() tea.Cmd {
	return func() tea.Msg {
		return frameReadyMsg{}
	}
}

func (f frame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameReadyMsg); ok {
		f.text = f.build(f.styles)
		return f, tea.Quit
	}

	return f, nil
}

func (f frame) View() string {
	return f.text
}

func render(build func(styles) string) (string, error) {
	p := tea.NewProgram(
		newFrame(build, defaultWrapWidth),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := final.(frame)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
