package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Elapsed time is shown once a call has been running this long.
const showElapsedAfter = 2 * time.Second

type providerCallDoneMsg struct {
	err error
}

type providerCallSpinner struct {
	spinner spinner.Model
	label   string
	call    tea.Cmd
	started time.Time
	now     func() time.Time
	err     error
	done    bool
}

func newProviderCallSpinner(label string, call tea.Cmd, now func() time.Time) providerCallSpinner {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return providerCallSpinner{
		spinner: s,
		label:   label,
		call:    call,
		started: now(),
		now:     now,
	}
}

func (m providerCallSpinner) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m providerCallSpinner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case providerCallDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m providerCallSpinner) View() string {
	if m.done {
		return ""
	}

	elapsed := m.now().Sub(m.started)
	if elapsed < showElapsedAfter {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	return fmt.Sprintf("%s %s (%ds)", m.spinner.View(), m.label, int(elapsed.Seconds()))
}

// runWithSpinner shows label on output while call runs and returns call's error.
func runWithSpinner(ctx context.Context, output io.Writer, label string, call func(context.Context) error) error {
	callCmd := func() tea.Msg {
		return providerCallDoneMsg{err: call(ctx)}
	}

	p := tea.NewProgram(
		newProviderCallSpinner(label, callCmd, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(providerCallSpinner)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
