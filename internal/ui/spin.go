package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/sprite-ai/gitscribe/internal/llm"
)

// SpinningGenerator decorates a Generator with a progress spinner
// while the blocking completion call is in flight. Off-terminal it is
// a transparent passthrough.
type SpinningGenerator struct {
	Inner   llm.Generator
	Console *Console
}

func (g SpinningGenerator) Complete(ctx context.Context, prompt string, temperature float64, model string) (string, error) {
	out, isFile := g.Console.Out.(*os.File)
	if !isFile || !isatty.IsTerminal(out.Fd()) {
		return g.Inner.Complete(ctx, prompt, temperature, model)
	}

	label := fmt.Sprintf("Generating (temperature %.1f)...", temperature)
	m := spinModel{
		spinner: newSpinner(),
		label:   label,
		run: func() tea.Msg {
			text, err := g.Inner.Complete(ctx, prompt, temperature, model)
			return spinDoneMsg{text: text, err: err}
		},
	}

	p := tea.NewProgram(m, tea.WithInput(g.Console.In), tea.WithOutput(g.Console.Out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("spinner: %w", err)
	}

	fm := final.(spinModel)
	if fm.interrupted {
		return "", ErrInterrupted
	}
	return fm.text, fm.err
}

func newSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = pickerSelectedStyle
	return sp
}

type spinDoneMsg struct {
	text string
	err  error
}

type spinModel struct {
	spinner     spinner.Model
	label       string
	run         func() tea.Msg
	text        string
	err         error
	interrupted bool
}

func (m spinModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinDoneMsg:
		m.text = msg.text
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinModel) View() string {
	return m.spinner.View() + infoStyle.Render(m.label)
}
