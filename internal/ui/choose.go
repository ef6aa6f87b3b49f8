package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sprite-ai/gitscribe/internal/prompt"
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var pickerKeys = pickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q", "keep auto"),
	),
}

type typeOption struct {
	hint  prompt.TypeHint
	label string
}

var typeOptions = []typeOption{
	{prompt.HintAuto, "auto — infer the change type from the diff"},
	{prompt.HintFeat, "feat — a new feature"},
	{prompt.HintFix, "fix — a bug fix"},
}

// typeModel is the bubbletea model for the change-type picker.
type typeModel struct {
	cursor      int
	chosen      bool
	interrupted bool
}

func (m typeModel) Init() tea.Cmd { return nil }

func (m typeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case keyMsg.Type == tea.KeyCtrlC:
		m.interrupted = true
		return m, tea.Quit
	case key.Matches(keyMsg, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, pickerKeys.Down):
		if m.cursor < len(typeOptions)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, pickerKeys.Select):
		m.chosen = true
		return m, tea.Quit
	case key.Matches(keyMsg, pickerKeys.Quit):
		m.cursor = 0
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m typeModel) View() string {
	s := headerStyle.Render("Change type:") + "\n"
	for i, opt := range typeOptions {
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+opt.label) + "\n"
		} else {
			s += pickerItemStyle.Render(opt.label) + "\n"
		}
	}
	s += infoStyle.Render("↑/↓ move · enter select · q keep auto") + "\n"
	return s
}

// ChooseType runs the interactive change-type picker and returns the
// chosen hint. Quitting the picker keeps auto-detection.
func (c *Console) ChooseType() (prompt.TypeHint, error) {
	p := tea.NewProgram(typeModel{}, tea.WithInput(c.In), tea.WithOutput(c.Out))
	final, err := p.Run()
	if err != nil {
		return prompt.HintAuto, fmt.Errorf("change-type picker: %w", err)
	}

	m := final.(typeModel)
	if m.interrupted {
		return prompt.HintAuto, ErrInterrupted
	}
	return typeOptions[m.cursor].hint, nil
}
