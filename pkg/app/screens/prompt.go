package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/locale"
)

// PromptScreen asks for the title of the book to borrow or return.
type PromptScreen struct {
	msgs      locale.Messages
	heading   string
	label     string
	input     textinput.Model
	submitted bool
}

func NewPromptScreen(msgs locale.Messages, heading, label string) *PromptScreen {
	ti := textinput.New()
	ti.Placeholder = msgs.ColumnTitle
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()

	return &PromptScreen{
		msgs:    msgs,
		heading: heading,
		label:   label,
		input:   ti,
	}
}

func (s *PromptScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *PromptScreen) Update(msg tea.Msg) (*PromptScreen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		s.submitted = true
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PromptScreen) Submitted() (string, bool) {
	return s.input.Value(), s.submitted
}

func (s *PromptScreen) View() string {
	return fmt.Sprintf("%s\n\n%s\n%s\n%s",
		styles.TitleStyle.Render(s.heading),
		styles.LabelStyle.Render(s.label),
		styles.FocusedInputStyle.Render(s.input.View()),
		styles.HelpStyle.Render(s.msgs.FormHelp),
	)
}
