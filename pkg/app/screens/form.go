package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/locale"
)

const (
	titleField = iota
	authorField
	yearField
)

// BookForm is the raw input of the add form, not yet validated.
type BookForm struct {
	Title  string
	Author string
	Year   string
}

// FormScreen collects title, author and year for a new book.
type FormScreen struct {
	msgs      locale.Messages
	inputs    []textinput.Model
	labels    []string
	focus     int
	submitted bool
}

func NewFormScreen(msgs locale.Messages) *FormScreen {
	labels := []string{msgs.TitlePrompt, msgs.AuthorPrompt, msgs.YearPrompt}
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[yearField].CharLimit = 4
	inputs[yearField].Placeholder = "1965"
	inputs[titleField].Focus()

	return &FormScreen{
		msgs:   msgs,
		inputs: inputs,
		labels: labels,
	}
}

func (s *FormScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *FormScreen) Update(msg tea.Msg) (*FormScreen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus(s.focus + 1)
		case "shift+tab", "up":
			return s, s.setFocus(s.focus - 1)
		case "enter":
			if s.focus < len(s.inputs)-1 {
				return s, s.setFocus(s.focus + 1)
			}
			s.submitted = true
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

// Submitted reports the form values once the user confirmed the last field.
func (s *FormScreen) Submitted() (BookForm, bool) {
	if !s.submitted {
		return BookForm{}, false
	}
	return BookForm{
		Title:  s.inputs[titleField].Value(),
		Author: s.inputs[authorField].Value(),
		Year:   s.inputs[yearField].Value(),
	}, true
}

func (s *FormScreen) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(s.msgs.AddTitle))
	b.WriteString("\n\n")

	for i, input := range s.inputs {
		style := styles.InputStyle
		if i == s.focus {
			style = styles.FocusedInputStyle
		}
		label := styles.LabelStyle.Render(strings.TrimSpace(s.labels[i]))
		b.WriteString(fmt.Sprintf("%s\n%s\n", label, style.Render(input.View())))
	}

	b.WriteString(styles.HelpStyle.Render(s.msgs.FormHelp))
	return b.String()
}

func (s *FormScreen) setFocus(i int) tea.Cmd {
	if i < 0 || i >= len(s.inputs) {
		return nil
	}
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[s.focus].Focus()
}
