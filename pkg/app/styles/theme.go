package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Secondary  = lipgloss.Color("#C792EA")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Info       = lipgloss.Color("#82AAFF")
	Muted      = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#263238")
	Foreground = lipgloss.Color("#EEFFFF")

	RoundedBorder = lipgloss.RoundedBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	TextStyle = lipgloss.NewStyle().
		Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	// Menu entries
	MenuKeyStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	MenuItemStyle = lipgloss.NewStyle().
		Foreground(Foreground)

	CardStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Secondary).
		Padding(1, 2)

	// Status styles
	StatusAvailable = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	StatusBorrowed = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	// Table cells
	HeaderStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true).
		Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
		Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true).
		MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
		Foreground(Info).
		Width(24)

	InputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Secondary).
		Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Primary).
		Padding(0, 1)
)

func StatusStyle(available bool) lipgloss.Style {
	if available {
		return StatusAvailable
	}
	return StatusBorrowed
}
