package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/library/pkg/app/components"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/data"
	"github.com/kerbaras/library/pkg/locale"
)

// LibraryScreen lists either every book or only the available ones.
type LibraryScreen struct {
	msgs       locale.Messages
	heading    string
	empty      string
	withStatus bool
	books      []data.Book
	table      table.Model
	height     int
}

func NewLibraryScreen(msgs locale.Messages, books []data.Book, withStatus bool, height int) *LibraryScreen {
	s := &LibraryScreen{
		msgs:       msgs,
		heading:    msgs.AvailableBooksTitle,
		empty:      msgs.NoAvailableBooks,
		withStatus: withStatus,
		books:      books,
		height:     height,
	}
	if withStatus {
		s.heading = msgs.AllBooksTitle
		s.empty = msgs.NoBooks
	}
	s.table = components.NewBookTable(books, msgs, withStatus, s.tableHeight())
	return s
}

func (s *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (s *LibraryScreen) Update(msg tea.Msg) (*LibraryScreen, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.height = msg.Height
		s.table.SetHeight(s.tableHeight())
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s *LibraryScreen) View() string {
	header := styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", s.heading, len(s.books)))

	var body string
	if len(s.books) == 0 {
		body = styles.MutedStyle.Render(s.empty)
	} else {
		body = s.table.View()
	}

	return fmt.Sprintf("%s\n\n%s\n%s", header, body, styles.HelpStyle.Render(s.msgs.ListHelp))
}

// Header, help and margins take about eight lines.
func (s *LibraryScreen) tableHeight() int {
	return components.TableHeight(len(s.books), s.height-8)
}
