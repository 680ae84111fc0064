package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/data"
	"github.com/kerbaras/library/pkg/locale"
)

// RenderBooks draws books as a numbered table starting at 1. The status
// column is only drawn when withStatus is set.
func RenderBooks(books []data.Book, msgs locale.Messages, withStatus bool) string {
	headers := []string{"#", msgs.ColumnTitle, msgs.ColumnAuthor, msgs.ColumnYear}
	if withStatus {
		headers = append(headers, msgs.ColumnStatus)
	}
	statusCol := len(headers) - 1

	t := lgtable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == lgtable.HeaderRow:
				return styles.HeaderStyle
			case withStatus && col == statusCol && row >= 0 && row < len(books):
				return styles.StatusStyle(books[row].Available).Padding(0, 1)
			default:
				return styles.CellStyle
			}
		}).
		Headers(headers...)

	for i, book := range books {
		t.Row(bookRow(i, book, msgs, withStatus)...)
	}

	return t.String()
}

// NewBookTable builds the interactive table used by the TUI list screen.
func NewBookTable(books []data.Book, msgs locale.Messages, withStatus bool, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: msgs.ColumnTitle, Width: 36},
		{Title: msgs.ColumnAuthor, Width: 24},
		{Title: msgs.ColumnYear, Width: 6},
	}
	if withStatus {
		columns = append(columns, table.Column{Title: msgs.ColumnStatus, Width: 12})
	}

	rows := make([]table.Row, 0, len(books))
	for i, book := range books {
		rows = append(rows, table.Row(bookRow(i, book, msgs, withStatus)))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(TableHeight(len(rows), height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// TableHeight fits a table of n rows into the available lines, leaving room
// for the header. A non-positive available height shows every row.
func TableHeight(n, available int) int {
	full := n + 2
	if available <= 0 || available > full {
		return full
	}
	return available
}

func bookRow(i int, book data.Book, msgs locale.Messages, withStatus bool) []string {
	row := []string{
		strconv.Itoa(i + 1),
		book.Title,
		book.Author,
		strconv.Itoa(book.Year),
	}
	if withStatus {
		row = append(row, msgs.Status(book.Available))
	}
	return row
}
