package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/kerbaras/library/pkg/data"
	"github.com/kerbaras/library/pkg/locale"
	"github.com/kerbaras/library/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConsole(t *testing.T, catalog *services.Catalog, lines ...string) (string, error) {
	t.Helper()

	if catalog == nil {
		catalog = services.NewCatalog(data.NewMemoryRepository(), nil)
	}
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := New(catalog, locale.English, in, &out, logger).Run(context.Background())
	return out.String(), err
}

func TestQuit(t *testing.T) {
	out, err := runConsole(t, nil, "6")

	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to the library manager!")
	assert.Contains(t, out, "1. Add a book")
	assert.Contains(t, out, "Thanks for using the library manager!")
}

func TestInvalidChoice(t *testing.T) {
	out, err := runConsole(t, nil, "9", "hello", "6")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please choose an option between 1 and 6."))
}

func TestInputClosed(t *testing.T) {
	_, err := runConsole(t, nil, "4")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestAddAndListAll(t *testing.T) {
	catalog := services.NewCatalog(data.NewMemoryRepository(), nil)
	out, err := runConsole(t, catalog,
		"1", "Dune", "Herbert", "1965",
		"1", "dune", "X", "2000",
		"4",
		"6",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "Book 'Dune' added successfully!")
	assert.Contains(t, out, "Error: A book with this title already exists.")
	assert.Contains(t, out, "ALL BOOKS")
	assert.Contains(t, out, "Herbert")
	assert.Contains(t, out, "Available")

	books, err := catalog.ListAll()
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"empty title", []string{"1", ""}, "Error: The title cannot be empty."},
		{"empty author", []string{"1", "Dune", "  "}, "Error: The author cannot be empty."},
		{"year not a number", []string{"1", "Dune", "Herbert", "sixty-five"}, "Error: Please enter a valid year."},
		{"year too early", []string{"1", "Dune", "Herbert", "999"}, "Error: The year must be between 1000 and 2025."},
		{"year too late", []string{"1", "Dune", "Herbert", "2026"}, "Error: The year must be between 1000 and 2025."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := services.NewCatalog(data.NewMemoryRepository(), nil)
			out, err := runConsole(t, catalog, append(tt.lines, "6")...)

			require.NoError(t, err)
			assert.Contains(t, out, tt.want)

			books, err := catalog.ListAll()
			require.NoError(t, err)
			assert.Empty(t, books, "rejected input must not reach the catalog")
		})
	}
}

func TestAddYearBoundaries(t *testing.T) {
	catalog := services.NewCatalog(data.NewMemoryRepository(), nil)
	_, err := runConsole(t, catalog,
		"1", "Oldest", "Someone", "1000",
		"1", "Newest", "Someone", "2025",
		"6",
	)
	require.NoError(t, err)

	books, err := catalog.ListAll()
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, 1000, books[0].Year)
	assert.Equal(t, 2025, books[1].Year)
}

func TestBorrowEmptyCatalog(t *testing.T) {
	out, err := runConsole(t, nil, "2", "6")

	require.NoError(t, err)
	assert.Contains(t, out, "No books available to borrow.")
	assert.NotContains(t, out, "Title of the book to borrow")
}

func TestBorrowNotFound(t *testing.T) {
	catalog := services.NewCatalog(data.NewMemoryRepository(), nil)
	require.NoError(t, catalog.Add("Dune", "Herbert", 1965))

	out, err := runConsole(t, catalog, "2", "Solaris", "6")

	require.NoError(t, err)
	assert.Contains(t, out, "Error: Book not found.")
}

func TestBorrowAndListAvailable(t *testing.T) {
	catalog := services.NewCatalog(data.NewMemoryRepository(), nil)
	require.NoError(t, catalog.Add("1984", "Orwell", 1949))

	out, err := runConsole(t, catalog, "2", "1984", "5", "2", "6")

	require.NoError(t, err)
	assert.Contains(t, out, "Book '1984' borrowed successfully!")
	assert.Contains(t, out, "No books available.")
	assert.Contains(t, out, "No books available to borrow.")
}

func TestBorrowEmptyTitle(t *testing.T) {
	catalog := services.NewCatalog(data.NewMemoryRepository(), nil)
	require.NoError(t, catalog.Add("Dune", "Herbert", 1965))

	out, err := runConsole(t, catalog, "2", "", "6")

	require.NoError(t, err)
	assert.Contains(t, out, "Error: The title cannot be empty.")
}

func TestReturnFlow(t *testing.T) {
	catalog := services.NewCatalog(data.NewMemoryRepository(), nil)
	require.NoError(t, catalog.Add("1984", "Orwell", 1949))
	require.NoError(t, catalog.Add("Dune", "Herbert", 1965))

	out, err := runConsole(t, catalog,
		"3",
		"2", "1984",
		"3", "dune",
		"3", "1984",
		"3",
		"6",
	)

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "No books are currently on loan."))
	assert.Contains(t, out, "Error: This book was not borrowed.")
	assert.Contains(t, out, "Book '1984' returned successfully!")
}

func TestListEmpty(t *testing.T) {
	out, err := runConsole(t, nil, "4", "5", "6")

	require.NoError(t, err)
	assert.Contains(t, out, "No books in the library.")
	assert.Contains(t, out, "No books available.")
}

func TestListAvailableNumbersSubset(t *testing.T) {
	catalog := services.NewCatalog(data.NewMemoryRepository(), nil)
	require.NoError(t, catalog.Add("Dune", "Herbert", 1965))
	require.NoError(t, catalog.Add("Solaris", "Lem", 1961))
	require.NoError(t, catalog.Borrow("Dune"))

	out, err := runConsole(t, catalog, "5", "6")
	require.NoError(t, err)

	assert.Contains(t, out, "AVAILABLE BOOKS")
	assert.NotContains(t, out, "Herbert")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Solaris") {
			assert.Equal(t, "1", strings.Fields(line)[0])
		}
	}
}

func TestFrenchMessages(t *testing.T) {
	var out bytes.Buffer
	catalog := services.NewCatalog(data.NewMemoryRepository(), nil)
	in := strings.NewReader("2\n6\n")

	err := New(catalog, locale.French, in, &out, nil).Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Bienvenue dans le gestionnaire de bibliothèque !")
	assert.Contains(t, out.String(), "Aucun livre disponible pour l'emprunt.")
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	catalog := services.NewCatalog(data.NewMemoryRepository(), nil)

	done := make(chan error, 1)
	go func() {
		done <- New(catalog, locale.English, pr, io.Discard, nil).Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
