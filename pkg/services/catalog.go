package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kerbaras/library/pkg/data"
)

var (
	ErrDuplicateTitle = errors.New("a book with this title already exists")
	ErrNotFound       = errors.New("book not found")
	ErrNotAvailable   = errors.New("book is not available")
	ErrNotOnLoan      = errors.New("book is not on loan")
)

// Catalog owns the book collection and enforces title uniqueness and the
// available/borrowed transitions. It is not safe for concurrent use.
type Catalog struct {
	repo   data.Repository
	logger *slog.Logger
}

func NewCatalog(repo data.Repository, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{repo: repo, logger: logger}
}

// Add appends a new, available book. Titles are unique ignoring case.
func (c *Catalog) Add(title, author string, year int) error {
	book := data.NewBook(title, author, year)

	existing, err := c.repo.FindBook(book.Key())
	if err != nil {
		return c.storageError("add", title, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateTitle, title)
	}

	if err := c.repo.SaveBook(book); err != nil {
		return c.storageError("add", title, err)
	}

	c.logger.Debug("book added", "title", title, "author", author, "year", year)
	return nil
}

// Borrow marks an available book as checked out.
func (c *Catalog) Borrow(title string) error {
	book, err := c.lookup("borrow", title)
	if err != nil {
		return err
	}
	if !book.Available {
		return fmt.Errorf("%w: %q", ErrNotAvailable, book.Title)
	}
	return c.setAvailable("borrow", book, false)
}

// Return puts a borrowed book back on the shelf.
func (c *Catalog) Return(title string) error {
	book, err := c.lookup("return", title)
	if err != nil {
		return err
	}
	if book.Available {
		return fmt.Errorf("%w: %q", ErrNotOnLoan, book.Title)
	}
	return c.setAvailable("return", book, true)
}

// ListAll returns every book in insertion order.
func (c *Catalog) ListAll() ([]data.Book, error) {
	books, err := c.repo.ListBooks()
	if err != nil {
		return nil, c.storageError("list", "", err)
	}

	result := make([]data.Book, 0, len(books))
	for _, book := range books {
		result = append(result, *book)
	}
	return result, nil
}

// ListAvailable returns the books on the shelf, keeping insertion order.
func (c *Catalog) ListAvailable() ([]data.Book, error) {
	books, err := c.ListAll()
	if err != nil {
		return nil, err
	}

	available := make([]data.Book, 0, len(books))
	for _, book := range books {
		if book.Available {
			available = append(available, book)
		}
	}
	return available, nil
}

// Counts reports how many books are held and how many of them are on the
// shelf.
func (c *Catalog) Counts() (total, available int, err error) {
	books, err := c.ListAll()
	if err != nil {
		return 0, 0, err
	}
	for _, book := range books {
		if book.Available {
			available++
		}
	}
	return len(books), available, nil
}

func (c *Catalog) lookup(op, title string) (*data.Book, error) {
	book, err := c.repo.FindBook(data.TitleKey(title))
	if err != nil {
		return nil, c.storageError(op, title, err)
	}
	if book == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return book, nil
}

func (c *Catalog) setAvailable(op string, book *data.Book, available bool) error {
	if err := c.repo.UpdateAvailability(book.Key(), available); err != nil {
		return c.storageError(op, book.Title, err)
	}
	c.logger.Debug("book availability changed", "op", op, "title", book.Title, "available", available)
	return nil
}

func (c *Catalog) storageError(op, title string, err error) error {
	c.logger.Error("catalog storage failure", "op", op, "title", title, "err", err)
	return fmt.Errorf("failed to %s book: %w", op, err)
}
