package data

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE SEQUENCE IF NOT EXISTS books_position_seq START 1;
CREATE TABLE IF NOT EXISTS books (
	position  INTEGER PRIMARY KEY DEFAULT nextval('books_position_seq'),
	title     VARCHAR NOT NULL,
	title_key VARCHAR NOT NULL UNIQUE,
	author    VARCHAR NOT NULL,
	year      INTEGER NOT NULL,
	available BOOLEAN NOT NULL DEFAULT TRUE
);`

// InitDuckDB opens a DuckDB database and creates the books table. An empty
// path opens an in-memory database.
func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	// One connection keeps every query on the same in-memory database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

type DuckDBRepository struct {
	db *sql.DB
}

// NewDuckDBRepository returns a repository over a fresh in-memory database.
// Nothing is written to disk, so the catalog still ends with the process.
func NewDuckDBRepository() (*DuckDBRepository, error) {
	db, err := InitDuckDB("")
	if err != nil {
		return nil, err
	}
	return &DuckDBRepository{db: db}, nil
}

func (r *DuckDBRepository) FindBook(key string) (*Book, error) {
	book := &Book{}
	err := r.db.QueryRow(
		`SELECT title, author, year, available FROM books WHERE title_key = ?`,
		key,
	).Scan(&book.Title, &book.Author, &book.Year, &book.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find book: %w", err)
	}
	return book, nil
}

func (r *DuckDBRepository) SaveBook(book *Book) error {
	if book == nil {
		return fmt.Errorf("book cannot be nil")
	}
	_, err := r.db.Exec(
		`INSERT INTO books (title, title_key, author, year, available) VALUES (?, ?, ?, ?, ?)`,
		book.Title, book.Key(), book.Author, book.Year, book.Available,
	)
	if err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}
	return nil
}

func (r *DuckDBRepository) UpdateAvailability(key string, available bool) error {
	res, err := r.db.Exec(`UPDATE books SET available = ? WHERE title_key = ?`, available, key)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrBookNotStored, key)
	}
	return nil
}

func (r *DuckDBRepository) ListBooks() ([]*Book, error) {
	rows, err := r.db.Query(`SELECT title, author, year, available FROM books ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		book := &Book{}
		if err := rows.Scan(&book.Title, &book.Author, &book.Year, &book.Available); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func (r *DuckDBRepository) Close() error {
	return r.db.Close()
}
