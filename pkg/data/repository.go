package data

import (
	"errors"
	"fmt"
)

var ErrBookNotStored = errors.New("book not stored")

// Repository is the storage port used by the catalog service. Returned books
// are copies; mutating them does not change what is stored.
type Repository interface {
	FindBook(key string) (*Book, error)
	SaveBook(book *Book) error
	UpdateAvailability(key string, available bool) error
	ListBooks() ([]*Book, error)
	Close() error
}

// MemoryRepository keeps books in insertion order in a slice.
type MemoryRepository struct {
	books []Book
	index map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		books: []Book{},
		index: make(map[string]int),
	}
}

func (r *MemoryRepository) FindBook(key string) (*Book, error) {
	i, ok := r.index[key]
	if !ok {
		return nil, nil
	}
	book := r.books[i]
	return &book, nil
}

func (r *MemoryRepository) SaveBook(book *Book) error {
	if book == nil {
		return fmt.Errorf("book cannot be nil")
	}
	key := book.Key()
	if _, ok := r.index[key]; ok {
		return fmt.Errorf("book %q already stored", book.Title)
	}
	r.index[key] = len(r.books)
	r.books = append(r.books, *book)
	return nil
}

func (r *MemoryRepository) UpdateAvailability(key string, available bool) error {
	i, ok := r.index[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBookNotStored, key)
	}
	r.books[i].Available = available
	return nil
}

func (r *MemoryRepository) ListBooks() ([]*Book, error) {
	books := make([]*Book, len(r.books))
	for i := range r.books {
		book := r.books[i]
		books[i] = &book
	}
	return books, nil
}

func (r *MemoryRepository) Close() error {
	return nil
}
