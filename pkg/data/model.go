package data

import "strings"

type Book struct {
	Title     string
	Author    string
	Year      int
	Available bool
}

// NewBook returns a book that is on the shelf.
func NewBook(title, author string, year int) *Book {
	return &Book{
		Title:     title,
		Author:    author,
		Year:      year,
		Available: true,
	}
}

// Key is the lookup key for the book's title.
func (b *Book) Key() string {
	return TitleKey(b.Title)
}

// TitleKey normalizes a title for case-insensitive comparison.
func TitleKey(title string) string {
	return strings.ToLower(title)
}
