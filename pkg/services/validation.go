package services

import (
	"errors"
	"strconv"
	"strings"
)

// Publication years accepted when adding a book.
const (
	MinYear = 1000
	MaxYear = 2025
)

var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrEmptyAuthor    = errors.New("author cannot be empty")
	ErrInvalidYear    = errors.New("year must be a number")
	ErrYearOutOfRange = errors.New("year out of range")
)

// ValidateTitle trims the input and rejects empty titles.
func ValidateTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyTitle
	}
	return s, nil
}

func ValidateAuthor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyAuthor
	}
	return s, nil
}

// ParseYear accepts an unsigned integer between MinYear and MaxYear inclusive.
func ParseYear(s string) (int, error) {
	year, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, ErrInvalidYear
	}
	if year < MinYear || year > MaxYear {
		return 0, ErrYearOutOfRange
	}
	return int(year), nil
}
