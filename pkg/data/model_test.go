package data

import "testing"

func TestNewBookIsAvailable(t *testing.T) {
	book := NewBook("Dune", "Herbert", 1965)

	if !book.Available {
		t.Error("Expected new book to be available")
	}
	if book.Title != "Dune" {
		t.Errorf("Expected Title 'Dune', got '%s'", book.Title)
	}
	if book.Year != 1965 {
		t.Errorf("Expected Year 1965, got %d", book.Year)
	}
}

func TestBookKey(t *testing.T) {
	book := NewBook("The Left Hand of Darkness", "Le Guin", 1969)

	if book.Key() != "the left hand of darkness" {
		t.Errorf("Expected lowercased key, got '%s'", book.Key())
	}
	// Display title stays as entered
	if book.Title != "The Left Hand of Darkness" {
		t.Errorf("Title was modified: '%s'", book.Title)
	}
	if TitleKey("DUNE") != "dune" {
		t.Errorf("Expected TitleKey to lowercase, got '%s'", TitleKey("DUNE"))
	}
}
