package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Messages holds every string shown to the user. Fields ending in "f" are
// format strings.
type Messages struct {
	Welcome string
	Goodbye string

	MenuTitle      string
	MenuAdd        string
	MenuBorrow     string
	MenuReturn     string
	MenuListAll    string
	MenuListAvail  string
	MenuQuit       string
	ChoicePrompt   string
	InvalidChoicef string
	ErrorPrefix    string

	AddTitle     string
	BorrowTitle  string
	ReturnTitle  string
	TitlePrompt  string
	AuthorPrompt string
	YearPrompt   string
	BorrowPrompt string
	ReturnPrompt string

	Addedf    string
	Borrowedf string
	Returnedf string

	NothingToBorrow string
	NothingOnLoan   string

	AllBooksTitle       string
	AvailableBooksTitle string
	NoBooks             string
	NoAvailableBooks    string

	ColumnTitle  string
	ColumnAuthor string
	ColumnYear   string
	ColumnStatus string

	StatusAvailable string
	StatusBorrowed  string

	EmptyTitle     string
	EmptyAuthor    string
	InvalidYear    string
	YearOutOfRange string

	DuplicateTitle string
	NotFound       string
	NotAvailable   string
	NotOnLoan      string

	TUIHelp  string
	FormHelp string
	ListHelp string
}

var English = Messages{
	Welcome: "Welcome to the library manager!",
	Goodbye: "Thanks for using the library manager!",

	MenuTitle:      "LIBRARY MANAGEMENT",
	MenuAdd:        "Add a book",
	MenuBorrow:     "Borrow a book",
	MenuReturn:     "Return a book",
	MenuListAll:    "Show all books",
	MenuListAvail:  "Show available books",
	MenuQuit:       "Quit",
	ChoicePrompt:   "Your choice: ",
	InvalidChoicef: "Invalid choice. Please choose an option between 1 and %d.",
	ErrorPrefix:    "Error: ",

	AddTitle:     "ADD A BOOK",
	BorrowTitle:  "BORROW A BOOK",
	ReturnTitle:  "RETURN A BOOK",
	TitlePrompt:  "Title: ",
	AuthorPrompt: "Author: ",
	YearPrompt:   "Publication year: ",
	BorrowPrompt: "Title of the book to borrow: ",
	ReturnPrompt: "Title of the book to return: ",

	Addedf:    "Book '%s' added successfully!",
	Borrowedf: "Book '%s' borrowed successfully!",
	Returnedf: "Book '%s' returned successfully!",

	NothingToBorrow: "No books available to borrow.",
	NothingOnLoan:   "No books are currently on loan.",

	AllBooksTitle:       "ALL BOOKS",
	AvailableBooksTitle: "AVAILABLE BOOKS",
	NoBooks:             "No books in the library.",
	NoAvailableBooks:    "No books available.",

	ColumnTitle:  "Title",
	ColumnAuthor: "Author",
	ColumnYear:   "Year",
	ColumnStatus: "Status",

	StatusAvailable: "Available",
	StatusBorrowed:  "Borrowed",

	EmptyTitle:     "The title cannot be empty.",
	EmptyAuthor:    "The author cannot be empty.",
	InvalidYear:    "Please enter a valid year.",
	YearOutOfRange: "The year must be between 1000 and 2025.",

	DuplicateTitle: "A book with this title already exists.",
	NotFound:       "Book not found.",
	NotAvailable:   "This book is not available.",
	NotOnLoan:      "This book was not borrowed.",

	TUIHelp:  "1-6: choose • q: quit",
	FormHelp: "tab: next field • enter: submit • esc: back",
	ListHelp: "↑/k: up • ↓/j: down • esc: back",
}

var French = Messages{
	Welcome: "Bienvenue dans le gestionnaire de bibliothèque !",
	Goodbye: "Merci d'avoir utilisé le gestionnaire de bibliothèque !",

	MenuTitle:      "GESTION DE BIBLIOTHÈQUE",
	MenuAdd:        "Ajouter un livre",
	MenuBorrow:     "Emprunter un livre",
	MenuReturn:     "Retourner un livre",
	MenuListAll:    "Afficher tous les livres",
	MenuListAvail:  "Afficher les livres disponibles",
	MenuQuit:       "Quitter",
	ChoicePrompt:   "Votre choix : ",
	InvalidChoicef: "Choix invalide. Veuillez choisir une option entre 1 et %d.",
	ErrorPrefix:    "Erreur : ",

	AddTitle:     "AJOUTER UN LIVRE",
	BorrowTitle:  "EMPRUNTER UN LIVRE",
	ReturnTitle:  "RETOURNER UN LIVRE",
	TitlePrompt:  "Titre : ",
	AuthorPrompt: "Auteur : ",
	YearPrompt:   "Année de publication : ",
	BorrowPrompt: "Titre du livre à emprunter : ",
	ReturnPrompt: "Titre du livre à retourner : ",

	Addedf:    "Livre '%s' ajouté avec succès !",
	Borrowedf: "Livre '%s' emprunté avec succès !",
	Returnedf: "Livre '%s' retourné avec succès !",

	NothingToBorrow: "Aucun livre disponible pour l'emprunt.",
	NothingOnLoan:   "Aucun livre n'est actuellement emprunté.",

	AllBooksTitle:       "TOUS LES LIVRES",
	AvailableBooksTitle: "LIVRES DISPONIBLES",
	NoBooks:             "Aucun livre dans la bibliothèque.",
	NoAvailableBooks:    "Aucun livre disponible.",

	ColumnTitle:  "Titre",
	ColumnAuthor: "Auteur",
	ColumnYear:   "Année",
	ColumnStatus: "Statut",

	StatusAvailable: "Disponible",
	StatusBorrowed:  "Emprunté",

	EmptyTitle:     "Le titre ne peut pas être vide.",
	EmptyAuthor:    "L'auteur ne peut pas être vide.",
	InvalidYear:    "Veuillez entrer une année valide.",
	YearOutOfRange: "L'année doit être entre 1000 et 2025.",

	DuplicateTitle: "Un livre avec ce titre existe déjà.",
	NotFound:       "Livre non trouvé.",
	NotAvailable:   "Ce livre n'est pas disponible.",
	NotOnLoan:      "Ce livre n'était pas emprunté.",

	TUIHelp:  "1-6 : choisir • q : quitter",
	FormHelp: "tab : champ suivant • entrée : valider • échap : retour",
	ListHelp: "↑/k : haut • ↓/j : bas • échap : retour",
}

var (
	supported = []language.Tag{language.English, language.French}
	sets      = []Messages{English, French}
	matcher   = language.NewMatcher(supported)
)

// Lookup returns the message set closest to the given BCP 47 tag. Tags with
// no reasonable match fall back to English.
func Lookup(tag string) (Messages, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return English, fmt.Errorf("invalid language %q: %w", tag, err)
	}
	_, index, confidence := matcher.Match(t)
	if confidence == language.No {
		return English, nil
	}
	return sets[index], nil
}

// Status returns the label for a book's availability.
func (m Messages) Status(available bool) string {
	if available {
		return m.StatusAvailable
	}
	return m.StatusBorrowed
}
