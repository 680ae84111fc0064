package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kerbaras/library/pkg/app/components"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/locale"
	"github.com/kerbaras/library/pkg/services"
)

// Console drives the catalog through a line-based text menu.
type Console struct {
	catalog *services.Catalog
	msgs    locale.Messages
	in      io.Reader
	out     io.Writer
	logger  *slog.Logger

	reader *lineReader
}

func New(catalog *services.Catalog, msgs locale.Messages, in io.Reader, out io.Writer, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		catalog: catalog,
		msgs:    msgs,
		in:      in,
		out:     out,
		logger:  logger,
	}
}

// Run shows the menu until the user quits. It returns nil on quit and
// ErrInputClosed if the input ends first.
func (c *Console) Run(ctx context.Context) error {
	c.reader = newLineReader(c.in)
	defer c.reader.Close()

	c.println(styles.TitleStyle.Render(c.msgs.Welcome))

	for {
		c.println("")
		c.print(components.RenderMenu(c.msgs))
		c.print(c.msgs.ChoicePrompt)

		choice, err := c.reader.ReadLine(ctx)
		if err != nil {
			return err
		}

		action, ok := components.ParseChoice(choice)
		if !ok {
			c.println(fmt.Sprintf(c.msgs.InvalidChoicef, components.MenuSize))
			continue
		}
		c.logger.Debug("menu choice", "action", action.Label(locale.English))

		switch action {
		case components.ActionAdd:
			err = c.addBook(ctx)
		case components.ActionBorrow:
			err = c.borrowBook(ctx)
		case components.ActionReturn:
			err = c.returnBook(ctx)
		case components.ActionListAll:
			c.listAll()
		case components.ActionListAvailable:
			c.listAvailable()
		case components.ActionQuit:
			c.println(c.msgs.Goodbye)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addBook(ctx context.Context) error {
	c.heading(c.msgs.AddTitle)

	input, err := c.prompt(ctx, c.msgs.TitlePrompt)
	if err != nil {
		return err
	}
	title, err := services.ValidateTitle(input)
	if err != nil {
		c.failure(err)
		return nil
	}

	input, err = c.prompt(ctx, c.msgs.AuthorPrompt)
	if err != nil {
		return err
	}
	author, err := services.ValidateAuthor(input)
	if err != nil {
		c.failure(err)
		return nil
	}

	input, err = c.prompt(ctx, c.msgs.YearPrompt)
	if err != nil {
		return err
	}
	year, err := services.ParseYear(input)
	if err != nil {
		c.failure(err)
		return nil
	}

	if err := c.catalog.Add(title, author, year); err != nil {
		c.failure(err)
		return nil
	}
	c.success(c.msgs.Addedf, title)
	return nil
}

func (c *Console) borrowBook(ctx context.Context) error {
	c.heading(c.msgs.BorrowTitle)

	_, available, err := c.catalog.Counts()
	if err != nil {
		c.failure(err)
		return nil
	}
	if available == 0 {
		c.println(c.msgs.NothingToBorrow)
		return nil
	}

	title, ok, err := c.promptTitle(ctx, c.msgs.BorrowPrompt)
	if err != nil || !ok {
		return err
	}

	if err := c.catalog.Borrow(title); err != nil {
		c.failure(err)
		return nil
	}
	c.success(c.msgs.Borrowedf, title)
	return nil
}

func (c *Console) returnBook(ctx context.Context) error {
	c.heading(c.msgs.ReturnTitle)

	total, available, err := c.catalog.Counts()
	if err != nil {
		c.failure(err)
		return nil
	}
	if total == available {
		c.println(c.msgs.NothingOnLoan)
		return nil
	}

	title, ok, err := c.promptTitle(ctx, c.msgs.ReturnPrompt)
	if err != nil || !ok {
		return err
	}

	if err := c.catalog.Return(title); err != nil {
		c.failure(err)
		return nil
	}
	c.success(c.msgs.Returnedf, title)
	return nil
}

func (c *Console) listAll() {
	books, err := c.catalog.ListAll()
	if err != nil {
		c.failure(err)
		return
	}
	if len(books) == 0 {
		c.println(c.msgs.NoBooks)
		return
	}

	c.heading(c.msgs.AllBooksTitle)
	c.println(components.RenderBooks(books, c.msgs, true))
}

func (c *Console) listAvailable() {
	books, err := c.catalog.ListAvailable()
	if err != nil {
		c.failure(err)
		return
	}
	if len(books) == 0 {
		c.println(c.msgs.NoAvailableBooks)
		return
	}

	c.heading(c.msgs.AvailableBooksTitle)
	c.println(components.RenderBooks(books, c.msgs, false))
}

// promptTitle reads a title; ok is false when the title was rejected.
func (c *Console) promptTitle(ctx context.Context, prompt string) (string, bool, error) {
	input, err := c.prompt(ctx, prompt)
	if err != nil {
		return "", false, err
	}
	title, err := services.ValidateTitle(input)
	if err != nil {
		c.failure(err)
		return "", false, nil
	}
	return title, true, nil
}

func (c *Console) prompt(ctx context.Context, label string) (string, error) {
	c.print(label)
	return c.reader.ReadLine(ctx)
}

func (c *Console) heading(title string) {
	c.println("")
	c.println(styles.TitleStyle.Render("=== " + title + " ==="))
}

func (c *Console) success(format string, title string) {
	c.println(styles.SuccessStyle.Render(fmt.Sprintf(format, title)))
}

// Validation failures are printed the same way as catalog errors.
func (c *Console) failure(err error) {
	c.println(styles.ErrorStyle.Render(c.msgs.ErrorPrefix + components.ErrorMessage(c.msgs, err)))
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
