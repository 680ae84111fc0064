package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/library/pkg/app/components"
	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/locale"
	"github.com/kerbaras/library/pkg/services"
)

type screenType int

const (
	menuView screenType = iota
	formView
	promptView
	libraryView
)

// RootScreen owns the catalog for the lifetime of the program. Catalog calls
// happen inside Update only, never from commands.
type RootScreen struct {
	catalog *services.Catalog
	msgs    locale.Messages

	currentView  screenType
	promptAction components.Action
	form         *FormScreen
	prompt       *PromptScreen
	library      *LibraryScreen
	feedback     components.Feedback

	width  int
	height int
}

func NewRootScreen(catalog *services.Catalog, msgs locale.Messages) *RootScreen {
	return &RootScreen{
		catalog:     catalog,
		msgs:        msgs,
		currentView: menuView,
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return nil
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "esc":
			if r.currentView != menuView {
				r.currentView = menuView
				return r, nil
			}
		}
		if r.currentView == menuView {
			return r.handleMenuKey(msg)
		}
	}

	// Forward message to active screen
	var cmd tea.Cmd
	switch r.currentView {
	case formView:
		r.form, cmd = r.form.Update(msg)
		if values, ok := r.form.Submitted(); ok {
			r.addBook(values)
			r.currentView = menuView
		}
	case promptView:
		r.prompt, cmd = r.prompt.Update(msg)
		if title, ok := r.prompt.Submitted(); ok {
			r.changeAvailability(title)
			r.currentView = menuView
		}
	case libraryView:
		r.library, cmd = r.library.Update(msg)
	}

	return r, cmd
}

func (r *RootScreen) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" {
		return r, tea.Quit
	}

	action, ok := components.ParseChoice(msg.String())
	if !ok {
		r.feedback.Error(r.msgs, fmt.Errorf(r.msgs.InvalidChoicef, components.MenuSize))
		return r, nil
	}
	r.feedback.Clear()

	switch action {
	case components.ActionAdd:
		r.form = NewFormScreen(r.msgs)
		r.currentView = formView
		return r, r.form.Init()

	case components.ActionBorrow, components.ActionReturn:
		return r, r.openPrompt(action)

	case components.ActionListAll, components.ActionListAvailable:
		r.openLibrary(action == components.ActionListAll)

	case components.ActionQuit:
		return r, tea.Quit
	}

	return r, nil
}

// openPrompt skips the title prompt when there is nothing to borrow or
// nothing to return.
func (r *RootScreen) openPrompt(action components.Action) tea.Cmd {
	total, available, err := r.catalog.Counts()
	if err != nil {
		r.feedback.Error(r.msgs, err)
		return nil
	}

	heading, label := r.msgs.BorrowTitle, r.msgs.BorrowPrompt
	if action == components.ActionBorrow && available == 0 {
		r.feedback.Info(r.msgs.NothingToBorrow)
		return nil
	}
	if action == components.ActionReturn {
		if total == available {
			r.feedback.Info(r.msgs.NothingOnLoan)
			return nil
		}
		heading, label = r.msgs.ReturnTitle, r.msgs.ReturnPrompt
	}

	r.promptAction = action
	r.prompt = NewPromptScreen(r.msgs, heading, label)
	r.currentView = promptView
	return r.prompt.Init()
}

func (r *RootScreen) openLibrary(all bool) {
	list := r.catalog.ListAvailable
	if all {
		list = r.catalog.ListAll
	}
	books, err := list()
	if err != nil {
		r.feedback.Error(r.msgs, err)
		return
	}
	r.library = NewLibraryScreen(r.msgs, books, all, r.height)
	r.currentView = libraryView
}

func (r *RootScreen) addBook(values BookForm) {
	title, err := services.ValidateTitle(values.Title)
	if err != nil {
		r.feedback.Error(r.msgs, err)
		return
	}
	author, err := services.ValidateAuthor(values.Author)
	if err != nil {
		r.feedback.Error(r.msgs, err)
		return
	}
	year, err := services.ParseYear(values.Year)
	if err != nil {
		r.feedback.Error(r.msgs, err)
		return
	}

	if err := r.catalog.Add(title, author, year); err != nil {
		r.feedback.Error(r.msgs, err)
		return
	}
	r.feedback.Success(r.msgs.Addedf, title)
}

func (r *RootScreen) changeAvailability(input string) {
	title, err := services.ValidateTitle(input)
	if err != nil {
		r.feedback.Error(r.msgs, err)
		return
	}

	if r.promptAction == components.ActionBorrow {
		err = r.catalog.Borrow(title)
	} else {
		err = r.catalog.Return(title)
	}
	if err != nil {
		r.feedback.Error(r.msgs, err)
		return
	}

	if r.promptAction == components.ActionBorrow {
		r.feedback.Success(r.msgs.Borrowedf, title)
	} else {
		r.feedback.Success(r.msgs.Returnedf, title)
	}
}

func (r *RootScreen) View() string {
	var content string
	switch r.currentView {
	case formView:
		content = r.form.View()
	case promptView:
		content = r.prompt.View()
	case libraryView:
		content = r.library.View()
	default:
		content = r.menuView()
	}

	return styles.CardStyle.Render(content)
}

func (r *RootScreen) menuView() string {
	menu := components.RenderMenu(r.msgs)
	if feedback := r.feedback.View(); feedback != "" {
		menu += "\n" + feedback + "\n"
	}
	return fmt.Sprintf("%s\n%s", menu, styles.HelpStyle.Render(r.msgs.TUIHelp))
}
