package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/library/pkg/app/screens"
	"github.com/kerbaras/library/pkg/locale"
	"github.com/kerbaras/library/pkg/services"
)

type App struct {
	catalog *services.Catalog
	msgs    locale.Messages
}

func NewApp(catalog *services.Catalog, msgs locale.Messages) *App {
	return &App{catalog: catalog, msgs: msgs}
}

func (a *App) Run(ctx context.Context) error {
	model := screens.NewRootScreen(a.catalog, a.msgs)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
