package app

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pokedex/pkg/app/screens"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/config"
	"github.com/kerbaras/pokedex/pkg/sprites"
)

// sprite box in cells
const (
	spriteWidth  = 32
	spriteHeight = 16
)

type App struct {
	cfg *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run(ctx context.Context) error {
	renderer := screens.NewChannelRenderer(a.cfg.BatchSize*2 + 4)

	session, err := NewSession(a.cfg, renderer)
	if err != nil {
		return err
	}
	defer session.Close()

	theme, err := session.Controller.LoadTheme()
	if err != nil {
		slog.Warn("failed to read theme, using light", slog.Any("error", err))
	}
	styles.Apply(theme)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	spriteRenderer := sprites.NewRenderer(session.Client, spriteWidth, spriteHeight)
	model := screens.NewRootScreen(ctx, session.Controller, renderer, spriteRenderer, a.cfg.CellWidthPx)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
