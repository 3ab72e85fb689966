package screens

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/services"
	"github.com/kerbaras/pokedex/pkg/sprites"
)

type screenType int

const (
	catalogueView screenType = iota
	detailsView
)

type RootScreen struct {
	ctx         context.Context
	controller  *services.Controller
	sprites     *sprites.Renderer
	cellWidthPx int

	currentView screenType
	catalogue   *CatalogueScreen
	details     *DetailsScreen

	width  int
	height int
	err    error
}

func NewRootScreen(ctx context.Context, controller *services.Controller, renderer *ChannelRenderer, spriteRenderer *sprites.Renderer, cellWidthPx int) *RootScreen {
	if cellWidthPx <= 0 {
		cellWidthPx = 8
	}
	return &RootScreen{
		ctx:         ctx,
		controller:  controller,
		sprites:     spriteRenderer,
		cellWidthPx: cellWidthPx,
		currentView: catalogueView,
		catalogue:   NewCatalogueScreen(ctx, controller, renderer),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.catalogue.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.controller.Resize(msg.Width * r.cellWidthPx)
		// both screens keep their layout current
		r.catalogue.Update(msg)
		if r.details != nil {
			r.details.Update(msg)
		}
		return r, nil

	case tea.KeyMsg:
		typing := r.currentView == catalogueView && r.catalogue.Typing()
		switch {
		case msg.Type == tea.KeyCtrlC:
			return r, tea.Quit
		case typing:
			// keys belong to the search box
		case key.Matches(msg, keys.Quit):
			return r, tea.Quit
		case key.Matches(msg, keys.Theme):
			return r, r.toggleTheme
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "catalogue":
			r.currentView = catalogueView
			r.details = nil
		case "details":
			if index, ok := msg.Data.(int); ok {
				view, err := r.controller.Open(index)
				if err != nil {
					r.err = err
					return r, nil
				}
				r.details = NewDetailsScreen(r.ctx, r.controller, r.sprites, view)
				r.details.Update(tea.WindowSizeMsg{Width: r.width, Height: r.height})
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd

	case themeChangedMsg:
		if msg.err != nil {
			r.err = msg.err
			return r, nil
		}
		styles.Apply(msg.theme)
		return r, nil

	case CardRenderedMsg, LoadingMsg, batchLoadedMsg, spinner.TickMsg:
		// the catalogue keeps loading while a record is open
		newModel, newCmd := r.catalogue.Update(msg)
		r.catalogue = newModel.(*CatalogueScreen)
		return r, newCmd
	}

	switch r.currentView {
	case catalogueView:
		newModel, newCmd := r.catalogue.Update(msg)
		r.catalogue = newModel.(*CatalogueScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	var content string
	switch r.currentView {
	case catalogueView:
		content = r.catalogue.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	if r.err != nil {
		content += "\n" + styles.StatusError.Render("Error: "+r.err.Error())
	}
	return content
}

// Messages
type themeChangedMsg struct {
	theme data.Theme
	err   error
}

// Commands
func (r *RootScreen) toggleTheme() tea.Msg {
	theme, err := r.controller.ToggleTheme()
	return themeChangedMsg{theme: theme, err: err}
}
