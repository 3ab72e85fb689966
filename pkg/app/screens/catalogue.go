package screens

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/components"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/services"
)

type loadKind int

const (
	loadNone loadKind = iota
	loadInitial
	loadMore
)

// chrome is the number of lines around the card viewport.
const chrome = 11

type CatalogueScreen struct {
	ctx        context.Context
	controller *services.Controller
	renderer   *ChannelRenderer
	grid       *components.CardGrid
	input      textinput.Model
	spinner    spinner.Model
	viewport   viewport.Model
	loading    bool
	failed     loadKind
	width      int
	height     int
	err        error
}

func NewCatalogueScreen(ctx context.Context, controller *services.Controller, renderer *ChannelRenderer) *CatalogueScreen {
	ti := textinput.New()
	ti.Placeholder = "Search Pokémon..."
	ti.CharLimit = 50
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusLoading

	return &CatalogueScreen{
		ctx:        ctx,
		controller: controller,
		renderer:   renderer,
		grid:       components.NewCardGrid(),
		input:      ti,
		spinner:    sp,
		viewport:   viewport.New(80, 20),
	}
}

func (s *CatalogueScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.listenForCards, s.spinner.Tick}
	if s.controller.Len() == 0 {
		cmds = append(cmds, s.load(loadInitial))
	}
	return tea.Batch(cmds...)
}

// Typing reports whether keys currently go to the search box.
func (s *CatalogueScreen) Typing() bool {
	return s.input.Focused()
}

func (s *CatalogueScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.grid.Width = msg.Width - 2
		s.grid.Height = max(msg.Height-chrome, 1)
		s.viewport.Width = msg.Width
		s.viewport.Height = max(msg.Height-chrome, 1)
		s.refresh()

	case tea.KeyMsg:
		if s.input.Focused() {
			return s, s.updateSearch(msg)
		}
		return s, s.handleKey(msg)

	case tea.MouseMsg:
		s.viewport, cmd = s.viewport.Update(msg)
		return s, cmd

	case CardRenderedMsg:
		s.grid.Append(msg.Index, msg.Record)
		s.refresh()
		return s, s.listenForCards

	case LoadingMsg:
		s.loading = msg.Loading
		return s, s.listenForCards

	case batchLoadedMsg:
		switch {
		case msg.err == nil:
			s.err = nil
			s.failed = loadNone
		case errors.Is(msg.err, services.ErrLoadInProgress):
			// a batch is already on its way
		default:
			s.err = msg.err
			if errors.Is(msg.err, services.ErrBatchFailed) {
				s.failed = msg.kind
			}
		}

	case spinner.TickMsg:
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *CatalogueScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Search):
		s.input.Focus()
		return textinput.Blink
	case key.Matches(msg, keys.Left):
		s.grid.Prev()
	case key.Matches(msg, keys.Right):
		s.grid.Next()
	case key.Matches(msg, keys.Up):
		s.grid.Up()
	case key.Matches(msg, keys.Down):
		s.grid.Down()
	case key.Matches(msg, keys.Open):
		if selected := s.grid.Selected(); selected != nil {
			index := selected.Index
			return func() tea.Msg {
				return SwitchScreenMsg{Screen: "details", Data: index}
			}
		}
	case key.Matches(msg, keys.LoadMore):
		if s.loading || s.controller.Len() == 0 {
			return nil
		}
		s.clearSearch()
		return s.load(loadMore)
	case key.Matches(msg, keys.Retry):
		if s.failed == loadNone || s.loading {
			return nil
		}
		kind := s.failed
		s.failed = loadNone
		s.err = nil
		return s.load(kind)
	}
	s.refresh()
	return nil
}

func (s *CatalogueScreen) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		s.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.grid.SetFilter(s.controller.Filter(s.input.Value()))
	s.refresh()
	return cmd
}

// clearSearch empties the query and shows every card again.
func (s *CatalogueScreen) clearSearch() {
	s.input.SetValue("")
	s.input.Blur()
	s.grid.SetFilter(s.controller.Filter(""))
}

// refresh re-renders the grid and keeps the selected row in view.
func (s *CatalogueScreen) refresh() {
	s.viewport.SetContent(s.grid.View())

	rowHeight := s.grid.RowHeight()
	if rowHeight == 0 {
		return
	}
	top := s.grid.HeaderHeight() + s.grid.SelectedRow()*rowHeight
	switch {
	case top < s.viewport.YOffset:
		s.viewport.SetYOffset(top)
	case top+rowHeight > s.viewport.YOffset+s.viewport.Height:
		s.viewport.SetYOffset(top + rowHeight - s.viewport.Height)
	}
}

func (s *CatalogueScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	if s.loading && s.grid.Len() == 0 {
		return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("%s %s", s.spinner.View(), styles.StatusLoading.Render("Loading Pokémon...")))
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("Pokédex (%d loaded)", s.grid.Len()))

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	help := helpLine(keys.Search, keys.Left, keys.Right, keys.Open, keys.LoadMore, keys.Theme, keys.Quit)
	if s.failed != loadNone {
		help = helpLine(keys.Retry, keys.Quit)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		inputView,
		s.statusLine(),
		s.viewport.View(),
		help,
	)
}

func (s *CatalogueScreen) statusLine() string {
	switch {
	case s.loading:
		return fmt.Sprintf("%s %s", s.spinner.View(), styles.StatusLoading.Render("Loading Pokémon..."))
	case s.err != nil && s.failed != loadNone:
		return styles.StatusError.Render(fmt.Sprintf("Error: %s (press r to retry)", s.err))
	case s.err != nil:
		return styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	}

	filter := s.grid.Filter()
	if filter.Active {
		return styles.SubtitleStyle.Render(fmt.Sprintf("%d matching %q", filter.Matches, filter.Query))
	}
	return ""
}

// Messages
type batchLoadedMsg struct {
	kind    loadKind
	records []*data.Record
	err     error
}

// SwitchScreenMsg asks the root screen to change the active screen
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

// Commands
func (s *CatalogueScreen) load(kind loadKind) tea.Cmd {
	return func() tea.Msg {
		var (
			records []*data.Record
			err     error
		)
		if kind == loadInitial {
			records, err = s.controller.LoadInitial(s.ctx)
		} else {
			records, err = s.controller.LoadMore(s.ctx)
		}
		return batchLoadedMsg{kind: kind, records: records, err: err}
	}
}

func (s *CatalogueScreen) listenForCards() tea.Msg {
	return s.renderer.Listen()
}
