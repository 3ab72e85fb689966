package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/components"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/services"
	"github.com/kerbaras/pokedex/pkg/sprites"
)

const closeLabel = "✕ close"

// DetailsScreen is the fullscreen view of one record. The box in the middle
// is the content; everything around it is backdrop.
type DetailsScreen struct {
	ctx        context.Context
	controller *services.Controller
	sprites    *sprites.Renderer
	view       *services.DetailView
	sprite     string
	spriteErr  error
	width      int
	height     int
	err        error
}

func NewDetailsScreen(ctx context.Context, controller *services.Controller, spriteRenderer *sprites.Renderer, view *services.DetailView) *DetailsScreen {
	return &DetailsScreen{
		ctx:        ctx,
		controller: controller,
		sprites:    spriteRenderer,
		view:       view,
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return s.loadSprite(s.view.Index, s.view.Record.ImageURL)
}

// Index is the catalogue index currently shown.
func (s *DetailsScreen) Index() int {
	return s.view.Index
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.view.Chart.Redraw()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			return s, s.navigate(s.controller.Previous)
		case key.Matches(msg, keys.Right):
			return s, s.navigate(s.controller.Next)
		case key.Matches(msg, keys.Close):
			return s, s.dismiss(services.TargetCloseControl)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return s, nil
		}
		return s, s.dismiss(s.targetAt(msg.X, msg.Y))

	case spriteLoadedMsg:
		if msg.index != s.view.Index {
			return s, nil
		}
		s.sprite = msg.art
		s.spriteErr = msg.err
	}

	return s, nil
}

func (s *DetailsScreen) navigate(step func(int) (*services.DetailView, error)) tea.Cmd {
	view, err := step(s.view.Index)
	if err != nil {
		s.err = err
		return nil
	}
	s.view = view
	s.sprite = ""
	s.spriteErr = nil
	s.err = nil
	return s.loadSprite(view.Index, view.Record.ImageURL)
}

func (s *DetailsScreen) dismiss(target services.DismissTarget) tea.Cmd {
	if !s.controller.Close(target) {
		return nil
	}
	return func() tea.Msg {
		return SwitchScreenMsg{Screen: "catalogue", Data: nil}
	}
}

// targetAt classifies a click at cell (x, y) against the current layout.
func (s *DetailsScreen) targetAt(x, y int) services.DismissTarget {
	box := s.renderBox()
	boxWidth := lipgloss.Width(box)
	boxHeight := lipgloss.Height(box)
	closeWidth := lipgloss.Width(closeLabel)

	left, top := s.origin(boxWidth, boxHeight+1)
	right := left + boxWidth

	switch {
	case y == top && x >= right-closeWidth && x < right:
		return services.TargetCloseControl
	case y > top && y <= top+boxHeight && x >= left && x < right:
		return services.TargetContent
	default:
		return services.TargetBackdrop
	}
}

// origin is the top-left cell of a w x h block centred on the screen.
func (s *DetailsScreen) origin(w, h int) (int, int) {
	return max((s.width-w)/2, 0), max((s.height-h)/2, 0)
}

func (s *DetailsScreen) renderBox() string {
	rec := s.view.Record

	title := styles.TitleStyle.Render(fmt.Sprintf("#%d %s", s.view.Index, rec.DisplayName()))
	badges := components.TypeBadges(rec)
	measures := styles.TextStyle.Render(fmt.Sprintf(
		"Height: %.1f m   Weight: %.1f kg   XP: %d",
		s.view.HeightMeters, s.view.WeightKilograms, rec.Experience,
	))

	var art string
	switch {
	case s.spriteErr != nil:
		art = styles.MutedStyle.Render("(no image)")
	case s.sprite == "":
		art = styles.MutedStyle.Render("loading image...")
	default:
		art = s.sprite
	}

	chartWidth := min(max(s.width-16, 20), 60)
	chart := components.RenderStatChart(s.view.Chart, chartWidth)

	parts := []string{title, badges, "", measures, "", art, "", chart}
	if s.err != nil {
		parts = append(parts, "", styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)))
	}
	parts = append(parts, helpLine(keys.Left, keys.Right, keys.Close, keys.Theme))

	return styles.OverlayStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (s *DetailsScreen) View() string {
	box := s.renderBox()
	closeControl := styles.CloseStyle.Render(closeLabel)
	block := lipgloss.JoinVertical(lipgloss.Right, closeControl, box)

	if s.width == 0 {
		return block
	}
	left, top := s.origin(lipgloss.Width(block), lipgloss.Height(block))
	return lipgloss.NewStyle().MarginLeft(left).MarginTop(top).Render(block)
}

// Messages
type spriteLoadedMsg struct {
	index int
	art   string
	err   error
}

// Commands
func (s *DetailsScreen) loadSprite(index int, url string) tea.Cmd {
	if s.sprites == nil {
		return func() tea.Msg {
			return spriteLoadedMsg{index: index, err: sprites.ErrNoImage}
		}
	}
	return func() tea.Msg {
		art, err := s.sprites.Render(s.ctx, url)
		return spriteLoadedMsg{index: index, art: art, err: err}
	}
}
