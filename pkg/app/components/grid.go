package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/services"
)

type CardItem struct {
	Index  int
	Record *data.Record
}

// CardGrid lays rendered cards out in rows and tracks the selected card
// among the visible ones.
type CardGrid struct {
	Items         []CardItem
	SelectedIndex int // catalogue index of the selected card, 0 when none
	Width         int
	Height        int
	filter        services.FilterResult
}

func NewCardGrid() *CardGrid {
	return &CardGrid{
		Items:  []CardItem{},
		Width:  80,
		Height: 20,
	}
}

// Append adds a card. The first card becomes the selection.
func (g *CardGrid) Append(index int, rec *data.Record) {
	g.Items = append(g.Items, CardItem{Index: index, Record: rec})
	if g.SelectedIndex == 0 && g.IsVisible(index) {
		g.SelectedIndex = index
	}
}

func (g *CardGrid) Len() int {
	return len(g.Items)
}

// SetFilter applies a search result. A selection that became hidden moves to
// the first visible card.
func (g *CardGrid) SetFilter(result services.FilterResult) {
	g.filter = result
	if g.SelectedIndex != 0 && g.IsVisible(g.SelectedIndex) {
		return
	}
	g.SelectedIndex = 0
	if visible := g.visible(); len(visible) > 0 {
		g.SelectedIndex = visible[0].Index
	}
}

func (g *CardGrid) Filter() services.FilterResult {
	return g.filter
}

func (g *CardGrid) IsVisible(index int) bool {
	return g.filter.IsVisible(index)
}

func (g *CardGrid) visible() []CardItem {
	out := make([]CardItem, 0, len(g.Items))
	for _, item := range g.Items {
		if g.IsVisible(item.Index) {
			out = append(out, item)
		}
	}
	return out
}

func (g *CardGrid) VisibleCount() int {
	return len(g.visible())
}

func (g *CardGrid) position() (int, []CardItem) {
	visible := g.visible()
	for i, item := range visible {
		if item.Index == g.SelectedIndex {
			return i, visible
		}
	}
	return -1, visible
}

func (g *CardGrid) move(delta int) {
	pos, visible := g.position()
	if len(visible) == 0 {
		return
	}
	if pos < 0 {
		g.SelectedIndex = visible[0].Index
		return
	}
	pos = (pos + delta) % len(visible)
	if pos < 0 {
		pos += len(visible)
	}
	g.SelectedIndex = visible[pos].Index
}

func (g *CardGrid) Next() {
	g.move(1)
}

func (g *CardGrid) Prev() {
	g.move(-1)
}

func (g *CardGrid) Down() {
	g.move(g.Columns())
}

func (g *CardGrid) Up() {
	g.move(-g.Columns())
}

func (g *CardGrid) Selected() *CardItem {
	pos, visible := g.position()
	if pos < 0 {
		return nil
	}
	item := visible[pos]
	return &item
}

// Columns is the number of cards per row for the current width.
func (g *CardGrid) Columns() int {
	cols := g.Width / cardOuterWidth()
	if cols < 1 {
		return 1
	}
	return cols
}

// SelectedRow is the row of the selected card, for scrolling.
func (g *CardGrid) SelectedRow() int {
	pos, _ := g.position()
	if pos < 0 {
		return 0
	}
	return pos / g.Columns()
}

// HeaderHeight is the number of lines View writes above the first row.
func (g *CardGrid) HeaderHeight() int {
	if len(g.Items) > 0 && g.filter.NoResults {
		return 1
	}
	return 0
}

// RowHeight is the rendered height of one row of cards.
func (g *CardGrid) RowHeight() int {
	if len(g.Items) == 0 {
		return 0
	}
	return lipgloss.Height(RenderCard(g.Items[0].Index, g.Items[0].Record, false))
}

func (g *CardGrid) View() string {
	if len(g.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No Pokémon loaded yet")
		return lipgloss.Place(g.Width, g.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	visible := g.visible()
	cols := g.Columns()

	var b strings.Builder
	if g.filter.NoResults {
		b.WriteString(styles.StatusError.Render("No Pokémon found"))
		b.WriteString("\n")
	}
	for start := 0; start < len(visible); start += cols {
		end := start + cols
		if end > len(visible) {
			end = len(visible)
		}
		row := make([]string, 0, end-start)
		for _, item := range visible[start:end] {
			row = append(row, RenderCard(item.Index, item.Record, item.Index == g.SelectedIndex))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	return b.String()
}

func cardOuterWidth() int {
	return CardWidth + 2 // border
}
