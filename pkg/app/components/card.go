package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/data"
)

// CardWidth is the inner width of a card, without border.
const CardWidth = 24

// RenderCard projects a record into a card. The frame colour follows the
// primary type; at most two type badges are shown.
func RenderCard(index int, rec *data.Record, selected bool) string {
	inner := CardWidth - 2 // horizontal padding

	id := fmt.Sprintf("#%d", index)
	xp := fmt.Sprintf("XP %d", rec.Experience)
	gap := inner - lipgloss.Width(id) - lipgloss.Width(xp)
	if gap < 1 {
		gap = 1
	}
	header := id + strings.Repeat(" ", gap) + xp

	name := lipgloss.NewStyle().Bold(true).Render(truncate(rec.DisplayName(), inner))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		name,
		"",
		TypeBadges(rec),
	)

	return styles.CardStyle(rec.PrimaryType(), selected).Width(CardWidth).Render(content)
}

// TypeBadges renders the primary type and, when present, the secondary one.
func TypeBadges(rec *data.Record) string {
	badges := styles.Badge(rec.PrimaryType())
	if second, ok := rec.SecondaryType(); ok {
		badges = lipgloss.JoinHorizontal(lipgloss.Top, badges, " ", styles.Badge(second))
	}
	return badges
}

func truncate(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	r := []rune(s)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
