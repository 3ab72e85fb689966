package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/charts"
)

// barGlyph picks the bar thickness for the chart font size.
func barGlyph(fontSize int) string {
	switch {
	case fontSize <= charts.FontSizeSmall:
		return "▄"
	case fontSize <= charts.FontSizeMedium:
		return "▆"
	default:
		return "█"
	}
}

// RenderStatChart draws the chart as horizontal bars within width columns.
func RenderStatChart(chart *charts.StatChart, width int) string {
	labelWidth := 0
	for _, bar := range chart.Bars {
		if w := lipgloss.Width(bar.Label); w > labelWidth {
			labelWidth = w
		}
	}

	barWidth := width - labelWidth - 1
	if barWidth < 1 {
		barWidth = 1
	}

	glyph := barGlyph(chart.FontSize())
	max := chart.Max()

	var b strings.Builder
	for i, bar := range chart.Bars {
		label := styles.TextStyle.Render(fmt.Sprintf("%-*s", labelWidth, bar.Label))
		fill := renderBar(bar.Value, max, barWidth, glyph)
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Color)).Render(fill))
		if i < len(chart.Bars)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderBar(value, max, width int, glyph string) string {
	if max <= 0 || value <= 0 {
		return ""
	}

	filled := int(float64(value) / float64(max) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 1 {
		filled = 1
	}
	return strings.Repeat(glyph, filled)
}
