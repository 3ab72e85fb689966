package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/pokedex/pkg/charts"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatChart(t *testing.T) {
	chart := charts.Render(bulbasaur(), 1024)

	out := RenderStatChart(chart, 60)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 6)
	for i, label := range chart.LabelList() {
		assert.Contains(t, lines[i], label)
	}
	assert.Contains(t, out, "█")
}

func TestBarGlyph(t *testing.T) {
	assert.Equal(t, "▄", barGlyph(charts.FontSizeSmall))
	assert.Equal(t, "▆", barGlyph(charts.FontSizeMedium))
	assert.Equal(t, "█", barGlyph(charts.FontSizeLarge))
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name  string
		value int
		max   int
		width int
		want  int
	}{
		{"full", 100, 100, 20, 20},
		{"half", 50, 100, 20, 10},
		{"tiny value still visible", 1, 255, 10, 1},
		{"zero", 0, 100, 20, 0},
		{"no max", 10, 0, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderBar(tt.value, tt.max, tt.width, "#")
			if len(got) != tt.want {
				t.Errorf("renderBar(%d, %d, %d) width = %d, want %d", tt.value, tt.max, tt.width, len(got), tt.want)
			}
		})
	}
}
