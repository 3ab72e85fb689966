package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bulbasaur() *data.Record {
	return &data.Record{
		ID:    1,
		Name:  "bulbasaur",
		Types: []string{"grass", "poison"},
		Stats: data.StatsFromValues([6]int{45, 49, 49, 65, 65, 45}),
	}
}

func resetFontSize(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { Resize(1024) })
}

func TestBuildLabelsInFixedOrder(t *testing.T) {
	resetFontSize(t)
	chart := Render(bulbasaur(), 1024)

	assert.Equal(t, []string{
		"HP 45", "Attack 49", "Defense 49", "Sp. Atk 65", "Sp. Def 65", "Speed 45",
	}, chart.LabelList())
	assert.Equal(t, "Bulbasaur", chart.Title)
	assert.Equal(t, 65, chart.Max())
}

func TestBuildFixedColors(t *testing.T) {
	chart := Build(bulbasaur())
	for i, b := range chart.Bars {
		assert.Equal(t, Colors[i], b.Color)
		assert.Equal(t, BorderColors[i], b.BorderColor)
	}
	assert.Equal(t, "#FF4500", chart.Bars[1].Color)
}

func TestFontSizeForWidth(t *testing.T) {
	cases := []struct {
		width int
		want  int
	}{
		{0, 14},
		{379, 14},
		{380, 16},
		{599, 16},
		{600, 18},
		{1920, 18},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FontSizeForWidth(tc.width), "width %d", tc.width)
	}
}

func TestFontSizeIsGlobalAndAppliedOnRedraw(t *testing.T) {
	resetFontSize(t)

	first := Render(bulbasaur(), 1024)
	require.Equal(t, 18, first.FontSize())

	second := Render(bulbasaur(), 300)
	assert.Equal(t, 14, second.FontSize())
	assert.Equal(t, 14, FontSize())

	// the earlier chart keeps its size until redrawn
	assert.Equal(t, 18, first.FontSize())
	first.Redraw()
	assert.Equal(t, 14, first.FontSize())
}

func TestWriteHTML(t *testing.T) {
	resetFontSize(t)
	chart := Render(bulbasaur(), 500)

	var buf bytes.Buffer
	require.NoError(t, chart.WriteHTML(&buf))

	html := buf.String()
	assert.Contains(t, html, "Bulbasaur")
	assert.Contains(t, html, "Sp. Atk 65")
	assert.Contains(t, html, "#FF4500")
}

func TestWriteHTML_LabelFontFollowsViewport(t *testing.T) {
	resetFontSize(t)
	chart := Render(bulbasaur(), 300)

	var buf bytes.Buffer
	require.NoError(t, chart.WriteHTML(&buf))

	html := buf.String()
	assert.Contains(t, html, `"axisLabel":{`)
	assert.GreaterOrEqual(t, strings.Count(html, `"fontSize":14`), 2, "title and category labels")
	assert.NotContains(t, html, `"fontSize":18`)
}
