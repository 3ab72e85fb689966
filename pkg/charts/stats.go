// Package charts turns a record's base stats into a fixed six-bar chart.
//
// The label font size is a single global setting derived from the viewport
// width. Charts read it when they are built and again on every Redraw, so a
// resize only reaches an existing chart once it is redrawn.
package charts

import (
	"fmt"
	"sync"

	"github.com/kerbaras/pokedex/pkg/data"
)

const (
	FontSizeSmall  = 14
	FontSizeMedium = 16
	FontSizeLarge  = 18
)

var Labels = [data.StatCount]string{"HP", "Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed"}

var Colors = [data.StatCount]string{
	"#2C2C2C",
	"#FF4500",
	"#0A42E3",
	"#FFD700",
	"#32CD32",
	"#00CED1",
}

var BorderColors = [data.StatCount]string{
	"#000000",
	"#2C2C2C",
	"#2C2C2C",
	"#2C2C2C",
	"#2C2C2C",
	"#2C2C2C",
}

var (
	fontMu   sync.RWMutex
	fontSize = FontSizeLarge
)

// FontSizeForWidth maps a viewport width in pixels to a label font size.
func FontSizeForWidth(widthPx int) int {
	switch {
	case widthPx < 380:
		return FontSizeSmall
	case widthPx < 600:
		return FontSizeMedium
	default:
		return FontSizeLarge
	}
}

// Resize recomputes the global font size and returns it.
func Resize(widthPx int) int {
	size := FontSizeForWidth(widthPx)
	fontMu.Lock()
	fontSize = size
	fontMu.Unlock()
	return size
}

func FontSize() int {
	fontMu.RLock()
	defer fontMu.RUnlock()
	return fontSize
}

type Bar struct {
	Label       string
	Value       int
	Color       string
	BorderColor string
}

type StatChart struct {
	Title    string
	Bars     [data.StatCount]Bar
	fontSize int
}

// Render builds the chart for a record after recomputing the global font size
// from the viewport width.
func Render(rec *data.Record, widthPx int) *StatChart {
	Resize(widthPx)
	return Build(rec)
}

// Build creates a chart using the current global font size.
func Build(rec *data.Record) *StatChart {
	c := &StatChart{Title: rec.DisplayName()}
	for i, v := range rec.Stats.Values() {
		c.Bars[i] = Bar{
			Label:       fmt.Sprintf("%s %d", Labels[i], v),
			Value:       v,
			Color:       Colors[i],
			BorderColor: BorderColors[i],
		}
	}
	c.Redraw()
	return c
}

// Redraw picks up the current global font size.
func (c *StatChart) Redraw() {
	c.fontSize = FontSize()
}

func (c *StatChart) FontSize() int {
	return c.fontSize
}

func (c *StatChart) Max() int {
	max := 0
	for _, b := range c.Bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}

func (c *StatChart) LabelList() []string {
	out := make([]string, len(c.Bars))
	for i, b := range c.Bars {
		out[i] = b.Label
	}
	return out
}
