package services

import (
	"fmt"

	"github.com/kerbaras/pokedex/pkg/charts"
	"github.com/kerbaras/pokedex/pkg/data"
)

// DismissTarget classifies what a close gesture landed on.
type DismissTarget int

const (
	TargetContent DismissTarget = iota
	TargetBackdrop
	TargetCloseControl
)

func (t DismissTarget) String() string {
	switch t {
	case TargetBackdrop:
		return "backdrop"
	case TargetCloseControl:
		return "close"
	default:
		return "content"
	}
}

// DetailView is everything the fullscreen view shows for one record.
type DetailView struct {
	Index           int
	Record          *data.Record
	HeightMeters    float64
	WeightKilograms float64
	PrimaryType     string
	SecondaryType   string // empty when the record has a single type
	Chart           *charts.StatChart
}

// Navigator tracks the record open in fullscreen. Navigation wraps around the
// loaded catalogue and never loads more records.
type Navigator struct {
	catalogue  *data.Catalogue
	openIndex  int // 0 when closed
	viewportPx int
}

func NewNavigator(catalogue *data.Catalogue) *Navigator {
	return &Navigator{catalogue: catalogue, viewportPx: 1024}
}

// Resize records the viewport width and recomputes the chart font size.
func (n *Navigator) Resize(widthPx int) int {
	n.viewportPx = widthPx
	return charts.Resize(widthPx)
}

func (n *Navigator) Open(index int) (*DetailView, error) {
	rec := n.catalogue.At(index)
	if rec == nil {
		return nil, fmt.Errorf("%w: open index %d outside 1..%d", ErrInvariant, index, n.catalogue.Len())
	}

	view := &DetailView{
		Index:           index,
		Record:          rec,
		HeightMeters:    rec.HeightMeters(),
		WeightKilograms: rec.WeightKilograms(),
		PrimaryType:     rec.PrimaryType(),
		Chart:           charts.Render(rec, n.viewportPx),
	}
	if second, ok := rec.SecondaryType(); ok {
		view.SecondaryType = second
	}

	n.openIndex = index
	return view, nil
}

func (n *Navigator) Previous(index int) (*DetailView, error) {
	if index > 1 {
		return n.Open(index - 1)
	}
	return n.Open(n.catalogue.Len())
}

func (n *Navigator) Next(index int) (*DetailView, error) {
	if index < n.catalogue.Len() {
		return n.Open(index + 1)
	}
	return n.Open(1)
}

// Close dismisses the view when the gesture hit the backdrop or the close
// control. It reports whether the view was closed by this call.
func (n *Navigator) Close(target DismissTarget) bool {
	if n.openIndex == 0 {
		return false
	}
	if target != TargetBackdrop && target != TargetCloseControl {
		return false
	}
	n.openIndex = 0
	return true
}

// Current returns the open index, if any.
func (n *Navigator) Current() (int, bool) {
	return n.openIndex, n.openIndex != 0
}

func (n *Navigator) IsOpen() bool {
	return n.openIndex != 0
}
