package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pokedex/pkg/data"
)

// CardRenderedMsg is sent once per appended record, in id order.
type CardRenderedMsg struct {
	Index  int
	Record *data.Record
}

// LoadingMsg toggles the loading indicator.
type LoadingMsg struct {
	Loading bool
}

// ChannelRenderer hands controller output to the tea event loop. The
// controller runs inside a command goroutine, so sends block until the screen
// picks them up and card order is preserved.
type ChannelRenderer struct {
	msgs chan tea.Msg
}

func NewChannelRenderer(buffer int) *ChannelRenderer {
	return &ChannelRenderer{msgs: make(chan tea.Msg, buffer)}
}

func (r *ChannelRenderer) SetLoading(loading bool) {
	r.msgs <- LoadingMsg{Loading: loading}
}

func (r *ChannelRenderer) Render(index int, rec *data.Record) {
	r.msgs <- CardRenderedMsg{Index: index, Record: rec}
}

// Listen waits for the next message. Screens re-issue it after each one.
func (r *ChannelRenderer) Listen() tea.Msg {
	return <-r.msgs
}
