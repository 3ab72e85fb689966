package screens

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/services"
)

var testNames = []string{"bulbasaur", "ivysaur", "venusaur", "charmander", "charmeleon", "charizard", "squirtle", "wartortle"}

type fakeSource struct {
	failing atomic.Bool
}

func (f *fakeSource) GetPokemon(ctx context.Context, id int) (*data.Record, error) {
	if f.failing.Load() {
		return nil, errors.New("connection refused")
	}
	name := "missingno"
	if id <= len(testNames) {
		name = testNames[id-1]
	}
	return &data.Record{
		ID:         id,
		Name:       name,
		Experience: 60 + id,
		Types:      []string{"grass", "poison"},
		Height:     7,
		Weight:     69,
		Stats:      data.StatsFromValues([6]int{45, 49, 49, 65, 65, 45}),
	}, nil
}

func newTestController(source *fakeSource, renderer services.Renderer) *services.Controller {
	loader := services.NewLoader(source, 0)
	return services.NewController(loader, nil, renderer, services.ControllerConfig{
		InitialCount: 4,
		BatchSize:    4,
	})
}

// runLoad executes a load command and feeds everything the renderer produced
// back into the model.
func runLoad(t *testing.T, model tea.Model, renderer *ChannelRenderer, cmd tea.Cmd) tea.Msg {
	t.Helper()
	msg := cmd()
	model.Update(msg)
	for {
		select {
		case m := <-renderer.msgs:
			model.Update(m)
		default:
			return msg
		}
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(model tea.Model, text string) {
	for _, r := range text {
		model.Update(keyRunes(string(r)))
	}
}
