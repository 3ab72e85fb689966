package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/kerbaras/pokedex/pkg/data"
)

// Mock implementations for testing

type mockSource struct {
	getPokemonFunc func(ctx context.Context, id int) (*data.Record, error)
}

func (m *mockSource) GetPokemon(ctx context.Context, id int) (*data.Record, error) {
	if m.getPokemonFunc != nil {
		return m.getPokemonFunc(ctx, id)
	}
	return testRecord(id), nil
}

func testRecord(id int) *data.Record {
	return &data.Record{
		ID:    id,
		Name:  fmt.Sprintf("mon%d", id),
		Types: []string{"normal"},
		Stats: data.StatsFromValues([6]int{id, id, id, id, id, id}),
	}
}

type renderCall struct {
	index int
	id    int
}

type mockRenderer struct {
	mu       sync.Mutex
	loading  []bool
	rendered []renderCall
}

func (m *mockRenderer) SetLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = append(m.loading, loading)
}

func (m *mockRenderer) Render(index int, rec *data.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rendered = append(m.rendered, renderCall{index: index, id: rec.ID})
}

type mockPrefs struct {
	theme   data.Theme
	setErr  error
	getErr  error
	setCall int
}

func (m *mockPrefs) GetTheme() (data.Theme, error) {
	return m.theme, m.getErr
}

func (m *mockPrefs) SetTheme(theme data.Theme) error {
	m.setCall++
	if m.setErr != nil {
		return m.setErr
	}
	m.theme = theme
	return nil
}
