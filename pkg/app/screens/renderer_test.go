package screens

import (
	"testing"

	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/stretchr/testify/assert"
)

func TestChannelRenderer_PreservesOrder(t *testing.T) {
	r := NewChannelRenderer(10)

	r.SetLoading(true)
	r.Render(1, &data.Record{ID: 1})
	r.Render(2, &data.Record{ID: 2})
	r.SetLoading(false)

	assert.Equal(t, LoadingMsg{Loading: true}, r.Listen())
	assert.Equal(t, 1, r.Listen().(CardRenderedMsg).Index)
	assert.Equal(t, 2, r.Listen().(CardRenderedMsg).Index)
	assert.Equal(t, LoadingMsg{Loading: false}, r.Listen())
}
