package services

import (
	"testing"

	"github.com/kerbaras/pokedex/pkg/charts"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogueOf(n int) *data.Catalogue {
	c := data.NewCatalogue()
	for id := 1; id <= n; id++ {
		c.Append(testRecord(id))
	}
	return c
}

func TestNavigatorStartsClosed(t *testing.T) {
	nav := NewNavigator(catalogueOf(3))
	_, open := nav.Current()
	assert.False(t, open)
	assert.False(t, nav.IsOpen())
}

func TestNavigatorOpen(t *testing.T) {
	c := data.NewCatalogue()
	c.Append(&data.Record{
		ID:     1,
		Name:   "bulbasaur",
		Types:  []string{"grass", "poison"},
		Height: 7,
		Weight: 69,
		Stats:  data.StatsFromValues([6]int{45, 49, 49, 65, 65, 45}),
	})
	nav := NewNavigator(c)

	view, err := nav.Open(1)
	require.NoError(t, err)

	assert.Equal(t, 1, view.Index)
	assert.Equal(t, 0.7, view.HeightMeters)
	assert.Equal(t, 6.9, view.WeightKilograms)
	assert.Equal(t, "grass", view.PrimaryType)
	assert.Equal(t, "poison", view.SecondaryType)
	assert.Equal(t, []string{
		"HP 45", "Attack 49", "Defense 49", "Sp. Atk 65", "Sp. Def 65", "Speed 45",
	}, view.Chart.LabelList())

	index, open := nav.Current()
	assert.True(t, open)
	assert.Equal(t, 1, index)
}

func TestNavigatorOpenSingleType(t *testing.T) {
	nav := NewNavigator(catalogueOf(1))
	view, err := nav.Open(1)
	require.NoError(t, err)
	assert.Empty(t, view.SecondaryType)
}

func TestNavigatorOpenOutOfRange(t *testing.T) {
	nav := NewNavigator(catalogueOf(3))

	for _, index := range []int{0, -1, 4} {
		_, err := nav.Open(index)
		assert.ErrorIs(t, err, ErrInvariant, "index %d", index)
	}
	assert.False(t, nav.IsOpen())
}

func TestNavigatorWraparound(t *testing.T) {
	nav := NewNavigator(catalogueOf(40))

	view, err := nav.Next(40)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Index)

	view, err = nav.Previous(1)
	require.NoError(t, err)
	assert.Equal(t, 40, view.Index)

	view, err = nav.Next(7)
	require.NoError(t, err)
	assert.Equal(t, 8, view.Index)

	view, err = nav.Previous(7)
	require.NoError(t, err)
	assert.Equal(t, 6, view.Index)
}

func TestNavigatorSingleRecordWrapsToItself(t *testing.T) {
	nav := NewNavigator(catalogueOf(1))

	view, err := nav.Next(1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Index)

	view, err = nav.Previous(1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Index)
}

func TestNavigatorEmptyCatalogue(t *testing.T) {
	nav := NewNavigator(data.NewCatalogue())

	_, err := nav.Next(1)
	assert.ErrorIs(t, err, ErrInvariant)
	_, err = nav.Previous(1)
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestNavigatorClose(t *testing.T) {
	nav := NewNavigator(catalogueOf(2))
	_, err := nav.Open(2)
	require.NoError(t, err)

	assert.False(t, nav.Close(TargetContent), "content clicks must not close")
	assert.True(t, nav.IsOpen())

	assert.True(t, nav.Close(TargetBackdrop))
	assert.False(t, nav.IsOpen())

	_, err = nav.Open(1)
	require.NoError(t, err)
	assert.True(t, nav.Close(TargetCloseControl))
	assert.False(t, nav.Close(TargetCloseControl), "already closed")
}

func TestNavigatorResizeUpdatesChartFont(t *testing.T) {
	t.Cleanup(func() { charts.Resize(1024) })
	nav := NewNavigator(catalogueOf(1))

	assert.Equal(t, 16, nav.Resize(500))
	view, err := nav.Open(1)
	require.NoError(t, err)
	assert.Equal(t, 16, view.Chart.FontSize())
}

func TestDismissTargetString(t *testing.T) {
	assert.Equal(t, "backdrop", TargetBackdrop.String())
	assert.Equal(t, "close", TargetCloseControl.String())
	assert.Equal(t, "content", TargetContent.String())
}
