package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(source *mockSource, renderer Renderer) *Controller {
	return NewController(NewLoader(source, 0), &mockPrefs{}, renderer, ControllerConfig{})
}

func TestNewControllerDefaults(t *testing.T) {
	controller := newTestController(&mockSource{}, nil)

	if controller.config.InitialCount != 40 {
		t.Errorf("Expected initial count 40, got %d", controller.config.InitialCount)
	}
	if controller.config.BatchSize != 40 {
		t.Errorf("Expected batch size 40, got %d", controller.config.BatchSize)
	}
	if controller.Cursor() != 1 {
		t.Errorf("Expected cursor 1, got %d", controller.Cursor())
	}
	if controller.Len() != 0 {
		t.Errorf("Expected empty catalogue, got %d", controller.Len())
	}
}

func TestControllerLoadInitial(t *testing.T) {
	renderer := &mockRenderer{}
	controller := newTestController(&mockSource{}, renderer)

	records, err := controller.LoadInitial(context.Background())
	require.NoError(t, err)

	assert.Len(t, records, 40)
	assert.Equal(t, 40, controller.Len())
	assert.Equal(t, 41, controller.Cursor())
	for i := 1; i <= 40; i++ {
		assert.Equal(t, i, controller.Record(i).ID)
	}

	require.Len(t, renderer.rendered, 40)
	for i, call := range renderer.rendered {
		assert.Equal(t, i+1, call.index)
		assert.Equal(t, i+1, call.id)
	}
	assert.Equal(t, []bool{true, false}, renderer.loading)
}

func TestControllerLoadInitialOnlyOnce(t *testing.T) {
	controller := newTestController(&mockSource{}, nil)

	_, err := controller.LoadInitial(context.Background())
	require.NoError(t, err)

	_, err = controller.LoadInitial(context.Background())
	assert.ErrorIs(t, err, ErrInvariant)
	assert.Equal(t, 40, controller.Len())
}

func TestControllerLoadMoreAppendsNextBatch(t *testing.T) {
	controller := newTestController(&mockSource{}, nil)

	_, err := controller.LoadInitial(context.Background())
	require.NoError(t, err)
	records, err := controller.LoadMore(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 41, records[0].ID)
	assert.Equal(t, 80, records[len(records)-1].ID)
	assert.Equal(t, 80, controller.Len())
	assert.Equal(t, 81, controller.Cursor())
}

func TestControllerFailedBatchLeavesStateUnchanged(t *testing.T) {
	fail := false
	source := &mockSource{
		getPokemonFunc: func(ctx context.Context, id int) (*data.Record, error) {
			if fail && id == 57 {
				return nil, errors.New("invalid character '<' looking for beginning of value")
			}
			return testRecord(id), nil
		},
	}
	renderer := &mockRenderer{}
	controller := newTestController(source, renderer)

	_, err := controller.LoadInitial(context.Background())
	require.NoError(t, err)

	fail = true
	records, err := controller.LoadMore(context.Background())
	assert.Nil(t, records)
	assert.ErrorIs(t, err, ErrBatchFailed)
	assert.Equal(t, 40, controller.Len())
	assert.Equal(t, 41, controller.Cursor())
	assert.Len(t, renderer.rendered, 40)
	assert.False(t, controller.Loading())

	// retry succeeds from the same cursor
	fail = false
	records, err = controller.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 41, records[0].ID)
	assert.Equal(t, 81, controller.Cursor())
}

func TestControllerRejectsOverlappingLoads(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	source := &mockSource{
		getPokemonFunc: func(ctx context.Context, id int) (*data.Record, error) {
			select {
			case started <- struct{}{}:
			default:
			}
			<-release
			return testRecord(id), nil
		},
	}
	controller := newTestController(source, nil)

	done := make(chan error, 1)
	go func() {
		_, err := controller.LoadInitial(context.Background())
		done <- err
	}()

	<-started
	assert.True(t, controller.Loading())
	_, err := controller.LoadMore(context.Background())
	assert.ErrorIs(t, err, ErrLoadInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 41, controller.Cursor())
	assert.False(t, controller.Loading())
}

func TestControllerRenderPacing(t *testing.T) {
	controller := NewController(NewLoader(&mockSource{}, 0), nil, nil, ControllerConfig{
		InitialCount: 4,
		Pacing:       10 * time.Millisecond,
	})

	start := time.Now()
	_, err := controller.LoadInitial(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestControllerPacingStopsOnCancel(t *testing.T) {
	renderer := &mockRenderer{}
	controller := NewController(NewLoader(&mockSource{}, 0), nil, renderer, ControllerConfig{
		InitialCount: 5,
		Pacing:       time.Hour,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := controller.LoadInitial(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, renderer.rendered, 1)
	assert.Equal(t, 5, controller.Len())
}

func TestControllerTheme(t *testing.T) {
	prefs := &mockPrefs{theme: data.ThemeDark}
	controller := NewController(NewLoader(&mockSource{}, 0), prefs, nil, ControllerConfig{})

	theme, err := controller.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, data.ThemeDark, theme)

	theme, err = controller.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, data.ThemeLight, theme)
	assert.Equal(t, data.ThemeLight, prefs.theme)
	assert.Equal(t, data.ThemeLight, controller.Theme())
}

func TestControllerToggleThemeStoreFailure(t *testing.T) {
	prefs := &mockPrefs{setErr: errors.New("disk full")}
	controller := NewController(NewLoader(&mockSource{}, 0), prefs, nil, ControllerConfig{})

	_, err := controller.ToggleTheme()
	assert.Error(t, err)
	assert.Equal(t, data.ThemeLight, controller.Theme())
}

func TestControllerScenarioWraparound(t *testing.T) {
	controller := newTestController(&mockSource{}, nil)
	_, err := controller.LoadInitial(context.Background())
	require.NoError(t, err)

	view, err := controller.Open(40)
	require.NoError(t, err)
	view, err = controller.Next(view.Index)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Index)

	view, err = controller.Previous(view.Index)
	require.NoError(t, err)
	assert.Equal(t, 40, view.Index)

	index, open := controller.OpenIndex()
	assert.True(t, open)
	assert.Equal(t, 40, index)

	assert.True(t, controller.Close(TargetCloseControl))
	_, open = controller.OpenIndex()
	assert.False(t, open)
}

func TestControllerFilterCoversLoadedRecordsOnly(t *testing.T) {
	controller := NewController(NewLoader(&mockSource{}, 0), nil, nil, ControllerConfig{InitialCount: 3, BatchSize: 3})
	_, err := controller.LoadInitial(context.Background())
	require.NoError(t, err)

	result := controller.Filter("mon")
	assert.Equal(t, 3, result.Matches)

	_, err = controller.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Matches, "stale result must not change")
	assert.Equal(t, 6, controller.Filter("mon").Matches)
}
