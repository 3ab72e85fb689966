package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kerbaras/pokedex/pkg/data"
)

const DefaultBatchSize = 40

// Renderer receives the loading indicator state and each appended record, in
// id order.
type Renderer interface {
	SetLoading(loading bool)
	Render(index int, rec *data.Record)
}

// PreferenceStore persists the theme flag.
type PreferenceStore interface {
	GetTheme() (data.Theme, error)
	SetTheme(theme data.Theme) error
}

type ControllerConfig struct {
	InitialCount int
	BatchSize    int
	// Pacing is the pause between rendering consecutive cards. Cosmetic only.
	Pacing time.Duration
}

// Controller owns the session state: catalogue, load cursor, loading guard,
// fullscreen navigator and theme.
type Controller struct {
	mu        sync.Mutex
	loader    *Loader
	prefs     PreferenceStore
	renderer  Renderer
	config    ControllerConfig
	catalogue *data.Catalogue
	navigator *Navigator
	cursor    int
	loading   bool
	theme     data.Theme
	logger    *slog.Logger
}

func NewController(loader *Loader, prefs PreferenceStore, renderer Renderer, config ControllerConfig) *Controller {
	if config.InitialCount <= 0 {
		config.InitialCount = DefaultBatchSize
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if renderer == nil {
		renderer = nopRenderer{}
	}

	catalogue := data.NewCatalogue()
	return &Controller{
		loader:    loader,
		prefs:     prefs,
		renderer:  renderer,
		config:    config,
		catalogue: catalogue,
		navigator: NewNavigator(catalogue),
		cursor:    1,
		logger:    slog.Default().With(slog.String("module", "controller")),
	}
}

// LoadTheme reads the persisted theme flag; a missing store means light.
func (c *Controller) LoadTheme() (data.Theme, error) {
	if c.prefs == nil {
		return data.ThemeLight, nil
	}
	theme, err := c.prefs.GetTheme()
	if err != nil {
		return data.ThemeLight, err
	}
	c.mu.Lock()
	c.theme = theme
	c.mu.Unlock()
	return theme, nil
}

func (c *Controller) Theme() data.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

func (c *Controller) ToggleTheme() (data.Theme, error) {
	c.mu.Lock()
	next := c.theme.Toggle()
	c.mu.Unlock()

	if c.prefs != nil {
		if err := c.prefs.SetTheme(next); err != nil {
			return c.Theme(), err
		}
	}

	c.mu.Lock()
	c.theme = next
	c.mu.Unlock()
	return next, nil
}

// LoadInitial loads the first batch. It may only run on an empty session.
func (c *Controller) LoadInitial(ctx context.Context) ([]*data.Record, error) {
	return c.loadNext(ctx, c.config.InitialCount, true)
}

// LoadMore loads the next batch starting at the cursor.
func (c *Controller) LoadMore(ctx context.Context) ([]*data.Record, error) {
	return c.loadNext(ctx, c.config.BatchSize, false)
}

func (c *Controller) loadNext(ctx context.Context, count int, initial bool) ([]*data.Record, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil, ErrLoadInProgress
	}
	if initial && c.cursor != 1 {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: initial batch already loaded", ErrInvariant)
	}
	c.loading = true
	start := c.cursor
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	c.renderer.SetLoading(true)
	defer c.renderer.SetLoading(false)

	records, err := c.loader.LoadBatch(ctx, start, count)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if err := c.catalogue.Append(records...); err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	c.cursor = start + count
	c.mu.Unlock()

	c.logger.Info("catalogue extended", slog.Int("from", start), slog.Int("to", start+count-1))

	for i, rec := range records {
		c.renderer.Render(start+i, rec)
		if c.config.Pacing <= 0 || i == len(records)-1 {
			continue
		}
		select {
		case <-ctx.Done():
			return records, ctx.Err()
		case <-time.After(c.config.Pacing):
		}
	}
	return records, nil
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Cursor returns the next source id to fetch.
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalogue.Len()
}

// Records returns a snapshot of the catalogue in load order.
func (c *Controller) Records() []*data.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalogue.All()
}

func (c *Controller) Record(index int) *data.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalogue.At(index)
}

func (c *Controller) Filter(query string) FilterResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Filter(c.catalogue, query)
}

func (c *Controller) Open(index int) (*DetailView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigator.Open(index)
}

func (c *Controller) Previous(index int) (*DetailView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigator.Previous(index)
}

func (c *Controller) Next(index int) (*DetailView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigator.Next(index)
}

func (c *Controller) Close(target DismissTarget) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigator.Close(target)
}

func (c *Controller) OpenIndex() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigator.Current()
}

// Resize forwards a viewport width change to the chart font setting.
func (c *Controller) Resize(widthPx int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigator.Resize(widthPx)
}

type nopRenderer struct{}

func (nopRenderer) SetLoading(bool)          {}
func (nopRenderer) Render(int, *data.Record) {}
