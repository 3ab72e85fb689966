package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/sources"
	"golang.org/x/sync/errgroup"
)

// LoadProgress reports the state of a batch
type LoadProgress struct {
	BatchID string
	StartID int
	Fetched int
	Total   int
	Status  string // "loading", "complete", "error"
	Error   error
}

// Loader fetches contiguous id ranges with all-or-nothing semantics
type Loader struct {
	source         sources.Source
	maxConcurrency int
	progressChan   chan LoadProgress
	logger         *slog.Logger
}

// NewLoader creates a Loader. maxConcurrency <= 0 fetches a whole batch at once.
func NewLoader(source sources.Source, maxConcurrency int) *Loader {
	return &Loader{
		source:         source,
		maxConcurrency: maxConcurrency,
		progressChan:   make(chan LoadProgress, 100),
		logger:         slog.Default().With(slog.String("module", "loader")),
	}
}

// GetProgressChannel returns the channel for receiving batch progress updates
func (l *Loader) GetProgressChannel() <-chan LoadProgress {
	return l.progressChan
}

// LoadBatch fetches ids [startID, startID+count) concurrently and returns the
// records in ascending id order. If any fetch fails the whole batch fails and
// no records are returned.
func (l *Loader) LoadBatch(ctx context.Context, startID, count int) ([]*data.Record, error) {
	if startID < 1 || count < 1 {
		return nil, fmt.Errorf("%w: batch start %d count %d", ErrInvariant, startID, count)
	}

	batchID := uuid.NewString()
	log := l.logger.With(slog.String("batch", batchID), slog.Int("start", startID), slog.Int("count", count))
	log.Debug("batch started")

	l.sendProgress(LoadProgress{BatchID: batchID, StartID: startID, Total: count, Status: "loading"})

	limit := l.maxConcurrency
	if limit <= 0 || limit > count {
		limit = count
	}

	results := make([]*data.Record, count)
	var fetched atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < count; i++ {
		id := startID + i
		g.Go(func() error {
			rec, err := l.source.GetPokemon(gctx, id)
			if err != nil {
				return err
			}
			results[id-startID] = rec
			l.sendProgress(LoadProgress{
				BatchID: batchID,
				StartID: startID,
				Fetched: int(fetched.Add(1)),
				Total:   count,
				Status:  "loading",
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn("batch failed", slog.Any("error", err))
		l.sendProgress(LoadProgress{
			BatchID: batchID,
			StartID: startID,
			Fetched: int(fetched.Load()),
			Total:   count,
			Status:  "error",
			Error:   err,
		})
		return nil, fmt.Errorf("%w: ids %d-%d: %w", ErrBatchFailed, startID, startID+count-1, err)
	}

	log.Info("batch loaded")
	l.sendProgress(LoadProgress{BatchID: batchID, StartID: startID, Fetched: count, Total: count, Status: "complete"})
	return results, nil
}

// sendProgress sends a progress update (non-blocking)
func (l *Loader) sendProgress(progress LoadProgress) {
	select {
	case l.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}
