package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/kerbaras/pokedex/pkg/app"
	"github.com/kerbaras/pokedex/pkg/services"
	"github.com/schollz/progressbar/v3"
)

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// loadBatches loads the initial batch plus batches-1 more, showing a progress
// bar on out.
func loadBatches(ctx context.Context, out io.Writer, session *app.Session, batches int) error {
	if batches < 1 {
		return fmt.Errorf("--batches must be at least 1")
	}

	total := session.Config.InitialCount + (batches-1)*session.Config.BatchSize
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Loading Pokémon"),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go trackProgress(session.Loader.GetProgressChannel(), bar, done)
	defer func() {
		close(done)
		_ = bar.Finish()
	}()

	if _, err := session.Controller.LoadInitial(ctx); err != nil {
		return err
	}
	for i := 1; i < batches; i++ {
		if _, err := session.Controller.LoadMore(ctx); err != nil {
			return err
		}
	}
	return nil
}

func trackProgress(progress <-chan services.LoadProgress, bar *progressbar.ProgressBar, done <-chan struct{}) {
	base := 0
	for {
		select {
		case p := <-progress:
			switch p.Status {
			case "loading":
				_ = bar.Set(base + p.Fetched)
			case "complete":
				base += p.Total
				_ = bar.Set(base)
			}
		case <-done:
			return
		}
	}
}

func openSession() (*app.Session, error) {
	return app.NewSession(cfg, nil)
}
