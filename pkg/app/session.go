package app

import (
	"fmt"
	"net/http"

	"github.com/kerbaras/pokedex/pkg/config"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/services"
	"github.com/kerbaras/pokedex/pkg/sources"
)

// Session wires the services one run of the program needs.
type Session struct {
	Config     *config.Config
	Client     *http.Client
	Source     sources.Source
	Repo       *data.Repository
	Loader     *services.Loader
	Controller *services.Controller
}

// NewSession opens the preference store and builds the controller. The
// renderer may be nil when nothing displays cards as they arrive.
func NewSession(cfg *config.Config, renderer services.Renderer) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	repo, err := data.NewDuckDBRepository(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}

	client := &http.Client{Timeout: cfg.RequestTimeout}
	source := sources.NewPokeAPI(cfg.BaseURL, client)
	loader := services.NewLoader(source, cfg.MaxConcurrency)

	controller := services.NewController(loader, repo, renderer, services.ControllerConfig{
		InitialCount: cfg.InitialCount,
		BatchSize:    cfg.BatchSize,
		Pacing:       cfg.RenderPacing,
	})

	return &Session{
		Config:     cfg,
		Client:     client,
		Source:     source,
		Repo:       repo,
		Loader:     loader,
		Controller: controller,
	}, nil
}

func (s *Session) Close() error {
	return s.Repo.Close()
}
