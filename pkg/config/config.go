package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	EnvPrefix = "POKEDEX_"
	dirName   = ".pokedex"
)

type Config struct {
	BaseURL        string        `yaml:"base_url" koanf:"base_url"`
	BatchSize      int           `yaml:"batch_size" koanf:"batch_size"`
	InitialCount   int           `yaml:"initial_count" koanf:"initial_count"`
	MaxConcurrency int           `yaml:"max_concurrency" koanf:"max_concurrency"`
	RenderPacing   time.Duration `yaml:"render_pacing" koanf:"render_pacing"`
	RequestTimeout time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	DBPath         string        `yaml:"db_path" koanf:"db_path"`
	LogLevel       string        `yaml:"log_level" koanf:"log_level"`
	LogFile        string        `yaml:"log_file" koanf:"log_file"`
	CellWidthPx    int           `yaml:"cell_width_px" koanf:"cell_width_px"`
}

// Dir is the per-user directory holding the config, database and log file.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://pokeapi.co/api/v2",
		BatchSize:      40,
		InitialCount:   40,
		MaxConcurrency: 0,
		RenderPacing:   0,
		RequestTimeout: 0,
		DBPath:         filepath.Join(Dir(), "pokedex.db"),
		LogLevel:       "info",
		LogFile:        filepath.Join(Dir(), "pokedex.log"),
		CellWidthPx:    8,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (POKEDEX_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// POKEDEX_BATCH_SIZE -> batch_size
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive")
	}
	if c.InitialCount <= 0 {
		return fmt.Errorf("initial_count must be positive")
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be non-negative")
	}
	if c.RenderPacing < 0 {
		return fmt.Errorf("render_pacing must be non-negative")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.CellWidthPx <= 0 {
		return fmt.Errorf("cell_width_px must be positive")
	}
	return nil
}

// ViewportPx converts a terminal width in columns to pixels.
func (c *Config) ViewportPx(cols int) int {
	return cols * c.CellWidthPx
}
