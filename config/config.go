// Package config loads versegen settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/versegen/sampler"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables consulted by Load.
const (
	EnvDictionary = "VERSEGEN_DICT"
	EnvCorpus     = "VERSEGEN_CORPUS"
	EnvDB         = "VERSEGEN_DB"
	EnvLogLevel   = "VERSEGEN_LOG_LEVEL"
	EnvSeed       = "VERSEGEN_SEED"
)

// Config holds all versegen configuration.
type Config struct {
	// Dictionary is the path of the syllabified pronunciation dictionary.
	Dictionary string `yaml:"dictionary"`

	Corpus     CorpusConfig     `yaml:"corpus"`
	Store      StoreConfig      `yaml:"store"`
	Generation GenerationConfig `yaml:"generation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CorpusConfig configures corpus ingestion.
type CorpusConfig struct {
	Dir        string `yaml:"dir"`
	MarkRhymes bool   `yaml:"mark_rhymes"` // compute rhyme-partner flags after loading
}

// StoreConfig configures graph persistence.
type StoreConfig struct {
	Snapshot   string `yaml:"snapshot"` // compressed snapshot file
	DBPath     string `yaml:"db_path"`  // badger directory for named graphs
	Graph      string `yaml:"graph"`    // graph name inside the badger store
	SyncWrites bool   `yaml:"sync_writes"`
}

// GenerationConfig configures line generation.
type GenerationConfig struct {
	Seed          int64  `yaml:"seed"` // 0 picks a time-based seed in the CLI
	Policy        string `yaml:"policy"`
	MaxAttempts   int    `yaml:"max_attempts"`
	MaxIterations int    `yaml:"max_iterations"`
	Words         int    `yaml:"words"`
	Scheme        string `yaml:"scheme"`
	Lines         int    `yaml:"lines"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: "cmudict.syl",
		Corpus: CorpusConfig{
			Dir:        "corpus",
			MarkRhymes: true,
		},
		Store: StoreConfig{
			Snapshot: "versegen.graph",
			DBPath:   "",
			Graph:    "default",
		},
		Generation: GenerationConfig{
			Policy:        "roulette",
			MaxAttempts:   32,
			MaxIterations: 6000,
			Words:         6,
			Scheme:        "AABB",
			Lines:         4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML config file. A missing file yields the defaults.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// Return defaults if config file doesn't exist
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvDictionary); v != "" {
		c.Dictionary = v
	}
	if v := os.Getenv(EnvCorpus); v != "" {
		c.Corpus.Dir = v
	}
	if v := os.Getenv(EnvDB); v != "" {
		c.Store.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Generation.Seed = seed
	}
	return nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	g := c.Generation
	if _, err := sampler.ParsePolicy(g.Policy); err != nil {
		return fmt.Errorf("%w: generation.policy: %v", ErrInvalidConfig, err)
	}
	if g.MaxAttempts < 1 {
		return fmt.Errorf("%w: generation.max_attempts must be >= 1, got %d", ErrInvalidConfig, g.MaxAttempts)
	}
	if g.MaxIterations < 1 {
		return fmt.Errorf("%w: generation.max_iterations must be >= 1, got %d", ErrInvalidConfig, g.MaxIterations)
	}
	if g.Words < 1 || g.Lines < 1 {
		return fmt.Errorf("%w: generation.words and generation.lines must be >= 1", ErrInvalidConfig)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}
