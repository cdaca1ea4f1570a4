package seed

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeding settings.
type Config struct {
	DeckPath  string `yaml:"deck_path"  env:"SEED_DECK_PATH"`
	BatchSize int    `yaml:"batch_size" env:"SEED_BATCH_SIZE" env-default:"100"`
	DryRun    bool   `yaml:"dry_run"    env:"SEED_DRY_RUN"`
}

// LoadConfig reads seed configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seed config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seed config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seed config: read env: %w", err)
	}

	return &cfg, nil
}

// Deck returns the configured deck file, or the embedded default.
func (c Config) Deck() (*Deck, error) {
	if c.DeckPath == "" {
		return Default(), nil
	}
	return LoadFile(c.DeckPath)
}
