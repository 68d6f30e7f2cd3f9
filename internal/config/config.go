package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"lifeboard/internal/storage"
)

// Config holds all tunables. Values come from an optional YAML file with
// environment variables taking precedence.
type Config struct {
	// DBPath is the sqlite file backing the key-value store. Empty means
	// the default under the home directory.
	DBPath string `yaml:"db_path" env:"LIFEBOARD_DB" env-default:""`

	// NotifyInterval is the scheduler poll cadence.
	NotifyInterval time.Duration `yaml:"notify_interval" env:"LIFEBOARD_NOTIFY_INTERVAL" env-default:"15m"`

	// Verbose switches the logger from production to development output.
	Verbose bool `yaml:"verbose" env:"LIFEBOARD_VERBOSE" env-default:"false"`
}

// Load reads configuration from path (if it exists) and the environment.
// A missing file is fine; env-only operation is the common case.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
			return cfg, cfg.fillDefaults()
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}
	return cfg, cfg.fillDefaults()
}

func (c *Config) fillDefaults() error {
	if c.DBPath == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return err
		}
		c.DBPath = p
	}
	return nil
}
