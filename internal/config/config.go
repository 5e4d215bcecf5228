// Package config loads dragonet configuration: defaults, then an optional
// YAML file, then environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arwah7/dragonet/internal/model"
	"github.com/arwah7/dragonet/internal/rules"
)

// DefaultPath is the config file consulted when no path is given.
const DefaultPath = "dragonet.yaml"

// Config holds all dragonet configuration.
type Config struct {
	Ledger  Ledger       `yaml:"ledger"`
	Cache   Cache        `yaml:"cache"`
	Outputs Outputs      `yaml:"outputs"`
	Log     Log          `yaml:"log"`
	Rules   []model.Rule `yaml:"rules"`
}

// Ledger holds block source settings.
type Ledger struct {
	Provider     string            `yaml:"provider"`
	Endpoint     string            `yaml:"endpoint"`
	APIKey       string            `yaml:"api_key"`
	PollInterval string            `yaml:"poll_interval"` // e.g. "3s"
	Extra        map[string]string `yaml:"extra"`
}

// Interval returns the poll interval as a duration. Unset or unparsable
// values fall back to three seconds, one block on the default chain.
func (l Ledger) Interval() time.Duration {
	d, err := time.ParseDuration(l.PollInterval)
	if err != nil || d <= 0 {
		return 3 * time.Second
	}
	return d
}

// Cache holds outcome cache settings.
type Cache struct {
	Backend  string `yaml:"backend"`  // memory | file | redis
	Capacity int    `yaml:"capacity"` // newest outcomes kept, 0 = unbounded
	Path     string `yaml:"path"`     // file backend only
	Redis    Redis  `yaml:"redis"`
}

// Redis holds connection settings for the redis cache backend.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// Outputs holds alert sink settings. Sinks with zero-value configuration
// are disabled, except stdout which is on by default.
type Outputs struct {
	Stdout  Stdout  `yaml:"stdout"`
	File    File    `yaml:"file"`
	Webhook Webhook `yaml:"webhook"`
}

// Stdout configures the NDJSON stdout sink.
type Stdout struct {
	Enabled bool `yaml:"enabled"`
	Pretty  bool `yaml:"pretty"`
}

// File configures the rotating NDJSON file sink. Empty path disables it.
type File struct {
	Path    string `yaml:"path"`
	MaxSize int64  `yaml:"max_size"` // rotation threshold in bytes, 0 = never
}

// Webhook configures the batched HTTP sink. Empty URL disables it.
type Webhook struct {
	URL           string            `yaml:"url"`
	Headers       map[string]string `yaml:"headers"`
	BatchSize     int               `yaml:"batch_size"`
	FlushInterval string            `yaml:"flush_interval"` // e.g. "5s"
}

// Interval returns the webhook flush interval, defaulting to five seconds.
func (w Webhook) Interval() time.Duration {
	d, err := time.ParseDuration(w.FlushInterval)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Ledger: Ledger{
			Provider:     "trongrid",
			PollInterval: "3s",
		},
		Cache: Cache{
			Backend:  "memory",
			Capacity: 5000,
		},
		Outputs: Outputs{
			Stdout: Stdout{Enabled: true},
		},
		Log: Log{Level: "info"},
	}
}

// Load builds the configuration: defaults, merged with the YAML file at
// path, then environment overrides. An empty path consults DefaultPath and
// tolerates its absence; an explicitly named file must exist. When no rules
// end up configured, the built-in rule set applies.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case explicit || !os.IsNotExist(err):
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg.applyEnv()

	if len(cfg.Rules) == 0 {
		cfg.Rules = rules.Defaults()
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Ledger.Provider = getenv("DRAGONET_PROVIDER", c.Ledger.Provider)
	c.Ledger.APIKey = getenv("DRAGONET_API_KEY", c.Ledger.APIKey)
	c.Ledger.Endpoint = getenv("DRAGONET_ENDPOINT", c.Ledger.Endpoint)
	c.Log.Level = getenv("DRAGONET_LOG_LEVEL", c.Log.Level)
	c.Cache.Redis.Addr = getenv("DRAGONET_REDIS_ADDR", c.Cache.Redis.Addr)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
