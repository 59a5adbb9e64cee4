// Package config loads stockmesh runtime settings from an optional YAML file
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/stockmesh/logging"
)

// Supported model providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOffline   = "offline"
)

// Environment variables that override file values.
const (
	EnvProvider = "STOCKMESH_PROVIDER"
	EnvModel    = "STOCKMESH_MODEL"
	EnvLogLevel = "STOCKMESH_LOG_LEVEL"
	EnvMaxTurns = "STOCKMESH_MAX_TURNS"
)

// Config is the top-level configuration.
type Config struct {
	AgentName string      `yaml:"agent_name"`
	Model     ModelConfig `yaml:"model"`
	Log       LogConfig   `yaml:"log"`
	MaxTurns  int         `yaml:"max_turns"`
	// Prompts replayed by the example program; defaults to the demo scenario.
	Prompts []string `yaml:"prompts"`
}

// ModelConfig selects and tunes the model provider.
type ModelConfig struct {
	Provider    string  `yaml:"provider"`
	Name        string  `yaml:"name"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens"`
}

// LogConfig configures the slog backed logger.
type LogConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source"`
}

// DefaultPrompts is the demo scenario.
var DefaultPrompts = []string{
	"Add an item Laptop with id 1, quantity 10, and price 1200",
	"Update item 1 quantity to 15 and price to 1350",
	"Delete item 1",
	"Save and close session",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AgentName: "InventoryAgent",
		Model: ModelConfig{
			Provider:    ProviderOffline,
			Temperature: 0.2,
			MaxTokens:   1024,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		MaxTurns: 10,
		Prompts:  append([]string(nil), DefaultPrompts...),
	}
}

// Load reads path (if non-empty) over the defaults, then applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvProvider); ok && v != "" {
		c.Model.Provider = v
	}
	if v, ok := lookup(EnvModel); ok && v != "" {
		c.Model.Name = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvMaxTurns); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxTurns, err)
		}
		c.MaxTurns = n
	}
	return nil
}

// Validate checks provider, log settings and limits.
func (c *Config) Validate() error {
	var errs []error

	switch c.Model.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderOffline:
	default:
		errs = append(errs, fmt.Errorf("unknown model provider %q", c.Model.Provider))
	}

	if _, err := logging.ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if c.Log.Format != "" && c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	if c.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}

	if c.AgentName == "" {
		errs = append(errs, errors.New("agent_name must not be empty"))
	}

	return errors.Join(errs...)
}

// Logger builds the configured logger. Validate must have succeeded.
func (c *Config) Logger() logging.Logger {
	level, _ := logging.ParseLogLevel(c.Log.Level)
	return logging.NewSlogLogger(level, c.Log.Format, c.Log.AddSource)
}
