package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location when set
const EnvConfigPath = "BOARDSTORE_CONFIG"

// Config represents the application configuration
type Config struct {
	Log         LogConfig    `yaml:"log"`
	Events      EventsConfig `yaml:"events"`
	Store       StoreConfig  `yaml:"store"`
	Seed        SeedConfig   `yaml:"seed"`
	CurrentUser string       `yaml:"current_user"` // Email of the acting user
	Theme       Theme        `yaml:"theme"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // Empty logs to stderr
}

// EventsConfig controls the change bus
type EventsConfig struct {
	Buffer int `yaml:"buffer"` // Per-listener channel capacity
}

// StoreConfig controls the entity store
type StoreConfig struct {
	VerifyIntegrity bool `yaml:"verify_integrity"`
}

// SeedConfig selects the initial data set
type SeedConfig struct {
	File string `yaml:"file"` // YAML fixture to load
	Demo bool   `yaml:"demo"` // Load the built-in demo data when File is empty
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from BOARDSTORE_CONFIG or the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, returning defaults if it does not exist
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

// Save saves the config to path, creating its directory
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values the application cannot run with
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Events.Buffer < 0 {
		return fmt.Errorf("events.buffer cannot be negative, got %d", c.Events.Buffer)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "boardstore", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "boardstore", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Events.Buffer == 0 {
		c.Events.Buffer = 64
	}
	c.Theme.ApplyDefaults()
}
