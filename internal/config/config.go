// Package config loads the CLI configuration from an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultEndpoint = "https://openrouter.ai/api/v1"
	defaultLogLevel = "info"
)

// Config holds the CLI settings. The API key is sourced from the
// environment (optionally via a .env file), never from the config
// file.
type Config struct {
	APIKey      string `yaml:"-"`
	APIEndpoint string `yaml:"api_endpoint"`
	Model       string `yaml:"model"`
	LogLevel    string `yaml:"log_level"`
}

// Path returns the default config file location,
// e.g. ~/.config/ai-cli/config.yaml.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(dir, "ai-cli", "config.yaml"), nil
}

// Load reads the optional config file, loads a .env file when present,
// and applies environment overrides. Precedence, lowest to highest:
// defaults, config file, environment.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return load(path)
}

func load(path string) (*Config, error) {
	cfg := &Config{
		APIEndpoint: defaultEndpoint,
		LogLevel:    defaultLogLevel,
	}

	if err := cfg.readFile(path); err != nil {
		return nil, err
	}

	// A missing .env file is fine; the key may already be exported.
	_ = godotenv.Load()
	cfg.applyEnv()

	if cfg.APIKey == "" {
		return nil, errors.New("API_KEY is not set")
	}

	return cfg, nil
}

// readFile merges the YAML file at path into the config. A missing
// file is not an error.
func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("AI_API_ENDPOINT"); v != "" {
		c.APIEndpoint = v
	}
	if v := os.Getenv("AI_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("AI_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
