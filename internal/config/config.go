// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied when neither config file, env, nor flags specify a value.
const (
	DefaultPort     = 8080
	DefaultOrigin   = "http://localhost:8080"
	DefaultColor    = "purple"
	DefaultFont     = "Inter"
	DefaultTemplate = "modern-dev"
)

// Config represents configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags.
type Config struct {
	Port     int    `json:"port,omitempty"`     // HTTP server port
	Origin   string `json:"origin,omitempty"`   // Origin used in generated share URLs
	Color    string `json:"color,omitempty"`    // Default theme color
	Font     string `json:"font,omitempty"`     // Default font family
	Template string `json:"template,omitempty"` // Default template id
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv builds a Config from environment variables, applying defaults
// for anything unset. Invalid PORT values are ignored.
func FromEnv() *Config {
	cfg := &Config{
		Port:     DefaultPort,
		Origin:   DefaultOrigin,
		Color:    DefaultColor,
		Font:     DefaultFont,
		Template: DefaultTemplate,
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("ORIGIN"); v != "" {
		cfg.Origin = v
	}
	return cfg
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 0-65535, got %d", c.Port)
	}
	switch c.Color {
	case "", "purple", "blue", "green", "pink":
	default:
		return fmt.Errorf("config error: 'color' must be one of purple, blue, green, pink; got %q", c.Color)
	}
	return nil
}
