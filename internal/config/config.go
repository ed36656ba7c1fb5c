package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "https://rickandmortyapi.com/api"
	EnvBaseURL     = "MULTIVERSE_BASE_URL"
)

// Config holds the application configuration
type Config struct {
	BaseURL    string `yaml:"base_url"`
	StartPage  int    `yaml:"start_page"`
	Timeout    int    `yaml:"timeout"`     // seconds, 0 = no timeout
	MsgTimeout int    `yaml:"msg_timeout"` // seconds, 0 = keep until replaced
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    DefaultBaseURL,
		StartPage:  1,
		Timeout:    0,
		MsgTimeout: 3,
	}
}

// Load reads the config file at path, falling back to DefaultPath when path
// is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	cfg.normalize()
	return cfg, nil
}

// DefaultPath returns ~/.config/multiverse/config.yml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "multiverse", "config.yml")
}

// RequestTimeout is the HTTP client timeout; zero means none.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// MessageTimeout is how long a status announcement stays visible.
func (c *Config) MessageTimeout() time.Duration {
	return time.Duration(c.MsgTimeout) * time.Second
}

// normalize replaces out-of-range values with their defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.StartPage < 1 {
		c.StartPage = def.StartPage
	}
	if c.Timeout < 0 {
		c.Timeout = def.Timeout
	}
	if c.MsgTimeout < 0 {
		c.MsgTimeout = def.MsgTimeout
	}
}
