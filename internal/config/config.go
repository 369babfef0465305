// Package config provides the site configuration for the notheme build tool.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when none is specified.
const DefaultPath = "site.yml"

// Config describes the site being built.
type Config struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Language    string `yaml:"language,omitempty"`
	ContentDir  string `yaml:"content_dir,omitempty"`
	OutputDir   string `yaml:"output_dir,omitempty"`
	TagsPath    string `yaml:"tags_path,omitempty"`
}

// ApplyDefaults fills in any optional fields that weren't set.
func (c *Config) ApplyDefaults() {
	if c.Language == "" {
		c.Language = "en"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.TagsPath == "" {
		c.TagsPath = "/tags"
	}
	// tag links are site-relative, so they have to start at the root
	if !strings.HasPrefix(c.TagsPath, "/") {
		c.TagsPath = "/" + c.TagsPath
	}
}

// Validate checks that all required fields are present and valid.
func (c *Config) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.URL == "" {
		return errors.New("url is required")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("url is invalid: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return errors.New("url must be absolute")
	}
	return nil
}

// BaseURL returns the parsed site URL.
func (c *Config) BaseURL() (*url.URL, error) {
	return url.Parse(c.URL)
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("NOTHEME_URL"); v != "" {
		c.URL = v
	}
	if v := os.Getenv("NOTHEME_CONTENT_DIR"); v != "" {
		c.ContentDir = v
	}
	if v := os.Getenv("NOTHEME_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from path, applies environment overrides
// and defaults, and validates the result.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	cfg.LoadFromEnv()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
