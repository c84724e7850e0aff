package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/LFroesch/peek/internal/logger"
)

// DefaultDateFormat renders modification times as "MMM DD HH:MM".
const DefaultDateFormat = "Jan 02 15:04"

const configFileName = "config.yaml"

// Config holds all peek configuration
type Config struct {
	DateFormat   string            `yaml:"date_format"`   // Go time layout for the modification time column
	DefaultApp   string            `yaml:"default_app"`   // Application used when no extension mapping matches; empty means system default
	Apps         map[string]string `yaml:"apps"`          // Extension (without dot) -> application name
	HidePatterns []string          `yaml:"hide_patterns"` // Glob patterns for entry names to leave out of listings
	ShowHidden   bool              `yaml:"show_hidden"`   // Show dotfiles
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DateFormat:   DefaultDateFormat,
		DefaultApp:   "",
		Apps:         make(map[string]string),
		HidePatterns: []string{},
		ShowHidden:   true,
	}
}

// Path returns the path of the config file
func Path() (string, error) {
	dir, err := logger.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads config from ~/.config/peek/config.yaml. A missing file is not an
// error: defaults are written out so users can see and edit them.
func Load() *Config {
	defaultConfig := Default()

	configPath, err := Path()
	if err != nil {
		logger.Error("Failed to resolve config path: %v", err)
		return defaultConfig
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if err := Save(defaultConfig); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
		return defaultConfig
	}

	// Keys missing from the file keep their default values
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		logger.Warn("Failed to parse config file %s: %v, using defaults", configPath, err)
		return defaultConfig
	}

	cfg.normalize()
	return cfg
}

// normalize fills zero values and lowercases extension keys.
func (c *Config) normalize() {
	if strings.TrimSpace(c.DateFormat) == "" {
		c.DateFormat = DefaultDateFormat
	}
	if c.HidePatterns == nil {
		c.HidePatterns = []string{}
	}
	apps := make(map[string]string, len(c.Apps))
	for ext, app := range c.Apps {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		app = strings.TrimSpace(app)
		if ext == "" || app == "" {
			logger.Warn("Ignoring incomplete app mapping %q=%q", ext, app)
			continue
		}
		apps[ext] = app
	}
	c.Apps = apps
}

// Save writes config to ~/.config/peek/config.yaml
func Save(cfg *Config) error {
	configPath, err := Path()
	if err != nil {
		logger.Error("Failed to resolve config path: %v", err)
		return fmt.Errorf("cannot resolve config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", filepath.Dir(configPath), err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		logger.Error("Failed to marshal config: %v", err)
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", configPath, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}
