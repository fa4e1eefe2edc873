// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for bankspace configuration.
	DefaultConfigDir = ".bankspace"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultProfilesFile is the default profiles file name.
	DefaultProfilesFile = "profiles.yaml"
	// DefaultProfile is the profile used when none is given.
	DefaultProfile = "default"
	// DefaultDBFile is the per-profile settings database file name.
	DefaultDBFile = "bankspace.db"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static configuration (read-only after init).
type Config struct {
	Log     LogConfig     `yaml:"log,omitempty"`
	SQLite  SQLiteConfig  `yaml:"sqlite,omitempty"`
	Catalog CatalogConfig `yaml:"catalog,omitempty"`
	Items   ItemsConfig   `yaml:"items,omitempty"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
	// Format is "console" or "json".
	Format string `yaml:"format,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite settings database.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	// When empty, each profile gets its own database at SQLitePathForProfile.
	Path string `yaml:"path,omitempty"`
}

// CatalogConfig points at an optional catalog file replacing the built-in one.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ItemsConfig points at an optional item composition file replacing the built-in one.
type ItemsConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from the .bankspace directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'bankspace init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.resolvePaths(basePath)

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("BANKSPACE_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// resolvePaths makes relative data file paths relative to basePath.
func (c *Config) resolvePaths(basePath string) {
	if c.SQLite.Path != "" && !filepath.IsAbs(c.SQLite.Path) {
		c.SQLite.Path = filepath.Join(basePath, c.SQLite.Path)
	}
	if c.Catalog.Path != "" && !filepath.IsAbs(c.Catalog.Path) {
		c.Catalog.Path = filepath.Join(basePath, c.Catalog.Path)
	}
	if c.Items.Path != "" && !filepath.IsAbs(c.Items.Path) {
		c.Items.Path = filepath.Join(basePath, c.Items.Path)
	}
}

// ConfigDir returns the path to the .bankspace config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// ProfilesFilePath returns the path to the profiles file.
func ProfilesFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultProfilesFile)
}

// SanitizeProfileName converts a profile name to a safe directory name.
func SanitizeProfileName(name string) string {
	name = strings.ToLower(name)

	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	name = reNonAlphanumeric.ReplaceAllString(name, "")
	name = reMultipleUnderscores.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")

	if name == "" {
		return DefaultProfile
	}

	return name
}

// ProfileDir returns the directory path for a given profile.
func ProfileDir(basePath, profile string) string {
	return filepath.Join(basePath, DefaultConfigDir, "profiles", SanitizeProfileName(profile))
}

// SQLitePathForProfile returns the SQLite database path for a given profile.
func SQLitePathForProfile(basePath, profile string) string {
	return filepath.Join(ProfileDir(basePath, profile), DefaultDBFile)
}

// DatabasePath returns the configured database path, falling back to the
// per-profile location.
func (c *Config) DatabasePath(basePath, profile string) string {
	if c.SQLite.Path != "" {
		return c.SQLite.Path
	}
	return SQLitePathForProfile(basePath, profile)
}
