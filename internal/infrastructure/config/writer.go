package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# Bankspace Configuration

log:
  level: warn
  # console or json
  format: console

# sqlite:
#   path: shared.db (one database for every profile; default is per profile)

# catalog:
#   path: catalog.yaml (replaces the built-in storage location catalog)

# items:
#   path: items.yaml (replaces the built-in noted/placeholder item table)
`

// WriteDefault creates the .bankspace directory, writes a default config
// file and registers the default profile.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	profiles, err := LoadProfiles(basePath)
	if err != nil {
		return err
	}
	if !profiles.Exists(DefaultProfile) {
		profiles.Add(DefaultProfile, ProfileEntry{Description: "Default profile"})
		if err := profiles.Save(basePath); err != nil {
			return err
		}
	}

	return nil
}

// Write writes the given config to the config file.
func Write(basePath string, cfg *Config) error {
	configDir := ConfigDir(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ConfigFilePath(basePath), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a bankspace config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
