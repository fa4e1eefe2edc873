package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProfilesConfig holds profile definitions (read/write).
type ProfilesConfig struct {
	Profiles map[string]ProfileEntry `yaml:"profiles,omitempty"`
}

// ProfileEntry holds configuration for a specific profile.
type ProfileEntry struct {
	Description string `yaml:"description,omitempty"`
}

// LoadProfiles loads profile configuration from the .bankspace directory.
func LoadProfiles(basePath string) (*ProfilesConfig, error) {
	data, err := os.ReadFile(ProfilesFilePath(basePath))
	if os.IsNotExist(err) {
		return &ProfilesConfig{
			Profiles: make(map[string]ProfileEntry),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profiles file: %w", err)
	}

	var cfg ProfilesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing profiles file: %w", err)
	}

	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]ProfileEntry)
	}

	return &cfg, nil
}

// Save writes the profiles configuration to the profiles file.
func (p *ProfilesConfig) Save(basePath string) error {
	configDir := ConfigDir(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profiles config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, DefaultProfilesFile), data, 0600); err != nil {
		return fmt.Errorf("writing profiles file: %w", err)
	}

	return nil
}

// Add adds a profile to the configuration.
func (p *ProfilesConfig) Add(name string, entry ProfileEntry) {
	if p.Profiles == nil {
		p.Profiles = make(map[string]ProfileEntry)
	}
	p.Profiles[name] = entry
}

// Remove removes a profile from the configuration.
func (p *ProfilesConfig) Remove(name string) {
	if p.Profiles != nil {
		delete(p.Profiles, name)
	}
}

// Get returns the configuration for a specific profile.
func (p *ProfilesConfig) Get(name string) (*ProfileEntry, error) {
	if len(p.Profiles) == 0 {
		return nil, errors.New("no profiles configured")
	}

	entry, ok := p.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found (available: %s)", name, strings.Join(p.Names(), ", "))
	}

	return &entry, nil
}

// Names returns the profile names sorted alphabetically.
func (p *ProfilesConfig) Names() []string {
	names := make([]string, 0, len(p.Profiles))
	for name := range p.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exists checks if a profile exists in the configuration.
func (p *ProfilesConfig) Exists(name string) bool {
	if p.Profiles == nil {
		return false
	}
	_, ok := p.Profiles[name]
	return ok
}
