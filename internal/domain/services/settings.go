package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/domain/ports"
)

// SettingsService maps the key/value settings store to typed settings.
type SettingsService struct {
	store   ports.SettingsStore
	catalog *Catalog
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store ports.SettingsStore, catalog *Catalog) *SettingsService {
	return &SettingsService{
		store:   store,
		catalog: catalog,
	}
}

// Load reads a snapshot of every setting.
func (s *SettingsService) Load(ctx context.Context) (entities.Settings, error) {
	values, err := s.store.ListSettings(ctx)
	if err != nil {
		return entities.Settings{}, fmt.Errorf("listing settings: %w", err)
	}

	settings := entities.Settings{
		Locations:     make(map[string]bool),
		ExclusionText: values[entities.SettingExclusions],
	}

	if raw, ok := values[entities.SettingBestInSlotOnly]; ok {
		settings.BestInSlotOnly, err = parseBool(entities.SettingBestInSlotOnly, raw)
		if err != nil {
			return entities.Settings{}, err
		}
	}

	for key, raw := range values {
		locationKey, ok := strings.CutPrefix(key, entities.SettingLocationPrefix)
		if !ok {
			continue
		}
		enabled, err := parseBool(key, raw)
		if err != nil {
			return entities.Settings{}, err
		}
		settings.Locations[locationKey] = enabled
	}

	return settings, nil
}

// SetLocationEnabled stores the enabled flag of a catalog location.
func (s *SettingsService) SetLocationEnabled(ctx context.Context, locationKey string, enabled bool) error {
	if _, ok := s.catalog.Location(locationKey); !ok {
		return fmt.Errorf("location %q not found", locationKey)
	}
	return s.set(ctx, entities.LocationSettingKey(locationKey), strconv.FormatBool(enabled))
}

// SetBestInSlotOnly stores the best-in-slot suppression flag.
func (s *SettingsService) SetBestInSlotOnly(ctx context.Context, enabled bool) error {
	return s.set(ctx, entities.SettingBestInSlotOnly, strconv.FormatBool(enabled))
}

// SetExclusionText stores the raw exclusion text.
func (s *SettingsService) SetExclusionText(ctx context.Context, text string) error {
	return s.set(ctx, entities.SettingExclusions, text)
}

func (s *SettingsService) set(ctx context.Context, key, value string) error {
	if err := s.store.SetSetting(ctx, key, value); err != nil {
		return fmt.Errorf("saving setting %s: %w", key, err)
	}
	return nil
}

func parseBool(key, raw string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid value %q for setting %s: %w", raw, key, err)
	}
	return v, nil
}
