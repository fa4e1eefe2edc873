package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/domain/services"
)

// LocationHandler manages storage location toggles.
type LocationHandler struct {
	catalog  *services.Catalog
	settings *services.SettingsService
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(catalog *services.Catalog, settings *services.SettingsService) *LocationHandler {
	return &LocationHandler{
		catalog:  catalog,
		settings: settings,
	}
}

// LocationStatus pairs a location with its enabled flag.
type LocationStatus struct {
	Location entities.StorageLocation
	Enabled  bool
}

// LocationsView lists every location and the global best-in-slot flag.
type LocationsView struct {
	Locations      []LocationStatus
	BestInSlotOnly bool
}

// HandleList returns every location in catalog order.
func (h *LocationHandler) HandleList(ctx context.Context) (*LocationsView, error) {
	locations, err := h.catalog.Locations()
	if err != nil {
		return nil, err
	}
	settings, err := h.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	view := &LocationsView{
		Locations:      make([]LocationStatus, 0, len(locations)),
		BestInSlotOnly: settings.BestInSlotOnly,
	}
	for _, loc := range locations {
		view.Locations = append(view.Locations, LocationStatus{
			Location: loc,
			Enabled:  settings.LocationEnabled(loc.Key),
		})
	}
	return view, nil
}

// HandleSetEnabled enables or disables the given locations.
// Every key is checked before anything is saved.
func (h *LocationHandler) HandleSetEnabled(ctx context.Context, keys []string, enabled bool) error {
	for _, key := range keys {
		if _, ok := h.catalog.Location(key); !ok {
			return fmt.Errorf("location %q not found", key)
		}
	}
	for _, key := range keys {
		if err := h.settings.SetLocationEnabled(ctx, key, enabled); err != nil {
			return err
		}
	}
	return nil
}

// HandleSetBestInSlotOnly sets the best-in-slot suppression flag.
func (h *LocationHandler) HandleSetBestInSlotOnly(ctx context.Context, enabled bool) error {
	return h.settings.SetBestInSlotOnly(ctx, enabled)
}
