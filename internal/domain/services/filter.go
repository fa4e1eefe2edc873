package services

import (
	"fmt"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

// Enablement decides whether a location currently counts toward the result.
// It is consulted on every computation and never cached.
type Enablement interface {
	Enabled(location entities.StorageLocation) (bool, error)
}

// EnablementFunc adapts a function to the Enablement interface.
type EnablementFunc func(location entities.StorageLocation) (bool, error)

// Enabled calls f(location).
func (f EnablementFunc) Enabled(location entities.StorageLocation) (bool, error) {
	return f(location)
}

// SettingsEnablement enables locations according to a settings snapshot.
type SettingsEnablement entities.Settings

// Enabled reports the snapshot's flag for the location.
func (s SettingsEnablement) Enabled(location entities.StorageLocation) (bool, error) {
	return entities.Settings(s).LocationEnabled(location.Key), nil
}

// ComputeWastedItems returns every item of every enabled location that is
// not excluded, in registry then location order. When bestInSlotOnly is set,
// best-in-slot items are suppressed. Ownership is not considered here; see
// ComputeInBank.
func ComputeWastedItems(
	catalog *Catalog,
	enablement Enablement,
	excluded *entities.ExclusionSet,
	bestInSlotOnly bool,
) ([]entities.StorableItem, error) {
	locations, err := catalog.Locations()
	if err != nil {
		return nil, err
	}

	eligible := make([]entities.StorableItem, 0)
	for _, loc := range locations {
		enabled, err := enablement.Enabled(loc)
		if err != nil {
			return nil, fmt.Errorf("checking location %s: %w", loc.Key, err)
		}
		if !enabled {
			continue
		}

		for _, item := range loc.Items {
			if excluded.Contains(item.ItemID) {
				continue
			}
			if bestInSlotOnly && item.IsBestInSlot {
				continue
			}
			eligible = append(eligible, item)
		}
	}

	return eligible, nil
}

// ComputeInBank keeps the eligible items that are currently owned,
// preserving the eligible order.
func ComputeInBank(eligible []entities.StorableItem, owned entities.OwnedItems) []entities.StorableItem {
	inBank := make([]entities.StorableItem, 0, len(eligible))
	for _, item := range eligible {
		if owned.Has(item.ItemID) {
			inBank = append(inBank, item)
		}
	}
	return inBank
}
