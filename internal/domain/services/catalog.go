// Package services contains domain business logic.
package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

// CatalogState reports whether the catalog can serve lookups.
type CatalogState int

// Catalog states.
const (
	CatalogUninitialized CatalogState = iota
	CatalogReady
)

func (s CatalogState) String() string {
	switch s {
	case CatalogReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

var (
	// ErrCatalogNotReady is returned by operations invoked before Load.
	ErrCatalogNotReady = errors.New("catalog is not ready")
	// ErrCatalogLoaded is returned when Load is called twice.
	ErrCatalogLoaded = errors.New("catalog is already loaded")
	// ErrDuplicateItem is returned when an item id appears more than once.
	ErrDuplicateItem = errors.New("duplicate item id in catalog")
	// ErrInvalidItem is returned for items with a non-positive id or empty name.
	ErrInvalidItem = errors.New("invalid catalog item")
	// ErrDuplicateLocation is returned for empty or repeated location keys.
	ErrDuplicateLocation = errors.New("invalid or duplicate location key")
)

// Catalog is the registry of storage locations and their storable items.
// The zero value is uninitialized; Load moves it to ready exactly once.
type Catalog struct {
	mu        sync.RWMutex
	state     CatalogState
	locations []entities.StorageLocation
	byID      map[int]catalogEntry
}

type catalogEntry struct {
	item     entities.StorableItem
	location string
}

// NewCatalog creates a ready catalog from the given locations.
func NewCatalog(locations []entities.StorageLocation) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Load(locations); err != nil {
		return nil, err
	}
	return c, nil
}

// Load validates the locations and makes the catalog ready.
// The catalog keeps its own copy of the data.
func (c *Catalog) Load(locations []entities.StorageLocation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == CatalogReady {
		return ErrCatalogLoaded
	}

	byID, err := validateLocations(locations)
	if err != nil {
		return err
	}

	c.locations = copyLocations(locations)
	c.byID = byID
	c.state = CatalogReady
	return nil
}

// validateLocations checks location keys and item ids and builds the id index.
func validateLocations(locations []entities.StorageLocation) (map[int]catalogEntry, error) {
	keys := make(map[string]bool, len(locations))
	byID := make(map[int]catalogEntry)

	for _, loc := range locations {
		key := strings.TrimSpace(loc.Key)
		if key == "" || keys[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocation, loc.Key)
		}
		keys[key] = true

		for _, item := range loc.Items {
			if item.ItemID <= 0 || strings.TrimSpace(item.Name) == "" {
				return nil, fmt.Errorf("%w: location %s, id %d, name %q", ErrInvalidItem, loc.Key, item.ItemID, item.Name)
			}
			if prev, ok := byID[item.ItemID]; ok {
				return nil, fmt.Errorf("%w: %d in %s and %s", ErrDuplicateItem, item.ItemID, prev.location, loc.Key)
			}
			byID[item.ItemID] = catalogEntry{item: item, location: loc.Key}
		}
	}

	return byID, nil
}

func copyLocations(locations []entities.StorageLocation) []entities.StorageLocation {
	out := make([]entities.StorageLocation, len(locations))
	for i, loc := range locations {
		out[i] = entities.StorageLocation{
			Key:   loc.Key,
			Name:  loc.Name,
			Items: append([]entities.StorableItem(nil), loc.Items...),
		}
	}
	return out
}

// State returns the current catalog state.
func (c *Catalog) State() CatalogState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Ready reports whether Load has completed.
func (c *Catalog) Ready() bool {
	return c.State() == CatalogReady
}

// Locations returns every location in registry order.
// The returned slice is shared and must not be modified by callers.
func (c *Catalog) Locations() ([]entities.StorageLocation, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state != CatalogReady {
		return nil, ErrCatalogNotReady
	}
	return c.locations, nil
}

// Location returns the location with the given key.
func (c *Catalog) Location(key string) (entities.StorageLocation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, loc := range c.locations {
		if loc.Key == key {
			return loc, true
		}
	}
	return entities.StorageLocation{}, false
}

// LookupName returns the display name for an item id.
func (c *Catalog) LookupName(itemID int) (string, bool) {
	item, ok := c.Item(itemID)
	if !ok {
		return "", false
	}
	return item.Name, true
}

// Item returns the storable item with the given id.
func (c *Catalog) Item(itemID int) (entities.StorableItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.byID[itemID]
	return entry.item, ok
}

// LocationOf returns the key of the location holding the item.
func (c *Catalog) LocationOf(itemID int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.byID[itemID]
	return entry.location, ok
}

// IsStorable reports whether any location can hold the item.
func (c *Catalog) IsStorable(itemID int) bool {
	_, ok := c.Item(itemID)
	return ok
}

// ItemCount returns the number of items across all locations.
func (c *Catalog) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}
