package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/domain/ports"
)

// SettingsSource provides the current settings snapshot and stores
// exclusion edits.
type SettingsSource interface {
	Load(ctx context.Context) (entities.Settings, error)
	SetExclusionText(ctx context.Context, text string) error
}

// Tracker holds the latest bank and exclusion snapshots and recomputes the
// wasted-space result on every inbound event. Calls are expected to be
// serialized by the caller; each recomputation reads one consistent snapshot
// of every input.
type Tracker struct {
	catalog   *Catalog
	resolver  ports.ItemResolver
	settings  SettingsSource
	publisher ports.Publisher
	logger    *zap.Logger

	mu         sync.RWMutex
	owned      entities.OwnedItems
	exclusions *ExclusionList
	result     []entities.StorableItem
}

// NewTracker creates a Tracker. The catalog must be ready. publisher may be nil.
func NewTracker(
	catalog *Catalog,
	resolver ports.ItemResolver,
	settings SettingsSource,
	publisher ports.Publisher,
	logger *zap.Logger,
) (*Tracker, error) {
	if catalog == nil || !catalog.Ready() {
		return nil, ErrCatalogNotReady
	}
	if resolver == nil || settings == nil {
		return nil, errors.New("item resolver and settings reader are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	empty, err := ParseExclusions(catalog, "")
	if err != nil {
		return nil, err
	}

	return &Tracker{
		catalog:    catalog,
		resolver:   resolver,
		settings:   settings,
		publisher:  publisher,
		logger:     logger,
		owned:      entities.OwnedItems{},
		exclusions: empty,
	}, nil
}

// Start loads the persisted exclusion text and computes the first result.
func (t *Tracker) Start(ctx context.Context) ([]entities.StorableItem, error) {
	settings, err := t.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	list, err := ParseExclusions(t.catalog, settings.ExclusionText)
	if err != nil {
		return nil, err
	}
	t.setExclusions(list)

	return t.Recompute(ctx)
}

// OnBankChanged rebuilds the owned items from a full container snapshot.
func (t *Tracker) OnBankChanged(ctx context.Context, slots []entities.BankSlot) ([]entities.StorableItem, error) {
	owned := NormalizeBank(slots, t.resolver)

	t.mu.Lock()
	t.owned = owned
	t.mu.Unlock()

	t.logger.Debug("bank changed",
		zap.Int("slots", len(slots)),
		zap.Int("distinct_items", len(owned)))

	return t.Recompute(ctx)
}

// OnConfigChanged recomputes after a location toggle or the best-in-slot
// flag may have changed. Settings are read live, so nothing is rebuilt.
func (t *Tracker) OnConfigChanged(ctx context.Context) ([]entities.StorableItem, error) {
	return t.Recompute(ctx)
}

// OnExclusionTextChanged replaces the exclusion list with a parse of text.
// The normalized text is saved before the list is swapped in, so a failed
// save leaves the current list in place.
func (t *Tracker) OnExclusionTextChanged(ctx context.Context, text string) ([]entities.StorableItem, error) {
	list, err := ParseExclusions(t.catalog, text)
	if err != nil {
		return nil, err
	}

	if err := t.saveExclusions(ctx, list); err != nil {
		return nil, err
	}
	t.setExclusions(list)

	if unresolved := list.Unresolved(); len(unresolved) > 0 {
		t.logger.Debug("unresolved exclusion entries", zap.Strings("tokens", unresolved))
	}

	return t.Recompute(ctx)
}

// ToggleExclusion flags or unflags an item, saves the new text and
// recomputes. Nothing changes when the save fails.
func (t *Tracker) ToggleExclusion(ctx context.Context, itemID int, currentlyExcluded bool) (entities.ExclusionChange, []entities.StorableItem, error) {
	list, change := t.Exclusions().Toggle(itemID, currentlyExcluded)

	if err := t.saveExclusions(ctx, list); err != nil {
		return change, nil, err
	}
	t.setExclusions(list)

	t.logger.Debug("exclusion toggled",
		zap.Int("item_id", change.ItemID),
		zap.String("name", change.Name),
		zap.Bool("excluded", change.Excluded))

	if t.publisher != nil {
		if err := t.publisher.PublishExclusionChange(ctx, change); err != nil {
			return change, nil, fmt.Errorf("publishing exclusion change: %w", err)
		}
	}

	result, err := t.Recompute(ctx)
	return change, result, err
}

func (t *Tracker) saveExclusions(ctx context.Context, list *ExclusionList) error {
	if err := t.settings.SetExclusionText(ctx, list.Text()); err != nil {
		return fmt.Errorf("saving exclusions: %w", err)
	}
	return nil
}

func (t *Tracker) setExclusions(list *ExclusionList) {
	t.mu.Lock()
	t.exclusions = list
	t.mu.Unlock()
}

// Recompute runs the full filter pipeline against the latest snapshots
// and publishes the result.
func (t *Tracker) Recompute(ctx context.Context) ([]entities.StorableItem, error) {
	t.mu.RLock()
	owned := t.owned
	excluded := t.exclusions.Set()
	t.mu.RUnlock()

	settings, err := t.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	eligible, err := ComputeWastedItems(t.catalog, SettingsEnablement(settings), excluded, settings.BestInSlotOnly)
	if err != nil {
		return nil, err
	}
	inBank := ComputeInBank(eligible, owned)

	t.mu.Lock()
	t.result = inBank
	t.mu.Unlock()

	t.logger.Debug("wasted bank space recomputed",
		zap.Int("eligible", len(eligible)),
		zap.Int("in_bank", len(inBank)),
		zap.Int("excluded", excluded.Len()),
		zap.Bool("bis_only", settings.BestInSlotOnly))

	if t.publisher != nil {
		if err := t.publisher.PublishWastedItems(ctx, inBank, owned); err != nil {
			return inBank, fmt.Errorf("publishing result: %w", err)
		}
	}

	return inBank, nil
}

// Result returns the last computed items.
func (t *Tracker) Result() []entities.StorableItem {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]entities.StorableItem(nil), t.result...)
}

// Owned returns the current owned-item snapshot.
func (t *Tracker) Owned() entities.OwnedItems {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.owned
}

// Exclusions returns the current exclusion list.
func (t *Tracker) Exclusions() *ExclusionList {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.exclusions
}

// IsExcluded reports whether the item is currently flagged out.
func (t *Tracker) IsExcluded(itemID int) bool {
	return t.Exclusions().Contains(itemID)
}

// LookupName returns the catalog name of an item id.
func (t *Tracker) LookupName(itemID int) (string, bool) {
	return t.catalog.LookupName(itemID)
}

// LocationName returns the display name of the location holding the item.
func (t *Tracker) LocationName(itemID int) (string, bool) {
	key, ok := t.catalog.LocationOf(itemID)
	if !ok {
		return "", false
	}
	loc, ok := t.catalog.Location(key)
	return loc.Name, ok
}
