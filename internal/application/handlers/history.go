package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/domain/ports"
)

// HistoryPublisher records each published result in the settings store.
// Exclusion changes are only logged.
type HistoryPublisher struct {
	store   ports.SettingsStore
	profile string
	logger  *zap.Logger
}

// NewHistoryPublisher creates a publisher recording scans for profile.
func NewHistoryPublisher(store ports.SettingsStore, profile string, logger *zap.Logger) *HistoryPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryPublisher{
		store:   store,
		profile: profile,
		logger:  logger,
	}
}

// PublishWastedItems stores a scan record for a result computed from a
// non-empty bank. Results computed before any snapshot are skipped.
func (p *HistoryPublisher) PublishWastedItems(ctx context.Context, items []entities.StorableItem, owned entities.OwnedItems) error {
	if len(owned) == 0 {
		return nil
	}

	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ItemID
	}

	scan := &entities.ScanRecord{
		Profile:       p.profile,
		ItemIDs:       ids,
		FreeableSlots: len(items),
	}
	if err := p.store.SaveScan(ctx, scan); err != nil {
		return fmt.Errorf("recording scan: %w", err)
	}
	p.logger.Debug("scan recorded", zap.String("id", scan.ID), zap.Int("items", len(ids)))
	return nil
}

// PublishExclusionChange logs the change.
func (p *HistoryPublisher) PublishExclusionChange(_ context.Context, change entities.ExclusionChange) error {
	p.logger.Info("exclusion changed",
		zap.String("profile", p.profile),
		zap.Int("item_id", change.ItemID),
		zap.Bool("excluded", change.Excluded))
	return nil
}

// HistoryHandler lists recorded scans.
type HistoryHandler struct {
	store   ports.SettingsStore
	profile string
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(store ports.SettingsStore, profile string) *HistoryHandler {
	return &HistoryHandler{
		store:   store,
		profile: profile,
	}
}

// Handle returns the most recent scans, newest first.
func (h *HistoryHandler) Handle(ctx context.Context, limit int) ([]entities.ScanRecord, error) {
	scans, err := h.store.ListScans(ctx, h.profile, limit)
	if err != nil {
		return nil, fmt.Errorf("listing scans: %w", err)
	}
	return scans, nil
}
