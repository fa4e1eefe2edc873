package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/domain/services"
)

// ScanHandler feeds bank snapshots to the tracker.
type ScanHandler struct {
	tracker *services.Tracker
}

// NewScanHandler creates a new scan handler.
func NewScanHandler(tracker *services.Tracker) *ScanHandler {
	return &ScanHandler{
		tracker: tracker,
	}
}

// ScanResult contains the wasted-space items found in a snapshot.
type ScanResult struct {
	Items    []ScanItem
	Slots    int
	Distinct int
}

// ScanItem is one storable item present in the bank.
type ScanItem struct {
	Item     entities.StorableItem
	Location string
	Quantity int
}

// Handle rebuilds the owned items from slots and returns the result.
func (h *ScanHandler) Handle(ctx context.Context, slots []entities.BankSlot) (*ScanResult, error) {
	items, err := h.tracker.OnBankChanged(ctx, slots)
	if err != nil {
		return nil, fmt.Errorf("computing wasted bank space: %w", err)
	}

	owned := h.tracker.Owned()
	result := &ScanResult{
		Items:    make([]ScanItem, 0, len(items)),
		Slots:    len(slots),
		Distinct: len(owned),
	}
	for _, item := range items {
		location, _ := h.tracker.LocationName(item.ItemID)
		result.Items = append(result.Items, ScanItem{
			Item:     item,
			Location: location,
			Quantity: owned[item.ItemID],
		})
	}

	return result, nil
}
