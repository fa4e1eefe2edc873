package services

import (
	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/domain/ports"
)

// NormalizeBank builds the owned-item map from a raw container snapshot.
// Empty slots and placeholders are skipped, noted items are counted under
// their unnoted id, and repeated ids are summed. The map is always rebuilt
// from scratch; container diffs are not trusted.
func NormalizeBank(slots []entities.BankSlot, resolver ports.ItemResolver) entities.OwnedItems {
	owned := make(entities.OwnedItems, len(slots))
	for _, slot := range slots {
		if slot.ItemID == entities.EmptySlotID {
			continue
		}

		itemID := slot.ItemID
		comp := resolver.Composition(itemID)
		if comp.Placeholder {
			continue
		}
		if comp.Noted {
			itemID = comp.LinkedID
		}

		owned[itemID] += slot.Quantity
	}

	for id, qty := range owned {
		if qty <= 0 {
			delete(owned, id)
		}
	}
	return owned
}
