package ports

import (
	"context"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

// Publisher receives results whenever a recomputation completes.
type Publisher interface {
	// PublishWastedItems delivers the eligible-and-owned items in catalog order.
	PublishWastedItems(ctx context.Context, items []entities.StorableItem, owned entities.OwnedItems) error

	// PublishExclusionChange notifies that an item was flagged or unflagged.
	PublishExclusionChange(ctx context.Context, change entities.ExclusionChange) error
}
