// Package ports defines interfaces for external service communication.
package ports

import "github.com/ersonp/bankspace/internal/domain/entities"

// ItemResolver resolves raw item ids to their composition.
// Unknown ids resolve to a plain item (not noted, not a placeholder).
type ItemResolver interface {
	Composition(itemID int) entities.ItemComposition
}
