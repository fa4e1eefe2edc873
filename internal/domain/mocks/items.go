package mocks

import "github.com/ersonp/bankspace/internal/domain/entities"

// ItemResolver is a map-backed implementation of ports.ItemResolver.
type ItemResolver struct {
	Items map[int]entities.ItemComposition
}

// NewItemResolver creates a resolver knowing the given compositions.
func NewItemResolver(items ...entities.ItemComposition) *ItemResolver {
	r := &ItemResolver{Items: make(map[int]entities.ItemComposition, len(items))}
	for _, item := range items {
		r.Items[item.ID] = item
	}
	return r
}

// Composition returns the registered composition or a plain item.
func (r *ItemResolver) Composition(itemID int) entities.ItemComposition {
	if comp, ok := r.Items[itemID]; ok {
		return comp
	}
	return entities.ItemComposition{ID: itemID}
}
