// Package entities contains core domain data structures.
package entities

// StorableItem is an item that can be kept in a secondary storage location
// instead of the bank. Identity is ItemID.
type StorableItem struct {
	ItemID       int    `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	IsBestInSlot bool   `json:"bis,omitempty" yaml:"bis,omitempty"`
}

// StorageLocation is a named group of storable items, such as the tackle box
// or the seed vault. Key is the stable identifier used by settings.
type StorageLocation struct {
	Key   string         `json:"key" yaml:"key"`
	Name  string         `json:"name" yaml:"name"`
	Items []StorableItem `json:"items" yaml:"items"`
}

// ItemIDs returns the ids of the location's items in location order.
func (l StorageLocation) ItemIDs() []int {
	ids := make([]int, len(l.Items))
	for i, item := range l.Items {
		ids[i] = item.ItemID
	}
	return ids
}
