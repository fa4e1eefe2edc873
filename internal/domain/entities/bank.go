package entities

// EmptySlotID marks an empty container slot.
const EmptySlotID = -1

// BankSlot is one raw container slot as reported by the host.
type BankSlot struct {
	ItemID   int `json:"id"`
	Quantity int `json:"quantity"`
}

// ItemComposition holds the attributes needed to normalize a raw slot.
type ItemComposition struct {
	ID          int
	Placeholder bool
	Noted       bool
	// LinkedID is the unnoted item id when Noted is set.
	LinkedID int
}

// OwnedItems maps a canonical item id to the quantity held.
// Only positive quantities are present.
type OwnedItems map[int]int

// Has reports whether the item id is held.
func (o OwnedItems) Has(itemID int) bool {
	_, ok := o[itemID]
	return ok
}

// Total returns the summed quantity of every item.
func (o OwnedItems) Total() int {
	total := 0
	for _, qty := range o {
		total += qty
	}
	return total
}
