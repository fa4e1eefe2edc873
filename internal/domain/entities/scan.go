package entities

import "time"

// ScanRecord is a stored summary of one computed result.
// FreeableSlots is the number of reported items, one bank slot each.
type ScanRecord struct {
	ID            string    `json:"id"`
	Profile       string    `json:"profile"`
	ItemIDs       []int     `json:"item_ids"`
	FreeableSlots int       `json:"freeable_slots"`
	CreatedAt     time.Time `json:"created_at"`
}
