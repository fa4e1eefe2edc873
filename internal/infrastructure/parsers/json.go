package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

// JSONParser parses a snapshot from a JSON array of {"id", "quantity"} objects.
type JSONParser struct{}

// Parse reads JSON from the reader and returns the slots.
func (p *JSONParser) Parse(r io.Reader) ([]entities.BankSlot, error) {
	var slots []entities.BankSlot

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&slots); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return slots, nil
}
