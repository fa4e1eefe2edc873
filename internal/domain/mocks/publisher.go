package mocks

import (
	"context"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

// Publisher records everything published to it.
type Publisher struct {
	Results [][]entities.StorableItem
	Changes []entities.ExclusionChange
	Err     error
}

// PublishWastedItems records the result.
func (p *Publisher) PublishWastedItems(_ context.Context, items []entities.StorableItem, _ entities.OwnedItems) error {
	if p.Err != nil {
		return p.Err
	}
	p.Results = append(p.Results, items)
	return nil
}

// PublishExclusionChange records the change.
func (p *Publisher) PublishExclusionChange(_ context.Context, change entities.ExclusionChange) error {
	if p.Err != nil {
		return p.Err
	}
	p.Changes = append(p.Changes, change)
	return nil
}

// Last returns the most recent result, or nil.
func (p *Publisher) Last() []entities.StorableItem {
	if len(p.Results) == 0 {
		return nil
	}
	return p.Results[len(p.Results)-1]
}
