package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/domain/services"
)

// ExclusionHandler manages the user's exclusion list.
type ExclusionHandler struct {
	tracker *services.Tracker
	catalog *services.Catalog
}

// NewExclusionHandler creates a new exclusion handler.
func NewExclusionHandler(tracker *services.Tracker, catalog *services.Catalog) *ExclusionHandler {
	return &ExclusionHandler{
		tracker: tracker,
		catalog: catalog,
	}
}

// ExclusionEntry is one resolved exclusion.
type ExclusionEntry struct {
	ItemID int
	Name   string
}

// ExclusionView describes the current exclusion list.
type ExclusionView struct {
	Text       string
	Entries    []ExclusionEntry
	Unresolved []string
}

// HandleShow returns the current exclusion list.
func (h *ExclusionHandler) HandleShow(_ context.Context) *ExclusionView {
	list := h.tracker.Exclusions()
	view := &ExclusionView{
		Text:       list.Text(),
		Unresolved: list.Unresolved(),
	}
	for _, id := range list.Set().IDs() {
		name, _ := h.catalog.LookupName(id)
		view.Entries = append(view.Entries, ExclusionEntry{ItemID: id, Name: name})
	}
	return view
}

// HandleSet replaces the exclusion text.
func (h *ExclusionHandler) HandleSet(ctx context.Context, text string) (*ExclusionView, error) {
	if _, err := h.tracker.OnExclusionTextChanged(ctx, text); err != nil {
		return nil, fmt.Errorf("applying exclusions: %w", err)
	}
	return h.HandleShow(ctx), nil
}

// HandleToggle flags the item if it is included, or unflags it if excluded.
func (h *ExclusionHandler) HandleToggle(ctx context.Context, itemID int) (entities.ExclusionChange, error) {
	return h.toggle(ctx, itemID, h.tracker.IsExcluded(itemID))
}

// HandleFlag excludes a storable item. Flagging an excluded item is a no-op.
func (h *ExclusionHandler) HandleFlag(ctx context.Context, itemID int) (entities.ExclusionChange, error) {
	if !h.catalog.IsStorable(itemID) {
		return entities.ExclusionChange{}, fmt.Errorf("item %d is not storable in any location", itemID)
	}
	if h.tracker.IsExcluded(itemID) {
		name, _ := h.catalog.LookupName(itemID)
		return entities.ExclusionChange{ItemID: itemID, Name: name, Excluded: true}, nil
	}
	return h.toggle(ctx, itemID, false)
}

// HandleUnflag removes an item from the exclusions. Unflagging an included
// item is a no-op.
func (h *ExclusionHandler) HandleUnflag(ctx context.Context, itemID int) (entities.ExclusionChange, error) {
	if !h.tracker.IsExcluded(itemID) {
		name, _ := h.catalog.LookupName(itemID)
		return entities.ExclusionChange{ItemID: itemID, Name: name}, nil
	}
	return h.toggle(ctx, itemID, true)
}

// HandleLookup returns the catalog name of an item id.
func (h *ExclusionHandler) HandleLookup(_ context.Context, itemID int) (string, bool) {
	return h.tracker.LookupName(itemID)
}

func (h *ExclusionHandler) toggle(ctx context.Context, itemID int, currentlyExcluded bool) (entities.ExclusionChange, error) {
	change, _, err := h.tracker.ToggleExclusion(ctx, itemID, currentlyExcluded)
	if err != nil {
		return change, fmt.Errorf("toggling exclusion: %w", err)
	}
	return change, nil
}
