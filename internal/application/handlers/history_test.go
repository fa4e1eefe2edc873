package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/domain/mocks"
)

func TestHistoryPublisher_SkipsEmptyBank(t *testing.T) {
	store := mocks.NewSettingsStore()
	publisher := NewHistoryPublisher(store, "main", nil)

	require.NoError(t, publisher.PublishWastedItems(t.Context(), nil, entities.OwnedItems{}))
	assert.Empty(t, store.Scans)
}

func TestHistoryPublisher_RecordsScan(t *testing.T) {
	store := mocks.NewSettingsStore()
	publisher := NewHistoryPublisher(store, "main", zap.NewNop())

	items := []entities.StorableItem{{ItemID: 10, Name: "Fishing Bait"}}
	require.NoError(t, publisher.PublishWastedItems(t.Context(), items, entities.OwnedItems{10: 5, 4151: 1}))

	require.Len(t, store.Scans, 1)
	assert.Equal(t, []int{10}, store.Scans[0].ItemIDs)
	assert.Equal(t, 1, store.Scans[0].FreeableSlots, "counts reported items, not owned items")

	require.NoError(t, publisher.PublishExclusionChange(t.Context(), entities.ExclusionChange{ItemID: 10, Excluded: true}))
}

func TestHistoryHandler_Handle(t *testing.T) {
	store := mocks.NewSettingsStore()
	now := time.Now()
	store.Scans = []entities.ScanRecord{
		{ID: "a", Profile: "main", CreatedAt: now.Add(-time.Hour)},
		{ID: "b", Profile: "main", CreatedAt: now},
		{ID: "c", Profile: "alt", CreatedAt: now},
	}

	scans, err := NewHistoryHandler(store, "main").Handle(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, scans, 2)
	assert.Equal(t, "b", scans[0].ID)
	assert.Equal(t, "a", scans[1].ID)
}
