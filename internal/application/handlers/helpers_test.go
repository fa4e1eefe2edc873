package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/domain/mocks"
	"github.com/ersonp/bankspace/internal/domain/services"
)

type testDeps struct {
	catalog  *services.Catalog
	store    *mocks.SettingsStore
	settings *services.SettingsService
	tracker  *services.Tracker
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	catalog, err := services.NewCatalog([]entities.StorageLocation{
		{Key: "tackle_box", Name: "Tackle Box", Items: []entities.StorableItem{
			{ItemID: 10, Name: "Fishing Bait"},
			{ItemID: 11, Name: "Feather", IsBestInSlot: true},
		}},
		{Key: "tool_leprechaun", Name: "Tool Leprechaun", Items: []entities.StorableItem{
			{ItemID: 999, Name: "Holy Wrench"},
		}},
	})
	require.NoError(t, err)

	store := mocks.NewSettingsStore()
	settings := services.NewSettingsService(store, catalog)
	resolver := mocks.NewItemResolver(entities.ItemComposition{ID: 1000, Noted: true, LinkedID: 999})
	publisher := NewHistoryPublisher(store, "main", zap.NewNop())

	tracker, err := services.NewTracker(catalog, resolver, settings, publisher, zap.NewNop())
	require.NoError(t, err)

	return &testDeps{
		catalog:  catalog,
		store:    store,
		settings: settings,
		tracker:  tracker,
	}
}
