package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

var (
	fishingBait = entities.StorableItem{ItemID: 10, Name: "Fishing Bait"}
	feather     = entities.StorableItem{ItemID: 11, Name: "Feather", IsBestInSlot: true}
	holyWrench  = entities.StorableItem{ItemID: 999, Name: "Holy Wrench"}
	spade       = entities.StorableItem{ItemID: 20, Name: "Spade"}
	potatoSeed  = entities.StorableItem{ItemID: 30, Name: "Potato seed"}
)

func testLocations() []entities.StorageLocation {
	return []entities.StorageLocation{
		{Key: "tackle_box", Name: "Tackle Box", Items: []entities.StorableItem{fishingBait, feather}},
		{Key: "tool_leprechaun", Name: "Tool Leprechaun", Items: []entities.StorableItem{spade, holyWrench}},
		{Key: "seed_vault", Name: "Seed Vault", Items: []entities.StorableItem{potatoSeed}},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(testLocations())
	require.NoError(t, err)
	return catalog
}

func tackleBoxCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog(testLocations()[:1])
	require.NoError(t, err)
	return catalog
}

func itemIDs(items []entities.StorableItem) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ItemID
	}
	return ids
}
