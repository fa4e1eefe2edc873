package gamedata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/domain/services"
)

func TestLoadCatalog_Builtin(t *testing.T) {
	locations, err := LoadCatalog("")
	require.NoError(t, err)
	require.Len(t, locations, 21)
	assert.Equal(t, "tackle_box", locations[0].Key)
	assert.Equal(t, "huntsmans_kit", locations[len(locations)-1].Key)

	// The built-in data must pass catalog validation.
	catalog, err := services.NewCatalog(locations)
	require.NoError(t, err)

	name, ok := catalog.LookupName(313)
	assert.True(t, ok)
	assert.Equal(t, "Fishing bait", name)

	item, ok := catalog.Item(21028)
	require.True(t, ok)
	assert.True(t, item.IsBestInSlot)
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `locations:
  - key: tackle_box
    name: Tackle Box
    items:
      - {id: 10, name: Fishing Bait}
      - {id: 11, name: Feather, bis: true}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	locations, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, []entities.StorableItem{
		{ItemID: 10, Name: "Fishing Bait"},
		{ItemID: 11, Name: "Feather", IsBestInSlot: true},
	}, locations[0].Items)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not yaml", input: "locations: [\n"},
		{name: "unknown field", input: "locations:\n  - key: a\n    colour: red\n"},
		{name: "no locations", input: "locations: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadItemTable_Builtin(t *testing.T) {
	table, err := LoadItemTable("")
	require.NoError(t, err)
	assert.Positive(t, table.Len())

	noted := table.Composition(21563)
	assert.True(t, noted.Noted)
	assert.Equal(t, 21562, noted.LinkedID)

	placeholder := table.Composition(26561)
	assert.True(t, placeholder.Placeholder)

	plain := table.Composition(313)
	assert.Equal(t, entities.ItemComposition{ID: 313}, plain)
}

func TestParseItemTable(t *testing.T) {
	table, err := ParseItemTable(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())

	_, err = ParseItemTable(strings.NewReader("noted:\n  - {id: 5, linked: 0}\n"))
	assert.Error(t, err)

	_, err = ParseItemTable(strings.NewReader("noted:\n  - {id: 5, linked: 4}\nplaceholders:\n  - {id: 5, template: 4}\n"))
	assert.Error(t, err)
}

func TestItemTable_NormalizesBank(t *testing.T) {
	table, err := LoadItemTable("")
	require.NoError(t, err)

	owned := services.NormalizeBank([]entities.BankSlot{
		{ItemID: 21563, Quantity: 3},
		{ItemID: 21562, Quantity: 2},
		{ItemID: 26561, Quantity: 0},
	}, table)

	assert.Equal(t, entities.OwnedItems{21562: 5}, owned)
}
