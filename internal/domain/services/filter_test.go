package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

func allEnabled() Enablement {
	return EnablementFunc(func(entities.StorageLocation) (bool, error) { return true, nil })
}

func TestComputeWastedItems_TackleBoxScenario(t *testing.T) {
	catalog := tackleBoxCatalog(t)

	tests := []struct {
		name           string
		enabled        bool
		excluded       *entities.ExclusionSet
		bestInSlotOnly bool
		owned          entities.OwnedItems
		expected       []int
	}{
		{
			name:     "bait owned",
			enabled:  true,
			excluded: entities.NewExclusionSet(),
			owned:    entities.OwnedItems{10: 5},
			expected: []int{10},
		},
		{
			name:     "bait and feather owned",
			enabled:  true,
			excluded: entities.NewExclusionSet(),
			owned:    entities.OwnedItems{10: 5, 11: 100},
			expected: []int{10, 11},
		},
		{
			name:           "best-in-slot toggle hides feather",
			enabled:        true,
			excluded:       entities.NewExclusionSet(),
			bestInSlotOnly: true,
			owned:          entities.OwnedItems{10: 5, 11: 100},
			expected:       []int{10},
		},
		{
			name:     "disabled location",
			enabled:  false,
			excluded: entities.NewExclusionSet(),
			owned:    entities.OwnedItems{10: 5},
			expected: []int{},
		},
		{
			name:     "excluded item",
			enabled:  true,
			excluded: entities.NewExclusionSet(10),
			owned:    entities.OwnedItems{10: 5},
			expected: []int{},
		},
		{
			name:     "nil exclusion set",
			enabled:  true,
			excluded: nil,
			owned:    entities.OwnedItems{10: 5},
			expected: []int{10},
		},
		{
			name:     "unknown owned ids ignored",
			enabled:  true,
			excluded: entities.NewExclusionSet(),
			owned:    entities.OwnedItems{424242: 1},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := entities.Settings{Locations: map[string]bool{"tackle_box": tt.enabled}}

			eligible, err := ComputeWastedItems(catalog, SettingsEnablement(settings), tt.excluded, tt.bestInSlotOnly)
			require.NoError(t, err)

			result := ComputeInBank(eligible, tt.owned)
			assert.Equal(t, tt.expected, itemIDs(result))
		})
	}
}

func TestComputeWastedItems_EligibleIgnoresOwnership(t *testing.T) {
	catalog := newTestCatalog(t)

	eligible, err := ComputeWastedItems(catalog, allEnabled(), entities.NewExclusionSet(999), false)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 11, 20, 30}, itemIDs(eligible))
}

func TestComputeWastedItems_OrderFollowsRegistry(t *testing.T) {
	catalog := newTestCatalog(t)
	owned := entities.OwnedItems{30: 1, 999: 1, 20: 1, 11: 1, 10: 1}

	for i := 0; i < 20; i++ {
		eligible, err := ComputeWastedItems(catalog, allEnabled(), nil, false)
		require.NoError(t, err)
		assert.Equal(t, []int{10, 11, 20, 999, 30}, itemIDs(ComputeInBank(eligible, owned)))
	}
}

func TestComputeWastedItems_EnablementErrorPropagates(t *testing.T) {
	catalog := newTestCatalog(t)
	errConfig := errors.New("config unavailable")

	enablement := EnablementFunc(func(loc entities.StorageLocation) (bool, error) {
		if loc.Key == "seed_vault" {
			return false, errConfig
		}
		return true, nil
	})

	_, err := ComputeWastedItems(catalog, enablement, nil, false)
	require.ErrorIs(t, err, errConfig)
	assert.Contains(t, err.Error(), "seed_vault")
}

func TestComputeWastedItems_CatalogNotReady(t *testing.T) {
	_, err := ComputeWastedItems(&Catalog{}, allEnabled(), nil, false)
	assert.ErrorIs(t, err, ErrCatalogNotReady)
}

func TestComputeInBank_Empty(t *testing.T) {
	assert.Empty(t, ComputeInBank(nil, entities.OwnedItems{10: 1}))
	assert.Empty(t, ComputeInBank([]entities.StorableItem{fishingBait}, nil))
}
