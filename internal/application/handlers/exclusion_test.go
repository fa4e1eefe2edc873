package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusionHandler_HandleSet(t *testing.T) {
	d := newTestDeps(t)
	handler := NewExclusionHandler(d.tracker, d.catalog)

	view, err := handler.HandleSet(t.Context(), "1234, holy wrench, Not A Real Item")
	require.NoError(t, err)

	assert.Equal(t, "1234, holy wrench, Not A Real Item", view.Text)
	assert.Equal(t, []ExclusionEntry{{ItemID: 1234}, {ItemID: 999, Name: "Holy Wrench"}}, view.Entries)
	assert.Equal(t, []string{"Not A Real Item"}, view.Unresolved)
	assert.Equal(t, "1234, holy wrench, Not A Real Item", d.store.Values["exclusions"])
}

func TestExclusionHandler_HandleToggle(t *testing.T) {
	d := newTestDeps(t)
	handler := NewExclusionHandler(d.tracker, d.catalog)

	change, err := handler.HandleToggle(t.Context(), 10)
	require.NoError(t, err)
	assert.True(t, change.Excluded)
	assert.Equal(t, "Fishing Bait", d.store.Values["exclusions"])

	change, err = handler.HandleToggle(t.Context(), 10)
	require.NoError(t, err)
	assert.False(t, change.Excluded)
	assert.Equal(t, "", d.store.Values["exclusions"])
}

func TestExclusionHandler_HandleFlagAndUnflag(t *testing.T) {
	d := newTestDeps(t)
	handler := NewExclusionHandler(d.tracker, d.catalog)

	_, err := handler.HandleFlag(t.Context(), 4151)
	assert.Error(t, err, "only storable items can be flagged")

	change, err := handler.HandleFlag(t.Context(), 999)
	require.NoError(t, err)
	assert.True(t, change.Excluded)

	change, err = handler.HandleFlag(t.Context(), 999)
	require.NoError(t, err)
	assert.True(t, change.Excluded)
	assert.Equal(t, "Holy Wrench", d.store.Values["exclusions"])

	change, err = handler.HandleUnflag(t.Context(), 999)
	require.NoError(t, err)
	assert.False(t, change.Excluded)
	assert.False(t, d.tracker.IsExcluded(999))

	change, err = handler.HandleUnflag(t.Context(), 999)
	require.NoError(t, err)
	assert.False(t, change.Excluded)
	assert.Equal(t, "Holy Wrench", change.Name)
}

func TestExclusionHandler_HandleFlag_SaveFailureKeepsListUnchanged(t *testing.T) {
	d := newTestDeps(t)
	handler := NewExclusionHandler(d.tracker, d.catalog)

	d.store.Err = errors.New("disk full")
	_, err := handler.HandleFlag(t.Context(), 10)
	require.ErrorIs(t, err, d.store.Err)
	assert.False(t, d.tracker.IsExcluded(10))
	assert.Equal(t, "", d.tracker.Exclusions().Text())

	d.store.Err = nil
	change, err := handler.HandleFlag(t.Context(), 10)
	require.NoError(t, err)
	assert.True(t, change.Excluded)
	assert.True(t, d.tracker.IsExcluded(10))
	assert.Equal(t, d.tracker.Exclusions().Text(), d.store.Values["exclusions"])
}

func TestExclusionHandler_HandleSet_SaveFailureKeepsListUnchanged(t *testing.T) {
	d := newTestDeps(t)
	handler := NewExclusionHandler(d.tracker, d.catalog)

	_, err := handler.HandleSet(t.Context(), "holy wrench")
	require.NoError(t, err)

	d.store.Err = errors.New("disk full")
	_, err = handler.HandleSet(t.Context(), "10, 11")
	require.ErrorIs(t, err, d.store.Err)
	d.store.Err = nil

	assert.True(t, d.tracker.IsExcluded(999))
	assert.False(t, d.tracker.IsExcluded(10))
	assert.Equal(t, "holy wrench", d.store.Values["exclusions"])
	assert.Equal(t, d.store.Values["exclusions"], d.tracker.Exclusions().Text())
}

func TestExclusionHandler_HandleLookup(t *testing.T) {
	d := newTestDeps(t)
	handler := NewExclusionHandler(d.tracker, d.catalog)

	name, ok := handler.HandleLookup(t.Context(), 11)
	assert.True(t, ok)
	assert.Equal(t, "Feather", name)

	_, ok = handler.HandleLookup(t.Context(), 12)
	assert.False(t, ok)
}
