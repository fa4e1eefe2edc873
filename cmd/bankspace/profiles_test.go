package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/bankspace/internal/infrastructure/config"
)

func TestCreateProfile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, config.WriteDefault(tmpDir))

	dbPath, err := createProfile(t.Context(), tmpDir, "alt", "Alt account")
	require.NoError(t, err)

	assert.Equal(t, config.SQLitePathForProfile(tmpDir, "alt"), dbPath)
	assert.FileExists(t, dbPath)

	profiles, err := config.LoadProfiles(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alt", "default"}, profiles.Names())

	entry, err := profiles.Get("alt")
	require.NoError(t, err)
	assert.Equal(t, "Alt account", entry.Description)
}

func TestCreateProfile_Duplicate(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, config.WriteDefault(tmpDir))

	_, err := createProfile(t.Context(), tmpDir, "alt", "")
	require.NoError(t, err)

	_, err = createProfile(t.Context(), tmpDir, "alt", "")
	assert.ErrorContains(t, err, "already exists")

	_, err = createProfile(t.Context(), tmpDir, "ALT", "")
	assert.ErrorContains(t, err, "share a data directory")
}

func TestCreateProfile_NotInitialized(t *testing.T) {
	_, err := createProfile(t.Context(), t.TempDir(), "alt", "")
	assert.ErrorContains(t, err, "bankspace init")
}

func TestDeleteProfile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, config.WriteDefault(tmpDir))

	_, err := createProfile(t.Context(), tmpDir, "alt", "")
	require.NoError(t, err)

	require.NoError(t, deleteProfile(tmpDir, "alt"))
	assert.NoDirExists(t, config.ProfileDir(tmpDir, "alt"))

	profiles, err := config.LoadProfiles(tmpDir)
	require.NoError(t, err)
	assert.False(t, profiles.Exists("alt"))
}

func TestDeleteProfile_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, config.WriteDefault(tmpDir))

	assert.ErrorContains(t, deleteProfile(tmpDir, config.DefaultProfile), "cannot be deleted")
	assert.ErrorContains(t, deleteProfile(tmpDir, "missing"), "not found")
}
