package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/bankspace/internal/domain/mocks"
	"github.com/ersonp/bankspace/internal/domain/ports"
	"github.com/ersonp/bankspace/internal/infrastructure/config"
)

func TestInitHandler_Handle_Success(t *testing.T) {
	tmpDir := t.TempDir()
	store := mocks.NewSettingsStore()
	var openedPath string

	handler := NewInitHandler(func(path string) (ports.SettingsStore, error) {
		openedPath = path
		return store, nil
	})

	result, err := handler.Handle(t.Context(), tmpDir)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Contains(t, result.ConfigPath, "config.yaml")
	assert.Equal(t, config.SQLitePathForProfile(tmpDir, config.DefaultProfile), result.DatabasePath)
	assert.Equal(t, result.DatabasePath, openedPath)

	assert.True(t, config.Exists(tmpDir))
}

func TestInitHandler_Handle_AlreadyInitialized(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, config.WriteDefault(tmpDir))

	handler := NewInitHandler(nil)

	_, err := handler.Handle(t.Context(), tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestInitHandler_Handle_SchemaError(t *testing.T) {
	store := mocks.NewSettingsStore()
	store.Err = errors.New("read-only filesystem")

	handler := NewInitHandler(func(string) (ports.SettingsStore, error) {
		return store, nil
	})

	_, err := handler.Handle(t.Context(), t.TempDir())
	assert.ErrorIs(t, err, store.Err)
}
