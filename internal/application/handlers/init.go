// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/bankspace/internal/domain/ports"
	"github.com/ersonp/bankspace/internal/infrastructure/config"
)

// StoreOpener opens the settings store at the given database path.
type StoreOpener func(path string) (ports.SettingsStore, error)

// InitHandler handles workspace initialization.
type InitHandler struct {
	openStore StoreOpener
}

// NewInitHandler creates a new init handler.
func NewInitHandler(openStore StoreOpener) *InitHandler {
	return &InitHandler{
		openStore: openStore,
	}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath   string
	DatabasePath string
}

// Handle writes the default config and creates the default profile database.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("bankspace already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	dbPath := config.SQLitePathForProfile(basePath, config.DefaultProfile)
	if h.openStore != nil {
		store, err := h.openStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("opening settings store: %w", err)
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("creating settings schema: %w", err)
		}
	}

	return &InitResult{
		ConfigPath:   config.ConfigFilePath(basePath),
		DatabasePath: dbPath,
	}, nil
}
