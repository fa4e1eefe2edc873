package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/bankspace/internal/application/handlers"
	"github.com/ersonp/bankspace/internal/domain/services"
	"github.com/ersonp/bankspace/internal/infrastructure/config"
	"github.com/ersonp/bankspace/internal/infrastructure/gamedata"
	"github.com/ersonp/bankspace/internal/infrastructure/logging"
	"github.com/ersonp/bankspace/internal/infrastructure/settingsdb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers and read-only lookups are exposed.
type Deps struct {
	Config    *config.Config
	Profile   string
	Logger    *zap.Logger
	Catalog   *services.Catalog
	Tracker   *services.Tracker
	Scan      *handlers.ScanHandler
	Exclusion *handlers.ExclusionHandler
	Location  *handlers.LocationHandler
	History   *handlers.HistoryHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	profiles, err := config.LoadProfiles(cwd)
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}

	if _, err := profiles.Get(globalProfile); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger = logger.With(zap.String("profile", globalProfile))

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	items, err := gamedata.LoadItemTable(cfg.Items.Path)
	if err != nil {
		return fmt.Errorf("loading item table: %w", err)
	}

	dbPath := cfg.DatabasePath(cwd, globalProfile)
	store, err := sqlite.NewRepository(config.SQLiteConfig{Path: dbPath})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	logger.Debug("dependencies ready",
		zap.String("database", dbPath),
		zap.Int("storable_items", catalog.ItemCount()),
		zap.Int("item_compositions", items.Len()))

	settings := services.NewSettingsService(store, catalog)
	publisher := handlers.NewHistoryPublisher(store, globalProfile, logger)

	tracker, err := services.NewTracker(catalog, items, settings, publisher, logger)
	if err != nil {
		return fmt.Errorf("creating tracker: %w", err)
	}

	if _, err := tracker.Start(ctx); err != nil {
		return fmt.Errorf("starting tracker: %w", err)
	}

	deps := &Deps{
		Config:    cfg,
		Profile:   globalProfile,
		Logger:    logger,
		Catalog:   catalog,
		Tracker:   tracker,
		Scan:      handlers.NewScanHandler(tracker),
		Exclusion: handlers.NewExclusionHandler(tracker, catalog),
		Location:  handlers.NewLocationHandler(catalog, settings),
		History:   handlers.NewHistoryHandler(store, globalProfile),
	}

	return fn(deps)
}

func loadCatalog(cfg *config.Config) (*services.Catalog, error) {
	locations, err := gamedata.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	catalog, err := services.NewCatalog(locations)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return catalog, nil
}
