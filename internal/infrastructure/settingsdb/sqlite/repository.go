// Package sqlite provides a SQLite implementation of the SettingsStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/infrastructure/config"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.SettingsStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository, creating the parent
// directory if needed.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- User settings (opaque key/value pairs)
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	-- Scan history (one row per published result)
	CREATE TABLE IF NOT EXISTS scans (
		id TEXT PRIMARY KEY,
		profile TEXT NOT NULL,
		item_ids TEXT NOT NULL,
		freeable_slots INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_scans_profile ON scans(profile, created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// GetSetting returns the stored value and whether the key exists.
func (r *Repository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key)

	var value string
	err := row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("scanning setting: %w", err)
	}
	return value, true, nil
}

// SetSetting stores a value, replacing any previous one.
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, key, value, timeNow()); err != nil {
		return fmt.Errorf("saving setting: %w", err)
	}
	return nil
}

// ListSettings returns every stored key/value pair.
func (r *Repository) ListSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("querying settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settings: %w", err)
	}
	return values, nil
}

// SaveScan records a computed result. Missing id and time are filled in.
func (r *Repository) SaveScan(ctx context.Context, scan *entities.ScanRecord) error {
	if scan.ID == "" {
		scan.ID = generateUUID()
	}
	if scan.CreatedAt.IsZero() {
		scan.CreatedAt = timeNow()
	}

	itemIDs := scan.ItemIDs
	if itemIDs == nil {
		itemIDs = []int{}
	}
	data, err := json.Marshal(itemIDs)
	if err != nil {
		return fmt.Errorf("marshaling item ids: %w", err)
	}

	query := `
		INSERT INTO scans (id, profile, item_ids, freeable_slots, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		scan.ID,
		scan.Profile,
		string(data),
		scan.FreeableSlots,
		scan.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving scan: %w", err)
	}
	return nil
}

// ListScans returns the most recent scans for a profile, newest first.
func (r *Repository) ListScans(ctx context.Context, profile string, limit int) ([]entities.ScanRecord, error) {
	query := `
		SELECT id, profile, item_ids, freeable_slots, created_at
		FROM scans
		WHERE profile = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, query, profile, limit)
	if err != nil {
		return nil, fmt.Errorf("querying scans: %w", err)
	}
	defer rows.Close()

	var scans []entities.ScanRecord
	for rows.Next() {
		var scan entities.ScanRecord
		var itemIDs string
		if err := rows.Scan(&scan.ID, &scan.Profile, &itemIDs, &scan.FreeableSlots, &scan.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning scan: %w", err)
		}
		if err := json.Unmarshal([]byte(itemIDs), &scan.ItemIDs); err != nil {
			return nil, fmt.Errorf("unmarshaling item ids: %w", err)
		}
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scans: %w", err)
	}
	return scans, nil
}
