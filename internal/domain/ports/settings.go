package ports

import (
	"context"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

// SettingsStore persists user settings as opaque key/value strings,
// along with the scan history.
type SettingsStore interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error

	// GetSetting returns the stored value and whether the key exists.
	GetSetting(ctx context.Context, key string) (string, bool, error)

	// SetSetting stores a value, replacing any previous one.
	SetSetting(ctx context.Context, key, value string) error

	// ListSettings returns every stored key/value pair.
	ListSettings(ctx context.Context) (map[string]string, error)

	// SaveScan records a computed result.
	SaveScan(ctx context.Context, scan *entities.ScanRecord) error

	// ListScans returns the most recent scans for a profile, newest first.
	ListScans(ctx context.Context, profile string, limit int) ([]entities.ScanRecord, error)
}
