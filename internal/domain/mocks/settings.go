// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sort"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

// SettingsStore is an in-memory implementation of ports.SettingsStore.
type SettingsStore struct {
	Values map[string]string
	Scans  []entities.ScanRecord
	Err    error
}

// NewSettingsStore creates a new mock SettingsStore.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		Values: make(map[string]string),
	}
}

// EnsureSchema creates the storage schema if it doesn't exist.
func (m *SettingsStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the underlying connection.
func (m *SettingsStore) Close() error {
	return nil
}

// GetSetting returns the stored value and whether the key exists.
func (m *SettingsStore) GetSetting(_ context.Context, key string) (string, bool, error) {
	if m.Err != nil {
		return "", false, m.Err
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// SetSetting stores a value.
func (m *SettingsStore) SetSetting(_ context.Context, key, value string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Values[key] = value
	return nil
}

// ListSettings returns a copy of every stored pair.
func (m *SettingsStore) ListSettings(_ context.Context) (map[string]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make(map[string]string, len(m.Values))
	for k, v := range m.Values {
		out[k] = v
	}
	return out, nil
}

// SaveScan records a scan.
func (m *SettingsStore) SaveScan(_ context.Context, scan *entities.ScanRecord) error {
	if m.Err != nil {
		return m.Err
	}
	m.Scans = append(m.Scans, *scan)
	return nil
}

// ListScans returns scans for the profile, newest first.
func (m *SettingsStore) ListScans(_ context.Context, profile string, limit int) ([]entities.ScanRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.ScanRecord
	for _, s := range m.Scans {
		if s.Profile == profile {
			result = append(result, s)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
