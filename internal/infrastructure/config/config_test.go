package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeProfileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple lowercase",
			input:    "main",
			expected: "main",
		},
		{
			name:     "uppercase converted",
			input:    "IronMan",
			expected: "ironman",
		},
		{
			name:     "spaces to underscores",
			input:    "my alt",
			expected: "my_alt",
		},
		{
			name:     "hyphens to underscores",
			input:    "group-iron",
			expected: "group_iron",
		},
		{
			name:     "special characters removed",
			input:    "zezima!",
			expected: "zezima",
		},
		{
			name:     "consecutive underscores collapsed",
			input:    "hc--im",
			expected: "hc_im",
		},
		{
			name:     "leading trailing underscores trimmed",
			input:    "-main-",
			expected: "main",
		},
		{
			name:     "empty string returns default",
			input:    "",
			expected: "default",
		},
		{
			name:     "only special chars returns default",
			input:    "!!!",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeProfileName(tt.input))
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Empty(t, cfg.Items.Path)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/home/user/bank/.bankspace", ConfigDir("/home/user/bank"))
	assert.Equal(t, "/home/user/bank/.bankspace/config.yaml", ConfigFilePath("/home/user/bank"))
	assert.Equal(t, "/home/user/bank/.bankspace/profiles.yaml", ProfilesFilePath("/home/user/bank"))
	assert.Equal(t, "/home/user/bank/.bankspace/profiles/my_alt/bankspace.db", SQLitePathForProfile("/home/user/bank", "My Alt"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bankspace init")
}

func TestWriteDefaultAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, WriteDefault(tmpDir))
	assert.True(t, Exists(tmpDir))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)

	profiles, err := LoadProfiles(tmpDir)
	require.NoError(t, err)
	assert.True(t, profiles.Exists(DefaultProfile))

	err = WriteDefault(tmpDir)
	assert.Error(t, err, "second init must not overwrite")
}

func TestLoad_OverridesAndRelativePaths(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, DefaultConfigDir)
	require.NoError(t, os.MkdirAll(configDir, 0755))

	content := `log:
  level: debug
catalog:
  path: data/catalog.yaml
items:
  path: /opt/items.yaml
sqlite:
  path: shared.db
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, DefaultConfigFile), []byte(content), 0600))

	t.Setenv("BANKSPACE_LOG_LEVEL", "error")

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, filepath.Join(tmpDir, "data/catalog.yaml"), cfg.Catalog.Path)
	assert.Equal(t, "/opt/items.yaml", cfg.Items.Path)
	assert.Equal(t, filepath.Join(tmpDir, "shared.db"), cfg.DatabasePath(tmpDir, "alt"))
}

func TestDatabasePath_PerProfile(t *testing.T) {
	cfg := Default()
	assert.Equal(t, SQLitePathForProfile("/bank", "alt"), cfg.DatabasePath("/bank", "alt"))
}

func TestWrite(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Default()
	cfg.Log.Format = "json"

	require.NoError(t, Write(tmpDir, cfg))

	loaded, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "json", loaded.Log.Format)
}

func TestProfiles(t *testing.T) {
	tmpDir := t.TempDir()

	profiles, err := LoadProfiles(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, profiles.Profiles)

	_, err = profiles.Get("main")
	assert.Error(t, err)

	profiles.Add("main", ProfileEntry{Description: "Main account"})
	profiles.Add("alt", ProfileEntry{})
	require.NoError(t, profiles.Save(tmpDir))

	loaded, err := LoadProfiles(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alt", "main"}, loaded.Names())

	entry, err := loaded.Get("main")
	require.NoError(t, err)
	assert.Equal(t, "Main account", entry.Description)

	_, err = loaded.Get("ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alt, main")

	loaded.Remove("alt")
	assert.False(t, loaded.Exists("alt"))
}
