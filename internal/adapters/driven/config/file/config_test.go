package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_DefaultsWithoutFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	cfg := store.Config()
	assert.Equal(t, 10, cfg.Tags.TimeoutSeconds)
	assert.Equal(t, 2.0, cfg.Tags.RequestsPerSecond)
	assert.Equal(t, 2000, cfg.Parser.MaxImageWidth)
	assert.Empty(t, cfg.Tags.BaseURL)
}

func TestConfigStore_LoadExistingFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[tags]
base_url = "http://localhost:9200"
timeout_seconds = 3

[parser]
max_image_width = 1200
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	cfg := store.Config()
	assert.Equal(t, "http://localhost:9200", cfg.Tags.BaseURL)
	assert.Equal(t, 3, cfg.Tags.TimeoutSeconds)
	assert.Equal(t, 1200, cfg.Parser.MaxImageWidth)
	// Keys absent from the file keep defaults.
	assert.Equal(t, 2.0, cfg.Tags.RequestsPerSecond)
}

func TestConfigStore_SaveAndReload(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	cfg := store.Config()
	cfg.Storage.DataDir = "/tmp/forge-data"
	cfg.Parser.MinImageWidth = 100
	require.NoError(t, store.Update(cfg))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/forge-data", reloaded.Config().Storage.DataDir)
	assert.Equal(t, 100, reloaded.Config().Parser.MinImageWidth)
}

func TestConfigStore_CorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid toml"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}
