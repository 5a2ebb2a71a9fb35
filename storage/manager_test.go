package storage

import (
	"encoding/json"
	"testing"
	"xqemulauncher/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManagerWithFs(afero.NewMemMapFs(), "settings.json")
}

func TestLoadConfigMissingFile(t *testing.T) {
	m := newTestManager()

	cfg, err := m.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultConfig(), cfg)
}

func TestDefaultsRoundTrip(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.SaveConfig(models.DefaultConfig()))

	loaded, err := m.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultConfig(), loaded)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := newTestManager()

	cfg := models.DefaultConfig()
	cfg.XqemuPath = "/opt/xqemu/bin/xqemu"
	cfg.DVDPresent = false
	cfg.ShortBootAnimation = true

	require.NoError(t, m.SaveConfig(cfg))

	loaded, err := m.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigMalformedDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "settings.json", []byte("{not json"), 0644))

	m := NewManagerWithFs(fs, "settings.json")
	_, err := m.LoadConfig()
	assert.Error(t, err)
}

// A partial document loads permissively: keys present in the document
// replace the defaults, keys absent from it keep their default values.
func TestLoadConfigPartialDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := []byte(`{"xqemu_path": "/bin/true", "hdd_locked": true}`)
	require.NoError(t, afero.WriteFile(fs, "settings.json", doc, 0644))

	m := NewManagerWithFs(fs, "settings.json")
	cfg, err := m.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/bin/true", cfg.XqemuPath)
	assert.True(t, cfg.HDDLocked)

	defaults := models.DefaultConfig()
	assert.Equal(t, defaults.MCPXPath, cfg.MCPXPath)
	assert.Equal(t, defaults.FlashPath, cfg.FlashPath)
	assert.Equal(t, defaults.HDDPath, cfg.HDDPath)
	assert.Equal(t, defaults.DVDPresent, cfg.DVDPresent)
	assert.Equal(t, defaults.DVDPath, cfg.DVDPath)
	assert.Equal(t, defaults.ShortBootAnimation, cfg.ShortBootAnimation)
}

func TestSaveConfigDocumentShape(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := NewManagerWithFs(fs, "settings.json")

	require.NoError(t, m.SaveConfig(models.DefaultConfig()))

	data, err := afero.ReadFile(fs, "settings.json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	keys := []string{
		"xqemu_path", "mcpx_path", "flash_path", "hdd_path",
		"hdd_locked", "dvd_present", "dvd_path", "short_anim",
	}
	assert.Len(t, doc, len(keys))
	for _, key := range keys {
		assert.Contains(t, doc, key)
	}
}

func TestSaveConfigOverwrites(t *testing.T) {
	m := newTestManager()

	first := models.DefaultConfig()
	first.XqemuPath = "/old/xqemu"
	require.NoError(t, m.SaveConfig(first))

	second := models.DefaultConfig()
	second.XqemuPath = "/new/xqemu"
	require.NoError(t, m.SaveConfig(second))

	loaded, err := m.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/new/xqemu", loaded.XqemuPath)
}
