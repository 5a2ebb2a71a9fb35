package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"xqemulauncher/models"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// SettingsFile is the settings document path, relative to the working directory.
const SettingsFile = "settings.json"

// Manager handles settings persistence
type Manager struct {
	fs   afero.Fs
	path string
}

// NewManager creates a storage manager backed by the real filesystem.
func NewManager() *Manager {
	return &Manager{
		fs:   afero.NewOsFs(),
		path: SettingsFile,
	}
}

// NewManagerWithFs creates a storage manager on the given filesystem and path.
// Tests use this with an in-memory filesystem.
func NewManagerWithFs(fs afero.Fs, path string) *Manager {
	return &Manager{
		fs:   fs,
		path: path,
	}
}

// SaveConfig writes the configuration to the settings file, overwriting any
// existing document.
func (m *Manager) SaveConfig(cfg *models.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	log.Debug().Str("path", m.path).Msg("saving settings")
	if err := afero.WriteFile(m.fs, m.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", m.path, err)
	}
	return nil
}

// LoadConfig reads the configuration from the settings file. A missing file
// yields the defaults. Keys absent from the document keep their default
// values, so a partial document loads without error; a malformed document
// fails with a parse error.
func (m *Manager) LoadConfig() (*models.Config, error) {
	data, err := afero.ReadFile(m.fs, m.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", m.path).Msg("settings file does not exist, using defaults")
			return models.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read %s: %w", m.path, err)
	}

	cfg := models.DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", m.path, err)
	}

	return cfg, nil
}
