package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/rocketeer/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SettingsStore is the key/value store settings are persisted in.
// *gdata.Manager satisfies it.
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	LookSensitivity float64 `json:"lookSensitivity"`
	LookDuringLock  bool    `json:"lookDuringLock"`
}

// OpenSettingsStore opens the gdata store for the configured application.
func OpenSettingsStore() (SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return m, nil
}

// LoadSettings loads settings from store. A nil store or missing item yields
// nil settings and no error.
func LoadSettings(store SettingsStore) (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to store
func SaveSettings(store SettingsStore, s *SavedSettings) error {
	if store == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the persisted subset of a player config.
func CurrentSettings(p cfg.PlayerConfig) *SavedSettings {
	return &SavedSettings{
		LookSensitivity: p.LookSensitivity,
		LookDuringLock:  p.LookDuringLock,
	}
}

// ApplySavedSettings copies saved settings into p, clamping the sensitivity
// to the allowed range.
func ApplySavedSettings(p *cfg.PlayerConfig, saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.LookSensitivity > 0 {
		p.LookSensitivity = mgl64.Clamp(saved.LookSensitivity, cfg.Settings.MinSensitivity, cfg.Settings.MaxSensitivity)
	}
	p.LookDuringLock = saved.LookDuringLock
}
