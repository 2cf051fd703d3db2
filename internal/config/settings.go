package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StorageDir returns the path to our settings directory
func StorageDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".tubedeck")
}

// SettingsFile returns the path to the settings file
func SettingsFile() string {
	return filepath.Join(StorageDir(), "settings.json")
}

// Settings represents user preferences
type Settings struct {
	PreferredBrowser string `json:"preferred_browser"`           // "Default", "Chrome", "Firefox", "Safari", "Edge"
	Theme            string `json:"theme,omitempty"`             // Color theme name
	AnalyticsOptOut  bool   `json:"analytics_opt_out,omitempty"` // true disables the startup ping
	ClientID         string `json:"client_id,omitempty"`         // anonymous analytics client ID
}

// DefaultSettings returns settings for a fresh install
func DefaultSettings() *Settings {
	return &Settings{PreferredBrowser: "Default"}
}

// LoadSettings loads the persisted settings, returning defaults when no file
// exists yet
func LoadSettings() (*Settings, error) {
	settings := DefaultSettings()

	content, err := os.ReadFile(SettingsFile())
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(content, settings); err != nil {
		return nil, err
	}

	if settings.PreferredBrowser == "" {
		settings.PreferredBrowser = "Default"
	}

	return settings, nil
}

// SaveSettings persists the settings
func SaveSettings(settings *Settings) error {
	if err := os.MkdirAll(StorageDir(), 0755); err != nil {
		return err
	}

	content, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(SettingsFile(), content, 0644)
}

// EnsureClientID mints an anonymous client ID on first run. Returns true when
// a new ID was generated and the settings need saving.
func (s *Settings) EnsureClientID() bool {
	if s.ClientID != "" {
		return false
	}
	s.ClientID = uuid.NewString()
	return true
}
