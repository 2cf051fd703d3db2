package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withTempHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
	return tmpDir
}

func TestLoadSettingsNoFile(t *testing.T) {
	withTempHome(t)

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.PreferredBrowser != "Default" {
		t.Errorf("expected PreferredBrowser 'Default', got %q", settings.PreferredBrowser)
	}
	if settings.AnalyticsOptOut {
		t.Error("expected analytics enabled by default")
	}
	if settings.ClientID != "" {
		t.Error("expected no client ID before EnsureClientID")
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	withTempHome(t)

	settings := &Settings{
		PreferredBrowser: "Firefox",
		Theme:            "YouTube Light",
		AnalyticsOptOut:  true,
		ClientID:         "test-id",
	}
	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if loaded.PreferredBrowser != "Firefox" {
		t.Errorf("expected PreferredBrowser 'Firefox', got %q", loaded.PreferredBrowser)
	}
	if loaded.Theme != "YouTube Light" {
		t.Errorf("expected theme 'YouTube Light', got %q", loaded.Theme)
	}
	if !loaded.AnalyticsOptOut {
		t.Error("expected AnalyticsOptOut=true")
	}
	if loaded.ClientID != "test-id" {
		t.Errorf("expected ClientID 'test-id', got %q", loaded.ClientID)
	}
}

func TestLoadSettingsEmptyBrowser(t *testing.T) {
	tmpDir := withTempHome(t)

	dir := filepath.Join(tmpDir, ".tubedeck")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"theme":"Nord"}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings.PreferredBrowser != "Default" {
		t.Errorf("missing browser should default to 'Default', got %q", settings.PreferredBrowser)
	}
	if settings.Theme != "Nord" {
		t.Errorf("expected theme 'Nord', got %q", settings.Theme)
	}
}

func TestLoadSettingsCorruptFile(t *testing.T) {
	tmpDir := withTempHome(t)

	dir := filepath.Join(tmpDir, ".tubedeck")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettings(); err == nil {
		t.Error("expected error for corrupt settings file")
	}
}

func TestEnsureClientID(t *testing.T) {
	settings := DefaultSettings()

	if !settings.EnsureClientID() {
		t.Error("first EnsureClientID should mint an ID")
	}
	if settings.ClientID == "" {
		t.Fatal("expected a non-empty client ID")
	}
	if strings.Count(settings.ClientID, "-") != 4 {
		t.Errorf("expected a UUID-shaped client ID, got %q", settings.ClientID)
	}

	id := settings.ClientID
	if settings.EnsureClientID() {
		t.Error("second EnsureClientID should be a no-op")
	}
	if settings.ClientID != id {
		t.Error("EnsureClientID must not replace an existing ID")
	}
}

func TestSettingsFilePath(t *testing.T) {
	tmpDir := withTempHome(t)

	want := filepath.Join(tmpDir, ".tubedeck", "settings.json")
	if SettingsFile() != want {
		t.Errorf("SettingsFile() = %q, want %q", SettingsFile(), want)
	}
}
