package storage

import (
	"os"
	"path/filepath"
	"testing"

	"focusring/internal/ui/preferences"
)

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saved := preferences.Settings{
		SoundEnabled: false,
		Volume:       0.25,
		DarkMode:     false,
	}
	if err := SaveSettings("FocusRingTest", saved); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	loaded, err := LoadSettings("FocusRingTest")
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded != saved {
		t.Errorf("loaded = %+v, want %+v", loaded, saved)
	}
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	loaded, err := LoadSettings("FocusRingTest")
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded != preferences.DefaultSettings() {
		t.Errorf("loaded = %+v, want defaults", loaded)
	}
}

func TestLoadSettingsRejectsOutOfRangeVolume(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "FocusRingTest")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	raw := []byte("sound_enabled: true\nvolume: 3.5\ndark_mode: true\n")
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), raw, 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadSettings("FocusRingTest")
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded.Volume != preferences.DefaultSettings().Volume {
		t.Errorf("volume = %v, want default for out-of-range value", loaded.Volume)
	}
	if !loaded.SoundEnabled || !loaded.DarkMode {
		t.Error("in-range fields should still be applied")
	}
}

func TestLoadSettingsBadYAML(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "FocusRingTest")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadSettings("FocusRingTest")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if loaded != preferences.DefaultSettings() {
		t.Errorf("on error loaded = %+v, want defaults", loaded)
	}
}
