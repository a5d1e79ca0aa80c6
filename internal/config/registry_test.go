package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "netpacket") {
		t.Errorf("GetConfigDir() = %v, should contain 'netpacket'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Labels == nil {
		t.Error("NewRegistry().Labels should not be nil")
	}
	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}
	if reg.Preferences.DefaultFormat != "detailed" {
		t.Errorf("NewRegistry().Preferences.DefaultFormat = %q, want %q", reg.Preferences.DefaultFormat, "detailed")
	}
}

func TestLabelOperations(t *testing.T) {
	reg := NewRegistry()

	// Unlabeled types fall back to a hex placeholder
	if got := reg.LabelFor(0x2A); got != "unknown(0x2a)" {
		t.Errorf("LabelFor(0x2A) = %q, want %q", got, "unknown(0x2a)")
	}
	if reg.HasLabel(0x2A) {
		t.Error("HasLabel(0x2A) = true before any label set")
	}

	reg.SetLabel(0x2A, "state_update")
	if got := reg.LabelFor(0x2A); got != "state_update" {
		t.Errorf("LabelFor(0x2A) = %q, want %q", got, "state_update")
	}
	if !reg.HasLabel(0x2A) {
		t.Error("HasLabel(0x2A) = false after SetLabel")
	}

	reg.SetLabel(0x2A, "replaced")
	if got := reg.LabelFor(0x2A); got != "replaced" {
		t.Errorf("LabelFor(0x2A) = %q after replace, want %q", got, "replaced")
	}

	reg.DeleteLabel(0x2A)
	if reg.HasLabel(0x2A) {
		t.Error("HasLabel(0x2A) = true after DeleteLabel")
	}
}

func TestSetLabelOnNilMap(t *testing.T) {
	// A registry decoded from a file without a labels section has a nil map.
	reg := &Registry{Version: 1}
	reg.SetLabel(1, "handshake")
	if got := reg.LabelFor(1); got != "handshake" {
		t.Errorf("LabelFor(1) = %q, want %q", got, "handshake")
	}
}

func TestRegistryYAMLRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.SetLabel(0x01, "handshake")
	reg.SetLabel(0xFF, "shutdown")
	reg.Preferences.DefaultSenderID = 42
	reg.Preferences.DefaultFormat = "json"

	data, err := yaml.Marshal(reg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Registry
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.Version != 1 {
		t.Errorf("version = %d, want 1", decoded.Version)
	}
	if decoded.LabelFor(0x01) != "handshake" || decoded.LabelFor(0xFF) != "shutdown" {
		t.Errorf("labels = %v", decoded.Labels)
	}
	if decoded.Preferences.DefaultSenderID != 42 {
		t.Errorf("default sender ID = %d, want 42", decoded.Preferences.DefaultSenderID)
	}
	if decoded.Preferences.DefaultFormat != "json" {
		t.Errorf("default format = %q, want %q", decoded.Preferences.DefaultFormat, "json")
	}
}
