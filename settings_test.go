package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cornersnap/snap"
)

func withTempBase(t *testing.T) {
	t.Helper()
	prevBase, prevGS := baseDir, gs
	baseDir = t.TempDir()
	gs = gsdefault
	t.Cleanup(func() {
		baseDir, gs = prevBase, prevGS
	})
}

func TestLoadSettingsMissingKeepsDefaults(t *testing.T) {
	withTempBase(t)
	if loadSettings() {
		t.Fatalf("loadSettings reported success without a file")
	}
	if gs != gsdefault {
		t.Fatalf("defaults changed: %+v", gs)
	}
	cfg := gs.dragConfig()
	if cfg.Threshold != 1400 || cfg.Padding != 16 || cfg.DefaultCorner != snap.UpperRight || !cfg.DraggingEnabled {
		t.Fatalf("unexpected default config %+v", cfg)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	withTempBase(t)
	gs.DefaultCorner = snap.LowerLeft
	gs.Threshold = 900
	gs.SymmetricInsets = true
	gs.SafeArea = insetSettings{Top: 44, Bottom: 34}
	settingsDirty = true
	saveSettings()
	if settingsDirty {
		t.Fatalf("save did not clear the dirty flag")
	}

	data, err := os.ReadFile(filepath.Join(baseDir, "settings.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `"defaultCorner": "lower-left"`) {
		t.Fatalf("corner not stored by name:\n%s", data)
	}

	gs = gsdefault
	if !loadSettings() {
		t.Fatalf("loadSettings failed")
	}
	if gs.DefaultCorner != snap.LowerLeft || gs.Threshold != 900 || !gs.SymmetricInsets {
		t.Fatalf("loaded %+v", gs)
	}
	if gs.SafeArea.insets() != (snap.Insets{Top: 44, Bottom: 34}) {
		t.Fatalf("safe area %+v", gs.SafeArea)
	}
}

func TestLoadSettingsSanitizes(t *testing.T) {
	withTempBase(t)
	body := `{"threshold": -5, "padding": -1, "elementSize": 0, "windowWidth": 10, "safeArea": {"top": -3}, "defaultCorner": "br"}`
	if err := os.WriteFile(filepath.Join(baseDir, "settings.json"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if !loadSettings() {
		t.Fatalf("loadSettings failed")
	}
	if gs.Threshold != gsdefault.Threshold || gs.Padding != gsdefault.Padding || gs.ElementSize != gsdefault.ElementSize {
		t.Fatalf("bad values kept: %+v", gs)
	}
	if gs.WindowWidth != gsdefault.WindowWidth || gs.SafeArea.Top != 0 {
		t.Fatalf("bad window or safe area kept: %+v", gs)
	}
	if gs.DefaultCorner != snap.LowerRight {
		t.Fatalf("corner alias not parsed: %v", gs.DefaultCorner)
	}
	// fields missing from the file keep their defaults
	if !gs.DraggingEnabled {
		t.Fatalf("draggingEnabled lost its default")
	}
}

func TestLoadSettingsRejectsUnknownCorner(t *testing.T) {
	withTempBase(t)
	body := `{"defaultCorner": "middle"}`
	if err := os.WriteFile(filepath.Join(baseDir, "settings.json"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if loadSettings() {
		t.Fatalf("expected unknown corner to fail")
	}
	if gs != gsdefault {
		t.Fatalf("failed load changed settings: %+v", gs)
	}
}
