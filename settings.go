package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"cornersnap/drag"
	"cornersnap/snap"
)

const settingsVersion = 1

type insetSettings struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

func (in insetSettings) insets() snap.Insets {
	return snap.Insets{Top: in.Top, Left: in.Left, Bottom: in.Bottom, Right: in.Right}
}

type Settings struct {
	Version int `json:"version"`

	Threshold       float64     `json:"threshold"`
	Padding         float64     `json:"padding"`
	DefaultCorner   snap.Corner `json:"defaultCorner"`
	DraggingEnabled bool        `json:"draggingEnabled"`
	SymmetricInsets bool        `json:"symmetricInsets"`

	// SafeArea stands in for system chrome (notches, task bars) that the
	// desktop window does not report.
	SafeArea    insetSettings `json:"safeArea"`
	ElementSize float64       `json:"elementSize"`

	WindowWidth  int    `json:"windowWidth"`
	WindowHeight int    `json:"windowHeight"`
	Theme        string `json:"theme"`
}

var gsdefault = Settings{
	Version:         settingsVersion,
	Threshold:       drag.DefaultThreshold,
	Padding:         drag.DefaultPadding,
	DefaultCorner:   snap.UpperRight,
	DraggingEnabled: true,
	ElementSize:     72,
	WindowWidth:     960,
	WindowHeight:    640,
}

var (
	gs               = gsdefault
	settingsDirty    bool
	lastSettingsSave = time.Now()
)

func settingsPath() string {
	return filepath.Join(baseDir, "settings.json")
}

// loadSettings reads settings.json over the defaults. It returns false when
// the file is missing or unreadable, leaving the defaults in place.
func loadSettings() bool {
	data, err := os.ReadFile(settingsPath())
	if err != nil {
		return false
	}
	s := gsdefault
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("load settings: %v", err)
		return false
	}
	gs = sanitizeSettings(s)
	return true
}

func sanitizeSettings(s Settings) Settings {
	if s.Version != settingsVersion {
		s.Version = settingsVersion
	}
	if s.Threshold < 0 {
		s.Threshold = gsdefault.Threshold
	}
	if s.Padding < 0 {
		s.Padding = gsdefault.Padding
	}
	if s.ElementSize <= 0 {
		s.ElementSize = gsdefault.ElementSize
	}
	if s.WindowWidth < 200 || s.WindowHeight < 200 {
		s.WindowWidth, s.WindowHeight = gsdefault.WindowWidth, gsdefault.WindowHeight
	}
	for _, e := range []*float64{&s.SafeArea.Top, &s.SafeArea.Left, &s.SafeArea.Bottom, &s.SafeArea.Right} {
		if *e < 0 {
			*e = 0
		}
	}
	return s
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		log.Printf("save settings: %v", err)
		return
	}
	if err := os.WriteFile(settingsPath(), data, 0644); err != nil {
		log.Printf("save settings: %v", err)
		return
	}
	settingsDirty = false
	lastSettingsSave = time.Now()
}

func (s Settings) dragConfig() drag.Config {
	return drag.Config{
		Threshold:       s.Threshold,
		Padding:         s.Padding,
		DefaultCorner:   s.DefaultCorner,
		DraggingEnabled: s.DraggingEnabled,
		SymmetricInsets: s.SymmetricInsets,
	}
}
