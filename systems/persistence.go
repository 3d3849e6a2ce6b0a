package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/spritewalk/components"
	cfg "github.com/automoto/spritewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool `json:"debug"`
	Fullscreen bool `json:"fullscreen"`
	Scale      int  `json:"scale"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.DisplaySettings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	return parseSettings(data)
}

func parseSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	settings.Scale = clampScale(settings.Scale)

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
		Scale:      s.Scale,
	})
}

// SettingsFromSaved converts saved settings into the component value,
// falling back to defaults when nothing was saved.
func SettingsFromSaved(saved *SavedSettings) components.SettingsData {
	if saved == nil {
		return components.SettingsData{Scale: cfg.DisplaySettings.DefaultScale}
	}
	return components.SettingsData{
		Debug:      saved.Debug,
		Fullscreen: saved.Fullscreen,
		Scale:      clampScale(saved.Scale),
	}
}

// ApplyWindowSettings applies the window part of the settings. Used during
// startup before the game loop runs.
func ApplyWindowSettings(s components.SettingsData) {
	ebiten.SetFullscreen(s.Fullscreen)
	applyWindowScale(s.Scale)
}
