package components

import "github.com/yohamta/donburi"

// SettingsData holds the display settings that can change at runtime.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Scale      int
}

var Settings = donburi.NewComponentType[SettingsData]()
