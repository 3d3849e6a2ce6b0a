package config

// DisplaySettingsConfig contains the limits of the runtime display settings.
type DisplaySettingsConfig struct {
	MinScale     int
	MaxScale     int
	DefaultScale int
	AppName      string // gdata storage namespace
}

// DisplaySettings is the global display settings configuration
var DisplaySettings DisplaySettingsConfig

func init() {
	DisplaySettings = DisplaySettingsConfig{
		MinScale:     1,
		MaxScale:     4,
		DefaultScale: 2,
		AppName:      "spritewalk",
	}
}
