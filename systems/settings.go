package systems

import (
	"github.com/automoto/spritewalk/components"
	cfg "github.com/automoto/spritewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the display hotkeys and saves any change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	before := *settings
	if !applySettingsInput(settings, input) {
		return
	}

	if settings.Fullscreen != before.Fullscreen {
		ebiten.SetFullscreen(settings.Fullscreen)
	}
	if settings.Scale != before.Scale {
		applyWindowScale(settings.Scale)
	}
	SaveCurrentSettings(settings)
}

// applySettingsInput toggles settings for the actions pressed this frame and
// reports whether anything changed.
func applySettingsInput(s *components.SettingsData, input *components.InputData) bool {
	changed := false

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		s.Debug = !s.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		s.Fullscreen = !s.Fullscreen
		changed = true
	}
	if GetAction(input, cfg.ActionScaleUp).JustPressed && s.Scale < cfg.DisplaySettings.MaxScale {
		s.Scale++
		changed = true
	}
	if GetAction(input, cfg.ActionScaleDown).JustPressed && s.Scale > cfg.DisplaySettings.MinScale {
		s.Scale--
		changed = true
	}

	return changed
}

// clampScale keeps a window scale within the configured limits.
func clampScale(scale int) int {
	return max(cfg.DisplaySettings.MinScale, min(scale, cfg.DisplaySettings.MaxScale))
}

func applyWindowScale(scale int) {
	ebiten.SetWindowSize(cfg.C.Window.Width*scale, cfg.C.Window.Height*scale)
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the global defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Scale: cfg.DisplaySettings.DefaultScale,
		})
	}
	return components.Settings.Get(entry)
}
