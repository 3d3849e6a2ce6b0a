package factory

import (
	"github.com/automoto/spritewalk/archetypes"
	"github.com/automoto/spritewalk/components"
	cfg "github.com/automoto/spritewalk/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHint spawns the controls banner. It fades out over the configured
// duration, slowly at first.
func CreateHint(ecs *ecs.ECS, c cfg.Config) *donburi.Entry {
	hint := archetypes.Hint.Spawn(ecs)

	duration := float32(c.Hint.Duration)
	components.Hint.SetValue(hint, components.HintData{
		Text:  c.Hint.Text,
		Color: c.Hint.Color,
		Y:     c.Hint.Y,
		Fade:  gween.New(1, 0, duration, ease.InQuad),
		Step:  1 / float32(c.Window.FrameRate),
		Alpha: 1,
		Done:  duration <= 0 || c.Hint.Text == "",
	})
	return hint
}
