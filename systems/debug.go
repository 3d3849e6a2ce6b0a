package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/spritewalk/components"
	cfg "github.com/automoto/spritewalk/config"
	"github.com/automoto/spritewalk/fonts"
	"github.com/automoto/spritewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	// Draw all collision objects in the space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvWalker) {
				c = cfg.Green
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	if !fonts.Loaded(fonts.Small) {
		return
	}
	line := 12
	components.Walker.Each(ecs.World, func(e *donburi.Entry) {
		text.Draw(screen, DebugLine(components.Walker.Get(e)), fonts.Small.Get(), 4, line, cfg.BrightYellow)
		line += 12
	})
}

// DebugLine describes a walker's state for the overlay.
func DebugLine(w *components.WalkerData) string {
	p := w.LastPose
	return fmt.Sprintf("pos %.1f,%.1f  facing %s  frame %d  tick %d",
		p.Position.X, p.Position.Y, p.Facing, p.Frame, w.TicksLeft())
}
