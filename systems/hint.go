package systems

import (
	"image/color"

	"github.com/automoto/spritewalk/components"
	"github.com/automoto/spritewalk/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHint advances the fade of the controls banner by one tick.
func UpdateHint(ecs *ecs.ECS) {
	components.Hint.Each(ecs.World, func(e *donburi.Entry) {
		hint := components.Hint.Get(e)
		if hint.Done {
			return
		}
		alpha, finished := hint.Fade.Update(hint.Step)
		hint.Alpha = alpha
		if finished {
			hint.Alpha = 0
			hint.Done = true
		}
	})
}

// DrawHint draws the banner centered horizontally.
func DrawHint(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Regular) {
		return
	}
	face := fonts.Regular.Get()

	components.Hint.Each(ecs.World, func(e *donburi.Entry) {
		hint := components.Hint.Get(e)
		if hint.Done || hint.Alpha <= 0 {
			return
		}
		bounds := text.BoundString(face, hint.Text)
		x := (screen.Bounds().Dx() - bounds.Dx()) / 2
		text.Draw(screen, hint.Text, face, x, hint.Y, fadeColor(hint.Color, hint.Alpha))
	})
}

// fadeColor scales a premultiplied color by alpha in [0,1].
func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
