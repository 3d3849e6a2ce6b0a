package systems

import (
	"github.com/automoto/spritewalk/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawWalkers draws the sheet cell of each walker's pose at its position.
func DrawWalkers(ecs *ecs.ECS, screen *ebiten.Image) {
	spriteEntry, ok := components.Sprite.First(ecs.World)
	if !ok {
		return // No sheet loaded
	}
	sheet := components.Sprite.Get(spriteEntry).Sheet

	components.Walker.Each(ecs.World, func(e *donburi.Entry) {
		walker := components.Walker.Get(e)
		pose := walker.LastPose
		sprite := walker.Config().Sprite

		img := sheet.Frame(pose.SheetRect(sprite.FrameWidth, sprite.FrameHeight))

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(pose.Position.X, pose.Position.Y)
		screen.DrawImage(img, drawOp)
	})
}
