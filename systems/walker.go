package systems

import (
	"github.com/automoto/spritewalk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWalkers feeds the held directions to every walker once per tick.
// Must run AFTER UpdateInput.
func UpdateWalkers(ecs *ecs.ECS) {
	held := HeldDirections(getOrCreateInput(ecs))

	components.Walker.Each(ecs.World, func(e *donburi.Entry) {
		walker := components.Walker.Get(e)
		walker.LastPose = walker.Update(held)
	})
}
