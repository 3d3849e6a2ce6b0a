package systems

import (
	"github.com/automoto/spritewalk/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every body in the collision space after it moved.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
