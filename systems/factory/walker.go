package factory

import (
	"github.com/automoto/spritewalk/archetypes"
	"github.com/automoto/spritewalk/assets/animations"
	"github.com/automoto/spritewalk/components"
	cfg "github.com/automoto/spritewalk/config"
	"github.com/automoto/spritewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWalker spawns the character at the configured start position.
// The config is rejected before anything is spawned if it is invalid.
func CreateWalker(ecs *ecs.ECS, c cfg.Config) (*donburi.Entry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	walker := archetypes.Walker.Spawn(ecs)

	w := animations.NewWalker(c, tags.ResolvWalker)
	w.Body.Data = walker
	components.Walker.SetValue(walker, components.WalkerData{
		Walker:   w,
		LastPose: w.Pose(),
	})
	components.Object.SetValue(walker, components.ObjectData{Object: w.Body})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(w.Body)
	}

	return walker, nil
}
