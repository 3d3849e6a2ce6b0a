package factory

import (
	"github.com/automoto/spritewalk/archetypes"
	"github.com/automoto/spritewalk/assets"
	"github.com/automoto/spritewalk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSprite holds the sprite sheet. watcher may be nil.
func CreateSprite(ecs *ecs.ECS, sheet *assets.Sheet, path string, watcher *assets.SheetWatcher) *donburi.Entry {
	sprite := archetypes.Sprite.Spawn(ecs)
	components.Sprite.SetValue(sprite, components.SpriteData{
		Sheet:   sheet,
		Watcher: watcher,
		Path:    path,
	})
	return sprite
}
