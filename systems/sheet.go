package systems

import (
	"log"

	"github.com/automoto/spritewalk/assets"
	"github.com/automoto/spritewalk/components"
	cfg "github.com/automoto/spritewalk/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSheetReload swaps in the sprite sheet from disk when the watcher
// reports a change. A sheet that fails to load is ignored and the previous
// one stays on screen.
func UpdateSheetReload(e *ecs.ECS) {
	entry, ok := components.Sprite.First(e.World)
	if !ok {
		return
	}
	sprite := components.Sprite.Get(entry)
	if sprite.Watcher == nil {
		return
	}

	select {
	case err := <-sprite.Watcher.Errors:
		log.Printf("Warning: sprite sheet watcher: %v", err)
	default:
	}

	select {
	case path := <-sprite.Watcher.Events:
		img, err := assets.LoadSheet(path, sceneConfig(e))
		if err != nil {
			log.Printf("Warning: Could not reload sprite sheet: %v", err)
			return
		}
		sprite.Sheet.Replace(img)
		log.Printf("Reloaded sprite sheet %s", path)
	default:
	}
}

// sceneConfig is the configuration the walkers were built with, or the
// global one before any walker exists.
func sceneConfig(e *ecs.ECS) cfg.Config {
	if entry, ok := components.Walker.First(e.World); ok {
		return components.Walker.Get(entry).Config()
	}
	return *cfg.C
}
