package archetypes

import (
	"github.com/automoto/spritewalk/components"
	cfg "github.com/automoto/spritewalk/config"
	"github.com/automoto/spritewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Walker = newArchetype(
		tags.Walker,
		components.Walker,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Sprite = newArchetype(
		components.Sprite,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Hint = newArchetype(
		components.Hint,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
