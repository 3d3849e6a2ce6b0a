package factory

import (
	"github.com/automoto/spritewalk/archetypes"
	"github.com/automoto/spritewalk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSettings(ecs *ecs.ECS, settings components.SettingsData) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, settings)
	return entry
}
