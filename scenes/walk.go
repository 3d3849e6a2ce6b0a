package scenes

import (
	"image/color"

	"github.com/automoto/spritewalk/assets"
	"github.com/automoto/spritewalk/components"
	cfg "github.com/automoto/spritewalk/config"
	"github.com/automoto/spritewalk/systems"
	"github.com/automoto/spritewalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionCellSize is the resolv grid cell used for the window space.
const collisionCellSize = 16

// WalkOptions are the collaborators of the walk scene.
type WalkOptions struct {
	Sheet     *assets.Sheet
	SheetPath string               // empty for the embedded sheet
	Watcher   *assets.SheetWatcher // nil unless reloading is enabled
	Settings  components.SettingsData
}

// WalkScene is the single screen of the game: one walker in the window.
type WalkScene struct {
	ecs *ecs.ECS
}

// NewWalkScene builds the world. It fails only if the config is invalid.
func NewWalkScene(c cfg.Config, opts WalkOptions) (*WalkScene, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so every system sees this frame's keys.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateSheetReload)
	ecs.AddSystem(systems.UpdateWalkers)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateHint)

	ecs.AddRenderer(cfg.Default, systems.DrawWalkers)
	ecs.AddRenderer(cfg.Default, systems.DrawHint)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateSpace(ecs, c.Window.Width, c.Window.Height, collisionCellSize, collisionCellSize)
	factory.CreateSettings(ecs, opts.Settings)
	if opts.Sheet != nil {
		factory.CreateSprite(ecs, opts.Sheet, opts.SheetPath, opts.Watcher)
	}
	if _, err := factory.CreateWalker(ecs, c); err != nil {
		return nil, err
	}
	factory.CreateHint(ecs, c)

	return &WalkScene{ecs: ecs}, nil
}

func (ws *WalkScene) Update() {
	ws.ecs.Update()
}

func (ws *WalkScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ws.ecs.Draw(screen)
}

// ECS exposes the world for tests and tooling.
func (ws *WalkScene) ECS() *ecs.ECS {
	return ws.ecs
}
