package main

import (
	"flag"
	"log"

	"github.com/automoto/spritewalk/assets"
	"github.com/automoto/spritewalk/config"
	"github.com/automoto/spritewalk/fonts"
	"github.com/automoto/spritewalk/scenes"
	"github.com/automoto/spritewalk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	width, height int
	scene         Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	sheetPath := flag.String("sheet", "", "sprite sheet PNG to use instead of the embedded one")
	watch := flag.Bool("watch", false, "reload the -sheet file when it changes on disk")
	debug := flag.Bool("debug", false, "start with the debug overlay enabled")
	flag.Parse()

	conf := config.Defaults()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}
		conf = loaded
	}
	if err := conf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	config.C = &conf

	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	settings := systems.SettingsFromSaved(saved)
	if *debug {
		settings.Debug = true
	}

	img, err := assets.LoadSheet(*sheetPath, conf)
	if err != nil {
		log.Fatalf("Could not load the character sprite sheet: %v", err)
	}

	var watcher *assets.SheetWatcher
	if *watch && *sheetPath != "" {
		watcher, err = assets.NewSheetWatcher(*sheetPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *sheetPath, err)
		} else {
			defer watcher.Close()
		}
	}

	scene, err := scenes.NewWalkScene(conf, scenes.WalkOptions{
		Sheet:     assets.NewSheet(img),
		SheetPath: *sheetPath,
		Watcher:   watcher,
		Settings:  settings,
	})
	if err != nil {
		log.Fatalf("Could not create the scene: %v", err)
	}

	ebiten.SetWindowTitle(conf.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(conf.Window.FrameRate)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	systems.ApplyWindowSettings(settings)

	game := &Game{
		width:  conf.Window.Width,
		height: conf.Window.Height,
		scene:  scene,
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
