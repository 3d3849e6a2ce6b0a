package config

import (
	"errors"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; there is a single walker on screen.
const Default ecs.LayerID = 0

// WindowConfig describes the play area and the fixed update rate.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	FrameRate int    `yaml:"frameRate"` // ticks per second
}

// SpriteConfig describes the sprite sheet grid.
type SpriteConfig struct {
	FrameWidth  int `yaml:"frameWidth"`
	FrameHeight int `yaml:"frameHeight"`
	MaxFrames   int `yaml:"maxFrames"` // columns; 0 is the idle pose
	Rows        int `yaml:"rows"`      // one row per facing
}

// MovementConfig contains the walk speed and the logical step rate.
type MovementConfig struct {
	Speed          float64 `yaml:"speed"`          // units per logical step
	MoveCycleTicks int     `yaml:"moveCycleTicks"` // rendered frames per logical step
	StartX         float64 `yaml:"startX"`
	StartY         float64 `yaml:"startY"`
}

// HintConfig contains the controls banner shown at startup.
type HintConfig struct {
	Text     string     `yaml:"text"`
	Duration float64    `yaml:"duration"` // seconds
	Color    color.RGBA `yaml:"-"`
	Y        int        `yaml:"y"`
}

// Config holds the whole, immutable game configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Sprite   SpriteConfig   `yaml:"sprite"`
	Movement MovementConfig `yaml:"movement"`
	Hint     HintConfig     `yaml:"hint"`
}

// sheetRows is the number of facings the walker can show.
const sheetRows = 4

// Global configuration instance
var C *Config

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	c := Defaults()
	C = &c
}

// Defaults returns the stock configuration: a 400x300 window at 120 TPS and a
// 9x4 sheet of 64x64 cells.
func Defaults() Config {
	const frameRate = 120

	return Config{
		Window: WindowConfig{
			Width:     400,
			Height:    300,
			Title:     "UTN-INSPT Spritesheet",
			FrameRate: frameRate,
		},
		Sprite: SpriteConfig{
			FrameWidth:  64,
			FrameHeight: 64,
			MaxFrames:   9,
			Rows:        sheetRows,
		},
		Movement: MovementConfig{
			Speed:          4.5,
			MoveCycleTicks: frameRate / 16,
		},
		Hint: HintConfig{
			Text:     "WASD / arrows to walk",
			Duration: 3,
			Color:    White,
			Y:        290,
		},
	}
}

// Validate reports every invalid field. A nil result means the configuration
// can drive a walker without leaving its invariants.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field, reason string) {
		if !ok {
			errs = append(errs, &Error{Field: field, Reason: reason})
		}
	}

	check(c.Window.Width > 0, "window.width", "must be positive")
	check(c.Window.Height > 0, "window.height", "must be positive")
	check(c.Window.FrameRate > 0, "window.frameRate", "must be positive")
	check(c.Sprite.FrameWidth > 0, "sprite.frameWidth", "must be positive")
	check(c.Sprite.FrameHeight > 0, "sprite.frameHeight", "must be positive")
	check(c.Sprite.MaxFrames >= 2, "sprite.maxFrames", "needs the idle column and at least one walk column")
	check(c.Sprite.Rows >= sheetRows, "sprite.rows", "needs one row per facing (4)")
	check(c.Movement.Speed >= 0, "movement.speed", "must not be negative")
	check(c.Movement.MoveCycleTicks >= 1, "movement.moveCycleTicks", "must be at least 1")
	check(c.Hint.Duration >= 0, "hint.duration", "must not be negative")

	return errors.Join(errs...)
}

// SheetSize is the minimum pixel size of a sprite sheet for this config.
func (c Config) SheetSize() (width, height int) {
	return c.Sprite.MaxFrames * c.Sprite.FrameWidth, c.Sprite.Rows * c.Sprite.FrameHeight
}
