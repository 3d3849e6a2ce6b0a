package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HintData is the controls banner that fades out after startup.
type HintData struct {
	Text  string
	Color color.RGBA
	Y     int
	Fade  *gween.Tween
	Step  float32 // seconds per tick
	Alpha float32
	Done  bool
}

var Hint = donburi.NewComponentType[HintData]()
