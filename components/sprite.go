package components

import (
	"github.com/automoto/spritewalk/assets"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Sheet   *assets.Sheet
	Watcher *assets.SheetWatcher // nil unless the sheet is reloaded from disk
	Path    string
}

var Sprite = donburi.NewComponentType[SpriteData]()
