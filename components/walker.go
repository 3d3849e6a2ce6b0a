package components

import (
	"github.com/automoto/spritewalk/assets/animations"
	"github.com/yohamta/donburi"
)

type WalkerData struct {
	*animations.Walker
	LastPose animations.Pose // pose returned by the latest Update, drawn this frame
}

var Walker = donburi.NewComponentType[WalkerData]()
