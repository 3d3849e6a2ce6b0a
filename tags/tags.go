package tags

import "github.com/yohamta/donburi"

var (
	Walker = donburi.NewTag().SetName("Walker")
)

// Resolv tags for the collision space
const (
	ResolvWalker = "Walker"
)
