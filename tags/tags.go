package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	// Entities taking part in the simulation this tick
	Active = donburi.NewTag().SetName("Active")
	// Sprites drawn after every other sprite, on top of the foreground tiles
	DrawTopMost = donburi.NewTag().SetName("DrawTopMost")
	Effect      = donburi.NewTag().SetName("Effect")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvActor  = "actor"
)
