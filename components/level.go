package components

import (
	"image/color"

	"github.com/automoto/dukeengine/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
	// Collision space for solid map tiles and solid bodies, in pixels
	Space *resolv.Space
	// Screen flash shown for FlashTicks more ticks
	FlashTicks int
	FlashColor color.RGBA
	// Set when the backdrop switch trigger was touched
	BackdropSwitched bool
	Exited           bool
	PlayerDied       bool
}

var Level = donburi.NewComponentType[LevelData]()
