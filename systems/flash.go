package systems

import (
	"image/color"

	"github.com/automoto/dukeengine/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TriggerScreenFlash fills the screen with c for the given number of ticks.
func TriggerScreenFlash(world donburi.World, c color.RGBA, ticks int) {
	level, ok := components.Level.First(world)
	if !ok {
		return
	}
	data := components.Level.Get(level)
	data.FlashColor = c
	data.FlashTicks = ticks
}

// ScreenFlash returns the flash color to draw this frame, if any.
func ScreenFlash(world donburi.World) *color.RGBA {
	level, ok := components.Level.First(world)
	if !ok {
		return nil
	}
	data := components.Level.Get(level)
	if data.FlashTicks <= 0 {
		return nil
	}
	c := data.FlashColor
	return &c
}

func UpdateFlashTimers(ecs *ecs.ECS) {
	level, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	data := components.Level.Get(level)
	if data.FlashTicks > 0 {
		data.FlashTicks--
	}
}
