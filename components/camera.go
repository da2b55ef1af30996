package components

import (
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is the top-left of the visible map section, in tiles.
type CameraData struct {
	Position gamemath.Vec
	Viewport gamemath.Extents
}

// ActiveRegion is the viewport grown by margin on every side.
func (c CameraData) ActiveRegion(margin int) gamemath.Rect {
	return gamemath.Rect{
		TopLeft: c.Position.Sub(gamemath.Vec{X: margin, Y: margin}),
		Size: gamemath.Extents{
			Width:  c.Viewport.Width + 2*margin,
			Height: c.Viewport.Height + 2*margin,
		},
	}
}

var Camera = donburi.NewComponentType[CameraData]()
