package components

import (
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the resolv collision object of an entity. Its position is
// kept in sync with WorldPosition and BoundingBox, in pixels.
type ObjectData struct {
	*resolv.Object
}

// SyncTo moves the object to the world space bounding box.
func (o ObjectData) SyncTo(box gamemath.Rect, tileSize int) {
	o.X = float64(box.Left() * tileSize)
	o.Y = float64(box.Top() * tileSize)
	o.W = float64(box.Size.Width * tileSize)
	o.H = float64(box.Size.Height * tileSize)
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
