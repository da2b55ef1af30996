package components

import (
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

// WorldPosition is the bottom-left corner of the entity, in tiles.
var WorldPosition = donburi.NewComponentType[gamemath.Vec]()

// BoundingBox is relative to WorldPosition, with its bottom row at y = 0.
var BoundingBox = donburi.NewComponentType[gamemath.Rect]()

// InferBoundingBox derives a bounding box from the sprite's first frame.
func InferBoundingBox(sprite SpriteData) gamemath.Rect {
	return InferBoundingBoxForFrame(sprite, 0)
}

// InferBoundingBoxForFrame derives a bounding box from a virtual frame.
func InferBoundingBoxForFrame(sprite SpriteData, frame int) gamemath.Rect {
	if sprite.NumFrames() == 0 {
		return gamemath.Rect{}
	}
	idx := sprite.DrawData.RealFrame(frame)
	if idx < 0 || idx >= len(sprite.DrawData.Frames) {
		return gamemath.Rect{}
	}
	f := sprite.DrawData.Frames[idx]
	return gamemath.Rect{TopLeft: f.DrawOffset, Size: f.Dimensions}
}

// WorldBoundingBox returns the entity's bounding box in world space.
func WorldBoundingBox(entry *donburi.Entry) gamemath.Rect {
	pos := *WorldPosition.Get(entry)
	var bbox gamemath.Rect
	if entry.HasComponent(BoundingBox) {
		bbox = *BoundingBox.Get(entry)
	}
	return gamemath.ToWorldSpace(bbox, pos)
}
