package components

import (
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SpriteFrame is one renderable image. DrawOffset and Dimensions are in tiles.
type SpriteFrame struct {
	Image      render.Texture
	DrawOffset gamemath.Vec
	Dimensions gamemath.Extents
}

// SpriteDrawData is shared by all sprites of the same actor id.
type SpriteDrawData struct {
	Frames    []SpriteFrame
	DrawOrder int

	// Added to a frame index when the entity faces left
	OrientationOffset *int

	// Virtual frame index -> index into Frames
	VirtualToRealFrame []int
}

// RealFrame maps a virtual frame index to a Frames index.
func (d *SpriteDrawData) RealFrame(virtual int) int {
	if virtual >= 0 && virtual < len(d.VirtualToRealFrame) {
		return d.VirtualToRealFrame[virtual]
	}
	return virtual
}

type SpriteData struct {
	DrawData *SpriteDrawData

	// Slot 0 is the current animation frame. More slots draw
	// additional frames on top, e.g. for composite actors.
	FramesToRender []int
	Show           bool
	FlashingWhite  bool
}

func NewSprite(drawData *SpriteDrawData, framesToRender []int) SpriteData {
	frames := make([]int, len(framesToRender))
	copy(frames, framesToRender)
	return SpriteData{DrawData: drawData, FramesToRender: frames, Show: true}
}

// NumFrames is the number of stored frames.
func (s *SpriteData) NumFrames() int {
	if s.DrawData == nil {
		return 0
	}
	return len(s.DrawData.Frames)
}

// SetFrame sets the frame in the given render slot, growing the slot list
// as needed.
func (s *SpriteData) SetFrame(slot, frame int) {
	for len(s.FramesToRender) <= slot {
		s.FramesToRender = append(s.FramesToRender, 0)
	}
	s.FramesToRender[slot] = frame
}

var Sprite = donburi.NewComponentType[SpriteData]()

// OverrideDrawOrderData replaces the draw order of the sprite's draw data.
type OverrideDrawOrderData struct {
	DrawOrder int
}

var OverrideDrawOrder = donburi.NewComponentType[OverrideDrawOrderData]()

// EffectiveDrawOrder returns the draw order the renderer uses for entry.
func EffectiveDrawOrder(entry *donburi.Entry) int {
	if entry.HasComponent(OverrideDrawOrder) {
		return OverrideDrawOrder.Get(entry).DrawOrder
	}
	if entry.HasComponent(Sprite) {
		if dd := Sprite.Get(entry).DrawData; dd != nil {
			return dd.DrawOrder
		}
	}
	return 0
}
