package factory

import (
	"fmt"

	"github.com/automoto/dukeengine/assets"
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/sirupsen/logrus"
)

// SpriteCreator builds sprites for actor ids.
type SpriteCreator interface {
	CreateSprite(id config.ActorID) (components.SpriteData, error)
	ActorFrameRect(id config.ActorID, frame int) gamemath.Rect
}

type cachedSprite struct {
	drawData      *components.SpriteDrawData
	initialFrames []int
}

// SpriteFactory turns actor images into textures once per actor id and hands
// out sprites sharing the resulting draw data.
type SpriteFactory struct {
	renderer render.Renderer
	pkg      assets.ActorImagePackage
	cache    map[config.ActorID]cachedSprite
}

func NewSpriteFactory(r render.Renderer, pkg assets.ActorImagePackage) *SpriteFactory {
	return &SpriteFactory{
		renderer: r,
		pkg:      pkg,
		cache:    make(map[config.ActorID]cachedSprite),
	}
}

func (f *SpriteFactory) CreateSprite(id config.ActorID) (components.SpriteData, error) {
	entry, ok := f.cache[id]
	if !ok {
		var err error
		entry, err = f.load(id)
		if err != nil {
			return components.SpriteData{}, err
		}
		f.cache[id] = entry
	}
	return components.NewSprite(entry.drawData, entry.initialFrames), nil
}

// MustCreateSprite is CreateSprite for ids that are known to exist.
func (f *SpriteFactory) MustCreateSprite(id config.ActorID) components.SpriteData {
	sprite, err := f.CreateSprite(id)
	if err != nil {
		panic(err)
	}
	return sprite
}

// PreloadSprites creates a sprite for each id that has one, so missing
// frame data shows up before any entity needs it. It returns the first
// error.
func PreloadSprites(sprites SpriteCreator, ids ...config.ActorID) error {
	seen := make(map[config.ActorID]bool, len(ids))
	for _, id := range ids {
		if seen[id] || !config.HasAssociatedSprite(id) {
			continue
		}
		seen[id] = true
		if _, err := sprites.CreateSprite(id); err != nil {
			return fmt.Errorf("preload %s: %w", id, err)
		}
	}
	return nil
}

func (f *SpriteFactory) ActorFrameRect(id config.ActorID, frame int) gamemath.Rect {
	return f.pkg.ActorFrameRect(id, frame)
}

// Invalidate drops all cached draw data. Existing sprites keep theirs.
func (f *SpriteFactory) Invalidate() {
	f.cache = make(map[config.ActorID]cachedSprite)
	logger.Log.Info("Sprite cache invalidated")
}

func (f *SpriteFactory) load(id config.ActorID) (cachedSprite, error) {
	drawData := &components.SpriteDrawData{}

	for _, part := range config.SpritePartsFor(id) {
		data, err := f.pkg.LoadActor(part)
		if err != nil {
			return cachedSprite{}, fmt.Errorf("load sprite %s: %w", id, err)
		}
		for _, frame := range data.Frames {
			drawData.Frames = append(drawData.Frames, components.SpriteFrame{
				Image:      f.renderer.CreateTexture(frame.Image),
				DrawOffset: frame.DrawOffset,
				Dimensions: frame.Size,
			})
		}
		drawData.DrawOrder = data.DrawIndex
	}

	if order, ok := config.Sprites.DrawOrderOverrides[id]; ok {
		drawData.DrawOrder = order
	}
	if offset, ok := config.Sprites.OrientationOffsets[id]; ok {
		drawData.OrientationOffset = &offset
	}
	if remap, ok := config.Sprites.FrameRemaps[id]; ok {
		drawData.VirtualToRealFrame = remap
	}

	applyTweaks(id, drawData)

	initial := []int{0}
	if frames, ok := config.Sprites.InitialFrames[id]; ok {
		initial = frames
	}

	logger.Log.WithFields(logrus.Fields{
		"actor":  id.String(),
		"frames": len(drawData.Frames),
	}).Debug("Sprite loaded")

	return cachedSprite{drawData: drawData, initialFrames: initial}, nil
}

// applyTweaks fixes offsets the legacy images get wrong.
func applyTweaks(id config.ActorID, drawData *components.SpriteDrawData) {
	switch {
	case config.IsPlayer(id):
		exceptions := make(map[int]bool)
		per := config.Sprites.PlayerFramesPerOrientation
		for _, f := range config.Sprites.PlayerFrameOffsetExceptions {
			exceptions[f] = true
			exceptions[f+per] = true
		}
		for i := range drawData.Frames {
			if !exceptions[i] {
				drawData.Frames[i].DrawOffset.X--
			}
		}

	case config.IsShip(id):
		offset := config.Sprites.ShipExhaustOffsetRight
		if config.IsShipFacingLeft(id) {
			offset = config.Sprites.ShipExhaustOffsetLeft
		}
		for _, src := range config.Sprites.ShipExhaustFrames {
			if src >= len(drawData.Frames) {
				continue
			}
			frame := drawData.Frames[src]
			frame.DrawOffset = frame.DrawOffset.Add(offset)
			drawData.Frames = append(drawData.Frames, frame)
		}
	}
}
