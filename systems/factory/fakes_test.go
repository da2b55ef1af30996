package factory

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/automoto/dukeengine/assets"
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/yohamta/donburi"
)

type fakeTexture struct {
	w, h int
}

func (t fakeTexture) Width() int  { return t.w }
func (t fakeTexture) Height() int { return t.h }

type fakeRenderer struct {
	texturesCreated int
}

func (r *fakeRenderer) CreateTexture(img image.Image) render.Texture {
	r.texturesCreated++
	b := img.Bounds()
	return fakeTexture{b.Dx(), b.Dy()}
}
func (r *fakeRenderer) CreateRenderTarget(w, h int) render.Texture                    { return fakeTexture{w, h} }
func (r *fakeRenderer) PushRenderTarget(render.Texture)                               {}
func (r *fakeRenderer) PopRenderTarget()                                              {}
func (r *fakeRenderer) Clear(color.Color)                                             {}
func (r *fakeRenderer) DrawTexture(render.Texture, image.Point)                       {}
func (r *fakeRenderer) DrawTextureColorized(render.Texture, image.Point, color.Color) {}
func (r *fakeRenderer) DrawFilledRect(image.Rectangle, color.Color)                   {}
func (r *fakeRenderer) DrawRect(image.Rectangle, color.Color)                         {}
func (r *fakeRenderer) DrawText(string, image.Point, color.Color)                     {}
func (r *fakeRenderer) GlobalTranslation() image.Point                                { return image.Point{} }
func (r *fakeRenderer) SetGlobalTranslation(image.Point)                              {}
func (r *fakeRenderer) SetClipRect(*image.Rectangle)                                  {}

// fakePackage serves numFrames frames of 8x8 pixels for every actor in
// frames, with draw index drawIndex[id].
type fakePackage struct {
	frames    map[config.ActorID]int
	drawIndex map[config.ActorID]int
	loads     map[config.ActorID]int
}

func newFakePackage() *fakePackage {
	return &fakePackage{
		frames:    make(map[config.ActorID]int),
		drawIndex: make(map[config.ActorID]int),
		loads:     make(map[config.ActorID]int),
	}
}

func (p *fakePackage) LoadActor(id config.ActorID) (assets.ActorData, error) {
	p.loads[id]++
	n, ok := p.frames[id]
	if !ok {
		return assets.ActorData{}, fmt.Errorf("%w: %s", assets.ErrUnknownActor, id)
	}
	data := assets.ActorData{ID: id, DrawIndex: p.drawIndex[id]}
	for i := 0; i < n; i++ {
		data.Frames = append(data.Frames, assets.ActorFrame{
			Image:      image.NewRGBA(image.Rect(0, 0, 8, 8)),
			DrawOffset: gamemath.Vec{X: 0, Y: 0},
			Size:       gamemath.Extents{Width: 1, Height: 1},
		})
	}
	return data, nil
}

func (p *fakePackage) ActorFrameRect(id config.ActorID, frame int) gamemath.Rect {
	return gamemath.Rect{Size: gamemath.Extents{Width: 1, Height: 1}}
}

// fakeSprites returns sprites whose first frame has the configured size.
// Unlisted ids get a 1x1 single frame sprite.
type fakeSprites struct {
	sizes     map[config.ActorID]gamemath.Extents
	numFrames map[config.ActorID]int
}

func newFakeSprites() *fakeSprites {
	return &fakeSprites{
		sizes:     make(map[config.ActorID]gamemath.Extents),
		numFrames: make(map[config.ActorID]int),
	}
}

func (s *fakeSprites) CreateSprite(id config.ActorID) (components.SpriteData, error) {
	size, ok := s.sizes[id]
	if !ok {
		size = gamemath.Extents{Width: 1, Height: 1}
	}
	n := s.numFrames[id]
	if n == 0 {
		n = 1
	}
	dd := &components.SpriteDrawData{}
	for i := 0; i < n; i++ {
		dd.Frames = append(dd.Frames, components.SpriteFrame{
			Image:      fakeTexture{size.Width * 8, size.Height * 8},
			Dimensions: size,
		})
	}
	return components.NewSprite(dd, []int{0}), nil
}

func (s *fakeSprites) ActorFrameRect(id config.ActorID, frame int) gamemath.Rect {
	return gamemath.Rect{Size: s.sizes[id]}
}

func newTestFactory(sprites *fakeSprites) *EntityFactory {
	return NewEntityFactory(donburi.NewWorld(), sprites, rand.New(rand.NewPCG(1, 2)), config.Medium)
}
