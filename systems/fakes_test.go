package systems

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeTexture struct {
	name string
	w, h int
}

func (t *fakeTexture) Width() int  { return t.w }
func (t *fakeTexture) Height() int { return t.h }

// recordingRenderer logs every draw call as a short string.
type recordingRenderer struct {
	calls   []string
	targets int
}

func (r *recordingRenderer) CreateTexture(img image.Image) render.Texture {
	b := img.Bounds()
	return &fakeTexture{name: "tex", w: b.Dx(), h: b.Dy()}
}

func (r *recordingRenderer) CreateRenderTarget(w, h int) render.Texture {
	r.targets++
	return &fakeTexture{name: "target", w: w, h: h}
}

func (r *recordingRenderer) PushRenderTarget(render.Texture) { r.calls = append(r.calls, "push") }
func (r *recordingRenderer) PopRenderTarget()                { r.calls = append(r.calls, "pop") }
func (r *recordingRenderer) Clear(color.Color)               { r.calls = append(r.calls, "clear") }

func (r *recordingRenderer) DrawTexture(tex render.Texture, dest image.Point) {
	r.calls = append(r.calls, fmt.Sprintf("draw:%s@%d,%d", tex.(*fakeTexture).name, dest.X, dest.Y))
}

func (r *recordingRenderer) DrawTextureColorized(tex render.Texture, dest image.Point, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("flash:%s@%d,%d", tex.(*fakeTexture).name, dest.X, dest.Y))
}

func (r *recordingRenderer) DrawFilledRect(rect image.Rectangle, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("fill:%d,%d-%d,%d", rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y))
}

func (r *recordingRenderer) DrawRect(image.Rectangle, color.Color)     {}
func (r *recordingRenderer) DrawText(string, image.Point, color.Color) {}
func (r *recordingRenderer) GlobalTranslation() image.Point            { return image.Point{} }
func (r *recordingRenderer) SetGlobalTranslation(image.Point)          {}
func (r *recordingRenderer) SetClipRect(*image.Rectangle)              {}

func (r *recordingRenderer) reset() { r.calls = r.calls[:0] }

// testSprites hands out sprites named after their actor, sized by sizes
// and with numFrames frames. Unlisted actors get one 1x1 frame.
type testSprites struct {
	sizes     map[config.ActorID]gamemath.Extents
	numFrames map[config.ActorID]int
	drawOrder map[config.ActorID]int
}

func newTestSprites() *testSprites {
	return &testSprites{
		sizes:     make(map[config.ActorID]gamemath.Extents),
		numFrames: make(map[config.ActorID]int),
		drawOrder: make(map[config.ActorID]int),
	}
}

func (s *testSprites) CreateSprite(id config.ActorID) (components.SpriteData, error) {
	size, ok := s.sizes[id]
	if !ok {
		size = gamemath.Extents{Width: 1, Height: 1}
	}
	n := max(s.numFrames[id], 1)
	dd := &components.SpriteDrawData{DrawOrder: s.drawOrder[id]}
	for i := 0; i < n; i++ {
		dd.Frames = append(dd.Frames, components.SpriteFrame{
			Image:      &fakeTexture{name: fmt.Sprintf("%s/%d", id, i), w: size.Width * 8, h: size.Height * 8},
			Dimensions: size,
		})
	}
	return components.NewSprite(dd, []int{0}), nil
}

func (s *testSprites) ActorFrameRect(id config.ActorID, frame int) gamemath.Rect {
	size, ok := s.sizes[id]
	if !ok {
		size = gamemath.Extents{Width: 1, Height: 1}
	}
	return gamemath.Rect{Size: size}
}

func newTestECS(sprites *testSprites) (*ecs.ECS, *factory.EntityFactory) {
	world := donburi.NewWorld()
	f := factory.NewEntityFactory(world, sprites, rand.New(rand.NewPCG(1, 2)), config.Medium)
	return ecs.NewECS(world), f
}

// recordingSounds remembers the sounds played.
type recordingSounds struct {
	played []config.SoundID
}

func (s *recordingSounds) PlaySound(id config.SoundID) {
	s.played = append(s.played, id)
}

func (s *recordingSounds) count(id config.SoundID) int {
	n := 0
	for _, p := range s.played {
		if p == id {
			n++
		}
	}
	return n
}
