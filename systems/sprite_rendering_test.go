package systems

import (
	"slices"
	"testing"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/tags"
)

func TestSpriteRenderingOrder(t *testing.T) {
	sprites := newTestSprites()
	sprites.drawOrder[config.Health_molecule] = 5
	sprites.drawOrder[config.Spider] = 1
	sprites.drawOrder[config.Explosion_FX_1] = 0
	_, f := newTestECS(sprites)

	f.CreateSpriteAt(config.Health_molecule, gamemath.Vec{X: 1, Y: 1}, true)
	top := f.CreateSpriteAt(config.Explosion_FX_1, gamemath.Vec{X: 2, Y: 2}, true)
	components.AddTag(top, tags.DrawTopMost)
	f.CreateSpriteAt(config.Spider, gamemath.Vec{X: 3, Y: 3}, true)

	r := &recordingRenderer{}
	s := NewSpriteRenderingSystem(r)
	s.Update(f.World())

	s.RenderRegularSprites(gamemath.Vec{})
	want := []string{"draw:Spider/0@24,24", "draw:Health_molecule/0@8,8"}
	if !slices.Equal(r.calls, want) {
		t.Errorf("regular sprites: got %v, want %v", r.calls, want)
	}

	r.reset()
	s.RenderForegroundSprites(gamemath.Vec{})
	want = []string{"draw:Explosion_FX_1/0@16,16"}
	if !slices.Equal(r.calls, want) {
		t.Errorf("foreground sprites: got %v, want %v", r.calls, want)
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3", s.Count())
	}
}

func TestSpriteRenderingEqualDrawOrderIsStable(t *testing.T) {
	sprites := newTestSprites()
	_, f := newTestECS(sprites)

	for x := 0; x < 5; x++ {
		f.CreateSpriteAt(config.Health_molecule, gamemath.Vec{X: x, Y: 0}, true)
	}

	r := &recordingRenderer{}
	s := NewSpriteRenderingSystem(r)
	s.Update(f.World())
	s.RenderRegularSprites(gamemath.Vec{})
	first := slices.Clone(r.calls)

	for i := 0; i < 3; i++ {
		r.reset()
		s.Update(f.World())
		s.RenderRegularSprites(gamemath.Vec{})
		if !slices.Equal(r.calls, first) {
			t.Fatalf("frame %d: order changed: %v vs %v", i, r.calls, first)
		}
	}
}

func TestSpriteRenderingSkipsHiddenAndFlashes(t *testing.T) {
	sprites := newTestSprites()
	sprites.sizes[config.Spider] = gamemath.Extents{Width: 2, Height: 3}
	_, f := newTestECS(sprites)

	hidden := f.CreateSpriteAt(config.Health_molecule, gamemath.Vec{}, true)
	components.Sprite.Get(hidden).Show = false

	// bottom-left anchored: a 3 tall sprite at y=5 starts drawing at y=3
	flashing := f.CreateSpriteAt(config.Spider, gamemath.Vec{X: 4, Y: 5}, true)
	components.Sprite.Get(flashing).FlashingWhite = true

	r := &recordingRenderer{}
	s := NewSpriteRenderingSystem(r)
	s.Update(f.World())
	s.RenderRegularSprites(gamemath.Vec{X: 1, Y: 1})

	want := []string{"flash:Spider/0@24,16"}
	if !slices.Equal(r.calls, want) {
		t.Errorf("got %v, want %v", r.calls, want)
	}
}

func TestSpriteRenderingOrientationOffset(t *testing.T) {
	sprites := newTestSprites()
	sprites.numFrames[config.Spider] = 4
	_, f := newTestECS(sprites)

	e := f.CreateSpriteAt(config.Spider, gamemath.Vec{}, true)
	offset := 2
	components.Sprite.Get(e).DrawData.OrientationOffset = &offset
	components.Set(e, components.OrientationComponent, components.OrientationLeft)
	components.Sprite.Get(e).SetFrame(0, 1)

	r := &recordingRenderer{}
	s := NewSpriteRenderingSystem(r)
	s.Update(f.World())
	s.RenderRegularSprites(gamemath.Vec{})

	want := []string{"draw:Spider/3@0,0"}
	if !slices.Equal(r.calls, want) {
		t.Errorf("got %v, want %v", r.calls, want)
	}
}
