package systems

import (
	"image"
	"sort"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var spriteQuery = donburi.NewQuery(filter.Contains(components.Sprite, components.WorldPosition))

type spriteRenderItem struct {
	entity     donburi.Entity
	position   gamemath.Vec
	sprite     *components.SpriteData
	drawOrder  int
	topMost    bool
	facingLeft bool
}

// SpriteRenderingSystem draws all visible sprites ordered by draw order.
// Top-most sprites form the foreground and are drawn after the foreground
// tile layer.
type SpriteRenderingSystem struct {
	renderer render.Renderer
	tileSize int

	items         []spriteRenderItem
	foregroundIdx int
	rendered      int
}

func NewSpriteRenderingSystem(r render.Renderer) *SpriteRenderingSystem {
	return &SpriteRenderingSystem{renderer: r, tileSize: config.C.TileSize}
}

// Update collects and sorts the sprites to draw this frame.
func (s *SpriteRenderingSystem) Update(world donburi.World) {
	s.items = s.items[:0]

	spriteQuery.Each(world, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if !sprite.Show || sprite.DrawData == nil {
			return
		}
		item := spriteRenderItem{
			entity:    e.Entity(),
			position:  *components.WorldPosition.Get(e),
			sprite:    sprite,
			drawOrder: components.EffectiveDrawOrder(e),
			topMost:   e.HasComponent(tags.DrawTopMost),
		}
		if e.HasComponent(components.OrientationComponent) {
			item.facingLeft = *components.OrientationComponent.Get(e) == components.OrientationLeft
		}
		s.items = append(s.items, item)
	})

	sort.SliceStable(s.items, func(i, j int) bool {
		a, b := s.items[i], s.items[j]
		if a.topMost != b.topMost {
			return !a.topMost
		}
		return a.drawOrder < b.drawOrder
	})

	s.foregroundIdx = sort.Search(len(s.items), func(i int) bool {
		return s.items[i].topMost
	})
	s.rendered = 0
}

// RenderRegularSprites draws every sprite that is not top-most.
func (s *SpriteRenderingSystem) RenderRegularSprites(camera gamemath.Vec) {
	s.renderRange(s.items[:s.foregroundIdx], camera)
}

// RenderForegroundSprites draws the top-most sprites.
func (s *SpriteRenderingSystem) RenderForegroundSprites(camera gamemath.Vec) {
	s.renderRange(s.items[s.foregroundIdx:], camera)
}

// Count is the number of sprites drawn since the last Update.
func (s *SpriteRenderingSystem) Count() int {
	return s.rendered
}

func (s *SpriteRenderingSystem) renderRange(items []spriteRenderItem, camera gamemath.Vec) {
	for i := range items {
		s.renderSprite(&items[i], camera)
		s.rendered++
	}
}

func (s *SpriteRenderingSystem) renderSprite(item *spriteRenderItem, camera gamemath.Vec) {
	drawData := item.sprite.DrawData

	for _, frame := range item.sprite.FramesToRender {
		virtual := frame
		if item.facingLeft && drawData.OrientationOffset != nil {
			virtual += *drawData.OrientationOffset
		}
		idx := drawData.RealFrame(virtual)
		if idx < 0 || idx >= len(drawData.Frames) {
			continue
		}

		f := drawData.Frames[idx]
		if f.Image == nil {
			continue
		}
		topLeft := item.position.Add(f.DrawOffset).Sub(gamemath.Vec{Y: f.Dimensions.Height - 1}).Sub(camera)
		dest := image.Pt(topLeft.X*s.tileSize, topLeft.Y*s.tileSize)

		if item.sprite.FlashingWhite {
			s.renderer.DrawTextureColorized(f.Image, dest, config.White)
		} else {
			s.renderer.DrawTexture(f.Image, dest)
		}
	}
}
