package systems

import (
	"image"
	"image/color"
	"time"

	"github.com/automoto/dukeengine/assets"
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var waterQuery = donburi.NewQuery(filter.Contains(components.ActorTag, components.MapGeometryLink))

// RenderingSystem composes the map and the sprites into one render target.
type RenderingSystem struct {
	camera   *gamemath.Vec
	renderer render.Renderer
	options  *config.GameOptions

	mapRenderer *MapRenderer
	sprites     *SpriteRenderingSystem
	target      render.Texture
	targetSize  gamemath.Extents

	waterAnimStep   int
	spritesRendered int
	tileSize        int
}

func NewRenderingSystem(
	camera *gamemath.Vec,
	r render.Renderer,
	opts *config.GameOptions,
	level *leveldata.Level,
	tiles assets.Tileset,
) *RenderingSystem {
	return &RenderingSystem{
		camera:      camera,
		renderer:    r,
		options:     opts,
		mapRenderer: NewMapRenderer(r, level, tiles),
		sprites:     NewSpriteRenderingSystem(r),
		tileSize:    config.C.TileSize,
	}
}

// MapRenderer gives access to the map renderer, e.g. to set backdrops.
func (s *RenderingSystem) MapRenderer() *MapRenderer {
	return s.mapRenderer
}

// UpdateAnimatedMapTiles advances tile and water animations by one tick.
func (s *RenderingSystem) UpdateAnimatedMapTiles() {
	s.mapRenderer.UpdateAnimatedMapTiles()
	s.waterAnimStep = (s.waterAnimStep + 1) % config.Map.WaterAnimSteps
}

// Update renders the world into the render target and then draws the
// target to the current output.
func (s *RenderingSystem) Update(world donburi.World, flashColor *color.RGBA, viewport gamemath.Extents) {
	s.ensureTarget(viewport)
	camera := *s.camera

	s.sprites.Update(world)

	s.renderer.PushRenderTarget(s.target)
	s.renderer.Clear(config.Black)

	s.mapRenderer.RenderBackdrop(camera, viewport)
	s.mapRenderer.RenderBackground(camera, viewport)
	s.sprites.RenderRegularSprites(camera)
	s.mapRenderer.RenderForeground(camera, viewport)
	s.sprites.RenderForegroundSprites(camera)
	s.renderWaterAreas(world, camera)

	if flashColor != nil {
		s.renderer.DrawFilledRect(image.Rect(0, 0, viewport.Width*s.tileSize, viewport.Height*s.tileSize), *flashColor)
	}

	s.renderer.PopRenderTarget()
	s.renderer.DrawTexture(s.target, image.Point{})

	s.spritesRendered = s.sprites.Count()
}

func (s *RenderingSystem) SwitchBackdrops() {
	s.mapRenderer.SwitchBackdrops()
}

func (s *RenderingSystem) UpdateBackdropAutoScrolling(dt time.Duration) {
	s.mapRenderer.UpdateBackdropAutoScrolling(dt)
}

func (s *RenderingSystem) SpritesRendered() int {
	return s.spritesRendered
}

// RenderTarget holds the last rendered frame.
func (s *RenderingSystem) RenderTarget() render.Texture {
	return s.target
}

func (s *RenderingSystem) ensureTarget(viewport gamemath.Extents) {
	if s.target != nil && s.targetSize == viewport {
		return
	}
	s.target = s.renderer.CreateRenderTarget(viewport.Width*s.tileSize, viewport.Height*s.tileSize)
	s.targetSize = viewport
}

// renderWaterAreas tints water bodies and animates their surface row.
func (s *RenderingSystem) renderWaterAreas(world donburi.World, camera gamemath.Vec) {
	waterQuery.Each(world, func(e *donburi.Entry) {
		if components.ActorTag.Get(e).ID != config.Water_body {
			return
		}
		area := components.WorldBoundingBox(e).Translated(gamemath.Vec{X: -camera.X, Y: -camera.Y})
		ts := s.tileSize
		rect := image.Rect(area.Left()*ts, area.Top()*ts, (area.Right()+1)*ts, (area.Bottom()+1)*ts)
		s.renderer.DrawFilledRect(rect, config.Map.WaterBodyColor)

		// the surface ripples in WaterAnimSteps phases, one pixel row per phase
		surface := rect
		surface.Max.Y = surface.Min.Y + 1
		surface = surface.Add(image.Pt(0, s.waterAnimStep))
		s.renderer.DrawFilledRect(surface, config.Map.WaterSurfaceColor)
	})
}

// ViewportSize returns the visible world area in tiles for the options.
func ViewportSize(opts *config.GameOptions) gamemath.Extents {
	width := config.C.ViewportWidthTiles
	if opts != nil && opts.WidescreenModeOn {
		width = config.C.WidescreenViewportWidthTiles
	}
	return gamemath.Extents{Width: width, Height: config.C.ViewportHeightTiles}
}
