package systems

import (
	"image"
	"math"
	"time"

	"github.com/automoto/dukeengine/assets"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/automoto/dukeengine/shared/leveldata"
	"github.com/lafriks/go-tiled"
)

type tilePass int

const (
	passBackground tilePass = iota
	passForeground
)

// MapRenderer draws the backdrop and the tile layers of a level.
type MapRenderer struct {
	renderer render.Renderer
	level    *leveldata.Level
	tiles    assets.Tileset
	tileSize int

	textures map[assets.TileRef]render.Texture
	failed   map[assets.TileRef]bool

	backdrop          render.Texture
	secondaryBackdrop render.Texture

	animStep       int
	backdropScroll float64
}

func NewMapRenderer(r render.Renderer, level *leveldata.Level, tiles assets.Tileset) *MapRenderer {
	return &MapRenderer{
		renderer: r,
		level:    level,
		tiles:    tiles,
		tileSize: config.C.TileSize,
		textures: make(map[assets.TileRef]render.Texture),
		failed:   make(map[assets.TileRef]bool),
	}
}

// SetBackdrops sets the backdrop images. secondary may be nil.
func (m *MapRenderer) SetBackdrops(primary, secondary image.Image) {
	m.backdrop, m.secondaryBackdrop = nil, nil
	if primary != nil {
		m.backdrop = m.renderer.CreateTexture(primary)
	}
	if secondary != nil {
		m.secondaryBackdrop = m.renderer.CreateTexture(secondary)
	}
}

func (m *MapRenderer) UpdateAnimatedMapTiles() {
	m.animStep++
}

// SwitchBackdrops swaps in the secondary backdrop, if the level has one.
func (m *MapRenderer) SwitchBackdrops() {
	if m.secondaryBackdrop == nil {
		return
	}
	m.backdrop, m.secondaryBackdrop = m.secondaryBackdrop, m.backdrop
}

func (m *MapRenderer) UpdateBackdropAutoScrolling(dt time.Duration) {
	if m.backdrop == nil {
		return
	}
	var period float64
	switch m.level.BackdropScroll {
	case leveldata.BackdropScrollAutoHorizontal:
		period = float64(m.backdrop.Width())
	case leveldata.BackdropScrollAutoVertical:
		period = float64(m.backdrop.Height())
	default:
		return
	}
	m.backdropScroll = math.Mod(m.backdropScroll+config.Map.BackdropScrollSpeed*dt.Seconds(), period)
}

// RenderBackdrop tiles the backdrop over the viewport.
func (m *MapRenderer) RenderBackdrop(camera gamemath.Vec, viewport gamemath.Extents) {
	if m.backdrop == nil {
		return
	}
	w, h := m.backdrop.Width(), m.backdrop.Height()
	if w == 0 || h == 0 {
		return
	}

	var offX, offY int
	switch m.level.BackdropScroll {
	case leveldata.BackdropScrollParallax:
		offX = (camera.X * m.tileSize / 2) % w
		offY = (camera.Y * m.tileSize / 2) % h
	case leveldata.BackdropScrollAutoHorizontal:
		offX = int(m.backdropScroll) % w
	case leveldata.BackdropScrollAutoVertical:
		offY = int(m.backdropScroll) % h
	}

	viewW := viewport.Width * m.tileSize
	viewH := viewport.Height * m.tileSize
	for y := -offY; y < viewH; y += h {
		for x := -offX; x < viewW; x += w {
			m.renderer.DrawTexture(m.backdrop, image.Pt(x, y))
		}
	}
}

// RenderBackground draws the tiles that appear behind sprites.
func (m *MapRenderer) RenderBackground(camera gamemath.Vec, viewport gamemath.Extents) {
	m.renderLayer(m.level.BackgroundLayer, camera, viewport, passBackground)
	m.renderLayer(m.level.ForegroundLayer, camera, viewport, passBackground)
}

// RenderForeground draws the tiles flagged as foreground over the sprites.
func (m *MapRenderer) RenderForeground(camera gamemath.Vec, viewport gamemath.Extents) {
	m.renderLayer(m.level.BackgroundLayer, camera, viewport, passForeground)
	m.renderLayer(m.level.ForegroundLayer, camera, viewport, passForeground)
}

func (m *MapRenderer) renderLayer(index int, camera gamemath.Vec, viewport gamemath.Extents, pass tilePass) {
	if index < 0 || m.level.Map == nil || index >= len(m.level.Map.Layers) {
		return
	}
	layer := m.level.Map.Layers[index]

	for y := 0; y < viewport.Height; y++ {
		ty := camera.Y + y
		if ty < 0 || ty >= m.level.HeightTiles {
			continue
		}
		for x := 0; x < viewport.Width; x++ {
			tx := camera.X + x
			if tx < 0 || tx >= m.level.WidthTiles {
				continue
			}
			tile := layer.Tiles[ty*m.level.WidthTiles+tx]
			if tile == nil || tile.Nil {
				continue
			}

			ref := assets.TileRef{Tileset: tile.Tileset, ID: tile.ID}
			if m.tiles.IsForeground(ref) != (pass == passForeground) {
				continue
			}
			tex := m.texture(m.animatedRef(ref))
			if tex == nil {
				continue
			}
			m.renderer.DrawTexture(tex, image.Pt(x*m.tileSize, y*m.tileSize))
		}
	}
}

func (m *MapRenderer) animatedRef(ref assets.TileRef) assets.TileRef {
	frames := m.tiles.AnimationFrames(ref)
	if len(frames) == 0 {
		return ref
	}
	speed := max(config.Map.TileAnimSpeedTicks, 1)
	return assets.TileRef{Tileset: ref.Tileset, ID: frames[(m.animStep/speed)%len(frames)]}
}

func (m *MapRenderer) texture(ref assets.TileRef) render.Texture {
	if tex, ok := m.textures[ref]; ok {
		return tex
	}
	if m.failed[ref] {
		return nil
	}
	img, err := m.tiles.TileImage(ref)
	if err != nil {
		m.failed[ref] = true
		logger.Log.WithError(err).WithField("tileset", tilesetName(ref.Tileset)).WithField("tile", ref.ID).Warn("Tile image unavailable")
		return nil
	}
	tex := m.renderer.CreateTexture(img)
	m.textures[ref] = tex
	return tex
}

func tilesetName(ts *tiled.Tileset) string {
	if ts == nil {
		return ""
	}
	return ts.Name
}
