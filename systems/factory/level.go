package factory

import (
	"github.com/automoto/dukeengine/archetypes"
	"github.com/automoto/dukeengine/assets"
	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/shared/leveldata"
	"github.com/automoto/dukeengine/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateLevel creates the level entity with a collision space holding one
// object per solid tile of the background layer.
func CreateLevel(world donburi.World, level *leveldata.Level, tiles assets.Tileset) *donburi.Entry {
	ts := level.TileSize
	space := resolv.NewSpace(level.WidthTiles*ts, level.HeightTiles*ts, ts, ts)

	if level.BackgroundLayer >= 0 && tiles != nil {
		layer := level.Map.Layers[level.BackgroundLayer]
		for i, tile := range layer.Tiles {
			if tile == nil || tile.Nil {
				continue
			}
			if !tiles.IsSolid(assets.TileRef{Tileset: tile.Tileset, ID: tile.ID}) {
				continue
			}
			x := i % level.WidthTiles
			y := i / level.WidthTiles
			space.Add(resolv.NewObject(float64(x*ts), float64(y*ts), float64(ts), float64(ts), tags.ResolvSolid))
		}
	}

	entry := archetypes.Level.Spawn(world)
	components.Level.SetValue(entry, components.LevelData{Level: level, Space: space})
	return entry
}
