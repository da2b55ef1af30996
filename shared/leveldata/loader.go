package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file and returns the level with its actor list
// already filtered for difficulty and with dynamic geometry markers resolved.
// It takes an fs.FS so callers can pass os.DirFS or an embedded FS.
func LoadLevel(fsys fs.FS, tmxPath string, difficulty config.Difficulty) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:            strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Map:             levelMap,
		WidthTiles:      levelMap.Width,
		HeightTiles:     levelMap.Height,
		TileSize:        levelMap.TileWidth,
		BackgroundLayer: -1,
		ForegroundLayer: -1,
	}

	for i, layer := range levelMap.Layers {
		switch layer.Name {
		case config.Map.BackgroundLayerName:
			level.BackgroundLayer = i
		case config.Map.ForegroundLayerName:
			level.ForegroundLayer = i
		}
	}

	level.Backdrop = levelMap.Properties.GetString(config.Map.BackdropProperty)
	level.SecondaryBackdrop = levelMap.Properties.GetString(config.Map.AltBackdropProperty)
	level.BackdropScroll = parseScrollMode(levelMap.Properties.GetString(config.Map.ScrollBackdropProperty))

	raw, err := readActors(levelMap)
	if err != nil {
		return nil, fmt.Errorf("read actors of %s: %w", tmxPath, err)
	}

	level.Actors, err = PreprocessActors(raw, difficulty)
	if err != nil {
		return nil, fmt.Errorf("preprocess actors of %s: %w", tmxPath, err)
	}

	return level, nil
}

// readActors converts objects of the actors group into descriptions in
// file order. Point objects are bottom-left anchored; rectangle objects of
// area actors carry their rectangle as assigned area.
func readActors(levelMap *tiled.Map) ([]ActorDescription, error) {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	var actors []ActorDescription
	for _, og := range levelMap.ObjectGroups {
		if og.Name != config.Map.ActorsObjectGroupName {
			continue
		}
		for _, o := range og.Objects {
			name := o.Type
			if name == "" {
				name = o.Name
			}
			id, ok := config.ActorIDByName(name)
			if !ok {
				return nil, fmt.Errorf("object %d: unknown actor %q", o.ID, name)
			}

			pos := gamemath.Vec{X: int(o.X / tileW), Y: int(o.Y / tileH)}
			desc := ActorDescription{ID: id, Position: pos}
			if o.Width > 0 && o.Height > 0 && isAreaActor(id) {
				desc.AssignedArea = &gamemath.Rect{
					TopLeft: pos,
					Size: gamemath.Extents{
						Width:  int(o.Width / tileW),
						Height: int(o.Height / tileH),
					},
				}
			}
			actors = append(actors, desc)
		}
	}
	return actors, nil
}

// PreprocessActors applies difficulty markers and turns dynamic geometry
// marker pairs into assigned areas. The result never contains META ids.
//
// A difficulty marker applies to the actor that directly follows it. A
// dynamic geometry actor is followed by marker 1 (top-left) and marker 2
// (bottom-right, inclusive) unless it already has an area.
func PreprocessActors(raw []ActorDescription, difficulty config.Difficulty) ([]ActorDescription, error) {
	result := make([]ActorDescription, 0, len(raw))

	skipNext := false
	for i := 0; i < len(raw); i++ {
		actor := raw[i]

		switch actor.ID {
		case config.META_Appear_only_in_med_hard_difficulty:
			if difficulty < config.Medium {
				skipNext = true
			}
			continue
		case config.META_Appear_only_in_hard_difficulty:
			if difficulty < config.Hard {
				skipNext = true
			}
			continue
		case config.META_Dynamic_geometry_marker_1, config.META_Dynamic_geometry_marker_2:
			return nil, fmt.Errorf("dynamic geometry marker at %v without geometry actor", actor.Position)
		}

		if isDynamicGeometry(actor.ID) && actor.AssignedArea == nil {
			if i+2 >= len(raw) ||
				raw[i+1].ID != config.META_Dynamic_geometry_marker_1 ||
				raw[i+2].ID != config.META_Dynamic_geometry_marker_2 {
				return nil, fmt.Errorf("%s at %v: missing geometry markers", actor.ID, actor.Position)
			}
			topLeft := raw[i+1].Position
			bottomRight := raw[i+2].Position
			actor.Position = topLeft
			actor.AssignedArea = &gamemath.Rect{
				TopLeft: topLeft,
				Size: gamemath.Extents{
					Width:  bottomRight.X - topLeft.X + 1,
					Height: bottomRight.Y - topLeft.Y + 1,
				},
			}
			i += 2
		}

		if skipNext {
			skipNext = false
			continue
		}
		result = append(result, actor)
	}

	return result, nil
}

func isDynamicGeometry(id config.ActorID) bool {
	switch id {
	case config.Dynamic_geometry_1, config.Dynamic_geometry_2, config.Dynamic_geometry_3:
		return true
	}
	return false
}

func isAreaActor(id config.ActorID) bool {
	return isDynamicGeometry(id) || id == config.Water_body
}

func parseScrollMode(s string) BackdropScrollMode {
	switch strings.ToLower(s) {
	case "none":
		return BackdropScrollNone
	case "horizontal":
		return BackdropScrollAutoHorizontal
	case "vertical":
		return BackdropScrollAutoVertical
	default:
		return BackdropScrollParallax
	}
}
