// Package leveldata loads TMX levels into the flat actor list and tile data
// the engine consumes. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// ActorDescription is one level-placed actor. Position is in tiles. For
// actors with an AssignedArea, Position is the area's top-left corner;
// all other actors use their bottom-left corner.
type ActorDescription struct {
	ID           config.ActorID
	Position     gamemath.Vec
	AssignedArea *gamemath.Rect
}

// BackdropScrollMode controls how the backdrop moves with the camera
type BackdropScrollMode int

const (
	BackdropScrollParallax BackdropScrollMode = iota
	BackdropScrollNone
	BackdropScrollAutoHorizontal
	BackdropScrollAutoVertical
)

// Level is a loaded and preprocessed level.
type Level struct {
	Name string
	Map  *tiled.Map

	WidthTiles  int
	HeightTiles int
	TileSize    int

	// Index into Map.Layers, -1 if missing
	BackgroundLayer int
	ForegroundLayer int

	Backdrop          string
	SecondaryBackdrop string
	BackdropScroll    BackdropScrollMode

	Actors []ActorDescription
}

// Bounds returns the level's extents in tiles.
func (l *Level) Bounds() gamemath.Rect {
	return gamemath.Rect{Size: gamemath.Extents{Width: l.WidthTiles, Height: l.HeightTiles}}
}
