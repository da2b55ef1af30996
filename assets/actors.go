package assets

import (
	"errors"
	"image"

	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/shared/gamemath"
)

var ErrUnknownActor = errors.New("unknown actor")

// ActorFrame is one image of an actor. DrawOffset and Size are in tiles.
type ActorFrame struct {
	Image      image.Image
	DrawOffset gamemath.Vec
	Size       gamemath.Extents
}

// ActorData is everything the package stores for one actor id.
type ActorData struct {
	ID        config.ActorID
	DrawIndex int
	Frames    []ActorFrame
}

// ActorImagePackage provides actor images.
type ActorImagePackage interface {
	LoadActor(id config.ActorID) (ActorData, error)
	ActorFrameRect(id config.ActorID, frame int) gamemath.Rect
}
