package assets

import (
	"fmt"
	"image"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

// TileRef identifies one tile of a tileset.
type TileRef struct {
	Tileset *tiled.Tileset
	ID      uint32
}

// Tileset provides tile images and per-tile attributes for the map renderer.
type Tileset interface {
	TileImage(ref TileRef) (image.Image, error)
	IsForeground(ref TileRef) bool
	IsSolid(ref TileRef) bool
	// AnimationFrames returns the tile ids to cycle through, or nil for
	// static tiles.
	AnimationFrames(ref TileRef) []uint32
}

const (
	foregroundProperty = "foreground"
	solidProperty      = "solid"
)

// TiledTileset reads tileset images referenced by go-tiled tilesets.
type TiledTileset struct {
	fsys   fs.FS
	images map[string]image.Image
	tiles  map[TileRef]*tiled.TilesetTile
}

func NewTiledTileset(fsys fs.FS) *TiledTileset {
	return &TiledTileset{
		fsys:   fsys,
		images: make(map[string]image.Image),
		tiles:  make(map[TileRef]*tiled.TilesetTile),
	}
}

func (t *TiledTileset) TileImage(ref TileRef) (image.Image, error) {
	ts := ref.Tileset
	if ts == nil || ts.Image == nil {
		return nil, fmt.Errorf("tileset without image")
	}

	src := path.Clean(ts.GetFileFullPath(ts.Image.Source))
	img, ok := t.images[src]
	if !ok {
		var err error
		img, err = LoadImage(t.fsys, src)
		if err != nil {
			return nil, err
		}
		t.images[src] = img
	}

	sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("tileset image %s cannot be sliced", src)
	}
	return sub.SubImage(ts.GetTileRect(ref.ID)), nil
}

func (t *TiledTileset) IsForeground(ref TileRef) bool {
	tile := t.tile(ref)
	return tile != nil && tile.Properties.GetBool(foregroundProperty)
}

func (t *TiledTileset) IsSolid(ref TileRef) bool {
	tile := t.tile(ref)
	return tile != nil && tile.Properties.GetBool(solidProperty)
}

func (t *TiledTileset) AnimationFrames(ref TileRef) []uint32 {
	tile := t.tile(ref)
	if tile == nil || len(tile.Animation) == 0 {
		return nil
	}
	frames := make([]uint32, len(tile.Animation))
	for i, f := range tile.Animation {
		frames[i] = f.TileID
	}
	return frames
}

func (t *TiledTileset) tile(ref TileRef) *tiled.TilesetTile {
	if tile, ok := t.tiles[ref]; ok {
		return tile
	}
	var found *tiled.TilesetTile
	if ref.Tileset != nil {
		for _, tile := range ref.Tileset.Tiles {
			if tile.ID == ref.ID {
				found = tile
				break
			}
		}
	}
	t.tiles[ref] = found
	return found
}

// LoadImage decodes an image file from fsys.
func LoadImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}
	return img, nil
}
