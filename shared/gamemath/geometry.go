// Package gamemath holds the integer geometry used by the engine. World
// coordinates are measured in tiles, and entity positions denote the
// bottom-left corner of their bounding box.
package gamemath

// Vec is an integer 2D vector in tile units unless stated otherwise.
type Vec struct {
	X, Y int
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// VecF is a floating point 2D vector, used for velocities.
type VecF struct {
	X, Y float64
}

func (v VecF) Scale(s float64) VecF {
	return VecF{v.X * s, v.Y * s}
}

// Extents is a width/height pair.
type Extents struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	TopLeft Vec
	Size    Extents
}

func (r Rect) Left() int   { return r.TopLeft.X }
func (r Rect) Top() int    { return r.TopLeft.Y }
func (r Rect) Right() int  { return r.TopLeft.X + r.Size.Width - 1 }
func (r Rect) Bottom() int { return r.TopLeft.Y + r.Size.Height - 1 }

func (r Rect) BottomLeft() Vec {
	return Vec{r.Left(), r.Bottom()}
}

// Translated returns r moved by offset.
func (r Rect) Translated(offset Vec) Rect {
	return Rect{TopLeft: r.TopLeft.Add(offset), Size: r.Size}
}

// Intersects reports whether two rectangles share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() <= o.Right() && r.Right() >= o.Left() &&
		r.Top() <= o.Bottom() && r.Bottom() >= o.Top()
}

// ContainsPoint reports whether p lies inside r.
func (r Rect) ContainsPoint(p Vec) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ToWorldSpace converts a bounding box relative to a bottom-left anchored
// position into world coordinates.
func ToWorldSpace(bbox Rect, position Vec) Rect {
	return bbox.Translated(position.Sub(Vec{0, bbox.Size.Height - 1}))
}

// TilesToPixels converts a tile count into pixels.
func TilesToPixels(tiles, tileSize int) int {
	return tiles * tileSize
}

// PixelsToTiles converts pixels into whole tiles, rounding up.
func PixelsToTiles(pixels, tileSize int) int {
	return (pixels + tileSize - 1) / tileSize
}
