// Package render defines the drawing surface used by the engine's rendering
// and menu code, and its ebiten implementation.
package render

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
)

// Texture is an image that lives on the drawing backend.
type Texture interface {
	Width() int
	Height() int
}

// Renderer issues draw calls. Positions are in logical screen pixels and are
// offset by the current global translation. Drawing is clipped to the clip
// rect when one is set.
type Renderer interface {
	CreateTexture(img image.Image) Texture
	CreateRenderTarget(width, height int) Texture

	// PushRenderTarget redirects drawing into target until the matching
	// PopRenderTarget. Translation and clip rect are reset while it is bound.
	PushRenderTarget(target Texture)
	PopRenderTarget()

	Clear(c color.Color)
	DrawTexture(tex Texture, dest image.Point)
	DrawTextureColorized(tex Texture, dest image.Point, c color.Color)
	DrawFilledRect(rect image.Rectangle, c color.Color)
	DrawRect(rect image.Rectangle, c color.Color)
	DrawText(s string, dest image.Point, c color.Color)

	GlobalTranslation() image.Point
	SetGlobalTranslation(offset image.Point)
	SetClipRect(rect *image.Rectangle)
}

// UIDrawer is implemented by renderers that can draw ebitenui widget trees
// into the current target.
type UIDrawer interface {
	DrawUI(ui *ebitenui.UI)
}

// TranslationSaver restores the global translation when Restore is called.
type TranslationSaver struct {
	r     Renderer
	saved image.Point
}

// SaveTranslation remembers the current translation of r.
func SaveTranslation(r Renderer) TranslationSaver {
	return TranslationSaver{r: r, saved: r.GlobalTranslation()}
}

func (s TranslationSaver) Restore() {
	s.r.SetGlobalTranslation(s.saved)
}
