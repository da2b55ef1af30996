package render

import (
	"image"
	"image/color"

	"github.com/automoto/dukeengine/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenTexture wraps an ebiten image.
type EbitenTexture struct {
	Image *ebiten.Image
}

func (t *EbitenTexture) Width() int  { return t.Image.Bounds().Dx() }
func (t *EbitenTexture) Height() int { return t.Image.Bounds().Dy() }

// WrapImage turns an existing ebiten image into a Texture.
func WrapImage(img *ebiten.Image) Texture {
	return &EbitenTexture{Image: img}
}

var (
	drawOp = &ebiten.DrawImageOptions{}
	textOp = &text.DrawOptions{}
)

// EbitenRenderer draws into ebiten images. The screen has to be bound with
// BeginFrame at the start of every Draw call.
type EbitenRenderer struct {
	screen      *ebiten.Image
	targets     []*ebiten.Image
	translation image.Point
	clip        *image.Rectangle
	face        text.Face
}

func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{}
}

// BeginFrame binds the frame's screen image.
func (r *EbitenRenderer) BeginFrame(screen *ebiten.Image) {
	r.screen = screen
	r.targets = r.targets[:0]
	r.translation = image.Point{}
	r.clip = nil
}

// Target returns the image currently drawn into.
func (r *EbitenRenderer) Target() *ebiten.Image {
	var dst *ebiten.Image
	if n := len(r.targets); n > 0 {
		dst = r.targets[n-1]
	} else {
		dst = r.screen
	}
	if r.clip != nil && dst != nil {
		return dst.SubImage(*r.clip).(*ebiten.Image)
	}
	return dst
}

func (r *EbitenRenderer) CreateTexture(img image.Image) Texture {
	return &EbitenTexture{Image: ebiten.NewImageFromImage(img)}
}

func (r *EbitenRenderer) CreateRenderTarget(width, height int) Texture {
	return &EbitenTexture{Image: ebiten.NewImage(width, height)}
}

func (r *EbitenRenderer) PushRenderTarget(target Texture) {
	r.targets = append(r.targets, target.(*EbitenTexture).Image)
	r.translation = image.Point{}
	r.clip = nil
}

func (r *EbitenRenderer) PopRenderTarget() {
	r.targets = r.targets[:len(r.targets)-1]
	r.translation = image.Point{}
	r.clip = nil
}

func (r *EbitenRenderer) Clear(c color.Color) {
	if dst := r.Target(); dst != nil {
		dst.Fill(c)
	}
}

func (r *EbitenRenderer) DrawTexture(tex Texture, dest image.Point) {
	r.drawTexture(tex, dest, nil)
}

func (r *EbitenRenderer) DrawTextureColorized(tex Texture, dest image.Point, c color.Color) {
	r.drawTexture(tex, dest, c)
}

func (r *EbitenRenderer) drawTexture(tex Texture, dest image.Point, tint color.Color) {
	dst := r.Target()
	if dst == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	p := dest.Add(r.translation)
	drawOp.GeoM.Translate(float64(p.X), float64(p.Y))
	if tint != nil {
		drawOp.ColorScale.ScaleWithColor(tint)
	}
	dst.DrawImage(tex.(*EbitenTexture).Image, drawOp)
}

func (r *EbitenRenderer) DrawFilledRect(rect image.Rectangle, c color.Color) {
	dst := r.Target()
	if dst == nil {
		return
	}
	rect = rect.Add(r.translation)
	vector.FillRect(dst, float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()), c, false)
}

func (r *EbitenRenderer) DrawRect(rect image.Rectangle, c color.Color) {
	dst := r.Target()
	if dst == nil {
		return
	}
	rect = rect.Add(r.translation)
	vector.StrokeRect(dst, float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()), 1, c, false)
}

func (r *EbitenRenderer) DrawText(s string, dest image.Point, c color.Color) {
	dst := r.Target()
	if dst == nil {
		return
	}
	if r.face == nil {
		r.face = text.NewGoXFace(fonts.Menu.Get())
	}
	p := dest.Add(r.translation)
	textOp.GeoM.Reset()
	textOp.ColorScale.Reset()
	textOp.GeoM.Translate(float64(p.X), float64(p.Y))
	textOp.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, r.face, textOp)
}

func (r *EbitenRenderer) GlobalTranslation() image.Point {
	return r.translation
}

func (r *EbitenRenderer) SetGlobalTranslation(offset image.Point) {
	r.translation = offset
}

func (r *EbitenRenderer) SetClipRect(rect *image.Rectangle) {
	if rect == nil {
		r.clip = nil
		return
	}
	clip := rect.Add(r.translation)
	r.clip = &clip
}

// DrawUI lays out ui and draws it into the current target.
func (r *EbitenRenderer) DrawUI(ui *ebitenui.UI) {
	dst := r.Target()
	if dst == nil {
		return
	}
	ui.Update()
	ui.Draw(dst)
}
