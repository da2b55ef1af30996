package ui

import (
	"image"
	"image/color"
	"time"

	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/render"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader animates a black overlay. Fade requests are queued, so a fade out
// immediately followed by a fade in plays both halves in order.
type Fader struct {
	seq *gween.Sequence
	// alpha of the overlay, 0 is fully transparent
	alpha float32
	// alpha the queued fades end at
	target float32
}

func NewFader() *Fader {
	return &Fader{}
}

func (f *Fader) FadeOutScreen() {
	f.queue(1)
}

func (f *Fader) FadeInScreen() {
	f.queue(0)
}

func (f *Fader) queue(to float32) {
	if to == f.target {
		return
	}
	if f.seq == nil {
		f.seq = gween.NewSequence()
	}
	f.seq.Add(gween.New(f.target, to, float32(config.Menu.FadeDuration.Seconds()), ease.Linear))
	f.target = to
}

// Fading reports whether a fade is in progress.
func (f *Fader) Fading() bool {
	return f.seq != nil
}

func (f *Fader) Alpha() float32 {
	return f.alpha
}

func (f *Fader) Update(dt time.Duration) {
	if f.seq == nil {
		return
	}
	alpha, _, done := f.seq.Update(float32(dt.Seconds()))
	f.alpha = alpha
	if done {
		f.alpha = f.target
		f.seq = nil
	}
}

func (f *Fader) Draw(r render.Renderer) {
	if f.alpha <= 0 {
		return
	}
	overlay := color.RGBA{A: uint8(f.alpha * 255)}
	r.DrawFilledRect(image.Rect(0, 0, config.C.Width, config.C.Height), overlay)
}
