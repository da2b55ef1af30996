package ui

import (
	"image"
	"image/color"
	"time"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/scripting"
	"github.com/automoto/dukeengine/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeScripts struct {
	ran      []string
	cleared  int
	handled  []components.InputEvent
	finished bool
	result   scripting.ExecutionResult
	page     int
	hasPage  bool
}

func (s *fakeScripts) RunScript(name string) error {
	s.ran = append(s.ran, name)
	s.finished = false
	s.result = scripting.ExecutionResult{}
	return nil
}

func (s *fakeScripts) HasFinishedExecution() bool           { return s.finished }
func (s *fakeScripts) Result() scripting.ExecutionResult    { return s.result }
func (s *fakeScripts) CurrentPageIndex() (int, bool)        { return s.page, s.hasPage }
func (s *fakeScripts) HandleEvent(ev components.InputEvent) { s.handled = append(s.handled, ev) }
func (s *fakeScripts) UpdateAndRender(time.Duration)        {}
func (s *fakeScripts) ClearCanvas()                         { s.cleared++ }

func (s *fakeScripts) finish(t scripting.TerminationType, page int) {
	s.finished = true
	s.result = scripting.ExecutionResult{TerminationType: t, SelectedPage: page}
}

func (s *fakeScripts) last() string {
	if len(s.ran) == 0 {
		return ""
	}
	return s.ran[len(s.ran)-1]
}

type countingProfile struct {
	*systems.Profile
	saves int
}

func (p *countingProfile) SaveToDisk() {
	p.saves++
	p.Profile.SaveToDisk()
}

type fakeWorld struct {
	canQuickLoad bool
	quickSaves   int
	quickLoads   int
	healthCheats int
	itemCheats   int
}

func (w *fakeWorld) QuickSave()               { w.quickSaves++ }
func (w *fakeWorld) QuickLoad()               { w.quickLoads++ }
func (w *fakeWorld) CanQuickLoad() bool       { return w.canQuickLoad }
func (w *fakeWorld) ActivateFullHealthCheat() { w.healthCheats++ }
func (w *fakeWorld) ActivateGiveItemsCheat()  { w.itemCheats++ }

type fakeFader struct {
	outs, ins int
}

func (f *fakeFader) FadeOutScreen() { f.outs++ }
func (f *fakeFader) FadeInScreen()  { f.ins++ }

type soundLog []config.SoundID

func (s *soundLog) PlaySound(id config.SoundID) { *s = append(*s, id) }

type textRenderer struct {
	texts []string
	fills []image.Rectangle
}

func (r *textRenderer) CreateTexture(image.Image) render.Texture                      { return nil }
func (r *textRenderer) CreateRenderTarget(int, int) render.Texture                    { return nil }
func (r *textRenderer) PushRenderTarget(render.Texture)                               {}
func (r *textRenderer) PopRenderTarget()                                              {}
func (r *textRenderer) Clear(color.Color)                                             {}
func (r *textRenderer) DrawTexture(render.Texture, image.Point)                       {}
func (r *textRenderer) DrawTextureColorized(render.Texture, image.Point, color.Color) {}
func (r *textRenderer) DrawFilledRect(rect image.Rectangle, _ color.Color) {
	r.fills = append(r.fills, rect)
}
func (r *textRenderer) DrawRect(image.Rectangle, color.Color)           {}
func (r *textRenderer) DrawText(s string, _ image.Point, _ color.Color) { r.texts = append(r.texts, s) }
func (r *textRenderer) GlobalTranslation() image.Point                  { return image.Point{} }
func (r *textRenderer) SetGlobalTranslation(image.Point)                {}
func (r *textRenderer) SetClipRect(*image.Rectangle)                    {}

type menuFixture struct {
	menu    *IngameMenu
	scripts *fakeScripts
	profile *countingProfile
	world   *fakeWorld
	fader   *fakeFader
	sounds  *soundLog
	ctx     *Context
}

var testSession = config.SessionID{Episode: 0, Level: 1, Difficulty: config.Medium}

func newMenuFixture() *menuFixture {
	f := &menuFixture{
		scripts: &fakeScripts{},
		profile: &countingProfile{Profile: systems.NewProfile(nil)},
		world:   &fakeWorld{},
		fader:   &fakeFader{},
		sounds:  &soundLog{},
	}
	f.ctx = &Context{
		Renderer: &textRenderer{},
		Scripts:  f.scripts,
		Profile:  f.profile,
		Sounds:   f.sounds,
		Fader:    f.fader,
	}
	saved := systems.SavedGame{SessionID: testSession, Weapon: components.WeaponLaser, Ammo: 20, Score: 4200}
	f.menu = NewIngameMenu(f.ctx, f.world, saved)
	return f
}

// update runs one menu frame with no keys held.
func (f *menuFixture) update() UpdateResult {
	return f.menu.UpdateAndRender(time.Millisecond, nil)
}

func (f *menuFixture) press(keys ...ebiten.Key) {
	for _, k := range keys {
		f.menu.HandleEvent(keyDown(k))
	}
}

func (f *menuFixture) typeText(s string) {
	for _, r := range s {
		f.menu.HandleEvent(components.InputEvent{Kind: components.TextInput, Text: r})
	}
}

func keyDown(k ebiten.Key) components.InputEvent {
	return components.InputEvent{Kind: components.KeyDown, Key: k}
}

func keyUp(k ebiten.Key) components.InputEvent {
	return components.InputEvent{Kind: components.KeyUp, Key: k}
}

func buttonDown(b ebiten.StandardGamepadButton) components.InputEvent {
	return components.InputEvent{Kind: components.ButtonDown, Button: b}
}
