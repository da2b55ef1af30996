package scripting

import (
	"fmt"
	"image"
	"time"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/render"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const indicatorBlinkPeriod = 250 * time.Millisecond

type TerminationType int

const (
	RanToCompletion TerminationType = iota
	AbortedByUser
	MenuItemSelected
)

func (t TerminationType) String() string {
	switch t {
	case RanToCompletion:
		return "RanToCompletion"
	case AbortedByUser:
		return "AbortedByUser"
	default:
		return "MenuItemSelected"
	}
}

// ExecutionResult tells how a script ended. SelectedPage is the chosen menu
// item when TerminationType is MenuItemSelected.
type ExecutionResult struct {
	TerminationType TerminationType
	SelectedPage    int
}

type SoundPlayer interface {
	PlaySound(id config.SoundID)
}

// dialog is a program together with its interaction state.
type dialog struct {
	prog     *program
	page     int
	selected int
}

// Runner executes catalogue scripts and drives the resulting dialog.
//
// Dialogs of earlier scripts stay on the canvas underneath the current one
// until ClearCanvas is called.
type Runner struct {
	catalogue *Catalogue
	renderer  render.Renderer
	sounds    SoundPlayer
	slotNames func() []string

	compiled map[string]*tengo.Compiled

	canvas   []dialog
	current  *dialog
	finished bool
	result   ExecutionResult
	elapsed  time.Duration
}

// NewRunner creates a runner. renderer, sounds and slotNames may be nil.
func NewRunner(catalogue *Catalogue, renderer render.Renderer, sounds SoundPlayer, slotNames func() []string) *Runner {
	return &Runner{
		catalogue: catalogue,
		renderer:  renderer,
		sounds:    sounds,
		slotNames: slotNames,
		compiled:  make(map[string]*tengo.Compiled),
	}
}

// RunScript starts the named script. On error the runner reports the
// previous script as finished so a menu waiting on it does not get stuck.
func (r *Runner) RunScript(name string) error {
	prog, err := r.execute(name)
	if err != nil {
		logger.Log.WithField("script", name).WithError(err).Error("Script failed")
		r.finished = true
		r.result = ExecutionResult{TerminationType: RanToCompletion}
		return err
	}

	if r.current != nil {
		r.canvas = append(r.canvas, *r.current)
	}
	r.current = &dialog{prog: prog}
	r.finished = false
	r.result = ExecutionResult{}
	r.elapsed = 0
	return nil
}

func (r *Runner) execute(name string) (*program, error) {
	compiled, err := r.compile(name)
	if err != nil {
		return nil, err
	}

	var slots []string
	if r.slotNames != nil {
		slots = r.slotNames()
	}
	b := newBuilder(slots)
	if err := compiled.Set("ui", b.object()); err != nil {
		return nil, err
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("run script %q: %w", name, err)
	}
	return b.prog, nil
}

func (r *Runner) compile(name string) (*tengo.Compiled, error) {
	if c, ok := r.compiled[name]; ok {
		return c, nil
	}

	src, err := r.catalogue.Source(name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(src))
	if err := script.Add("ui", &tengo.ImmutableMap{Value: map[string]tengo.Object{}}); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap("fmt", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script %q: %w", name, err)
	}
	r.compiled[name] = compiled
	return compiled, nil
}

// Invalidate drops compiled scripts, e.g. after the catalogue was replaced.
func (r *Runner) Invalidate(catalogue *Catalogue) {
	r.catalogue = catalogue
	r.compiled = make(map[string]*tengo.Compiled)
}

func (r *Runner) HasFinishedExecution() bool {
	return r.finished
}

func (r *Runner) Result() ExecutionResult {
	return r.result
}

// CurrentPageIndex returns the selected menu item, or the visible page of
// a paged dialog.
func (r *Runner) CurrentPageIndex() (int, bool) {
	if r.current == nil {
		return 0, false
	}
	if r.current.prog.menu != nil {
		return r.current.selected, true
	}
	if len(r.current.prog.pages) > 1 {
		return r.current.page, true
	}
	return 0, false
}

// ClearCanvas removes all dialogs, including the current one.
func (r *Runner) ClearCanvas() {
	r.canvas = nil
	r.current = nil
}

func (r *Runner) HandleEvent(ev components.InputEvent) {
	if r.finished || r.current == nil {
		return
	}
	if ev.Kind != components.KeyDown && ev.Kind != components.ButtonDown {
		return
	}

	d := r.current
	switch {
	case ev.IsAction(config.ActionMenuBack):
		r.finish(ExecutionResult{TerminationType: AbortedByUser})

	case d.prog.menu != nil:
		n := len(d.prog.menu.items)
		switch {
		case n == 0:
			r.finish(ExecutionResult{TerminationType: AbortedByUser})
		case ev.IsAction(config.ActionMenuUp):
			d.selected = (d.selected - 1 + n) % n
			r.playSound(config.SoundMenuSelect)
		case ev.IsAction(config.ActionMenuDown):
			d.selected = (d.selected + 1) % n
			r.playSound(config.SoundMenuSelect)
		case ev.IsAction(config.ActionMenuSelect):
			r.finish(ExecutionResult{TerminationType: MenuItemSelected, SelectedPage: d.selected})
		}

	case len(d.prog.pages) > 1 && (ev.IsAction(config.ActionMenuUp) || ev.IsAction(config.ActionMoveLeft)):
		if d.page > 0 {
			d.page--
		}

	default:
		if d.page+1 < len(d.prog.pages) {
			d.page++
			return
		}
		r.finish(ExecutionResult{TerminationType: RanToCompletion})
	}
}

func (r *Runner) finish(result ExecutionResult) {
	r.finished = true
	r.result = result
}

func (r *Runner) playSound(id config.SoundID) {
	if r.sounds != nil {
		r.sounds.PlaySound(id)
	}
}

func (r *Runner) UpdateAndRender(dt time.Duration) {
	r.elapsed += dt
	if r.renderer == nil {
		return
	}

	for i := range r.canvas {
		r.draw(&r.canvas[i], false)
	}
	if r.current != nil {
		r.draw(r.current, !r.finished)
	}
}

func (r *Runner) draw(d *dialog, active bool) {
	tile := config.C.TileSize
	box := image.Rectangle{Min: d.prog.window.Min.Mul(tile), Max: d.prog.window.Max.Mul(tile)}
	r.renderer.DrawFilledRect(box, config.Menu.BoxColor)
	r.renderer.DrawRect(box, config.Menu.BorderColor)

	origin := box.Min
	for _, line := range d.prog.pages[d.page].lines {
		r.renderer.DrawText(line.text, origin.Add(line.pos.Mul(tile)), config.Menu.TextColor)
	}

	m := d.prog.menu
	if m == nil {
		return
	}
	for i, item := range m.items {
		c := config.Menu.TextColor
		if i == d.selected {
			c = config.Menu.SelectedColor
		}
		pos := image.Pt(m.pos.X, m.pos.Y+i*menuItemSpacing)
		r.renderer.DrawText(item, origin.Add(pos.Mul(tile)), c)
	}

	// Blinking selection indicator
	if active && (r.elapsed/indicatorBlinkPeriod)%2 == 0 {
		pos := image.Pt(m.pos.X-2, m.pos.Y+d.selected*menuItemSpacing)
		r.renderer.DrawText(">", origin.Add(pos.Mul(tile)), config.Menu.SelectedColor)
	}
}
