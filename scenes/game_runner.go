package scenes

import (
	"time"

	cfg "github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/ui"
)

// GameRunner runs a game session: the world at a fixed logic rate and the
// in-game menu on top of it. The world is paused while the menu is active.
type GameRunner struct {
	ctx   *ui.Context
	world *WorldScene
	menu  *ui.IngameMenu
	fader *ui.Fader

	// world generation the menu was created for
	menuGeneration int
	accumulated    time.Duration
	frameTime      time.Duration
	quit           bool
}

// NewGameRunner wires a menu to world. ctx.Fader should be fader, so
// menu transitions and runner fades share one overlay.
func NewGameRunner(ctx *ui.Context, world *WorldScene, fader *ui.Fader) *GameRunner {
	g := &GameRunner{ctx: ctx, world: world, fader: fader}
	g.resetMenu()
	return g
}

func (g *GameRunner) resetMenu() {
	g.menu = ui.NewIngameMenu(g.ctx, g.world, g.world.LevelStart())
	g.menuGeneration = g.world.Generation()
}

func (g *GameRunner) World() *WorldScene {
	return g.world
}

func (g *GameRunner) Menu() *ui.IngameMenu {
	return g.menu
}

// QuitRequested reports whether the game should end.
func (g *GameRunner) QuitRequested() bool {
	return g.quit
}

// Update hands this frame's input events to the menu and runs as many
// logic ticks as dt allows. Input must have been polled into
// World().Input() before.
func (g *GameRunner) Update(dt time.Duration) {
	input := g.world.Input()
	for _, ev := range input.Events {
		g.menu.HandleEvent(ev)
	}
	input.Events = input.Events[:0]
	g.frameTime += dt

	if g.menu.IsActive() {
		g.accumulated = 0
		return
	}

	tick := cfg.C.LogicTickDuration()
	g.accumulated += dt
	for g.accumulated >= tick {
		g.accumulated -= tick
		g.world.Tick()
		if g.world.Finished() {
			g.quit = true
			return
		}
	}
}

// Draw renders the world unless an opaque menu covers it, then runs the
// menu for the time passed since the last Draw.
func (g *GameRunner) Draw() {
	dt := g.frameTime
	g.frameTime = 0

	if !g.menu.IsActive() || g.menu.IsTransparent() {
		g.world.Render(dt)
	}

	if g.menu.UpdateAndRender(dt, g.world.Input().Keys) == ui.MenuFinishedNeedsFadeout {
		g.fader.FadeOutScreen()
		g.fader.FadeInScreen()
	}
	g.handleMenuRequests()

	g.fader.Update(dt)
	g.fader.Draw(g.ctx.Renderer)
}

func (g *GameRunner) handleMenuRequests() {
	if g.menu.QuitRequested() {
		g.quit = true
		return
	}

	if game := g.menu.RequestedGameToLoad(); game != nil {
		logger.Log.WithField("session", game.SessionID.ShortString()).Info("Restoring saved game")
		if err := g.world.Load(*game); err != nil {
			logger.Log.WithError(err).Error("Could not restore saved game")
		}
		g.fader.FadeOutScreen()
		g.fader.FadeInScreen()
		g.resetMenu()
		return
	}

	// A new level needs a menu saving the new level start
	if g.world.Generation() != g.menuGeneration && !g.menu.IsActive() {
		g.resetMenu()
	}
}
