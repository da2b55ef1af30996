package scenes

import (
	"testing"
	"time"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/scripting"
	"github.com/automoto/dukeengine/systems"
	"github.com/automoto/dukeengine/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

const frame = 16 * time.Millisecond

func newTestRunner(t *testing.T) *GameRunner {
	t.Helper()
	w := newTestWorld(t, NewGameState(testSession))
	profile := w.res.Profile
	fader := ui.NewFader()
	ctx := &ui.Context{
		Renderer: w.res.Renderer,
		Scripts:  scripting.NewRunner(scripting.DefaultCatalogue(), w.res.Renderer, nil, profile.SlotNames),
		Profile:  profile,
		Fader:    fader,
	}
	return NewGameRunner(ctx, w, fader)
}

// frameWith runs one frame with the given input events.
func frameWith(g *GameRunner, events ...components.InputEvent) {
	input := g.World().Input()
	input.Events = append(input.Events, events...)
	g.Update(frame)
	g.Draw()
}

func keyDown(k ebiten.Key) components.InputEvent {
	return components.InputEvent{Kind: components.KeyDown, Key: k}
}

func keyUp(k ebiten.Key) components.InputEvent {
	return components.InputEvent{Kind: components.KeyUp, Key: k}
}

func TestRunnerTicksAtFixedRate(t *testing.T) {
	g := newTestRunner(t)
	tick := config.C.LogicTickDuration()

	g.Update(tick / 2)
	if got := g.World().Ticks(); got != 0 {
		t.Fatalf("Ticks() = %d after half a tick", got)
	}
	g.Update(tick/2 + 2*tick)
	if got := g.World().Ticks(); got != 3 {
		t.Errorf("Ticks() = %d, want 3", got)
	}
}

func TestRunnerPausesWhileMenuActive(t *testing.T) {
	g := newTestRunner(t)

	frameWith(g, keyDown(ebiten.KeyP))
	if !g.Menu().IsActive() {
		t.Fatal("pause menu not active")
	}
	g.Update(time.Second)
	if got := g.World().Ticks(); got != 0 {
		t.Errorf("world ticked %d times while paused", got)
	}

	// any key ends the pause
	frameWith(g, keyDown(ebiten.KeySpace))
	if g.Menu().IsActive() {
		t.Fatal("pause menu still active")
	}
	g.Update(config.C.LogicTickDuration())
	if got := g.World().Ticks(); got != 1 {
		t.Errorf("Ticks() = %d after unpausing, want 1", got)
	}
}

func TestRunnerQuit(t *testing.T) {
	g := newTestRunner(t)

	frameWith(g, keyDown(ebiten.KeyQ))
	frameWith(g, keyDown(ebiten.KeyY))
	if g.QuitRequested() {
		t.Fatal("quit on key down")
	}
	frameWith(g, keyUp(ebiten.KeyY))
	if !g.QuitRequested() {
		t.Error("quit not requested")
	}
}

func TestRunnerRestoresSavedGame(t *testing.T) {
	g := newTestRunner(t)
	saved := systems.SavedGame{SessionID: testSession, Name: "saved", Weapon: components.WeaponLaser, Ammo: 3, Score: 777}
	if err := g.World().res.Profile.StoreSaveSlot(0, saved); err != nil {
		t.Fatal(err)
	}
	oldMenu := g.Menu()

	frameWith(g, keyDown(ebiten.KeyF3))
	frameWith(g, keyDown(ebiten.KeyEnter))

	if g.World().Generation() != 2 {
		t.Fatalf("Generation() = %d, want 2", g.World().Generation())
	}
	if got := g.World().LevelStart(); got != saved {
		t.Errorf("LevelStart() = %+v, want %+v", got, saved)
	}
	if got := playerData(g.World()).Score; got != 777 {
		t.Errorf("Score = %d, want 777", got)
	}
	if g.Menu() == oldMenu || g.Menu().IsActive() {
		t.Error("expected a fresh, inactive menu")
	}
}

func TestRunnerReplacesMenuAfterRestart(t *testing.T) {
	g := newTestRunner(t)
	oldMenu := g.Menu()

	levelData(g.World()).PlayerDied = true
	g.Update(config.C.LogicTickDuration())
	g.Draw()

	if g.Menu() == oldMenu {
		t.Error("menu not replaced after the level restarted")
	}
}
