// Package ui implements the in-game menu and its screens.
package ui

import (
	"time"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/render"
	"github.com/automoto/dukeengine/scripting"
	"github.com/automoto/dukeengine/systems"
)

// ScriptRunner runs the dialog scripts of scripted menus. There is one
// runner shared by all menu states.
type ScriptRunner interface {
	RunScript(name string) error
	HasFinishedExecution() bool
	Result() scripting.ExecutionResult
	CurrentPageIndex() (int, bool)
	HandleEvent(ev components.InputEvent)
	UpdateAndRender(dt time.Duration)
	ClearCanvas()
}

// UserProfile is the persistent state the menu reads and writes.
type UserProfile interface {
	SaveSlot(i int) (*systems.SavedGame, error)
	StoreSaveSlot(i int, game systems.SavedGame) error
	GameOptions() *config.GameOptions
	SaveToDisk()
}

type SoundPlayer interface {
	PlaySound(id config.SoundID)
}

// GameWorld is the running game as far as the menu is concerned.
type GameWorld interface {
	QuickSave()
	QuickLoad()
	CanQuickLoad() bool
	ActivateFullHealthCheat()
	ActivateGiveItemsCheat()
}

// ScreenFader fades the whole screen to and from black.
type ScreenFader interface {
	FadeOutScreen()
	FadeInScreen()
}

// Context bundles the collaborators shared by all menu states.
type Context struct {
	Renderer render.Renderer
	Scripts  ScriptRunner
	Profile  UserProfile
	Sounds   SoundPlayer
	Fader    ScreenFader

	// Shareware restricts the game to the first episode
	Shareware bool
}

func (c *Context) playSound(id config.SoundID) {
	if c.Sounds != nil {
		c.Sounds.PlaySound(id)
	}
}

func (c *Context) fadeOut() {
	if c.Fader != nil {
		c.Fader.FadeOutScreen()
	}
}

func (c *Context) fadeIn() {
	if c.Fader != nil {
		c.Fader.FadeInScreen()
	}
}
