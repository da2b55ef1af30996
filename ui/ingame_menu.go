package ui

import (
	"time"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/logger"
	"github.com/automoto/dukeengine/scripting"
	"github.com/automoto/dukeengine/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type UpdateResult int

const (
	MenuStillActive UpdateResult = iota
	MenuFinished
	MenuFinishedNeedsFadeout
)

type menuType int

const (
	menuNone menuType = iota
	menuConfirmQuitInGame
	menuConfirmQuit
	menuOptions
	menuSaveGame
	menuLoadGame
	menuHelp
	menuPause
	menuTopLevel
	menuCheatPrayingWontHelp
	menuCheatHealthRestored
	menuCheatItemsGiven
)

var hotkeyMenus = map[config.MenuHotkey]menuType{
	config.HotkeyConfirmQuit: menuConfirmQuitInGame,
	config.HotkeyTopLevel:    menuTopLevel,
	config.HotkeyOptions:     menuOptions,
	config.HotkeySaveGame:    menuSaveGame,
	config.HotkeyLoadGame:    menuLoadGame,
	config.HotkeyHelp:        menuHelp,
	config.HotkeyPause:       menuPause,
}

// menuState is one of *TopLevelMenu, *ScriptedMenu, *SavedGameNameEntry
// and *OptionsMenu.
type menuState interface {
	isMenuState()
}

func (*TopLevelMenu) isMenuState()       {}
func (*ScriptedMenu) isMenuState()       {}
func (*SavedGameNameEntry) isMenuState() {}
func (*OptionsMenu) isMenuState()        {}

// ScriptedMenu shows a dialog script. The event hook sees input before the
// script runner and returns true to swallow it.
type ScriptedMenu struct {
	onFinished  func(result scripting.ExecutionResult)
	eventHook   func(ev components.InputEvent) bool
	transparent bool
}

func noopEventHook(components.InputEvent) bool { return false }

// IngameMenu is the stack of menus layered over a running game. The game
// is paused while the menu is active.
type IngameMenu struct {
	ctx   *Context
	world GameWorld

	session config.SessionID
	// state at the start of the level, which is what saving stores
	savedGame systems.SavedGame

	stack       []menuState
	topLevel    *TopLevelMenu
	events      []components.InputEvent
	menuToEnter menuType

	cheatsHeld    [3]bool
	quitRequested bool
	gameToLoad    *systems.SavedGame
	fadeoutNeeded bool
}

func NewIngameMenu(ctx *Context, world GameWorld, savedGame systems.SavedGame) *IngameMenu {
	return &IngameMenu{
		ctx:       ctx,
		world:     world,
		session:   savedGame.SessionID,
		savedGame: savedGame,
	}
}

func (m *IngameMenu) IsActive() bool {
	return len(m.stack) > 0 || m.menuToEnter != menuNone
}

func (m *IngameMenu) QuitRequested() bool {
	return m.quitRequested
}

// RequestedGameToLoad is the saved game picked in the restore menu, or nil.
func (m *IngameMenu) RequestedGameToLoad() *systems.SavedGame {
	return m.gameToLoad
}

// IsTransparent reports whether the game world should be drawn underneath
// the menu.
func (m *IngameMenu) IsTransparent() bool {
	if len(m.stack) == 0 {
		return true
	}
	if m.topLevel != nil {
		return false
	}

	switch state := m.top().(type) {
	case *ScriptedMenu:
		return state.transparent
	case *OptionsMenu:
		return true
	default:
		return false
	}
}

func (m *IngameMenu) top() menuState {
	return m.stack[len(m.stack)-1]
}

func (m *IngameMenu) push(state menuState) {
	m.stack = append(m.stack, state)
}

func (m *IngameMenu) pop() {
	m.stack = m.stack[:len(m.stack)-1]
}

// HandleEvent takes one input event. While the menu is inactive only the
// menu hotkeys are looked at, otherwise events are queued for the next
// UpdateAndRender.
func (m *IngameMenu) HandleEvent(ev components.InputEvent) {
	if m.quitRequested || m.gameToLoad != nil {
		return
	}

	if !m.IsActive() {
		m.handleMenuEnterEvent(ev)
		return
	}
	m.events = append(m.events, ev)
}

func (m *IngameMenu) handleMenuEnterEvent(ev components.InputEvent) {
	var hotkey config.MenuHotkey
	switch ev.Kind {
	case components.KeyDown:
		hotkey = config.Input.MenuHotkeys[ev.Key]
	case components.ButtonDown:
		hotkey = config.Input.MenuHotkeyButtons[ev.Button]
	}
	if menu, ok := hotkeyMenus[hotkey]; ok {
		m.menuToEnter = menu
	}
}

// handleCheatCodes looks at the keys held this frame. A cheat fires once
// when its last key goes down.
func (m *IngameMenu) handleCheatCodes(keys components.KeySnapshot) {
	cheats := []*config.CheatCode{
		&config.Input.CheatPrayingWontHelp,
		&config.Input.CheatFullHealth,
		&config.Input.CheatGiveItems,
	}
	var fired [3]bool
	for i, cheat := range cheats {
		held := keys.AllPressed(cheat.Keys)
		fired[i] = held && !m.cheatsHeld[i] && m.cheatAvailable(cheat)
		m.cheatsHeld[i] = held
	}

	switch {
	case fired[0]:
		m.menuToEnter = menuCheatPrayingWontHelp
	case fired[1]:
		m.world.ActivateFullHealthCheat()
		m.menuToEnter = menuCheatHealthRestored
	case fired[2]:
		// activated after entering the menu, so the items do not show up
		// before the message
		m.menuToEnter = menuCheatItemsGiven
	}
}

func (m *IngameMenu) cheatAvailable(cheat *config.CheatCode) bool {
	if m.ctx.Shareware {
		return !cheat.RegisteredOnly
	}
	return !cheat.SharewareOnly
}

// UpdateAndRender processes queued events and draws the active menu
// states. keys is the keyboard state of this frame, used for cheat codes.
func (m *IngameMenu) UpdateAndRender(dt time.Duration, keys components.KeySnapshot) UpdateResult {
	if !m.IsActive() && m.gameToLoad == nil && !m.quitRequested {
		m.handleCheatCodes(keys)
	}

	if m.menuToEnter != menuNone {
		menu := m.menuToEnter
		m.menuToEnter = menuNone
		m.enterMenu(menu)
	}

	m.fadeoutNeeded = false

	m.handleMenuActiveEvents()

	if m.topLevel != nil && len(m.stack) > 1 {
		m.topLevel.UpdateAndRender(m.ctx.Renderer, 0)
	}

	if len(m.stack) > 0 {
		switch state := m.top().(type) {
		case *SavedGameNameEntry:
			m.ctx.Scripts.UpdateAndRender(dt)
			state.UpdateAndRender(m.ctx.Renderer, dt)
		case *TopLevelMenu:
			state.UpdateAndRender(m.ctx.Renderer, dt)
		case *ScriptedMenu:
			m.updateScriptedMenu(state, dt)
		case *OptionsMenu:
			state.UpdateAndRender(m.ctx.Renderer, dt)
		}
	}

	if len(m.stack) == 0 {
		if m.fadeoutNeeded {
			return MenuFinishedNeedsFadeout
		}
		return MenuFinished
	}
	return MenuStillActive
}

func (m *IngameMenu) updateScriptedMenu(state *ScriptedMenu, dt time.Duration) {
	m.ctx.Scripts.UpdateAndRender(dt)
	if m.ctx.Scripts.HasFinishedExecution() {
		state.onFinished(m.ctx.Scripts.Result())
	}
}

func (m *IngameMenu) handleMenuActiveEvents() {
	for _, ev := range m.events {
		if len(m.stack) == 0 {
			break
		}

		switch state := m.top().(type) {
		case *TopLevelMenu:
			m.handleTopLevelEvent(state, ev)
		case *SavedGameNameEntry:
			m.handleNameEntryEvent(state, ev)
		case *ScriptedMenu:
			if !state.eventHook(ev) {
				m.ctx.Scripts.HandleEvent(ev)
			}
		case *OptionsMenu:
			state.HandleEvent(ev, m.ctx.playSound)
		}
	}
	m.events = m.events[:0]

	m.handleOptionsMenuClosed()
}

func (m *IngameMenu) handleTopLevelEvent(state *TopLevelMenu, ev components.InputEvent) {
	switch {
	case isConfirm(ev):
		switch state.SelectedItem() {
		case config.MenuItemSaveGame:
			m.enterMenu(menuSaveGame)
		case config.MenuItemQuickSave:
			m.world.QuickSave()
			m.leaveTopLevelMenu(state)
		case config.MenuItemRestoreGame:
			m.enterMenu(menuLoadGame)
		case config.MenuItemRestoreQuickSave:
			m.world.QuickLoad()
			m.leaveTopLevelMenu(state)
		case config.MenuItemOptions:
			m.enterMenu(menuOptions)
		case config.MenuItemHelp:
			m.enterMenu(menuHelp)
		case config.MenuItemQuitGame:
			m.enterMenu(menuConfirmQuit)
		}
	case isCancel(ev):
		m.leaveTopLevelMenu(state)
	default:
		state.HandleEvent(ev, m.ctx.playSound)
	}
}

func (m *IngameMenu) leaveTopLevelMenu(state *TopLevelMenu) {
	state.UpdateAndRender(m.ctx.Renderer, 0)
	m.topLevel = nil
	m.pop()
	m.fadeout()
}

func (m *IngameMenu) handleNameEntryEvent(state *SavedGameNameEntry, ev components.InputEvent) {
	leaveSaveGameMenu := func() {
		// one last frame to fade out from
		m.ctx.Scripts.UpdateAndRender(0)
		state.UpdateAndRender(m.ctx.Renderer, 0)

		m.pop()
		m.pop()
	}

	switch {
	case isNameConfirm(ev):
		m.saveGame(state.SlotIndex, state.Text())
		leaveSaveGameMenu()
		if m.topLevel != nil {
			m.topLevel = nil
			m.pop()
		}
		m.fadeout()
	case isCancel(ev):
		m.pop()
	default:
		state.HandleEvent(ev)
	}
}

// handleOptionsMenuClosed pops a finished options menu. Quick saving may
// have been switched, so a top level menu beneath is rebuilt.
func (m *IngameMenu) handleOptionsMenuClosed() {
	if len(m.stack) == 0 {
		return
	}
	options, ok := m.top().(*OptionsMenu)
	if !ok || !options.IsFinished() {
		return
	}

	m.pop()
	m.ctx.Profile.SaveToDisk()

	if len(m.stack) == 0 {
		return
	}
	if _, ok := m.top().(*TopLevelMenu); ok {
		menu := m.newTopLevelMenu()
		menu.SelectItem(config.MenuItemOptions)
		m.stack[len(m.stack)-1] = menu
		m.topLevel = menu
	}
}

func (m *IngameMenu) newTopLevelMenu() *TopLevelMenu {
	quickSaving := m.ctx.Profile.GameOptions().QuickSavingEnabled
	return NewTopLevelMenu(m.session, quickSaving, m.world.CanQuickLoad())
}

func (m *IngameMenu) saveGame(slot int, name string) {
	game := m.savedGame
	game.Name = name
	if err := m.ctx.Profile.StoreSaveSlot(slot, game); err != nil {
		logger.Log.WithError(err).WithField("slot", slot).Error("Could not save game")
		return
	}
	m.ctx.Profile.SaveToDisk()
}

func (m *IngameMenu) enterMenu(menu menuType) {
	scripts := &config.Menu.Scripts

	leaveMenuHook := func(scripting.ExecutionResult) {
		m.leaveMenu()
	}
	leaveMenuWithFadeHook := func(scripting.ExecutionResult) {
		m.leaveMenu()
		m.fadeout()
	}

	switch menu {
	case menuConfirmQuitInGame:
		m.enterScriptedMenu(scripts.ConfirmQuitInGame, leaveMenuHook, m.quitConfirmEventHook, true, true)
	case menuConfirmQuit:
		m.enterScriptedMenu(scripts.ConfirmQuit, leaveMenuHook, m.quitConfirmEventHook, false, true)
	case menuOptions:
		m.push(NewOptionsMenu(m.ctx.Profile.GameOptions()))
	case menuSaveGame:
		m.enterScriptedMenu(scripts.SaveGame, m.onSaveSlotSelectionFinished, m.saveSlotSelectionEventHook, false, true)
	case menuLoadGame:
		m.enterScriptedMenu(scripts.RestoreGame, m.onRestoreGameMenuFinished, noopEventHook, false, true)
	case menuHelp:
		m.enterScriptedMenu(scripts.Help, leaveMenuWithFadeHook, noopEventHook, false, true)
	case menuPause:
		m.enterScriptedMenu(scripts.Pause, leaveMenuHook, noopEventHook, true, true)
	case menuCheatPrayingWontHelp:
		m.enterScriptedMenu(scripts.PrayingWontHelp, leaveMenuHook, noopEventHook, true, true)
	case menuCheatHealthRestored:
		m.enterScriptedMenu(scripts.HealthRestored, leaveMenuHook, noopEventHook, true, true)
	case menuCheatItemsGiven:
		m.enterScriptedMenu(scripts.ItemsGiven, leaveMenuWithFadeHook, noopEventHook, false, true)
		m.world.ActivateGiveItemsCheat()
	case menuTopLevel:
		menu := m.newTopLevelMenu()
		m.ctx.fadeOut()
		menu.UpdateAndRender(m.ctx.Renderer, 0)
		m.ctx.fadeIn()

		m.topLevel = menu
		m.push(menu)
	}
}

func (m *IngameMenu) enterScriptedMenu(
	name string,
	onFinished func(scripting.ExecutionResult),
	eventHook func(components.InputEvent) bool,
	transparent bool,
	clearCanvas bool,
) {
	if clearCanvas {
		m.ctx.Scripts.ClearCanvas()
	}
	// A failed script counts as finished, the menu closes again on the
	// next update
	_ = m.ctx.Scripts.RunScript(name)

	m.push(&ScriptedMenu{
		onFinished:  onFinished,
		eventHook:   eventHook,
		transparent: transparent,
	})
}

func (m *IngameMenu) leaveMenu() {
	m.pop()
}

// fadeout asks for a fade when the game resumes. With the top level menu
// still open, it fades back to that menu right away.
func (m *IngameMenu) fadeout() {
	if m.topLevel != nil {
		m.ctx.fadeOut()
		m.topLevel.UpdateAndRender(m.ctx.Renderer, 0)
		m.ctx.fadeIn()
		return
	}
	m.fadeoutNeeded = true
}

// quitConfirmEventHook confirms quitting on key up, not key down, so the
// key is no longer held when the next screen starts taking text input. The
// key down still has to be swallowed, the dialog would close otherwise.
func (m *IngameMenu) quitConfirmEventHook(ev components.InputEvent) bool {
	key := config.Input.QuitConfirmKey
	switch {
	case ev.IsKeyDown(key):
		return true
	case ev.Kind == components.KeyUp && ev.Key == key,
		ev.IsButtonDown(config.Input.ConfirmButton):
		m.quitRequested = true
		return true
	}
	return false
}

func (m *IngameMenu) saveSlotSelectionEventHook(ev components.InputEvent) bool {
	if !isConfirm(ev) {
		return false
	}

	slot, ok := m.ctx.Scripts.CurrentPageIndex()
	if !ok {
		return false
	}
	prefill := ""
	if ev.Kind == components.ButtonDown {
		prefill = m.session.ShortString()
	}
	m.push(NewSavedGameNameEntry(slot, prefill))
	return true
}

func (m *IngameMenu) onSaveSlotSelectionFinished(result scripting.ExecutionResult) {
	if result.TerminationType == scripting.AbortedByUser {
		m.leaveMenu()
		m.fadeout()
	}
}

func (m *IngameMenu) onRestoreGameMenuFinished(result scripting.ExecutionResult) {
	// The slot list stays on the stack underneath the message, and comes
	// back once the message is dismissed.
	showErrorMessage := func(script string) {
		m.enterScriptedMenu(script, func(scripting.ExecutionResult) {
			m.leaveMenu()
			_ = m.ctx.Scripts.RunScript(config.Menu.Scripts.RestoreGame)
		}, noopEventHook, false, false)
	}

	if result.TerminationType != scripting.MenuItemSelected {
		m.leaveMenu()
		m.fadeout()
		return
	}

	slot, err := m.ctx.Profile.SaveSlot(result.SelectedPage)
	switch {
	case err != nil:
		logger.Log.WithError(err).Warn("Invalid save slot selected")
		m.leaveMenu()
		m.fadeout()
	case slot == nil:
		showErrorMessage(config.Menu.Scripts.NoGameToRestore)
	case m.ctx.Shareware && slot.SessionID.IsRegisteredVersionOnly():
		showErrorMessage(config.Menu.Scripts.NoCanOrder)
	default:
		game := *slot
		m.gameToLoad = &game
	}
}

func isConfirm(ev components.InputEvent) bool {
	return ev.IsAction(config.ActionMenuSelect)
}

// isNameConfirm leaves out Space, which is part of the name.
func isNameConfirm(ev components.InputEvent) bool {
	return ev.IsKeyDown(ebiten.KeyEnter) || ev.IsKeyDown(ebiten.KeyNumpadEnter) ||
		ev.IsButtonDown(config.Input.ConfirmButton)
}

func isCancel(ev components.InputEvent) bool {
	return ev.IsAction(config.ActionMenuBack)
}
