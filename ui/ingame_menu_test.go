package ui

import (
	"slices"
	"testing"
	"time"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/automoto/dukeengine/scripting"
	"github.com/automoto/dukeengine/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestHotkeysEnterMenus(t *testing.T) {
	tests := []struct {
		name            string
		event           components.InputEvent
		wantScript      string
		wantTransparent bool
	}{
		{name: "quit", event: keyDown(ebiten.KeyQ), wantScript: "2Quit_Select", wantTransparent: true},
		{name: "pause", event: keyDown(ebiten.KeyP), wantScript: "Paused", wantTransparent: true},
		{name: "help", event: keyDown(ebiten.KeyH), wantScript: "&Instructions", wantTransparent: false},
		{name: "save", event: keyDown(ebiten.KeyF2), wantScript: "Save_Game", wantTransparent: false},
		{name: "restore", event: keyDown(ebiten.KeyF3), wantScript: "Restore_Game", wantTransparent: false},
		{name: "options", event: keyDown(ebiten.KeyF1), wantTransparent: true},
		{name: "top level", event: keyDown(ebiten.KeyEscape), wantTransparent: false},
		{name: "top level from gamepad", event: buttonDown(ebiten.StandardGamepadButtonCenterRight), wantTransparent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMenuFixture()
			f.menu.HandleEvent(tt.event)
			if !f.menu.IsActive() {
				t.Fatal("menu should be active after hotkey")
			}

			if got := f.update(); got != MenuStillActive {
				t.Errorf("UpdateAndRender() = %v, want MenuStillActive", got)
			}
			if got := f.scripts.last(); got != tt.wantScript {
				t.Errorf("script = %q, want %q", got, tt.wantScript)
			}
			if got := f.menu.IsTransparent(); got != tt.wantTransparent {
				t.Errorf("IsTransparent() = %v, want %v", got, tt.wantTransparent)
			}
		})
	}
}

func TestKeysWithoutHotkeyDoNotOpenMenu(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyA, ebiten.KeyLeft)
	f.menu.HandleEvent(keyUp(ebiten.KeyEscape))

	if f.menu.IsActive() {
		t.Error("menu should stay inactive")
	}
	if got := f.update(); got != MenuFinished {
		t.Errorf("UpdateAndRender() = %v, want MenuFinished", got)
	}
}

func TestTopLevelMenuFadesIn(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyEscape)
	f.update()

	if f.fader.outs != 1 || f.fader.ins != 1 {
		t.Errorf("fades = %d out, %d in, want 1 and 1", f.fader.outs, f.fader.ins)
	}
	r := f.ctx.Renderer.(*textRenderer)
	if !slices.Contains(r.texts, "Episode 1, Level 2, Medium") {
		t.Errorf("title not drawn, texts = %q", r.texts)
	}
}

func TestTopLevelItems(t *testing.T) {
	tests := []struct {
		name         string
		quickSaving  bool
		canQuickLoad bool
		want         []string
	}{
		{
			name: "no quick saving",
			want: []string{"Save Game", "Restore Game", "Options", "Help", "Quit Game"},
		},
		{
			name:        "quick saving without quick save",
			quickSaving: true,
			want:        []string{"Save Game", "Quick Save", "Restore Game", "Options", "Help", "Quit Game"},
		},
		{
			name:         "quick saving with quick save",
			quickSaving:  true,
			canQuickLoad: true,
			want:         []string{"Save Game", "Quick Save", "Restore Game", "Restore Quick Save", "Options", "Help", "Quit Game"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu := NewTopLevelMenu(testSession, tt.quickSaving, tt.canQuickLoad)
			if !slices.Equal(menu.Items(), tt.want) {
				t.Errorf("Items() = %q, want %q", menu.Items(), tt.want)
			}
			if menu.SelectedItem() != "Save Game" {
				t.Errorf("SelectedItem() = %q, want first item", menu.SelectedItem())
			}
		})
	}
}

func TestTopLevelNavigationWraps(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyEscape)
	f.update()

	f.press(ebiten.KeyUp)
	f.update()
	if got := f.menu.topLevel.SelectedItem(); got != "Quit Game" {
		t.Errorf("after up, selected = %q, want Quit Game", got)
	}

	f.press(ebiten.KeyDown, ebiten.KeyDown)
	f.update()
	if got := f.menu.topLevel.SelectedItem(); got != "Restore Game" {
		t.Errorf("after down twice, selected = %q, want Restore Game", got)
	}

	if got := len(*f.sounds); got != 3 {
		t.Errorf("played %d sounds, want 3", got)
	}
}

func TestTopLevelCancelNeedsFadeout(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyEscape)
	f.update()

	f.press(ebiten.KeyEscape)
	if got := f.update(); got != MenuFinishedNeedsFadeout {
		t.Errorf("UpdateAndRender() = %v, want MenuFinishedNeedsFadeout", got)
	}
	if f.menu.IsActive() {
		t.Error("menu still active")
	}
}

func TestOptionsCloseRebuildsTopLevelMenu(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyEscape)
	f.update()
	if slices.Contains(f.menu.topLevel.Items(), "Quick Save") {
		t.Fatal("Quick Save offered with quick saving disabled")
	}

	f.menu.topLevel.SelectItem("Options")
	f.press(ebiten.KeyEnter)
	f.update()
	if _, ok := f.menu.top().(*OptionsMenu); !ok {
		t.Fatalf("top state = %T, want *OptionsMenu", f.menu.top())
	}

	f.profile.Options.QuickSavingEnabled = true
	f.press(ebiten.KeyEscape)
	if got := f.update(); got != MenuStillActive {
		t.Fatalf("UpdateAndRender() = %v, want MenuStillActive", got)
	}

	top, ok := f.menu.top().(*TopLevelMenu)
	if !ok {
		t.Fatalf("top state = %T, want *TopLevelMenu", f.menu.top())
	}
	if top != f.menu.topLevel {
		t.Error("rebuilt menu is not the current top level menu")
	}
	if top.SelectedItem() != "Options" {
		t.Errorf("SelectedItem() = %q, want Options", top.SelectedItem())
	}
	if !slices.Contains(top.Items(), "Quick Save") {
		t.Errorf("Items() = %q, want Quick Save offered", top.Items())
	}
	if f.profile.saves != 1 {
		t.Errorf("profile saved %d times, want 1", f.profile.saves)
	}
}

func TestOptionsHotkeyClosesMenu(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyF1)
	f.update()

	f.press(ebiten.KeyEscape)
	if got := f.update(); got != MenuFinished {
		t.Errorf("UpdateAndRender() = %v, want MenuFinished", got)
	}
	if f.profile.saves != 1 {
		t.Errorf("profile saved %d times, want 1", f.profile.saves)
	}
}

func TestQuickSaveFromTopLevel(t *testing.T) {
	f := newMenuFixture()
	f.profile.Options.QuickSavingEnabled = true
	f.world.canQuickLoad = true
	f.press(ebiten.KeyEscape)
	f.update()

	f.menu.topLevel.SelectItem("Quick Save")
	f.press(ebiten.KeyEnter)
	if got := f.update(); got != MenuFinishedNeedsFadeout {
		t.Errorf("UpdateAndRender() = %v, want MenuFinishedNeedsFadeout", got)
	}
	if f.world.quickSaves != 1 {
		t.Errorf("quick saves = %d, want 1", f.world.quickSaves)
	}

	f.press(ebiten.KeyEscape)
	f.update()
	f.menu.topLevel.SelectItem("Restore Quick Save")
	f.press(ebiten.KeyEnter)
	f.update()
	if f.world.quickLoads != 1 {
		t.Errorf("quick loads = %d, want 1", f.world.quickLoads)
	}
}

func TestQuitConfirmation(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyQ)
	f.update()

	f.press(ebiten.KeyY)
	f.update()
	if f.menu.QuitRequested() {
		t.Fatal("quit requested on key down")
	}
	if len(f.scripts.handled) != 0 {
		t.Errorf("key down reached the script runner: %v", f.scripts.handled)
	}

	f.menu.HandleEvent(keyUp(ebiten.KeyY))
	f.update()
	if !f.menu.QuitRequested() {
		t.Fatal("quit not requested on key up")
	}

	// Further input is ignored once quitting
	f.press(ebiten.KeyEscape)
	if len(f.menu.events) != 0 {
		t.Error("event queued after quit was requested")
	}
}

func TestQuitConfirmationFromGamepad(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyQ)
	f.update()

	f.menu.HandleEvent(buttonDown(config.Input.ConfirmButton))
	f.update()
	if !f.menu.QuitRequested() {
		t.Error("quit not requested by confirm button")
	}
}

func TestOtherKeysReachQuitDialog(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyQ)
	f.update()

	f.press(ebiten.KeyN)
	f.update()
	if len(f.scripts.handled) != 1 {
		t.Fatalf("script runner got %d events, want 1", len(f.scripts.handled))
	}

	f.scripts.finish(scripting.RanToCompletion, 0)
	if got := f.update(); got != MenuFinished {
		t.Errorf("UpdateAndRender() = %v, want MenuFinished", got)
	}
	if f.menu.QuitRequested() {
		t.Error("quit requested after declining")
	}
}

func TestScriptedMenuFinishes(t *testing.T) {
	tests := []struct {
		name string
		key  ebiten.Key
		want UpdateResult
	}{
		{name: "pause", key: ebiten.KeyP, want: MenuFinished},
		{name: "help", key: ebiten.KeyH, want: MenuFinishedNeedsFadeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMenuFixture()
			f.press(tt.key)
			f.update()

			f.scripts.finish(scripting.RanToCompletion, 0)
			if got := f.update(); got != tt.want {
				t.Errorf("UpdateAndRender() = %v, want %v", got, tt.want)
			}
			if f.menu.IsActive() {
				t.Error("menu still active")
			}
		})
	}
}

func TestSaveGameToSlot(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyF2)
	f.update()
	if f.scripts.cleared != 1 {
		t.Errorf("canvas cleared %d times, want 1", f.scripts.cleared)
	}

	f.scripts.page, f.scripts.hasPage = 3, true
	f.press(ebiten.KeyEnter)
	f.typeText("boss")
	f.press(ebiten.KeyBackspace, ebiten.KeyEnter)

	if got := f.update(); got != MenuFinishedNeedsFadeout {
		t.Fatalf("UpdateAndRender() = %v, want MenuFinishedNeedsFadeout", got)
	}

	slot, err := f.profile.SaveSlot(3)
	if err != nil {
		t.Fatal(err)
	}
	if slot == nil {
		t.Fatal("slot 3 is empty")
	}
	want := systems.SavedGame{SessionID: testSession, Name: "bos", Weapon: components.WeaponLaser, Ammo: 20, Score: 4200}
	if *slot != want {
		t.Errorf("slot 3 = %+v, want %+v", *slot, want)
	}
	if f.profile.saves != 1 {
		t.Errorf("profile saved %d times, want 1", f.profile.saves)
	}
}

func TestSaveGameFromTopLevelClosesEverything(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyEscape)
	f.update()
	f.press(ebiten.KeyEnter)
	f.update()

	f.scripts.page, f.scripts.hasPage = 0, true
	f.press(ebiten.KeyEnter)
	f.typeText("x")
	f.press(ebiten.KeyEnter)
	if got := f.update(); got != MenuFinishedNeedsFadeout {
		t.Errorf("UpdateAndRender() = %v, want MenuFinishedNeedsFadeout", got)
	}
	if f.menu.topLevel != nil {
		t.Error("top level menu still set")
	}
}

func TestSaveNamePrefilledFromGamepad(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyF2)
	f.update()

	f.scripts.page, f.scripts.hasPage = 1, true
	f.menu.HandleEvent(buttonDown(config.Input.ConfirmButton))
	f.update()

	entry, ok := f.menu.top().(*SavedGameNameEntry)
	if !ok {
		t.Fatalf("top state = %T, want *SavedGameNameEntry", f.menu.top())
	}
	if entry.SlotIndex != 1 {
		t.Errorf("SlotIndex = %d, want 1", entry.SlotIndex)
	}
	if got := entry.Text(); got != "Ep 1, Lv 2, Medium" {
		t.Errorf("Text() = %q, want session name", got)
	}
}

func TestSaveNameEntryCancel(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyF2)
	f.update()

	f.scripts.page, f.scripts.hasPage = 2, true
	f.press(ebiten.KeyEnter, ebiten.KeyEscape)
	if got := f.update(); got != MenuStillActive {
		t.Fatalf("UpdateAndRender() = %v, want MenuStillActive", got)
	}
	if _, ok := f.menu.top().(*ScriptedMenu); !ok {
		t.Errorf("top state = %T, want slot list", f.menu.top())
	}
	if slot, _ := f.profile.SaveSlot(2); slot != nil {
		t.Error("slot 2 written after cancel")
	}
}

func TestSaveGameAborted(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyF2)
	f.update()

	f.scripts.finish(scripting.AbortedByUser, 0)
	if got := f.update(); got != MenuFinishedNeedsFadeout {
		t.Errorf("UpdateAndRender() = %v, want MenuFinishedNeedsFadeout", got)
	}
}

func TestRestoreGame(t *testing.T) {
	registered := config.SessionID{Episode: 2, Level: 0, Difficulty: config.Hard}

	tests := []struct {
		name       string
		shareware  bool
		slot       *systems.SavedGame
		wantScript string
	}{
		{name: "empty slot", wantScript: "No_Game_Restore"},
		{
			name:       "registered episode in shareware",
			shareware:  true,
			slot:       &systems.SavedGame{SessionID: registered, Name: "later"},
			wantScript: "No_Can_Order",
		},
		{
			name: "registered episode in full version",
			slot: &systems.SavedGame{SessionID: registered, Name: "later"},
		},
		{
			name:      "first episode in shareware",
			shareware: true,
			slot:      &systems.SavedGame{SessionID: testSession, Name: "early"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMenuFixture()
			f.ctx.Shareware = tt.shareware
			if tt.slot != nil {
				if err := f.profile.StoreSaveSlot(2, *tt.slot); err != nil {
					t.Fatal(err)
				}
			}

			f.press(ebiten.KeyF3)
			f.update()
			f.scripts.finish(scripting.MenuItemSelected, 2)
			f.update()

			if tt.wantScript == "" {
				got := f.menu.RequestedGameToLoad()
				if got == nil {
					t.Fatal("no game requested")
				}
				if *got != *tt.slot {
					t.Errorf("RequestedGameToLoad() = %+v, want %+v", *got, *tt.slot)
				}
				return
			}

			if f.menu.RequestedGameToLoad() != nil {
				t.Error("game requested despite error")
			}
			if got := f.scripts.last(); got != tt.wantScript {
				t.Errorf("script = %q, want %q", got, tt.wantScript)
			}
			if len(f.menu.stack) != 2 {
				t.Errorf("stack depth = %d, want 2", len(f.menu.stack))
			}
			if f.scripts.cleared != 1 {
				t.Errorf("canvas cleared %d times, want 1", f.scripts.cleared)
			}

			// Dismissing the message returns to the slot list
			f.scripts.finish(scripting.RanToCompletion, 0)
			f.update()
			if got := f.scripts.last(); got != "Restore_Game" {
				t.Errorf("script = %q, want Restore_Game", got)
			}
			if len(f.menu.stack) != 1 {
				t.Errorf("stack depth = %d, want 1", len(f.menu.stack))
			}
		})
	}
}

func TestRestoreGameAborted(t *testing.T) {
	f := newMenuFixture()
	f.press(ebiten.KeyF3)
	f.update()

	f.scripts.finish(scripting.AbortedByUser, 0)
	if got := f.update(); got != MenuFinishedNeedsFadeout {
		t.Errorf("UpdateAndRender() = %v, want MenuFinishedNeedsFadeout", got)
	}
}

func TestCheatCodes(t *testing.T) {
	tests := []struct {
		name        string
		shareware   bool
		keys        []ebiten.Key
		wantScript  string
		wantHealth  int
		wantItems   int
		transparent bool
	}{
		{
			name:        "praying in shareware",
			shareware:   true,
			keys:        []ebiten.Key{ebiten.KeyG, ebiten.KeyO, ebiten.KeyD},
			wantScript:  "The_Prey",
			transparent: true,
		},
		{
			name: "praying in registered",
			keys: []ebiten.Key{ebiten.KeyG, ebiten.KeyO, ebiten.KeyD},
		},
		{
			name:        "full health",
			keys:        []ebiten.Key{ebiten.KeyE, ebiten.KeyA, ebiten.KeyT},
			wantScript:  "Full_Health",
			wantHealth:  1,
			transparent: true,
		},
		{
			name:      "full health in shareware",
			shareware: true,
			keys:      []ebiten.Key{ebiten.KeyE, ebiten.KeyA, ebiten.KeyT},
		},
		{
			name:       "give items",
			keys:       []ebiten.Key{ebiten.KeyN, ebiten.KeyU, ebiten.KeyK},
			wantScript: "Now_Ch",
			wantItems:  1,
		},
		{
			name: "partial code",
			keys: []ebiten.Key{ebiten.KeyN, ebiten.KeyU},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMenuFixture()
			f.ctx.Shareware = tt.shareware

			held := components.KeySnapshot{}
			for _, k := range tt.keys {
				held[k] = true
			}
			f.menu.UpdateAndRender(time.Millisecond, held)

			if got := f.scripts.last(); got != tt.wantScript {
				t.Errorf("script = %q, want %q", got, tt.wantScript)
			}
			if f.world.healthCheats != tt.wantHealth {
				t.Errorf("health cheats = %d, want %d", f.world.healthCheats, tt.wantHealth)
			}
			if f.world.itemCheats != tt.wantItems {
				t.Errorf("item cheats = %d, want %d", f.world.itemCheats, tt.wantItems)
			}
			if tt.wantScript != "" && f.menu.IsTransparent() != tt.transparent {
				t.Errorf("IsTransparent() = %v, want %v", f.menu.IsTransparent(), tt.transparent)
			}
		})
	}
}

func TestCheatFiresOncePerPress(t *testing.T) {
	f := newMenuFixture()
	held := components.KeySnapshot{ebiten.KeyE: true, ebiten.KeyA: true, ebiten.KeyT: true}

	f.menu.UpdateAndRender(time.Millisecond, held)
	f.scripts.finish(scripting.RanToCompletion, 0)
	if got := f.menu.UpdateAndRender(time.Millisecond, held); got != MenuFinished {
		t.Fatalf("UpdateAndRender() = %v, want MenuFinished", got)
	}

	// Still held, must not fire again
	f.menu.UpdateAndRender(time.Millisecond, held)
	if f.world.healthCheats != 1 {
		t.Fatalf("health cheats = %d, want 1", f.world.healthCheats)
	}

	f.menu.UpdateAndRender(time.Millisecond, components.KeySnapshot{})
	f.menu.UpdateAndRender(time.Millisecond, held)
	if f.world.healthCheats != 2 {
		t.Errorf("health cheats = %d, want 2 after pressing again", f.world.healthCheats)
	}
}
