package ui

import (
	"testing"

	"github.com/automoto/dukeengine/components"
	"github.com/automoto/dukeengine/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestAdjustVolumeStep(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		direction int
		want      float64
	}{
		{"increase from middle", 0.5, 1, 0.75},
		{"decrease from middle", 0.5, -1, 0.25},
		{"clamp at top", 1.0, 1, 1.0},
		{"clamp at bottom", 0, -1, 0},
		{"snap off-step value", 0.6, 1, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adjustVolumeStep(tt.current, tt.direction); got != tt.want {
				t.Errorf("adjustVolumeStep(%v, %d) = %v, want %v", tt.current, tt.direction, got, tt.want)
			}
		})
	}
}

func TestFormatVolumeBar(t *testing.T) {
	if got, want := formatVolumeBar(0.5), "[|||||.....] 50%"; got != want {
		t.Errorf("formatVolumeBar(0.5) = %q, want %q", got, want)
	}
}

func TestOptionsMenuEditsOptions(t *testing.T) {
	options := config.DefaultOptions()
	options.MusicVolume = 0.5
	menu := NewOptionsMenu(&options)
	var sounds soundLog

	menu.HandleEvent(keyDown(ebiten.KeyRight), sounds.PlaySound)
	if options.MusicVolume != 0.75 {
		t.Errorf("MusicVolume = %v, want 0.75", options.MusicVolume)
	}

	// Up from the first row wraps to Back
	menu.HandleEvent(keyDown(ebiten.KeyUp), sounds.PlaySound)
	menu.HandleEvent(keyDown(ebiten.KeyUp), sounds.PlaySound)
	if menu.selected != optQuickSaving {
		t.Fatalf("selected = %d, want quick saving row", menu.selected)
	}
	menu.HandleEvent(keyDown(ebiten.KeyEnter), sounds.PlaySound)
	if !options.QuickSavingEnabled {
		t.Error("quick saving not toggled")
	}
	if menu.IsFinished() {
		t.Error("menu finished after toggling")
	}

	menu.HandleEvent(keyDown(ebiten.KeyDown), sounds.PlaySound)
	menu.HandleEvent(keyDown(ebiten.KeyEnter), sounds.PlaySound)
	if !menu.IsFinished() {
		t.Error("selecting Back should finish the menu")
	}

	want := []config.SoundID{
		config.SoundMenuToggle,
		config.SoundMenuSelect,
		config.SoundMenuSelect,
		config.SoundMenuToggle,
		config.SoundMenuSelect,
	}
	if len(sounds) != len(want) {
		t.Fatalf("sounds = %v, want %v", sounds, want)
	}
	for i := range want {
		if sounds[i] != want[i] {
			t.Errorf("sound %d = %v, want %v", i, sounds[i], want[i])
		}
	}
}

func TestOptionsMenuToggles(t *testing.T) {
	tests := []struct {
		name  string
		row   optionID
		check func(o *config.GameOptions) bool
	}{
		{"music", optMusicOn, func(o *config.GameOptions) bool { return !o.MusicOn }},
		{"sound", optSoundOn, func(o *config.GameOptions) bool { return !o.SoundOn }},
		{"fullscreen", optFullscreen, func(o *config.GameOptions) bool { return o.WindowMode == config.WindowModeFullscreen }},
		{"vsync", optVsync, func(o *config.GameOptions) bool { return !o.EnableVsync }},
		{"fps counter", optFpsCounter, func(o *config.GameOptions) bool { return o.ShowFpsCounter }},
		{"widescreen", optWidescreen, func(o *config.GameOptions) bool { return o.WidescreenModeOn }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := config.DefaultOptions()
			menu := NewOptionsMenu(&options)
			menu.selected = tt.row
			menu.HandleEvent(keyDown(ebiten.KeyLeft), func(config.SoundID) {})
			if !tt.check(&options) {
				t.Errorf("option not toggled: %+v", options)
			}
		})
	}
}

func TestOptionsMenuBack(t *testing.T) {
	options := config.DefaultOptions()
	menu := NewOptionsMenu(&options)
	menu.HandleEvent(buttonDown(ebiten.StandardGamepadButtonRightRight), func(config.SoundID) {})
	if !menu.IsFinished() {
		t.Error("cancel button should finish the menu")
	}
}

func TestOptionsMenuFallbackRendering(t *testing.T) {
	options := config.DefaultOptions()
	menu := NewOptionsMenu(&options)
	r := &textRenderer{}
	menu.UpdateAndRender(r, 0)

	if len(r.texts) != 1+2*int(optCount) {
		t.Fatalf("drew %d texts, want %d", len(r.texts), 1+2*int(optCount))
	}
	if r.texts[1] != "> Music Volume" {
		t.Errorf("first row = %q, want selected Music Volume", r.texts[1])
	}
}

func TestSavedGameNameEntry(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		events  []components.InputEvent
		want    string
	}{
		{
			name:    "typing",
			initial: "",
			events:  textEvents("Level 3"),
			want:    "Level 3",
		},
		{
			name:    "backspace",
			initial: "abc",
			events:  []components.InputEvent{keyDown(ebiten.KeyBackspace), keyDown(ebiten.KeyBackspace)},
			want:    "a",
		},
		{
			name:    "backspace on empty name",
			initial: "",
			events:  []components.InputEvent{keyDown(ebiten.KeyBackspace)},
			want:    "",
		},
		{
			name:    "length limit",
			initial: "",
			events:  textEvents("a name that is far too long"),
			want:    "a name that is far",
		},
		{
			name:    "initial name is limited too",
			initial: "0123456789abcdefghij",
			want:    "0123456789abcdefgh",
		},
		{
			name:    "control characters ignored",
			initial: "ok",
			events:  textEvents("\t\x00!"),
			want:    "ok!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := NewSavedGameNameEntry(0, tt.initial)
			for _, ev := range tt.events {
				entry.HandleEvent(ev)
			}
			if got := entry.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func textEvents(s string) []components.InputEvent {
	var events []components.InputEvent
	for _, r := range s {
		events = append(events, components.InputEvent{Kind: components.TextInput, Text: r})
	}
	return events
}
