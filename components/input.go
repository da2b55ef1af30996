package components

import (
	cfg "github.com/automoto/dukeengine/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	// Raw events since the last logic tick, in arrival order
	Events []InputEvent
	Keys   KeySnapshot
}

func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()

type InputEventKind int

const (
	KeyDown InputEventKind = iota
	KeyUp
	ButtonDown
	ButtonUp
	TextInput
)

// InputEvent is one discrete key, button or text event.
type InputEvent struct {
	Kind   InputEventKind
	Key    ebiten.Key
	Button ebiten.StandardGamepadButton
	Text   rune
}

func (e InputEvent) IsKeyDown(k ebiten.Key) bool {
	return e.Kind == KeyDown && e.Key == k
}

func (e InputEvent) IsButtonDown(b ebiten.StandardGamepadButton) bool {
	return e.Kind == ButtonDown && e.Button == b
}

// KeySnapshot is the set of keys held down at one point in time.
type KeySnapshot map[ebiten.Key]bool

// AllPressed reports whether every key in keys is held.
func (s KeySnapshot) AllPressed(keys []ebiten.Key) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !s[k] {
			return false
		}
	}
	return true
}

// Matches reports whether e is a key or button press bound in b.
func (e InputEvent) Matches(b cfg.InputBinding) bool {
	switch e.Kind {
	case KeyDown:
		for _, k := range b.Keys {
			if k == e.Key {
				return true
			}
		}
	case ButtonDown:
		for _, btn := range b.StandardGamepadButtons {
			if btn == e.Button {
				return true
			}
		}
	}
	return false
}

// IsAction reports whether e presses a key or button bound to action.
func (e InputEvent) IsAction(action cfg.ActionID) bool {
	return e.Matches(cfg.Input.Bindings[action])
}
