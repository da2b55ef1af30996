package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionFire
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// MenuHotkey identifies the in-game menu opened by a key while playing
type MenuHotkey int

const (
	HotkeyNone MenuHotkey = iota
	HotkeyConfirmQuit
	HotkeyTopLevel
	HotkeyOptions
	HotkeySaveGame
	HotkeyLoadGame
	HotkeyHelp
	HotkeyPause
)

// CheatCode is a set of keys that have to be held at the same time
type CheatCode struct {
	Keys           []ebiten.Key
	RegisteredOnly bool // only in the registered version
	SharewareOnly  bool
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64

	MenuHotkeys       map[ebiten.Key]MenuHotkey
	MenuHotkeyButtons map[ebiten.StandardGamepadButton]MenuHotkey
	ConfirmButton     ebiten.StandardGamepadButton
	CancelButton      ebiten.StandardGamepadButton
	QuitConfirmKey    ebiten.Key

	CheatPrayingWontHelp CheatCode
	CheatFullHealth      CheatCode
	CheatGiveItems       CheatCode
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionMoveUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMoveDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyControlRight},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionFire: {
				Keys: []ebiten.Key{ebiten.KeyAltLeft, ebiten.KeyAltRight},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			ActionMenuUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMenuDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionMenuSelect: {
				Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionMenuBack: {
				Keys:                   []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
		},

		MenuHotkeys: map[ebiten.Key]MenuHotkey{
			ebiten.KeyQ:      HotkeyConfirmQuit,
			ebiten.KeyEscape: HotkeyTopLevel,
			ebiten.KeyF1:     HotkeyOptions,
			ebiten.KeyF2:     HotkeySaveGame,
			ebiten.KeyF3:     HotkeyLoadGame,
			ebiten.KeyH:      HotkeyHelp,
			ebiten.KeyP:      HotkeyPause,
		},
		MenuHotkeyButtons: map[ebiten.StandardGamepadButton]MenuHotkey{
			// Start / Options button
			ebiten.StandardGamepadButtonCenterRight: HotkeyTopLevel,
		},
		ConfirmButton:  ebiten.StandardGamepadButtonRightBottom,
		CancelButton:   ebiten.StandardGamepadButtonRightRight,
		QuitConfirmKey: ebiten.KeyY,

		CheatPrayingWontHelp: CheatCode{
			Keys:          []ebiten.Key{ebiten.KeyG, ebiten.KeyO, ebiten.KeyD},
			SharewareOnly: true,
		},
		CheatFullHealth: CheatCode{
			Keys:           []ebiten.Key{ebiten.KeyE, ebiten.KeyA, ebiten.KeyT},
			RegisteredOnly: true,
		},
		CheatGiveItems: CheatCode{
			Keys:           []ebiten.Key{ebiten.KeyN, ebiten.KeyU, ebiten.KeyK},
			RegisteredOnly: true,
		},
	}
}
