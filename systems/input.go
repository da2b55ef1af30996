package systems

import (
	"github.com/automoto/dukeengine/components"
	cfg "github.com/automoto/dukeengine/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// Reusable slices to avoid allocations every frame
var (
	gamepadIDs   []ebiten.GamepadID
	keyBuffer    []ebiten.Key
	buttonBuffer []ebiten.StandardGamepadButton
	charBuffer   []rune
)

// GetInput returns the input singleton, creating it if needed.
func GetInput(world donburi.World) *components.InputData {
	if _, ok := components.Input.First(world); !ok {
		entry := world.Entry(world.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{Keys: components.KeySnapshot{}})
	}
	entry, _ := components.Input.First(world)
	return components.Input.Get(entry)
}

// PollInput records the current device state into input. It runs once per
// rendered frame. Events accumulate until FinishInputTick, so none are lost
// between the slower logic ticks.
func PollInput(input *components.InputData) {
	input.Current = [cfg.ActionCount]bool{}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	left, right, up, down := analogStickState(gamepadIDs)
	if left || right || up || down {
		gamepadUsed = true
	}
	input.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft] || left
	input.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight] || right
	input.Current[cfg.ActionMoveUp] = input.Current[cfg.ActionMoveUp] || up
	input.Current[cfg.ActionMoveDown] = input.Current[cfg.ActionMoveDown] || down

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	keyBuffer = inpututil.AppendJustPressedKeys(keyBuffer[:0])
	for _, k := range keyBuffer {
		input.Events = append(input.Events, components.InputEvent{Kind: components.KeyDown, Key: k})
	}
	keyBuffer = inpututil.AppendJustReleasedKeys(keyBuffer[:0])
	for _, k := range keyBuffer {
		input.Events = append(input.Events, components.InputEvent{Kind: components.KeyUp, Key: k})
	}
	for _, gpID := range gamepadIDs {
		buttonBuffer = inpututil.AppendJustPressedStandardGamepadButtons(gpID, buttonBuffer[:0])
		for _, b := range buttonBuffer {
			input.Events = append(input.Events, components.InputEvent{Kind: components.ButtonDown, Button: b})
		}
		buttonBuffer = inpututil.AppendJustReleasedStandardGamepadButtons(gpID, buttonBuffer[:0])
		for _, b := range buttonBuffer {
			input.Events = append(input.Events, components.InputEvent{Kind: components.ButtonUp, Button: b})
		}
	}
	charBuffer = ebiten.AppendInputChars(charBuffer[:0])
	for _, r := range charBuffer {
		input.Events = append(input.Events, components.InputEvent{Kind: components.TextInput, Text: r})
	}

	if input.Keys == nil {
		input.Keys = components.KeySnapshot{}
	}
	clear(input.Keys)
	keyBuffer = inpututil.AppendPressedKeys(keyBuffer[:0])
	for _, k := range keyBuffer {
		input.Keys[k] = true
	}
}

// FinishInputTick is called after a logic tick consumed the input.
func FinishInputTick(input *components.InputData) {
	input.Previous = input.Current
	input.Events = input.Events[:0]
}

// analogStickState reads the left stick of all standard layout gamepads.
func analogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return left, right, up, down
}
