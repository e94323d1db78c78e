// Package input polls the keyboard and gamepads into the action frame the
// simulation consumes.
package input

import (
	cfg "github.com/automoto/iwanna/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons bound to one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its keys and buttons.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace, ebiten.KeyShiftLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionSuicide: {
		Keys:                   []ebiten.Key{ebiten.KeyQ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionMenuUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionMenuDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionMenuSelect: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeyZ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll reads the bound keys and buttons and the left stick's horizontal axis.
func Poll() ([cfg.ActionCount]bool, float64) {
	var pressed [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	axis, vertical := analogStick(gamepadIDs)
	deadzone := cfg.Input.AnalogDeadzone
	if vertical < -deadzone {
		pressed[cfg.ActionMenuUp] = true
	}
	if vertical > deadzone {
		pressed[cfg.ActionMenuDown] = true
	}
	return pressed, axis
}

// analogStick returns the left stick of the first gamepad pushed past the
// deadzone.
func analogStick(gamepads []ebiten.GamepadID) (horizontal, vertical float64) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone || h > deadzone || v < -deadzone || v > deadzone {
			return h, v
		}
	}
	return 0, 0
}
