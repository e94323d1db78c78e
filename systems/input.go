package systems

import (
	stdmath "math"

	"github.com/automoto/iwanna/archetypes"
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/tags"
	"github.com/yohamta/donburi"
)

// FeedInput stores this tick's pressed actions and analog axis. The client
// calls it once per tick before Tick; tests call it to script input.
func FeedInput(w donburi.World, pressed [cfg.ActionCount]bool, axis float64) {
	input := GetOrCreateInput(w)

	// Swap buffers: current becomes previous, then take the new frame
	input.Previous = input.Current
	input.Current = pressed

	components.PlayerInput.Each(w, func(e *donburi.Entry) {
		pi := components.PlayerInput.Get(e)
		pi.Previous = pi.Current
		pi.Current = pressed
		pi.Axis = axis
	})
}

// UpdatePlayerInput turns raw action states into the player's input contract
// and handles the quick-suicide action.
func UpdatePlayerInput(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)

		input.Horizontal = horizontalAxis(input)
		input.JumpHeld = GetPlayerAction(input, cfg.ActionJump).Pressed
		input.JumpPressed = GetPlayerAction(input, cfg.ActionJump).JustPressed

		if GetPlayerAction(input, cfg.ActionSuicide).JustPressed {
			Die(w, e, CauseSuicide)
		}
	})
}

func horizontalAxis(input *components.PlayerInputData) float64 {
	if stdmath.Abs(input.Axis) > cfg.Input.AnalogDeadzone {
		return stdmath.Max(-1, stdmath.Min(1, input.Axis))
	}

	axis := 0.0
	if input.Current[cfg.ActionMoveLeft] {
		axis--
	}
	if input.Current[cfg.ActionMoveRight] {
		axis++
	}
	return axis
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(w donburi.World) *components.InputData {
	if _, ok := components.Input.First(w); !ok {
		GetOrCreateSession(w)
	}
	entry, _ := components.Input.First(w)
	return components.Input.Get(entry)
}

// GetOrCreateSession returns the entry holding the pause, input and HUD
// singletons, creating it if needed.
func GetOrCreateSession(w donburi.World) *donburi.Entry {
	if entry, ok := components.Pause.First(w); ok {
		return entry
	}
	entry := archetypes.Session.Spawn(w)
	components.Pause.SetValue(entry, components.PauseData{SelectedOption: components.MenuResume})
	components.HUD.SetValue(entry, components.HUDData{DeathText: deathText(0)})
	return entry
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GetPlayerAction returns the full ActionState for an action ID from PlayerInputData.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
