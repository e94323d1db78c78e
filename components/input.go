package components

import (
	cfg "github.com/automoto/iwanna/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
// Used for session input (pause, restart, menu navigation).
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData is the per-tick input contract the player reads: a
// horizontal axis in [-1, 1], the jump button level and its press edge.
type PlayerInputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Axis     float64 // raw analog stick value, -1..1

	Horizontal  float64
	JumpHeld    bool
	JumpPressed bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
