package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SavePointState is the visual/activation state of a save point
type SavePointState int

const (
	SavePointInactive SavePointState = iota
	SavePointArmedUnused
	SavePointArmedUsed
)

func (s SavePointState) String() string {
	switch s {
	case SavePointInactive:
		return "Inactive"
	case SavePointArmedUnused:
		return "ArmedUnused"
	case SavePointArmedUsed:
		return "ArmedUsed"
	}
	return "Unknown"
}

type SavePointData struct {
	Active        bool
	OneTimeUse    bool
	Used          bool
	PlayerInRange bool
	Position      math.Vec2 // respawn position written to the checkpoint
	PlacedActive  bool      // Active as authored, restored on level restart

	// Visuals
	Pulse      *gween.Tween
	PulseValue float32 // 0..1 triangle wave, restarted every cycle
	Flash      *gween.Tween
	FlashValue float32 // 1 right after activation, fades to 0
}

// State derives the activation state from the flags.
func (s *SavePointData) State() SavePointState {
	switch {
	case !s.Active:
		return SavePointInactive
	case s.Used:
		return SavePointArmedUsed
	default:
		return SavePointArmedUnused
	}
}

// CanActivate reports whether entering the trigger would activate it.
func (s *SavePointData) CanActivate() bool {
	return s.Active && (!s.OneTimeUse || !s.Used)
}

var SavePoint = donburi.NewComponentType[SavePointData]()
