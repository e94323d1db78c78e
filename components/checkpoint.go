package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CheckpointManagerData is the single respawn authority of a world.
type CheckpointManagerData struct {
	Current      math.Vec2
	Default      math.Vec2
	DeathCount   int
	RespawnDelay float64 // seconds
}

var CheckpointManager = donburi.NewComponentType[CheckpointManagerData]()
