package factory

import (
	"github.com/automoto/iwanna/archetypes"
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCheckpointManager creates the world's checkpoint manager with spawn
// as both the default and the active checkpoint.
func CreateCheckpointManager(w donburi.World, spawn math.Vec2) *donburi.Entry {
	mgr := archetypes.CheckpointManager.Spawn(w)
	components.CheckpointManager.SetValue(mgr, components.CheckpointManagerData{
		Current:      spawn,
		Default:      spawn,
		RespawnDelay: cfg.Game.RespawnDelay,
	})
	return mgr
}
