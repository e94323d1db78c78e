package systems

import (
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/logger"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CheckpointManager returns the world's checkpoint manager.
func CheckpointManager(w donburi.World) (*components.CheckpointManagerData, bool) {
	ent, ok := components.CheckpointManager.First(w)
	if !ok {
		return nil, false
	}
	return components.CheckpointManager.Get(ent), true
}

// SetCheckpoint overwrites the active checkpoint. The last call wins; there
// is no ordering or distance rule.
func SetCheckpoint(w donburi.World, pos math.Vec2) {
	mgr, ok := CheckpointManager(w)
	if !ok {
		logger.Log.Warn("SetCheckpoint: no checkpoint manager in world")
		return
	}
	mgr.Current = pos

	logger.Log.WithFields(logrus.Fields{"x": pos.X, "y": pos.Y}).Info("checkpoint set")
	components.CheckpointSet.Publish(w, components.CheckpointSetEvent{Position: pos})
}

// GetCheckpoint returns the active checkpoint, or the configured default
// spawn when the world has no manager.
func GetCheckpoint(w donburi.World) math.Vec2 {
	if mgr, ok := CheckpointManager(w); ok {
		return mgr.Current
	}
	return math.Vec2{X: cfg.Game.DefaultSpawnX, Y: cfg.Game.DefaultSpawnY}
}

// ResetCheckpoint returns the active checkpoint to the level default.
func ResetCheckpoint(w donburi.World) {
	if mgr, ok := CheckpointManager(w); ok {
		mgr.Current = mgr.Default
	}
}

// DeathCount returns the number of deaths since the level was loaded or restarted.
func DeathCount(w donburi.World) int {
	if mgr, ok := CheckpointManager(w); ok {
		return mgr.DeathCount
	}
	return 0
}

func setDeathCount(w donburi.World, n int) {
	mgr, ok := CheckpointManager(w)
	if !ok {
		return
	}
	mgr.DeathCount = n
	components.DeathCountChanged.Publish(w, components.DeathCountChangedEvent{Count: n})
}
