package systems

import (
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Causes of death reported in PlayerDied events
const (
	CauseHazard  = "hazard"
	CauseSuicide = "suicide"
	CauseFall    = "fall"
)

// Die kills the player if it is alive: movement freezes, PlayerDied is
// published and the checkpoint manager is told about the death. Calls while
// the player is already dead do nothing and return false.
func Die(w donburi.World, e *donburi.Entry, cause string) bool {
	player := components.Player.Get(e)
	if !player.Alive {
		return false
	}
	player.Alive = false

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0

	obj := components.Object.Get(e)
	pos := math.Vec2{X: obj.X, Y: obj.Y}
	logger.Log.WithFields(logrus.Fields{"cause": cause, "x": pos.X, "y": pos.Y}).Info("player died")
	components.PlayerDied.Publish(w, components.PlayerDiedEvent{
		Player:   e.Entity(),
		Position: pos,
		Cause:    cause,
	})

	OnPlayerDeath(w, e)
	return true
}

// OnPlayerDeath counts the death and schedules the respawn.
func OnPlayerDeath(w donburi.World, e *donburi.Entry) {
	delay := cfg.Game.RespawnDelay
	if mgr, ok := CheckpointManager(w); ok {
		delay = mgr.RespawnDelay
		setDeathCount(w, mgr.DeathCount+1)
	}

	player := e.Entity()
	Schedule(w, delay, TagRespawn, func(w donburi.World) {
		if !w.Valid(player) {
			return
		}
		RespawnPlayer(w, w.Entry(player))
	})
}

// RespawnPlayer puts the player back at the active checkpoint with zero
// velocity.
func RespawnPlayer(w donburi.World, e *donburi.Entry) {
	pos := GetCheckpoint(w)
	resetPlayerAtPosition(e, pos.X, pos.Y)

	logger.Log.WithFields(logrus.Fields{"x": pos.X, "y": pos.Y}).Debug("player respawned")
	components.PlayerRespawned.Publish(w, components.PlayerRespawnedEvent{
		Player:   e.Entity(),
		Position: pos,
	})
}

// UpdateFallDeath kills a player who fell below the level.
func UpdateFallDeath(w donburi.World) {
	lvl, ok := CurrentLevel(w)
	if !ok {
		return
	}
	limit := float64(lvl.PixelHeight())
	tags.Player.Each(w, func(e *donburi.Entry) {
		if obj := components.Object.Get(e); obj.Y > limit {
			Die(w, e, CauseFall)
		}
	})
}

func resetPlayerAtPosition(e *donburi.Entry, spawnX, spawnY float64) {
	obj := components.Object.Get(e)
	obj.X = spawnX
	obj.Y = spawnY
	obj.Update()

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnWall = nil

	player := components.Player.Get(e)
	player.Alive = true
	player.TouchingWall = false
	settleGrounded(e)

	if e.HasComponent(components.PlayerInput) {
		input := components.PlayerInput.Get(e)
		input.JumpPressed = false
	}
}

// settleGrounded seeds the ground state from the player's current position
// so placing a player on the floor is not reported as a landing.
func settleGrounded(e *donburi.Entry) {
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	physics.OnGround = probeSolid(obj.Object, 0, 1)

	player := components.Player.Get(e)
	player.Grounded = physics.OnGround != nil
	player.WasGrounded = player.Grounded
}
