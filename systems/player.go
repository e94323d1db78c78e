package systems

import (
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer runs the player state machine: landing edge, horizontal
// movement, jump and the extra jump-feel gravity. Dead players are skipped
// until they respawn.
func UpdatePlayer(w donburi.World) {
	dt := DeltaTime(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		updateSinglePlayer(w, e, dt)
	})
}

func updateSinglePlayer(w donburi.World, e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)
	if !player.Alive {
		return
	}
	physics := components.Physics.Get(e)
	input := components.PlayerInput.Get(e)

	if player.Grounded && !player.WasGrounded {
		components.PlayerLanded.Publish(w, components.PlayerLandedEvent{Player: e.Entity()})
	}
	player.WasGrounded = player.Grounded

	handleMovementInput(input, player, physics)
	handleJumpInput(w, e, input, player, physics)
	applyJumpFeel(input, physics, dt)
}

func handleMovementInput(input *components.PlayerInputData, player *components.PlayerData, physics *components.PhysicsData) {
	physics.SpeedX = input.Horizontal * cfg.Player.MoveSpeed

	if input.Horizontal > 0 {
		player.Facing = cfg.DirectionRight
	} else if input.Horizontal < 0 {
		player.Facing = cfg.DirectionLeft
	}
}

func handleJumpInput(w donburi.World, e *donburi.Entry, input *components.PlayerInputData, player *components.PlayerData, physics *components.PhysicsData) {
	if !input.JumpPressed || !player.Grounded {
		return
	}
	physics.SpeedY = -cfg.Player.JumpSpeed
	player.Grounded = false
	player.WasGrounded = false
	components.PlayerJumped.Publish(w, components.PlayerJumpedEvent{Player: e.Entity()})
}

// applyJumpFeel adds gravity on top of the base gravity applied by
// UpdatePhysics: more while falling, and more while rising with the jump
// button released, which cuts the jump short.
func applyJumpFeel(input *components.PlayerInputData, physics *components.PhysicsData, dt float64) {
	g := physics.Gravity
	switch {
	case physics.SpeedY > 0:
		physics.SpeedY += g * (cfg.Player.FallMultiplier - 1) * dt
	case physics.SpeedY < 0 && !input.JumpHeld:
		physics.SpeedY += g * (cfg.Player.LowJumpMultiplier - 1) * dt
	}
}
