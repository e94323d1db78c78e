package systems

import (
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePhysics applies base gravity and clamps the fall speed.
func UpdatePhysics(w donburi.World) {
	dt := DeltaTime(w)
	components.Physics.Each(w, func(e *donburi.Entry) {
		// Dead players stay frozen until respawn
		if e.HasComponent(components.Player) && !components.Player.Get(e).Alive {
			return
		}

		physics := components.Physics.Get(e)
		physics.SpeedY += physics.Gravity * dt
		if physics.MaxFallSpeed > 0 && physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, cfg.Player.MoveSpeed)
	})
}
