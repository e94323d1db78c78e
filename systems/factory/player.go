package factory

import (
	"github.com/automoto/iwanna/archetypes"
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer creates the player, alive and facing right, at (x, y).
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.DirectionRight,
		Alive:  true,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})

	addToSpace(w, obj)
	return player
}
