package systems

import (
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/shared/gamemath"
	"github.com/automoto/iwanna/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateCollisions moves living players through the collision space, updates
// their grounded and wall-contact state, then reports hazard contact and save
// point enter/exit.
func UpdateCollisions(w donburi.World) {
	dt := DeltaTime(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.Alive {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveObjectHorizontalCollision(physics, obj.Object, physics.SpeedX*dt)
		resolveObjectVerticalCollision(physics, obj.Object, physics.SpeedY*dt)
		obj.Update()

		player.Grounded = physics.OnGround != nil
		updateWallContact(player, physics, obj.Object)

		if checkHazards(w, e, obj.Object) {
			return
		}
		updateSavePointContacts(w, obj.Object)
	})
}

// resolveObjectHorizontalCollision moves the object by dx, stopping flush
// against the nearest solid in the way.
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(reach(dx), 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	solid := nearestSolid(object, check.ObjectsByTags(tags.ResolvSolid), dx, 0)
	if solid == nil {
		object.X += dx
		return
	}

	// Snap flush to the edge; an object already overlapping stays put.
	if dx > 0 {
		object.X = max(object.X, solid.X-object.W)
	} else {
		object.X = min(object.X, solid.X+solid.W)
	}
	physics.SpeedX = 0
}

// resolveObjectVerticalCollision moves the object by dy, landing on or
// bumping into the nearest solid, then probes one pixel down for ground.
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = nil

	if dy != 0 {
		var solid *resolv.Object
		if check := object.Check(0, reach(dy), tags.ResolvSolid); check != nil {
			solid = nearestSolid(object, check.ObjectsByTags(tags.ResolvSolid), 0, dy)
		}
		switch {
		case solid == nil:
			object.Y += dy
		case dy > 0:
			object.Y = max(object.Y, solid.Y-object.H)
			physics.SpeedY = 0
		default:
			object.Y = min(object.Y, solid.Y+solid.H)
			physics.SpeedY = 0
		}
	}

	if physics.SpeedY >= 0 {
		physics.OnGround = probeSolid(object, 0, 1)
	}
}

// updateWallContact records whether a solid is within reach in the facing
// direction.
func updateWallContact(player *components.PlayerData, physics *components.PhysicsData, object *resolv.Object) {
	facing := player.Facing
	if facing == 0 {
		facing = cfg.DirectionRight
	}
	physics.OnWall = probeSolid(object, facing*cfg.Player.WallCheckDistance, 0)
	player.TouchingWall = physics.OnWall != nil
}

// probeSolid returns a solid overlapping the object shifted by (dx, dy).
func probeSolid(object *resolv.Object, dx, dy float64) *resolv.Object {
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlapsShifted(object, solid, dx, dy) {
			return solid
		}
	}
	return nil
}

// nearestSolid returns the closest solid the object would overlap after
// moving by (dx, dy). Resolv reports everything sharing a cell, so each
// candidate is checked precisely.
func nearestSolid(object *resolv.Object, solids []*resolv.Object, dx, dy float64) *resolv.Object {
	var nearest *resolv.Object
	best := 0.0
	for _, solid := range solids {
		if !overlapsShifted(object, solid, dx, dy) {
			continue
		}

		var gap float64
		switch {
		case dx > 0:
			gap = solid.X - (object.X + object.W)
		case dx < 0:
			gap = object.X - (solid.X + solid.W)
		case dy > 0:
			gap = solid.Y - (object.Y + object.H)
		default:
			gap = object.Y - (solid.Y + solid.H)
		}
		if nearest == nil || gap < best {
			nearest, best = solid, gap
		}
	}
	return nearest
}

// reach extends a movement by one pixel so the cell query covers the far
// edge of the moved object.
func reach(d float64) float64 {
	switch {
	case d > 0:
		return d + 1
	case d < 0:
		return d - 1
	}
	return 0
}

func overlapsShifted(a, b *resolv.Object, dx, dy float64) bool {
	return gamemath.Overlaps(a.X+dx, a.Y+dy, a.W, a.H, b.X, b.Y, b.W, b.H)
}

// checkHazards kills the player on contact with an armed hazard. It returns
// true if the player died.
func checkHazards(w donburi.World, playerEntry *donburi.Entry, object *resolv.Object) bool {
	check := object.Check(0, 0, tags.ResolvHazard)
	if check == nil {
		return false
	}

	for _, hazardObj := range check.ObjectsByTags(tags.ResolvHazard) {
		if !overlapsShifted(object, hazardObj, 0, 0) {
			continue
		}
		hazardEntry, ok := hazardObj.Data.(*donburi.Entry)
		if !ok || hazardEntry == nil || !hazardEntry.Valid() {
			continue
		}
		if TriggerHazard(w, hazardEntry, playerEntry) {
			return true
		}
	}
	return false
}

// updateSavePointContacts sends enter to save points the player now overlaps
// and exit to the ones it left.
func updateSavePointContacts(w donburi.World, object *resolv.Object) {
	touching := map[donburi.Entity]bool{}
	if check := object.Check(0, 0, tags.ResolvSavePoint); check != nil {
		for _, spObj := range check.ObjectsByTags(tags.ResolvSavePoint) {
			if !overlapsShifted(object, spObj, 0, 0) {
				continue
			}
			if spEntry, ok := spObj.Data.(*donburi.Entry); ok && spEntry != nil {
				touching[spEntry.Entity()] = true
			}
		}
	}

	tags.SavePoint.Each(w, func(e *donburi.Entry) {
		sp := components.SavePoint.Get(e)
		inside := touching[e.Entity()]
		switch {
		case inside && !sp.PlayerInRange:
			OnSavePointEnter(w, e)
		case !inside && sp.PlayerInRange:
			OnSavePointExit(e)
		}
	})
}
