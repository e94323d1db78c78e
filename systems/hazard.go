package systems

import (
	stdmath "math"

	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/shared/gamemath"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/automoto/iwanna/systems/factory"
	"github.com/automoto/iwanna/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Saw blades spin at this many degrees per second.
const sawSpinSpeed = 360.0

// UpdateHazards moves active hazards along their waypoint paths.
func UpdateHazards(w donburi.World) {
	dt := DeltaTime(w)
	tags.Hazard.Each(w, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		if !hazard.Active {
			return
		}

		if hazard.Type == leveldata.HazardSaw {
			hazard.Rotation = stdmath.Mod(hazard.Rotation+sawSpinSpeed*dt, 360)
		}

		obj := components.Object.Get(e)
		path := components.WaypointPath.Get(e)
		if x, y, moved := AdvanceWaypoints(path, obj.X, obj.Y, dt); moved {
			obj.X, obj.Y = x, y
			obj.Update()
		}
	})
}

// AdvanceWaypoints moves (x, y) one step along path and returns the new
// position. A path that is not moving or has fewer than two points leaves
// the position untouched.
func AdvanceWaypoints(path *components.WaypointPathData, x, y, dt float64) (float64, float64, bool) {
	if !path.Moving || len(path.Points) < 2 {
		return x, y, false
	}

	target := path.Points[path.Index]
	nx, ny := gamemath.MoveTowards(x, y, target.X, target.Y, path.Speed*dt)

	if gamemath.Distance(nx, ny, target.X, target.Y) < cfg.Hazard.ReachEpsilon {
		nx, ny = target.X, target.Y
		nextWaypoint(path)
	}
	return nx, ny, true
}

func nextWaypoint(path *components.WaypointPathData) {
	n := len(path.Points)
	if path.Loop {
		path.Index = (path.Index + 1) % n
		return
	}

	if path.Forward {
		path.Index++
		if path.Index >= n-1 {
			path.Index = n - 1
			path.Forward = false
		}
		return
	}

	path.Index--
	if path.Index <= 0 {
		path.Index = 0
		path.Forward = true
	}
}

// SetHazardActive enables or disables a hazard. Inactive hazards neither
// move nor kill.
func SetHazardActive(e *donburi.Entry, active bool) {
	components.Hazard.Get(e).Active = active
}

// AddWaypoint appends a point to a hazard's path.
func AddWaypoint(e *donburi.Entry, p math.Vec2) {
	path := components.WaypointPath.Get(e)
	path.Points = append(path.Points, p)
}

// ClearWaypoints empties a hazard's path, which stops it.
func ClearWaypoints(e *donburi.Entry) {
	path := components.WaypointPath.Get(e)
	path.Points = nil
	path.Index = 0
	path.Forward = true
}

// TriggerHazard fires a hazard against the player. A hazard that fired is
// disarmed until the trigger cooldown has elapsed.
func TriggerHazard(w donburi.World, hazardEntry, playerEntry *donburi.Entry) bool {
	hazard := components.Hazard.Get(hazardEntry)
	if !hazard.Active || hazard.Triggered {
		return false
	}
	hazard.Triggered = true

	components.HazardTriggered.Publish(w, components.HazardTriggeredEvent{
		Hazard: hazardEntry.Entity(),
		Type:   hazard.Type,
	})
	Die(w, playerEntry, CauseHazard)

	ent := hazardEntry.Entity()
	Schedule(w, cfg.Hazard.TriggerCooldown, TagHazardRearm, func(w donburi.World) {
		if w.Valid(ent) {
			components.Hazard.Get(w.Entry(ent)).Triggered = false
		}
	})
	return true
}

// ResetHazards returns every hazard to its placed state.
func ResetHazards(w donburi.World) {
	tags.Hazard.Each(w, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		hazard.Active = !hazard.Placed.Disabled
		hazard.Triggered = false
		hazard.Rotation = hazard.Placed.Rotation

		obj := components.Object.Get(e)
		obj.X, obj.Y = hazard.Origin.X, hazard.Origin.Y
		obj.Update()

		components.WaypointPath.SetValue(e, factory.NewWaypointPath(hazard.Placed))
	})
}
