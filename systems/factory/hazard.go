package factory

import (
	"github.com/automoto/iwanna/archetypes"
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/automoto/iwanna/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateHazard creates a hazard from its placement. The placement position is
// the hazard's top-left corner.
func CreateHazard(w donburi.World, h leveldata.HazardPlacement) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(w)

	width, height := cfg.Hazard.Width, cfg.Hazard.Height
	obj := resolv.NewObject(h.Position.X, h.Position.Y, width, height, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})

	components.Hazard.SetValue(hazard, components.HazardData{
		Type:     h.Type,
		Active:   !h.Disabled,
		Origin:   math.Vec2{X: h.Position.X, Y: h.Position.Y},
		Rotation: h.Rotation,
		Placed:   h,
	})
	components.WaypointPath.SetValue(hazard, NewWaypointPath(h))

	addToSpace(w, obj)
	return hazard
}

// NewWaypointPath builds the path for a placed hazard. A moving hazard
// without waypoints gets a default segment from its origin.
func NewWaypointPath(h leveldata.HazardPlacement) components.WaypointPathData {
	path := components.WaypointPathData{
		Forward: true,
		Loop:    !h.PingPong,
		Speed:   h.Speed,
		Moving:  h.Moving || h.Type == leveldata.HazardMovingPlatform,
	}
	if path.Speed <= 0 {
		path.Speed = cfg.Hazard.Speed
	}

	for _, p := range h.Waypoints {
		path.Points = append(path.Points, math.Vec2{X: p.X, Y: p.Y})
	}

	if path.Moving && len(path.Points) == 0 {
		logger.Log.WithFields(logrus.Fields{
			"type": h.Type.String(),
			"x":    h.Position.X,
			"y":    h.Position.Y,
		}).Warn("moving hazard has no waypoints, using default path")
		path.Points = []math.Vec2{
			{X: h.Position.X, Y: h.Position.Y},
			{X: h.Position.X + cfg.Hazard.DefaultPathOffset, Y: h.Position.Y},
		}
	}
	return path
}
