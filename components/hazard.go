package components

import (
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type HazardData struct {
	Type      leveldata.HazardType
	Active    bool
	Triggered bool // fired recently; re-armed by the scheduler
	Origin    math.Vec2
	Rotation  float64 // degrees; saws spin, others keep their placed rotation
	Placed    leveldata.HazardPlacement
}

var Hazard = donburi.NewComponentType[HazardData]()

// WaypointPathData drives a hazard along a list of points. Index is always a
// valid index into Points when Points is non-empty.
type WaypointPathData struct {
	Points  []math.Vec2
	Index   int
	Forward bool
	Loop    bool // false = ping-pong
	Speed   float64
	Moving  bool
}

var WaypointPath = donburi.NewComponentType[WaypointPathData]()
