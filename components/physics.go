package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData holds velocity in pixels per second. Y grows downward.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
	OnGround     *resolv.Object // solid under the feet after the last collision pass
	OnWall       *resolv.Object // solid within reach in the facing direction
}

var Physics = donburi.NewComponentType[PhysicsData]()
