package systems

import (
	"math"

	"github.com/automoto/iwanna/components"
	"github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/tags"
	"github.com/yohamta/donburi"
)

func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	targetX, targetY, ok := cameraTarget(w)
	if !ok {
		return
	}

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centres the camera on the player without smoothing.
func SnapCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	if x, y, ok := cameraTarget(w); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X, camera.Position.Y = x, y
	}
}

func cameraTarget(w donburi.World) (float64, float64, bool) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return 0, 0, false
	}
	playerObject := components.Object.Get(playerEntry)

	lvl, ok := CurrentLevel(w)
	if !ok {
		return 0, 0, false
	}

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	// Camera bounds: ensure the level always fills the screen
	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(lvl.PixelWidth())
	levelHeight := float64(lvl.PixelHeight())

	targetX = clampAxis(targetX, screenWidth/2, levelWidth-screenWidth/2)
	targetY = clampAxis(targetY, screenHeight/2, levelHeight-screenHeight/2)
	return targetX, targetY, true
}

// clampAxis constrains v to [lo, hi]; a level smaller than the screen is
// centred instead.
func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
