// Package render draws the world with flat shapes: level tiles, hazards, save
// points, the player, the HUD and the pause menu.
package render

import (
	"github.com/automoto/iwanna/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Draw layers, bottom to top.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

// Culling padding around the viewport, in pixels.
const cullPadding = 32.0

// view maps world coordinates to the screen for the current camera.
type view struct {
	offsetX, offsetY       float64
	minX, minY, maxX, maxY float64
}

func newView(w donburi.World, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	return view{
		offsetX: width/2 - camera.Position.X,
		offsetY: height/2 - camera.Position.Y,
		minX:    camera.Position.X - width/2 - cullPadding,
		maxX:    camera.Position.X + width/2 + cullPadding,
		minY:    camera.Position.Y - height/2 - cullPadding,
		maxY:    camera.Position.Y + height/2 + cullPadding,
	}, true
}

// visible reports whether a world rectangle intersects the padded viewport.
func (v view) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}

func (v view) screen(x, y float64) (float32, float32) {
	return float32(x + v.offsetX), float32(y + v.offsetY)
}
