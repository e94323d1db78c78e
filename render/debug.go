package render

import (
	"image/color"

	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var waypointColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// DrawDebug outlines every collision object and marks hazard waypoints.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	v, ok := newView(e.World, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}
			x, y := v.screen(obj.X, obj.Y)

			c := cfg.Cyan
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = cfg.Gray
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.Blue
			case obj.HasTags(tags.ResolvHazard):
				c = cfg.Red
			case obj.HasTags(tags.ResolvSavePoint):
				c = cfg.Green
			}

			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)       // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)       // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.WaypointPath) {
			return
		}
		path := components.WaypointPath.Get(entry)
		for i, p := range path.Points {
			x, y := v.screen(p.X, p.Y)
			vector.FillRect(screen, x-1, y-1, 3, 3, waypointColor, false)
			if i > 0 {
				px, py := v.screen(path.Points[i-1].X, path.Points[i-1].Y)
				vector.StrokeLine(screen, px, py, x, y, 1, waypointColor, false)
			}
		}
	})
}
