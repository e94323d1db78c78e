package render

import (
	"image/color"

	"github.com/automoto/iwanna/components"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var tileColors = map[leveldata.TileType]color.RGBA{
	leveldata.TileGround:     {R: 110, G: 80, B: 50, A: 255},
	leveldata.TileWall:       {R: 90, G: 90, B: 100, A: 255},
	leveldata.TilePlatform:   {R: 150, G: 120, B: 70, A: 255},
	leveldata.TileDecoration: {R: 60, G: 160, B: 60, A: 255},
}

// DrawLevel fills the background and draws every tile. Decorations are drawn
// as a thin strip over whatever shares their cell.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).Current
	if lvl == nil {
		return
	}
	screen.Fill(lvl.BackgroundColor())

	v, ok := newView(e.World, screen)
	if !ok {
		return
	}
	size := float64(lvl.TileSize)
	if size <= 0 {
		size = leveldata.DefaultTileSize
	}

	for _, tile := range lvl.Tiles {
		origin := lvl.CellOrigin(tile.Cell)
		if !v.visible(origin.X, origin.Y, size, size) {
			continue
		}
		x, y := v.screen(origin.X, origin.Y)
		c := tileColors[tile.Type]

		switch tile.Type {
		case leveldata.TileDecoration:
			vector.DrawFilledRect(screen, x, y+float32(size)*0.75, float32(size), float32(size)/4, c, false)
		case leveldata.TilePlatform:
			vector.DrawFilledRect(screen, x, y, float32(size), float32(size)/2, c, false)
		default:
			vector.DrawFilledRect(screen, x, y, float32(size), float32(size), c, false)
			vector.StrokeRect(screen, x, y, float32(size), float32(size), 1, color.RGBA{A: 60}, false)
		}
	}
}
