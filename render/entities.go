package render

import (
	"image/color"
	"math"

	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/automoto/iwanna/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	hazardColor   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	platformColor = color.RGBA{R: 200, G: 120, B: 40, A: 255}
	disabledColor = color.RGBA{R: 120, G: 60, B: 60, A: 160}
	playerColor   = color.RGBA{R: 40, G: 60, B: 200, A: 255}
)

// spikeSteps is how many stacked bars make up a spike.
const spikeSteps = 4

// DrawHazards draws every hazard in the shape of its type.
func DrawHazards(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e.World, screen)
	if !ok {
		return
	}

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		hazard := components.Hazard.Get(entry)
		c := hazardColor
		if !hazard.Active {
			c = disabledColor
		}
		x, y := v.screen(o.X, o.Y)
		w, h := float32(o.W), float32(o.H)

		switch hazard.Type {
		case leveldata.HazardSpikeUp, leveldata.HazardSpikeDown, leveldata.HazardSpikeLeft, leveldata.HazardSpikeRight:
			drawSpike(screen, hazard.Type, x, y, w, h, c)
		case leveldata.HazardSaw:
			cx, cy, r := x+w/2, y+h/2, w/2
			vector.DrawFilledCircle(screen, cx, cy, r, c, true)
			// A notch shows the spin.
			a := hazard.Rotation * math.Pi / 180
			nx := cx + float32(math.Cos(a))*r*0.6
			ny := cy + float32(math.Sin(a))*r*0.6
			vector.DrawFilledCircle(screen, nx, ny, r/4, color.RGBA{R: 255, G: 255, B: 255, A: 200}, true)
		case leveldata.HazardLaser:
			if hazard.Rotation == 90 || hazard.Rotation == 270 {
				vector.DrawFilledRect(screen, x+w/2-1, y, 2, h, c, false)
			} else {
				vector.DrawFilledRect(screen, x, y+h/2-1, w, 2, c, false)
			}
		case leveldata.HazardMovingPlatform:
			if hazard.Active {
				c = platformColor
			}
			vector.DrawFilledRect(screen, x, y, w, h/2, c, false)
		default:
			vector.DrawFilledRect(screen, x, y, w, h, c, false)
		}
	})
}

// drawSpike approximates a triangle with bars narrowing toward the point.
func drawSpike(screen *ebiten.Image, t leveldata.HazardType, x, y, w, h float32, c color.Color) {
	for i := 0; i < spikeSteps; i++ {
		frac := float32(spikeSteps-i) / spikeSteps
		switch t {
		case leveldata.HazardSpikeUp:
			bw, bh := w*frac, h/spikeSteps
			vector.DrawFilledRect(screen, x+(w-bw)/2, y+h-bh*float32(i+1), bw, bh, c, false)
		case leveldata.HazardSpikeDown:
			bw, bh := w*frac, h/spikeSteps
			vector.DrawFilledRect(screen, x+(w-bw)/2, y+bh*float32(i), bw, bh, c, false)
		case leveldata.HazardSpikeLeft:
			bw, bh := w/spikeSteps, h*frac
			vector.DrawFilledRect(screen, x+w-bw*float32(i+1), y+(h-bh)/2, bw, bh, c, false)
		case leveldata.HazardSpikeRight:
			bw, bh := w/spikeSteps, h*frac
			vector.DrawFilledRect(screen, x+bw*float32(i), y+(h-bh)/2, bw, bh, c, false)
		}
	}
}

// DrawSavePoints draws save points in their state colour, pulsing while
// armed and unused and flashing white on activation.
func DrawSavePoints(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e.World, screen)
	if !ok {
		return
	}

	tags.SavePoint.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		sp := components.SavePoint.Get(entry)

		var c color.RGBA
		switch sp.State() {
		case components.SavePointInactive:
			c = cfg.SavePoint.InactiveColor
		case components.SavePointArmedUsed:
			c = cfg.SavePoint.UsedColor
		default:
			c = cfg.SavePoint.ActiveColor
			c = scaleColor(c, 1-float32(cfg.SavePoint.PulseIntensity)*sp.PulseValue)
		}
		if sp.FlashValue > 0 {
			c = mixColor(c, cfg.White, sp.FlashValue)
		}

		x, y := v.screen(o.X, o.Y)
		vector.DrawFilledRect(screen, x, y, float32(o.W), float32(o.H), c, false)
		vector.StrokeRect(screen, x, y, float32(o.W), float32(o.H), 1, color.Black, false)
	})
}

// DrawPlayer draws the player box with an eye on the facing side. Dead
// players are not drawn.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e.World, screen)
	if !ok {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if !player.Alive {
			return
		}
		o := components.Object.Get(entry)
		x, y := v.screen(o.X, o.Y)
		vector.DrawFilledRect(screen, x, y, float32(o.W), float32(o.H), playerColor, false)

		eyeX := x + float32(o.W)*0.65
		if player.Facing < 0 {
			eyeX = x + float32(o.W)*0.15
		}
		vector.DrawFilledRect(screen, eyeX, y+4, 3, 3, cfg.White, false)
	})
}

func scaleColor(c color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}

func mixColor(a, b color.RGBA, t float32) color.RGBA {
	lerp := func(x, y uint8) uint8 { return uint8(float32(x) + (float32(y)-float32(x))*t) }
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
