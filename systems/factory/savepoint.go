package factory

import (
	"github.com/automoto/iwanna/archetypes"
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/automoto/iwanna/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateSavePoint creates a save point trigger the size of the player, so a
// respawn at its position lands exactly inside it.
func CreateSavePoint(w donburi.World, sp leveldata.SavePointPlacement) *donburi.Entry {
	savePoint := archetypes.SavePoint.Spawn(w)

	width, height := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(sp.Position.X, sp.Position.Y, width, height, tags.ResolvSavePoint)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = savePoint
	components.Object.SetValue(savePoint, components.ObjectData{Object: obj})

	pulse, flash := NewSavePointTweens()
	components.SavePoint.SetValue(savePoint, components.SavePointData{
		Active:       sp.Active,
		PlacedActive: sp.Active,
		OneTimeUse:   sp.OneTimeUse || cfg.SavePoint.OneTimeUse,
		Position:     math.Vec2{X: sp.Position.X, Y: sp.Position.Y},
		Pulse:        pulse,
		Flash:        flash,
	})

	addToSpace(w, obj)
	return savePoint
}

// NewSavePointTweens returns the idle pulse and activation flash tweens.
func NewSavePointTweens() (pulse, flash *gween.Tween) {
	period := 1.0
	if cfg.SavePoint.PulseSpeed > 0 {
		period = 1 / cfg.SavePoint.PulseSpeed
	}
	pulse = gween.New(0, 1, float32(period), ease.Linear)
	flash = gween.New(1, 0, float32(cfg.SavePoint.FlashDuration), ease.OutQuad)
	return pulse, flash
}
