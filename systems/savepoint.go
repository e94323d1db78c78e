package systems

import (
	stdmath "math"

	"github.com/automoto/iwanna/components"
	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// SetSavePointActive arms or disarms a save point. A disarmed save point
// also stops tracking the player.
func SetSavePointActive(e *donburi.Entry, active bool) {
	sp := components.SavePoint.Get(e)
	sp.Active = active
	if !active {
		sp.PlayerInRange = false
	}
}

// OnSavePointEnter handles the player entering the trigger. It returns true
// when the entry activated the save point.
func OnSavePointEnter(w donburi.World, e *donburi.Entry) bool {
	sp := components.SavePoint.Get(e)
	if !sp.Active || sp.PlayerInRange {
		return false
	}
	sp.PlayerInRange = true

	if !sp.CanActivate() {
		return false
	}
	return ActivateSavePoint(w, e)
}

// OnSavePointExit handles the player leaving the trigger.
func OnSavePointExit(e *donburi.Entry) {
	components.SavePoint.Get(e).PlayerInRange = false
}

// ActivateSavePoint makes the save point's position the active checkpoint.
// It does nothing if the save point is disarmed or a used one-time save point.
func ActivateSavePoint(w donburi.World, e *donburi.Entry) bool {
	sp := components.SavePoint.Get(e)
	if !sp.CanActivate() {
		return false
	}
	sp.Used = true

	SetCheckpoint(w, sp.Position)

	if sp.Flash != nil {
		sp.Flash.Reset()
	}
	sp.FlashValue = 1

	logger.Log.WithFields(logrus.Fields{
		"x":          sp.Position.X,
		"y":          sp.Position.Y,
		"oneTimeUse": sp.OneTimeUse,
	}).Debug("save point activated")
	components.SavePointActivated.Publish(w, components.SavePointActivatedEvent{
		SavePoint: e.Entity(),
		Position:  sp.Position,
	})
	return true
}

// ManualActivate activates a save point without the player touching it.
func ManualActivate(w donburi.World, e *donburi.Entry) bool {
	return ActivateSavePoint(w, e)
}

// ResetSavePoint marks the save point unused, including one-time save points.
func ResetSavePoint(e *donburi.Entry) {
	components.SavePoint.Get(e).Used = false
}

// ResetSavePoints returns every save point to its placed state.
func ResetSavePoints(w donburi.World) {
	tags.SavePoint.Each(w, func(e *donburi.Entry) {
		sp := components.SavePoint.Get(e)
		ResetSavePoint(e)
		sp.PlayerInRange = false
		sp.Active = sp.PlacedActive
		sp.FlashValue = 0
	})
}

// UpdateSavePoints animates the idle pulse of armed, unused save points and
// the activation flash.
func UpdateSavePoints(w donburi.World) {
	dt := float32(DeltaTime(w))
	tags.SavePoint.Each(w, func(e *donburi.Entry) {
		sp := components.SavePoint.Get(e)

		if sp.State() == components.SavePointArmedUnused && sp.Pulse != nil {
			phase, done := sp.Pulse.Update(dt)
			if done {
				sp.Pulse.Reset()
			}
			sp.PulseValue = float32(0.5 - 0.5*stdmath.Cos(2*stdmath.Pi*float64(phase)))
		} else {
			sp.PulseValue = 0
		}

		if sp.FlashValue > 0 && sp.Flash != nil {
			sp.FlashValue, _ = sp.Flash.Update(dt)
		}
	})
}
