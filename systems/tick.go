package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// System is one step of the simulation.
type System func(w donburi.World)

// Always-on systems run first, even while paused.
var sessionSystems = []System{
	UpdatePause,
	UpdateRestart,
}

// Gameplay systems in pipeline order. They are skipped while paused.
var gameplaySystems = []System{
	UpdateClock,
	UpdatePlayerInput,
	UpdateHazards,
	UpdatePlayer,
	UpdatePhysics,
	UpdateCollisions,
	UpdateFallDeath,
	UpdateSavePoints,
	UpdateScheduler,
	UpdateCamera,
}

var pipeline = buildPipeline()

func buildPipeline() []System {
	p := append([]System{}, sessionSystems...)
	for _, s := range gameplaySystems {
		p = append(p, WithGameplayChecks(s))
	}
	p = append(p, UpdateHUD)
	return p
}

// Tick advances the world by one fixed step and delivers the events queued
// during it.
func Tick(w donburi.World) {
	for _, system := range pipeline {
		system(w)
	}
	events.ProcessAllEvents(w)
}
