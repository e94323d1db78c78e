package systems

import (
	"github.com/automoto/iwanna/archetypes"
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/yohamta/donburi"
)

// UpdateClock advances simulated time by one fixed step.
func UpdateClock(w donburi.World) {
	clock := GetOrCreateClock(w)
	clock.Tick++
	clock.Elapsed += clock.Dt
}

// DeltaTime returns the fixed step in seconds.
func DeltaTime(w donburi.World) float64 {
	return GetOrCreateClock(w).Dt
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(w donburi.World) *components.ClockData {
	if _, ok := components.Clock.First(w); !ok {
		ent := archetypes.Clock.Spawn(w)
		components.Clock.SetValue(ent, components.ClockData{Dt: cfg.TickSeconds()})
	}

	ent, _ := components.Clock.First(w)
	return components.Clock.Get(ent)
}
