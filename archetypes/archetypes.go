package archetypes

import (
	"github.com/automoto/iwanna/components"
	"github.com/automoto/iwanna/tags"
	"github.com/yohamta/donburi"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Physics,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.WaypointPath,
		components.Object,
	)
	SavePoint = newArchetype(
		tags.SavePoint,
		components.SavePoint,
		components.Object,
	)
	CheckpointManager = newArchetype(
		components.CheckpointManager,
	)
	Scheduler = newArchetype(
		components.Scheduler,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Pause,
		components.Input,
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
