package components

import (
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// Gameplay notifications. They are queued during a tick and delivered to
// subscribers by events.ProcessAllEvents at the end of it.

type PlayerDiedEvent struct {
	Player   donburi.Entity
	Position math.Vec2
	Cause    string
}

type PlayerRespawnedEvent struct {
	Player   donburi.Entity
	Position math.Vec2
}

type PlayerJumpedEvent struct {
	Player donburi.Entity
}

type PlayerLandedEvent struct {
	Player donburi.Entity
}

type CheckpointSetEvent struct {
	Position math.Vec2
}

type DeathCountChangedEvent struct {
	Count int
}

type SavePointActivatedEvent struct {
	SavePoint donburi.Entity
	Position  math.Vec2
}

type HazardTriggeredEvent struct {
	Hazard donburi.Entity
	Type   leveldata.HazardType
}

type GamePausedEvent struct{}

type GameResumedEvent struct{}

type LevelLoadedEvent struct {
	Name string
}

var (
	PlayerDied         = events.NewEventType[PlayerDiedEvent]()
	PlayerRespawned    = events.NewEventType[PlayerRespawnedEvent]()
	PlayerJumped       = events.NewEventType[PlayerJumpedEvent]()
	PlayerLanded       = events.NewEventType[PlayerLandedEvent]()
	CheckpointSet      = events.NewEventType[CheckpointSetEvent]()
	DeathCountChanged  = events.NewEventType[DeathCountChangedEvent]()
	SavePointActivated = events.NewEventType[SavePointActivatedEvent]()
	HazardTriggered    = events.NewEventType[HazardTriggeredEvent]()
	GamePaused         = events.NewEventType[GamePausedEvent]()
	GameResumed        = events.NewEventType[GameResumedEvent]()
	LevelLoaded        = events.NewEventType[LevelLoadedEvent]()
)
