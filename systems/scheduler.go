package systems

import (
	"github.com/automoto/iwanna/archetypes"
	"github.com/automoto/iwanna/components"
	"github.com/yohamta/donburi"
)

// Tags for deferred actions
const (
	TagRespawn     = "respawn"
	TagHazardRearm = "hazard-rearm"

	dueEpsilon = 1e-9
)

// Schedule runs fn once delay simulated seconds have passed. The countdown
// starts on the tick after the one that scheduled it, so fn never runs on the
// scheduling tick itself. Returns an id usable for logging.
func Schedule(w donburi.World, delay float64, tag string, fn func(w donburi.World)) int {
	s := GetOrCreateScheduler(w)
	s.NextID++
	s.Actions = append(s.Actions, components.ScheduledAction{
		ID:        s.NextID,
		Tag:       tag,
		Remaining: delay,
		Created:   GetOrCreateClock(w).Tick,
		Run:       fn,
	})
	return s.NextID
}

// CancelScheduled drops every pending action with tag and returns how many
// were dropped.
func CancelScheduled(w donburi.World, tag string) int {
	s := GetOrCreateScheduler(w)
	kept := s.Actions[:0]
	n := 0
	for _, a := range s.Actions {
		if a.Tag == tag {
			n++
			continue
		}
		kept = append(kept, a)
	}
	s.Actions = kept
	return n
}

// CancelAllScheduled drops every pending action.
func CancelAllScheduled(w donburi.World) int {
	s := GetOrCreateScheduler(w)
	n := len(s.Actions)
	s.Actions = nil
	return n
}

// PendingScheduled returns the number of pending actions with tag, or all
// pending actions when tag is empty.
func PendingScheduled(w donburi.World, tag string) int {
	s := GetOrCreateScheduler(w)
	if tag == "" {
		return len(s.Actions)
	}
	n := 0
	for _, a := range s.Actions {
		if a.Tag == tag {
			n++
		}
	}
	return n
}

// UpdateScheduler counts pending actions down and runs the ones that are due,
// in the order they were scheduled.
func UpdateScheduler(w donburi.World) {
	s := GetOrCreateScheduler(w)
	if len(s.Actions) == 0 {
		return
	}
	clock := GetOrCreateClock(w)

	var due []components.ScheduledAction
	kept := make([]components.ScheduledAction, 0, len(s.Actions))
	for _, a := range s.Actions {
		if a.Created < clock.Tick {
			a.Remaining -= clock.Dt
		}
		if a.Remaining <= dueEpsilon && a.Created < clock.Tick {
			due = append(due, a)
			continue
		}
		kept = append(kept, a)
	}
	s.Actions = kept

	// Actions may schedule or cancel others; they see the list without themselves.
	for _, a := range due {
		a.Run(w)
	}
}

// GetOrCreateScheduler returns the singleton Scheduler component, creating if needed.
func GetOrCreateScheduler(w donburi.World) *components.SchedulerData {
	if _, ok := components.Scheduler.First(w); !ok {
		archetypes.Scheduler.Spawn(w)
	}

	ent, _ := components.Scheduler.First(w)
	return components.Scheduler.Get(ent)
}
