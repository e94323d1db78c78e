package components

import "github.com/yohamta/donburi"

// ScheduledAction runs once Remaining simulated seconds have elapsed.
type ScheduledAction struct {
	ID        int
	Tag       string
	Remaining float64
	Created   int // clock tick the action was scheduled on
	Run       func(w donburi.World)
}

type SchedulerData struct {
	Actions []ScheduledAction
	NextID  int
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
