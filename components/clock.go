package components

import "github.com/yohamta/donburi"

// ClockData is simulated time. It only advances while the game is unpaused.
type ClockData struct {
	Dt      float64 // seconds per tick
	Elapsed float64
	Tick    int
}

var Clock = donburi.NewComponentType[ClockData]()
