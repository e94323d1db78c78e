package components

import "github.com/yohamta/donburi"

// HUDData is the read-only projection the HUD draws from.
type HUDData struct {
	DeathCount   int
	DeathText    string
	LevelName    string
	Paused       bool
	Message      string
	MessageTimer float64 // seconds left for Message
}

var HUD = donburi.NewComponentType[HUDData]()
