package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing       float64 // config.DirectionLeft or config.DirectionRight
	Alive        bool
	Grounded     bool
	WasGrounded  bool // Grounded as of the previous tick, for the landing edge
	TouchingWall bool
}

var Player = donburi.NewComponentType[PlayerData]()
