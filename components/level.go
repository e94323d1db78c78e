package components

import (
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
