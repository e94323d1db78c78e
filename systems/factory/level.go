package factory

import (
	"github.com/automoto/iwanna/archetypes"
	"github.com/automoto/iwanna/components"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/yohamta/donburi"
)

func CreateLevel(w donburi.World, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{Current: lvl})
	return level
}
