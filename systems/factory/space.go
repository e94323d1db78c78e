package factory

import (
	"github.com/automoto/iwanna/archetypes"
	"github.com/automoto/iwanna/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace creates the collision space singleton for a level of the given
// pixel size.
func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
