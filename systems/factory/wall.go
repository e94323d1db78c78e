package factory

import (
	"github.com/automoto/iwanna/archetypes"
	"github.com/automoto/iwanna/components"
	"github.com/automoto/iwanna/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateWall creates a solid block.
func CreateWall(w donburi.World, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	addToSpace(w, obj)
	return wall
}
