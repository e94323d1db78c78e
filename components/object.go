package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space singleton shared by every object in a level.
var Space = donburi.NewComponentType[resolv.Space]()
