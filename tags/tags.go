package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Wall      = donburi.NewTag().SetName("Wall")
	Hazard    = donburi.NewTag().SetName("Hazard")
	SavePoint = donburi.NewTag().SetName("SavePoint")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvPlayer    = "player"
	ResolvHazard    = "hazard"
	ResolvSavePoint = "savepoint"
)
