package systems

import (
	"github.com/yohamta/donburi"
)

// NewWorld returns a world with the session singletons, clock and scheduler
// in place and the HUD and persistence listeners registered. Load a level
// into it with LoadLevel.
func NewWorld() donburi.World {
	w := donburi.NewWorld()
	GetOrCreateSession(w)
	GetOrCreateClock(w)
	GetOrCreateScheduler(w)
	RegisterHUD(w)
	RegisterPersistence(w)
	return w
}
