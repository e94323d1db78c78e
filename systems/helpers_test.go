package systems

import (
	stdmath "math"
	"testing"

	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/automoto/iwanna/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Test level geometry: 20x12 cells of 16px with a ground row at y=11, so the
// floor surface is at 176 and a standing player (21px tall) has Y=155.
const (
	floorY    = 176.0
	standingY = floorY - 21
	spawnX    = 16.0
)

// newFloorLevel returns a level with a full ground row and the spawn point
// standing on it.
func newFloorLevel() *leveldata.Level {
	lvl := leveldata.New("test")
	lvl.Width, lvl.Height = 20, 12
	for x := 0; x < lvl.Width; x++ {
		lvl.AddTile(leveldata.Cell{X: x, Y: 11}, "ground", leveldata.TileGround)
	}
	lvl.SetSpawn(leveldata.Point{X: spawnX, Y: standingY})
	return lvl
}

// newTestWorld resets configuration, disables persistence and loads lvl into
// a fresh world.
func newTestWorld(t *testing.T, lvl *leveldata.Level) donburi.World {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	SetProgressStore(nil)

	w := NewWorld()
	LoadLevel(w, lvl)
	events.ProcessAllEvents(w)
	return w
}

// press builds an input frame with the given actions held.
func press(actions ...cfg.ActionID) [cfg.ActionCount]bool {
	var frame [cfg.ActionCount]bool
	for _, a := range actions {
		frame[a] = true
	}
	return frame
}

// step runs n ticks with the given actions held.
func step(w donburi.World, n int, actions ...cfg.ActionID) {
	frame := press(actions...)
	for i := 0; i < n; i++ {
		FeedInput(w, frame, 0)
		Tick(w)
	}
}

func mustPlayer(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := PlayerEntry(w)
	if !ok {
		t.Fatal("no player in world")
	}
	return e
}

func playerPos(t *testing.T, w donburi.World) (float64, float64) {
	t.Helper()
	obj := components.Object.Get(mustPlayer(t, w))
	return obj.X, obj.Y
}

func firstSavePoint(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := tags.SavePoint.First(w)
	if !ok {
		t.Fatal("no save point in world")
	}
	return e
}

func firstHazard(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := tags.Hazard.First(w)
	if !ok {
		t.Fatal("no hazard in world")
	}
	return e
}

func approx(a, b float64) bool {
	return stdmath.Abs(a-b) < 1e-6
}
