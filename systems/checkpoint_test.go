package systems

import (
	"testing"

	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestSetCheckpointLastWins(t *testing.T) {
	w := newTestWorld(t, newFloorLevel())

	var published []math.Vec2
	components.CheckpointSet.Subscribe(w, func(_ donburi.World, ev components.CheckpointSetEvent) {
		published = append(published, ev.Position)
	})

	if got := GetCheckpoint(w); got != (math.Vec2{X: spawnX, Y: standingY}) {
		t.Fatalf("initial checkpoint = %+v, want spawn", got)
	}

	SetCheckpoint(w, math.Vec2{X: 200, Y: 40})
	SetCheckpoint(w, math.Vec2{X: 10, Y: 90})
	Tick(w)

	if got := GetCheckpoint(w); got != (math.Vec2{X: 10, Y: 90}) {
		t.Errorf("checkpoint = %+v, want the last one set", got)
	}
	if len(published) != 2 {
		t.Errorf("CheckpointSet events = %d, want 2", len(published))
	}

	ResetCheckpoint(w)
	if got := GetCheckpoint(w); got != (math.Vec2{X: spawnX, Y: standingY}) {
		t.Errorf("after reset checkpoint = %+v, want spawn", got)
	}
}

func TestGetCheckpointWithoutManager(t *testing.T) {
	w := newBareWorld(t)
	cfg.Game.DefaultSpawnX, cfg.Game.DefaultSpawnY = 12, 34

	hook := test.NewLocal(logger.Log)
	defer hook.Reset()

	SetCheckpoint(w, math.Vec2{X: 1, Y: 2})
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.WarnLevel {
		t.Errorf("SetCheckpoint without manager did not warn: %+v", entry)
	}

	if got := GetCheckpoint(w); got != (math.Vec2{X: 12, Y: 34}) {
		t.Errorf("checkpoint = %+v, want configured default", got)
	}
	if n := DeathCount(w); n != 0 {
		t.Errorf("death count = %d, want 0", n)
	}
}

func TestDieCountsOnce(t *testing.T) {
	w := newTestWorld(t, newFloorLevel())
	player := mustPlayer(t, w)

	if !Die(w, player, CauseSuicide) {
		t.Fatal("first Die returned false")
	}
	if Die(w, player, CauseHazard) {
		t.Error("Die on a dead player returned true")
	}

	if n := DeathCount(w); n != 1 {
		t.Errorf("death count = %d, want 1", n)
	}
	if n := PendingScheduled(w, TagRespawn); n != 1 {
		t.Errorf("pending respawns = %d, want 1", n)
	}
}

func TestRespawnAfterDelayAtCheckpoint(t *testing.T) {
	w := newTestWorld(t, newFloorLevel())
	player := mustPlayer(t, w)

	var respawned []components.PlayerRespawnedEvent
	components.PlayerRespawned.Subscribe(w, func(_ donburi.World, ev components.PlayerRespawnedEvent) {
		respawned = append(respawned, ev)
	})

	checkpoint := math.Vec2{X: 120, Y: standingY}
	SetCheckpoint(w, checkpoint)
	Die(w, player, CauseSuicide)
	x, y := playerPos(t, w)

	// Dead players are frozen.
	step(w, cfg.Game.TPS-1, cfg.ActionMoveRight)
	if components.Player.Get(player).Alive {
		t.Fatal("player respawned before the delay elapsed")
	}
	if nx, ny := playerPos(t, w); nx != x || ny != y {
		t.Errorf("dead player moved from (%v,%v) to (%v,%v)", x, y, nx, ny)
	}

	step(w, 1)
	if !components.Player.Get(player).Alive {
		t.Fatal("player not alive after the respawn delay")
	}
	if nx, ny := playerPos(t, w); nx != checkpoint.X || ny != checkpoint.Y {
		t.Errorf("respawned at (%v,%v), want %+v", nx, ny, checkpoint)
	}
	physics := components.Physics.Get(player)
	if physics.SpeedY != 0 || physics.SpeedX != 0 {
		t.Errorf("respawn velocity = (%v,%v), want zero", physics.SpeedX, physics.SpeedY)
	}
	if len(respawned) != 1 || respawned[0].Position != checkpoint {
		t.Errorf("respawn events = %+v", respawned)
	}
}

func TestSuicideAction(t *testing.T) {
	w := newTestWorld(t, newFloorLevel())

	var causes []string
	components.PlayerDied.Subscribe(w, func(_ donburi.World, ev components.PlayerDiedEvent) {
		causes = append(causes, ev.Cause)
	})

	// Holding the key kills only once.
	step(w, 5, cfg.ActionSuicide)

	if len(causes) != 1 || causes[0] != CauseSuicide {
		t.Fatalf("death causes = %v, want [%s]", causes, CauseSuicide)
	}
	if n := DeathCount(w); n != 1 {
		t.Errorf("death count = %d, want 1", n)
	}
}

func TestFallingOutOfTheLevelKills(t *testing.T) {
	lvl := newFloorLevel()
	lvl.RemoveTile(leveldata.Cell{X: 0, Y: 11})
	lvl.RemoveTile(leveldata.Cell{X: 1, Y: 11})
	lvl.SetSpawn(leveldata.Point{X: 2, Y: 100})
	w := newTestWorld(t, lvl)

	var causes []string
	components.PlayerDied.Subscribe(w, func(_ donburi.World, ev components.PlayerDiedEvent) {
		causes = append(causes, ev.Cause)
	})

	step(w, cfg.Game.TPS)
	if len(causes) == 0 || causes[0] != CauseFall {
		t.Fatalf("death causes = %v, want a fall", causes)
	}
}
