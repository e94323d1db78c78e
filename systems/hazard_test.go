package systems

import (
	"testing"

	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestAdvanceWaypointsTwoPoints(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	dt := cfg.TickSeconds()

	for _, loop := range []bool{false, true} {
		path := &components.WaypointPathData{
			Points:  []math.Vec2{{X: 0, Y: 0}, {X: 5, Y: 0}},
			Forward: true,
			Loop:    loop,
			Speed:   2,
			Moving:  true,
		}

		x, y := 0.0, 0.0
		maxX := 0.0
		for i := 0; i < 200; i++ {
			x, y, _ = AdvanceWaypoints(path, x, y, dt)
			maxX = max(maxX, x)
		}

		if maxX != 5 {
			t.Errorf("loop=%v: max x = %v, want 5", loop, maxX)
		}
		if y != 0 {
			t.Errorf("loop=%v: y = %v, want 0", loop, y)
		}
		if path.Index != 0 {
			t.Errorf("loop=%v: index = %d, want 0 heading back", loop, path.Index)
		}
		if x >= 5 {
			t.Errorf("loop=%v: x = %v, want it moving back toward 0", loop, x)
		}
	}
}

func TestLoopingHazardAfterTwoAndAHalfSeconds(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	path := &components.WaypointPathData{
		Points:  []math.Vec2{{X: 0, Y: 0}, {X: 5, Y: 0}},
		Forward: true,
		Loop:    true,
		Speed:   2,
		Moving:  true,
	}

	x, y := 0.0, 0.0
	maxX := 0.0
	ticks := int(2.5 * float64(cfg.Game.TPS))
	for i := 0; i < ticks; i++ {
		x, y, _ = AdvanceWaypoints(path, x, y, cfg.TickSeconds())
		maxX = max(maxX, x)
	}

	if maxX != 5 {
		t.Errorf("max x = %v after 2.5s, want 5", maxX)
	}
	if path.Index != 0 {
		t.Errorf("index = %d after 2.5s, want 0 heading back", path.Index)
	}
	if x >= 5 || x < 4.8 || y != 0 {
		t.Errorf("position = (%v,%v), want just back from (5,0)", x, y)
	}
}

func TestAdvanceWaypointsIndexSequence(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	dt := cfg.TickSeconds()

	tests := []struct {
		name string
		loop bool
		want []int
	}{
		{"ping-pong", false, []int{1, 2, 1, 0, 1}},
		{"loop", true, []int{1, 2, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := &components.WaypointPathData{
				Points:  []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
				Forward: true,
				Loop:    tt.loop,
				Speed:   90,
				Moving:  true,
			}

			x, y := 0.0, 0.0
			var got []int
			for range tt.want {
				x, y, _ = AdvanceWaypoints(path, x, y, dt)
				got = append(got, path.Index)
			}

			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("indices = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestAdvanceWaypointsNeedsTwoPoints(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	tests := []struct {
		name string
		path components.WaypointPathData
	}{
		{"empty", components.WaypointPathData{Moving: true, Speed: 10, Forward: true}},
		{"single point", components.WaypointPathData{Moving: true, Speed: 10, Forward: true, Points: []math.Vec2{{X: 5, Y: 5}}}},
		{"not moving", components.WaypointPathData{Speed: 10, Forward: true, Points: []math.Vec2{{X: 5, Y: 5}, {X: 9, Y: 9}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, moved := AdvanceWaypoints(&tt.path, 1, 2, 0.5)
			if moved || x != 1 || y != 2 {
				t.Errorf("AdvanceWaypoints = (%v,%v,%v), want (1,2,false)", x, y, moved)
			}
		})
	}
}

func TestMovingHazardFollowsPath(t *testing.T) {
	lvl := newFloorLevel()
	lvl.Hazards = append(lvl.Hazards, leveldata.HazardPlacement{
		Position:  leveldata.Point{X: 160, Y: 64},
		Type:      leveldata.HazardSaw,
		Moving:    true,
		PingPong:  true,
		Speed:     60,
		Waypoints: []leveldata.Point{{X: 160, Y: 64}, {X: 200, Y: 64}},
	})
	w := newTestWorld(t, lvl)
	hazard := firstHazard(t, w)

	step(w, cfg.Game.TPS/2)
	obj := components.Object.Get(hazard)
	if obj.X <= 160 || obj.X > 200 || obj.Y != 64 {
		t.Errorf("hazard at (%v,%v), want on the path past its origin", obj.X, obj.Y)
	}
	if rot := components.Hazard.Get(hazard).Rotation; rot == 0 {
		t.Error("saw did not spin")
	}

	SetHazardActive(hazard, false)
	x := obj.X
	step(w, 10)
	if obj.X != x {
		t.Errorf("inactive hazard moved from %v to %v", x, obj.X)
	}
}

func TestAddAndClearWaypoints(t *testing.T) {
	lvl := newFloorLevel()
	lvl.AddHazard(leveldata.Point{X: 160, Y: 64}, leveldata.HazardSpikeUp, 0)
	w := newTestWorld(t, lvl)
	hazard := firstHazard(t, w)
	path := components.WaypointPath.Get(hazard)
	path.Moving = true

	AddWaypoint(hazard, math.Vec2{X: 160, Y: 64})
	AddWaypoint(hazard, math.Vec2{X: 160, Y: 100})
	if len(path.Points) != 2 {
		t.Fatalf("points = %d, want 2", len(path.Points))
	}
	step(w, 10)
	obj := components.Object.Get(hazard)
	if obj.Y <= 64 {
		t.Errorf("hazard y = %v, want it moving down", obj.Y)
	}

	ClearWaypoints(hazard)
	y := obj.Y
	step(w, 10)
	if obj.Y != y {
		t.Errorf("hazard with no waypoints moved from %v to %v", y, obj.Y)
	}
}

func TestHazardKillsOnContact(t *testing.T) {
	lvl := newFloorLevel()
	lvl.AddHazard(leveldata.Point{X: 96, Y: 160}, leveldata.HazardSpikeUp, 0)
	w := newTestWorld(t, lvl)
	player := mustPlayer(t, w)

	var triggered []components.HazardTriggeredEvent
	components.HazardTriggered.Subscribe(w, func(_ donburi.World, ev components.HazardTriggeredEvent) {
		triggered = append(triggered, ev)
	})
	var causes []string
	components.PlayerDied.Subscribe(w, func(_ donburi.World, ev components.PlayerDiedEvent) {
		causes = append(causes, ev.Cause)
	})

	for i := 0; i < cfg.Game.TPS && components.Player.Get(player).Alive; i++ {
		step(w, 1, cfg.ActionMoveRight)
	}
	if components.Player.Get(player).Alive {
		t.Fatal("player walked through a spike")
	}
	step(w, 1)

	if len(triggered) != 1 || triggered[0].Type != leveldata.HazardSpikeUp {
		t.Errorf("triggered events = %+v", triggered)
	}
	if len(causes) != 1 || causes[0] != CauseHazard {
		t.Errorf("death causes = %v, want [%s]", causes, CauseHazard)
	}
	if n := DeathCount(w); n != 1 {
		t.Errorf("death count = %d, want 1", n)
	}
}

func TestDisabledHazardIsHarmless(t *testing.T) {
	lvl := newFloorLevel()
	spike := lvl.AddHazard(leveldata.Point{X: 48, Y: 160}, leveldata.HazardSpikeUp, 0)
	spike.Disabled = true
	w := newTestWorld(t, lvl)

	step(w, cfg.Game.TPS, cfg.ActionMoveRight)

	if !components.Player.Get(mustPlayer(t, w)).Alive {
		t.Error("disabled hazard killed the player")
	}
	if x, _ := playerPos(t, w); x <= 48+16 {
		t.Errorf("player x = %v, want past the spike", x)
	}
}

func TestTriggerHazardRearms(t *testing.T) {
	lvl := newFloorLevel()
	lvl.AddHazard(leveldata.Point{X: 160, Y: 160}, leveldata.HazardSpikeUp, 0)
	w := newTestWorld(t, lvl)
	hazard := firstHazard(t, w)
	player := mustPlayer(t, w)

	if !TriggerHazard(w, hazard, player) {
		t.Fatal("first trigger returned false")
	}
	RespawnPlayer(w, player)
	if TriggerHazard(w, hazard, player) {
		t.Fatal("hazard fired again during its cooldown")
	}

	cooldownTicks := int(cfg.Hazard.TriggerCooldown * float64(cfg.Game.TPS))
	step(w, cooldownTicks-1)
	if !components.Hazard.Get(hazard).Triggered {
		t.Fatal("hazard re-armed early")
	}
	step(w, 1)
	if components.Hazard.Get(hazard).Triggered {
		t.Fatal("hazard not re-armed after the cooldown")
	}
	if !TriggerHazard(w, hazard, player) {
		t.Error("re-armed hazard did not fire")
	}
}

func TestResetHazardsRestoresPlacement(t *testing.T) {
	lvl := newFloorLevel()
	lvl.Hazards = append(lvl.Hazards, leveldata.HazardPlacement{
		Position:  leveldata.Point{X: 160, Y: 64},
		Type:      leveldata.HazardCrusher,
		Rotation:  90,
		Moving:    true,
		Speed:     60,
		Waypoints: []leveldata.Point{{X: 160, Y: 64}, {X: 160, Y: 120}},
	})
	w := newTestWorld(t, lvl)
	hazard := firstHazard(t, w)

	step(w, 20)
	SetHazardActive(hazard, false)
	components.Hazard.Get(hazard).Triggered = true

	ResetHazards(w)

	data := components.Hazard.Get(hazard)
	if !data.Active || data.Triggered || data.Rotation != 90 {
		t.Errorf("hazard = %+v, want active, armed, rotation 90", data)
	}
	obj := components.Object.Get(hazard)
	if obj.X != 160 || obj.Y != 64 {
		t.Errorf("hazard at (%v,%v), want origin", obj.X, obj.Y)
	}
	if path := components.WaypointPath.Get(hazard); path.Index != 0 || !path.Forward || len(path.Points) != 2 {
		t.Errorf("path = %+v, want fresh", path)
	}
}
