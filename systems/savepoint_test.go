package systems

import (
	"testing"

	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// newSavePointWorld loads the floor level with one save point standing on
// the floor at x.
func newSavePointWorld(t *testing.T, x float64, oneTimeUse, active bool) donburi.World {
	t.Helper()
	lvl := newFloorLevel()
	sp := lvl.AddSavePoint(leveldata.Point{X: x, Y: standingY})
	sp.OneTimeUse = oneTimeUse
	sp.Active = active
	return newTestWorld(t, lvl)
}

func TestSavePointGate(t *testing.T) {
	tests := []struct {
		name       string
		active     bool
		oneTimeUse bool
		used       bool
		want       bool
	}{
		{"armed reusable", true, false, false, true},
		{"armed reusable used", true, false, true, true},
		{"armed one-time unused", true, true, false, true},
		{"armed one-time used", true, true, true, false},
		{"inactive", false, false, false, false},
		{"inactive one-time", false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newSavePointWorld(t, 200, tt.oneTimeUse, tt.active)
			e := firstSavePoint(t, w)
			components.SavePoint.Get(e).Used = tt.used

			if got := OnSavePointEnter(w, e); got != tt.want {
				t.Errorf("OnSavePointEnter = %v, want %v", got, tt.want)
			}

			wantCheckpoint := math.Vec2{X: spawnX, Y: standingY}
			if tt.want {
				wantCheckpoint = math.Vec2{X: 200, Y: standingY}
			}
			if got := GetCheckpoint(w); got != wantCheckpoint {
				t.Errorf("checkpoint = %+v, want %+v", got, wantCheckpoint)
			}
		})
	}
}

func TestSavePointReentryNeedsExit(t *testing.T) {
	w := newSavePointWorld(t, 200, false, true)
	e := firstSavePoint(t, w)

	if !OnSavePointEnter(w, e) {
		t.Fatal("first enter did not activate")
	}
	if OnSavePointEnter(w, e) {
		t.Error("second enter without exit activated again")
	}

	OnSavePointExit(e)
	if !OnSavePointEnter(w, e) {
		t.Error("reusable save point did not activate after exit and enter")
	}
}

func TestOneTimeSavePointAfterReset(t *testing.T) {
	w := newSavePointWorld(t, 200, true, true)
	e := firstSavePoint(t, w)
	sp := components.SavePoint.Get(e)

	if sp.State() != components.SavePointArmedUnused {
		t.Fatalf("state = %v, want ArmedUnused", sp.State())
	}
	if !OnSavePointEnter(w, e) {
		t.Fatal("first enter did not activate")
	}
	if sp.State() != components.SavePointArmedUsed {
		t.Errorf("state = %v, want ArmedUsed", sp.State())
	}

	OnSavePointExit(e)
	if OnSavePointEnter(w, e) {
		t.Error("used one-time save point activated again")
	}
	if ManualActivate(w, e) {
		t.Error("manual activation of a used one-time save point succeeded")
	}

	ResetSavePoint(e)
	OnSavePointExit(e)
	if !OnSavePointEnter(w, e) {
		t.Error("reset one-time save point did not activate")
	}
}

func TestSetSavePointActive(t *testing.T) {
	w := newSavePointWorld(t, 200, false, false)
	e := firstSavePoint(t, w)
	sp := components.SavePoint.Get(e)

	if sp.State() != components.SavePointInactive {
		t.Fatalf("state = %v, want Inactive", sp.State())
	}
	if OnSavePointEnter(w, e) || sp.PlayerInRange {
		t.Fatal("inactive save point reacted to the player")
	}

	SetSavePointActive(e, true)
	if !OnSavePointEnter(w, e) {
		t.Fatal("armed save point did not activate")
	}

	SetSavePointActive(e, false)
	if sp.PlayerInRange {
		t.Error("disarming kept the player in range")
	}
}

func TestWalkingThroughSavePoint(t *testing.T) {
	w := newSavePointWorld(t, 64, false, true)
	e := firstSavePoint(t, w)

	var activated []components.SavePointActivatedEvent
	components.SavePointActivated.Subscribe(w, func(_ donburi.World, ev components.SavePointActivatedEvent) {
		activated = append(activated, ev)
	})

	// Walk from x=16 past the save point at x=64.
	step(w, cfg.Game.TPS, cfg.ActionMoveRight)

	if len(activated) != 1 {
		t.Fatalf("activations = %d, want 1", len(activated))
	}
	if activated[0].Position != (math.Vec2{X: 64, Y: standingY}) {
		t.Errorf("activated at %+v", activated[0].Position)
	}
	if components.SavePoint.Get(e).PlayerInRange {
		t.Error("player still in range after walking past")
	}
	if got := GetOrCreateHUD(w).Message; got != savedMessage {
		t.Errorf("HUD message = %q, want %q", got, savedMessage)
	}

	// Dying now respawns at the save point.
	step(w, 1, cfg.ActionSuicide)
	step(w, cfg.Game.TPS)
	if x, y := playerPos(t, w); x != 64 || y != standingY {
		t.Errorf("respawned at (%v,%v), want the save point", x, y)
	}
	if n := DeathCount(w); n != 1 {
		t.Errorf("death count = %d, want 1", n)
	}
}

func TestSavePointPulseAndFlash(t *testing.T) {
	w := newSavePointWorld(t, 200, false, true)
	e := firstSavePoint(t, w)
	sp := components.SavePoint.Get(e)

	pulsed := false
	for i := 0; i < cfg.Game.TPS; i++ {
		step(w, 1)
		if sp.PulseValue < 0 || sp.PulseValue > 1 {
			t.Fatalf("pulse = %v, want within [0,1]", sp.PulseValue)
		}
		if sp.PulseValue > 0.5 {
			pulsed = true
		}
	}
	if !pulsed {
		t.Error("armed save point did not pulse")
	}

	ManualActivate(w, e)
	if sp.FlashValue != 1 {
		t.Errorf("flash = %v right after activation, want 1", sp.FlashValue)
	}
	step(w, cfg.Game.TPS)
	if sp.PulseValue != 0 {
		t.Errorf("used save point pulse = %v, want 0", sp.PulseValue)
	}
	if sp.FlashValue != 0 {
		t.Errorf("flash = %v after a second, want 0", sp.FlashValue)
	}
}

func TestResetSavePointsRestoresPlacement(t *testing.T) {
	w := newSavePointWorld(t, 200, true, true)
	e := firstSavePoint(t, w)

	OnSavePointEnter(w, e)
	SetSavePointActive(e, false)

	ResetSavePoints(w)
	sp := components.SavePoint.Get(e)
	if !sp.Active || sp.Used || sp.PlayerInRange {
		t.Errorf("save point = %+v, want armed, unused, not in range", sp)
	}
}
