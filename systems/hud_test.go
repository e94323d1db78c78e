package systems

import (
	"testing"

	cfg "github.com/automoto/iwanna/config"
)

func TestHUDFollowsDeathCount(t *testing.T) {
	w := newTestWorld(t, newFloorLevel())

	step(w, 1, cfg.ActionSuicide)
	hud := GetOrCreateHUD(w)
	if hud.DeathCount != 1 || hud.DeathText != "Deaths: 1" {
		t.Errorf("HUD = %+v, want one death", hud)
	}

	step(w, cfg.Game.TPS)
	step(w, 1, cfg.ActionSuicide)
	if hud.DeathText != "Deaths: 2" {
		t.Errorf("death text = %q, want Deaths: 2", hud.DeathText)
	}
}

func TestHUDMessageExpires(t *testing.T) {
	w := newTestWorld(t, newFloorLevel())
	hud := GetOrCreateHUD(w)

	ShowMessage(w, "hello")
	ticks := int(cfg.HUD.MessageDuration * float64(cfg.Game.TPS))

	step(w, ticks-1)
	if hud.Message != "hello" {
		t.Fatalf("message = %q before expiry, want hello", hud.Message)
	}
	step(w, 2)
	if hud.Message != "" || hud.MessageTimer != 0 {
		t.Errorf("message = %q timer = %v, want cleared", hud.Message, hud.MessageTimer)
	}
}

func TestHUDMessageHoldsWhilePaused(t *testing.T) {
	w := newTestWorld(t, newFloorLevel())
	hud := GetOrCreateHUD(w)

	ShowMessage(w, "hello")
	TogglePause(w)
	step(w, cfg.Game.TPS*5)

	if hud.Message != "hello" {
		t.Errorf("message = %q, want it kept while paused", hud.Message)
	}
}
