package systems

import (
	"fmt"

	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/yohamta/donburi"
)

const savedMessage = "Saved!"

// RegisterHUD keeps the HUD projection current from gameplay events.
func RegisterHUD(w donburi.World) {
	components.DeathCountChanged.Subscribe(w, func(w donburi.World, ev components.DeathCountChangedEvent) {
		hud := GetOrCreateHUD(w)
		hud.DeathCount = ev.Count
		hud.DeathText = deathText(ev.Count)
	})
	components.GamePaused.Subscribe(w, func(w donburi.World, _ components.GamePausedEvent) {
		GetOrCreateHUD(w).Paused = true
	})
	components.GameResumed.Subscribe(w, func(w donburi.World, _ components.GameResumedEvent) {
		GetOrCreateHUD(w).Paused = false
	})
	components.SavePointActivated.Subscribe(w, func(w donburi.World, _ components.SavePointActivatedEvent) {
		ShowMessage(w, savedMessage)
	})
	components.LevelLoaded.Subscribe(w, func(w donburi.World, ev components.LevelLoadedEvent) {
		GetOrCreateHUD(w).LevelName = ev.Name
	})
}

// ShowMessage displays a transient HUD message.
func ShowMessage(w donburi.World, msg string) {
	hud := GetOrCreateHUD(w)
	hud.Message = msg
	hud.MessageTimer = cfg.HUD.MessageDuration
}

// UpdateHUD expires the transient message. Time stands still while paused.
func UpdateHUD(w donburi.World) {
	if IsPaused(w) {
		return
	}
	hud := GetOrCreateHUD(w)
	if hud.MessageTimer <= 0 {
		return
	}
	hud.MessageTimer -= DeltaTime(w)
	if hud.MessageTimer <= 0 {
		hud.MessageTimer = 0
		hud.Message = ""
	}
}

// GetOrCreateHUD returns the singleton HUD component, creating if needed.
func GetOrCreateHUD(w donburi.World) *components.HUDData {
	return components.HUD.Get(GetOrCreateSession(w))
}

func deathText(n int) string {
	return fmt.Sprintf("Deaths: %d", n)
}
