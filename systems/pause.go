package systems

import (
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/logger"
	"github.com/yohamta/donburi"
)

// UpdatePause handles pause toggle and menu navigation. It runs every tick,
// paused or not.
func UpdatePause(w donburi.World) {
	pause := GetOrCreatePause(w)
	input := GetOrCreateInput(w)

	if GetAction(input, cfg.ActionPause).JustPressed {
		TogglePause(w)
		return
	}

	// Only process menu input while paused
	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuOptionCount)
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		SelectPauseOption(w, pause.SelectedOption)
	}
}

// SelectPauseOption performs a pause menu command. The keyboard menu and the
// pause UI both end up here.
func SelectPauseOption(w donburi.World, option components.PauseMenuOption) {
	pause := GetOrCreatePause(w)
	switch option {
	case components.MenuResume:
		if pause.IsPaused {
			TogglePause(w)
		}
	case components.MenuRestart:
		RestartLevel(w)
	case components.MenuQuit:
		pause.QuitRequested = true
		logger.Log.Info("quit requested")
	}
}

// TogglePause flips the paused flag and publishes GamePaused or GameResumed.
func TogglePause(w donburi.World) {
	pause := GetOrCreatePause(w)
	pause.IsPaused = !pause.IsPaused
	if pause.IsPaused {
		pause.SelectedOption = components.MenuResume
		components.GamePaused.Publish(w, components.GamePausedEvent{})
	} else {
		components.GameResumed.Publish(w, components.GameResumedEvent{})
	}
}

// IsPaused reports whether gameplay is paused.
func IsPaused(w donburi.World) bool {
	return GetOrCreatePause(w).IsPaused
}

// QuitRequested reports whether the player chose Quit from the pause menu.
func QuitRequested(w donburi.World) bool {
	return GetOrCreatePause(w).QuitRequested
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system System) System {
	return func(w donburi.World) {
		if pause := GetOrCreatePause(w); pause.IsPaused {
			return
		}
		system(w)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system System) System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	return components.Pause.Get(GetOrCreateSession(w))
}
