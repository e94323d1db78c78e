package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuRestart
	MenuQuit
	MenuOptionCount
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	QuitRequested  bool // read by the client to end the game loop
}

var Pause = donburi.NewComponentType[PauseData]()
