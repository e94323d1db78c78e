package render

import (
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/fonts"
	"github.com/automoto/iwanna/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the death counter, the level name and any transient message.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := systems.GetOrCreateHUD(e.World)
	width := screen.Bounds().Dx()
	margin := int(cfg.HUD.Margin)

	fontFace := fonts.Regular.Get()
	text.Draw(screen, hud.DeathText, fontFace, margin, margin+10, cfg.HUD.TextColor)

	if hud.LevelName != "" {
		textWidth := text.BoundString(fontFace, hud.LevelName).Dx()
		text.Draw(screen, hud.LevelName, fontFace, width-textWidth-margin, margin+10, cfg.HUD.TextColor)
	}

	if hud.Message != "" {
		bold := fonts.Bold.Get()
		textWidth := text.BoundString(bold, hud.Message).Dx()
		text.Draw(screen, hud.Message, bold, (width-textWidth)/2, margin+40, cfg.Yellow)
	}
}

// DrawPause draws the overlay and the pause menu with the selection highlighted.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := systems.GetOrCreatePause(e.World)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()

	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		textWidth := text.BoundString(fontFace, option).Dx()
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "UP/DOWN: Navigate   ENTER: Select   ESC: Resume"
	hintFont := fonts.Small.Get()
	hintWidth := text.BoundString(hintFont, hint).Dx()
	text.Draw(screen, hint, hintFont, int((width-float64(hintWidth))/2), int(height)-12, cfg.Pause.TextColorNormal)
}
