package main

import (
	"errors"
	"flag"
	"image"

	"github.com/automoto/iwanna/assets"
	"github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/fonts"
	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/scenes"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/automoto/iwanna/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if err := systems.SaveSettings(&systems.SavedSettings{Fullscreen: fullscreen}); err != nil {
			logger.Log.Warnf("Could not save settings: %v", err)
		}
	}

	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", "", "play a single level file (.yaml or .tmx) instead of the bundled set")
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	debug := flag.Bool("debug", false, "draw collision boxes and hazard paths")
	resume := flag.Bool("continue", false, "resume from the last saved checkpoint")
	flag.Parse()

	logger.Init()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			logger.Log.Fatalf("Failed to load config: %v", err)
		}
	}
	config.Debug.DrawHitboxes = *debug

	if err := fonts.LoadDefaults(); err != nil {
		logger.Log.Fatalf("Failed to load fonts: %v", err)
	}

	// Persistence is optional; the game runs without it.
	if err := systems.InitPersistence(config.Game.AppName); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			ebiten.SetFullscreen(saved.Fullscreen)
		}
	}

	g := &Game{}
	catalog := &scenes.Catalog{}

	if *levelPath != "" {
		lvl, err := leveldata.LoadFile(*levelPath)
		if err != nil {
			logger.Log.Fatalf("Failed to load level: %v", err)
		}
		for _, issue := range lvl.Validate() {
			logger.Log.WithField("levelName", lvl.Name).Warn(issue.String())
		}
		g.scene = scenes.NewPlatformerScene(g, catalog, lvl)
	} else {
		catalog.Levels, _ = assets.MustLoadLevels()
		g.scene = startScene(g, catalog, *resume)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("I Wanna")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Game.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.Fatal(err)
	}
}

// startScene opens the level menu, or jumps straight back into the saved
// level when resume is set and progress exists.
func startScene(g *Game, catalog *scenes.Catalog, resume bool) Scene {
	if resume {
		p, err := systems.LoadGameProgress()
		switch {
		case err != nil:
			logger.Log.Warnf("Could not load saved progress: %v", err)
		case p == nil:
			logger.Log.Info("No saved progress; starting from the menu")
		default:
			if idx, ok := catalog.Find(p.Level); ok {
				return scenes.NewPlatformerSceneWithProgress(g, catalog, catalog.Levels[idx], p)
			}
			logger.Log.WithField("levelName", p.Level).Warn("Saved level not found")
		}
	}
	return scenes.NewMenuScene(g, catalog)
}
