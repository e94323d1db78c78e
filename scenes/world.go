package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/iwanna/input"
	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/render"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/automoto/iwanna/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays one level until the player quits from the pause menu.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	catalog      *Catalog
	level        *leveldata.Level
	progress     *systems.SavedGameProgress
	once         sync.Once
}

// NewPlatformerScene creates a scene for lvl.
func NewPlatformerScene(sc SceneChanger, catalog *Catalog, lvl *leveldata.Level) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, catalog: catalog, level: lvl}
}

// NewPlatformerSceneWithProgress resumes lvl from saved progress.
func NewPlatformerSceneWithProgress(sc SceneChanger, catalog *Catalog, lvl *leveldata.Level, p *systems.SavedGameProgress) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, catalog: catalog, level: lvl, progress: p}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.QuitRequested(ps.ecs.World) {
		if len(ps.catalog.Levels) == 0 {
			ps.sceneChanger.Quit()
			return
		}
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.catalog))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.ecs = ecs.NewECS(systems.NewWorld())

	// One system drives the whole simulation step so ordering stays in one place.
	ps.ecs.AddSystem(func(e *ecs.ECS) {
		pressed, axis := input.Poll()
		systems.FeedInput(e.World, pressed, axis)
		systems.Tick(e.World)
	})

	ps.ecs.AddRenderer(render.LayerWorld, render.DrawLevel)
	ps.ecs.AddRenderer(render.LayerWorld, render.DrawSavePoints)
	ps.ecs.AddRenderer(render.LayerWorld, render.DrawHazards)
	ps.ecs.AddRenderer(render.LayerWorld, render.DrawPlayer)
	ps.ecs.AddRenderer(render.LayerWorld, render.DrawDebug)
	ps.ecs.AddRenderer(render.LayerHUD, render.DrawHUD)
	ps.ecs.AddRenderer(render.LayerHUD, render.DrawPause)

	systems.LoadLevel(ps.ecs.World, ps.level)
	if ps.progress != nil && systems.ApplyGameProgress(ps.ecs.World, ps.progress) {
		logger.Log.WithField("levelName", ps.level.Name).Info("Resumed saved progress")
	}
}
