package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/systems"
	"github.com/automoto/iwanna/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var levelKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// MenuScene lists the bundled levels
type MenuScene struct {
	ui           *ui.LevelSelectUI
	sceneChanger SceneChanger
	catalog      *Catalog
	next         interface{}
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, catalog *Catalog) *MenuScene {
	return &MenuScene{sceneChanger: sc, catalog: catalog}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.UI.Update()

	for i, key := range levelKeys {
		if i < len(ms.catalog.Levels) && inpututil.IsKeyJustPressed(key) {
			ms.selectLevel(i)
		}
	}

	// Switch after the UI update so handlers never run against a stale scene.
	if ms.next != nil {
		ms.sceneChanger.ChangeScene(ms.next)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.ui == nil {
		return
	}
	ms.ui.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	var onContinue func()
	if p, err := systems.LoadGameProgress(); err != nil {
		logger.Log.Warnf("Could not load saved progress: %v", err)
	} else if p != nil {
		if idx, ok := ms.catalog.Find(p.Level); ok {
			onContinue = func() {
				ms.next = NewPlatformerSceneWithProgress(ms.sceneChanger, ms.catalog, ms.catalog.Levels[idx], p)
			}
		}
	}

	ms.ui = ui.NewLevelSelectUI(ms.catalog.Levels, ms.selectLevel, onContinue, ms.sceneChanger.Quit)
}

func (ms *MenuScene) selectLevel(index int) {
	ms.next = NewPlatformerScene(ms.sceneChanger, ms.catalog, ms.catalog.Levels[index])
}
