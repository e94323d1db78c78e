package systems

import (
	"github.com/automoto/iwanna/components"
	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/automoto/iwanna/systems/factory"
	"github.com/automoto/iwanna/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// LoadLevel replaces whatever level the world holds with lvl: collision
// space, walls, hazards, save points, the player at the spawn point and a
// checkpoint manager defaulting to that spawn. Validation problems are logged
// but never stop the load.
func LoadLevel(w donburi.World, lvl *leveldata.Level) {
	if lvl == nil {
		logger.Log.Warn("LoadLevel: nil level")
		return
	}

	log := logger.Log.WithField("levelName", lvl.Name)
	if issues := lvl.Validate(); len(issues) > 0 {
		log.WithField("issues", len(issues)).Warn("level has validation issues")
		for _, issue := range issues {
			log.Debug(issue.String())
		}
	}

	unloadLevel(w)

	factory.CreateLevel(w, lvl)

	tileSize := lvl.TileSize
	if tileSize <= 0 {
		tileSize = cfg.Game.TileSize
	}
	factory.CreateSpace(w, lvl.PixelWidth(), lvl.PixelHeight(), tileSize, tileSize)

	// Several tiles may share a cell; the first one decides solidity.
	seen := make(map[leveldata.Cell]bool, len(lvl.Tiles))
	walls := 0
	for _, tile := range lvl.Tiles {
		if seen[tile.Cell] {
			continue
		}
		seen[tile.Cell] = true
		if !tile.Type.Solid() {
			continue
		}
		origin := lvl.CellOrigin(tile.Cell)
		factory.CreateWall(w, origin.X, origin.Y, float64(tileSize), float64(tileSize))
		walls++
	}

	for _, h := range lvl.Hazards {
		factory.CreateHazard(w, h)
	}
	for _, sp := range lvl.SavePoints {
		factory.CreateSavePoint(w, sp)
	}

	spawn := math.Vec2{X: lvl.Spawn.X, Y: lvl.Spawn.Y}
	factory.CreateCheckpointManager(w, spawn)
	settleGrounded(factory.CreatePlayer(w, spawn.X, spawn.Y))

	if _, ok := components.Camera.First(w); !ok {
		factory.CreateCamera(w)
	}
	SnapCamera(w)

	GetOrCreateClock(w)
	GetOrCreateScheduler(w)
	if IsPaused(w) {
		TogglePause(w)
	}

	setDeathCount(w, 0)
	components.LevelLoaded.Publish(w, components.LevelLoadedEvent{Name: lvl.Name})

	log.WithFields(logrus.Fields{
		"walls":      walls,
		"hazards":    len(lvl.Hazards),
		"savePoints": len(lvl.SavePoints),
	}).Info("level loaded")
}

// unloadLevel removes every level entity and cancels pending actions so
// nothing scheduled for the old level runs in the new one.
func unloadLevel(w donburi.World) {
	CancelAllScheduled(w)

	var doomed []donburi.Entity
	collect := func(e *donburi.Entry) { doomed = append(doomed, e.Entity()) }
	components.Object.Each(w, collect)
	components.Space.Each(w, collect)
	components.Level.Each(w, collect)
	components.CheckpointManager.Each(w, collect)

	for _, ent := range doomed {
		if w.Valid(ent) {
			w.Remove(ent)
		}
	}
}

// RestartLevel puts the loaded level back to its initial state: pending
// actions cancelled, death count zeroed, checkpoint back at the spawn point,
// save points and hazards reset, the player respawned and the game unpaused.
func RestartLevel(w donburi.World) {
	CancelAllScheduled(w)
	setDeathCount(w, 0)
	ResetCheckpoint(w)
	ResetSavePoints(w)
	ResetHazards(w)

	if e, ok := PlayerEntry(w); ok {
		RespawnPlayer(w, e)
	}
	SnapCamera(w)

	if IsPaused(w) {
		TogglePause(w)
	}
	_ = SaveGameProgress(w)

	name := ""
	if lvl, ok := CurrentLevel(w); ok {
		name = lvl.Name
	}
	logger.Log.WithField("levelName", name).Info("level restarted")
}

// UpdateRestart restarts the level on the restart action.
func UpdateRestart(w donburi.World) {
	if GetAction(GetOrCreateInput(w), cfg.ActionRestart).JustPressed {
		RestartLevel(w)
	}
}

// CaptureLevel reads the live placements back into a level record: the
// loaded level's metadata and tiles with hazards and save points as they
// are now.
func CaptureLevel(w donburi.World) *leveldata.Level {
	out := leveldata.New("")
	if lvl, ok := CurrentLevel(w); ok {
		out.ID = lvl.ID
		out.Name = lvl.Name
		out.Description = lvl.Description
		out.Width, out.Height, out.TileSize = lvl.Width, lvl.Height, lvl.TileSize
		out.Background = lvl.Background
		out.Tiles = append(out.Tiles, lvl.Tiles...)
	}
	if mgr, ok := CheckpointManager(w); ok {
		out.Spawn = leveldata.Point{X: mgr.Default.X, Y: mgr.Default.Y}
	}

	tags.Hazard.Each(w, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		path := components.WaypointPath.Get(e)

		h := hazard.Placed
		h.Position = leveldata.Point{X: hazard.Origin.X, Y: hazard.Origin.Y}
		h.Type = hazard.Type
		h.Disabled = !hazard.Active
		h.Moving = path.Moving
		h.PingPong = !path.Loop
		h.Speed = path.Speed
		h.Waypoints = nil
		for _, p := range path.Points {
			h.Waypoints = append(h.Waypoints, leveldata.Point{X: p.X, Y: p.Y})
		}
		out.Hazards = append(out.Hazards, h)
	})

	tags.SavePoint.Each(w, func(e *donburi.Entry) {
		sp := components.SavePoint.Get(e)
		out.SavePoints = append(out.SavePoints, leveldata.SavePointPlacement{
			Position:   leveldata.Point{X: sp.Position.X, Y: sp.Position.Y},
			Active:     sp.Active,
			OneTimeUse: sp.OneTimeUse,
		})
	})

	return out
}

// CurrentLevel returns the loaded level record.
func CurrentLevel(w donburi.World) (*leveldata.Level, bool) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	levelData := components.Level.Get(levelEntry)
	return levelData.Current, levelData.Current != nil
}

// PlayerEntry returns the player entity.
func PlayerEntry(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}
