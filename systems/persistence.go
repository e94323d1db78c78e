package systems

import (
	"encoding/json"

	"github.com/automoto/iwanna/components"
	"github.com/automoto/iwanna/logger"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ProgressStore is the subset of *gdata.Manager the game uses.
type ProgressStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const (
	settingsItem = "settings"
	progressItem = "progress"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
}

// SavedGameProgress is written every time a checkpoint is set.
type SavedGameProgress struct {
	Level       string  `json:"level"`
	CheckpointX float64 `json:"checkpointX"`
	CheckpointY float64 `json:"checkpointY"`
	DeathCount  int     `json:"deathCount"`
}

var store ProgressStore

// InitPersistence opens the gdata manager for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Log.Warnf("Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// SetProgressStore replaces the backing store; nil disables persistence.
func SetProgressStore(s ProgressStore) {
	store = s
}

// LoadSettings loads settings from disk. A nil result means no saved settings.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadJSON(settingsItem, &settings)
	if !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveJSON(settingsItem, s)
}

// LoadGameProgress loads saved progress. A nil result means nothing saved.
func LoadGameProgress() (*SavedGameProgress, error) {
	var progress SavedGameProgress
	ok, err := loadJSON(progressItem, &progress)
	if !ok {
		return nil, err
	}
	return &progress, nil
}

// SaveGameProgress stores the current level, checkpoint and death count.
func SaveGameProgress(w donburi.World) error {
	progress := &SavedGameProgress{DeathCount: DeathCount(w)}
	if lvl, ok := CurrentLevel(w); ok {
		progress.Level = lvl.Name
	}
	cp := GetCheckpoint(w)
	progress.CheckpointX, progress.CheckpointY = cp.X, cp.Y
	return saveJSON(progressItem, progress)
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if store == nil {
		return nil
	}
	if err := store.SaveItem(progressItem, nil); err != nil {
		logger.Log.Warnf("Could not clear game progress: %v", err)
		return err
	}
	return nil
}

// ApplyGameProgress resumes saved progress if it belongs to the loaded level:
// the checkpoint and death count are restored and the player respawns there.
func ApplyGameProgress(w donburi.World, p *SavedGameProgress) bool {
	if p == nil {
		return false
	}
	lvl, ok := CurrentLevel(w)
	if !ok || lvl.Name != p.Level {
		return false
	}
	mgr, ok := CheckpointManager(w)
	if !ok {
		return false
	}
	mgr.Current = math.Vec2{X: p.CheckpointX, Y: p.CheckpointY}
	setDeathCount(w, p.DeathCount)
	if e, ok := PlayerEntry(w); ok {
		RespawnPlayer(w, e)
	}
	return true
}

// RegisterPersistence saves progress whenever the checkpoint or the death
// count changes.
func RegisterPersistence(w donburi.World) {
	components.CheckpointSet.Subscribe(w, func(w donburi.World, _ components.CheckpointSetEvent) {
		_ = SaveGameProgress(w)
	})
	components.DeathCountChanged.Subscribe(w, func(w donburi.World, _ components.DeathCountChangedEvent) {
		_ = SaveGameProgress(w)
	})
}

func loadJSON(item string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}

	data, err := store.LoadItem(item)
	if err != nil {
		logger.Log.Warnf("Could not load %s: %v", item, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		logger.Log.Warnf("Could not parse saved %s: %v", item, err)
		return false, err
	}
	return true, nil
}

func saveJSON(item string, v any) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Warnf("Could not serialize %s: %v", item, err)
		return err
	}

	if err := store.SaveItem(item, data); err != nil {
		logger.Log.Warnf("Could not save %s: %v", item, err)
		return err
	}
	return nil
}
