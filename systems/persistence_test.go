package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/yohamta/donburi/features/math"
)

type memoryStore struct {
	items map[string][]byte
	fail  bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[string][]byte{}}
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	if m.fail {
		return nil, errors.New("disk on fire")
	}
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	if m.fail {
		return errors.New("disk on fire")
	}
	m.items[key] = data
	return nil
}

func useStore(t *testing.T, s ProgressStore) {
	t.Helper()
	SetProgressStore(s)
	t.Cleanup(func() { SetProgressStore(nil) })
}

func TestProgressSavedOnCheckpoint(t *testing.T) {
	lvl := newFloorLevel()
	lvl.AddSavePoint(leveldata.Point{X: 64, Y: standingY})
	w := newTestWorld(t, lvl)
	st := newMemoryStore()
	useStore(t, st)

	step(w, 1, cfg.ActionSuicide)
	step(w, cfg.Game.TPS)
	step(w, cfg.Game.TPS, cfg.ActionMoveRight)

	p, err := LoadGameProgress()
	if err != nil || p == nil {
		t.Fatalf("LoadGameProgress = %v, %v", p, err)
	}
	want := SavedGameProgress{Level: "test", CheckpointX: 64, CheckpointY: standingY, DeathCount: 1}
	if *p != want {
		t.Errorf("progress = %+v, want %+v", *p, want)
	}

	if err := ClearGameProgress(); err != nil {
		t.Fatalf("ClearGameProgress: %v", err)
	}
	if p, _ := LoadGameProgress(); p != nil {
		t.Errorf("progress after clear = %+v, want nil", p)
	}
}

func TestApplyGameProgress(t *testing.T) {
	w := newTestWorld(t, newFloorLevel())

	if ApplyGameProgress(w, &SavedGameProgress{Level: "other", CheckpointX: 100}) {
		t.Error("progress from another level was applied")
	}
	if ApplyGameProgress(w, nil) {
		t.Error("nil progress was applied")
	}

	p := &SavedGameProgress{Level: "test", CheckpointX: 100, CheckpointY: standingY, DeathCount: 7}
	if !ApplyGameProgress(w, p) {
		t.Fatal("matching progress not applied")
	}
	if got := GetCheckpoint(w); got != (math.Vec2{X: 100, Y: standingY}) {
		t.Errorf("checkpoint = %+v", got)
	}
	if n := DeathCount(w); n != 7 {
		t.Errorf("death count = %d, want 7", n)
	}
	if x, _ := playerPos(t, w); x != 100 {
		t.Errorf("player x = %v, want 100", x)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	useStore(t, newMemoryStore())

	if s, err := LoadSettings(); s != nil || err != nil {
		t.Fatalf("LoadSettings on empty store = %+v, %v", s, err)
	}
	if err := SaveSettings(&SavedSettings{Fullscreen: true}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	s, err := LoadSettings()
	if err != nil || s == nil || !s.Fullscreen {
		t.Errorf("LoadSettings = %+v, %v", s, err)
	}
}

func TestPersistenceFailuresAreSoft(t *testing.T) {
	st := newMemoryStore()
	st.fail = true
	useStore(t, st)

	if s, err := LoadSettings(); s != nil || err != nil {
		t.Errorf("LoadSettings on failing store = %+v, %v", s, err)
	}
	if err := SaveSettings(&SavedSettings{}); err == nil {
		t.Error("SaveSettings on failing store returned nil error")
	}

	st.fail = false
	st.items[progressItem] = []byte("{not json")
	if _, err := LoadGameProgress(); err == nil {
		t.Error("LoadGameProgress on corrupt data returned nil error")
	}
}

func TestProgressAfterRestart(t *testing.T) {
	lvl := newFloorLevel()
	lvl.AddSavePoint(leveldata.Point{X: 64, Y: standingY})
	w := newTestWorld(t, lvl)
	st := newMemoryStore()
	useStore(t, st)

	step(w, cfg.Game.TPS, cfg.ActionMoveRight)
	step(w, 1, cfg.ActionSuicide)
	step(w, 1)
	RestartLevel(w)

	p, err := LoadGameProgress()
	if err != nil || p == nil {
		t.Fatalf("LoadGameProgress = %v, %v", p, err)
	}
	want := SavedGameProgress{Level: "test", CheckpointX: spawnX, CheckpointY: standingY}
	if *p != want {
		t.Fatalf("progress after restart = %+v, want %+v", *p, want)
	}

	resumed := newTestWorld(t, lvl)
	if !ApplyGameProgress(resumed, p) {
		t.Fatal("progress not applied")
	}
	if x, _ := playerPos(t, resumed); x != spawnX {
		t.Errorf("continued at x = %v, want the spawn point %v", x, spawnX)
	}
	if n := DeathCount(resumed); n != 0 {
		t.Errorf("death count = %d, want 0", n)
	}
}

func TestProgressCountsDeathsAfterCheckpoint(t *testing.T) {
	lvl := newFloorLevel()
	lvl.AddSavePoint(leveldata.Point{X: 64, Y: standingY})
	w := newTestWorld(t, lvl)
	useStore(t, newMemoryStore())

	step(w, cfg.Game.TPS, cfg.ActionMoveRight)
	for i := 0; i < 3; i++ {
		step(w, 1, cfg.ActionSuicide)
		step(w, cfg.Game.TPS)
	}
	if n := DeathCount(w); n != 3 {
		t.Fatalf("live death count = %d, want 3", n)
	}

	p, err := LoadGameProgress()
	if err != nil || p == nil {
		t.Fatalf("LoadGameProgress = %v, %v", p, err)
	}
	want := SavedGameProgress{Level: "test", CheckpointX: 64, CheckpointY: standingY, DeathCount: 3}
	if *p != want {
		t.Errorf("progress = %+v, want %+v", *p, want)
	}
}
