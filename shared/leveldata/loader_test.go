package leveldata

import (
	"os"
	"testing"
)

func TestLoadTMX(t *testing.T) {
	l, err := LoadTMX(os.DirFS("testdata"), "small.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}

	if l.Name != "small" {
		t.Errorf("name = %q, want small", l.Name)
	}
	if l.Width != 4 || l.Height != 3 || l.TileSize != 16 {
		t.Errorf("size = %dx%d@%d, want 4x3@16", l.Width, l.Height, l.TileSize)
	}

	if len(l.Tiles) != 5 {
		t.Fatalf("tiles = %d, want 5", len(l.Tiles))
	}
	ledge, ok := l.TileAt(Cell{X: 2, Y: 1})
	if !ok || ledge.Type != TilePlatform {
		t.Errorf("TileAt(2,1) = %+v %v, want Platform", ledge, ok)
	}
	floor, ok := l.TileAt(Cell{X: 0, Y: 2})
	if !ok || floor.Type != TileGround {
		t.Errorf("TileAt(0,2) = %+v %v, want Ground", floor, ok)
	}

	if l.Spawn != (Point{X: 8, Y: 24}) {
		t.Errorf("spawn = %+v", l.Spawn)
	}

	if len(l.Hazards) != 2 {
		t.Fatalf("hazards = %d, want 2", len(l.Hazards))
	}
	if l.Hazards[0].Type != HazardSpikeUp || l.Hazards[0].Moving {
		t.Errorf("spike = %+v", l.Hazards[0])
	}
	saw := l.Hazards[1]
	if saw.Type != HazardSaw || !saw.Moving || !saw.PingPong || saw.Speed != 24 {
		t.Errorf("saw = %+v", saw)
	}
	wantPath := []Point{{X: 16, Y: 8}, {X: 48, Y: 8}, {X: 48, Y: 0}}
	if len(saw.Waypoints) != len(wantPath) {
		t.Fatalf("saw waypoints = %+v, want %+v", saw.Waypoints, wantPath)
	}
	for i := range wantPath {
		if saw.Waypoints[i] != wantPath[i] {
			t.Errorf("waypoint %d = %+v, want %+v", i, saw.Waypoints[i], wantPath[i])
		}
	}

	if len(l.SavePoints) != 1 {
		t.Fatalf("save points = %d, want 1", len(l.SavePoints))
	}
	if sp := l.SavePoints[0]; !sp.Active || !sp.OneTimeUse {
		t.Errorf("save point = %+v", sp)
	}
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(os.DirFS("testdata"), ".")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 2 || names[0] != "first" || names[1] != "small" {
		t.Fatalf("names = %v, want [first small]", names)
	}
	if levels["first"].Name != "First Steps" {
		t.Errorf("first level name = %q", levels["first"].Name)
	}
}

func TestLoadAllEmptyDir(t *testing.T) {
	if _, _, err := LoadAll(os.DirFS(t.TempDir()), "."); err == nil {
		t.Fatal("LoadAll on empty dir succeeded, want error")
	}
}
