package factory

import (
	"testing"

	cfg "github.com/automoto/iwanna/config"
	"github.com/automoto/iwanna/logger"
	"github.com/automoto/iwanna/shared/leveldata"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/yohamta/donburi/features/math"
)

func TestNewWaypointPath(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	tests := []struct {
		name      string
		placement leveldata.HazardPlacement
		wantPts   []math.Vec2
		moving    bool
		loop      bool
		speed     float64
		warn      bool
	}{
		{
			name:      "static spike",
			placement: leveldata.HazardPlacement{Position: leveldata.Point{X: 10, Y: 20}, Type: leveldata.HazardSpikeUp},
			loop:      true,
			speed:     32,
		},
		{
			name: "authored path",
			placement: leveldata.HazardPlacement{
				Position:  leveldata.Point{X: 10, Y: 20},
				Type:      leveldata.HazardSaw,
				Moving:    true,
				PingPong:  true,
				Speed:     48,
				Waypoints: []leveldata.Point{{X: 10, Y: 20}, {X: 60, Y: 20}},
			},
			wantPts: []math.Vec2{{X: 10, Y: 20}, {X: 60, Y: 20}},
			moving:  true,
			speed:   48,
		},
		{
			name:      "moving without waypoints",
			placement: leveldata.HazardPlacement{Position: leveldata.Point{X: 10, Y: 20}, Type: leveldata.HazardSaw, Moving: true},
			wantPts:   []math.Vec2{{X: 10, Y: 20}, {X: 90, Y: 20}},
			moving:    true,
			loop:      true,
			speed:     32,
			warn:      true,
		},
		{
			name:      "moving platform is always moving",
			placement: leveldata.HazardPlacement{Position: leveldata.Point{X: 0, Y: 0}, Type: leveldata.HazardMovingPlatform},
			wantPts:   []math.Vec2{{X: 0, Y: 0}, {X: 80, Y: 0}},
			moving:    true,
			loop:      true,
			speed:     32,
			warn:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := test.NewLocal(logger.Log)
			defer hook.Reset()

			path := NewWaypointPath(tt.placement)

			if path.Moving != tt.moving || path.Loop != tt.loop || path.Speed != tt.speed {
				t.Errorf("path = %+v, want moving=%v loop=%v speed=%v", path, tt.moving, tt.loop, tt.speed)
			}
			if !path.Forward || path.Index != 0 {
				t.Errorf("path starts at index %d forward=%v", path.Index, path.Forward)
			}
			if len(path.Points) != len(tt.wantPts) {
				t.Fatalf("points = %+v, want %+v", path.Points, tt.wantPts)
			}
			for i := range tt.wantPts {
				if path.Points[i] != tt.wantPts[i] {
					t.Errorf("point %d = %+v, want %+v", i, path.Points[i], tt.wantPts[i])
				}
			}

			warned := false
			for _, e := range hook.AllEntries() {
				if e.Level == logrus.WarnLevel {
					warned = true
				}
			}
			if warned != tt.warn {
				t.Errorf("warned = %v, want %v", warned, tt.warn)
			}
		})
	}
}
