package gamemath

import (
	"math"
	"testing"
)

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name         string
		x, y, tx, ty float64
		maxDelta     float64
		wantX, wantY float64
	}{
		{"partial step along x", 0, 0, 10, 0, 2, 2, 0},
		{"clamped at target", 0, 0, 1, 0, 2, 1, 0},
		{"exact arrival", 0, 0, 0, 3, 3, 0, 3},
		{"already there", 5, 5, 5, 5, 1, 5, 5},
		{"diagonal", 0, 0, 3, 4, 2.5, 1.5, 2},
		{"negative direction", 10, 0, 0, 0, 4, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := MoveTowards(tt.x, tt.y, tt.tx, tt.ty, tt.maxDelta)
			if math.Abs(gotX-tt.wantX) > 1e-9 || math.Abs(gotY-tt.wantY) > 1e-9 {
				t.Errorf("MoveTowards() = (%v, %v), want (%v, %v)", gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(12, 10); got != 10 {
		t.Errorf("ClampSpeed(12, 10) = %v", got)
	}
	if got := ClampSpeed(-12, 10); got != -10 {
		t.Errorf("ClampSpeed(-12, 10) = %v", got)
	}
	if got := ClampSpeed(3, 10); got != 3 {
		t.Errorf("ClampSpeed(3, 10) = %v", got)
	}
}

func TestOverlaps(t *testing.T) {
	if !Overlaps(0, 0, 10, 10, 5, 5, 10, 10) {
		t.Error("expected overlapping rectangles")
	}
	if Overlaps(0, 0, 10, 10, 10, 0, 10, 10) {
		t.Error("touching edges should not overlap")
	}
	if Overlaps(0, 0, 10, 10, 20, 20, 1, 1) {
		t.Error("distant rectangles should not overlap")
	}
}
