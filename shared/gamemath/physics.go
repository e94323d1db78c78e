package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// MoveTowards moves (x, y) toward (tx, ty) by at most maxDelta and never
// overshoots the target.
func MoveTowards(x, y, tx, ty, maxDelta float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist <= maxDelta || dist == 0 {
		return tx, ty
	}
	return x + dx/dist*maxDelta, y + dy/dist*maxDelta
}

// Overlaps reports whether two axis-aligned rectangles intersect. Touching
// edges do not count as an overlap.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
