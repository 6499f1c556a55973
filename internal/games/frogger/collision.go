package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// hitsVehicle reports whether the frog overlaps any vehicle.
func hitsVehicle(frog core.RectF, vehicles []Mover) bool {
	for _, v := range vehicles {
		if frog.Intersects(v.Rect()) {
			return true
		}
	}
	return false
}

// firstPlatform returns the first platform the frog overlaps.
// When the frog straddles two platforms the earlier one in the slice wins
// and supplies the drift.
func firstPlatform(frog core.RectF, platforms []Mover) (Mover, bool) {
	for _, p := range platforms {
		if frog.Intersects(p.Rect()) {
			return p, true
		}
	}
	return Mover{}, false
}
