package bottlecap

import (
	"github.com/meghashyamc/flickcap/geometry"
)

// keepInBounds keeps a cap of the given half extent inside bounds, bouncing the
// velocity of every axis that crossed an edge. Both bounds and state are in
// local coordinates. It returns the number of axes that bounced.
func keepInBounds(s *State, bounds geometry.Rect, half geometry.Vector, damping float64) int {
	bounces := 0
	if reflectAxis(&s.Position.X, &s.Velocity.X, bounds.Min.X+half.X, bounds.Max.X-half.X, damping) {
		bounces++
	}
	if reflectAxis(&s.Position.Y, &s.Velocity.Y, bounds.Min.Y+half.Y, bounds.Max.Y-half.Y, damping) {
		bounces++
	}
	return bounces
}

// reflectAxis clamps pos into [lo, hi]. The comparison uses the exact value
// the clamp assigns, so a corrected cap is never pushed again.
func reflectAxis(pos, vel *float64, lo, hi, damping float64) bool {
	if lo > hi {
		// Cap is wider than the surface on this axis.
		mid := (lo + hi) / 2
		*pos = mid
		*vel = 0
		return false
	}

	switch {
	case *pos < lo:
		*pos = lo
	case *pos > hi:
		*pos = hi
	default:
		return false
	}

	*vel = -*vel * damping
	return true
}
