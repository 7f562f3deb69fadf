// Package geom provides the small amount of math the simulation needs.
// It has no dependencies so game logic stays pure and testable.
package geom

import "math"

// Clamp restricts v to [lo, hi]. Requires lo <= hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Velocity converts a scalar speed and an angle off the horizontal into a
// velocity vector.
func Velocity(speed, angle float64) (vx, vy float64) {
	return speed * math.Cos(angle), speed * math.Sin(angle)
}

// Speed returns the Euclidean norm of a velocity vector.
func Speed(vx, vy float64) float64 {
	return math.Sqrt(vx*vx + vy*vy)
}
