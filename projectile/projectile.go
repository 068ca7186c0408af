// Package projectile implements the closed-form kinematics of a projectile
// launched from flat ground and landing back at the same height. Air
// resistance is ignored. Angles are taken in degrees, the unit the formulas
// are nearly always quoted in.
package projectile

import "math"

// Gravity is the standard acceleration at the Earth's surface, in m/s².
const Gravity = 9.81

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * (math.Pi / 180.0)
}

// TimeOfFlight returns how long the projectile stays in the air under
// standard gravity, launched at the given speed (m/s) and angle (degrees).
func TimeOfFlight(velocity, angle float64) float64 {
	return TimeOfFlightUnder(velocity, angle, Gravity)
}

// TimeOfFlightUnder is TimeOfFlight with an explicit gravitational
// acceleration, for bodies other than Earth.
func TimeOfFlightUnder(velocity, angle, gravity float64) float64 {
	vy := velocity * math.Sin(Radians(angle))
	return 2.0 * vy / gravity
}

// HorizontalRange returns the ground distance covered during the given
// flight time. Gravity doesn't appear here; it is already folded into the
// flight time.
func HorizontalRange(velocity, angle, time float64) float64 {
	vx := velocity * math.Cos(Radians(angle))
	return vx * time
}

// MaxHeight returns the peak height above the ground under standard gravity.
func MaxHeight(velocity, angle float64) float64 {
	return MaxHeightUnder(velocity, angle, Gravity)
}

// MaxHeightUnder is MaxHeight with an explicit gravitational acceleration.
func MaxHeightUnder(velocity, angle, gravity float64) float64 {
	vy := velocity * math.Sin(Radians(angle))
	return vy * vy / (2.0 * gravity)
}
