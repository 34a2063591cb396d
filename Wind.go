package go_ballisticsolver

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//WindInfo keeps the wind speed and the clock direction the wind blows from.
//
//12 o'clock is the wind blowing from the target towards the shooter (head wind),
//3 o'clock is the wind from the shooter's right, 6 o'clock is a tail wind and
//9 o'clock is the wind from the left.
type WindInfo struct {
	velocity unit.Velocity
	clock    float64
}

//CreateNoWind creates a calm wind
func CreateNoWind() WindInfo {
	return WindInfo{velocity: unit.MustCreateVelocity(0, unit.VelocityMPS), clock: 12}
}

//CreateWindInfo creates the wind blowing from the clock direction specified (0..12, 0 is the same as 12)
func CreateWindInfo(velocity unit.Velocity, clock float64) (WindInfo, error) {
	if !(velocity.MPS() >= 0) {
		return WindInfo{}, invalidInput("WindInfo: wind speed %s must not be negative", velocity)
	}
	if !(clock >= 0 && clock <= 12) {
		return WindInfo{}, invalidInput("WindInfo: clock direction %.2f must be in 0..12 range", clock)
	}
	return WindInfo{velocity: velocity, clock: clock}, nil
}

//Velocity returns the wind speed
func (v WindInfo) Velocity() unit.Velocity {
	return v.velocity
}

//Clock returns the clock direction the wind blows from
func (v WindInfo) Clock() float64 {
	return v.clock
}

//Components returns along-bore and cross-range wind components in m/s.
//
//A positive along-bore component is a head wind, a positive cross-range component
//is a wind from the right which pushes the projectile to the left.
func (v WindInfo) Components() (float64, float64) {
	return ResolveWind(v.velocity.MPS(), v.clock)
}

//ResolveWind decomposes the wind speed blowing from the clock direction into
//along-bore and cross-range components (the angle is clock × 30°, 12 o'clock is 0°)
func ResolveWind(speed, clock float64) (float64, float64) {
	angle := math.Mod(clock, 12) * math.Pi / 6
	return speed * math.Cos(angle), speed * math.Sin(angle)
}
