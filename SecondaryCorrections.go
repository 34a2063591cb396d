package go_ballisticsolver

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//Stability is the advisory classification of the gyroscopic stability factor
type Stability byte

//StabilityStable means Sg is 1.4 or more
const StabilityStable Stability = 0

//StabilityMarginal means Sg is between 1.0 and 1.4
const StabilityMarginal Stability = 1

//StabilityUnstable means Sg is below 1.0
const StabilityUnstable Stability = 2

const cMarginalStability float64 = 1.4
const cMinimumStability float64 = 1.0

//ClassifyStability classifies the Miller stability factor
func ClassifyStability(sg float64) Stability {
	switch {
	case sg >= cMarginalStability:
		return StabilityStable
	case sg >= cMinimumStability:
		return StabilityMarginal
	default:
		return StabilityUnstable
	}
}

func (s Stability) String() string {
	switch s {
	case StabilityStable:
		return "stable"
	case StabilityMarginal:
		return "marginal"
	default:
		return "unstable"
	}
}

//calculateStabilityFactor is the Miller twist rule with velocity and atmosphere corrections
func calculateStabilityFactor(bullet Projectile, twist TwistInfo, muzzleVelocity unit.Velocity, atmosphere Atmosphere) float64 {
	var weight float64 = bullet.BulletWeight().In(unit.WeightGrain)
	var diameter float64 = bullet.BulletDiameter().In(unit.DistanceInch)
	var calibers float64 = twist.Twist().In(unit.DistanceInch) / diameter
	var length float64 = bullet.BulletLength().In(unit.DistanceInch) / diameter

	var sg = 30 * weight / (calibers * calibers * math.Pow(diameter, 3) * length * (1 + length*length))
	var fv = math.Cbrt(muzzleVelocity.In(unit.VelocityFPS) / 2800)

	var ft float64 = atmosphere.Temperature().In(unit.TemperatureFahrenheit)
	var pt float64 = atmosphere.Pressure().In(unit.PressureInHg)
	var ftp = ((ft + 460) / (59 + 460)) * (29.92 / pt)

	return sg * fv * ftp
}

//spinDrift returns the lateral drift in meters after the time of flight specified (Litz).
//Right twist drifts to the right.
func (c PhysicsContext) spinDrift(time float64) float64 {
	inches := 1.25 * (c.stabilityFactor + 1.2) * math.Pow(time, 1.83)
	return c.twistSign * unit.MustCreateDistance(inches, unit.DistanceInch).Meters()
}

//aerodynamicJump returns the vertical deflection in meters at the distance specified
//caused by the cross wind (Litz: 0.01·Sg - 0.0024·L + 0.032 MOA per mph).
//With a right twist the wind from the right throws the projectile down.
func (c PhysicsContext) aerodynamicJump(distance float64) float64 {
	if c.windCross == 0 {
		return 0
	}
	perMph := 0.01*c.stabilityFactor - 0.0024*c.lengthCalibers + 0.032
	crossMph := unit.MustCreateVelocity(c.windCross, unit.VelocityMPS).In(unit.VelocityMPH)
	angle := unit.MustCreateAngular(perMph*crossMph, unit.AngularMOA).Radians()
	return -c.twistSign * angle * distance
}

//applySecondaryCorrections adds spin drift and aerodynamic jump to the raw
//vertical and lateral offsets
func (c PhysicsContext) applySecondaryCorrections(y, z, time, distance float64) (float64, float64) {
	return y + c.aerodynamicJump(distance), z + c.spinDrift(time)
}
