package go_ballisticsolver

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//Timespan is a flight time
type Timespan struct {
	seconds float64
}

//TotalSeconds returns the flight time in seconds
func (v Timespan) TotalSeconds() float64 {
	return v.seconds
}

//Seconds returns the seconds part of the flight time
func (v Timespan) Seconds() float64 {
	return math.Mod(math.Floor(v.seconds), 60)
}

//Minutes returns the minutes part of the flight time
func (v Timespan) Minutes() float64 {
	return math.Mod(math.Floor(v.seconds/60), 60)
}

//TrajectorySample is the state of the bullet at one distance
type TrajectorySample struct {
	time              Timespan
	distance          unit.Distance
	velocity          unit.Velocity
	mach              float64
	drop              unit.Distance
	elevation         Adjustment
	windage           unit.Distance
	windageAdjustment Adjustment
	energy            unit.Energy
	optimalGameWeight unit.Weight
}

//Time returns the time of flight
func (v TrajectorySample) Time() Timespan {
	return v.time
}

//Distance returns the distance measured from the muzzle along the line of sight
func (v TrajectorySample) Distance() unit.Distance {
	return v.distance
}

//Velocity returns the bullet speed
func (v TrajectorySample) Velocity() unit.Velocity {
	return v.velocity
}

//MachVelocity returns the bullet speed as a Mach number
func (v TrajectorySample) MachVelocity() float64 {
	return v.mach
}

//Drop returns the bullet position relative to the line of sight, measured
//perpendicular to it. Negative is below the line.
func (v TrajectorySample) Drop() unit.Distance {
	return v.drop
}

//Elevation returns the vertical sight correction which compensates the drop
func (v TrajectorySample) Elevation() Adjustment {
	return v.elevation
}

//Windage returns the lateral displacement of the projectile, positive to the right
func (v TrajectorySample) Windage() unit.Distance {
	return v.windage
}

//WindageAdjustment returns the horizontal sight correction which compensates the windage
func (v TrajectorySample) WindageAdjustment() Adjustment {
	return v.windageAdjustment
}

//Energy returns the kinetic energy
func (v TrajectorySample) Energy() unit.Energy {
	return v.energy
}

//OptimalGameWeight returns the heaviest game the remaining energy is
//recommended for (Matunas formula)
func (v TrajectorySample) OptimalGameWeight() unit.Weight {
	return v.optimalGameWeight
}

//SolutionResult is the firing solution for the target distance
type SolutionResult struct {
	sample          TrajectorySample
	zeroAngle       unit.Angular
	stabilityFactor float64
}

//Sample returns the trajectory point at the target
func (v SolutionResult) Sample() TrajectorySample {
	return v.sample
}

//Elevation returns the vertical correction to hit the target
func (v SolutionResult) Elevation() Adjustment {
	return v.sample.elevation
}

//Windage returns the horizontal correction to hit the target
func (v SolutionResult) Windage() Adjustment {
	return v.sample.windageAdjustment
}

//ZeroAngle returns the angle between the bore and the line of sight for the zero distance
func (v SolutionResult) ZeroAngle() unit.Angular {
	return v.zeroAngle
}

//StabilityFactor returns the Miller gyroscopic stability factor
func (v SolutionResult) StabilityFactor() float64 {
	return v.stabilityFactor
}

//Stability returns the classification of the stability factor
func (v SolutionResult) Stability() Stability {
	return ClassifyStability(v.stabilityFactor)
}
