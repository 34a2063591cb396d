package go_ballisticsolver

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//cPropellantReferenceTemperature is the temperature (°C) the reference muzzle velocity is measured at
const cPropellantReferenceTemperature float64 = 15.0

//ResolveMuzzleConditions scales the reference muzzle velocity and ballistic coefficient
//to the actual bullet weight and applies the propellant temperature sensitivity.
//
//The velocity is scaled isoenergetically (v·√(w0/w)) and the coefficient by sectional
//density (bc·w/w0). When the weights are equal both values are returned unchanged.
//sensitivity is the muzzle velocity change in m/s per °C away from 15°C.
func ResolveMuzzleConditions(referenceVelocity unit.Velocity, referenceBC BallisticCoefficient,
	referenceWeight, weight unit.Weight, temperature unit.Temperature, sensitivity float64) (unit.Velocity, BallisticCoefficient) {

	v0 := referenceVelocity.MPS()
	bc := referenceBC

	w0 := referenceWeight.In(unit.WeightKilogram)
	w := weight.In(unit.WeightKilogram)
	if w0 != w {
		v0 = v0 * math.Sqrt(w0/w)
		bc = referenceBC.scaled(referenceBC.Value() * (w / w0))
	}

	if sensitivity != 0 {
		v0 += (temperature.In(unit.TemperatureCelsius) - cPropellantReferenceTemperature) * sensitivity
	}

	return unit.MustCreateVelocity(v0, unit.VelocityMPS).Convert(referenceVelocity.Units()), bc
}
