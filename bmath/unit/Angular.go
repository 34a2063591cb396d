package unit

import "math"

//AngularRadian is radians, the base unit of angle
const AngularRadian byte = 0

//AngularDegree is degrees
const AngularDegree byte = 1

//AngularMOA is minutes of angle
const AngularMOA byte = 2

//AngularMil is NATO mils, 6400 per turn
const AngularMil byte = 3

//AngularMRad is milliradians
const AngularMRad byte = 4

//AngularInchesPer100Yd is inches subtended at 100 yards
const AngularInchesPer100Yd byte = 6

//AngularCmPer100M is centimeters subtended at 100 meters
const AngularCmPer100M byte = 7

//MOAPerMRad is the number of minutes of angle in one milliradian (10.8/π ≈ 3.4377)
const MOAPerMRad = 10.8 / math.Pi

//MRadToMOA converts milliradians to minutes of angle
func MRadToMOA(mrad float64) float64 {
	return mrad * MOAPerMRad
}

//MOAToMRad converts minutes of angle to milliradians
func MOAToMRad(moa float64) float64 {
	return moa / MOAPerMRad
}

//subtension is a unit expressed as the size of the angle at a distance
func subtension(name string, size float64) conversion {
	return conversion{
		name:     name,
		accuracy: 2,
		toBase:   func(x float64) float64 { return math.Atan(x / size) },
		fromBase: func(x float64) float64 { return math.Tan(x) * size },
	}
}

var angularUnits = quantity{
	name: "Angular",
	units: map[byte]conversion{
		AngularRadian:         linear("rad", 6, 1),
		AngularDegree:         linear("°", 4, math.Pi/180),
		AngularMOA:            linear("MOA", 2, math.Pi/180/60),
		AngularMil:            linear("mil", 2, math.Pi/3200),
		AngularMRad:           linear("mrad", 2, 0.001),
		AngularInchesPer100Yd: subtension("in/100yd", 3600),
		AngularCmPer100M:      subtension("cm/100m", 10000),
	},
}

//Angular is an angle kept in radians
type Angular struct {
	value        float64
	defaultUnits byte
}

//CreateAngular creates an angle in one of Angular* units
func CreateAngular(value float64, units byte) (Angular, error) {
	v, err := angularUnits.toBase(value, units)
	if err != nil {
		return Angular{}, err
	}
	return Angular{value: v, defaultUnits: units}, nil
}

//MustCreateAngular is CreateAngular which panics on unknown units
func MustCreateAngular(value float64, units byte) Angular {
	v, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the angle in the units specified or an error for unknown units
func (v Angular) Value(units byte) (float64, error) {
	return angularUnits.fromBase(v.value, units)
}

//Convert returns the same angle printed in other units
func (v Angular) Convert(units byte) Angular {
	v.defaultUnits = units
	return v
}

//In returns the angle in the units specified, 0 for unknown units
func (v Angular) In(units byte) float64 {
	return angularUnits.in(v.value, units)
}

//Radians returns the angle in radians
func (v Angular) Radians() float64 {
	return v.value
}

func (v Angular) String() string {
	return angularUnits.format(v.value, v.defaultUnits)
}

//Units returns the units the angle is printed in
func (v Angular) Units() byte {
	return v.defaultUnits
}
