package unit

//DistanceInch is inches
const DistanceInch byte = 10

//DistanceFoot is feet
const DistanceFoot byte = 11

//DistanceYard is yards
const DistanceYard byte = 12

//DistanceMillimeter is millimeters
const DistanceMillimeter byte = 15

//DistanceCentimeter is centimeters
const DistanceCentimeter byte = 16

//DistanceMeter is meters, the base unit of distance
const DistanceMeter byte = 17

//DistanceKilometer is kilometers
const DistanceKilometer byte = 18

const metersPerInch = 0.0254

var distanceUnits = quantity{
	name: "Distance",
	units: map[byte]conversion{
		DistanceInch:       linear("in", 2, metersPerInch),
		DistanceFoot:       linear("ft", 2, 12*metersPerInch),
		DistanceYard:       linear("yd", 1, 36*metersPerInch),
		DistanceMillimeter: linear("mm", 1, 0.001),
		DistanceCentimeter: linear("cm", 1, 0.01),
		DistanceMeter:      linear("m", 2, 1),
		DistanceKilometer:  linear("km", 3, 1000),
	},
}

//Distance is a length kept in meters
type Distance struct {
	value        float64
	defaultUnits byte
}

//CreateDistance creates a distance in one of Distance* units
func CreateDistance(value float64, units byte) (Distance, error) {
	v, err := distanceUnits.toBase(value, units)
	if err != nil {
		return Distance{}, err
	}
	return Distance{value: v, defaultUnits: units}, nil
}

//MustCreateDistance is CreateDistance which panics on unknown units
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the distance in the units specified or an error for unknown units
func (v Distance) Value(units byte) (float64, error) {
	return distanceUnits.fromBase(v.value, units)
}

//Convert returns the same distance printed in other units
func (v Distance) Convert(units byte) Distance {
	v.defaultUnits = units
	return v
}

//In returns the distance in the units specified, 0 for unknown units
func (v Distance) In(units byte) float64 {
	return distanceUnits.in(v.value, units)
}

//Meters returns the distance in meters
func (v Distance) Meters() float64 {
	return v.value
}

func (v Distance) String() string {
	return distanceUnits.format(v.value, v.defaultUnits)
}

//Units returns the units the distance is printed in
func (v Distance) Units() byte {
	return v.defaultUnits
}
