package unit

//VelocityMPS is meters per second, the base unit of velocity
const VelocityMPS byte = 60

//VelocityKMH is kilometers per hour
const VelocityKMH byte = 61

//VelocityFPS is feet per second
const VelocityFPS byte = 62

//VelocityMPH is miles per hour
const VelocityMPH byte = 63

const metersPerFoot = 0.3048
const metersPerMile = 1609.344

var velocityUnits = quantity{
	name: "Velocity",
	units: map[byte]conversion{
		VelocityMPS: linear("m/s", 1, 1),
		VelocityKMH: linear("km/h", 1, 1/3.6),
		VelocityFPS: linear("ft/s", 1, metersPerFoot),
		VelocityMPH: linear("mph", 1, metersPerMile/3600),
	},
}

//Velocity is a speed kept in m/s
type Velocity struct {
	value        float64
	defaultUnits byte
}

//CreateVelocity creates a velocity in one of Velocity* units
func CreateVelocity(value float64, units byte) (Velocity, error) {
	v, err := velocityUnits.toBase(value, units)
	if err != nil {
		return Velocity{}, err
	}
	return Velocity{value: v, defaultUnits: units}, nil
}

//MustCreateVelocity is CreateVelocity which panics on unknown units
func MustCreateVelocity(value float64, units byte) Velocity {
	v, err := CreateVelocity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the velocity in the units specified or an error for unknown units
func (v Velocity) Value(units byte) (float64, error) {
	return velocityUnits.fromBase(v.value, units)
}

//Convert returns the same velocity printed in other units
func (v Velocity) Convert(units byte) Velocity {
	v.defaultUnits = units
	return v
}

//In returns the velocity in the units specified, 0 for unknown units
func (v Velocity) In(units byte) float64 {
	return velocityUnits.in(v.value, units)
}

//MPS returns the velocity in meters per second
func (v Velocity) MPS() float64 {
	return v.value
}

func (v Velocity) String() string {
	return velocityUnits.format(v.value, v.defaultUnits)
}

//Units returns the units the velocity is printed in
func (v Velocity) Units() byte {
	return v.defaultUnits
}
