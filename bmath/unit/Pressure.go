package unit

//PressureHPa is hectopascals (millibars), the base unit of pressure
const PressureHPa byte = 40

//PressureInHg is inches of mercury
const PressureInHg byte = 41

//PressureMmHg is millimeters of mercury
const PressureMmHg byte = 42

//PressurePSI is pounds per square inch
const PressurePSI byte = 44

const hPaPerMmHg = 1.333223874
const hPaPerPSI = 68.94757293

var pressureUnits = quantity{
	name: "Pressure",
	units: map[byte]conversion{
		PressureHPa:  linear("hPa", 1, 1),
		PressureInHg: linear("inHg", 2, 25.4*hPaPerMmHg),
		PressureMmHg: linear("mmHg", 0, hPaPerMmHg),
		PressurePSI:  linear("psi", 3, hPaPerPSI),
	},
}

//Pressure is an atmospheric pressure kept in hectopascals
type Pressure struct {
	value        float64
	defaultUnits byte
}

//CreatePressure creates a pressure in one of Pressure* units
func CreatePressure(value float64, units byte) (Pressure, error) {
	v, err := pressureUnits.toBase(value, units)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{value: v, defaultUnits: units}, nil
}

//MustCreatePressure is CreatePressure which panics on unknown units
func MustCreatePressure(value float64, units byte) Pressure {
	v, err := CreatePressure(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the pressure in the units specified or an error for unknown units
func (v Pressure) Value(units byte) (float64, error) {
	return pressureUnits.fromBase(v.value, units)
}

//Convert returns the same pressure printed in other units
func (v Pressure) Convert(units byte) Pressure {
	v.defaultUnits = units
	return v
}

//In returns the pressure in the units specified, 0 for unknown units
func (v Pressure) In(units byte) float64 {
	return pressureUnits.in(v.value, units)
}

func (v Pressure) String() string {
	return pressureUnits.format(v.value, v.defaultUnits)
}

//Units returns the units the pressure is printed in
func (v Pressure) Units() byte {
	return v.defaultUnits
}
