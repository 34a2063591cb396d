package unit

//TemperatureFahrenheit is degrees Fahrenheit
const TemperatureFahrenheit byte = 50

//TemperatureCelsius is degrees Celsius, the base unit of temperature
const TemperatureCelsius byte = 51

//TemperatureKelvin is kelvins
const TemperatureKelvin byte = 52

//offset scales do not go through zero so they are not linear
var temperatureUnits = quantity{
	name: "Temperature",
	units: map[byte]conversion{
		TemperatureCelsius: linear("°C", 1, 1),
		TemperatureFahrenheit: {
			name:     "°F",
			accuracy: 1,
			toBase:   func(x float64) float64 { return (x - 32) * 5 / 9 },
			fromBase: func(x float64) float64 { return x*9/5 + 32 },
		},
		TemperatureKelvin: {
			name:     "K",
			accuracy: 1,
			toBase:   func(x float64) float64 { return x - 273.15 },
			fromBase: func(x float64) float64 { return x + 273.15 },
		},
	},
}

//Temperature is kept in degrees Celsius
type Temperature struct {
	value        float64
	defaultUnits byte
}

//CreateTemperature creates a temperature in one of Temperature* units
func CreateTemperature(value float64, units byte) (Temperature, error) {
	v, err := temperatureUnits.toBase(value, units)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{value: v, defaultUnits: units}, nil
}

//MustCreateTemperature is CreateTemperature which panics on unknown units
func MustCreateTemperature(value float64, units byte) Temperature {
	v, err := CreateTemperature(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the temperature in the units specified or an error for unknown units
func (v Temperature) Value(units byte) (float64, error) {
	return temperatureUnits.fromBase(v.value, units)
}

//Convert returns the same temperature printed in other units
func (v Temperature) Convert(units byte) Temperature {
	v.defaultUnits = units
	return v
}

//In returns the temperature in the units specified, 0 for unknown units
func (v Temperature) In(units byte) float64 {
	return temperatureUnits.in(v.value, units)
}

func (v Temperature) String() string {
	return temperatureUnits.format(v.value, v.defaultUnits)
}

//Units returns the units the temperature is printed in
func (v Temperature) Units() byte {
	return v.defaultUnits
}
