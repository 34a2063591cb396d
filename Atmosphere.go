package go_ballisticsolver

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

const cDryAirGasConstant float64 = 287.05
const cWaterVaporGasConstant float64 = 461.5
const cZeroCelsius float64 = 273.15
const cMinimumAbsoluteTemperature float64 = 1.0
const cSpeedOfSoundAtZero float64 = 331.3

//the saturation pressure fit is used down to this temperature (°C), below it
//the vapor pressure is negligible
const cMinimumVaporTemperature float64 = -100.0

const cStandardTemperature float64 = 15.0
const cStandardPressure float64 = 1013.25
const cTemperatureLapseRate float64 = -0.0065
const cPressureExponent float64 = 5.255876

//Atmosphere describes the atmosphere conditions at the firing point
type Atmosphere struct {
	altitude    unit.Distance
	pressure    unit.Pressure
	temperature unit.Temperature
	hasHumidity bool
	humidity    float64
}

//CreateDefaultAtmosphere creates the ICAO sea level atmosphere (15°C, 1013.25hPa, dry)
func CreateDefaultAtmosphere() Atmosphere {
	return CreateAtmosphere(unit.MustCreateTemperature(cStandardTemperature, unit.TemperatureCelsius),
		unit.MustCreatePressure(cStandardPressure, unit.PressureHPa))
}

//CreateAtmosphere creates a dry atmosphere for the temperature and station pressure specified.
//
//Use CreateAtmosphereWithHumidity when the relative humidity is known.
func CreateAtmosphere(temperature unit.Temperature, pressure unit.Pressure) Atmosphere {
	return Atmosphere{
		altitude:    unit.MustCreateDistance(0, unit.DistanceMeter),
		temperature: temperature,
		pressure:    pressure,
	}
}

//CreateAtmosphereWithHumidity creates the atmosphere with the relative humidity set in percents (0..100)
func CreateAtmosphereWithHumidity(temperature unit.Temperature, pressure unit.Pressure, humidity float64) (Atmosphere, error) {
	if humidity < 0 || humidity > 100 || math.IsNaN(humidity) {
		return Atmosphere{}, invalidInput("Atmosphere: humidity %.2f must be in 0..100 range", humidity)
	}
	a := CreateAtmosphere(temperature, pressure)
	a.hasHumidity = true
	a.humidity = humidity
	return a, nil
}

//CreateICAOAtmosphere creates the standard atmosphere for the altitude specified
func CreateICAOAtmosphere(altitude unit.Distance) Atmosphere {
	h := altitude.In(unit.DistanceMeter)
	t := cStandardTemperature + h*cTemperatureLapseRate
	p := cStandardPressure * math.Pow((t+cZeroCelsius)/(cStandardTemperature+cZeroCelsius), cPressureExponent)

	a := CreateAtmosphere(unit.MustCreateTemperature(t, unit.TemperatureCelsius), unit.MustCreatePressure(p, unit.PressureHPa))
	a.altitude = altitude
	return a
}

//Altitude returns the altitude the atmosphere was created for (zero unless created by CreateICAOAtmosphere)
func (a Atmosphere) Altitude() unit.Distance {
	return a.altitude
}

//Temperature returns the air temperature
func (a Atmosphere) Temperature() unit.Temperature {
	return a.temperature
}

//Pressure returns the station pressure
func (a Atmosphere) Pressure() unit.Pressure {
	return a.pressure
}

//HasHumidity returns the flag indicating whether the relative humidity is known
func (a Atmosphere) HasHumidity() bool {
	return a.hasHumidity
}

//Humidity returns relative humidity in percents (0..100)
func (a Atmosphere) Humidity() float64 {
	return a.humidity
}

func (a Atmosphere) String() string {
	if !a.hasHumidity {
		return fmt.Sprintf("Pressure:%s,Temperature:%s,Humidity:n/a", a.pressure, a.temperature)
	}
	return fmt.Sprintf("Pressure:%s,Temperature:%s,Humidity:%.1f%%", a.pressure, a.temperature, a.humidity)
}

//DensityAndSpeedOfSound returns the air density (kg/m³) and the local speed of sound (m/s)
func (a Atmosphere) DensityAndSpeedOfSound() (float64, float64) {
	t := a.temperature.In(unit.TemperatureCelsius)
	p := a.pressure.In(unit.PressureHPa)
	if a.hasHumidity {
		return densityAndSpeedOfSound(t, p, a.humidity)
	}
	return densityAndSpeedOfSound(t, p, 0)
}

//saturationVaporPressure returns water vapor saturation pressure in hPa (Arden Buck)
func saturationVaporPressure(t float64) float64 {
	t = math.Max(t, cMinimumVaporTemperature)
	return 6.1121 * math.Exp((18.678-t/234.5)*(t/(257.14+t)))
}

//vaporPressure returns the partial pressure of water vapor in hPa
func vaporPressure(t, humidity float64) float64 {
	if humidity <= 0 {
		return 0
	}
	return humidity / 100 * saturationVaporPressure(t)
}

func densityAndSpeedOfSound(t, p, humidity float64) (float64, float64) {
	tk := math.Max(t+cZeroCelsius, cMinimumAbsoluteTemperature)

	vapor := vaporPressure(t, humidity)
	dry := p - vapor

	//hPa to Pa
	density := dry*100/(cDryAirGasConstant*tk) + vapor*100/(cWaterVaporGasConstant*tk)
	mach := cSpeedOfSoundAtZero * math.Sqrt(tk/cZeroCelsius)
	return density, mach
}
