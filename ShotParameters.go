package go_ballisticsolver

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//Target describes the point to be hit
type Target struct {
	distance    unit.Distance
	inclination unit.Angular
}

//CreateTarget creates the target at the line of sight distance specified.
//
//Zero distance means that no correction is requested. inclination is the angle
//between the line of sight and the horizon, positive when the target is higher
//than the shooter.
func CreateTarget(distance unit.Distance, inclination unit.Angular) Target {
	return Target{distance: distance, inclination: inclination}
}

//CreateLevelTarget creates the target at the same level as the shooter
func CreateLevelTarget(distance unit.Distance) Target {
	return CreateTarget(distance, unit.MustCreateAngular(0, unit.AngularRadian))
}

//Distance returns the line of sight distance to the target
func (v Target) Distance() unit.Distance {
	return v.distance
}

//Inclination returns the look angle to the target
func (v Target) Inclination() unit.Angular {
	return v.inclination
}

//Location is the geographic information required for the Coriolis and Eötvös effects
type Location struct {
	latitude unit.Angular
	azimuth  unit.Angular
}

//CreateLocation creates location with the latitude of the firing point and the
//azimuth of fire (clockwise from the true north)
func CreateLocation(latitude, azimuth unit.Angular) Location {
	return Location{latitude: latitude, azimuth: azimuth}
}

//Latitude returns the latitude of the firing point
func (v Location) Latitude() unit.Angular {
	return v.latitude
}

//Azimuth returns the azimuth of fire
func (v Location) Azimuth() unit.Angular {
	return v.azimuth
}

//ShotParameters keeps everything required to calculate one shot.
//
//The value is created by CreateShotParameters which validates it, so a
//ShotParameters obtained without an error is always physically meaningful.
type ShotParameters struct {
	ammunition  Ammunition
	weapon      Weapon
	atmosphere  Atmosphere
	wind        WindInfo
	target      Target
	hasLocation bool
	location    Location
}

//CreateShotParameters validates and creates the parameters of the shot.
//
//The Earth rotation effects are ignored unless a location is set by WithLocation.
func CreateShotParameters(ammunition Ammunition, weapon Weapon, atmosphere Atmosphere, wind WindInfo, target Target) (ShotParameters, error) {
	v := ShotParameters{
		ammunition: ammunition,
		weapon:     weapon,
		atmosphere: atmosphere,
		wind:       wind,
		target:     target,
	}
	if err := v.validate(); err != nil {
		return ShotParameters{}, err
	}
	return v, nil
}

//WithLocation returns the parameters with the Coriolis and Eötvös effects enabled
func (v ShotParameters) WithLocation(location Location) (ShotParameters, error) {
	v.hasLocation = true
	v.location = location
	if err := v.validate(); err != nil {
		return ShotParameters{}, err
	}
	return v, nil
}

//WithTarget returns the parameters for another target
func (v ShotParameters) WithTarget(target Target) (ShotParameters, error) {
	v.target = target
	if err := v.validate(); err != nil {
		return ShotParameters{}, err
	}
	return v, nil
}

//WithWind returns the parameters for another wind
func (v ShotParameters) WithWind(wind WindInfo) (ShotParameters, error) {
	v.wind = wind
	if err := v.validate(); err != nil {
		return ShotParameters{}, err
	}
	return v, nil
}

//WithAmmunition returns the parameters for another ammunition
func (v ShotParameters) WithAmmunition(ammunition Ammunition) (ShotParameters, error) {
	v.ammunition = ammunition
	if err := v.validate(); err != nil {
		return ShotParameters{}, err
	}
	return v, nil
}

//WithAtmosphere returns the parameters for other conditions
func (v ShotParameters) WithAtmosphere(atmosphere Atmosphere) (ShotParameters, error) {
	v.atmosphere = atmosphere
	if err := v.validate(); err != nil {
		return ShotParameters{}, err
	}
	return v, nil
}

//Ammunition returns the ammunition
func (v ShotParameters) Ammunition() Ammunition {
	return v.ammunition
}

//Weapon returns the weapon
func (v ShotParameters) Weapon() Weapon {
	return v.weapon
}

//Atmosphere returns the conditions of the shot
func (v ShotParameters) Atmosphere() Atmosphere {
	return v.atmosphere
}

//Wind returns the wind
func (v ShotParameters) Wind() WindInfo {
	return v.wind
}

//Target returns the target
func (v ShotParameters) Target() Target {
	return v.target
}

//HasLocation returns the flag indicating whether Earth rotation effects are calculated
func (v ShotParameters) HasLocation() bool {
	return v.hasLocation
}

//Location returns the location of the firing point
func (v ShotParameters) Location() Location {
	return v.location
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func (v ShotParameters) validate() error {
	bullet := v.ammunition.Bullet()
	if bullet.bc.drag == nil {
		return invalidInput("ballistic coefficient is not set")
	}
	if !positive(v.ammunition.MuzzleVelocity().MPS()) {
		return invalidInput("muzzle velocity %s must be positive", v.ammunition.MuzzleVelocity())
	}
	if !positive(bullet.BulletWeight().In(unit.WeightKilogram)) {
		return invalidInput("bullet weight %s must be positive", bullet.BulletWeight())
	}
	if !positive(v.ammunition.ReferenceWeight().In(unit.WeightKilogram)) {
		return invalidInput("reference weight %s must be positive", v.ammunition.ReferenceWeight())
	}
	if math.IsNaN(v.ammunition.TemperatureSensitivity()) {
		return invalidInput("temperature sensitivity is not a number")
	}
	if !positive(bullet.BulletDiameter().Meters()) {
		return invalidInput("caliber %s must be positive", bullet.BulletDiameter())
	}
	if !positive(bullet.BulletLength().Meters()) {
		return invalidInput("bullet length %s must be positive", bullet.BulletLength())
	}

	if !positive(v.weapon.SightHeight().Meters()) {
		return invalidInput("sight height %s must be positive", v.weapon.SightHeight())
	}
	if !positive(v.weapon.Zero().ZeroDistance().Meters()) {
		return invalidInput("zero distance %s must be positive", v.weapon.Zero().ZeroDistance())
	}
	twist := v.weapon.Twist()
	if twist.Direction() != TwistRight && twist.Direction() != TwistLeft {
		return invalidInput("twist direction %d is unknown", twist.Direction())
	}
	if !positive(twist.Twist().Meters()) {
		return invalidInput("twist rate %s must be positive", twist.Twist())
	}
	click := v.weapon.ClickValue()
	if click.Units() != unit.AngularMRad && click.Units() != unit.AngularMOA {
		return invalidInput("click value %s must be set in MRAD or MOA", click)
	}
	if !positive(click.Radians()) {
		return invalidInput("click value %s must be positive", click)
	}

	if err := validateAtmosphere(v.atmosphere); err != nil {
		return err
	}
	if err := validateMuzzleVelocity(v.ammunition, v.atmosphere); err != nil {
		return err
	}
	if v.weapon.Zero().HasAtmosphere() {
		if err := validateAtmosphere(v.weapon.Zero().Atmosphere()); err != nil {
			return fmt.Errorf("zero conditions: %w", err)
		}
		if err := validateMuzzleVelocity(v.ammunition, v.weapon.Zero().Atmosphere()); err != nil {
			return fmt.Errorf("zero conditions: %w", err)
		}
	}

	if !(v.wind.Velocity().MPS() >= 0) || math.IsInf(v.wind.Velocity().MPS(), 1) {
		return invalidInput("wind speed %s must not be negative", v.wind.Velocity())
	}
	if !(v.wind.Clock() >= 0 && v.wind.Clock() <= 12) {
		return invalidInput("wind clock direction %.2f must be in 0..12 range", v.wind.Clock())
	}

	d := v.target.Distance().Meters()
	if !(d >= 0) || math.IsInf(d, 1) {
		return invalidInput("target distance %s must not be negative", v.target.Distance())
	}
	inclination := v.target.Inclination().In(unit.AngularDegree)
	if !(inclination > -90 && inclination < 90) {
		return invalidInput("target inclination %s must be within -90°..90°", v.target.Inclination())
	}

	if v.hasLocation {
		latitude := v.location.Latitude().In(unit.AngularDegree)
		if !(latitude >= -90 && latitude <= 90) {
			return invalidInput("latitude %s must be within -90°..90°", v.location.Latitude())
		}
		if math.IsNaN(v.location.Azimuth().Radians()) || math.IsInf(v.location.Azimuth().Radians(), 0) {
			return invalidInput("azimuth %s is not a number", v.location.Azimuth())
		}
	}
	return nil
}

func validateAtmosphere(a Atmosphere) error {
	p := a.Pressure().In(unit.PressureHPa)
	if !positive(p) {
		return invalidInput("pressure %s must be positive", a.Pressure())
	}
	t := a.Temperature().In(unit.TemperatureCelsius)
	if !(t > -cZeroCelsius) || math.IsInf(t, 1) {
		return invalidInput("temperature %s must be above absolute zero", a.Temperature())
	}
	if a.HasHumidity() {
		if !(a.Humidity() >= 0 && a.Humidity() <= 100) {
			return invalidInput("humidity %.2f must be in 0..100 range", a.Humidity())
		}
		//water boils off at this pressure, there is no dry air left
		if vapor := vaporPressure(t, a.Humidity()); vapor >= p {
			return invalidInput("vapor pressure %.1fhPa at %s and %.0f%% humidity exceeds pressure %s",
				vapor, a.Temperature(), a.Humidity(), a.Pressure())
		}
	}
	return nil
}

//validateMuzzleVelocity checks the muzzle velocity corrected for the bullet
//weight and the powder temperature of the atmosphere specified
func validateMuzzleVelocity(ammo Ammunition, a Atmosphere) error {
	bullet := ammo.Bullet()
	v0, _ := ResolveMuzzleConditions(ammo.MuzzleVelocity(), bullet.BallisticCoefficient(),
		ammo.ReferenceWeight(), bullet.BulletWeight(), a.Temperature(), ammo.TemperatureSensitivity())
	if !positive(v0.MPS()) {
		return invalidInput("muzzle velocity %s at %s must be positive", v0, a.Temperature())
	}
	return nil
}
