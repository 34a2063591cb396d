package go_ballisticsolver

import (
	"fmt"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/vector"
)

//PhysicsContext keeps the values derived from ShotParameters once per solve.
//It is read-only for the integrator.
type PhysicsContext struct {
	density              float64
	speedOfSound         float64
	muzzleVelocity       float64
	ballisticCoefficient BallisticCoefficient
	windAlong            float64
	windCross            float64
	stabilityFactor      float64

	sightHeight    float64
	inclination    float64
	twistSign      float64
	lengthCalibers float64

	hasLocation bool
	latitude    float64
	azimuth     float64
}

//CreatePhysicsContext derives the air density, speed of sound, effective muzzle
//velocity and BC, wind components and stability factor for the shot
func CreatePhysicsContext(params ShotParameters) PhysicsContext {
	ammo := params.Ammunition()
	bullet := ammo.Bullet()
	weapon := params.Weapon()

	v0, bc := ResolveMuzzleConditions(ammo.MuzzleVelocity(), bullet.BallisticCoefficient(),
		ammo.ReferenceWeight(), bullet.BulletWeight(),
		params.Atmosphere().Temperature(), ammo.TemperatureSensitivity())

	density, mach := params.Atmosphere().DensityAndSpeedOfSound()
	along, cross := params.Wind().Components()

	c := PhysicsContext{
		density:              density,
		speedOfSound:         mach,
		muzzleVelocity:       v0.MPS(),
		ballisticCoefficient: bc,
		windAlong:            along,
		windCross:            cross,
		stabilityFactor:      calculateStabilityFactor(bullet, weapon.Twist(), v0, params.Atmosphere()),
		sightHeight:          weapon.SightHeight().Meters(),
		inclination:          params.Target().Inclination().Radians(),
		twistSign:            weapon.Twist().sign(),
		lengthCalibers:       bullet.BulletLength().Meters() / bullet.BulletDiameter().Meters(),
	}
	if params.HasLocation() {
		c.hasLocation = true
		c.latitude = params.Location().Latitude().Radians()
		c.azimuth = params.Location().Azimuth().Radians()
	}
	return c
}

//zeroContext returns the context the weapon was zeroed in: level, no wind, no
//Earth rotation and, if known, the conditions at the time of zeroing
func zeroContext(params ShotParameters) PhysicsContext {
	zero := params.Weapon().Zero()
	if zero.HasAtmosphere() {
		// validated by CreateShotParameters
		params.atmosphere = zero.Atmosphere()
	}
	params.wind = CreateNoWind()
	params.target = CreateLevelTarget(zero.ZeroDistance())
	params.hasLocation = false
	return CreatePhysicsContext(params)
}

//Density returns the air density in kg/m³
func (c PhysicsContext) Density() float64 {
	return c.density
}

//SpeedOfSound returns the local speed of sound
func (c PhysicsContext) SpeedOfSound() unit.Velocity {
	return unit.MustCreateVelocity(c.speedOfSound, unit.VelocityMPS)
}

//MuzzleVelocity returns the effective muzzle velocity
func (c PhysicsContext) MuzzleVelocity() unit.Velocity {
	return unit.MustCreateVelocity(c.muzzleVelocity, unit.VelocityMPS)
}

//BallisticCoefficient returns the effective ballistic coefficient
func (c PhysicsContext) BallisticCoefficient() BallisticCoefficient {
	return c.ballisticCoefficient
}

//WindComponents returns the along-bore (head wind positive) and cross-range
//(wind from the right positive) wind components
func (c PhysicsContext) WindComponents() (unit.Velocity, unit.Velocity) {
	return unit.MustCreateVelocity(c.windAlong, unit.VelocityMPS), unit.MustCreateVelocity(c.windCross, unit.VelocityMPS)
}

//StabilityFactor returns the Miller gyroscopic stability factor
func (c PhysicsContext) StabilityFactor() float64 {
	return c.stabilityFactor
}

//windVector returns the wind as it is added to the projectile velocity to get the air speed
func (c PhysicsContext) windVector() vector.Vector {
	return vector.Create(c.windAlong, 0, c.windCross)
}

func (c PhysicsContext) String() string {
	return fmt.Sprintf("Density:%.4fkg/m³,Mach:%.1fm/s,V0:%.1fm/s,BC:%.4f %s,Wind:%.2f/%.2fm/s,Sg:%.2f",
		c.density, c.speedOfSound, c.muzzleVelocity, c.ballisticCoefficient.Value(),
		DragTableName(c.ballisticCoefficient.Table()), c.windAlong, c.windCross, c.stabilityFactor)
}
