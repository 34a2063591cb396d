package go_ballisticsolver

import "github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"

//Projectile is the bullet: its drag model and physical dimensions
type Projectile struct {
	bc       BallisticCoefficient
	mass     unit.Weight
	diameter unit.Distance
	length   unit.Distance
}

//CreateProjectile creates a projectile.
//
//Diameter and length feed the gyroscopic stability and the spin drift.
func CreateProjectile(bc BallisticCoefficient, diameter unit.Distance, length unit.Distance, mass unit.Weight) Projectile {
	return Projectile{bc: bc, mass: mass, diameter: diameter, length: length}
}

//BallisticCoefficient returns the drag model of the bullet
func (v Projectile) BallisticCoefficient() BallisticCoefficient {
	return v.bc
}

//BulletWeight returns the bullet mass
func (v Projectile) BulletWeight() unit.Weight {
	return v.mass
}

//BulletDiameter returns the caliber
func (v Projectile) BulletDiameter() unit.Distance {
	return v.diameter
}

//BulletLength returns the bullet length
func (v Projectile) BulletLength() unit.Distance {
	return v.length
}

//Ammunition is a projectile fired at a chronographed muzzle velocity.
//The velocity and BC may refer to a load with another bullet weight and
//the velocity may depend on the powder temperature.
type Ammunition struct {
	bullet          Projectile
	velocity        unit.Velocity
	referenceWeight *unit.Weight
	sensitivity     float64
}

//CreateAmmunition creates the ammunition
func CreateAmmunition(bullet Projectile, muzzleVelocity unit.Velocity) Ammunition {
	return Ammunition{bullet: bullet, velocity: muzzleVelocity}
}

//WithReferenceWeight returns the ammunition whose muzzle velocity and ballistic
//coefficient were measured with a bullet of another weight. They are scaled to the
//actual bullet weight at solve time.
func (v Ammunition) WithReferenceWeight(weight unit.Weight) Ammunition {
	v.referenceWeight = &weight
	return v
}

//WithTemperatureSensitivity returns the ammunition with the propellant temperature
//sensitivity set in m/s per °C
func (v Ammunition) WithTemperatureSensitivity(mpsPerDegree float64) Ammunition {
	v.sensitivity = mpsPerDegree
	return v
}

//Bullet returns the projectile
func (v Ammunition) Bullet() Projectile {
	return v.bullet
}

//MuzzleVelocity returns the chronographed muzzle velocity
func (v Ammunition) MuzzleVelocity() unit.Velocity {
	return v.velocity
}

//ReferenceWeight returns the weight the muzzle velocity and BC refer to.
//It is the bullet weight unless set by WithReferenceWeight.
func (v Ammunition) ReferenceWeight() unit.Weight {
	if v.referenceWeight != nil {
		return *v.referenceWeight
	}
	return v.bullet.mass
}

//TemperatureSensitivity returns the muzzle velocity change in m/s per °C
func (v Ammunition) TemperatureSensitivity() float64 {
	return v.sensitivity
}
