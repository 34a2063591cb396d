package go_ballisticsolver

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"gonum.org/v1/gonum/floats"
)

//sampler turns the integrated states into trajectory samples at line of sight distances
type sampler struct {
	context PhysicsContext
	shot    trajectory
	bullet  Projectile
	click   unit.Angular
}

func newSampler(c PhysicsContext, shot trajectory, params ShotParameters) sampler {
	return sampler{
		context: c,
		shot:    shot,
		bullet:  params.Ammunition().Bullet(),
		click:   params.Weapon().ClickValue(),
	}
}

//at returns the sample at the distance (in meters) along the line of sight
func (s sampler) at(distance float64) TrajectorySample {
	c := s.context
	sin, cos := math.Sincos(c.inclination)
	state := s.shot.at(distance * cos)

	drop := state.position.Y*cos - state.position.X*sin
	drop, windage := c.applySecondaryCorrections(drop, state.position.Z, state.time, distance)

	velocity := state.velocity.Magnitude()
	mass := s.bullet.BulletWeight().In(unit.WeightKilogram)
	grains := s.bullet.BulletWeight().In(unit.WeightGrain)
	fps := unit.MustCreateVelocity(velocity, unit.VelocityMPS).In(unit.VelocityFPS)

	d := unit.MustCreateDistance(distance, unit.DistanceMeter)
	dropDistance := unit.MustCreateDistance(drop, unit.DistanceMeter)
	windageDistance := unit.MustCreateDistance(windage, unit.DistanceMeter)

	return TrajectorySample{
		time:              Timespan{seconds: state.time},
		distance:          d,
		velocity:          unit.MustCreateVelocity(velocity, unit.VelocityMPS),
		mach:              velocity / c.speedOfSound,
		drop:              dropDistance,
		elevation:         elevationAdjustment(dropDistance, d, s.click),
		windage:           windageDistance,
		windageAdjustment: windageAdjustment(windageDistance, d, s.click),
		energy:            unit.MustCreateEnergy(0.5*mass*velocity*velocity, unit.EnergyJoule),
		optimalGameWeight: unit.MustCreateWeight(1.5e-12*grains*grains*fps*fps*fps, unit.WeightPound),
	}
}

//every returns samples at 0, step, 2·step, ... up to the maximum distance
func (s sampler) every(step, maximum float64) []TrajectorySample {
	count := int(math.Floor(maximum/step+1e-9)) + 1
	if count < 2 {
		return []TrajectorySample{s.at(0)}
	}
	grid := floats.Span(make([]float64, count), 0, float64(count-1)*step)
	samples := make([]TrajectorySample, 0, count)
	for _, distance := range grid {
		samples = append(samples, s.at(distance))
	}
	return samples
}
