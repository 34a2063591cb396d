package go_ballisticsolver

import (
	"math"
	"sort"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/vector"
)

const cGravityConstant float64 = -9.80665
const cEarthAngularVelocity float64 = 7.292115e-5

//IntegrationRK4 selects the classical 4th order Runge-Kutta stepping
const IntegrationRK4 byte = 1

//IntegrationEuler selects the explicit Euler stepping
const IntegrationEuler byte = 2

//kinematicState is the state of the projectile owned by one integration run.
//
//x - distance towards target,
//y - height over the horizontal line of sight,
//z - lateral offset, positive to the right
type kinematicState struct {
	time     float64
	position vector.Vector
	velocity vector.Vector
}

func (s kinematicState) lerp(next kinematicState, f float64) kinematicState {
	return kinematicState{
		time:     s.time + (next.time-s.time)*f,
		position: s.position.Lerp(next.position, f),
		velocity: s.velocity.Lerp(next.velocity, f),
	}
}

//trajectory is the sequence of states of one run, from the muzzle to the terminal state
type trajectory []kinematicState

func (t trajectory) last() kinematicState {
	return t[len(t)-1]
}

//at returns the state interpolated at the down-range distance x.
//The distance is clamped to the integrated span.
func (t trajectory) at(x float64) kinematicState {
	i := sort.Search(len(t), func(i int) bool { return t[i].position.X >= x })
	switch {
	case i == 0:
		return t[0]
	case i == len(t):
		return t.last()
	}
	prev, next := t[i-1], t[i]
	return prev.lerp(next, (x-prev.position.X)/(next.position.X-prev.position.X))
}

type stepFunction func(c PhysicsContext, s kinematicState, dt float64) kinematicState

//acceleration returns drag, gravity and (if the location is known) Coriolis acceleration
func (c PhysicsContext) acceleration(velocity vector.Vector) vector.Vector {
	var a = vector.Create(0, cGravityConstant, 0)

	air := velocity.Add(c.windVector())
	speed := air.Magnitude()
	if speed > 0 {
		cd := c.ballisticCoefficient.Drag(speed / c.speedOfSound)
		drag := 0.5 * c.density * speed * speed * cd / c.ballisticCoefficient.Value() * cDragConversion
		a = a.Add(air.Normalize().MultiplyByConst(-drag))
	}

	if c.hasLocation {
		a = a.Add(c.coriolis(velocity))
	}
	return a
}

//coriolis returns the vertical (Eötvös) and lateral components of the Earth rotation
//acceleration. The lateral axis is positive to the right, so the projectile is deflected
//to the right in the Northern Hemisphere.
func (c PhysicsContext) coriolis(velocity vector.Vector) vector.Vector {
	cosLat, sinLat := math.Cos(c.latitude), math.Sin(c.latitude)
	return vector.Create(0,
		2*cEarthAngularVelocity*velocity.X*cosLat*math.Sin(c.azimuth),
		2*cEarthAngularVelocity*(velocity.X*sinLat-velocity.Y*cosLat*math.Cos(c.azimuth)))
}

func eulerStep(c PhysicsContext, s kinematicState, dt float64) kinematicState {
	a := c.acceleration(s.velocity)
	return kinematicState{
		time:     s.time + dt,
		position: s.position.Add(s.velocity.MultiplyByConst(dt)),
		velocity: s.velocity.Add(a.MultiplyByConst(dt)),
	}
}

//rk4Step integrates position and velocity together. The acceleration depends on the
//velocity only, so the position slopes are the intermediate velocities.
func rk4Step(c PhysicsContext, s kinematicState, dt float64) kinematicState {
	v1 := s.velocity
	a1 := c.acceleration(v1)
	v2 := s.velocity.Add(a1.MultiplyByConst(dt / 2))
	a2 := c.acceleration(v2)
	v3 := s.velocity.Add(a2.MultiplyByConst(dt / 2))
	a3 := c.acceleration(v3)
	v4 := s.velocity.Add(a3.MultiplyByConst(dt))
	a4 := c.acceleration(v4)

	dp := v1.Add(v2.MultiplyByConst(2)).Add(v3.MultiplyByConst(2)).Add(v4)
	dv := a1.Add(a2.MultiplyByConst(2)).Add(a3.MultiplyByConst(2)).Add(a4)
	return kinematicState{
		time:     s.time + dt,
		position: s.position.Add(dp.MultiplyByConst(dt / 6)),
		velocity: s.velocity.Add(dv.MultiplyByConst(dt / 6)),
	}
}

//launchState is the state at the muzzle: the bore is below the line of sight by the
//sight height and the velocity is directed along the launch angle
func (c PhysicsContext) launchState(launchAngle float64) kinematicState {
	return kinematicState{
		position: vector.Create(c.sightHeight*math.Sin(c.inclination), -c.sightHeight*math.Cos(c.inclination), 0),
		velocity: vector.Create(math.Cos(launchAngle), math.Sin(launchAngle), 0).MultiplyByConst(c.muzzleVelocity),
	}
}

//integrate runs the shot until the projectile reaches the down-range distance specified.
//The terminal state is interpolated at exactly that distance.
func (v TrajectoryCalculator) integrate(c PhysicsContext, launchAngle, distance float64) (trajectory, error) {
	var step stepFunction = rk4Step
	if v.method == IntegrationEuler {
		step = eulerStep
	}
	dt := v.getTimeStep().Seconds()
	maximumTime := v.maximumTime.Seconds()

	s := c.launchState(launchAngle)
	states := make(trajectory, 0, int(distance/(c.muzzleVelocity*dt))+2)
	states = append(states, s)

	for s.position.X < distance {
		if !(s.velocity.X > 0) {
			return nil, wrapf(ErrTrajectoryDivergence, "projectile stopped at %.1fm before reaching %.1fm", s.position.X, distance)
		}
		next := step(c, s, dt)
		if next.time > maximumTime {
			return nil, wrapf(ErrTrajectoryDivergence, "time of flight exceeds %s at %.1fm before reaching %.1fm",
				v.maximumTime, s.position.X, distance)
		}
		if next.position.X >= distance {
			s = s.lerp(next, (distance-s.position.X)/(next.position.X-s.position.X))
			s.position.X = distance
		} else {
			s = next
		}
		states = append(states, s)
	}
	return states, nil
}
