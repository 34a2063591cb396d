package go_ballisticsolver

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vacuumContext(t *testing.T) PhysicsContext {
	t.Helper()
	bc, err := CreateBallisticCoefficient(0.3, DragTableVacuum)
	require.NoError(t, err)
	return PhysicsContext{
		density:              1.225,
		speedOfSound:         340,
		muzzleVelocity:       800,
		ballisticCoefficient: bc,
		sightHeight:          0.05,
	}
}

func TestIntegrate_Vacuum(t *testing.T) {
	c := vacuumContext(t)
	for _, angle := range []float64{0, 0.001, 0.05, 0.3, 0.7} {
		shot, err := CreateTrajectoryCalculator().integrate(c, angle, 800)
		require.NoError(t, err)

		end := shot.last()
		assert.InDelta(t, 800, end.position.X, 1e-9)
		assert.InDelta(t, 800/(800*math.Cos(angle)), end.time, 1e-9)

		// the drop relative to the bore line is g·t²/2
		bore := -c.sightHeight + end.position.X*math.Tan(angle)
		assert.InDelta(t, 0.5*cGravityConstant*end.time*end.time, end.position.Y-bore, 1e-5, "angle %f", angle)
		assert.InDelta(t, 800*math.Cos(angle), end.velocity.X, 1e-9)
		assert.Equal(t, 0.0, end.position.Z)
	}
}

func TestIntegrate_VacuumEuler(t *testing.T) {
	c := vacuumContext(t)
	calc := CreateTrajectoryCalculator()
	require.NoError(t, calc.SetIntegrationMethod(IntegrationEuler))

	shot, err := calc.integrate(c, 0.01, 800)
	require.NoError(t, err)

	end := shot.last()
	bore := -c.sightHeight + end.position.X*math.Tan(0.01)
	// first order error: g·dt·t/2
	assert.InDelta(t, 0.5*cGravityConstant*end.time*end.time, end.position.Y-bore, 0.01)
}

func TestIntegrate_StepsAndInterpolation(t *testing.T) {
	c := vacuumContext(t)
	calc := CreateTrajectoryCalculator()
	require.NoError(t, calc.SetTimeStep(time.Millisecond))

	shot, err := calc.integrate(c, 0, 100.4)
	require.NoError(t, err)

	// 800 m/s, 1ms: 0.8m per step, the last state is interpolated at 100.4m
	assert.Len(t, shot, 127)
	assert.InDelta(t, 100.4, shot.last().position.X, 1e-12)
	assert.InDelta(t, 0.1255, shot.last().time, 1e-12)

	middle := shot.at(50.2)
	assert.InDelta(t, 50.2, middle.position.X, 1e-9)
	assert.InDelta(t, 50.2/800, middle.time, 1e-12)

	assert.Equal(t, shot[0], shot.at(-1))
	assert.Equal(t, shot.last(), shot.at(1000))
}

func TestIntegrate_ZeroDistance(t *testing.T) {
	shot, err := CreateTrajectoryCalculator().integrate(vacuumContext(t), 0.001, 0)
	require.NoError(t, err)
	require.Len(t, shot, 1)
	assert.Equal(t, 0.0, shot.last().time)
	assert.InDelta(t, -0.05, shot.last().position.Y, 1e-12)
}

func TestIntegrate_Divergence(t *testing.T) {
	c := vacuumContext(t)
	calc := CreateTrajectoryCalculator()

	_, err := calc.integrate(c, math.Pi, 100)
	assert.True(t, errors.Is(err, ErrTrajectoryDivergence))

	// 800 m/s covers 8 km in 10 s
	_, err = calc.integrate(c, 0, 9000)
	assert.True(t, errors.Is(err, ErrTrajectoryDivergence))
}

func TestAcceleration(t *testing.T) {
	bc, err := CreateBallisticCoefficient(0.45, DragTableG7)
	require.NoError(t, err)
	c := PhysicsContext{density: 1.225, speedOfSound: 340, ballisticCoefficient: bc}

	v := vector.Create(680, 0, 0)
	a := c.acceleration(v)
	drag := 0.5 * 1.225 * 680 * 680 * dragG7(2) / 0.45 * cDragConversion
	assert.InDelta(t, -drag, a.X, 1e-9)
	assert.InDelta(t, cGravityConstant, a.Y, 1e-12)
	assert.Equal(t, 0.0, a.Z)

	// a head wind increases the drag, the wind from the right pushes to the left
	c.windAlong = 10
	assert.Less(t, c.acceleration(v).X, a.X)
	c.windAlong = 0
	c.windCross = 5
	assert.Less(t, c.acceleration(v).Z, 0.0)
}

func TestCoriolis(t *testing.T) {
	c := PhysicsContext{hasLocation: true, latitude: math.Pi / 4}
	v := vector.Create(800, 0, 0)

	// northern hemisphere deflects to the right, southern to the left
	assert.Greater(t, c.coriolis(v).Z, 0.0)
	c.latitude = -math.Pi / 4
	assert.Less(t, c.coriolis(v).Z, 0.0)

	// Eötvös: firing east lifts, firing west drops
	c.latitude = 0
	c.azimuth = math.Pi / 2
	assert.InDelta(t, 2*cEarthAngularVelocity*800, c.coriolis(v).Y, 1e-12)
	c.azimuth = 3 * math.Pi / 2
	assert.InDelta(t, -2*cEarthAngularVelocity*800, c.coriolis(v).Y, 1e-12)
}
