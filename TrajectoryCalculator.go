package go_ballisticsolver

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
	"github.com/gehtsoft-usa/go_ballisticsolver/internal/monitoring"
	"golang.org/x/sync/errgroup"
)

const cDefaultRK4TimeStep = 1500 * time.Microsecond
const cDefaultEulerTimeStep = time.Millisecond
const cMaximumTimeOfFlight = 10 * time.Second
const cZeroFindingAccuracy float64 = 0.001
const cMaxZeroIterations int = 5

//TrajectoryCalculator is used to calculate the trajectory of a projectile shot with the parameters specified
//
//The calculator keeps no state between calls, so one value may be used by many goroutines.
type TrajectoryCalculator struct {
	method                byte
	timeStep              time.Duration
	maximumTime           time.Duration
	zeroAccuracy          unit.Distance
	maximumZeroIterations int
	logger                monitoring.Logf
}

//CreateTrajectoryCalculator creates and instance of the trajectory calculator
//with RK4 integration and the default time step
func CreateTrajectoryCalculator() TrajectoryCalculator {
	return TrajectoryCalculator{
		method:                IntegrationRK4,
		maximumTime:           cMaximumTimeOfFlight,
		zeroAccuracy:          unit.MustCreateDistance(cZeroFindingAccuracy, unit.DistanceMeter),
		maximumZeroIterations: cMaxZeroIterations,
		logger:                monitoring.Discard,
	}
}

//IntegrationMethod returns the integration method (IntegrationRK4 or IntegrationEuler)
func (v TrajectoryCalculator) IntegrationMethod() byte {
	return v.method
}

//SetIntegrationMethod sets the integration method.
//
//Unless set explicitly, the time step follows the method: 1.5ms for RK4 and 1ms for Euler.
func (v *TrajectoryCalculator) SetIntegrationMethod(method byte) error {
	if method != IntegrationRK4 && method != IntegrationEuler {
		return invalidInput("integration method %d is not supported", method)
	}
	v.method = method
	return nil
}

//TimeStep returns the integration time step
func (v TrajectoryCalculator) TimeStep() time.Duration {
	return v.getTimeStep()
}

//SetTimeStep sets the integration time step. The smaller value is, the calculation is more precise but
//takes more time to calculate.
func (v *TrajectoryCalculator) SetTimeStep(step time.Duration) error {
	if step <= 0 || step > v.maximumTime {
		return invalidInput("time step %s must be positive and less than %s", step, v.maximumTime)
	}
	v.timeStep = step
	return nil
}

func (v TrajectoryCalculator) getTimeStep() time.Duration {
	if v.timeStep > 0 {
		return v.timeStep
	}
	if v.method == IntegrationEuler {
		return cDefaultEulerTimeStep
	}
	return cDefaultRK4TimeStep
}

//SetLogger sets the function which receives the diagnostic messages of the calculator
func (v *TrajectoryCalculator) SetLogger(logf monitoring.Logf) {
	if logf == nil {
		logf = monitoring.Discard
	}
	v.logger = logf
}

func (v TrajectoryCalculator) logf(format string, args ...interface{}) {
	if v.logger != nil {
		v.logger(format, args...)
	}
}

//ZeroAngle calculates the angle between the bore and the line of sight for the weapon zero
func (v TrajectoryCalculator) ZeroAngle(params ShotParameters) (unit.Angular, error) {
	angle, err := v.zeroAngle(zeroContext(params), params.Weapon().Zero().ZeroDistance().Meters())
	if err != nil {
		return unit.Angular{}, err
	}
	return unit.MustCreateAngular(angle, unit.AngularRadian).Convert(params.Weapon().AdjustmentUnits()), nil
}

//shoot zeroes the weapon and integrates the shot up to the distance (in meters) along the line of sight
func (v TrajectoryCalculator) shoot(params ShotParameters, distance float64) (sampler, float64, error) {
	c := CreatePhysicsContext(params)
	zero, err := v.zeroAngle(zeroContext(params), params.Weapon().Zero().ZeroDistance().Meters())
	if err != nil {
		return sampler{}, 0, err
	}
	shot, err := v.integrate(c, zero+c.inclination, distance*math.Cos(c.inclination))
	if err != nil {
		v.logf("shot to %.1fm: %v", distance, err)
		return sampler{}, 0, err
	}
	v.logf("shot to %.1fm: %d steps, %s", distance, len(shot), c)
	return newSampler(c, shot, params), zero, nil
}

//Solve calculates the firing solution for the target of the shot parameters.
//
//The target at distance 0 requires no correction.
func (v TrajectoryCalculator) Solve(params ShotParameters) (SolutionResult, error) {
	distance := params.Target().Distance().Meters()
	s, zero, err := v.shoot(params, distance)
	if err != nil {
		return SolutionResult{}, err
	}
	return SolutionResult{
		sample:          s.at(distance),
		zeroAngle:       unit.MustCreateAngular(zero, unit.AngularRadian).Convert(params.Weapon().AdjustmentUnits()),
		stabilityFactor: s.context.stabilityFactor,
	}, nil
}

//BuildTable calculates the trajectory samples at the distances specified.
//
//The samples are returned in the order of the distances. The target distance of the
//shot parameters is ignored.
func (v TrajectoryCalculator) BuildTable(params ShotParameters, distances []unit.Distance) ([]TrajectorySample, error) {
	var maximum float64
	for i, d := range distances {
		m := d.Meters()
		if !(m >= 0) || math.IsInf(m, 0) {
			return nil, invalidInput("distance #%d (%s) must be a finite non-negative value", i, d)
		}
		maximum = math.Max(maximum, m)
	}

	s, _, err := v.shoot(params, maximum)
	if err != nil {
		return nil, err
	}
	samples := make([]TrajectorySample, len(distances))
	for i, d := range distances {
		samples[i] = s.at(d.Meters())
	}
	return samples, nil
}

//Trajectory calculates the trajectory samples with the step specified up to the target distance
func (v TrajectoryCalculator) Trajectory(params ShotParameters, step unit.Distance) ([]TrajectorySample, error) {
	if !(step.Meters() > 0) || math.IsInf(step.Meters(), 0) {
		return nil, invalidInput("step (%s) must be a finite positive value", step)
	}
	distance := params.Target().Distance().Meters()
	s, _, err := v.shoot(params, distance)
	if err != nil {
		return nil, err
	}
	return s.every(step.Meters(), distance), nil
}

//SolveMany solves the shots concurrently. The results are in the order of the parameters.
//
//The first error cancels the remaining solves and is returned.
func (v TrajectoryCalculator) SolveMany(ctx context.Context, params []ShotParameters) ([]SolutionResult, error) {
	results := make([]SolutionResult, len(params))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range params {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := v.Solve(params[i])
			if err != nil {
				return fmt.Errorf("shot #%d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
