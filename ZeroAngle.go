package go_ballisticsolver

import (
	"fmt"
	"math"
)

//zeroAngle finds the angle between the bore and the line of sight which puts the
//projectile on the line of sight at the zero distance specified (in meters).
//
//The first estimate is the vacuum drop plus the sight height, then the angle
//is refined by the vertical miss at the zero distance.
func (v TrajectoryCalculator) zeroAngle(c PhysicsContext, zeroDistance float64) (float64, error) {
	t := zeroDistance / c.muzzleVelocity
	angle := math.Atan((0.5*-cGravityConstant*t*t + c.sightHeight) / zeroDistance)
	accuracy := v.zeroAccuracy.Meters()

	var residual float64
	for i := 0; i < v.maximumZeroIterations; i++ {
		shot, err := v.integrate(c, angle, zeroDistance)
		if err != nil {
			v.logf("zero: iteration %d at %.6frad: %v", i, angle, err)
			return 0, fmt.Errorf("%w: %w", ErrZeroNotAchievable, err)
		}
		residual = shot.last().position.Y
		v.logf("zero: iteration %d at %.6frad misses by %.4fm", i, angle, residual)
		if math.Abs(residual) < accuracy {
			return angle, nil
		}
		angle -= residual / zeroDistance
	}
	return 0, wrapf(ErrZeroNotAchievable, "still %.4fm off at %.1fm after %d iterations",
		residual, zeroDistance, v.maximumZeroIterations)
}
