package go_ballisticsolver

import (
	"errors"
	"fmt"
)

//ErrInvalidInput is returned when shot parameters violate a physical constraint
//(non-positive distance, weight, caliber or twist, humidity outside 0..100,
//latitude outside -90..90 and so on)
var ErrInvalidInput = errors.New("invalid input")

//ErrZeroNotAchievable is returned when the zero angle iteration does not converge
var ErrZeroNotAchievable = errors.New("zero not achievable")

//ErrTrajectoryDivergence is returned when the integration exceeds its time ceiling
//or the projectile stops moving down-range before reaching the requested distance
var ErrTrajectoryDivergence = errors.New("trajectory diverged")

func invalidInput(format string, args ...interface{}) error {
	return wrapf(ErrInvalidInput, format, args...)
}

func wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}
