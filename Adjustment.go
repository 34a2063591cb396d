package go_ballisticsolver

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"
)

//DirectionNone means no adjustment is required
const DirectionNone byte = 0

//DirectionUp means the sight must be moved up
const DirectionUp byte = 1

//DirectionDown means the sight must be moved down
const DirectionDown byte = 2

//DirectionLeft means the sight must be moved left
const DirectionLeft byte = 3

//DirectionRight means the sight must be moved right
const DirectionRight byte = 4

//adjustments smaller than this (in radians) have no direction
const cNegligibleAdjustment float64 = 1e-7

//DirectionName returns the tag of the direction
func DirectionName(direction byte) string {
	switch direction {
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	case DirectionLeft:
		return "LEFT"
	case DirectionRight:
		return "RIGHT"
	default:
		return ""
	}
}

//ToAngular returns the angle subtended by the linear offset at the distance in the units specified.
//
//The angle is 0 at zero distance.
func ToAngular(offset, distance unit.Distance, units byte) unit.Angular {
	var angle float64
	if distance.Meters() > 0 {
		angle = math.Atan(offset.Meters() / distance.Meters())
	}
	return unit.MustCreateAngular(angle, unit.AngularRadian).Convert(units)
}

//Adjustment is the sight correction along one axis.
//
//The correction is available as the magnitude, the direction and the number of clicks only.
type Adjustment struct {
	angle    float64
	vertical bool
	click    unit.Angular
}

//elevationAdjustment returns the correction which compensates the vertical offset at the distance
func elevationAdjustment(offset, distance unit.Distance, click unit.Angular) Adjustment {
	return Adjustment{angle: -ToAngular(offset, distance, unit.AngularRadian).Radians(), vertical: true, click: click}
}

//windageAdjustment returns the correction which compensates the lateral offset at the distance
func windageAdjustment(offset, distance unit.Distance, click unit.Angular) Adjustment {
	return Adjustment{angle: -ToAngular(offset, distance, unit.AngularRadian).Radians(), vertical: false, click: click}
}

//Direction returns one of the Direction* constants
func (a Adjustment) Direction() byte {
	switch {
	case math.Abs(a.angle) < cNegligibleAdjustment:
		return DirectionNone
	case a.vertical && a.angle > 0:
		return DirectionUp
	case a.vertical:
		return DirectionDown
	case a.angle > 0:
		return DirectionRight
	default:
		return DirectionLeft
	}
}

//Magnitude returns the absolute value of the correction in the weapon adjustment units
func (a Adjustment) Magnitude() unit.Angular {
	return unit.MustCreateAngular(math.Abs(a.angle), unit.AngularRadian).Convert(a.click.Units())
}

//Clicks returns the number of clicks of the sight turret, rounded to the nearest click
func (a Adjustment) Clicks() int {
	if a.click.Radians() <= 0 {
		return 0
	}
	return int(math.Round(math.Abs(a.angle) / a.click.Radians()))
}

func (a Adjustment) String() string {
	if a.Direction() == DirectionNone {
		return fmt.Sprintf("%s (0 clicks)", a.Magnitude())
	}
	return fmt.Sprintf("%s %s (%d clicks)", a.Magnitude(), DirectionName(a.Direction()), a.Clicks())
}
