package go_ballisticsolver

import "github.com/gehtsoft-usa/go_ballisticsolver/bmath/unit"

//ZeroInfo is the distance the sight was zeroed at and, optionally, the
//conditions of the zeroing session
type ZeroInfo struct {
	distance   unit.Distance
	atmosphere *Atmosphere
}

//CreateZeroInfo creates a zero made under the conditions of the shot
func CreateZeroInfo(distance unit.Distance) ZeroInfo {
	return ZeroInfo{distance: distance}
}

//CreateZeroInfoWithAtmosphere creates a zero made under other conditions
func CreateZeroInfoWithAtmosphere(distance unit.Distance, atmosphere Atmosphere) ZeroInfo {
	return ZeroInfo{distance: distance, atmosphere: &atmosphere}
}

//ZeroDistance returns the zero range
func (v ZeroInfo) ZeroDistance() unit.Distance {
	return v.distance
}

//HasAtmosphere is true when the zero was made under its own conditions
func (v ZeroInfo) HasAtmosphere() bool {
	return v.atmosphere != nil
}

//Atmosphere returns the zeroing conditions or the zero value if there are none
func (v ZeroInfo) Atmosphere() Atmosphere {
	if v.atmosphere == nil {
		return Atmosphere{}
	}
	return *v.atmosphere
}

//TwistRight is a right-hand rifling twist
const TwistRight byte = 1

//TwistLeft is a left-hand rifling twist
const TwistLeft byte = 2

//TwistInfo is the barrel rifling
type TwistInfo struct {
	direction byte
	rate      unit.Distance
}

//CreateTwist creates the rifling description.
//
//direction is TwistRight or TwistLeft, rate is the barrel length per turn.
func CreateTwist(direction byte, rate unit.Distance) TwistInfo {
	return TwistInfo{direction: direction, rate: rate}
}

//Direction returns TwistRight or TwistLeft
func (v TwistInfo) Direction() byte {
	return v.direction
}

//Twist returns the barrel length per turn
func (v TwistInfo) Twist() unit.Distance {
	return v.rate
}

//sign is +1 for right twist and -1 for left twist
func (v TwistInfo) sign() float64 {
	if v.direction == TwistLeft {
		return -1
	}
	return 1
}

//Weapon is the rifle and its sight
type Weapon struct {
	sight unit.Distance
	zero  ZeroInfo
	twist TwistInfo
	click unit.Angular
}

//CreateWeapon creates the weapon description.
//
//The units of click (unit.AngularMRad or unit.AngularMOA) are the
//units the sight adjustments are reported in.
func CreateWeapon(sightHeight unit.Distance, zero ZeroInfo, twist TwistInfo, click unit.Angular) Weapon {
	return Weapon{sight: sightHeight, zero: zero, twist: twist, click: click}
}

//SightHeight returns the height of the sight line over the bore axis
func (v Weapon) SightHeight() unit.Distance {
	return v.sight
}

//Zero returns the zero
func (v Weapon) Zero() ZeroInfo {
	return v.zero
}

//Twist returns the rifling
func (v Weapon) Twist() TwistInfo {
	return v.twist
}

//ClickValue returns one sight click
func (v Weapon) ClickValue() unit.Angular {
	return v.click
}

//AdjustmentUnits returns unit.AngularMRad or unit.AngularMOA
func (v Weapon) AdjustmentUnits() byte {
	return v.click.Units()
}
