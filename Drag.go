package go_ballisticsolver

import (
	"fmt"
	"math"
)

//DragTableG1 selects the flat-base reference projectile curve
const DragTableG1 byte = 1

//DragTableG7 selects the long boat-tail reference projectile curve
const DragTableG7 byte = 5

//DragTableVacuum selects a zero drag curve. It is used to compare the solver
//against closed form projectile motion.
const DragTableVacuum byte = 9

//cDragConversion converts a ballistic coefficient in lb/in² into the
//frontal-area-over-mass ratio of the reference projectile (π/4 / 703.0696 m²/kg)
const cDragConversion float64 = math.Pi / 4 / 703.0696

type dragFunction func(float64) float64

//BallisticCoefficient is the sectional density of the bullet divided by its
//form factor, in lb/in². Higher values lose less speed to drag.
//
//BC is expressed vs a standard projectile, G1 uses a flat based
//projectile and G7 a long boat-tailed one.
//
//The curves are simplified analytic approximations of the reference
//tables: each one has a transonic rise branch below Mach 1 and a
//supersonic branch above it, continuous at Mach 1.
type BallisticCoefficient struct {
	value float64
	table byte
	drag  dragFunction
}

func dragG1(mach float64) float64 {
	if mach < 1 {
		return 0.2 + 0.28*math.Pow(mach, 8)
	}
	return 0.48 + 0.45*(mach-1)*math.Exp(-1.2*(mach-1))
}

func dragG7(mach float64) float64 {
	if mach < 1 {
		return 0.119 + 0.263*math.Pow(mach, 20)
	}
	return 0.382 * math.Pow(mach, -0.45)
}

func dragVacuum(float64) float64 {
	return 0
}

func dragFunctionFactory(dragTable byte) (dragFunction, error) {
	switch dragTable {
	case DragTableG1:
		return dragG1, nil
	case DragTableG7:
		return dragG7, nil
	case DragTableVacuum:
		return dragVacuum, nil
	default:
		return nil, fmt.Errorf("unknown drag table %d", dragTable)
	}
}

//CreateBallisticCoefficient creates a ballistic coefficient (lb/in²) for the drag table specified
func CreateBallisticCoefficient(value float64, dragTable byte) (BallisticCoefficient, error) {
	drag, err := dragFunctionFactory(dragTable)
	if err != nil {
		return BallisticCoefficient{}, invalidInput("BallisticCoefficient: %v", err)
	}
	if value <= 0 || math.IsNaN(value) {
		return BallisticCoefficient{}, invalidInput("BallisticCoefficient: value %f must be greater than zero", value)
	}
	return BallisticCoefficient{
		value: value,
		table: dragTable,
		drag:  drag,
	}, nil
}

//Value returns the coefficient value in lb/in²
func (v BallisticCoefficient) Value() float64 {
	return v.value
}

//Table returns the drag table the coefficient refers to
func (v BallisticCoefficient) Table() byte {
	return v.table
}

//Drag returns the drag coefficient of the reference projectile at the Mach number specified
func (v BallisticCoefficient) Drag(mach float64) float64 {
	return v.drag(mach)
}

//scaled returns the same coefficient with another value
func (v BallisticCoefficient) scaled(value float64) BallisticCoefficient {
	v.value = value
	return v
}

//DragTableName returns a printable name of the drag table
func DragTableName(dragTable byte) string {
	switch dragTable {
	case DragTableG1:
		return "G1"
	case DragTableG7:
		return "G7"
	case DragTableVacuum:
		return "vacuum"
	default:
		return "?"
	}
}
