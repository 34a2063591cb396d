//Package unit provides typed physical quantities. Each value is kept in a
//base unit (meters, m/s, kilograms, °C, hPa, joules, radians) and remembers
//the unit it was created in for printing.
package unit

import "fmt"

//conversion describes one unit of a quantity
type conversion struct {
	name     string
	accuracy int
	toBase   func(float64) float64
	fromBase func(float64) float64
}

//linear is a unit equal to factor base units
func linear(name string, accuracy int, factor float64) conversion {
	return conversion{
		name:     name,
		accuracy: accuracy,
		toBase:   func(x float64) float64 { return x * factor },
		fromBase: func(x float64) float64 { return x / factor },
	}
}

//quantity is the set of units one physical quantity may be expressed in
type quantity struct {
	name  string
	units map[byte]conversion
}

func (q quantity) lookup(units byte) (conversion, error) {
	c, ok := q.units[units]
	if !ok {
		return conversion{}, fmt.Errorf("%s: unit %d is not supported", q.name, units)
	}
	return c, nil
}

func (q quantity) toBase(value float64, units byte) (float64, error) {
	c, err := q.lookup(units)
	if err != nil {
		return 0, err
	}
	return c.toBase(value), nil
}

func (q quantity) fromBase(value float64, units byte) (float64, error) {
	c, err := q.lookup(units)
	if err != nil {
		return 0, err
	}
	return c.fromBase(value), nil
}

//in is fromBase with 0 for unknown units
func (q quantity) in(value float64, units byte) float64 {
	x, err := q.fromBase(value, units)
	if err != nil {
		return 0
	}
	return x
}

func (q quantity) format(value float64, units byte) string {
	c, err := q.lookup(units)
	if err != nil {
		return "!error: default units aren't correct"
	}
	return fmt.Sprintf("%.*f%s", c.accuracy, c.fromBase(value), c.name)
}
