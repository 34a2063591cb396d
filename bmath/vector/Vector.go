//Package vector provides the 3-D vector operations required for the
//trajectory state. Arithmetic is delegated to gonum's r3 package.
package vector

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

//Vector is a 3-D vector.
//
//In trajectory space X is down-range, Y is vertical (up) and Z is lateral (right).
type Vector struct {
	X float64
	Y float64
	Z float64
}

func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f,Z=%f]", v.X, v.Y, v.Z)
}

//Create creates a vector from its coordinates
func Create(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (v Vector) vec() r3.Vec {
	return r3.Vec(v)
}

//Magnitude returns the euclidean length of the vector
func (v Vector) Magnitude() float64 {
	return r3.Norm(v.vec())
}

//MultiplyByConst multiplies the vector by the constant
func (v Vector) MultiplyByConst(a float64) Vector {
	return Vector(r3.Scale(a, v.vec()))
}

//Add adds two vectors
func (v Vector) Add(b Vector) Vector {
	return Vector(r3.Add(v.vec(), b.vec()))
}

//Subtract subtracts b from the vector
func (v Vector) Subtract(b Vector) Vector {
	return Vector(r3.Sub(v.vec(), b.vec()))
}

//Normalize returns a unit vector collinear to this vector.
//A (near) zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	if v.Magnitude() < 1e-10 {
		return v
	}
	return Vector(r3.Unit(v.vec()))
}

//Lerp returns the point a fraction f of the way from v to b
func (v Vector) Lerp(b Vector, f float64) Vector {
	return v.Add(b.Subtract(v).MultiplyByConst(f))
}
