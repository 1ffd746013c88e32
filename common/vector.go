package common

import "math"

// Vector is a 2D point or displacement in tile units. Values are never
// mutated in place; every operation returns a new Vector.
type Vector struct {
	X, Y float64
}

func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Plus returns the component-wise sum of v and other.
func (v Vector) Plus(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by k.
func (v Vector) Times(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Finite reports whether both components are real numbers.
func (v Vector) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
