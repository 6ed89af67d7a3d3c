package core

import "math"

// Epsilon is the tolerance used for geometric comparisons throughout the
// engine. Near-zero denominators below this threshold are treated as zero.
const Epsilon = 1e-5

// Equal reports whether two floats are equal within Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point represents a location in 3D space.
type Point struct {
	X, Y, Z float64
}

// Vector represents a direction with magnitude in 3D space.
type Vector struct {
	X, Y, Z float64
}

// NewPoint creates a new Point.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector creates a new Vector.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Origin returns the point (0, 0, 0).
func Origin() Point {
	return Point{}
}

// Add returns the point translated by a vector.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubVector returns the point translated by the negation of a vector.
func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equal reports whether two points are equal within Epsilon per component.
func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y) && Equal(p.Z, other.Z)
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar.
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the negative of the vector.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the vector reflected about a surface normal.
func (v Vector) Reflect(normal Vector) Vector {
	return v.Sub(normal.Multiply(2 * v.Dot(normal)))
}

// Equal reports whether two vectors are equal within Epsilon per component.
func (v Vector) Equal(other Vector) bool {
	return Equal(v.X, other.X) && Equal(v.Y, other.Y) && Equal(v.Z, other.Z)
}
