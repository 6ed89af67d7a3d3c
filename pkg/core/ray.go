package core

// Ray represents a ray with an origin and direction. Rays are immutable;
// Transform returns a new ray.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray.
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray.
func (r Ray) Position(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray mapped by the given matrix. The direction is not
// renormalized, so t values along the transformed ray correspond one-to-one
// with t values along the original.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyPoint(r.Origin),
		Direction: m.MultiplyVector(r.Direction),
	}
}
