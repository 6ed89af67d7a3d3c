package geometry

import (
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

// Cylinder is a radius-1 cylinder around the y axis of its local space,
// truncated to the open interval (Minimum, Maximum) and optionally closed
// with end caps.
type Cylinder struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates a cylinder truncated to y in (min, max).
func NewCylinder(min, max float64, closed bool) *Cylinder {
	bounds := core.NewBounds(core.NewPoint(-1, min, -1), core.NewPoint(1, max, 1))
	return &Cylinder{
		shapeBase: newShapeBase(bounds),
		Minimum:   min,
		Maximum:   max,
		Closed:    closed,
	}
}

// NewInfiniteCylinder creates an open cylinder unbounded in y.
func NewInfiniteCylinder() *Cylinder {
	return NewCylinder(math.Inf(-1), math.Inf(1), false)
}

func (c *Cylinder) localIntersect(ray core.Ray) []Intersection {
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// Ray parallel to the y axis can only hit the caps.
	if math.Abs(a) < core.Epsilon {
		return c.intersectCaps(ray, nil)
	}

	b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
	cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)

	var xs []Intersection
	for _, t := range [2]float64{t0, t1} {
		y := ray.Origin.Y + t*ray.Direction.Y
		if c.Minimum < y && y < c.Maximum {
			xs = append(xs, NewIntersection(t, c, ray))
		}
	}
	return c.intersectCaps(ray, xs)
}

// intersectCaps appends hits against the end cap discs at y = Minimum and
// y = Maximum when the cylinder is closed.
func (c *Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	for _, y := range [2]float64{c.Minimum, c.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, 1) {
			xs = append(xs, NewIntersection(t, c, ray))
		}
	}
	return xs
}

// checkCap reports whether the ray at t lies within the cap disc of the
// given radius.
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

func (c *Cylinder) localNormalAt(p core.Point, _ Intersection) core.Vector {
	dist := p.X*p.X + p.Z*p.Z

	switch {
	case dist < 1 && p.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && p.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(p.X, 0, p.Z)
	}
}
