package geometry

import (
	"math"

	"github.com/whitted-dev/go-raytracer/pkg/core"
)

// Cone is a double-napped cone around the y axis of its local space
// (radius equal to |y|), truncated to (Minimum, Maximum) and optionally
// closed with end caps.
type Cone struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates a cone truncated to y in (min, max).
func NewCone(min, max float64, closed bool) *Cone {
	limit := math.Max(math.Abs(min), math.Abs(max))
	bounds := core.NewBounds(core.NewPoint(-limit, min, -limit), core.NewPoint(limit, max, limit))
	return &Cone{
		shapeBase: newShapeBase(bounds),
		Minimum:   min,
		Maximum:   max,
		Closed:    closed,
	}
}

// NewInfiniteCone creates an open cone unbounded in y.
func NewInfiniteCone() *Cone {
	return NewCone(math.Inf(-1), math.Inf(1), false)
}

func (c *Cone) localIntersect(ray core.Ray) []Intersection {
	a := ray.Direction.X*ray.Direction.X - ray.Direction.Y*ray.Direction.Y + ray.Direction.Z*ray.Direction.Z
	b := 2*ray.Origin.X*ray.Direction.X - 2*ray.Origin.Y*ray.Direction.Y + 2*ray.Origin.Z*ray.Direction.Z
	cc := ray.Origin.X*ray.Origin.X - ray.Origin.Y*ray.Origin.Y + ray.Origin.Z*ray.Origin.Z

	if math.Abs(a) < core.Epsilon {
		if math.Abs(b) < core.Epsilon {
			return c.intersectCaps(ray, nil)
		}
		// Parallel to one half of the cone: the quadratic degenerates to
		// the linear equation b*t + c = 0 (b already carries the factor 2).
		t := -cc / b
		xs := []Intersection{NewIntersection(t, c, ray)}
		return c.intersectCaps(ray, xs)
	}

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

// intersectCaps appends hits against the end cap discs, whose radii equal
// the |y| of the truncation planes.
func (c *Cone) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	for _, y := range [2]float64{c.Minimum, c.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, math.Abs(y)) {
			xs = append(xs, NewIntersection(t, c, ray))
		}
	}
	return xs
}

func (c *Cone) localNormalAt(p core.Point, _ Intersection) core.Vector {
	dist := p.X*p.X + p.Z*p.Z

	switch {
	case dist < 1 && p.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && p.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(dist)
		if p.Y > 0 {
			y = -y
		}
		return core.NewVector(p.X, y, p.Z)
	}
}
